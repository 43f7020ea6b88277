package projection

import (
	"github.com/shopspring/decimal"

	"wealthplanner/internal/models"
)

var half = decimal.NewFromFloat(0.5)

type yearImpact struct {
	withInsurance    decimal.Decimal
	withoutInsurance decimal.Decimal
}

// CalculateProjection projects sim from its start year through HorizonYear.
//
// The financial balance compounds by (1+rate) at the start of each year and
// then receives that year's timeline impacts. The fixed balance is taken once
// from allocations dated up to the start date and never changes. The
// "excluding insurance" track starts every year from the same compounded
// balance and applies only the non-insurance impacts.
func CalculateProjection(sim *models.Simulation) []ProjectionRow {
	startYear := yearOf(sim.StartDate)
	growth := decimal.NewFromInt(1).Add(sim.EffectiveRate())
	impacts := yearlyImpacts(BuildTimeline(sim))

	financial := initialBalance(sim, models.AllocationTypeFinancial)
	fixed := initialBalance(sim, models.AllocationTypeFixed)

	rows := make([]ProjectionRow, 0, max(HorizonYear-startYear+1, 0))
	for year := startYear; year <= HorizonYear; year++ {
		compounded := financial.Mul(growth)
		impact := impacts[year]

		financial = compounded.Add(impact.withInsurance)
		financialWithoutInsurance := compounded.Add(impact.withoutInsurance)

		// Balances stay exact; totals are sums of the rounded parts.
		rowFinancial := roundUnits(financial)
		rowFixed := roundUnits(fixed)
		rows = append(rows, ProjectionRow{
			Year:                    year,
			Financial:               rowFinancial,
			Fixed:                   rowFixed,
			Total:                   rowFinancial + rowFixed,
			TotalExcludingInsurance: roundUnits(financialWithoutInsurance) + rowFixed,
		})
	}

	return rows
}

func yearlyImpacts(events []TimelineEvent) map[int]yearImpact {
	impacts := make(map[int]yearImpact)
	for _, e := range events {
		impact := impacts[e.Year]
		impact.withInsurance = impact.withInsurance.Add(e.Impact)
		if !e.Kind.IsInsurance() {
			impact.withoutInsurance = impact.withoutInsurance.Add(e.Impact)
		}
		impacts[e.Year] = impact
	}
	return impacts
}

func initialBalance(sim *models.Simulation, typ models.AllocationType) decimal.Decimal {
	total := decimal.Zero
	for _, a := range sim.Allocations {
		if a.Type == typ && !a.Date.After(sim.StartDate) {
			total = total.Add(a.Value)
		}
	}
	return total
}

// roundUnits rounds to the nearest whole unit, halves toward positive infinity.
func roundUnits(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}
