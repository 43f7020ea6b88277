package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthplanner/internal/models"
)

func householdSimulation() *models.Simulation {
	rate := dec("0.04")
	return &models.Simulation{
		ID:        1,
		Name:      "Household",
		StartDate: date(2025, time.January, 1),
		Rate:      &rate,
		Status:    models.SimulationStatusAlive,
		Allocations: []models.Allocation{
			{Type: models.AllocationTypeFinancial, Name: "Treasury", Value: dec("1000"), Date: date(2025, time.January, 1)},
			{Type: models.AllocationTypeFixed, Name: "House", Value: dec("50000"), Date: date(2025, time.January, 1)},
		},
		Movements: []models.Movement{
			{Type: models.MovementTypeIn, Value: dec("5000"), Frequency: models.MovementFrequencyAnnual,
				StartDate: date(2025, time.January, 1)},
		},
		Insurances: []models.Insurance{
			{Name: "Life", StartDate: date(2025, time.January, 1), Duration: 24, Premium: dec("200"), InsuredValue: dec("100000")},
		},
	}
}

func rowFor(t *testing.T, rows []ProjectionRow, year int) ProjectionRow {
	t.Helper()
	for _, r := range rows {
		if r.Year == year {
			return r
		}
	}
	t.Fatalf("no projection row for %d", year)
	return ProjectionRow{}
}

func TestCalculateProjection_CoversEveryYearToHorizon(t *testing.T) {
	rows := CalculateProjection(householdSimulation())

	require.Len(t, rows, HorizonYear-2025+1)
	for i, r := range rows {
		assert.Equal(t, 2025+i, r.Year)
	}
}

func TestCalculateProjection_FixedBalanceNeverChanges(t *testing.T) {
	rows := CalculateProjection(householdSimulation())

	for _, r := range rows {
		assert.Equal(t, int64(50000), r.Fixed, "year %d", r.Year)
		assert.Equal(t, r.Financial+r.Fixed, r.Total, "year %d", r.Year)
	}
}

func TestCalculateProjection_TotalIsSumOfRoundedParts(t *testing.T) {
	rate := dec("0")
	sim := &models.Simulation{
		StartDate: date(2025, time.January, 1),
		Rate:      &rate,
		Status:    models.SimulationStatusAlive,
		Allocations: []models.Allocation{
			{Type: models.AllocationTypeFinancial, Name: "Cash", Value: dec("1000.5"), Date: date(2025, time.January, 1)},
			{Type: models.AllocationTypeFixed, Name: "Flat", Value: dec("50000.5"), Date: date(2025, time.January, 1)},
		},
	}

	first := CalculateProjection(sim)[0]
	assert.Equal(t, int64(1001), first.Financial)
	assert.Equal(t, int64(50001), first.Fixed)
	assert.Equal(t, int64(51002), first.Total)
	assert.Equal(t, int64(51002), first.TotalExcludingInsurance)
}

func TestCalculateProjection_FractionalAmountsKeepRowSums(t *testing.T) {
	rate := dec("0.035")
	sim := &models.Simulation{
		StartDate: date(2025, time.January, 1),
		Rate:      &rate,
		Status:    models.SimulationStatusAlive,
		Allocations: []models.Allocation{
			{Type: models.AllocationTypeFinancial, Name: "Cash", Value: dec("1000.505"), Date: date(2025, time.January, 1)},
			{Type: models.AllocationTypeFixed, Name: "Flat", Value: dec("50000.5"), Date: date(2025, time.January, 1)},
			{Type: models.AllocationTypeFinancial, Name: "Bonus", Value: dec("250.005"), Date: date(2027, time.March, 1)},
		},
		Movements: []models.Movement{
			{Type: models.MovementTypeIn, Value: dec("100.005"), Frequency: models.MovementFrequencyMonthly,
				StartDate: date(2025, time.January, 1), EndDate: datePtr(2040, time.December, 31)},
			{Type: models.MovementTypeOut, Value: dec("10.5"), Frequency: models.MovementFrequencyAnnual,
				StartDate: date(2026, time.January, 1)},
		},
		Insurances: []models.Insurance{
			{Name: "Life", StartDate: date(2025, time.January, 1), Duration: 36, Premium: dec("12.345"), InsuredValue: dec("999.5")},
		},
	}

	rows := CalculateProjection(sim)
	events := BuildTimeline(sim)
	growth := dec("1.035")
	financial := dec("1000.505")

	for _, r := range rows {
		compounded := financial.Mul(growth)
		withInsurance, withoutInsurance := compounded, compounded
		for _, e := range events {
			if e.Year != r.Year {
				continue
			}
			withInsurance = withInsurance.Add(e.Impact)
			if !e.Kind.IsInsurance() {
				withoutInsurance = withoutInsurance.Add(e.Impact)
			}
		}
		financial = withInsurance

		assert.Equal(t, int64(50001), r.Fixed, "year %d", r.Year)
		assert.Equal(t, roundUnits(withInsurance), r.Financial, "year %d", r.Year)
		assert.Equal(t, r.Financial+r.Fixed, r.Total, "year %d", r.Year)
		assert.Equal(t, roundUnits(withoutInsurance)+r.Fixed, r.TotalExcludingInsurance, "year %d", r.Year)
	}
}

func TestCalculateProjection_KnownValues(t *testing.T) {
	rows := CalculateProjection(householdSimulation())

	// 2025: 1000*1.04 = 1040; +5000 entry, -2400 premium, +100000 payout
	first := rowFor(t, rows, 2025)
	assert.Equal(t, int64(103640), first.Financial)
	assert.Equal(t, int64(153640), first.Total)
	assert.Equal(t, int64(56040), first.TotalExcludingInsurance)

	// 2026: 103640*1.04 = 107785.6; +5000 entry, -2400 premium
	second := rowFor(t, rows, 2026)
	assert.Equal(t, int64(110386), second.Financial)
	assert.Equal(t, int64(160386), second.Total)
	assert.Equal(t, int64(162786), second.TotalExcludingInsurance)
}

func TestCalculateProjection_InsuranceAffectsOnlyOneTrack(t *testing.T) {
	rows := CalculateProjection(householdSimulation())

	first := rowFor(t, rows, 2025)
	assert.Greater(t, first.Total, first.TotalExcludingInsurance)
}

func TestCalculateProjection_NoInsuranceTracksAgree(t *testing.T) {
	sim := householdSimulation()
	sim.Insurances = nil

	for _, r := range CalculateProjection(sim) {
		assert.Equal(t, r.Total, r.TotalExcludingInsurance, "year %d", r.Year)
	}
}

func TestCalculateProjection_Compounding(t *testing.T) {
	sim := householdSimulation()
	sim.Movements = nil
	sim.Insurances = nil

	rows := CalculateProjection(sim)

	assert.Equal(t, int64(1040), rowFor(t, rows, 2025).Financial)
	assert.Equal(t, int64(1082), rowFor(t, rows, 2026).Financial) // 1081.6
	assert.Equal(t, int64(1125), rowFor(t, rows, 2027).Financial) // 1124.864
}

func TestCalculateProjection_DefaultRate(t *testing.T) {
	sim := householdSimulation()
	sim.Rate = nil
	sim.Movements = nil
	sim.Insurances = nil

	rows := CalculateProjection(sim)

	assert.Equal(t, int64(1040), rowFor(t, rows, 2025).Financial)
	assert.Greater(t, rowFor(t, rows, 2026).Financial, rowFor(t, rows, 2025).Financial)
}

func TestCalculateProjection_FixedAllocationOnly(t *testing.T) {
	rate := dec("0.04")
	sim := &models.Simulation{
		StartDate: date(2025, time.January, 1),
		Rate:      &rate,
		Status:    models.SimulationStatusAlive,
		Allocations: []models.Allocation{
			{Type: models.AllocationTypeFixed, Name: "House", Value: dec("50000"), Date: date(2025, time.January, 1)},
		},
	}

	rows := CalculateProjection(sim)

	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, int64(0), r.Financial)
		assert.Equal(t, int64(50000), r.Fixed)
		assert.Equal(t, int64(50000), r.Total)
		assert.Equal(t, int64(50000), r.TotalExcludingInsurance)
	}
}

func TestCalculateProjection_LaterFixedAllocationCompoundsAsFinancial(t *testing.T) {
	rate := dec("0.10")
	sim := &models.Simulation{
		StartDate: date(2025, time.January, 1),
		Rate:      &rate,
		Status:    models.SimulationStatusAlive,
		Allocations: []models.Allocation{
			{Type: models.AllocationTypeFixed, Name: "Flat", Value: dec("1000"), Date: date(2026, time.March, 1)},
		},
	}

	rows := CalculateProjection(sim)

	assert.Equal(t, int64(0), rowFor(t, rows, 2025).Fixed)
	assert.Equal(t, int64(1000), rowFor(t, rows, 2026).Financial)
	assert.Equal(t, int64(1100), rowFor(t, rows, 2027).Financial)
}

func TestCalculateProjection_EventsBeforeStartYearIgnored(t *testing.T) {
	rate := dec("0")
	sim := &models.Simulation{
		StartDate: date(2030, time.January, 1),
		Rate:      &rate,
		Status:    models.SimulationStatusAlive,
		Movements: []models.Movement{
			{Type: models.MovementTypeIn, Value: dec("100"), Frequency: models.MovementFrequencyAnnual,
				StartDate: date(2028, time.January, 1), EndDate: datePtr(2031, time.January, 1)},
		},
	}

	rows := CalculateProjection(sim)

	assert.Equal(t, int64(100), rowFor(t, rows, 2030).Financial)
	assert.Equal(t, int64(200), rowFor(t, rows, 2031).Financial)
	assert.Equal(t, int64(200), rowFor(t, rows, 2032).Financial)
}

func TestCalculateProjection_StartAfterHorizon(t *testing.T) {
	sim := householdSimulation()
	sim.StartDate = date(HorizonYear+1, time.January, 1)

	rows := CalculateProjection(sim)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCalculateProjection_Idempotent(t *testing.T) {
	sim := householdSimulation()

	assert.Equal(t, CalculateProjection(sim), CalculateProjection(sim))
	assert.Len(t, sim.Allocations, 2)
}

func TestRoundUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1081.6", 1082},
		{"1124.4", 1124},
		{"2.5", 3},
		{"-2.5", -2},
		{"-2.6", -3},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, roundUnits(dec(tt.in)))
		})
	}
}
