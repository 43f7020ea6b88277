package projection

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"wealthplanner/internal/models"
)

var two = decimal.NewFromInt(2)

// BuildTimeline expands the allocations, movements and insurances of sim into
// yearly events sorted by year. Events of the same year keep their generation
// order: allocations, then movements, then insurances.
func BuildTimeline(sim *models.Simulation) []TimelineEvent {
	var events []TimelineEvent

	for _, a := range sim.Allocations {
		// Allocations up to the start date are part of the initial balance
		if !a.Date.After(sim.StartDate) {
			continue
		}
		events = append(events, TimelineEvent{
			Year:   yearOf(a.Date),
			Label:  fmt.Sprintf("allocation: %s (%s)", a.Name, a.Type),
			Kind:   EventKindAllocation,
			Impact: a.Value,
		})
	}

	for _, m := range sim.Movements {
		events = append(events, movementEvents(m, sim.Status)...)
	}

	for _, ins := range sim.Insurances {
		events = append(events, insuranceEvents(ins)...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Year < events[j].Year
	})

	return events
}

func movementEvents(m models.Movement, status models.SimulationStatus) []TimelineEvent {
	start := yearOf(m.StartDate)
	end := HorizonYear
	if m.EndDate != nil {
		end = yearOf(*m.EndDate)
	}

	var events []TimelineEvent
	for year := start; year <= end; year++ {
		amount := yearlyAmount(m, year == start)
		if amount.IsZero() {
			continue
		}
		if event, ok := movementEvent(m.Type, status, year, amount); ok {
			events = append(events, event)
		}
	}
	return events
}

func yearlyAmount(m models.Movement, firstYear bool) decimal.Decimal {
	switch m.Frequency {
	case models.MovementFrequencyMonthly:
		return m.Value.Mul(decimal.NewFromInt(monthsPerYear))
	case models.MovementFrequencyAnnual:
		return m.Value
	case models.MovementFrequencyOneTime:
		if firstYear {
			return m.Value
		}
	}
	return decimal.Zero
}

// movementEvent applies the life-status rules: entries only exist while the
// holder is alive, and exits are halved once the holder is dead.
func movementEvent(typ models.MovementType, status models.SimulationStatus, year int, amount decimal.Decimal) (TimelineEvent, bool) {
	switch typ {
	case models.MovementTypeIn:
		switch status {
		case models.SimulationStatusAlive:
			return TimelineEvent{Year: year, Label: "entry", Kind: EventKindEntry, Impact: amount}, true
		case models.SimulationStatusDead, models.SimulationStatusInvalid:
			return TimelineEvent{}, false
		}
	case models.MovementTypeOut:
		switch status {
		case models.SimulationStatusDead:
			return TimelineEvent{Year: year, Label: "exit (50%)", Kind: EventKindExit, Impact: amount.Div(two).Neg()}, true
		case models.SimulationStatusAlive, models.SimulationStatusInvalid:
			return TimelineEvent{Year: year, Label: "exit", Kind: EventKindExit, Impact: amount.Neg()}, true
		}
	}
	return TimelineEvent{}, false
}

// insuranceEvents charges the yearly premium for every calendar year the
// policy touches and pays the insured value once, in the first year.
func insuranceEvents(ins models.Insurance) []TimelineEvent {
	start := yearOf(ins.StartDate)
	end := start + ins.Duration/monthsPerYear
	premium := ins.Premium.Mul(decimal.NewFromInt(monthsPerYear)).Neg()

	var events []TimelineEvent
	for year := start; year <= end; year++ {
		events = append(events, TimelineEvent{
			Year:   year,
			Label:  "insurance premium: " + ins.Name,
			Kind:   EventKindInsurancePremium,
			Impact: premium,
		})
		if year == start {
			events = append(events, TimelineEvent{
				Year:   year,
				Label:  "insured value: " + ins.Name,
				Kind:   EventKindInsuredPayout,
				Impact: ins.InsuredValue,
			})
		}
	}
	return events
}
