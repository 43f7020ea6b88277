// Package projection expands a simulation into yearly cash-flow events and
// projects its net worth year by year up to HorizonYear.
//
// Both entry points are pure functions of their input: they perform no I/O,
// keep no state between calls and never modify the simulation they are given.
// Callers must pass a non-nil simulation whose allocations, movements and
// insurances are already loaded; dates are expected to be UTC-normalised.
package projection

import (
	"time"

	"github.com/shopspring/decimal"
)

// HorizonYear is the last projected year, whatever the simulation start date.
const HorizonYear = 2060

const monthsPerYear = 12

// EventKind identifies the source of a timeline event.
type EventKind string

const (
	EventKindAllocation       EventKind = "allocation"
	EventKindEntry            EventKind = "entry"
	EventKindExit             EventKind = "exit"
	EventKindInsurancePremium EventKind = "insurance_premium"
	EventKindInsuredPayout    EventKind = "insured_payout"
)

// IsInsurance reports whether events of this kind are excluded from the
// "without insurance" track.
func (k EventKind) IsInsurance() bool {
	switch k {
	case EventKindInsurancePremium, EventKindInsuredPayout:
		return true
	default:
		return false
	}
}

// TimelineEvent is a signed cash-flow impact stamped with a calendar year
type TimelineEvent struct {
	Year   int             `json:"year"`
	Label  string          `json:"label"`
	Kind   EventKind       `json:"kind"`
	Impact decimal.Decimal `json:"impact"`
}

// ProjectionRow is one year of projected net worth, in whole currency units
type ProjectionRow struct {
	Year                    int   `json:"year"`
	Financial               int64 `json:"financial"`
	Fixed                   int64 `json:"fixed"`
	Total                   int64 `json:"total"`
	TotalExcludingInsurance int64 `json:"total_excluding_insurance"`
}

func yearOf(t time.Time) int {
	return t.UTC().Year()
}
