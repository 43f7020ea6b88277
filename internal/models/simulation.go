package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SimulationStatus string

const (
	SimulationStatusAlive   SimulationStatus = "ALIVE"
	SimulationStatusDead    SimulationStatus = "DEAD"
	SimulationStatusInvalid SimulationStatus = "INVALID"
)

var defaultRate = decimal.RequireFromString("0.04")

// DefaultRate returns the yearly growth rate applied when a simulation has none.
func DefaultRate() decimal.Decimal {
	return defaultRate
}

// Simulation is the root planning scenario. Allocations, movements and
// insurances belong to it and are removed with it.
type Simulation struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Name      string           `json:"name" gorm:"not null"`
	StartDate time.Time        `json:"start_date" gorm:"not null"`
	Rate      *decimal.Decimal `json:"rate" gorm:"type:decimal(10,6)"`
	Status    SimulationStatus `json:"status" gorm:"not null;default:ALIVE"`
	Version   int              `json:"version" gorm:"not null;default:1"`
	ParentID  *uint            `json:"parent_id" gorm:"index"` // Root simulation of the version family

	Allocations []Allocation `json:"allocations,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Movements   []Movement   `json:"movements,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Insurances  []Insurance  `json:"insurances,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Simulation) TableName() string {
	return "simulations"
}

// EffectiveRate returns the simulation rate, or DefaultRate when unset.
func (s *Simulation) EffectiveRate() decimal.Decimal {
	if s.Rate == nil {
		return defaultRate
	}
	return *s.Rate
}

// RootID returns the ID of the first version of this simulation's family.
func (s *Simulation) RootID() uint {
	if s.ParentID != nil {
		return *s.ParentID
	}
	return s.ID
}
