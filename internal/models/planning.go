package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AllocationType string
type MovementType string
type MovementFrequency string

const (
	AllocationTypeFinancial AllocationType = "FINANCIAL"
	AllocationTypeFixed     AllocationType = "FIXED"

	MovementTypeIn  MovementType = "IN"
	MovementTypeOut MovementType = "OUT"

	MovementFrequencyOneTime MovementFrequency = "ONE_TIME"
	MovementFrequencyMonthly MovementFrequency = "MONTHLY"
	MovementFrequencyAnnual  MovementFrequency = "ANNUAL"
)

// Allocation is a lump-sum asset entry of a simulation
type Allocation struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	SimulationID uint            `json:"simulation_id" gorm:"not null;index"`
	Type         AllocationType  `json:"type" gorm:"not null"`
	Name         string          `json:"name" gorm:"not null"`
	Value        decimal.Decimal `json:"value" gorm:"type:decimal(20,2);not null"`
	Date         time.Time       `json:"date" gorm:"not null"`

	// Financing details are stored for the client but play no part in projections
	HasFinancing       bool             `json:"has_financing" gorm:"not null;default:false"`
	FinancingStartDate *time.Time       `json:"financing_start_date,omitempty"`
	Installments       *int             `json:"installments,omitempty"`
	InterestRate       *decimal.Decimal `json:"interest_rate,omitempty" gorm:"type:decimal(10,6)"`
	DownPayment        *decimal.Decimal `json:"down_payment,omitempty" gorm:"type:decimal(20,2)"`
}

func (Allocation) TableName() string {
	return "allocations"
}

// Movement is a one-time or recurring cash flow
type Movement struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	SimulationID uint              `json:"simulation_id" gorm:"not null;index"`
	Type         MovementType      `json:"type" gorm:"not null"`
	Value        decimal.Decimal   `json:"value" gorm:"type:decimal(20,2);not null"`
	Frequency    MovementFrequency `json:"frequency" gorm:"not null"`
	StartDate    time.Time         `json:"start_date" gorm:"not null"`
	EndDate      *time.Time        `json:"end_date,omitempty"` // Open-ended when nil
}

func (Movement) TableName() string {
	return "movements"
}

// Insurance is a policy with a monthly premium and a one-time insured payout
type Insurance struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	SimulationID uint            `json:"simulation_id" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"not null"`
	StartDate    time.Time       `json:"start_date" gorm:"not null"`
	Duration     int             `json:"duration" gorm:"not null"`                        // Months
	Premium      decimal.Decimal `json:"premium" gorm:"type:decimal(20,2);not null"`      // Monthly
	InsuredValue decimal.Decimal `json:"insured_value" gorm:"type:decimal(20,2);not null"`
}

func (Insurance) TableName() string {
	return "insurances"
}
