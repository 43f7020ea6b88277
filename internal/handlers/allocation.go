package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"wealthplanner/internal/models"
	"wealthplanner/internal/services"
)

type CreateAllocationRequest struct {
	SimulationID       uint                  `json:"simulation_id" binding:"required"`
	Type               models.AllocationType `json:"type" binding:"required,oneof=FINANCIAL FIXED"`
	Name               string                `json:"name" binding:"required"`
	Value              *decimal.Decimal      `json:"value" binding:"required"`
	Date               string                `json:"date" binding:"required"`
	HasFinancing       bool                  `json:"has_financing"`
	FinancingStartDate *string               `json:"financing_start_date"`
	Installments       *int                  `json:"installments" binding:"omitempty,min=1"`
	InterestRate       *decimal.Decimal      `json:"interest_rate"`
	DownPayment        *decimal.Decimal      `json:"down_payment"`
}

type UpdateAllocationRequest struct {
	SimulationID       *uint                  `json:"simulation_id" binding:"omitempty,min=1"`
	Type               *models.AllocationType `json:"type" binding:"omitempty,oneof=FINANCIAL FIXED"`
	Name               *string                `json:"name" binding:"omitempty,min=1"`
	Value              *decimal.Decimal       `json:"value"`
	Date               *string                `json:"date"`
	HasFinancing       *bool                  `json:"has_financing"`
	FinancingStartDate *string                `json:"financing_start_date"`
	Installments       *int                   `json:"installments" binding:"omitempty,min=1"`
	InterestRate       *decimal.Decimal       `json:"interest_rate"`
	DownPayment        *decimal.Decimal       `json:"down_payment"`
}

func NewAllocationHandler(service services.PlanningServiceInterface[models.Allocation]) *PlanningHandler[models.Allocation] {
	return &PlanningHandler[models.Allocation]{
		service:      service,
		decodeCreate: decodeCreateAllocation,
		decodeUpdate: decodeUpdateAllocation,
	}
}

func decodeCreateAllocation(c *gin.Context) (*models.Allocation, error) {
	var req CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	financingStart, err := parseOptionalDate(req.FinancingStartDate)
	if err != nil {
		return nil, err
	}

	return &models.Allocation{
		SimulationID:       req.SimulationID,
		Type:               req.Type,
		Name:               req.Name,
		Value:              *req.Value,
		Date:               date,
		HasFinancing:       req.HasFinancing,
		FinancingStartDate: financingStart,
		Installments:       req.Installments,
		InterestRate:       req.InterestRate,
		DownPayment:        req.DownPayment,
	}, nil
}

func decodeUpdateAllocation(c *gin.Context) (map[string]interface{}, error) {
	var req UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.SimulationID != nil {
		updates["simulation_id"] = *req.SimulationID
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Value != nil {
		updates["value"] = *req.Value
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
	}
	if req.HasFinancing != nil {
		updates["has_financing"] = *req.HasFinancing
	}
	if req.FinancingStartDate != nil {
		date, err := parseDate(*req.FinancingStartDate)
		if err != nil {
			return nil, err
		}
		updates["financing_start_date"] = date
	}
	if req.Installments != nil {
		updates["installments"] = *req.Installments
	}
	if req.InterestRate != nil {
		updates["interest_rate"] = *req.InterestRate
	}
	if req.DownPayment != nil {
		updates["down_payment"] = *req.DownPayment
	}
	return updates, nil
}
