package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"wealthplanner/internal/models"
	"wealthplanner/internal/services"
)

type CreateMovementRequest struct {
	SimulationID uint                     `json:"simulation_id" binding:"required"`
	Type         models.MovementType      `json:"type" binding:"required,oneof=IN OUT"`
	Value        *decimal.Decimal         `json:"value" binding:"required"`
	Frequency    models.MovementFrequency `json:"frequency" binding:"required,oneof=ONE_TIME MONTHLY ANNUAL"`
	StartDate    string                   `json:"start_date" binding:"required"`
	EndDate      *string                  `json:"end_date"`
}

type UpdateMovementRequest struct {
	SimulationID *uint                     `json:"simulation_id" binding:"omitempty,min=1"`
	Type         *models.MovementType      `json:"type" binding:"omitempty,oneof=IN OUT"`
	Value        *decimal.Decimal          `json:"value"`
	Frequency    *models.MovementFrequency `json:"frequency" binding:"omitempty,oneof=ONE_TIME MONTHLY ANNUAL"`
	StartDate    *string                   `json:"start_date"`
	EndDate      *string                   `json:"end_date"`
}

func NewMovementHandler(service services.PlanningServiceInterface[models.Movement]) *PlanningHandler[models.Movement] {
	return &PlanningHandler[models.Movement]{
		service:      service,
		decodeCreate: decodeCreateMovement,
		decodeUpdate: decodeUpdateMovement,
	}
}

func decodeCreateMovement(c *gin.Context) (*models.Movement, error) {
	var req CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.Movement{
		SimulationID: req.SimulationID,
		Type:         req.Type,
		Value:        *req.Value,
		Frequency:    req.Frequency,
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}

func decodeUpdateMovement(c *gin.Context) (map[string]interface{}, error) {
	var req UpdateMovementRequest
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
	if req.Value != nil {
		updates["value"] = *req.Value
	}
	if req.Frequency != nil {
		updates["frequency"] = *req.Frequency
	}
	if req.StartDate != nil {
		date, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		updates["start_date"] = date
	}
	if req.EndDate != nil {
		date, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		updates["end_date"] = date
	}
	return updates, nil
}
