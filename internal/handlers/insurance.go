package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"wealthplanner/internal/models"
	"wealthplanner/internal/services"
)

type CreateInsuranceRequest struct {
	SimulationID uint             `json:"simulation_id" binding:"required"`
	Name         string           `json:"name" binding:"required"`
	StartDate    string           `json:"start_date" binding:"required"`
	Duration     *int             `json:"duration" binding:"required,min=0"` // Months
	Premium      *decimal.Decimal `json:"premium" binding:"required"`        // Monthly
	InsuredValue *decimal.Decimal `json:"insured_value" binding:"required"`
}

type UpdateInsuranceRequest struct {
	SimulationID *uint            `json:"simulation_id" binding:"omitempty,min=1"`
	Name         *string          `json:"name" binding:"omitempty,min=1"`
	StartDate    *string          `json:"start_date"`
	Duration     *int             `json:"duration" binding:"omitempty,min=0"`
	Premium      *decimal.Decimal `json:"premium"`
	InsuredValue *decimal.Decimal `json:"insured_value"`
}

func NewInsuranceHandler(service services.PlanningServiceInterface[models.Insurance]) *PlanningHandler[models.Insurance] {
	return &PlanningHandler[models.Insurance]{
		service:      service,
		decodeCreate: decodeCreateInsurance,
		decodeUpdate: decodeUpdateInsurance,
	}
}

func decodeCreateInsurance(c *gin.Context) (*models.Insurance, error) {
	var req CreateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	return &models.Insurance{
		SimulationID: req.SimulationID,
		Name:         req.Name,
		StartDate:    startDate,
		Duration:     *req.Duration,
		Premium:      *req.Premium,
		InsuredValue: *req.InsuredValue,
	}, nil
}

func decodeUpdateInsurance(c *gin.Context) (map[string]interface{}, error) {
	var req UpdateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.SimulationID != nil {
		updates["simulation_id"] = *req.SimulationID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.StartDate != nil {
		date, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		updates["start_date"] = date
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Premium != nil {
		updates["premium"] = *req.Premium
	}
	if req.InsuredValue != nil {
		updates["insured_value"] = *req.InsuredValue
	}
	return updates, nil
}
