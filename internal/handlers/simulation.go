package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"wealthplanner/internal/models"
	"wealthplanner/internal/services"
)

type SimulationHandler struct {
	service services.SimulationServiceInterface
}

func NewSimulationHandler(service services.SimulationServiceInterface) *SimulationHandler {
	return &SimulationHandler{
		service: service,
	}
}

type CreateSimulationRequest struct {
	Name      string                  `json:"name" binding:"required,min=3"`
	StartDate string                  `json:"start_date" binding:"required"`
	Rate      *decimal.Decimal        `json:"rate"`
	Status    models.SimulationStatus `json:"status" binding:"required,oneof=ALIVE DEAD INVALID"`
}

type UpdateSimulationRequest struct {
	Name      *string                  `json:"name" binding:"omitempty,min=3"`
	StartDate *string                  `json:"start_date"`
	Rate      *decimal.Decimal         `json:"rate"`
	Status    *models.SimulationStatus `json:"status" binding:"omitempty,oneof=ALIVE DEAD INVALID"`
}

type CreateVersionRequest struct {
	Name   *string                  `json:"name" binding:"omitempty,min=3"`
	Rate   *decimal.Decimal         `json:"rate"`
	Status *models.SimulationStatus `json:"status" binding:"omitempty,oneof=ALIVE DEAD INVALID"`
}

// POST /api/v1/simulations
func (sh *SimulationHandler) CreateSimulation(c *gin.Context) {
	var req CreateSimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	simulation, err := sh.service.Create(c.Request.Context(), services.CreateSimulationInput{
		Name:      req.Name,
		StartDate: startDate,
		Rate:      req.Rate,
		Status:    req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, simulation)
}

// GET /api/v1/simulations
func (sh *SimulationHandler) GetSimulations(c *gin.Context) {
	simulations, err := sh.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"simulations": simulations,
		"count":       len(simulations),
	})
}

// GET /api/v1/simulations/:id
func (sh *SimulationHandler) GetSimulation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	simulation, err := sh.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, simulation)
}

// PATCH /api/v1/simulations/:id
func (sh *SimulationHandler) UpdateSimulation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateSimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	simulation, err := sh.service.Update(c.Request.Context(), id, services.UpdateSimulationInput{
		Name:      req.Name,
		StartDate: startDate,
		Rate:      req.Rate,
		Status:    req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, simulation)
}

// DELETE /api/v1/simulations/:id
func (sh *SimulationHandler) DeleteSimulation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := sh.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/v1/simulations/:id/projection
func (sh *SimulationHandler) GetProjection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rows, err := sh.service.Projection(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GET /api/v1/simulations/:id/timeline
func (sh *SimulationHandler) GetTimeline(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	events, err := sh.service.Timeline(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// POST /api/v1/simulations/:id/version
// The body is optional; without one the copy keeps name, rate and status.
func (sh *SimulationHandler) CreateVersion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}

	version, err := sh.service.CreateVersion(c.Request.Context(), id, services.VersionInput{
		Name:   req.Name,
		Rate:   req.Rate,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, version)
}

// GET /api/v1/simulations/:id/versions
func (sh *SimulationHandler) GetVersions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	versions, err := sh.service.ListVersions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, versions)
}

// RegisterSimulationRoutes registers all simulation routes
func RegisterSimulationRoutes(router *gin.RouterGroup, handler *SimulationHandler) {
	simulations := router.Group("/simulations")
	{
		simulations.POST("", handler.CreateSimulation)
		simulations.GET("", handler.GetSimulations)
		simulations.GET("/:id", handler.GetSimulation)
		simulations.PATCH("/:id", handler.UpdateSimulation)
		simulations.DELETE("/:id", handler.DeleteSimulation)
		simulations.GET("/:id/projection", handler.GetProjection)
		simulations.GET("/:id/timeline", handler.GetTimeline)
		simulations.POST("/:id/version", handler.CreateVersion)
		simulations.GET("/:id/versions", handler.GetVersions)
	}
}
