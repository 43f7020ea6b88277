package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wealthplanner/internal/dao/planning"
	"wealthplanner/internal/services"
)

// PlanningHandler serves CRUD routes for one kind of simulation-owned record.
// Decoding of create and update bodies is specific to each kind.
type PlanningHandler[T planning.Record] struct {
	service      services.PlanningServiceInterface[T]
	decodeCreate func(c *gin.Context) (*T, error)
	decodeUpdate func(c *gin.Context) (map[string]interface{}, error)
}

// POST /api/v1/{records}
func (ph *PlanningHandler[T]) Create(c *gin.Context) {
	record, err := ph.decodeCreate(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := ph.service.Create(c.Request.Context(), record); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GET /api/v1/{records}?simulation_id=
func (ph *PlanningHandler[T]) List(c *gin.Context) {
	var simulationID *uint
	if raw := c.Query("simulation_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid simulation_id parameter"})
			return
		}
		sid := uint(id)
		simulationID = &sid
	}

	records, err := ph.service.List(c.Request.Context(), simulationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GET /api/v1/{records}/:id
func (ph *PlanningHandler[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := ph.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// PATCH /api/v1/{records}/:id
func (ph *PlanningHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	updates, err := ph.decodeUpdate(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	record, err := ph.service.Update(c.Request.Context(), id, updates)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DELETE /api/v1/{records}/:id
func (ph *PlanningHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ph.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterPlanningRoutes registers CRUD routes for a record kind under path
func RegisterPlanningRoutes[T planning.Record](router *gin.RouterGroup, path string, handler *PlanningHandler[T]) {
	records := router.Group(path)
	{
		records.POST("", handler.Create)
		records.GET("", handler.List)
		records.GET("/:id", handler.Get)
		records.PATCH("/:id", handler.Update)
		records.DELETE("/:id", handler.Delete)
	}
}
