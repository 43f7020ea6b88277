package services

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"wealthplanner/internal/dao/planning"
	simulationDAO "wealthplanner/internal/dao/simulation"
	"wealthplanner/internal/models"
)

// PlanningServiceInterface is what the HTTP layer needs from the records
// owned by a simulation
type PlanningServiceInterface[T planning.Record] interface {
	Create(ctx context.Context, record *T) error
	Get(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, simulationID *uint) ([]T, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// PlanningService manages allocations, movements or insurances. Records may
// only be attached to an existing simulation.
type PlanningService[T planning.Record] struct {
	records     planning.DAOInterface[T]
	simulations simulationDAO.SimulationDAOInterface
	log         *logrus.Logger
	name        string
	owner       func(*T) uint
}

func NewAllocationService(records planning.DAOInterface[models.Allocation], simulations simulationDAO.SimulationDAOInterface, log *logrus.Logger) *PlanningService[models.Allocation] {
	return &PlanningService[models.Allocation]{
		records:     records,
		simulations: simulations,
		log:         log,
		name:        "allocation",
		owner:       func(a *models.Allocation) uint { return a.SimulationID },
	}
}

func NewMovementService(records planning.DAOInterface[models.Movement], simulations simulationDAO.SimulationDAOInterface, log *logrus.Logger) *PlanningService[models.Movement] {
	return &PlanningService[models.Movement]{
		records:     records,
		simulations: simulations,
		log:         log,
		name:        "movement",
		owner:       func(m *models.Movement) uint { return m.SimulationID },
	}
}

func NewInsuranceService(records planning.DAOInterface[models.Insurance], simulations simulationDAO.SimulationDAOInterface, log *logrus.Logger) *PlanningService[models.Insurance] {
	return &PlanningService[models.Insurance]{
		records:     records,
		simulations: simulations,
		log:         log,
		name:        "insurance",
		owner:       func(i *models.Insurance) uint { return i.SimulationID },
	}
}

func (s *PlanningService[T]) ensureSimulation(ctx context.Context, simulationID uint) error {
	if _, err := s.simulations.GetByID(ctx, simulationID); err != nil {
		return translate(err, ErrSimulationNotFound, fmt.Sprintf("simulation %d", simulationID))
	}
	return nil
}

func (s *PlanningService[T]) Create(ctx context.Context, record *T) error {
	simulationID := s.owner(record)
	if err := s.ensureSimulation(ctx, simulationID); err != nil {
		return err
	}

	if err := s.records.Create(ctx, record); err != nil {
		return errors.Wrapf(err, "create %s", s.name)
	}

	s.log.WithField("simulation_id", simulationID).Infof("Created %s", s.name)
	return nil
}

func (s *PlanningService[T]) Get(ctx context.Context, id uint) (*T, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrRecordNotFound, fmt.Sprintf("%s %d", s.name, id))
	}
	return record, nil
}

func (s *PlanningService[T]) List(ctx context.Context, simulationID *uint) ([]T, error) {
	records, err := s.records.List(ctx, simulationID)
	if err != nil {
		return nil, errors.Wrapf(err, "list %ss", s.name)
	}
	return records, nil
}

// Update applies column updates. Moving a record to another simulation
// requires that simulation to exist.
func (s *PlanningService[T]) Update(ctx context.Context, id uint, updates map[string]interface{}) (*T, error) {
	if simulationID, ok := updates["simulation_id"].(uint); ok {
		if err := s.ensureSimulation(ctx, simulationID); err != nil {
			return nil, err
		}
	}

	record, err := s.records.Update(ctx, id, updates)
	if err != nil {
		return nil, translate(err, ErrRecordNotFound, fmt.Sprintf("%s %d", s.name, id))
	}
	return record, nil
}

func (s *PlanningService[T]) Delete(ctx context.Context, id uint) error {
	if err := s.records.Delete(ctx, id); err != nil {
		return translate(err, ErrRecordNotFound, fmt.Sprintf("%s %d", s.name, id))
	}

	s.log.WithField("id", id).Infof("Deleted %s", s.name)
	return nil
}
