package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"wealthplanner/internal/dao"
	simulationDAO "wealthplanner/internal/dao/simulation"
	"wealthplanner/internal/engines/projection"
	"wealthplanner/internal/models"
)

// CreateSimulationInput carries the validated fields of a new simulation
type CreateSimulationInput struct {
	Name      string
	StartDate time.Time
	Rate      *decimal.Decimal
	Status    models.SimulationStatus
}

// UpdateSimulationInput carries the fields to change; nil fields are left as is
type UpdateSimulationInput struct {
	Name      *string
	StartDate *time.Time
	Rate      *decimal.Decimal
	Status    *models.SimulationStatus
}

// VersionInput overrides fields of the simulation being versioned
type VersionInput struct {
	Name   *string
	Rate   *decimal.Decimal
	Status *models.SimulationStatus
}

// SimulationServiceInterface is what the HTTP layer needs from simulations
type SimulationServiceInterface interface {
	Create(ctx context.Context, in CreateSimulationInput) (*models.Simulation, error)
	Get(ctx context.Context, id uint) (*models.Simulation, error)
	List(ctx context.Context) ([]models.Simulation, error)
	Update(ctx context.Context, id uint, in UpdateSimulationInput) (*models.Simulation, error)
	Delete(ctx context.Context, id uint) error
	Projection(ctx context.Context, id uint) ([]projection.ProjectionRow, error)
	Timeline(ctx context.Context, id uint) ([]projection.TimelineEvent, error)
	CreateVersion(ctx context.Context, id uint, in VersionInput) (*models.Simulation, error)
	ListVersions(ctx context.Context, id uint) ([]models.Simulation, error)
}

// SimulationService manages simulations, their versions and their projections
type SimulationService struct {
	simulations simulationDAO.SimulationDAOInterface
	log         *logrus.Logger
	now         func() time.Time
}

// NewSimulationService creates a new simulation service
func NewSimulationService(simulations simulationDAO.SimulationDAOInterface, log *logrus.Logger) *SimulationService {
	return &SimulationService{
		simulations: simulations,
		log:         log,
		now:         time.Now,
	}
}

// Create stores a new first-version simulation. A missing rate is stored as
// the default rate.
func (s *SimulationService) Create(ctx context.Context, in CreateSimulationInput) (*models.Simulation, error) {
	rate := models.DefaultRate()
	if in.Rate != nil {
		rate = *in.Rate
	}

	simulation := &models.Simulation{
		Name:      in.Name,
		StartDate: in.StartDate,
		Rate:      &rate,
		Status:    in.Status,
		Version:   1,
	}
	if err := s.simulations.Create(ctx, simulation); err != nil {
		return nil, errors.Wrap(err, "create simulation")
	}

	s.log.WithField("simulation_id", simulation.ID).Info("Created simulation")
	return simulation, nil
}

// Get returns a simulation with its allocations, movements and insurances
func (s *SimulationService) Get(ctx context.Context, id uint) (*models.Simulation, error) {
	simulation, err := s.simulations.GetWithRelations(ctx, id)
	if err != nil {
		return nil, translate(err, ErrSimulationNotFound, "get simulation")
	}
	return simulation, nil
}

func (s *SimulationService) List(ctx context.Context) ([]models.Simulation, error) {
	simulations, err := s.simulations.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list simulations")
	}
	return simulations, nil
}

func (s *SimulationService) Update(ctx context.Context, id uint, in UpdateSimulationInput) (*models.Simulation, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.StartDate != nil {
		updates["start_date"] = *in.StartDate
	}
	if in.Rate != nil {
		updates["rate"] = *in.Rate
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}

	simulation, err := s.simulations.Update(ctx, id, updates)
	if err != nil {
		return nil, translate(err, ErrSimulationNotFound, "update simulation")
	}

	s.log.WithField("simulation_id", id).Info("Updated simulation")
	return simulation, nil
}

func (s *SimulationService) Delete(ctx context.Context, id uint) error {
	if err := s.simulations.Delete(ctx, id); err != nil {
		return translate(err, ErrSimulationNotFound, "delete simulation")
	}

	s.log.WithField("simulation_id", id).Info("Deleted simulation and all associated data")
	return nil
}

// Projection loads the simulation and projects its net worth to the horizon
func (s *SimulationService) Projection(ctx context.Context, id uint) ([]projection.ProjectionRow, error) {
	simulation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rows := projection.CalculateProjection(simulation)

	s.log.WithFields(logrus.Fields{
		"simulation_id": id,
		"rows":          len(rows),
	}).Debug("Calculated projection")
	return rows, nil
}

// Timeline loads the simulation and expands it into yearly events
func (s *SimulationService) Timeline(ctx context.Context, id uint) ([]projection.TimelineEvent, error) {
	simulation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	events := projection.BuildTimeline(simulation)

	s.log.WithFields(logrus.Fields{
		"simulation_id": id,
		"events":        len(events),
	}).Debug("Built timeline")
	return events, nil
}

// CreateVersion copies a simulation and its records into the next version of
// its family. The copy starts today; name, rate and status may be overridden.
func (s *SimulationService) CreateVersion(ctx context.Context, id uint, in VersionInput) (*models.Simulation, error) {
	original, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rootID := original.RootID()
	nextVersion := 2
	latest, err := s.simulations.LatestVersion(ctx, rootID)
	if err != nil && !errors.Is(err, dao.ErrNotFound) {
		return nil, errors.Wrap(err, "create version")
	}
	if latest != nil {
		nextVersion = latest.Version + 1
	}

	now := s.now().UTC()
	version := &models.Simulation{
		Name:        original.Name,
		StartDate:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Rate:        original.Rate,
		Status:      original.Status,
		Version:     nextVersion,
		ParentID:    &rootID,
		Allocations: copyAllocations(original.Allocations),
		Movements:   copyMovements(original.Movements),
		Insurances:  copyInsurances(original.Insurances),
	}
	if in.Name != nil {
		version.Name = *in.Name
	}
	if in.Rate != nil {
		version.Rate = in.Rate
	}
	if in.Status != nil {
		version.Status = *in.Status
	}

	if err := s.simulations.Create(ctx, version); err != nil {
		return nil, errors.Wrap(err, "create version")
	}

	s.log.WithFields(logrus.Fields{
		"simulation_id": version.ID,
		"root_id":       rootID,
		"version":       version.Version,
	}).Info("Created simulation version")
	return version, nil
}

// ListVersions returns every version of the family the simulation belongs to
func (s *SimulationService) ListVersions(ctx context.Context, id uint) ([]models.Simulation, error) {
	simulation, err := s.simulations.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrSimulationNotFound, "list versions")
	}

	versions, err := s.simulations.ListVersions(ctx, simulation.RootID())
	if err != nil {
		return nil, errors.Wrap(err, "list versions")
	}
	return versions, nil
}

func copyAllocations(in []models.Allocation) []models.Allocation {
	out := make([]models.Allocation, len(in))
	for i, a := range in {
		out[i] = models.Allocation{
			Type:               a.Type,
			Name:               a.Name,
			Value:              a.Value,
			Date:               a.Date,
			HasFinancing:       a.HasFinancing,
			FinancingStartDate: a.FinancingStartDate,
			Installments:       a.Installments,
			InterestRate:       a.InterestRate,
			DownPayment:        a.DownPayment,
		}
	}
	return out
}

func copyMovements(in []models.Movement) []models.Movement {
	out := make([]models.Movement, len(in))
	for i, m := range in {
		out[i] = models.Movement{
			Type:      m.Type,
			Value:     m.Value,
			Frequency: m.Frequency,
			StartDate: m.StartDate,
			EndDate:   m.EndDate,
		}
	}
	return out
}

func copyInsurances(in []models.Insurance) []models.Insurance {
	out := make([]models.Insurance, len(in))
	for i, ins := range in {
		out[i] = models.Insurance{
			Name:         ins.Name,
			StartDate:    ins.StartDate,
			Duration:     ins.Duration,
			Premium:      ins.Premium,
			InsuredValue: ins.InsuredValue,
		}
	}
	return out
}
