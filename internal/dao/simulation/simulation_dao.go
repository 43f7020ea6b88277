package simulation

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wealthplanner/internal/dao"
	"wealthplanner/internal/models"
)

// SimulationDAO handles database operations for simulations
type SimulationDAO struct {
	db *gorm.DB
}

// SimulationDAOInterface defines the contract for simulation data access
type SimulationDAOInterface interface {
	Create(ctx context.Context, simulation *models.Simulation) error
	GetByID(ctx context.Context, simulationID uint) (*models.Simulation, error)
	GetWithRelations(ctx context.Context, simulationID uint) (*models.Simulation, error)
	List(ctx context.Context) ([]models.Simulation, error)
	Update(ctx context.Context, simulationID uint, updates map[string]interface{}) (*models.Simulation, error)
	Delete(ctx context.Context, simulationID uint) error
	LatestVersion(ctx context.Context, rootID uint) (*models.Simulation, error)
	ListVersions(ctx context.Context, rootID uint) ([]models.Simulation, error)
}

// NewSimulationDAO creates a new simulation DAO instance
func NewSimulationDAO(db *gorm.DB) SimulationDAOInterface {
	return &SimulationDAO{
		db: db,
	}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Allocations").Preload("Movements").Preload("Insurances")
}

// Create inserts a simulation together with any allocations, movements and
// insurances attached to it.
func (s *SimulationDAO) Create(ctx context.Context, simulation *models.Simulation) error {
	if err := s.db.WithContext(ctx).Create(simulation).Error; err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}
	return nil
}

// GetByID retrieves a simulation without its relations
func (s *SimulationDAO) GetByID(ctx context.Context, simulationID uint) (*models.Simulation, error) {
	var simulation models.Simulation
	if err := s.db.WithContext(ctx).First(&simulation, simulationID).Error; err != nil {
		return nil, dao.Wrap(err, "failed to get simulation")
	}
	return &simulation, nil
}

// GetWithRelations retrieves a simulation with allocations, movements and insurances loaded
func (s *SimulationDAO) GetWithRelations(ctx context.Context, simulationID uint) (*models.Simulation, error) {
	var simulation models.Simulation
	if err := withRelations(s.db.WithContext(ctx)).First(&simulation, simulationID).Error; err != nil {
		return nil, dao.Wrap(err, "failed to get simulation")
	}
	return &simulation, nil
}

// List retrieves every simulation with its relations
func (s *SimulationDAO) List(ctx context.Context) ([]models.Simulation, error) {
	var simulations []models.Simulation
	if err := withRelations(s.db.WithContext(ctx)).Order("id ASC").Find(&simulations).Error; err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	return simulations, nil
}

// Update applies column updates and returns the refreshed simulation
func (s *SimulationDAO) Update(ctx context.Context, simulationID uint, updates map[string]interface{}) (*models.Simulation, error) {
	if len(updates) > 0 {
		result := s.db.WithContext(ctx).Model(&models.Simulation{}).
			Where("id = ?", simulationID).
			Updates(updates)

		if result.Error != nil {
			return nil, fmt.Errorf("failed to update simulation: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("simulation %d: %w", simulationID, dao.ErrNotFound)
		}
	}

	return s.GetByID(ctx, simulationID)
}

// Delete deletes a simulation and all associated data
func (s *SimulationDAO) Delete(ctx context.Context, simulationID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("simulation_id = ?", simulationID).Delete(&models.Allocation{}).Error; err != nil {
			return fmt.Errorf("failed to delete allocations: %w", err)
		}

		if err := tx.Where("simulation_id = ?", simulationID).Delete(&models.Movement{}).Error; err != nil {
			return fmt.Errorf("failed to delete movements: %w", err)
		}

		if err := tx.Where("simulation_id = ?", simulationID).Delete(&models.Insurance{}).Error; err != nil {
			return fmt.Errorf("failed to delete insurances: %w", err)
		}

		result := tx.Delete(&models.Simulation{}, simulationID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete simulation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("simulation %d: %w", simulationID, dao.ErrNotFound)
		}
		return nil
	})
}

// LatestVersion returns the highest version in the family rooted at rootID
func (s *SimulationDAO) LatestVersion(ctx context.Context, rootID uint) (*models.Simulation, error) {
	var simulation models.Simulation
	err := s.db.WithContext(ctx).
		Where("id = ? OR parent_id = ?", rootID, rootID).
		Order("version DESC").
		First(&simulation).Error
	if err != nil {
		return nil, dao.Wrap(err, "failed to get latest version")
	}
	return &simulation, nil
}

// ListVersions returns the family rooted at rootID ordered by version
func (s *SimulationDAO) ListVersions(ctx context.Context, rootID uint) ([]models.Simulation, error) {
	var simulations []models.Simulation
	err := s.db.WithContext(ctx).
		Where("id = ? OR parent_id = ?", rootID, rootID).
		Order("version ASC").
		Find(&simulations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return simulations, nil
}
