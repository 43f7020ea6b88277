// Package planning stores the allocations, movements and insurances that make
// up a simulation.
package planning

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wealthplanner/internal/dao"
	"wealthplanner/internal/models"
)

// Record is any row owned by a simulation
type Record interface {
	models.Allocation | models.Movement | models.Insurance
}

// DAOInterface defines the contract for simulation-owned records
type DAOInterface[T Record] interface {
	Create(ctx context.Context, record *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, simulationID *uint) ([]T, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// DAO handles database operations for one kind of simulation-owned record
type DAO[T Record] struct {
	db   *gorm.DB
	name string
}

func NewAllocationDAO(db *gorm.DB) DAOInterface[models.Allocation] {
	return &DAO[models.Allocation]{db: db, name: "allocation"}
}

func NewMovementDAO(db *gorm.DB) DAOInterface[models.Movement] {
	return &DAO[models.Movement]{db: db, name: "movement"}
}

func NewInsuranceDAO(db *gorm.DB) DAOInterface[models.Insurance] {
	return &DAO[models.Insurance]{db: db, name: "insurance"}
}

// Create creates a new record
func (d *DAO[T]) Create(ctx context.Context, record *T) error {
	if err := d.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", d.name, err)
	}
	return nil
}

// GetByID retrieves a record by ID
func (d *DAO[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := d.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, dao.Wrap(err, "failed to get "+d.name)
	}
	return &record, nil
}

// List retrieves all records, optionally restricted to one simulation
func (d *DAO[T]) List(ctx context.Context, simulationID *uint) ([]T, error) {
	var records []T
	query := d.db.WithContext(ctx).Order("id ASC")
	if simulationID != nil {
		query = query.Where("simulation_id = ?", *simulationID)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", d.name, err)
	}
	return records, nil
}

// Update applies column updates and returns the refreshed record
func (d *DAO[T]) Update(ctx context.Context, id uint, updates map[string]interface{}) (*T, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).Model(new(T)).
			Where("id = ?", id).
			Updates(updates)

		if result.Error != nil {
			return nil, fmt.Errorf("failed to update %s: %w", d.name, result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("%s %d: %w", d.name, id, dao.ErrNotFound)
		}
	}

	return d.GetByID(ctx, id)
}

// Delete removes a record
func (d *DAO[T]) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", d.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", d.name, id, dao.ErrNotFound)
	}
	return nil
}
