package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wealthplanner/internal/models"
)

type MockSimulationDAO struct {
	mock.Mock
}

func (m *MockSimulationDAO) Create(ctx context.Context, simulation *models.Simulation) error {
	args := m.Called(ctx, simulation)
	return args.Error(0)
}

func (m *MockSimulationDAO) GetByID(ctx context.Context, simulationID uint) (*models.Simulation, error) {
	args := m.Called(ctx, simulationID)
	simulation, _ := args.Get(0).(*models.Simulation)
	return simulation, args.Error(1)
}

func (m *MockSimulationDAO) GetWithRelations(ctx context.Context, simulationID uint) (*models.Simulation, error) {
	args := m.Called(ctx, simulationID)
	simulation, _ := args.Get(0).(*models.Simulation)
	return simulation, args.Error(1)
}

func (m *MockSimulationDAO) List(ctx context.Context) ([]models.Simulation, error) {
	args := m.Called(ctx)
	simulations, _ := args.Get(0).([]models.Simulation)
	return simulations, args.Error(1)
}

func (m *MockSimulationDAO) Update(ctx context.Context, simulationID uint, updates map[string]interface{}) (*models.Simulation, error) {
	args := m.Called(ctx, simulationID, updates)
	simulation, _ := args.Get(0).(*models.Simulation)
	return simulation, args.Error(1)
}

func (m *MockSimulationDAO) Delete(ctx context.Context, simulationID uint) error {
	args := m.Called(ctx, simulationID)
	return args.Error(0)
}

func (m *MockSimulationDAO) LatestVersion(ctx context.Context, rootID uint) (*models.Simulation, error) {
	args := m.Called(ctx, rootID)
	simulation, _ := args.Get(0).(*models.Simulation)
	return simulation, args.Error(1)
}

func (m *MockSimulationDAO) ListVersions(ctx context.Context, rootID uint) ([]models.Simulation, error) {
	args := m.Called(ctx, rootID)
	simulations, _ := args.Get(0).([]models.Simulation)
	return simulations, args.Error(1)
}

type MockRecordDAO[T any] struct {
	mock.Mock
}

func (m *MockRecordDAO[T]) Create(ctx context.Context, record *T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordDAO[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*T)
	return record, args.Error(1)
}

func (m *MockRecordDAO[T]) List(ctx context.Context, simulationID *uint) ([]T, error) {
	args := m.Called(ctx, simulationID)
	records, _ := args.Get(0).([]T)
	return records, args.Error(1)
}

func (m *MockRecordDAO[T]) Update(ctx context.Context, id uint, updates map[string]interface{}) (*T, error) {
	args := m.Called(ctx, id, updates)
	record, _ := args.Get(0).(*T)
	return record, args.Error(1)
}

func (m *MockRecordDAO[T]) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
