package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wealthplanner/internal/engines/projection"
	"wealthplanner/internal/models"
	"wealthplanner/internal/services"
)

type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) Create(ctx context.Context, in services.CreateSimulationInput) (*models.Simulation, error) {
	args := m.Called(ctx, in)
	simulation, _ := args.Get(0).(*models.Simulation)
	return simulation, args.Error(1)
}

func (m *MockSimulationService) Get(ctx context.Context, id uint) (*models.Simulation, error) {
	args := m.Called(ctx, id)
	simulation, _ := args.Get(0).(*models.Simulation)
	return simulation, args.Error(1)
}

func (m *MockSimulationService) List(ctx context.Context) ([]models.Simulation, error) {
	args := m.Called(ctx)
	simulations, _ := args.Get(0).([]models.Simulation)
	return simulations, args.Error(1)
}

func (m *MockSimulationService) Update(ctx context.Context, id uint, in services.UpdateSimulationInput) (*models.Simulation, error) {
	args := m.Called(ctx, id, in)
	simulation, _ := args.Get(0).(*models.Simulation)
	return simulation, args.Error(1)
}

func (m *MockSimulationService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSimulationService) Projection(ctx context.Context, id uint) ([]projection.ProjectionRow, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]projection.ProjectionRow)
	return rows, args.Error(1)
}

func (m *MockSimulationService) Timeline(ctx context.Context, id uint) ([]projection.TimelineEvent, error) {
	args := m.Called(ctx, id)
	events, _ := args.Get(0).([]projection.TimelineEvent)
	return events, args.Error(1)
}

func (m *MockSimulationService) CreateVersion(ctx context.Context, id uint, in services.VersionInput) (*models.Simulation, error) {
	args := m.Called(ctx, id, in)
	simulation, _ := args.Get(0).(*models.Simulation)
	return simulation, args.Error(1)
}

func (m *MockSimulationService) ListVersions(ctx context.Context, id uint) ([]models.Simulation, error) {
	args := m.Called(ctx, id)
	simulations, _ := args.Get(0).([]models.Simulation)
	return simulations, args.Error(1)
}

type MockPlanningService[T any] struct {
	mock.Mock
}

func (m *MockPlanningService[T]) Create(ctx context.Context, record *T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPlanningService[T]) Get(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*T)
	return record, args.Error(1)
}

func (m *MockPlanningService[T]) List(ctx context.Context, simulationID *uint) ([]T, error) {
	args := m.Called(ctx, simulationID)
	records, _ := args.Get(0).([]T)
	return records, args.Error(1)
}

func (m *MockPlanningService[T]) Update(ctx context.Context, id uint, updates map[string]interface{}) (*T, error) {
	args := m.Called(ctx, id, updates)
	record, _ := args.Get(0).(*T)
	return record, args.Error(1)
}

func (m *MockPlanningService[T]) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
