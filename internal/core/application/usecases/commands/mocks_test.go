package commands_test

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, previous order.Sector) error {
	args := m.Called(ctx, o, previous)
	return args.Error(0)
}

func (m *MockOrderRepository) AppendEvents(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) CountCreatedInYear(ctx context.Context, unitID kernel.UUID, year int) (int, error) {
	args := m.Called(ctx, unitID, year)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetActiveBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, a *manifest.Manifest) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) GetByRouteAndDate(
	ctx context.Context, routeID kernel.UUID, date time.Time,
) (*manifest.Manifest, error) {
	args := m.Called(ctx, routeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) AddStops(ctx context.Context, manifestID kernel.UUID, stops []*manifest.Stop) error {
	args := m.Called(ctx, manifestID, stops)
	return args.Error(0)
}

func (m *MockManifestRepository) UpdateStop(ctx context.Context, stop *manifest.Stop) error {
	args := m.Called(ctx, stop)
	return args.Error(0)
}

func (m *MockManifestRepository) UpdateStatus(ctx context.Context, a *manifest.Manifest) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockManifestRepository) GetUnfinishedBefore(ctx context.Context, day time.Time) ([]*manifest.Manifest, error) {
	return nil, errors.New("not implemented in mock")
}

type MockManifestUoW struct{ mock.Mock }

func (m *MockManifestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockUnitProvider struct{ mock.Mock }

func (m *MockUnitProvider) GetUnitPrefix(ctx context.Context, unitID kernel.UUID) (string, error) {
	args := m.Called(ctx, unitID)
	return args.String(0), args.Error(1)
}

func (m *MockUnitProvider) GetUnitIDs(ctx context.Context) ([]kernel.UUID, error) {
	return nil, errors.New("not implemented in mock")
}

type MockRouteProvider struct{ mock.Mock }

func (m *MockRouteProvider) GetActiveRoutes(ctx context.Context) ([]ports.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Route), args.Error(1)
}

func (m *MockRouteProvider) GetStops(ctx context.Context, routeID kernel.UUID) ([]ports.RouteStop, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.RouteStop), args.Error(1)
}
