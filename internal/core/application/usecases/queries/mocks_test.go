package queries_test

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filters order.Filters) ([]order.Summary, int64, error) {
	args := m.Called(ctx, filters)
	summaries, _ := args.Get(0).([]order.Summary)
	return summaries, args.Get(1).(int64), args.Error(2)
}

type MockOrderStatsRepository struct{ mock.Mock }

func (m *MockOrderStatsRepository) CountByStatus(ctx context.Context, scope ports.StatsScope) ([]ports.StatusGroup, error) {
	args := m.Called(ctx, scope)
	groups, _ := args.Get(0).([]ports.StatusGroup)
	return groups, args.Error(1)
}

func (m *MockOrderStatsRepository) CountByMonth(ctx context.Context, scope ports.StatsScope) ([]ports.MonthGroup, error) {
	args := m.Called(ctx, scope)
	groups, _ := args.Get(0).([]ports.MonthGroup)
	return groups, args.Error(1)
}

func (m *MockOrderStatsRepository) CountByCarrier(ctx context.Context, scope ports.StatsScope) ([]ports.CarrierGroup, error) {
	args := m.Called(ctx, scope)
	groups, _ := args.Get(0).([]ports.CarrierGroup)
	return groups, args.Error(1)
}

func (m *MockOrderStatsRepository) SumByMaterial(ctx context.Context, scope ports.StatsScope) ([]ports.MaterialGroup, error) {
	args := m.Called(ctx, scope)
	groups, _ := args.Get(0).([]ports.MaterialGroup)
	return groups, args.Error(1)
}

func (m *MockOrderStatsRepository) CarrierNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	args := m.Called(ctx, ids)
	names, _ := args.Get(0).(map[int64]string)
	return names, args.Error(1)
}

func (m *MockOrderStatsRepository) MaterialCodes(ctx context.Context, ids []int64) (map[int64]string, error) {
	args := m.Called(ctx, ids)
	codes, _ := args.Get(0).(map[int64]string)
	return codes, args.Error(1)
}
