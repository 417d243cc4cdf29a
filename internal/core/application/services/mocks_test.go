package services_test

import (
	"context"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCreateHandler struct{ mock.Mock }

func (m *MockCreateHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdateHandler struct{ mock.Mock }

func (m *MockUpdateHandler) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockDeleteHandler struct{ mock.Mock }

func (m *MockDeleteHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetByIDHandler struct{ mock.Mock }

func (m *MockGetByIDHandler) Handle(ctx context.Context, query queries.GetOrderByIDQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockListHandler struct{ mock.Mock }

func (m *MockListHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) (order.Page, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(order.Page), args.Error(1)
}

type MockStatsHandler struct{ mock.Mock }

func (m *MockStatsHandler) Handle(ctx context.Context, query queries.GetOrderStatsQuery) (order.Statistics, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(order.Statistics), args.Error(1)
}
