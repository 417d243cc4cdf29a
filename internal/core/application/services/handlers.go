package services

import (
	"context"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
)

// Handler contracts satisfied by the command and query handlers.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}

	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	GetOrderByIDHandler interface {
		Handle(ctx context.Context, query queries.GetOrderByIDQuery) (*order.Order, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (order.Page, error)
	}

	GetOrderStatsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (order.Statistics, error)
	}
)

// Handlers groups the handlers an OrderService dispatches to.
type Handlers struct {
	Create   CreateOrderHandler
	Update   UpdateOrderHandler
	Delete   DeleteOrderHandler
	GetByID  GetOrderByIDHandler
	List     ListOrdersHandler
	GetStats GetOrderStatsHandler
}
