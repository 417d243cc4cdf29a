package queries

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// GetOrderByIDQueryHandler loads an order outside of any transaction.
type GetOrderByIDQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewGetOrderByIDQueryHandler(orderRepo ports.OrderRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{orderRepo: orderRepo}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orderRepo.Get(ctx, query.OrderID())
}
