package queries

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// ListOrdersQueryHandler returns a page of summaries, newest first.
type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (order.Page, error) {
	if err := query.Validate(); err != nil {
		return order.Page{}, err
	}

	filters := query.Filters()
	summaries, total, err := h.orderRepo.List(ctx, filters)
	if err != nil {
		return order.Page{}, err
	}

	return order.NewPage(summaries, total, filters.Page, filters.Limit), nil
}
