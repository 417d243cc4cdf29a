package queries

import (
	"errors"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery requests statistics over the orders created in the last
// PeriodInMonths (default 12). A nil customer aggregates over every customer.
type GetOrderStatsQuery struct {
	filters order.StatsFilters

	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery(filters order.StatsFilters) GetOrderStatsQuery {
	return GetOrderStatsQuery{filters: filters.WithDefaults(), guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

func (q GetOrderStatsQuery) Filters() order.StatsFilters {
	return q.filters
}
