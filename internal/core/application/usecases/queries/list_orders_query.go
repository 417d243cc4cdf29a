package queries

import (
	"errors"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery selects one page of order summaries. Every supplied filter
// must match; page and limit fall back to order.DefaultPage and order.DefaultLimit.
type ListOrdersQuery struct {
	filters order.Filters

	guard guard.ConstructorGuard
}

// NewListOrdersQuery applies pagination defaults and rejects an inverted date range.
func NewListOrdersQuery(filters order.Filters) (ListOrdersQuery, error) {
	filters = filters.WithDefaults()

	if filters.HasDateRange() && filters.FromDate.After(*filters.ToDate) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("fromDate")
	}
	if filters.Status != nil {
		if err := filters.Status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{filters: filters, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filters() order.Filters {
	return q.filters
}
