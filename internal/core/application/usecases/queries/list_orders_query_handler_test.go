package queries_test

import (
	"errors"
	"testing"
	"time"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(order.Filters{})
		require.NoError(t, err)
		assert.Equal(t, order.DefaultPage, query.Filters().Page)
		assert.Equal(t, order.DefaultLimit, query.Filters().Limit)
	})

	t.Run("inverted date range", func(t *testing.T) {
		from := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := queries.NewListOrdersQuery(order.Filters{FromDate: &from, ToDate: &to})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown status", func(t *testing.T) {
		status := order.Status(99)
		_, err := queries.NewListOrdersQuery(order.Filters{Status: &status})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("builds page metadata", func(t *testing.T) {
		customerID := int64(7)
		query, err := queries.NewListOrdersQuery(order.Filters{CustomerID: &customerID, Page: 2, Limit: 10})
		require.NoError(t, err)

		summaries := []order.Summary{{ID: 1, OrderNumber: "ORD2403150001"}}
		repo := new(MockOrderRepository)
		repo.On("List", ctx, query.Filters()).Return(summaries, int64(21), nil).Once()

		page, err := queries.NewListOrdersQueryHandler(repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, summaries, page.Orders)
		assert.Equal(t, int64(21), page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 10, page.Limit)
		assert.Equal(t, 3, page.TotalPages)
		repo.AssertExpectations(t)
	})

	t.Run("empty result has an empty slice", func(t *testing.T) {
		query, _ := queries.NewListOrdersQuery(order.Filters{})
		repo := new(MockOrderRepository)
		repo.On("List", ctx, query.Filters()).Return(nil, int64(0), nil).Once()

		page, err := queries.NewListOrdersQueryHandler(repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.NotNil(t, page.Orders)
		assert.Empty(t, page.Orders)
		assert.Zero(t, page.TotalPages)
	})

	t.Run("store failure", func(t *testing.T) {
		query, _ := queries.NewListOrdersQuery(order.Filters{})
		repo := new(MockOrderRepository)
		repo.On("List", ctx, query.Filters()).Return(nil, int64(0), errors.New("timeout")).Once()

		_, err := queries.NewListOrdersQueryHandler(repo).Handle(ctx, query)

		require.EqualError(t, err, "timeout")
	})
}
