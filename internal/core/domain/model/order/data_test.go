package order_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryDate(t *testing.T) {
	testCases := []struct {
		raw      string
		expected time.Time
	}{
		{"2024-03-20", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{"2024-03-20T08:15:00", time.Date(2024, 3, 20, 8, 15, 0, 0, time.UTC)},
		{"2024-03-20T08:15:00Z", time.Date(2024, 3, 20, 8, 15, 0, 0, time.UTC)},
		{"2024-03-20T08:15:00+02:00", time.Date(2024, 3, 20, 6, 15, 0, 0, time.UTC)},
		{"2024-03-20T08:15:00.250Z", time.Date(2024, 3, 20, 8, 15, 0, 250_000_000, time.UTC)},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			parsed, err := order.ParseDeliveryDate(tc.raw)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(parsed), "got %s", parsed)
		})
	}

	_, err := order.ParseDeliveryDate("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.ParseDeliveryDate("2024-02-30")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseDeliveryDate("tomorrow")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFilters_WithDefaults(t *testing.T) {
	f := order.Filters{}.WithDefaults()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 0, f.Offset())

	f = order.Filters{Page: 3, Limit: 10}.WithDefaults()
	assert.Equal(t, 20, f.Offset())
}

func TestFilters_HasDateRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, order.Filters{}.HasDateRange())
	assert.False(t, order.Filters{FromDate: &from}.HasDateRange())
	assert.False(t, order.Filters{ToDate: &to}.HasDateRange())
	assert.True(t, order.Filters{FromDate: &from, ToDate: &to}.HasDateRange())
}

func TestNewPage(t *testing.T) {
	testCases := []struct {
		total      int64
		limit      int
		totalPages int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 10, 5},
	}
	for _, tc := range testCases {
		page := order.NewPage(nil, tc.total, 1, tc.limit)
		assert.Equal(t, tc.totalPages, page.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
		assert.NotNil(t, page.Orders)
		assert.Empty(t, page.Orders)
	}
}

func TestStatsFilters_WithDefaults(t *testing.T) {
	assert.Equal(t, 12, order.StatsFilters{}.WithDefaults().PeriodInMonths)
	assert.Equal(t, 3, order.StatsFilters{PeriodInMonths: 3}.WithDefaults().PeriodInMonths)
}
