package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/order"
)

// StatsScope selects the orders aggregated by OrderStatsRepository:
// orders created at or after Since, optionally of one customer.
type StatsScope struct {
	CustomerID *int64
	Since      time.Time
}

// StatusGroup is a raw count of orders in one status.
type StatusGroup struct {
	Status order.Status
	Count  int64
}

// MonthGroup is a raw count of orders created in one YYYY-MM bucket.
type MonthGroup struct {
	Month string
	Count int64
}

// CarrierGroup is a raw count of orders shipped by one carrier.
type CarrierGroup struct {
	CarrierID  int64
	OrderCount int64
}

// MaterialGroup is a raw count and quantity of items of one material.
type MaterialGroup struct {
	MaterialID    int64
	ItemCount     int64
	TotalQuantity int64
}

// OrderStatsRepository provides the aggregate primitives behind order statistics.
// Group results are returned in ascending key order. The order total is the
// sum of the CountByStatus groups.
type OrderStatsRepository interface {
	CountByStatus(ctx context.Context, scope StatsScope) ([]StatusGroup, error)
	CountByMonth(ctx context.Context, scope StatsScope) ([]MonthGroup, error)
	CountByCarrier(ctx context.Context, scope StatsScope) ([]CarrierGroup, error)
	SumByMaterial(ctx context.Context, scope StatsScope) ([]MaterialGroup, error)

	// CarrierNames resolves display names; unknown IDs are absent from the result.
	CarrierNames(ctx context.Context, ids []int64) (map[int64]string, error)

	// MaterialCodes resolves material codes; unknown IDs are absent from the result.
	MaterialCodes(ctx context.Context, ids []int64) (map[int64]string, error)
}
