// Package statsrepo implements the aggregate queries behind order statistics.
package statsrepo

import (
	"context"

	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"gorm.io/gorm"
)

// GormOrderStatsRepository implements ports.OrderStatsRepository using GORM.
// It reads outside of any unit of work.
type GormOrderStatsRepository struct {
	db *gorm.DB
}

func NewGormOrderStatsRepository(db *gorm.DB) *GormOrderStatsRepository {
	return &GormOrderStatsRepository{db: db}
}

func (r *GormOrderStatsRepository) CountByStatus(ctx context.Context, scope ports.StatsScope) ([]ports.StatusGroup, error) {
	var rows []struct {
		Status int
		Count  int64
	}
	err := r.orders(ctx, scope).
		Select("o.status AS status, COUNT(*) AS count").
		Group("o.status").
		Order("o.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	groups := make([]ports.StatusGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, ports.StatusGroup{Status: order.Status(row.Status), Count: row.Count})
	}
	return groups, nil
}

func (r *GormOrderStatsRepository) CountByMonth(ctx context.Context, scope ports.StatsScope) ([]ports.MonthGroup, error) {
	var groups []ports.MonthGroup
	err := r.orders(ctx, scope).
		Select("TO_CHAR(o.created_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month, COUNT(*) AS count").
		Group("month").
		Order("month").
		Scan(&groups).Error
	return groups, err
}

func (r *GormOrderStatsRepository) CountByCarrier(ctx context.Context, scope ports.StatsScope) ([]ports.CarrierGroup, error) {
	var groups []ports.CarrierGroup
	err := r.orders(ctx, scope).
		Select("o.carrier_id AS carrier_id, COUNT(*) AS order_count").
		Group("o.carrier_id").
		Order("o.carrier_id").
		Scan(&groups).Error
	return groups, err
}

func (r *GormOrderStatsRepository) SumByMaterial(ctx context.Context, scope ports.StatsScope) ([]ports.MaterialGroup, error) {
	var groups []ports.MaterialGroup
	err := withScope(r.db.WithContext(ctx).Table("order_items AS i").Joins("JOIN orders o ON o.id = i.order_id"), scope).
		Select("i.material_id AS material_id, COUNT(*) AS item_count, COALESCE(SUM(i.quantity), 0) AS total_quantity").
		Group("i.material_id").
		Order("i.material_id").
		Scan(&groups).Error
	return groups, err
}

func (r *GormOrderStatsRepository) CarrierNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var carriers []orderrepo.CarrierDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&carriers).Error; err != nil {
		return nil, err
	}
	for _, c := range carriers {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (r *GormOrderStatsRepository) MaterialCodes(ctx context.Context, ids []int64) (map[int64]string, error) {
	codes := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return codes, nil
	}

	var materials []orderrepo.MaterialDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&materials).Error; err != nil {
		return nil, err
	}
	for _, m := range materials {
		codes[m.ID] = m.Code
	}
	return codes, nil
}

func (r *GormOrderStatsRepository) orders(ctx context.Context, scope ports.StatsScope) *gorm.DB {
	return withScope(r.db.WithContext(ctx).Table("orders AS o"), scope)
}

func withScope(db *gorm.DB, scope ports.StatsScope) *gorm.DB {
	db = db.Where("o.created_at >= ?", scope.Since)
	if scope.CustomerID != nil {
		db = db.Where("o.customer_id = ?", *scope.CustomerID)
	}
	return db
}
