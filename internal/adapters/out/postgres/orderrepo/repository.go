package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

const orderColumns = `o.*,
	COALESCE(c.name, '') AS customer_name,
	COALESCE(ca.name, '') AS carrier_name,
	COALESCE(cs.name, '') AS carrier_service_name,
	COALESCE(w.name, '') AS warehouse_name,
	COALESCE(sa.name, '') AS ship_to_account_name,
	COALESCE(ba.name, '') AS bill_to_account_name`

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository bound to db, which is usually a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its items and writes the generated IDs back.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderNumber", aggregate.OrderNumber, err)
		}
		return err
	}
	aggregate.ID = dto.ID

	items := itemsFromDomain(dto.ID, aggregate.Items)
	if err := r.insertItems(ctx, items); err != nil {
		return err
	}
	for i := range aggregate.Items {
		aggregate.Items[i].ID = items[i].ID
		aggregate.Items[i].OrderID = dto.ID
	}

	return nil
}

// Update writes the editable scalar columns of a draft order. Items are left
// as they are. The status column is never written here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(order.Draft)).
		Select("*").
		Omit("id", "order_number", "lookup_code", "status", "created_at", "created_by").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.draftGuardFailure(ctx, aggregate.ID, order.RuleOnlyDraftCanBeUpdated)
	}

	return nil
}

// ReplaceItems deletes every item of the order and inserts items in their place.
func (r *GormOrderRepository) ReplaceItems(ctx context.Context, orderID int64, items []order.Item) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	return r.insertItems(ctx, itemsFromDomain(orderID, items))
}

// Delete removes the items of a draft order first and then the order.
func (r *GormOrderRepository) Delete(ctx context.Context, orderID int64) error {
	db := r.db.WithContext(ctx)

	draft := db.Model(&OrderDTO{}).Select("id").Where("id = ? AND status = ?", orderID, int(order.Draft))
	if err := db.Where("order_id = ? AND order_id IN (?)", orderID, draft).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("status = ?", int(order.Draft)).Delete(&OrderDTO{}, orderID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.draftGuardFailure(ctx, orderID, order.RuleOnlyDraftCanBeDeleted)
	}

	return nil
}

// GetForUpdate locks the order row until the surrounding transaction ends and
// then loads it like Get. Outside a transaction the lock is released at once.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, orderID int64) (*order.Order, error) {
	var locked []int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", orderID).
		Pluck("id", &locked).Error
	if err != nil {
		return nil, err
	}

	if len(locked) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}

	return r.Get(ctx, orderID)
}

// Get retrieves an order with its items and display names.
func (r *GormOrderRepository) Get(ctx context.Context, orderID int64) (*order.Order, error) {
	db := r.db.WithContext(ctx)

	var rows []orderRow
	err := db.Table("orders AS o").
		Select(orderColumns).
		Joins("LEFT JOIN customers c ON c.id = o.customer_id").
		Joins("LEFT JOIN carriers ca ON ca.id = o.carrier_id").
		Joins("LEFT JOIN carrier_services cs ON cs.id = o.carrier_service_id").
		Joins("LEFT JOIN warehouses w ON w.id = o.warehouse_id").
		Joins("LEFT JOIN accounts sa ON sa.id = o.ship_to_account_id").
		Joins("LEFT JOIN accounts ba ON ba.id = o.bill_to_account_id").
		Where("o.id = ?", orderID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}

	var items []itemRow
	err = db.Table("order_items AS i").
		Select("i.*, COALESCE(m.code, '') AS material_code").
		Joins("LEFT JOIN materials m ON m.id = i.material_id").
		Where("i.order_id = ?", orderID).
		Order("i.id").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return toDomain(rows[0], items), nil
}

// List returns one page of order summaries, newest first, and the total match count.
func (r *GormOrderRepository) List(ctx context.Context, filters order.Filters) ([]order.Summary, int64, error) {
	filters = filters.WithDefaults()
	db := r.db.WithContext(ctx)

	var total int64
	if err := applyFilters(db.Table("orders AS o"), filters).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []summaryRow
	err := applyFilters(db.Table("orders AS o"), filters).
		Select(`o.id, o.order_number, o.status, o.expected_delivery_date,
			COALESCE(c.name, '') AS customer_name,
			COUNT(i.id) AS item_count,
			COALESCE(SUM(i.quantity), 0) AS total_quantity,
			o.created_at, o.modified_at`).
		Joins("LEFT JOIN customers c ON c.id = o.customer_id").
		Joins("LEFT JOIN order_items i ON i.order_id = o.id").
		Group("o.id, c.name").
		Order("o.created_at DESC, o.id DESC").
		Offset(filters.Offset()).
		Limit(filters.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]order.Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, summaryToDomain(row))
	}

	return summaries, total, nil
}

// MaxOrderNumberWithPrefix returns the greatest order number starting with prefix, or "".
func (r *GormOrderRepository) MaxOrderNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var maxNumber *string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("MAX(order_number)").
		Where("order_number LIKE ?", prefix+"%").
		Scan(&maxNumber).Error
	if err != nil {
		return "", fmt.Errorf("max order number for %s: %w", prefix, err)
	}

	if maxNumber == nil {
		return "", nil
	}
	return *maxNumber, nil
}

// draftGuardFailure explains why a draft-guarded write touched no row.
func (r *GormOrderRepository) draftGuardFailure(ctx context.Context, orderID int64, rule string) error {
	var statuses []int
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID).
		Pluck("status", &statuses).Error
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		return errs.NewObjectNotFoundError("orderId", orderID)
	}
	return errs.NewStateViolationError(rule, order.Status(statuses[0]))
}

func (r *GormOrderRepository) insertItems(ctx context.Context, items []OrderItemDTO) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func applyFilters(db *gorm.DB, filters order.Filters) *gorm.DB {
	if filters.CustomerID != nil {
		db = db.Where("o.customer_id = ?", *filters.CustomerID)
	}
	if filters.Status != nil {
		db = db.Where("o.status = ?", int(*filters.Status))
	}
	if filters.HasDateRange() {
		db = db.Where("o.created_at BETWEEN ? AND ?", *filters.FromDate, *filters.ToDate)
	}
	return db
}

// isUniqueViolation reports whether err carries a postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

