// Package ports defines the persistence contracts of the sales core.
// These interfaces establish the boundary between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// the items they own.
type OrderRepository interface {
	// Add persists a new order and all of its items, assigning their IDs.
	// Returns errs.ObjectAlreadyExistsError when the order number is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the scalar fields and audit stamp of a draft order.
	// Items and status are not touched; use ReplaceItems for items.
	// Returns errs.StateViolationError when the stored order is no longer a draft.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceItems deletes every item of the order and inserts items in their place.
	ReplaceItems(ctx context.Context, orderID int64, items []order.Item) error

	// Delete removes the items of a draft order and then the order itself.
	// Returns errs.StateViolationError when the stored order is no longer a draft.
	Delete(ctx context.Context, orderID int64) error

	// Get retrieves an order with its items and joined display fields.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, orderID int64) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the current
	// transaction commits or rolls back.
	GetForUpdate(ctx context.Context, orderID int64) (*order.Order, error)

	// List returns the requested page of summaries ordered by creation time
	// descending, plus the total number of matching orders.
	List(ctx context.Context, filters order.Filters) ([]order.Summary, int64, error)

	// MaxOrderNumberWithPrefix returns the lexicographically greatest order number
	// starting with prefix, or "" when none exists.
	MaxOrderNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
