package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

const MsgOrderNotFound = "Order not found"

type operation struct {
	name    string
	failure string
}

var (
	opCreate   = operation{name: "create", failure: "Failed to create order"}
	opUpdate   = operation{name: "update", failure: "Failed to update order"}
	opDelete   = operation{name: "delete", failure: "Failed to delete order"}
	opGetByID  = operation{name: "get", failure: "Failed to fetch order"}
	opList     = operation{name: "list", failure: "Failed to fetch orders"}
	opGetStats = operation{name: "stats", failure: "Failed to fetch order statistics"}
)

// OrderService is the entry point of the order lifecycle. Every operation
// returns a Result and never an error; a panic inside a handler is recovered
// and reported as OperationFailed.
type OrderService struct {
	handlers Handlers
	logger   *slog.Logger
	metrics  *serviceMetrics
}

// Option configures an OrderService.
type Option func(*OrderService) error

// WithMeter records the service counters on meter instead of the global provider.
func WithMeter(meter metric.Meter) Option {
	return func(s *OrderService) error {
		m, err := newServiceMetrics(meter)
		if err != nil {
			return fmt.Errorf("register order metrics: %w", err)
		}
		s.metrics = m
		return nil
	}
}

func NewOrderService(handlers Handlers, logger *slog.Logger, opts ...Option) (*OrderService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &OrderService{
		handlers: handlers,
		logger:   logger.With("component", "order_service"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.metrics == nil {
		m, err := newServiceMetrics(nil)
		if err != nil {
			s.logger.Warn("order metrics disabled", "error", err)
			m = noopMetrics()
		}
		s.metrics = m
	}
	return s, nil
}

// CreateOrder validates data, assigns the next order number of the current
// day and stores a DRAFT order with its items.
func (s *OrderService) CreateOrder(ctx context.Context, data order.CreateData, actorID int64) (res Result[*order.Order]) {
	defer recoverOperation(ctx, s, opCreate, &res)

	cmd, err := commands.NewCreateOrderCommand(data, actorID)
	if err != nil {
		return failed[*order.Order](ValidationFailed, validationMessages(err)...)
	}

	created, err := s.handlers.Create.Handle(ctx, cmd)
	if err != nil {
		return resultFromError[*order.Order](ctx, s, opCreate, err, slog.Int64("customer_id", data.CustomerID))
	}

	s.metrics.created.Add(ctx, 1)
	s.logger.InfoContext(ctx, "order created",
		"order_id", created.ID,
		"order_number", created.OrderNumber,
		"actor_id", actorID,
	)
	return succeeded(created)
}

// UpdateOrder applies the fields present in data to a DRAFT order.
func (s *OrderService) UpdateOrder(
	ctx context.Context,
	orderID int64,
	data order.UpdateData,
	actorID int64,
) (res Result[*order.Order]) {
	defer recoverOperation(ctx, s, opUpdate, &res)

	cmd, err := commands.NewUpdateOrderCommand(orderID, data, actorID)
	if err != nil {
		return failed[*order.Order](ValidationFailed, validationMessages(err)...)
	}

	updated, err := s.handlers.Update.Handle(ctx, cmd)
	if err != nil {
		return resultFromError[*order.Order](ctx, s, opUpdate, err, slog.Int64("order_id", orderID))
	}

	s.metrics.updated.Add(ctx, 1)
	s.logger.InfoContext(ctx, "order updated", "order_id", orderID, "actor_id", actorID)
	return succeeded(updated)
}

// DeleteOrder removes a DRAFT order and its items.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) (res Result[struct{}]) {
	defer recoverOperation(ctx, s, opDelete, &res)

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return failed[struct{}](ValidationFailed, validationMessages(err)...)
	}

	if err = s.handlers.Delete.Handle(ctx, cmd); err != nil {
		return resultFromError[struct{}](ctx, s, opDelete, err, slog.Int64("order_id", orderID))
	}

	s.metrics.deleted.Add(ctx, 1)
	s.logger.InfoContext(ctx, "order deleted", "order_id", orderID)
	return succeeded(struct{}{})
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID int64) (res Result[*order.Order]) {
	defer recoverOperation(ctx, s, opGetByID, &res)

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return failed[*order.Order](ValidationFailed, validationMessages(err)...)
	}

	found, err := s.handlers.GetByID.Handle(ctx, query)
	if err != nil {
		return resultFromError[*order.Order](ctx, s, opGetByID, err, slog.Int64("order_id", orderID))
	}
	return succeeded(found)
}

// ListOrders returns one page of order summaries, newest first.
func (s *OrderService) ListOrders(ctx context.Context, filters order.Filters) (res Result[order.Page]) {
	defer recoverOperation(ctx, s, opList, &res)

	query, err := queries.NewListOrdersQuery(filters)
	if err != nil {
		return failed[order.Page](ValidationFailed, validationMessages(err)...)
	}

	page, err := s.handlers.List.Handle(ctx, query)
	if err != nil {
		return resultFromError[order.Page](ctx, s, opList, err)
	}
	return succeeded(page)
}

func (s *OrderService) GetOrderStats(ctx context.Context, filters order.StatsFilters) (res Result[order.Statistics]) {
	defer recoverOperation(ctx, s, opGetStats, &res)

	stats, err := s.handlers.GetStats.Handle(ctx, queries.NewGetOrderStatsQuery(filters))
	if err != nil {
		return resultFromError[order.Statistics](ctx, s, opGetStats, err)
	}
	return succeeded(stats)
}

// resultFromError maps a handler error to a Result. Not-found and state
// violations keep their domain message; anything else is logged under a fresh
// reference and reported with the operation's generic message.
func resultFromError[T any](ctx context.Context, s *OrderService, op operation, err error, attrs ...any) Result[T] {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return failed[T](NotFound, MsgOrderNotFound)
	}

	var violation *errs.StateViolationError
	if errors.As(err, &violation) {
		return failed[T](StateViolation, violation.Rule)
	}

	res := failed[T](OperationFailed, op.failure)
	res.ErrorRef = s.reportFailure(ctx, op, err, attrs...)
	return res
}

func (s *OrderService) reportFailure(ctx context.Context, op operation, err error, attrs ...any) string {
	ref := uuid.NewString()
	s.metrics.recordFailure(ctx, op.name)
	s.logger.ErrorContext(ctx, op.failure,
		append([]any{"operation", op.name, "error_ref", ref, "error", err}, attrs...)...,
	)
	return ref
}

func recoverOperation[T any](ctx context.Context, s *OrderService, op operation, res *Result[T]) {
	if r := recover(); r != nil {
		res.Kind = OperationFailed
		res.Messages = []string{op.failure}
		res.ErrorRef = s.reportFailure(ctx, op, fmt.Errorf("panic: %v", r))
		var zero T
		res.Value = zero
	}
}

// validationMessages flattens a constructor error into client messages.
func validationMessages(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var messages []string
		for _, e := range joined.Unwrap() {
			messages = append(messages, validationMessages(e)...)
		}
		return messages
	}

	var validation *errs.ValidationError
	if errors.As(err, &validation) {
		return validation.Messages
	}
	return []string{err.Error()}
}
