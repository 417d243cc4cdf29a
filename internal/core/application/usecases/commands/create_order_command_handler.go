package commands

import (
	"context"
	"errors"
	"time"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/pkg/errs"
)

// DefaultCreateAttempts bounds how often creation is retried when the allocated
// order number is already taken.
const DefaultCreateAttempts = 3

// CreateOrderCommandHandler allocates an order number and persists a new draft
// order with its items in one transaction.
//
// A unique-number conflict can only happen when numbers are allocated outside
// the transaction (the redis sequence) or written by another process; the
// handler then retries with a fresh number.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	generator   services.OrderNumberGenerator
	clock       func() time.Time
	maxAttempts int
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	generator services.OrderNumberGenerator,
	clock func() time.Time,
) CreateOrderCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		generator:   generator,
		clock:       clock,
		maxAttempts: DefaultCreateAttempts,
	}
}

// Handle creates the order and returns it as stored, including joined display names.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		created, err := h.create(ctx, cmd)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) || attempt >= h.maxAttempts {
			return nil, err
		}
	}
}

func (h *CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := h.generator.Next(ctx, uow.OrderNumberSequence())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewDraftOrder(number, cmd.Data(), cmd.ActorID(), h.clock().UTC())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	created, err := orderRepo.Get(ctx, aggregate.ID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
