package commands

import (
	"context"
	"time"

	"sales/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies a partial update to a draft order.
// Loading, the draft check, the optional item replacement and the scalar
// update all run in one transaction that holds the order row lock.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      func() time.Time
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock func() time.Time) UpdateOrderCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the updated order, errs.ObjectNotFoundError when it does not
// exist, or errs.StateViolationError when it is no longer a draft.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	data := cmd.Data()
	if err = existing.ApplyUpdate(data, cmd.ActorID(), h.clock().UTC()); err != nil {
		return nil, err
	}

	if data.Items.IsSet() {
		if err = orderRepo.ReplaceItems(ctx, existing.ID, existing.Items); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	updated, err := orderRepo.Get(ctx, existing.ID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
