package commands

import (
	"context"
)

// DeleteOrderCommandHandler deletes a draft order. Items are removed before
// the order, inside one transaction that holds the order row lock.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist and
// errs.StateViolationError when it is no longer a draft.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.EnsureCanBeDeleted(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, existing.ID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
