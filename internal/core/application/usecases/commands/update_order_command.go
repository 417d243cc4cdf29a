package commands

import (
	"errors"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of a draft order.
// Only the fields set in the payload are changed; a set item list replaces
// every existing item.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	data    order.UpdateData
	actorID int64

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the fields present in data.
func NewUpdateOrderCommand(orderID int64, data order.UpdateData, actorID int64) (UpdateOrderCommand, error) {
	if err := services.NewOrderValidator().ValidateUpdate(data).Err(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if err := errors.Join(requirePositive("orderId", orderID), requirePositive("actorId", actorID)); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		data:    data,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderCommand) Data() order.UpdateData {
	return c.data
}

func (c UpdateOrderCommand) ActorID() int64 {
	return c.actorID
}

func requirePositive(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
