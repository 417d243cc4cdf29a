package commands

import (
	"errors"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new draft sales order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(data, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, generator, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created as draft", created.OrderNumber)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	data    order.CreateData
	actorID int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand runs every creation rule against data. All rule
// failures are reported together in one errs.ValidationError.
func NewCreateOrderCommand(data order.CreateData, actorID int64) (CreateOrderCommand, error) {
	if err := services.NewOrderValidator().ValidateCreate(data).Err(); err != nil {
		return CreateOrderCommand{}, err
	}
	if actorID <= 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("actorId")
	}

	return CreateOrderCommand{
		data:    data,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Data() order.CreateData {
	return c.data
}

func (c CreateOrderCommand) ActorID() int64 {
	return c.actorID
}
