package services

import (
	"fmt"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// Validation messages returned to callers.
const (
	MsgOrderTypeRequired          = "Order type ID is required"
	MsgCustomerRequired           = "Customer ID is required"
	MsgShipToAccountRequired      = "Ship-to account ID is required"
	MsgBillToAccountRequired      = "Bill-to account ID is required"
	MsgCarrierRequired            = "Carrier ID is required"
	MsgCarrierServiceRequired     = "Carrier service ID is required"
	MsgDeliveryDateRequired       = "Expected delivery date is required"
	MsgDeliveryDateInvalid        = "Expected delivery date must be a valid date"
	MsgItemsRequired              = "Order must contain at least one item"
	msgItemMaterialRequired       = "Item %d: material ID is required"
	msgItemQuantityMustBePositive = "Item %d: quantity must be greater than 0"
)

// ValidationResult is the outcome of a validation. Errors lists every failed
// rule in evaluation order.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Err returns nil for a valid result and an errs.ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return errs.NewValidationError(r.Errors...)
}

func newValidationResult(messages []string) ValidationResult {
	return ValidationResult{IsValid: len(messages) == 0, Errors: messages}
}

// OrderValidator checks create and update payloads. It has no side effects and
// evaluates every rule instead of stopping at the first failure.
type OrderValidator struct{}

func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// ValidateCreate checks a creation payload.
func (OrderValidator) ValidateCreate(data order.CreateData) ValidationResult {
	var messages []string

	required := []struct {
		value   int64
		message string
	}{
		{data.OrderTypeID, MsgOrderTypeRequired},
		{data.CustomerID, MsgCustomerRequired},
		{data.ShipToAccountID, MsgShipToAccountRequired},
		{data.BillToAccountID, MsgBillToAccountRequired},
		{data.CarrierID, MsgCarrierRequired},
		{data.CarrierServiceID, MsgCarrierServiceRequired},
	}
	for _, field := range required {
		if field.value == 0 {
			messages = append(messages, field.message)
		}
	}

	if data.ExpectedDeliveryDate == "" {
		messages = append(messages, MsgDeliveryDateRequired)
	} else if _, err := order.ParseDeliveryDate(data.ExpectedDeliveryDate); err != nil {
		messages = append(messages, MsgDeliveryDateInvalid)
	}

	messages = append(messages, validateItems(data.Items)...)

	return newValidationResult(messages)
}

// ValidateUpdate checks only the fields present in a partial payload.
func (OrderValidator) ValidateUpdate(data order.UpdateData) ValidationResult {
	var messages []string

	if raw, ok := data.ExpectedDeliveryDate.Get(); ok {
		if _, err := order.ParseDeliveryDate(raw); err != nil {
			messages = append(messages, MsgDeliveryDateInvalid)
		}
	}

	if items, ok := data.Items.Get(); ok {
		messages = append(messages, validateItems(items)...)
	}

	return newValidationResult(messages)
}

func validateItems(items []order.ItemData) []string {
	if len(items) == 0 {
		return []string{MsgItemsRequired}
	}

	var messages []string
	for i, item := range items {
		if item.MaterialID <= 0 {
			messages = append(messages, fmt.Sprintf(msgItemMaterialRequired, i+1))
		}
		if item.Quantity <= 0 {
			messages = append(messages, fmt.Sprintf(msgItemQuantityMustBePositive, i+1))
		}
	}
	return messages
}
