package services_test

import (
	"testing"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateData() order.CreateData {
	return order.CreateData{
		OrderTypeID:          1,
		CustomerID:           7,
		ShipToAccountID:      3,
		BillToAccountID:      4,
		CarrierID:            2,
		CarrierServiceID:     5,
		ExpectedDeliveryDate: "2024-04-01",
		Items:                []order.ItemData{{MaterialID: 11, Quantity: 5}},
	}
}

func TestOrderValidator_ValidateCreate(t *testing.T) {
	validator := services.NewOrderValidator()

	t.Run("valid payload", func(t *testing.T) {
		result := validator.ValidateCreate(validCreateData())

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		require.NoError(t, result.Err())
	})

	t.Run("empty payload reports every rule in order", func(t *testing.T) {
		result := validator.ValidateCreate(order.CreateData{})

		assert.False(t, result.IsValid)
		assert.Equal(t, []string{
			services.MsgOrderTypeRequired,
			services.MsgCustomerRequired,
			services.MsgShipToAccountRequired,
			services.MsgBillToAccountRequired,
			services.MsgCarrierRequired,
			services.MsgCarrierServiceRequired,
			services.MsgDeliveryDateRequired,
			services.MsgItemsRequired,
		}, result.Errors)
	})

	t.Run("unparseable delivery date", func(t *testing.T) {
		data := validCreateData()
		data.ExpectedDeliveryDate = "next tuesday"

		result := validator.ValidateCreate(data)

		assert.False(t, result.IsValid)
		assert.Equal(t, []string{services.MsgDeliveryDateInvalid}, result.Errors)
	})

	t.Run("non-positive quantities are reported per item", func(t *testing.T) {
		data := validCreateData()
		data.Items = []order.ItemData{
			{MaterialID: 1, Quantity: 1},
			{MaterialID: 2, Quantity: 0},
			{MaterialID: 3, Quantity: -4},
		}

		result := validator.ValidateCreate(data)

		assert.False(t, result.IsValid)
		assert.Equal(t, []string{
			"Item 2: quantity must be greater than 0",
			"Item 3: quantity must be greater than 0",
		}, result.Errors)
	})

	t.Run("items without material are reported per item", func(t *testing.T) {
		data := validCreateData()
		data.Items = []order.ItemData{
			{MaterialID: 1, Quantity: 1},
			{Quantity: 2},
			{MaterialID: -1, Quantity: 0},
		}

		result := validator.ValidateCreate(data)

		assert.False(t, result.IsValid)
		assert.Equal(t, []string{
			"Item 2: material ID is required",
			"Item 3: material ID is required",
			"Item 3: quantity must be greater than 0",
		}, result.Errors)
	})

	t.Run("Err wraps messages into a validation error", func(t *testing.T) {
		data := validCreateData()
		data.CustomerID = 0

		err := validator.ValidateCreate(data).Err()

		require.ErrorIs(t, err, errs.ErrValidationFailed)
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{services.MsgCustomerRequired}, validationErr.Messages)
	})
}

func TestOrderValidator_ValidateUpdate(t *testing.T) {
	validator := services.NewOrderValidator()

	t.Run("empty update is valid", func(t *testing.T) {
		result := validator.ValidateUpdate(order.UpdateData{})
		assert.True(t, result.IsValid)
	})

	t.Run("absent fields are not checked", func(t *testing.T) {
		result := validator.ValidateUpdate(order.UpdateData{
			CarrierID: optional.Some(int64(9)),
		})
		assert.True(t, result.IsValid)
	})

	t.Run("present empty item list is rejected", func(t *testing.T) {
		result := validator.ValidateUpdate(order.UpdateData{
			Items: optional.Some([]order.ItemData{}),
		})

		assert.False(t, result.IsValid)
		assert.Equal(t, []string{services.MsgItemsRequired}, result.Errors)
	})

	t.Run("present invalid date and quantity", func(t *testing.T) {
		result := validator.ValidateUpdate(order.UpdateData{
			ExpectedDeliveryDate: optional.Some("31/31/2024"),
			Items:                optional.Some([]order.ItemData{{MaterialID: 1, Quantity: 0}}),
		})

		assert.False(t, result.IsValid)
		assert.Equal(t, []string{
			services.MsgDeliveryDateInvalid,
			"Item 1: quantity must be greater than 0",
		}, result.Errors)
	})
}
