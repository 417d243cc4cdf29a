package order_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func validCreateData() order.CreateData {
	return order.CreateData{
		OrderTypeID:          1,
		CustomerID:           7,
		ShipToAccountID:      3,
		BillToAccountID:      4,
		CarrierID:            2,
		CarrierServiceID:     5,
		ExpectedDeliveryDate: "2024-03-20",
		Items: []order.ItemData{
			{MaterialID: 1, Quantity: 3},
			{MaterialID: 2, Quantity: 5},
		},
	}
}

func TestNewDraftOrder(t *testing.T) {
	t.Run("should create draft order with open items", func(t *testing.T) {
		o, err := order.NewDraftOrder("ORD2403150001", validCreateData(), 42, testNow)

		require.NoError(t, err)
		assert.Equal(t, "ORD2403150001", o.OrderNumber)
		assert.Equal(t, "ORD2403150001", o.LookupCode)
		assert.Equal(t, order.Draft, o.Status)
		assert.Equal(t, int64(7), o.CustomerID)
		assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), o.ExpectedDeliveryDate)
		assert.Equal(t, int64(42), o.CreatedBy)
		assert.Equal(t, int64(42), o.ModifiedBy)
		assert.Equal(t, testNow, o.CreatedAt)
		require.Len(t, o.Items, 2)
		for _, item := range o.Items {
			assert.Equal(t, order.ItemStatusOpen, item.Status)
			assert.Equal(t, int64(42), item.CreatedBy)
			assert.Equal(t, testNow, item.CreatedAt)
		}
		assert.Equal(t, 2, o.ItemCount())
		assert.Equal(t, 8, o.TotalQuantity())
	})

	t.Run("should join every construction failure", func(t *testing.T) {
		data := validCreateData()
		data.ExpectedDeliveryDate = "not a date"
		data.Items = nil

		o, err := order.NewDraftOrder("", data, 42, testNow)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "orderNumber")
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		data := validCreateData()
		data.Items[1].Quantity = 0

		_, err := order.NewDraftOrder("ORD2403150001", data, 42, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestOrder_DraftGate(t *testing.T) {
	for _, status := range []order.Status{order.Submitted, order.Processing, order.Completed} {
		t.Run(status.String(), func(t *testing.T) {
			o, err := order.NewDraftOrder("ORD2403150001", validCreateData(), 42, testNow)
			require.NoError(t, err)
			o.Status = status

			updateErr := o.EnsureCanBeUpdated()
			deleteErr := o.EnsureCanBeDeleted()

			var violation *errs.StateViolationError
			require.ErrorAs(t, updateErr, &violation)
			assert.Equal(t, order.RuleOnlyDraftCanBeUpdated, violation.Rule)
			require.ErrorAs(t, deleteErr, &violation)
			assert.Equal(t, order.RuleOnlyDraftCanBeDeleted, violation.Rule)
		})
	}

	t.Run("DRAFT", func(t *testing.T) {
		o, err := order.NewDraftOrder("ORD2403150001", validCreateData(), 42, testNow)
		require.NoError(t, err)

		require.NoError(t, o.EnsureCanBeUpdated())
		require.NoError(t, o.EnsureCanBeDeleted())
	})
}

func TestOrder_ApplyUpdate(t *testing.T) {
	later := testNow.Add(2 * time.Hour)

	t.Run("should apply only supplied fields", func(t *testing.T) {
		o, err := order.NewDraftOrder("ORD2403150001", validCreateData(), 42, testNow)
		require.NoError(t, err)

		err = o.ApplyUpdate(order.UpdateData{
			CarrierID:            optional.Some(int64(9)),
			ExpectedDeliveryDate: optional.Some("2024-04-01T10:00:00Z"),
		}, 43, later)

		require.NoError(t, err)
		assert.Equal(t, int64(9), o.CarrierID)
		assert.Equal(t, int64(7), o.CustomerID)
		assert.Equal(t, time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC), o.ExpectedDeliveryDate)
		assert.Len(t, o.Items, 2)
		assert.Equal(t, int64(43), o.ModifiedBy)
		assert.Equal(t, later, o.ModifiedAt)
		assert.Equal(t, int64(42), o.CreatedBy)
		assert.Equal(t, "ORD2403150001", o.OrderNumber)
	})

	t.Run("should replace the whole item set", func(t *testing.T) {
		o, err := order.NewDraftOrder("ORD2403150001", validCreateData(), 42, testNow)
		require.NoError(t, err)
		o.ID = 11

		err = o.ApplyUpdate(order.UpdateData{
			Items: optional.Some([]order.ItemData{{MaterialID: 3, Quantity: 1}}),
		}, 43, later)

		require.NoError(t, err)
		require.Len(t, o.Items, 1)
		assert.Equal(t, int64(3), o.Items[0].MaterialID)
		assert.Equal(t, int64(11), o.Items[0].OrderID)
		assert.Equal(t, int64(43), o.Items[0].CreatedBy)
	})

	t.Run("should clear warehouse when set to nil", func(t *testing.T) {
		data := validCreateData()
		warehouse := int64(5)
		data.WarehouseID = &warehouse
		o, err := order.NewDraftOrder("ORD2403150001", data, 42, testNow)
		require.NoError(t, err)

		require.NoError(t, o.ApplyUpdate(order.UpdateData{WarehouseID: optional.Some[*int64](nil)}, 43, later))

		assert.Nil(t, o.WarehouseID)
	})

	t.Run("should refuse updates outside draft", func(t *testing.T) {
		o, err := order.NewDraftOrder("ORD2403150001", validCreateData(), 42, testNow)
		require.NoError(t, err)
		o.Status = order.Submitted

		err = o.ApplyUpdate(order.UpdateData{CarrierID: optional.Some(int64(9))}, 43, later)

		require.ErrorIs(t, err, errs.ErrStateViolation)
		assert.Equal(t, int64(2), o.CarrierID)
	})

	t.Run("should refuse an empty item set", func(t *testing.T) {
		o, err := order.NewDraftOrder("ORD2403150001", validCreateData(), 42, testNow)
		require.NoError(t, err)

		err = o.ApplyUpdate(order.UpdateData{Items: optional.Some([]order.ItemData{})}, 43, later)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.Items, 2)
	})
}
