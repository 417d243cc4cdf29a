package pgtest

import (
	"time"

	"sales/internal/core/domain/model/order"
)

// CreateData returns a valid creation payload over the seeded reference data.
func CreateData() order.CreateData {
	warehouseID := WarehouseID
	return order.CreateData{
		OrderTypeID:          1,
		CustomerID:           CustomerID,
		ShipToAccountID:      ShipToAccountID,
		BillToAccountID:      BillToAccountID,
		CarrierID:            CarrierID,
		CarrierServiceID:     CarrierServiceID,
		WarehouseID:          &warehouseID,
		ExpectedDeliveryDate: "2024-04-01",
		Items: []order.ItemData{
			{MaterialID: MaterialID, Quantity: 5},
			{MaterialID: OtherMaterialID, Quantity: 2},
		},
	}
}

// NewOrder builds a draft order numbered number and created at createdAt.
// It panics on invalid input, which only a broken fixture can produce.
func NewOrder(number string, createdAt time.Time) *order.Order {
	o, err := order.NewDraftOrder(number, CreateData(), 42, createdAt.UTC())
	if err != nil {
		panic(err)
	}
	return o
}
