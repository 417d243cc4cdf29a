package order

import (
	"errors"
	"fmt"
	"time"

	"sales/internal/pkg/errs"
)

// Item is one material line owned by an order.
type Item struct {
	ID           int64     `json:"id"`
	OrderID      int64     `json:"orderId"`
	MaterialID   int64     `json:"materialId"`
	MaterialCode string    `json:"materialCode,omitempty"`
	Quantity     int       `json:"quantity"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	ModifiedAt   time.Time `json:"modifiedAt"`
	CreatedBy    int64     `json:"createdBy"`
	ModifiedBy   int64     `json:"modifiedBy"`
}

// NewItem builds an open item stamped with actorID and now.
func NewItem(data ItemData, actorID int64, now time.Time) (Item, error) {
	if data.MaterialID <= 0 {
		return Item{}, errs.NewValueIsRequiredError("materialId")
	}
	if data.Quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", data.Quantity),
		)
	}
	return Item{
		MaterialID: data.MaterialID,
		Quantity:   data.Quantity,
		Status:     ItemStatusOpen,
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  actorID,
		ModifiedBy: actorID,
	}, nil
}

// DisplayFields are read-only names joined from reference tables for display.
type DisplayFields struct {
	CustomerName       string `json:"customerName,omitempty"`
	CarrierName        string `json:"carrierName,omitempty"`
	CarrierServiceName string `json:"carrierServiceName,omitempty"`
	WarehouseName      string `json:"warehouseName,omitempty"`
	ShipToAccountName  string `json:"shipToAccountName,omitempty"`
	BillToAccountName  string `json:"billToAccountName,omitempty"`
}

// Order is the aggregate root of the sales system.
//
// Invariants:
//   - Status is one of Draft, Submitted, Processing, Completed
//   - Only Draft orders may be updated or deleted
//   - Items is never empty
//   - OrderNumber is set at creation and never changes
type Order struct {
	ID                   int64     `json:"id"`
	OrderNumber          string    `json:"orderNumber"`
	LookupCode           string    `json:"lookupCode"`
	Status               Status    `json:"status"`
	OrderTypeID          int64     `json:"orderTypeId"`
	CustomerID           int64     `json:"customerId"`
	ShipToAccountID      int64     `json:"shipToAccountId"`
	BillToAccountID      int64     `json:"billToAccountId"`
	CarrierID            int64     `json:"carrierId"`
	CarrierServiceID     int64     `json:"carrierServiceId"`
	WarehouseID          *int64    `json:"warehouseId,omitempty"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	CreatedAt            time.Time `json:"createdAt"`
	ModifiedAt           time.Time `json:"modifiedAt"`
	CreatedBy            int64     `json:"createdBy"`
	ModifiedBy           int64     `json:"modifiedBy"`
	Items                []Item    `json:"items"`

	DisplayFields
}

// NewDraftOrder builds a Draft order numbered number from already validated data.
// The lookup code mirrors the order number. Every constraint is still checked
// and all failures are returned joined.
func NewDraftOrder(number string, data CreateData, actorID int64, now time.Time) (*Order, error) {
	o := &Order{
		OrderNumber:      number,
		LookupCode:       number,
		Status:           Draft,
		OrderTypeID:      data.OrderTypeID,
		CustomerID:       data.CustomerID,
		ShipToAccountID:  data.ShipToAccountID,
		BillToAccountID:  data.BillToAccountID,
		CarrierID:        data.CarrierID,
		CarrierServiceID: data.CarrierServiceID,
		WarehouseID:      data.WarehouseID,
		CreatedAt:        now,
		ModifiedAt:       now,
		CreatedBy:        actorID,
		ModifiedBy:       actorID,
	}

	var numberErr error
	if number == "" {
		numberErr = errs.NewValueIsRequiredError("orderNumber")
	}

	if err := errors.Join(
		numberErr,
		o.setExpectedDeliveryDate(data.ExpectedDeliveryDate),
		o.setItems(data.Items, actorID, now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// EnsureCanBeUpdated returns a StateViolationError unless the order is Draft.
func (o *Order) EnsureCanBeUpdated() error {
	if !o.Status.IsMutable() {
		return errs.NewStateViolationError(RuleOnlyDraftCanBeUpdated, o.Status)
	}
	return nil
}

// EnsureCanBeDeleted returns a StateViolationError unless the order is Draft.
func (o *Order) EnsureCanBeDeleted() error {
	if !o.Status.IsMutable() {
		return errs.NewStateViolationError(RuleOnlyDraftCanBeDeleted, o.Status)
	}
	return nil
}

// ApplyUpdate applies every field set in data and stamps the modification.
// When data.Items is set the whole item collection is replaced.
func (o *Order) ApplyUpdate(data UpdateData, actorID int64, now time.Time) error {
	if err := o.EnsureCanBeUpdated(); err != nil {
		return err
	}

	if v, ok := data.OrderTypeID.Get(); ok {
		o.OrderTypeID = v
	}
	if v, ok := data.CustomerID.Get(); ok {
		o.CustomerID = v
	}
	if v, ok := data.ShipToAccountID.Get(); ok {
		o.ShipToAccountID = v
	}
	if v, ok := data.BillToAccountID.Get(); ok {
		o.BillToAccountID = v
	}
	if v, ok := data.CarrierID.Get(); ok {
		o.CarrierID = v
	}
	if v, ok := data.CarrierServiceID.Get(); ok {
		o.CarrierServiceID = v
	}
	if v, ok := data.WarehouseID.Get(); ok {
		o.WarehouseID = v
	}
	if v, ok := data.ExpectedDeliveryDate.Get(); ok {
		if err := o.setExpectedDeliveryDate(v); err != nil {
			return err
		}
	}
	if v, ok := data.Items.Get(); ok {
		if err := o.setItems(v, actorID, now); err != nil {
			return err
		}
	}

	o.ModifiedAt = now
	o.ModifiedBy = actorID
	return nil
}

// ItemCount returns the number of items.
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// TotalQuantity returns the summed quantity of every item.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

func (o *Order) setExpectedDeliveryDate(raw string) error {
	date, err := ParseDeliveryDate(raw)
	if err != nil {
		return err
	}
	o.ExpectedDeliveryDate = date
	return nil
}

func (o *Order) setItems(data []ItemData, actorID int64, now time.Time) error {
	if len(data) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]Item, 0, len(data))
	for _, d := range data {
		item, err := NewItem(d, actorID, now)
		if err != nil {
			return err
		}
		item.OrderID = o.ID
		items = append(items, item)
	}

	o.Items = items
	return nil
}
