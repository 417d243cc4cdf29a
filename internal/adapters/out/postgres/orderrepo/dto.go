// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// It maps the order aggregate and its items to the orders and order_items tables and
// declares the reference tables whose names are joined in for display.
package orderrepo

import (
	"time"

	"sales/internal/core/domain/model/order"
)

// OrderDTO is the row shape of the orders table.
type OrderDTO struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	OrderNumber          string    `gorm:"type:varchar(13);not null;uniqueIndex"`
	LookupCode           string    `gorm:"type:varchar(32);not null"`
	Status               int       `gorm:"not null;index"`
	OrderTypeID          int64     `gorm:"not null"`
	CustomerID           int64     `gorm:"not null;index"`
	ShipToAccountID      int64     `gorm:"not null"`
	BillToAccountID      int64     `gorm:"not null"`
	CarrierID            int64     `gorm:"not null;index"`
	CarrierServiceID     int64     `gorm:"not null"`
	WarehouseID          *int64    `gorm:"index"`
	ExpectedDeliveryDate time.Time `gorm:"not null"`
	CreatedAt            time.Time `gorm:"not null;index"`
	ModifiedAt           time.Time `gorm:"not null"`
	CreatedBy            int64     `gorm:"not null"`
	ModifiedBy           int64     `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the row shape of the order_items table.
// The quantity check keeps a non-positive line from ever being committed.
type OrderItemDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    int64     `gorm:"not null;index"`
	MaterialID int64     `gorm:"not null;index"`
	Quantity   int       `gorm:"not null;check:chk_order_items_quantity,quantity > 0"`
	Status     int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	ModifiedAt time.Time `gorm:"not null"`
	CreatedBy  int64     `gorm:"not null"`
	ModifiedBy int64     `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// Reference tables. They are owned by other subsystems; the order store only reads them.

type CustomerDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (CustomerDTO) TableName() string { return "customers" }

type CarrierDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (CarrierDTO) TableName() string { return "carriers" }

type CarrierServiceDTO struct {
	ID        int64  `gorm:"primaryKey"`
	CarrierID int64  `gorm:"index"`
	Name      string `gorm:"not null"`
}

func (CarrierServiceDTO) TableName() string { return "carrier_services" }

type WarehouseDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (WarehouseDTO) TableName() string { return "warehouses" }

type AccountDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (AccountDTO) TableName() string { return "accounts" }

type MaterialDTO struct {
	ID          int64  `gorm:"primaryKey"`
	Code        string `gorm:"not null;uniqueIndex"`
	Description string
}

func (MaterialDTO) TableName() string { return "materials" }

// Models lists every table the order store needs, in migration order.
func Models() []any {
	return []any{
		&CustomerDTO{},
		&CarrierDTO{},
		&CarrierServiceDTO{},
		&WarehouseDTO{},
		&AccountDTO{},
		&MaterialDTO{},
		&OrderDTO{},
		&OrderItemDTO{},
	}
}

// orderRow is an orders row joined with its display names.
type orderRow struct {
	OrderDTO
	CustomerName       string
	CarrierName        string
	CarrierServiceName string
	WarehouseName      string
	ShipToAccountName  string
	BillToAccountName  string
}

// itemRow is an order_items row joined with the material code.
type itemRow struct {
	OrderItemDTO
	MaterialCode string
}

// summaryRow is one line of the order list projection.
type summaryRow struct {
	ID                   int64
	OrderNumber          string
	Status               int
	ExpectedDeliveryDate time.Time
	CustomerName         string
	ItemCount            int
	TotalQuantity        int
	CreatedAt            time.Time
	ModifiedAt           time.Time
}

// fromDomain converts an order aggregate to its orders row.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		LookupCode:           o.LookupCode,
		Status:               int(o.Status),
		OrderTypeID:          o.OrderTypeID,
		CustomerID:           o.CustomerID,
		ShipToAccountID:      o.ShipToAccountID,
		BillToAccountID:      o.BillToAccountID,
		CarrierID:            o.CarrierID,
		CarrierServiceID:     o.CarrierServiceID,
		WarehouseID:          o.WarehouseID,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		CreatedAt:            o.CreatedAt,
		ModifiedAt:           o.ModifiedAt,
		CreatedBy:            o.CreatedBy,
		ModifiedBy:           o.ModifiedBy,
	}
}

func itemsFromDomain(orderID int64, items []order.Item) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:    orderID,
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
			Status:     item.Status,
			CreatedAt:  item.CreatedAt,
			ModifiedAt: item.ModifiedAt,
			CreatedBy:  item.CreatedBy,
			ModifiedBy: item.ModifiedBy,
		})
	}
	return dtos
}

// toDomain rebuilds an order aggregate from a joined row and its items.
func toDomain(row orderRow, items []itemRow) *order.Order {
	o := &order.Order{
		ID:                   row.ID,
		OrderNumber:          row.OrderNumber,
		LookupCode:           row.LookupCode,
		Status:               order.Status(row.Status),
		OrderTypeID:          row.OrderTypeID,
		CustomerID:           row.CustomerID,
		ShipToAccountID:      row.ShipToAccountID,
		BillToAccountID:      row.BillToAccountID,
		CarrierID:            row.CarrierID,
		CarrierServiceID:     row.CarrierServiceID,
		WarehouseID:          row.WarehouseID,
		ExpectedDeliveryDate: row.ExpectedDeliveryDate.UTC(),
		CreatedAt:            row.CreatedAt.UTC(),
		ModifiedAt:           row.ModifiedAt.UTC(),
		CreatedBy:            row.CreatedBy,
		ModifiedBy:           row.ModifiedBy,
		Items:                make([]order.Item, 0, len(items)),
		DisplayFields: order.DisplayFields{
			CustomerName:       row.CustomerName,
			CarrierName:        row.CarrierName,
			CarrierServiceName: row.CarrierServiceName,
			WarehouseName:      row.WarehouseName,
			ShipToAccountName:  row.ShipToAccountName,
			BillToAccountName:  row.BillToAccountName,
		},
	}

	for _, item := range items {
		o.Items = append(o.Items, order.Item{
			ID:           item.ID,
			OrderID:      item.OrderID,
			MaterialID:   item.MaterialID,
			MaterialCode: item.MaterialCode,
			Quantity:     item.Quantity,
			Status:       item.Status,
			CreatedAt:    item.CreatedAt.UTC(),
			ModifiedAt:   item.ModifiedAt.UTC(),
			CreatedBy:    item.CreatedBy,
			ModifiedBy:   item.ModifiedBy,
		})
	}

	return o
}

func summaryToDomain(row summaryRow) order.Summary {
	return order.Summary{
		ID:                   row.ID,
		OrderNumber:          row.OrderNumber,
		Status:               order.Status(row.Status),
		ExpectedDeliveryDate: row.ExpectedDeliveryDate.UTC(),
		CustomerName:         row.CustomerName,
		ItemCount:            row.ItemCount,
		TotalQuantity:        row.TotalQuantity,
		CreatedAt:            row.CreatedAt.UTC(),
		ModifiedAt:           row.ModifiedAt.UTC(),
	}
}
