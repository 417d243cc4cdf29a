package http

import (
	"sales/internal/core/domain/model/order"
	"sales/internal/generated/servers"
	"sales/internal/pkg/optional"
)

func createDataFromRequest(body servers.CreateOrderRequest) order.CreateData {
	return order.CreateData{
		OrderTypeID:          body.OrderTypeId,
		CustomerID:           body.CustomerId,
		ShipToAccountID:      body.ShipToAccountId,
		BillToAccountID:      body.BillToAccountId,
		CarrierID:            body.CarrierId,
		CarrierServiceID:     body.CarrierServiceId,
		WarehouseID:          body.WarehouseId,
		ExpectedDeliveryDate: body.ExpectedDeliveryDate,
		Items:                itemsFromRequest(body.Items),
	}
}

// updateDataFromRequest marks every non-nil field as supplied.
func updateDataFromRequest(body servers.UpdateOrderRequest) order.UpdateData {
	data := order.UpdateData{
		OrderTypeID:          fromPtr(body.OrderTypeId),
		CustomerID:           fromPtr(body.CustomerId),
		ShipToAccountID:      fromPtr(body.ShipToAccountId),
		BillToAccountID:      fromPtr(body.BillToAccountId),
		CarrierID:            fromPtr(body.CarrierId),
		CarrierServiceID:     fromPtr(body.CarrierServiceId),
		ExpectedDeliveryDate: fromPtr(body.ExpectedDeliveryDate),
	}
	if body.WarehouseId != nil {
		data.WarehouseID = optional.Some(body.WarehouseId)
	}
	if body.Items != nil {
		data.Items = optional.Some(itemsFromRequest(*body.Items))
	}
	return data
}

func fromPtr[T any](v *T) optional.Optional[T] {
	if v == nil {
		return optional.None[T]()
	}
	return optional.Some(*v)
}

func itemsFromRequest(items []servers.OrderItemInput) []order.ItemData {
	result := make([]order.ItemData, 0, len(items))
	for _, item := range items {
		result = append(result, order.ItemData{MaterialID: item.MaterialId, Quantity: item.Quantity})
	}
	return result
}

func filtersFromParams(params servers.ListOrdersParams) (order.Filters, error) {
	filters := order.Filters{
		CustomerID: params.CustomerId,
		FromDate:   params.FromDate,
		ToDate:     params.ToDate,
	}
	if params.Status != nil {
		status, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return order.Filters{}, err
		}
		filters.Status = &status
	}
	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.Limit != nil {
		filters.Limit = *params.Limit
	}
	return filters, nil
}

func orderToResponse(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			Id:           item.ID,
			MaterialId:   item.MaterialID,
			MaterialCode: nonEmpty(item.MaterialCode),
			Quantity:     item.Quantity,
			Status:       item.Status,
		}
	}

	return servers.Order{
		Id:                   o.ID,
		OrderNumber:          o.OrderNumber,
		Status:               servers.OrderStatus(o.Status.String()),
		OrderTypeId:          o.OrderTypeID,
		CustomerId:           o.CustomerID,
		CustomerName:         nonEmpty(o.CustomerName),
		ShipToAccountId:      o.ShipToAccountID,
		ShipToAccountName:    nonEmpty(o.ShipToAccountName),
		BillToAccountId:      o.BillToAccountID,
		BillToAccountName:    nonEmpty(o.BillToAccountName),
		CarrierId:            o.CarrierID,
		CarrierName:          nonEmpty(o.CarrierName),
		CarrierServiceId:     o.CarrierServiceID,
		CarrierServiceName:   nonEmpty(o.CarrierServiceName),
		WarehouseId:          o.WarehouseID,
		WarehouseName:        nonEmpty(o.WarehouseName),
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		CreatedAt:            o.CreatedAt,
		ModifiedAt:           o.ModifiedAt,
		CreatedBy:            o.CreatedBy,
		ModifiedBy:           o.ModifiedBy,
		Items:                items,
	}
}

func pageToResponse(page order.Page) servers.OrderPage {
	summaries := make([]servers.OrderSummary, len(page.Orders))
	for i, s := range page.Orders {
		summaries[i] = servers.OrderSummary{
			Id:                   s.ID,
			OrderNumber:          s.OrderNumber,
			Status:               servers.OrderStatus(s.Status.String()),
			ExpectedDeliveryDate: s.ExpectedDeliveryDate,
			CustomerName:         s.CustomerName,
			ItemCount:            s.ItemCount,
			TotalQuantity:        s.TotalQuantity,
			CreatedAt:            s.CreatedAt,
			ModifiedAt:           s.ModifiedAt,
		}
	}
	return servers.OrderPage{
		Orders:     summaries,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}

func statisticsToResponse(stats order.Statistics) servers.OrderStatistics {
	response := servers.OrderStatistics{
		TotalOrders:    stats.TotalOrders,
		OrdersByStatus: make([]servers.StatusCount, len(stats.OrdersByStatus)),
		OrdersByMonth:  make([]servers.MonthCount, len(stats.OrdersByMonth)),
		TopCarriers:    make([]servers.CarrierRanking, len(stats.TopCarriers)),
		TopMaterials:   make([]servers.MaterialRanking, len(stats.TopMaterials)),
	}
	for i, s := range stats.OrdersByStatus {
		response.OrdersByStatus[i] = servers.StatusCount{
			Status:     servers.OrderStatus(s.Status.String()),
			Count:      s.Count,
			Percentage: s.Percentage,
		}
	}
	for i, m := range stats.OrdersByMonth {
		response.OrdersByMonth[i] = servers.MonthCount{Month: m.Month, Count: m.Count}
	}
	for i, c := range stats.TopCarriers {
		response.TopCarriers[i] = servers.CarrierRanking{
			CarrierId:   c.CarrierID,
			CarrierName: c.CarrierName,
			OrderCount:  c.OrderCount,
		}
	}
	for i, m := range stats.TopMaterials {
		response.TopMaterials[i] = servers.MaterialRanking{
			MaterialId:    m.MaterialID,
			MaterialCode:  m.MaterialCode,
			Count:         m.Count,
			TotalQuantity: m.TotalQuantity,
		}
	}
	return response
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
