package http

import (
	"context"
	"net/http"

	"sales/internal/core/application/services"
	"sales/internal/core/domain/model/order"
	"sales/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// OrderService is the application boundary the HTTP handlers call into.
type OrderService interface {
	CreateOrder(ctx context.Context, data order.CreateData, actorID int64) services.Result[*order.Order]
	UpdateOrder(ctx context.Context, orderID int64, data order.UpdateData, actorID int64) services.Result[*order.Order]
	DeleteOrder(ctx context.Context, orderID int64) services.Result[struct{}]
	GetOrderByID(ctx context.Context, orderID int64) services.Result[*order.Order]
	ListOrders(ctx context.Context, filters order.Filters) services.Result[order.Page]
	GetOrderStats(ctx context.Context, filters order.StatsFilters) services.Result[order.Statistics]
}

// Server implements the ServerInterface for handling HTTP requests.
// It translates wire types to domain payloads and Result kinds to status codes.
type Server struct {
	orders OrderService
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(orders OrderService) *Server {
	return &Server{orders: orders}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	filters, err := filtersFromParams(params)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status",
		})
	}

	res := s.orders.ListOrders(ctx.Request().Context(), filters)
	if !res.IsSuccess() {
		return writeFailure(ctx, res)
	}
	return ctx.JSON(http.StatusOK, pageToResponse(res.Value))
}

// CreateOrder handles POST /api/v1/orders - creates a draft order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	res := s.orders.CreateOrder(ctx.Request().Context(), createDataFromRequest(body), params.XUserId)
	if !res.IsSuccess() {
		return writeFailure(ctx, res)
	}
	return ctx.JSON(http.StatusCreated, orderToResponse(res.Value))
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context, params servers.GetOrderStatsParams) error {
	filters := order.StatsFilters{CustomerID: params.CustomerId}
	if params.PeriodInMonths != nil {
		filters.PeriodInMonths = *params.PeriodInMonths
	}

	res := s.orders.GetOrderStats(ctx.Request().Context(), filters)
	if !res.IsSuccess() {
		return writeFailure(ctx, res)
	}
	return ctx.JSON(http.StatusOK, statisticsToResponse(res.Value))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID int64) error {
	res := s.orders.DeleteOrder(ctx.Request().Context(), orderID)
	if !res.IsSuccess() {
		return writeFailure(ctx, res)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	res := s.orders.GetOrderByID(ctx.Request().Context(), orderID)
	if !res.IsSuccess() {
		return writeFailure(ctx, res)
	}
	return ctx.JSON(http.StatusOK, orderToResponse(res.Value))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderID int64, params servers.UpdateOrderParams) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	res := s.orders.UpdateOrder(ctx.Request().Context(), orderID, updateDataFromRequest(body), params.XUserId)
	if !res.IsSuccess() {
		return writeFailure(ctx, res)
	}
	return ctx.JSON(http.StatusOK, orderToResponse(res.Value))
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// writeFailure renders a non-successful Result. Validation failures list every
// message in details.
func writeFailure[T any](ctx echo.Context, res services.Result[T]) error {
	code := statusCode(res.Kind)
	body := servers.Error{Code: code, Message: res.Message()}

	if res.Kind == services.ValidationFailed {
		details := res.Messages
		body.Message = "Validation failed"
		body.Details = &details
	}
	if res.ErrorRef != "" {
		ref := res.ErrorRef
		body.ErrorRef = &ref
	}
	return ctx.JSON(code, body)
}

func statusCode(kind services.Kind) int {
	switch kind {
	case services.Success:
		return http.StatusOK
	case services.ValidationFailed:
		return http.StatusBadRequest
	case services.NotFound:
		return http.StatusNotFound
	case services.StateViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
