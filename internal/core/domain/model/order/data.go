package order

import (
	"fmt"
	"math"
	"strings"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/optional"
)

const (
	DefaultPage           = 1
	DefaultLimit          = 20
	DefaultPeriodInMonths = 12
)

// deliveryDateLayouts lists the accepted expectedDeliveryDate formats, tried in order.
var deliveryDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ItemData is one material/quantity line of a create or update payload.
type ItemData struct {
	MaterialID int64 `json:"materialId"`
	Quantity   int   `json:"quantity"`
}

// CreateData is the payload of an order creation. Zero IDs mean "not supplied".
type CreateData struct {
	OrderTypeID          int64      `json:"orderTypeId"`
	CustomerID           int64      `json:"customerId"`
	ShipToAccountID      int64      `json:"shipToAccountId"`
	BillToAccountID      int64      `json:"billToAccountId"`
	CarrierID            int64      `json:"carrierId"`
	CarrierServiceID     int64      `json:"carrierServiceId"`
	WarehouseID          *int64     `json:"warehouseId,omitempty"`
	ExpectedDeliveryDate string     `json:"expectedDeliveryDate"`
	Items                []ItemData `json:"items"`
}

// UpdateData is a partial update. Only fields that are set are applied.
type UpdateData struct {
	OrderTypeID          optional.Optional[int64]      `json:"orderTypeId"`
	CustomerID           optional.Optional[int64]      `json:"customerId"`
	ShipToAccountID      optional.Optional[int64]      `json:"shipToAccountId"`
	BillToAccountID      optional.Optional[int64]      `json:"billToAccountId"`
	CarrierID            optional.Optional[int64]      `json:"carrierId"`
	CarrierServiceID     optional.Optional[int64]      `json:"carrierServiceId"`
	WarehouseID          optional.Optional[*int64]     `json:"warehouseId"`
	ExpectedDeliveryDate optional.Optional[string]     `json:"expectedDeliveryDate"`
	Items                optional.Optional[[]ItemData] `json:"items"`
}

// Filters selects a page of order summaries. Nil fields are not applied.
// The created-at range is applied only when both FromDate and ToDate are set.
type Filters struct {
	CustomerID *int64
	Status     *Status
	FromDate   *time.Time
	ToDate     *time.Time
	Page       int
	Limit      int
}

// WithDefaults returns a copy with Page and Limit defaulted when not positive.
func (f Filters) WithDefaults() Filters {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	return f
}

// HasDateRange reports whether the created-at range filter applies.
func (f Filters) HasDateRange() bool {
	return f.FromDate != nil && f.ToDate != nil
}

// Offset returns the number of rows to skip for the requested page.
func (f Filters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Summary is the list projection of an order.
type Summary struct {
	ID                   int64     `json:"id"`
	OrderNumber          string    `json:"orderNumber"`
	Status               Status    `json:"status"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	CustomerName         string    `json:"customerName"`
	ItemCount            int       `json:"itemCount"`
	TotalQuantity        int       `json:"totalQuantity"`
	CreatedAt            time.Time `json:"createdAt"`
	ModifiedAt           time.Time `json:"modifiedAt"`
}

// Page is one page of order summaries plus pagination metadata.
type Page struct {
	Orders     []Summary `json:"orders"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

// NewPage builds a Page, computing TotalPages as ceil(total/limit).
func NewPage(orders []Summary, total int64, page, limit int) Page {
	if orders == nil {
		orders = []Summary{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Page{
		Orders:     orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// StatsFilters selects the orders that feed the statistics projection.
// A nil CustomerID aggregates over every customer.
type StatsFilters struct {
	CustomerID     *int64
	PeriodInMonths int
}

// WithDefaults returns a copy with PeriodInMonths defaulted when not positive.
func (f StatsFilters) WithDefaults() StatsFilters {
	if f.PeriodInMonths < 1 {
		f.PeriodInMonths = DefaultPeriodInMonths
	}
	return f
}

// ParseDeliveryDate parses an expectedDeliveryDate in any accepted layout.
func ParseDeliveryDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError("expectedDeliveryDate")
	}
	for _, layout := range deliveryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"expectedDeliveryDate",
		fmt.Errorf("%q is not a valid date", raw),
	)
}
