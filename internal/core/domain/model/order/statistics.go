package order

// UnknownName is displayed for carriers and materials that cannot be resolved.
const UnknownName = "Unknown"

// TopN bounds the carrier and material rankings.
const TopN = 5

// Statistics is the derived, read-only projection over a customer's orders
// created inside a trailing window.
type Statistics struct {
	TotalOrders    int64             `json:"totalOrders"`
	OrdersByStatus []StatusCount     `json:"ordersByStatus"`
	OrdersByMonth  []MonthCount      `json:"ordersByMonth"`
	TopCarriers    []CarrierRanking  `json:"topCarriers"`
	TopMaterials   []MaterialRanking `json:"topMaterials"`
}

// StatusCount is the share of orders in one status. Percentage has one decimal.
type StatusCount struct {
	Status     Status  `json:"status"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MonthCount is the number of orders created in one YYYY-MM bucket.
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type CarrierRanking struct {
	CarrierID   int64  `json:"carrierId"`
	CarrierName string `json:"carrierName"`
	OrderCount  int64  `json:"orderCount"`
}

type MaterialRanking struct {
	MaterialID    int64  `json:"materialId"`
	MaterialCode  string `json:"materialCode"`
	Count         int64  `json:"count"`
	TotalQuantity int64  `json:"totalQuantity"`
}
