package services

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// DaysPerMonth approximates a month when computing the statistics window.
const DaysPerMonth = 30

var hundred = decimal.NewFromInt(100)

// OrderStatisticsAggregator turns raw group counts into the Statistics projection.
type OrderStatisticsAggregator struct{}

func NewOrderStatisticsAggregator() OrderStatisticsAggregator {
	return OrderStatisticsAggregator{}
}

// WindowStart returns the earliest creation time included in the window.
func (OrderStatisticsAggregator) WindowStart(now time.Time, periodInMonths int) time.Time {
	return now.Add(-time.Duration(periodInMonths*DaysPerMonth) * 24 * time.Hour)
}

// Percentage returns count/total*100 rounded half up to one decimal, or 0 when total is 0.
func Percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(count).
		Mul(hundred).
		Div(decimal.NewFromInt(total)).
		Round(1).
		InexactFloat64()
}

// TotalOrders counts the orders behind the status groups. Every order has
// exactly one status, so the groups partition the window.
func (OrderStatisticsAggregator) TotalOrders(groups []ports.StatusGroup) int64 {
	var total int64
	for _, g := range groups {
		total += g.Count
	}
	return total
}

// StatusBreakdown attaches a percentage of total to every status group.
func (OrderStatisticsAggregator) StatusBreakdown(groups []ports.StatusGroup, total int64) []order.StatusCount {
	result := make([]order.StatusCount, 0, len(groups))
	for _, g := range groups {
		result = append(result, order.StatusCount{
			Status:     g.Status,
			Count:      g.Count,
			Percentage: Percentage(g.Count, total),
		})
	}
	return result
}

// MonthBreakdown returns the month buckets in ascending YYYY-MM order.
func (OrderStatisticsAggregator) MonthBreakdown(groups []ports.MonthGroup) []order.MonthCount {
	result := make([]order.MonthCount, 0, len(groups))
	for _, g := range groups {
		result = append(result, order.MonthCount{Month: g.Month, Count: g.Count})
	}
	slices.SortFunc(result, func(a, b order.MonthCount) int {
		return cmp.Compare(a.Month, b.Month)
	})
	return result
}

// SelectTopCarriers keeps the first TopN carrier groups by ascending carrier ID.
// Order counts do not take part in the selection.
func (OrderStatisticsAggregator) SelectTopCarriers(groups []ports.CarrierGroup) []ports.CarrierGroup {
	sorted := slices.Clone(groups)
	slices.SortFunc(sorted, func(a, b ports.CarrierGroup) int {
		return cmp.Compare(a.CarrierID, b.CarrierID)
	})
	return sorted[:min(len(sorted), order.TopN)]
}

// SelectTopMaterials keeps the first TopN material groups by ascending material ID.
func (OrderStatisticsAggregator) SelectTopMaterials(groups []ports.MaterialGroup) []ports.MaterialGroup {
	sorted := slices.Clone(groups)
	slices.SortFunc(sorted, func(a, b ports.MaterialGroup) int {
		return cmp.Compare(a.MaterialID, b.MaterialID)
	})
	return sorted[:min(len(sorted), order.TopN)]
}

// CarrierRankings resolves names for the selected carriers, using
// order.UnknownName for IDs missing from names.
func (OrderStatisticsAggregator) CarrierRankings(selected []ports.CarrierGroup, names map[int64]string) []order.CarrierRanking {
	result := make([]order.CarrierRanking, 0, len(selected))
	for _, g := range selected {
		result = append(result, order.CarrierRanking{
			CarrierID:   g.CarrierID,
			CarrierName: nameOrUnknown(names, g.CarrierID),
			OrderCount:  g.OrderCount,
		})
	}
	return result
}

// MaterialRankings resolves codes for the selected materials.
func (OrderStatisticsAggregator) MaterialRankings(selected []ports.MaterialGroup, codes map[int64]string) []order.MaterialRanking {
	result := make([]order.MaterialRanking, 0, len(selected))
	for _, g := range selected {
		result = append(result, order.MaterialRanking{
			MaterialID:    g.MaterialID,
			MaterialCode:  nameOrUnknown(codes, g.MaterialID),
			Count:         g.ItemCount,
			TotalQuantity: g.TotalQuantity,
		})
	}
	return result
}

// CarrierIDs returns the IDs of groups, preserving their order.
func CarrierIDs(groups []ports.CarrierGroup) []int64 {
	ids := make([]int64, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.CarrierID)
	}
	return ids
}

func MaterialIDs(groups []ports.MaterialGroup) []int64 {
	ids := make([]int64, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.MaterialID)
	}
	return ids
}

func nameOrUnknown(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return order.UnknownName
}
