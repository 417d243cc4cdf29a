package queries

import (
	"context"
	"time"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// GetOrderStatsQueryHandler builds the Statistics projection. The independent
// aggregate queries run concurrently; names are resolved for the selected
// top carriers and materials only. The total is derived from the status
// groups so that it always matches the percentages.
type GetOrderStatsQueryHandler struct {
	statsRepo  ports.OrderStatsRepository
	aggregator services.OrderStatisticsAggregator
	clock      func() time.Time
}

func NewGetOrderStatsQueryHandler(statsRepo ports.OrderStatsRepository, clock func() time.Time) GetOrderStatsQueryHandler {
	if clock == nil {
		clock = time.Now
	}
	return GetOrderStatsQueryHandler{
		statsRepo:  statsRepo,
		aggregator: services.NewOrderStatisticsAggregator(),
		clock:      clock,
	}
}

func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (order.Statistics, error) {
	if err := query.Validate(); err != nil {
		return order.Statistics{}, err
	}

	filters := query.Filters()
	scope := ports.StatsScope{
		CustomerID: filters.CustomerID,
		Since:      h.aggregator.WindowStart(h.clock(), filters.PeriodInMonths),
	}

	var (
		statuses  []ports.StatusGroup
		months    []ports.MonthGroup
		carriers  []ports.CarrierGroup
		materials []ports.MaterialGroup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		statuses, err = h.statsRepo.CountByStatus(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		months, err = h.statsRepo.CountByMonth(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		carriers, err = h.statsRepo.CountByCarrier(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		materials, err = h.statsRepo.SumByMaterial(gctx, scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return order.Statistics{}, err
	}

	total := h.aggregator.TotalOrders(statuses)
	topCarriers := h.aggregator.SelectTopCarriers(carriers)
	topMaterials := h.aggregator.SelectTopMaterials(materials)

	var (
		carrierNames  map[int64]string
		materialCodes map[int64]string
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		carrierNames, err = h.statsRepo.CarrierNames(gctx, services.CarrierIDs(topCarriers))
		return err
	})
	g.Go(func() (err error) {
		materialCodes, err = h.statsRepo.MaterialCodes(gctx, services.MaterialIDs(topMaterials))
		return err
	})
	if err := g.Wait(); err != nil {
		return order.Statistics{}, err
	}

	return order.Statistics{
		TotalOrders:    total,
		OrdersByStatus: h.aggregator.StatusBreakdown(statuses, total),
		OrdersByMonth:  h.aggregator.MonthBreakdown(months),
		TopCarriers:    h.aggregator.CarrierRankings(topCarriers, carrierNames),
		TopMaterials:   h.aggregator.MaterialRankings(topMaterials, materialCodes),
	}, nil
}
