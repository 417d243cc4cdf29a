package statsrepo_test

import (
	"context"
	"testing"
	"time"

	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/pgtest"
	"sales/internal/adapters/out/postgres/statsrepo"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

type OrderStatsRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *statsrepo.GormOrderStatsRepository
	customerID int64
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	database, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.database = database
	suite.Require().NoError(database.SeedReferenceData())
	suite.Require().NoError(database.Truncate())

	suite.repository = statsrepo.NewGormOrderStatsRepository(database.DB)
	suite.customerID = pgtest.CustomerID

	orders := orderrepo.NewGormOrderRepository(database.DB)
	fixtures := []struct {
		number    string
		createdAt time.Time
		status    order.Status
		carrierID int64
		customer  int64
	}{
		{"ORD2401100001", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), order.Draft, pgtest.CarrierID, pgtest.CustomerID},
		{"ORD2402200001", time.Date(2024, 2, 20, 8, 0, 0, 0, time.UTC), order.Submitted, pgtest.CarrierID, pgtest.CustomerID},
		{"ORD2403010001", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), order.Draft, pgtest.OtherCarrierID, pgtest.CustomerID},
		{"ORD2403020001", time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC), order.Draft, pgtest.CarrierID, pgtest.OtherCustomerID},
		{"ORD2201010001", time.Date(2022, 1, 1, 8, 0, 0, 0, time.UTC), order.Completed, pgtest.CarrierID, pgtest.CustomerID},
	}
	for _, f := range fixtures {
		o := pgtest.NewOrder(f.number, f.createdAt)
		o.Status = f.status
		o.CarrierID = f.carrierID
		o.CustomerID = f.customer
		suite.Require().NoError(orders.Add(ctx, o))
	}
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) scope() ports.StatsScope {
	return ports.StatsScope{
		CustomerID: &suite.customerID,
		Since:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) TestCountByStatus_CoversEveryOrderInWindow() {
	ctx := context.Background()
	aggregator := services.NewOrderStatisticsAggregator()

	groups, err := suite.repository.CountByStatus(ctx, suite.scope())
	suite.Require().NoError(err)
	suite.Equal(int64(3), aggregator.TotalOrders(groups))

	all := suite.scope()
	all.CustomerID = nil
	groups, err = suite.repository.CountByStatus(ctx, all)
	suite.Require().NoError(err)
	suite.Equal(int64(4), aggregator.TotalOrders(groups), "no customer aggregates over everyone")
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) TestCountByStatus() {
	groups, err := suite.repository.CountByStatus(context.Background(), suite.scope())
	suite.Require().NoError(err)

	suite.Equal([]ports.StatusGroup{
		{Status: order.Draft, Count: 2},
		{Status: order.Submitted, Count: 1},
	}, groups)
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) TestCountByMonth() {
	groups, err := suite.repository.CountByMonth(context.Background(), suite.scope())
	suite.Require().NoError(err)

	suite.Equal([]ports.MonthGroup{
		{Month: "2024-01", Count: 1},
		{Month: "2024-02", Count: 1},
		{Month: "2024-03", Count: 1},
	}, groups)
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) TestCountByCarrier() {
	groups, err := suite.repository.CountByCarrier(context.Background(), suite.scope())
	suite.Require().NoError(err)

	suite.Equal([]ports.CarrierGroup{
		{CarrierID: pgtest.CarrierID, OrderCount: 2},
		{CarrierID: pgtest.OtherCarrierID, OrderCount: 1},
	}, groups)
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) TestSumByMaterial() {
	groups, err := suite.repository.SumByMaterial(context.Background(), suite.scope())
	suite.Require().NoError(err)

	suite.Equal([]ports.MaterialGroup{
		{MaterialID: pgtest.MaterialID, ItemCount: 3, TotalQuantity: 15},
		{MaterialID: pgtest.OtherMaterialID, ItemCount: 3, TotalQuantity: 6},
	}, groups)
}

func (suite *OrderStatsRepositoryIntegrationTestSuite) TestNamesAndCodes() {
	ctx := context.Background()

	names, err := suite.repository.CarrierNames(ctx, []int64{pgtest.CarrierID, 404})
	suite.Require().NoError(err)
	suite.Equal(map[int64]string{pgtest.CarrierID: "DHL"}, names)

	codes, err := suite.repository.MaterialCodes(ctx, []int64{pgtest.OtherMaterialID})
	suite.Require().NoError(err)
	suite.Equal(map[int64]string{pgtest.OtherMaterialID: "MAT-12"}, codes)

	empty, err := suite.repository.CarrierNames(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func TestOrderStatsRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderStatsRepositoryIntegrationTestSuite))
}
