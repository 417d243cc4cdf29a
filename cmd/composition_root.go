package cmd

import (
	"database/sql"
	"errors"
	"log/slog"

	httpadapter "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/sequencerepo"
	"sales/internal/adapters/out/postgres/statsrepo"
	"sales/internal/adapters/out/redis"
	"sales/internal/core/application/services"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	domain "sales/internal/core/domain/services"
	"sales/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	sqlDB      *sql.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	closers    []func() error
}

// NewCompositionRoot wires the adapters. sqlDB backs the maintenance jobs;
// request handling goes through gormDB.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, sqlDB *sql.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		sqlDB:   sqlDB,
		logger:  logger,
	}

	var opts []postgres.FactoryOption
	if configs.SequenceBackend == SequenceBackendRedis {
		client := redis.NewClient(configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
		root.closers = append(root.closers, client.Close)
		sequence := redis.NewOrderNumberSequence(client, orderrepo.NewGormOrderRepository(gormDB), redis.DefaultTTL)
		opts = append(opts, postgres.WithOrderNumberSequence(sequence))
	}
	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, opts...)

	return root
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), domain.NewOrderNumberGenerator(nil), nil)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), nil)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePurgeOrderNumberSequencesCommandHandler() commands.PurgeOrderNumberSequencesCommandHandler {
	return commands.NewPurgeOrderNumberSequencesCommandHandler(sequencerepo.NewSQLSequencePurger(c.sqlDB))
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(statsrepo.NewGormOrderStatsRepository(c.gormDB), nil)
}

func (c *CompositionRoot) CreateOrderService() (*services.OrderService, error) {
	createHandler := c.CreateCreateOrderCommandHandler()
	updateHandler := c.CreateUpdateOrderCommandHandler()
	deleteHandler := c.CreateDeleteOrderCommandHandler()

	return services.NewOrderService(services.Handlers{
		Create:   &createHandler,
		Update:   &updateHandler,
		Delete:   &deleteHandler,
		GetByID:  c.CreateGetOrderByIDQueryHandler(),
		List:     c.CreateListOrdersQueryHandler(),
		GetStats: c.CreateGetOrderStatsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	orderService, err := c.CreateOrderService()
	if err != nil {
		return nil, err
	}
	return httpadapter.NewServer(orderService), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeOrderNumberSequencesCommandHandler(),
		jobs.JobConfig{
			SequenceRetention:       c.configs.SequenceRetention(),
			SequenceCleanupSchedule: c.configs.SequenceCleanupSchedule,
		},
		c.logger,
	)
}

// Close releases the clients opened by the composition root.
func (c *CompositionRoot) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
