package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	shophttp "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/gateway"
	"shop/internal/adapters/out/kafka"
	"shop/internal/adapters/out/memory"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/redis"
	"shop/internal/adapters/out/seed"
	"shop/internal/core/application/operations"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/shipping"
	"shop/internal/core/ports"
	"shop/internal/jobs"
	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
)

type repositories struct {
	catalog   ports.ProductCatalog
	products  ports.ProductRepository
	orders    ports.OrderRepository
	payments  ports.PaymentRepository
	shipments ports.ShipmentRepository
}

// CompositionRoot owns every long lived dependency of the process.
type CompositionRoot struct {
	cfg         Config
	logger      *slog.Logger
	metrics     *metrics.Metrics
	repos       repositories
	publisher   ports.EventPublisher
	idempotency shophttp.IdempotencyStore
	jobs        []jobs.Job
	closers     []func() error
}

// NewCompositionRoot connects storage, the broker and the idempotency store
// and seeds the catalog.
//
// With postgres storage events go to the outbox table and a relay job moves
// them to Kafka. With memory storage events go straight to Kafka when brokers
// are configured and to an in process log otherwise.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{cfg: cfg, logger: logger, metrics: metrics.New()}

	var err error
	switch cfg.Storage {
	case StoragePostgres:
		err = c.usePostgres(ctx)
	default:
		err = c.useMemory(ctx)
	}
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	if cfg.RedisAddr != "" {
		if err = c.useRedis(ctx); err != nil {
			return nil, errors.Join(err, c.Close())
		}
	}
	return c, nil
}

func (c *CompositionRoot) usePostgres(ctx context.Context) error {
	db, err := postgres.Open(c.cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	store := postgres.NewStore(db)
	c.closers = append(c.closers, store.Close)

	if err = store.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err = store.Transaction(ctx, func(tx *postgres.Store) error {
		added, err := seed.Load(ctx, tx.Products())
		if err == nil {
			c.logger.InfoContext(ctx, "Catalog seeded", "added", added)
		}
		return err
	}); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	c.repos = repositories{
		catalog:   store.Products(),
		products:  store.Products(),
		orders:    store.Orders(),
		payments:  store.Payments(),
		shipments: store.Shipments(),
	}
	c.publisher = store.Outbox()

	brokers := kafka.ParseBrokers(c.cfg.KafkaBrokers)
	if len(brokers) == 0 {
		c.logger.WarnContext(ctx, "No Kafka brokers configured, events stay in the outbox")
		return nil
	}
	writer, err := kafka.NewPublisher(brokers)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, writer.Close)
	c.jobs = append(c.jobs, jobs.NewOutboxRelayJob(store.Outbox(), writer, c.cfg.OutboxBatchSize, c.logger))
	return nil
}

func (c *CompositionRoot) useMemory(ctx context.Context) error {
	store := memory.NewStore()
	added, err := seed.Load(ctx, store.Products())
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	c.logger.InfoContext(ctx, "Catalog seeded", "added", added)

	c.repos = repositories{
		catalog:   store.Products(),
		products:  store.Products(),
		orders:    store.Orders(),
		payments:  store.Payments(),
		shipments: store.Shipments(),
	}

	brokers := kafka.ParseBrokers(c.cfg.KafkaBrokers)
	if len(brokers) == 0 {
		c.publisher = memory.NewEventLog()
		return nil
	}
	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, publisher.Close)
	c.publisher = publisher
	return nil
}

func (c *CompositionRoot) useRedis(ctx context.Context) error {
	rdb := goredis.NewClient(&goredis.Options{Addr: c.cfg.RedisAddr, Password: c.cfg.RedisPassword})
	c.closers = append(c.closers, rdb.Close)

	store := redis.NewIdempotencyStore(rdb, c.cfg.IdempotencyTTL)
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	c.idempotency = store
	return nil
}

func (c *CompositionRoot) operationOptions() []operations.Option {
	opts := []operations.Option{operations.WithLogger(c.logger)}
	if c.cfg.StockCompensation {
		opts = append(opts, operations.WithStockCompensation())
	}
	return opts
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	workflow := commands.NewPlaceOrderWorkflow(c.repos.catalog, c.repos.orders, c.operationOptions()...)
	return commands.NewPlaceOrderCommandHandler(workflow, c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	workflow := commands.NewProcessPaymentWorkflow(c.repos.orders, gateway.NewSimulator(), c.repos.payments,
		c.operationOptions()...)
	return commands.NewProcessPaymentCommandHandler(workflow, c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	workflow := commands.NewShipOrderWorkflow(c.repos.orders, c.repos.shipments, shipping.StandardLeadTimes{},
		c.operationOptions()...)
	return commands.NewShipOrderCommandHandler(workflow, c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.repos.products)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.repos.products)
}

func (c *CompositionRoot) CreateGetCarriersQueryHandler() queries.GetCarriersQueryHandler {
	return queries.NewGetCarriersQueryHandler(shipping.StandardLeadTimes{})
}

func (c *CompositionRoot) CreateOrderExistsQueryHandler() queries.OrderExistsQueryHandler {
	return queries.NewOrderExistsQueryHandler(c.repos.orders)
}

// Router wires every handler into the HTTP API.
func (c *CompositionRoot) Router() *echo.Echo {
	server := shophttp.NewServer(shophttp.Handlers{
		PlaceOrder:     c.CreatePlaceOrderCommandHandler(),
		ProcessPayment: c.CreateProcessPaymentCommandHandler(),
		ShipOrder:      c.CreateShipOrderCommandHandler(),
		GetProducts:    c.CreateGetProductsQueryHandler(),
		GetProduct:     c.CreateGetProductQueryHandler(),
		GetCarriers:    c.CreateGetCarriersQueryHandler(),
		OrderExists:    c.CreateOrderExistsQueryHandler(),
	}, c.logger)

	return shophttp.NewRouter(server, shophttp.RouterOptions{
		Logger:      c.logger,
		Metrics:     c.metrics,
		Idempotency: c.idempotency,
	})
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.jobs...)
}

// Close releases connections in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}
