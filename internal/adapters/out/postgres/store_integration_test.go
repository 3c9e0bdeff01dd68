package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/outboxrepo"
	"shop/internal/adapters/out/postgres/paymentrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/shipmentrepo"
	"shop/internal/adapters/out/seed"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/shipping"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	_ ports.ProductCatalog     = (*productrepo.GormProductRepository)(nil)
	_ ports.ProductRepository  = (*productrepo.GormProductRepository)(nil)
	_ ports.OrderRepository    = (*orderrepo.GormOrderRepository)(nil)
	_ ports.PaymentRepository  = (*paymentrepo.GormPaymentRepository)(nil)
	_ ports.ShipmentRepository = (*shipmentrepo.GormShipmentRepository)(nil)
	_ ports.EventPublisher     = (*outboxrepo.GormOutboxRepository)(nil)
	_ ports.Outbox             = (*outboxrepo.GormOutboxRepository)(nil)
)

// StoreIntegrationTestSuite runs the repositories against a real PostgreSQL
// container.
type StoreIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	store     *postgres.Store
}

func (suite *StoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres.Open(dsn)
	suite.Require().NoError(err)

	suite.store = postgres.NewStore(db)
	suite.Require().NoError(suite.store.AutoMigrate(ctx))
}

func (suite *StoreIntegrationTestSuite) TearDownSuite() {
	if suite.store != nil {
		suite.Require().NoError(suite.store.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreIntegrationTestSuite) SetupTest() {
	err := suite.store.DB().Exec(
		"TRUNCATE TABLE order_lines, orders, payments, shipments, outbox, products CASCADE").Error
	suite.Require().NoError(err)

	_, err = seed.Load(context.Background(), suite.store.Products())
	suite.Require().NoError(err)
}

func (suite *StoreIntegrationTestSuite) code(raw string) kernel.ProductCode {
	c, err := kernel.NewProductCode(raw)
	suite.Require().NoError(err)
	return c
}

func (suite *StoreIntegrationTestSuite) quantity(n int) kernel.Quantity {
	q, err := kernel.NewQuantity(n)
	suite.Require().NoError(err)
	return q
}

func (suite *StoreIntegrationTestSuite) stockChecked() order.StockChecked {
	name, err := kernel.NewCustomerName("Ana Popescu")
	suite.Require().NoError(err)
	email, err := kernel.NewCustomerEmail("ana@example.com")
	suite.Require().NoError(err)
	address, err := kernel.NewShippingAddress("Strada Lunga 12", "Cluj-Napoca", "400001", "Romania")
	suite.Require().NoError(err)
	productName, err := kernel.NewProductName("NVIDIA GeForce RTX 4090")
	suite.Require().NoError(err)

	gpu := order.NewValidatedLine(suite.code("GPU001"), suite.quantity(2))
	ram := order.NewValidatedLine(suite.code("RAM001"), suite.quantity(1))
	v := order.NewValidated(kernel.NewOrderID(), name, email, address,
		[]order.ValidatedLine{gpu, ram}, time.Now().UTC().Truncate(time.Microsecond))
	return order.NewStockChecked(v, []order.PricedLine{
		order.NewPricedLine(gpu, productName, kernel.MustParsePrice("1599.99")),
		order.NewPricedLine(ram, productName, kernel.MustParsePrice("129.99")),
	})
}

func (suite *StoreIntegrationTestSuite) TestProducts_SeededCatalogIsSortedByCode() {
	all, err := suite.store.Products().GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Len(all, 12)
	suite.Equal("CASE001", all[0].Code().String())
}

func (suite *StoreIntegrationTestSuite) TestProducts_GetByCategoryIgnoresCase() {
	gpus, err := suite.store.Products().GetByCategory(context.Background(), "gpu")

	suite.Require().NoError(err)
	suite.Len(gpus, 2)
}

func (suite *StoreIntegrationTestSuite) TestProducts_GetUnknownReturnsNotFound() {
	_, err := suite.store.Products().Get(context.Background(), suite.code("XYZ999"))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreIntegrationTestSuite) TestProducts_ReserveAndRelease() {
	ctx := context.Background()
	repo := suite.store.Products()

	reserved, err := repo.ReserveStock(ctx, suite.code("GPU001"), suite.quantity(20))
	suite.Require().NoError(err)
	suite.True(reserved)

	reserved, err = repo.ReserveStock(ctx, suite.code("GPU001"), suite.quantity(6))
	suite.Require().NoError(err)
	suite.False(reserved)

	suite.Require().NoError(repo.ReleaseStock(ctx, suite.code("GPU001"), suite.quantity(3)))

	details, err := repo.Details(ctx, suite.code("GPU001"))
	suite.Require().NoError(err)
	suite.Equal(8, details.Stock.Int())
}

func (suite *StoreIntegrationTestSuite) TestProducts_ReleaseNeverExceedsMaximumStock() {
	ctx := context.Background()
	repo := suite.store.Products()
	code := suite.code("GPU001")
	suite.Require().NoError(suite.store.DB().Model(&productrepo.ProductDTO{}).
		Where("code = ?", code.String()).Update("stock", kernel.StockQuantityMax-1).Error)

	err := repo.ReleaseStock(ctx, code, suite.quantity(3))
	suite.ErrorIs(err, errs.ErrValueIsOutOfRange)

	details, err := repo.Details(ctx, code)
	suite.Require().NoError(err)
	suite.Equal(kernel.StockQuantityMax-1, details.Stock.Int())

	suite.Require().NoError(repo.ReleaseStock(ctx, code, suite.quantity(1)))
	details, err = repo.Details(ctx, code)
	suite.Require().NoError(err)
	suite.Equal(kernel.StockQuantityMax, details.Stock.Int())
}

func (suite *StoreIntegrationTestSuite) TestProducts_ReleaseUnknownProductFails() {
	err := suite.store.Products().ReleaseStock(context.Background(), suite.code("XYZ999"), suite.quantity(1))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreIntegrationTestSuite) TestProducts_ReserveUnknownProductFails() {
	_, err := suite.store.Products().ReserveStock(context.Background(), suite.code("XYZ999"), suite.quantity(1))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreIntegrationTestSuite) TestProducts_ConcurrentReservationsNeverOversell() {
	ctx := context.Background()
	repo := suite.store.Products()
	one := suite.quantity(1)
	code := suite.code("GPU001")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.ReserveStock(ctx, code, one)
			if err == nil && ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	details, err := repo.Details(ctx, code)
	suite.Require().NoError(err)
	suite.Equal(25, granted)
	suite.Equal(0, details.Stock.Int())
}

func (suite *StoreIntegrationTestSuite) TestOrders_SaveAndGet() {
	ctx := context.Background()
	checked := suite.stockChecked()

	suite.Require().NoError(suite.store.Orders().Save(ctx, checked))

	stored, err := suite.store.Orders().Get(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPlaced, stored.Status())
	suite.Equal("3329.97", stored.TotalPrice().String())
	suite.Require().Len(stored.Lines(), 2)
	suite.Equal("GPU001", stored.Lines()[0].ProductCode().String())
	suite.Equal("RAM001", stored.Lines()[1].ProductCode().String())
	suite.True(checked.CreatedAt().Equal(stored.CreatedAt()))

	exists, err := suite.store.Orders().Exists(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.True(exists)

	total, err := suite.store.Orders().Total(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.True(total.IsEqual(kernel.MustParsePrice("3329.97")))

	address, err := suite.store.Orders().ShippingAddress(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.Equal("Strada Lunga 12, Cluj-Napoca, 400001, Romania", address.FullAddress())
}

func (suite *StoreIntegrationTestSuite) TestOrders_UnknownOrder() {
	ctx := context.Background()
	id := kernel.NewOrderID()

	exists, err := suite.store.Orders().Exists(ctx, id)
	suite.Require().NoError(err)
	suite.False(exists)

	_, err = suite.store.Orders().Get(ctx, id)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.store.Orders().IsPaid(ctx, id)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreIntegrationTestSuite) TestOrders_PayThenShip() {
	ctx := context.Background()
	checked := suite.stockChecked()
	orders := suite.store.Orders()
	suite.Require().NoError(orders.Save(ctx, checked))

	paid, err := orders.IsPaid(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.False(paid)

	suite.Require().Error(orders.MarkShipped(ctx, checked.OrderID(), "DHL2026101900000000", "DHL"))
	suite.Require().NoError(orders.MarkPaid(ctx, checked.OrderID()))
	suite.Require().Error(orders.MarkPaid(ctx, checked.OrderID()))
	suite.Require().NoError(orders.MarkShipped(ctx, checked.OrderID(), "DHL2026101900000000", "DHL"))

	stored, err := orders.Get(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusShipped, stored.Status())
	suite.NotNil(stored.PaidAt())
	suite.NotNil(stored.ShippedAt())
	suite.Equal("DHL2026101900000000", stored.TrackingNumber())
	suite.Equal("DHL", stored.Carrier())

	paid, err = orders.IsPaid(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.True(paid)
}

func (suite *StoreIntegrationTestSuite) TestPaymentsAndShipments() {
	ctx := context.Background()
	checked := suite.stockChecked()
	suite.Require().NoError(suite.store.Orders().Save(ctx, checked))

	err := suite.store.Payments().Save(ctx, kernel.NewPaymentID(), checked.OrderID(),
		kernel.MustParsePrice("3329.97"), "TXN-20261019120000-ABCDEF12")
	suite.Require().NoError(err)

	payments, err := suite.store.Payments().ForOrder(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.Require().Len(payments, 1)
	suite.Equal("3329.97", payments[0].Amount.StringFixed(2))

	carrier, err := shipping.ParseCarrier("fedex")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Shipments().Save(ctx, checked.OrderID(), "FDX2026101900000001", carrier))
	suite.Require().Error(suite.store.Shipments().Save(ctx, checked.OrderID(), "FDX2026101900000002", carrier))

	shipment, err := suite.store.Shipments().ForOrder(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.Equal("FEDEX", shipment.Carrier)
}

func (suite *StoreIntegrationTestSuite) TestOutbox_PublishFetchMarkSent() {
	ctx := context.Background()
	outbox := suite.store.Outbox()

	suite.Require().NoError(outbox.Publish(ctx, ports.TopicOrderPlaced, "first", map[string]string{"n": "1"}))
	suite.Require().NoError(outbox.Publish(ctx, ports.TopicOrderFailed, "", map[string]string{"n": "2"}))

	pending, err := outbox.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(ports.TopicOrderPlaced, pending[0].Topic)
	suite.JSONEq(`{"n":"1"}`, string(pending[0].Payload))

	suite.Require().NoError(outbox.MarkSent(ctx, pending[0].ID))
	suite.ErrorIs(outbox.MarkSent(ctx, pending[0].ID), errs.ErrObjectNotFound)

	pending, err = outbox.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(ports.TopicOrderFailed, pending[0].Topic)
}

func (suite *StoreIntegrationTestSuite) TestTransaction_RollsBackOnError() {
	ctx := context.Background()
	checked := suite.stockChecked()
	boom := errors.New("boom")

	err := suite.store.Transaction(ctx, func(tx *postgres.Store) error {
		if err := tx.Orders().Save(ctx, checked); err != nil {
			return err
		}
		if err := tx.Outbox().Publish(ctx, ports.TopicOrderPlaced, checked.OrderID().String(), "x"); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	exists, err := suite.store.Orders().Exists(ctx, checked.OrderID())
	suite.Require().NoError(err)
	suite.False(exists)

	pending, err := suite.store.Outbox().FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func TestStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreIntegrationTestSuite))
}
