package operations_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/payment"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Exists(ctx context.Context, code kernel.ProductCode) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductCatalog) Details(ctx context.Context, code kernel.ProductCode) (product.Details, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(product.Details), args.Error(1)
}

func (m *MockProductCatalog) ReserveStock(ctx context.Context, code kernel.ProductCode, q kernel.Quantity) (bool, error) {
	args := m.Called(ctx, code, q)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductCatalog) ReleaseStock(ctx context.Context, code kernel.ProductCode, q kernel.Quantity) error {
	args := m.Called(ctx, code, q)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, checked order.StockChecked) error {
	args := m.Called(ctx, checked)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.OrderID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Total(ctx context.Context, id kernel.OrderID) (kernel.Price, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(kernel.Price), args.Error(1)
}

func (m *MockOrderRepository) ShippingAddress(ctx context.Context, id kernel.OrderID) (kernel.ShippingAddress, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(kernel.ShippingAddress), args.Error(1)
}

func (m *MockOrderRepository) IsPaid(ctx context.Context, id kernel.OrderID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, id kernel.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkShipped(ctx context.Context, id kernel.OrderID, tracking, carrier string) error {
	args := m.Called(ctx, id, tracking, carrier)
	return args.Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(ctx context.Context, p payment.Validated) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Save(
	ctx context.Context,
	paymentID kernel.PaymentID,
	orderID kernel.OrderID,
	amount kernel.Price,
	reference string,
) error {
	args := m.Called(ctx, paymentID, orderID, amount, reference)
	return args.Error(0)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Save(ctx context.Context, orderID kernel.OrderID, tracking string, c shipping.Carrier) error {
	args := m.Called(ctx, orderID, tracking, c)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func code(t *testing.T, raw string) kernel.ProductCode {
	t.Helper()
	c, err := kernel.NewProductCode(raw)
	require.NoError(t, err)
	return c
}

func qty(t *testing.T, n int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(n)
	require.NoError(t, err)
	return q
}

func details(t *testing.T, name, price string, stock int) product.Details {
	t.Helper()
	n, err := kernel.NewProductName(name)
	require.NoError(t, err)
	s, err := kernel.NewStockQuantity(stock)
	require.NoError(t, err)
	return product.Details{Name: n, Price: kernel.MustParsePrice(price), Stock: s}
}

func address(t *testing.T) kernel.ShippingAddress {
	t.Helper()
	a, err := kernel.NewShippingAddress("Strada Lunga 12", "Cluj-Napoca", "400001", "Romania")
	require.NoError(t, err)
	return a
}

func validatedOrder(t *testing.T, lines ...order.ValidatedLine) order.Validated {
	t.Helper()
	name, err := kernel.NewCustomerName("Ana Popescu")
	require.NoError(t, err)
	email, err := kernel.NewCustomerEmail("ana@example.com")
	require.NoError(t, err)
	return order.NewValidated(kernel.NewOrderID(), name, email, address(t), lines, fixedNow)
}

func line(t *testing.T, c string, n int) order.ValidatedLine {
	t.Helper()
	return order.NewValidatedLine(code(t, c), qty(t, n))
}

func stockChecked(t *testing.T) order.StockChecked {
	t.Helper()
	v := validatedOrder(t, line(t, "GPU001", 2))
	d := details(t, "RTX 4090", "1599.99", 10)
	return order.NewStockChecked(v, []order.PricedLine{order.NewPricedLine(v.Lines()[0], d.Name, d.Price)})
}
