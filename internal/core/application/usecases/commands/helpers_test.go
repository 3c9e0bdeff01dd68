package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shop/internal/adapters/out/gateway"
	"shop/internal/adapters/out/memory"
	"shop/internal/core/application/operations"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/require"
)

// shop wires the three workflows to one memory store.
type shop struct {
	store    *memory.Store
	events   *memory.EventLog
	recorder *recorder
	orders   commands.PlaceOrderCommandHandler
	payments commands.ProcessPaymentCommandHandler
	shipping commands.ShipOrderCommandHandler
}

func newShop(t *testing.T, opts ...operations.Option) *shop {
	t.Helper()
	store := memory.NewStore()
	events := memory.NewEventLog()
	rec := &recorder{}

	return &shop{
		store:    store,
		events:   events,
		recorder: rec,
		orders: commands.NewPlaceOrderCommandHandler(
			commands.NewPlaceOrderWorkflow(store.Products(), store.Orders(), opts...),
			events, rec, nil),
		payments: commands.NewProcessPaymentCommandHandler(
			commands.NewProcessPaymentWorkflow(store.Orders(), gateway.NewSimulator(), store.Payments(), opts...),
			events, rec, nil),
		shipping: commands.NewShipOrderCommandHandler(
			commands.NewShipOrderWorkflow(store.Orders(), store.Shipments(), shipping.StandardLeadTimes{}, opts...),
			events, rec, nil),
	}
}

func (s *shop) addProduct(t *testing.T, code, price string, stock int) {
	t.Helper()
	c, err := kernel.NewProductCode(code)
	require.NoError(t, err)
	n, err := kernel.NewProductName("Product " + code)
	require.NoError(t, err)
	st, err := kernel.NewStockQuantity(stock)
	require.NoError(t, err)
	p, err := product.NewProduct(c, n, "", "Hardware", kernel.MustParsePrice(price), st)
	require.NoError(t, err)
	require.NoError(t, s.store.Products().Add(context.Background(), p))
}

func (s *shop) stock(t *testing.T, code string) int {
	t.Helper()
	c, err := kernel.NewProductCode(code)
	require.NoError(t, err)
	d, err := s.store.Products().Details(context.Background(), c)
	require.NoError(t, err)
	return d.Stock.Int()
}

func placeOrder(lines ...commands.OrderLine) commands.PlaceOrderCommand {
	return commands.NewPlaceOrderCommand("Ana Popescu", "ana@example.com",
		commands.Address{Street: "Strada Lunga 12", City: "Cluj-Napoca", PostalCode: "400001", Country: "Romania"},
		lines)
}

func validExpiry() string {
	return time.Now().AddDate(2, 0, 0).Format("01/06")
}

type outcomeKey struct {
	workflow  string
	succeeded bool
}

type recorder struct {
	mu     sync.Mutex
	counts map[outcomeKey]int
}

func (r *recorder) RecordOutcome(workflow string, succeeded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[outcomeKey]int)
	}
	r.counts[outcomeKey{workflow, succeeded}]++
}

func (r *recorder) count(workflow string, succeeded bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[outcomeKey{workflow, succeeded}]
}
