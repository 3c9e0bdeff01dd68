package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func validatedOrder(t *testing.T, lines ...order.ValidatedLine) order.Validated {
	t.Helper()
	name, err := kernel.NewCustomerName("Ana Popescu")
	require.NoError(t, err)
	email, err := kernel.NewCustomerEmail("ana@example.com")
	require.NoError(t, err)
	address, err := kernel.NewShippingAddress("Strada Lunga 12", "Cluj-Napoca", "400001", "Romania")
	require.NoError(t, err)

	return order.NewValidated(kernel.NewOrderID(), name, email, address, lines, time.Now().UTC())
}

func validatedLine(t *testing.T, code string, qty int) order.ValidatedLine {
	t.Helper()
	c, err := kernel.NewProductCode(code)
	require.NoError(t, err)
	q, err := kernel.NewQuantity(qty)
	require.NoError(t, err)
	return order.NewValidatedLine(c, q)
}

func pricedLine(t *testing.T, code string, qty int, name, price string) order.PricedLine {
	t.Helper()
	n, err := kernel.NewProductName(name)
	require.NoError(t, err)
	return order.NewPricedLine(validatedLine(t, code, qty), n, kernel.MustParsePrice(price))
}
