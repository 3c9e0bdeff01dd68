package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository stores placed orders and moves them through payment and
// shipping.
type OrderRepository interface {
	// Save stores a stock checked order with status Placed in one call.
	Save(ctx context.Context, checked order.StockChecked) error

	// Get returns the stored order. An unknown id yields an error wrapping
	// errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	Exists(ctx context.Context, id kernel.OrderID) (bool, error)

	// Total is the stored order total, used to check payment amounts.
	Total(ctx context.Context, id kernel.OrderID) (kernel.Price, error)

	ShippingAddress(ctx context.Context, id kernel.OrderID) (kernel.ShippingAddress, error)

	IsPaid(ctx context.Context, id kernel.OrderID) (bool, error)

	// MarkPaid moves a Placed order to Paid. It fails for any other status.
	MarkPaid(ctx context.Context, id kernel.OrderID) error

	// MarkShipped moves a Paid order to Shipped and records the tracking data.
	MarkShipped(ctx context.Context, id kernel.OrderID, trackingNumber, carrier string) error
}
