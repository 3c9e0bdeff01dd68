package operations

import (
	"context"
	"fmt"

	"shop/internal/core/domain/model/shipping"
	"shop/internal/core/ports"
)

// ShipOrder records the shipment, marks the order shipped and estimates the
// delivery date from the carrier's lead time.
type ShipOrder struct {
	shipments ports.ShipmentRepository
	orders    ports.OrderRepository
	estimator ports.DeliveryEstimator
	cfg       config
}

// NewShipOrder creates the operation recording shipments and marking orders shipped.
func NewShipOrder(
	shipments ports.ShipmentRepository,
	orders ports.OrderRepository,
	estimator ports.DeliveryEstimator,
	opts ...Option,
) ShipOrder {
	return ShipOrder{shipments: shipments, orders: orders, estimator: estimator, cfg: newConfig(opts)}
}

// Transform turns Validated into Shipped or Invalid and passes other states through.
func (op ShipOrder) Transform(ctx context.Context, state shipping.State) shipping.State {
	return shippingHandlers{validated: op.onValidated}.transform(ctx, state)
}

func (op ShipOrder) onValidated(ctx context.Context, v shipping.Validated) shipping.State {
	orderID := v.OrderID()

	if err := op.shipments.Save(ctx, orderID, v.TrackingNumber(), v.Carrier()); err != nil {
		op.cfg.logger.ErrorContext(ctx, "failed to persist shipment",
			"order_id", orderID.String(),
			"tracking_number", v.TrackingNumber(),
			"error", err)
		return shipping.NewInvalid(orderID.String(), "Failed to persist shipment record")
	}

	if err := op.orders.MarkShipped(ctx, orderID, v.TrackingNumber(), v.Carrier().Code()); err != nil {
		op.cfg.logger.ErrorContext(ctx, "failed to mark order shipped",
			"order_id", orderID.String(),
			"tracking_number", v.TrackingNumber(),
			"error", err)
		return shipping.NewInvalid(orderID.String(), fmt.Sprintf("Failed to mark order '%s' as shipped", orderID))
	}

	shippedAt := op.cfg.timestamp()
	days := op.estimator.EstimatedDeliveryDays(v.Carrier())
	return shipping.NewShipped(v, shippedAt, shippedAt.AddDate(0, 0, days))
}
