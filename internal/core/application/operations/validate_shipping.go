package operations

import (
	"context"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipping"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// ValidateShipping checks that an order can be handed to the requested
// carrier and issues its tracking number.
//
// The order id and the order's existence stop validation on failure. Payment
// status, destination lookup and carrier are then checked together.
type ValidateShipping struct {
	orders ports.OrderRepository
	cfg    config
}

// NewValidateShipping creates the operation checking shipping requests against orders.
func NewValidateShipping(orders ports.OrderRepository, opts ...Option) ValidateShipping {
	return ValidateShipping{orders: orders, cfg: newConfig(opts)}
}

// Transform turns Unvalidated into Validated or Invalid and passes other states through.
func (op ValidateShipping) Transform(ctx context.Context, state shipping.State) shipping.State {
	return shippingHandlers{unvalidated: op.onUnvalidated}.transform(ctx, state)
}

func (op ValidateShipping) onUnvalidated(ctx context.Context, u shipping.Unvalidated) shipping.State {
	orderID, err := kernel.ParseOrderID(u.OrderID())
	if err != nil {
		return shipping.NewInvalid(u.OrderID(), errs.Reasons(err)...)
	}

	exists, err := op.orders.Exists(ctx, orderID)
	if err != nil {
		return shipping.NewInvalid(u.OrderID(), withCause(fmt.Sprintf("Could not verify order '%s'", orderID), err))
	}
	if !exists {
		return shipping.NewInvalid(u.OrderID(), fmt.Sprintf("Order '%s' does not exist", orderID))
	}

	reasons := make([]string, 0)

	paid, err := op.orders.IsPaid(ctx, orderID)
	switch {
	case err != nil:
		reasons = append(reasons, withCause(fmt.Sprintf("Could not verify payment of order '%s'", orderID), err))
	case !paid:
		reasons = append(reasons, fmt.Sprintf("Order '%s' has not been paid yet", orderID))
	}

	destination, err := op.orders.ShippingAddress(ctx, orderID)
	if err != nil {
		op.cfg.logger.ErrorContext(ctx, "failed to read shipping address", "order_id", orderID.String(), "error", err)
		reasons = append(reasons, "Could not retrieve shipping address for order")
	}

	carrier, err := shipping.ParseCarrier(u.Carrier())
	if err != nil {
		reasons = append(reasons, errs.Reasons(err)...)
	}

	if len(reasons) > 0 {
		return shipping.NewInvalid(u.OrderID(), reasons...)
	}

	now := op.cfg.timestamp()
	return shipping.NewValidated(orderID, shipping.NewTrackingNumber(carrier, now), carrier, destination, now)
}
