package commands

import (
	"context"

	"shop/internal/core/application/operations"
	"shop/internal/core/domain/model/shipping"
	"shop/internal/core/ports"
)

// ShipOrderWorkflow validates a shipping request and hands the order to the
// carrier.
type ShipOrderWorkflow struct {
	steps []operations.ShippingOperation
}

func NewShipOrderWorkflow(
	orders ports.OrderRepository,
	shipments ports.ShipmentRepository,
	estimator ports.DeliveryEstimator,
	opts ...operations.Option,
) ShipOrderWorkflow {
	return ShipOrderWorkflow{steps: []operations.ShippingOperation{
		operations.NewValidateShipping(orders, opts...),
		operations.NewShipOrder(shipments, orders, estimator, opts...),
	}}
}

func (w ShipOrderWorkflow) Execute(ctx context.Context, cmd ShipOrderCommand) shipping.Event {
	var state shipping.State = cmd.unvalidated()
	for _, step := range w.steps {
		state = step.Transform(ctx, state)
	}
	return shipping.ToEvent(state)
}
