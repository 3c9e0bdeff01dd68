package commands

import (
	"context"

	"shop/internal/core/application/operations"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// PlaceOrderWorkflow validates an order, checks and reserves stock and stores
// the order pending payment.
type PlaceOrderWorkflow struct {
	steps []operations.OrderOperation
}

func NewPlaceOrderWorkflow(
	catalog ports.ProductCatalog,
	orders ports.OrderRepository,
	opts ...operations.Option,
) PlaceOrderWorkflow {
	return PlaceOrderWorkflow{steps: []operations.OrderOperation{
		operations.NewValidateOrder(opts...),
		operations.NewCheckStock(catalog, opts...),
		operations.NewPlaceOrder(orders, catalog, opts...),
	}}
}

// Execute runs every step and projects the final state into an event.
func (w PlaceOrderWorkflow) Execute(ctx context.Context, cmd PlaceOrderCommand) order.Event {
	var state order.State = cmd.unvalidated()
	for _, step := range w.steps {
		state = step.Transform(ctx, state)
	}
	return order.ToEvent(state)
}
