package commands

import (
	"context"

	"shop/internal/core/application/operations"
	"shop/internal/core/domain/model/payment"
	"shop/internal/core/ports"
)

// ProcessPaymentWorkflow validates a payment, charges it and marks the order
// paid.
type ProcessPaymentWorkflow struct {
	steps []operations.PaymentOperation
}

func NewProcessPaymentWorkflow(
	orders ports.OrderRepository,
	gateway ports.PaymentGateway,
	payments ports.PaymentRepository,
	opts ...operations.Option,
) ProcessPaymentWorkflow {
	return ProcessPaymentWorkflow{steps: []operations.PaymentOperation{
		operations.NewValidatePayment(orders, opts...),
		operations.NewProcessPayment(gateway, payments, orders, opts...),
	}}
}

func (w ProcessPaymentWorkflow) Execute(ctx context.Context, cmd ProcessPaymentCommand) payment.Event {
	var state payment.State = cmd.unvalidated()
	for _, step := range w.steps {
		state = step.Transform(ctx, state)
	}
	return payment.ToEvent(state)
}
