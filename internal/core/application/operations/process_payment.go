package operations

import (
	"context"
	"fmt"

	"shop/internal/core/domain/model/payment"
	"shop/internal/core/ports"
)

const paymentDeclined = "Payment was declined by the payment gateway"

// ProcessPayment charges a validated payment, stores the payment record and
// marks the order paid.
type ProcessPayment struct {
	gateway  ports.PaymentGateway
	payments ports.PaymentRepository
	orders   ports.OrderRepository
	cfg      config
}

// NewProcessPayment creates the operation charging through gateway and recording the payment.
func NewProcessPayment(
	gateway ports.PaymentGateway,
	payments ports.PaymentRepository,
	orders ports.OrderRepository,
	opts ...Option,
) ProcessPayment {
	return ProcessPayment{gateway: gateway, payments: payments, orders: orders, cfg: newConfig(opts)}
}

// Transform turns Validated into Processed or Invalid and passes other states through.
func (op ProcessPayment) Transform(ctx context.Context, state payment.State) payment.State {
	return paymentHandlers{validated: op.onValidated}.transform(ctx, state)
}

func (op ProcessPayment) onValidated(ctx context.Context, v payment.Validated) payment.State {
	orderID := v.OrderID()

	reference, err := op.gateway.Charge(ctx, v)
	if err != nil {
		return payment.NewInvalid(orderID.String(), withCause(paymentDeclined, err))
	}
	if reference == "" {
		return payment.NewInvalid(orderID.String(), paymentDeclined)
	}

	if err = op.payments.Save(ctx, v.PaymentID(), orderID, v.Amount(), reference); err != nil {
		op.cfg.logger.ErrorContext(ctx, "failed to persist payment",
			"order_id", orderID.String(),
			"payment_id", v.PaymentID().String(),
			"transaction_reference", reference,
			"error", err)
		return payment.NewInvalid(orderID.String(), "Failed to persist payment record")
	}

	if err = op.orders.MarkPaid(ctx, orderID); err != nil {
		op.cfg.logger.ErrorContext(ctx, "failed to mark order paid",
			"order_id", orderID.String(),
			"transaction_reference", reference,
			"error", err)
		return payment.NewInvalid(orderID.String(), fmt.Sprintf("Failed to mark order '%s' as paid", orderID))
	}

	return payment.NewProcessed(v, reference, op.cfg.timestamp())
}
