package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/payment"
)

// PaymentGateway charges a validated card.
type PaymentGateway interface {
	// Charge returns the gateway transaction reference, or an empty string
	// when the charge was declined.
	Charge(ctx context.Context, p payment.Validated) (string, error)
}

type PaymentRepository interface {
	Save(
		ctx context.Context,
		paymentID kernel.PaymentID,
		orderID kernel.OrderID,
		amount kernel.Price,
		transactionReference string,
	) error
}
