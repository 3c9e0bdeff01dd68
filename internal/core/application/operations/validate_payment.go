package operations

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/payment"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// ValidatePayment checks a payment request against the stored order and the
// card rules.
//
// The order id, the order's existence, whether it is still unpaid and its
// total are checked first and stop validation on failure. Amount and card checks are then all run and
// their failures reported together.
type ValidatePayment struct {
	orders ports.OrderRepository
	cfg    config
}

// NewValidatePayment creates the operation checking payments against orders.
func NewValidatePayment(orders ports.OrderRepository, opts ...Option) ValidatePayment {
	return ValidatePayment{orders: orders, cfg: newConfig(opts)}
}

// Transform turns Unvalidated into Validated or Invalid and passes other states through.
func (op ValidatePayment) Transform(ctx context.Context, state payment.State) payment.State {
	return paymentHandlers{unvalidated: op.onUnvalidated}.transform(ctx, state)
}

func (op ValidatePayment) onUnvalidated(ctx context.Context, u payment.Unvalidated) payment.State {
	orderID, err := kernel.ParseOrderID(u.OrderID())
	if err != nil {
		return payment.NewInvalid(u.OrderID(), errs.Reasons(err)...)
	}

	exists, err := op.orders.Exists(ctx, orderID)
	if err != nil {
		return payment.NewInvalid(u.OrderID(), withCause(fmt.Sprintf("Could not verify order '%s'", orderID), err))
	}
	if !exists {
		return payment.NewInvalid(u.OrderID(), fmt.Sprintf("Order '%s' does not exist", orderID))
	}

	paid, err := op.orders.IsPaid(ctx, orderID)
	if err != nil {
		return payment.NewInvalid(u.OrderID(), withCause(fmt.Sprintf("Could not verify order '%s'", orderID), err))
	}
	if paid {
		return payment.NewInvalid(u.OrderID(), fmt.Sprintf("Order '%s' has already been paid", orderID))
	}

	total, err := op.orders.Total(ctx, orderID)
	if err != nil {
		op.cfg.logger.ErrorContext(ctx, "failed to read order total", "order_id", orderID.String(), "error", err)
		return payment.NewInvalid(u.OrderID(), "Could not retrieve order total")
	}

	now := op.cfg.timestamp()

	amount, amountErr := kernel.ParsePrice(u.Amount())
	if amountErr == nil && !amount.IsEqual(total) {
		amountErr = errs.NewRuleViolationError(errs.ErrValueIsInvalid, "amount",
			fmt.Sprintf("Payment amount (%s) does not match order total (%s)", amount, total))
	}
	digits, cardErr := payment.ParseCardNumber(u.CardNumber())
	holder, holderErr := payment.ParseCardHolder(u.CardHolderName())

	if err := errors.Join(
		amountErr,
		cardErr,
		holderErr,
		payment.CheckExpiry(u.ExpiryDate(), now),
		payment.CheckCVV(u.CVV()),
	); err != nil {
		return payment.NewInvalid(u.OrderID(), errs.Reasons(err)...)
	}

	return payment.NewValidated(
		kernel.NewPaymentID(),
		orderID,
		amount,
		payment.MaskCardNumber(digits),
		holder,
		now,
	)
}
