package commands

import (
	"errors"

	"shop/internal/core/domain/model/payment"
	"shop/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand is a request to pay for a placed order by card.
type ProcessPaymentCommand struct {
	orderID        string
	amount         string
	cardNumber     string
	cardHolderName string
	expiryDate     string
	cvv            string

	guard guard.ConstructorGuard
}

func NewProcessPaymentCommand(
	orderID, amount, cardNumber, cardHolderName, expiryDate, cvv string,
) ProcessPaymentCommand {
	return ProcessPaymentCommand{
		orderID:        orderID,
		amount:         amount,
		cardNumber:     cardNumber,
		cardHolderName: cardHolderName,
		expiryDate:     expiryDate,
		cvv:            cvv,
		guard:          guard.NewConstructorGuard(),
	}
}

func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

func (c ProcessPaymentCommand) OrderID() string { return c.orderID }
func (c ProcessPaymentCommand) Amount() string  { return c.amount }

func (c ProcessPaymentCommand) unvalidated() payment.Unvalidated {
	return payment.NewUnvalidated(c.orderID, c.amount, c.cardNumber, c.cardHolderName, c.expiryDate, c.cvv)
}
