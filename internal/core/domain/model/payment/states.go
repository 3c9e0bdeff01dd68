package payment

import (
	"time"

	"shop/internal/core/domain/model/kernel"
)

// State is one stage of a payment. The set of implementations is closed to
// this package.
type State interface {
	Name() string
	paymentState()
}

// Unvalidated holds the payment form exactly as submitted.
type Unvalidated struct {
	orderID        string
	amount         string
	cardNumber     string
	cardHolderName string
	expiryDate     string
	cvv            string
}

func NewUnvalidated(orderID, amount, cardNumber, cardHolderName, expiryDate, cvv string) Unvalidated {
	return Unvalidated{
		orderID:        orderID,
		amount:         amount,
		cardNumber:     cardNumber,
		cardHolderName: cardHolderName,
		expiryDate:     expiryDate,
		cvv:            cvv,
	}
}

func (Unvalidated) Name() string  { return "unvalidated" }
func (Unvalidated) paymentState() {}

func (u Unvalidated) OrderID() string        { return u.orderID }
func (u Unvalidated) Amount() string         { return u.amount }
func (u Unvalidated) CardNumber() string     { return u.cardNumber }
func (u Unvalidated) CardHolderName() string { return u.cardHolderName }
func (u Unvalidated) ExpiryDate() string     { return u.expiryDate }
func (u Unvalidated) CVV() string            { return u.cvv }

// Validated is ready to be charged.
type Validated struct {
	paymentID        kernel.PaymentID
	orderID          kernel.OrderID
	amount           kernel.Price
	maskedCardNumber string
	cardHolderName   string
	validatedAt      time.Time
}

func NewValidated(
	paymentID kernel.PaymentID,
	orderID kernel.OrderID,
	amount kernel.Price,
	maskedCardNumber string,
	cardHolderName string,
	validatedAt time.Time,
) Validated {
	return Validated{
		paymentID:        paymentID,
		orderID:          orderID,
		amount:           amount,
		maskedCardNumber: maskedCardNumber,
		cardHolderName:   cardHolderName,
		validatedAt:      validatedAt,
	}
}

func (Validated) Name() string  { return "validated" }
func (Validated) paymentState() {}

func (v Validated) PaymentID() kernel.PaymentID { return v.paymentID }
func (v Validated) OrderID() kernel.OrderID     { return v.orderID }
func (v Validated) Amount() kernel.Price        { return v.amount }
func (v Validated) MaskedCardNumber() string    { return v.maskedCardNumber }
func (v Validated) CardHolderName() string      { return v.cardHolderName }
func (v Validated) ValidatedAt() time.Time      { return v.validatedAt }

// Processed was charged and recorded.
type Processed struct {
	Validated
	transactionReference string
	processedAt          time.Time
}

func NewProcessed(v Validated, transactionReference string, processedAt time.Time) Processed {
	return Processed{Validated: v, transactionReference: transactionReference, processedAt: processedAt}
}

func (Processed) Name() string  { return "processed" }
func (Processed) paymentState() {}

func (p Processed) TransactionReference() string { return p.transactionReference }
func (p Processed) ProcessedAt() time.Time       { return p.processedAt }

// Invalid carries the rejection reasons. OrderID is the order id as
// submitted, possibly empty or malformed.
type Invalid struct {
	orderID string
	reasons []string
}

func NewInvalid(orderID string, reasons ...string) Invalid {
	return Invalid{orderID: orderID, reasons: append([]string(nil), reasons...)}
}

func (Invalid) Name() string  { return "invalid" }
func (Invalid) paymentState() {}

func (i Invalid) OrderID() string { return i.orderID }

func (i Invalid) Reasons() []string {
	return append([]string(nil), i.reasons...)
}
