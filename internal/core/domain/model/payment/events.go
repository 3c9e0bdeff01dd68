package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Event interface {
	Succeeded() bool
	paymentEvent()
}

type PaymentProcessed struct {
	PaymentID            string          `json:"paymentId"`
	OrderID              string          `json:"orderId"`
	Amount               decimal.Decimal `json:"amount"`
	MaskedCardNumber     string          `json:"maskedCardNumber"`
	TransactionReference string          `json:"transactionReference"`
	ProcessedAt          time.Time       `json:"processedAt"`
}

type PaymentFailed struct {
	OrderID string   `json:"orderId,omitempty"`
	Reasons []string `json:"reasons"`
}

func (PaymentProcessed) Succeeded() bool { return true }
func (PaymentFailed) Succeeded() bool    { return false }

func (PaymentProcessed) paymentEvent() {}
func (PaymentFailed) paymentEvent()    {}

// ToEvent projects a payment state into an event. Only Processed succeeds.
func ToEvent(state State) Event {
	switch s := state.(type) {
	case Processed:
		return PaymentProcessed{
			PaymentID:            s.PaymentID().String(),
			OrderID:              s.OrderID().String(),
			Amount:               s.Amount().Amount(),
			MaskedCardNumber:     s.MaskedCardNumber(),
			TransactionReference: s.transactionReference,
			ProcessedAt:          s.processedAt,
		}
	case Invalid:
		return PaymentFailed{OrderID: s.orderID, Reasons: s.Reasons()}
	case Unvalidated:
		return PaymentFailed{OrderID: s.orderID, Reasons: []string{stuck(s)}}
	case Validated:
		return PaymentFailed{OrderID: s.OrderID().String(), Reasons: []string{stuck(s)}}
	default:
		return PaymentFailed{Reasons: []string{fmt.Sprintf("Unknown payment state: %T", state)}}
	}
}

func stuck(s State) string {
	return fmt.Sprintf("Payment was not completed - remained in %s state", s.Name())
}
