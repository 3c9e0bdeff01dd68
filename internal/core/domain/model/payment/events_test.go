package payment_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEvent(t *testing.T) {
	orderID := kernel.NewOrderID()
	validated := payment.NewValidated(kernel.NewPaymentID(), orderID, kernel.MustParsePrice("150.00"),
		"****-****-****-1234", "Ana Popescu", time.Now().UTC())

	t.Run("should project processed into success", func(t *testing.T) {
		processedAt := time.Now().UTC()
		processed := payment.NewProcessed(validated, "TXN-20261019120000-ABCDEF12", processedAt)

		event := payment.ToEvent(processed)

		got, ok := event.(payment.PaymentProcessed)
		require.True(t, ok)
		assert.True(t, event.Succeeded())
		assert.Equal(t, validated.PaymentID().String(), got.PaymentID)
		assert.Equal(t, orderID.String(), got.OrderID)
		assert.Equal(t, "150.00", got.Amount.StringFixed(2))
		assert.Equal(t, "****-****-****-1234", got.MaskedCardNumber)
		assert.Equal(t, "TXN-20261019120000-ABCDEF12", got.TransactionReference)
		assert.Equal(t, processedAt, got.ProcessedAt)
		assert.Equal(t, "Ana Popescu", processed.CardHolderName())
	})

	t.Run("should keep raw order id of invalid payment", func(t *testing.T) {
		event := payment.ToEvent(payment.NewInvalid("not-an-id", "Invalid Order ID format"))

		assert.Equal(t, payment.PaymentFailed{OrderID: "not-an-id", Reasons: []string{"Invalid Order ID format"}}, event)
		assert.False(t, event.Succeeded())
	})

	t.Run("should report stuck states", func(t *testing.T) {
		unvalidated := payment.NewUnvalidated("abc", "1", "4111", "A", "01/30", "123")

		assert.Equal(t, payment.PaymentFailed{
			OrderID: "abc",
			Reasons: []string{"Payment was not completed - remained in unvalidated state"},
		}, payment.ToEvent(unvalidated))
		assert.Equal(t, payment.PaymentFailed{
			OrderID: orderID.String(),
			Reasons: []string{"Payment was not completed - remained in validated state"},
		}, payment.ToEvent(validated))
	})

	t.Run("should report unknown state", func(t *testing.T) {
		assert.Equal(t, payment.PaymentFailed{Reasons: []string{"Unknown payment state: <nil>"}}, payment.ToEvent(nil))
	})
}
