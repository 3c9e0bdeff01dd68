package shipping_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEvent(t *testing.T) {
	orderID := kernel.NewOrderID()
	carrier, err := shipping.ParseCarrier("DHL")
	require.NoError(t, err)
	destination, err := kernel.NewShippingAddress("Strada Lunga 12", "Cluj-Napoca", "400001", "Romania")
	require.NoError(t, err)
	now := time.Now().UTC()
	validated := shipping.NewValidated(orderID, "DHL20261019ABCDEF12", carrier, destination, now)

	t.Run("should project shipped into success", func(t *testing.T) {
		eta := now.AddDate(0, 0, carrier.LeadTimeDays())
		event := shipping.ToEvent(shipping.NewShipped(validated, now, eta))

		assert.True(t, event.Succeeded())
		assert.Equal(t, shipping.OrderShipped{
			OrderID:           orderID.String(),
			TrackingNumber:    "DHL20261019ABCDEF12",
			Carrier:           "DHL",
			Destination:       "Strada Lunga 12, Cluj-Napoca, 400001, Romania",
			ShippedAt:         now,
			EstimatedDelivery: eta,
		}, event)
	})

	t.Run("should keep raw order id of invalid shipment", func(t *testing.T) {
		event := shipping.ToEvent(shipping.NewInvalid("xyz", "Invalid Order ID format"))

		assert.False(t, event.Succeeded())
		assert.Equal(t, shipping.ShippingFailed{OrderID: "xyz", Reasons: []string{"Invalid Order ID format"}}, event)
	})

	t.Run("should report stuck states", func(t *testing.T) {
		assert.Equal(t, shipping.ShippingFailed{
			OrderID: "xyz",
			Reasons: []string{"Shipping was not completed - remained in unvalidated state"},
		}, shipping.ToEvent(shipping.NewUnvalidated("xyz", "DHL")))
		assert.Equal(t, shipping.ShippingFailed{
			OrderID: orderID.String(),
			Reasons: []string{"Shipping was not completed - remained in validated state"},
		}, shipping.ToEvent(validated))
	})

	t.Run("should report unknown state", func(t *testing.T) {
		assert.Equal(t, shipping.ShippingFailed{Reasons: []string{"Unknown shipping state: <nil>"}}, shipping.ToEvent(nil))
	})
}
