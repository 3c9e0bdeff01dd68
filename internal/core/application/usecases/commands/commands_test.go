package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
)

func TestPlaceOrderCommand(t *testing.T) {
	t.Run("should copy its lines", func(t *testing.T) {
		lines := []commands.OrderLine{{ProductCode: "GPU001", Quantity: "1"}}
		cmd := commands.NewPlaceOrderCommand("Ana", "ana@example.com", commands.Address{}, lines)

		got := cmd.Lines()
		got[0].Quantity = "9"

		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "1", cmd.Lines()[0].Quantity)
	})

	t.Run("should fail validation when built as a literal", func(t *testing.T) {
		assert.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

func TestProcessPaymentCommand(t *testing.T) {
	cmd := commands.NewProcessPaymentCommand("id", "10.00", "4111111111111111", "Ana", "12/30", "123")

	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "id", cmd.OrderID())
	assert.Equal(t, "10.00", cmd.Amount())
	assert.ErrorIs(t, commands.ProcessPaymentCommand{}.Validate(), commands.ErrProcessPaymentCommandIsNotConstructed)
}

func TestShipOrderCommand(t *testing.T) {
	cmd := commands.NewShipOrderCommand("id", "DHL")

	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "DHL", cmd.Carrier())
	assert.ErrorIs(t, commands.ShipOrderCommand{}.Validate(), commands.ErrShipOrderCommandIsNotConstructed)
}
