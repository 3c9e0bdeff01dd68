package commands

import (
	"errors"

	"shop/internal/core/domain/model/shipping"
	"shop/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand is a request to hand a paid order to a carrier.
type ShipOrderCommand struct {
	orderID string
	carrier string

	guard guard.ConstructorGuard
}

func NewShipOrderCommand(orderID, carrier string) ShipOrderCommand {
	return ShipOrderCommand{orderID: orderID, carrier: carrier, guard: guard.NewConstructorGuard()}
}

func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

func (c ShipOrderCommand) OrderID() string { return c.orderID }
func (c ShipOrderCommand) Carrier() string { return c.carrier }

func (c ShipOrderCommand) unvalidated() shipping.Unvalidated {
	return shipping.NewUnvalidated(c.orderID, c.carrier)
}
