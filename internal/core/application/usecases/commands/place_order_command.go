package commands

import (
	"errors"
	"slices"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// Address is a shipping address as the client sent it.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// OrderLine is one requested product as the client sent it.
type OrderLine struct {
	ProductCode string
	Quantity    string
}

// PlaceOrderCommand represents a customer's request to buy products.
// All fields are raw input; the place order workflow validates them.
//
// Example:
//
//	cmd := NewPlaceOrderCommand("Ana Popescu", "ana@example.com",
//	    Address{Street: "Strada Lunga 12", City: "Cluj-Napoca", PostalCode: "400001", Country: "Romania"},
//	    []OrderLine{{ProductCode: "GPU001", Quantity: "2"}},
//	)
//	event, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	customerName  string
	customerEmail string
	address       Address
	lines         []OrderLine

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(customerName, customerEmail string, address Address, lines []OrderLine) PlaceOrderCommand {
	return PlaceOrderCommand{
		customerName:  customerName,
		customerEmail: customerEmail,
		address:       address,
		lines:         slices.Clone(lines),
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerName() string  { return c.customerName }
func (c PlaceOrderCommand) CustomerEmail() string { return c.customerEmail }
func (c PlaceOrderCommand) Address() Address      { return c.address }
func (c PlaceOrderCommand) Lines() []OrderLine    { return slices.Clone(c.lines) }

func (c PlaceOrderCommand) unvalidated() order.Unvalidated {
	lines := make([]order.UnvalidatedLine, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, order.UnvalidatedLine{ProductCode: l.ProductCode, Quantity: l.Quantity})
	}
	return order.NewUnvalidated(
		c.customerName,
		c.customerEmail,
		c.address.Street,
		c.address.City,
		c.address.PostalCode,
		c.address.Country,
		lines,
	)
}
