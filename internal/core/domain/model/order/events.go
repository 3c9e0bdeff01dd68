package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Event is the outward result of a placement attempt.
type Event interface {
	// Succeeded reports whether the placement reached a success state.
	Succeeded() bool
	orderEvent()
}

// LineDTO is an order line as published in events.
type LineDTO struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// AddressDTO is a shipping address as published in events.
type AddressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type OrderPlaced struct {
	OrderID         string          `json:"orderId"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	ShippingAddress AddressDTO      `json:"shippingAddress"`
	Lines           []LineDTO       `json:"orderLines"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	PlacedAt        time.Time       `json:"placedAt"`
}

type OrderPendingPayment struct {
	OrderID         string          `json:"orderId"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	ShippingAddress AddressDTO      `json:"shippingAddress"`
	Lines           []LineDTO       `json:"orderLines"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type OrderPlacementFailed struct {
	Reasons []string `json:"reasons"`
}

func (OrderPlaced) Succeeded() bool          { return true }
func (OrderPendingPayment) Succeeded() bool  { return true }
func (OrderPlacementFailed) Succeeded() bool { return false }

func (OrderPlaced) orderEvent()          {}
func (OrderPendingPayment) orderEvent()  {}
func (OrderPlacementFailed) orderEvent() {}

// ToEvent projects a state into an event. Pending and Placed are success
// states; Invalid keeps its reasons; any other state means the workflow
// stopped early.
func ToEvent(state State) Event {
	switch s := state.(type) {
	case Placed:
		return OrderPlaced{
			OrderID:         s.OrderID().String(),
			CustomerName:    s.CustomerName().String(),
			CustomerEmail:   s.CustomerEmail().String(),
			ShippingAddress: addressDTO(s.header),
			Lines:           lineDTOs(s.lines),
			TotalPrice:      s.total.Amount(),
			PlacedAt:        s.placedAt,
		}
	case Pending:
		return OrderPendingPayment{
			OrderID:         s.OrderID().String(),
			CustomerName:    s.CustomerName().String(),
			CustomerEmail:   s.CustomerEmail().String(),
			ShippingAddress: addressDTO(s.header),
			Lines:           lineDTOs(s.lines),
			TotalPrice:      s.total.Amount(),
			CreatedAt:       s.createdAt,
		}
	case Invalid:
		return OrderPlacementFailed{Reasons: s.Reasons()}
	case Unvalidated, Validated, StockChecked:
		return OrderPlacementFailed{
			Reasons: []string{fmt.Sprintf("Order was not completed - remained in %s state", s.Name())},
		}
	default:
		return OrderPlacementFailed{Reasons: []string{fmt.Sprintf("Unknown order state: %T", state)}}
	}
}

func addressDTO(h header) AddressDTO {
	return AddressDTO{
		Street:     h.shippingAddress.Street(),
		City:       h.shippingAddress.City(),
		PostalCode: h.shippingAddress.PostalCode(),
		Country:    h.shippingAddress.Country(),
	}
}

func lineDTOs(lines []PricedLine) []LineDTO {
	dtos := make([]LineDTO, 0, len(lines))
	for _, l := range lines {
		dtos = append(dtos, LineDTO{
			ProductCode: l.code.String(),
			ProductName: l.name.String(),
			Quantity:    l.quantity.Int(),
			UnitPrice:   l.unitPrice.Amount(),
			LineTotal:   l.lineTotal.Amount(),
		})
	}
	return dtos
}
