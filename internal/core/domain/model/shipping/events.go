package shipping

import (
	"fmt"
	"time"
)

type Event interface {
	Succeeded() bool
	shippingEvent()
}

type OrderShipped struct {
	OrderID           string    `json:"orderId"`
	TrackingNumber    string    `json:"trackingNumber"`
	Carrier           string    `json:"carrier"`
	Destination       string    `json:"destination"`
	ShippedAt         time.Time `json:"shippedAt"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

type ShippingFailed struct {
	OrderID string   `json:"orderId,omitempty"`
	Reasons []string `json:"reasons"`
}

func (OrderShipped) Succeeded() bool   { return true }
func (ShippingFailed) Succeeded() bool { return false }

func (OrderShipped) shippingEvent()   {}
func (ShippingFailed) shippingEvent() {}

// ToEvent projects a shipping state into an event. Only Shipped succeeds.
func ToEvent(state State) Event {
	switch s := state.(type) {
	case Shipped:
		return OrderShipped{
			OrderID:           s.orderID.String(),
			TrackingNumber:    s.trackingNumber,
			Carrier:           s.carrier.Code(),
			Destination:       s.destination.FullAddress(),
			ShippedAt:         s.shippedAt,
			EstimatedDelivery: s.estimatedDelivery,
		}
	case Invalid:
		return ShippingFailed{OrderID: s.orderID, Reasons: s.Reasons()}
	case Unvalidated:
		return ShippingFailed{OrderID: s.orderID, Reasons: []string{stuck(s)}}
	case Validated:
		return ShippingFailed{OrderID: s.orderID.String(), Reasons: []string{stuck(s)}}
	default:
		return ShippingFailed{Reasons: []string{fmt.Sprintf("Unknown shipping state: %T", state)}}
	}
}

func stuck(s State) string {
	return fmt.Sprintf("Shipping was not completed - remained in %s state", s.Name())
}
