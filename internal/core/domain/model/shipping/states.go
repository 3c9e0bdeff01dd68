package shipping

import (
	"time"

	"shop/internal/core/domain/model/kernel"
)

// State is one stage of a shipment. The set of implementations is closed to
// this package.
type State interface {
	Name() string
	shippingState()
}

// Unvalidated holds the shipping request as submitted.
type Unvalidated struct {
	orderID string
	carrier string
}

func NewUnvalidated(orderID, carrier string) Unvalidated {
	return Unvalidated{orderID: orderID, carrier: carrier}
}

func (Unvalidated) Name() string   { return "unvalidated" }
func (Unvalidated) shippingState() {}

func (u Unvalidated) OrderID() string { return u.orderID }
func (u Unvalidated) Carrier() string { return u.carrier }

// Validated has a paid order, a supported carrier and a tracking number.
type Validated struct {
	orderID        kernel.OrderID
	trackingNumber string
	carrier        Carrier
	destination    kernel.ShippingAddress
	validatedAt    time.Time
}

func NewValidated(
	orderID kernel.OrderID,
	trackingNumber string,
	carrier Carrier,
	destination kernel.ShippingAddress,
	validatedAt time.Time,
) Validated {
	return Validated{
		orderID:        orderID,
		trackingNumber: trackingNumber,
		carrier:        carrier,
		destination:    destination,
		validatedAt:    validatedAt,
	}
}

func (Validated) Name() string   { return "validated" }
func (Validated) shippingState() {}

func (v Validated) OrderID() kernel.OrderID             { return v.orderID }
func (v Validated) TrackingNumber() string              { return v.trackingNumber }
func (v Validated) Carrier() Carrier                    { return v.carrier }
func (v Validated) Destination() kernel.ShippingAddress { return v.destination }
func (v Validated) ValidatedAt() time.Time              { return v.validatedAt }

// Shipped was recorded and handed to the carrier.
type Shipped struct {
	Validated
	shippedAt         time.Time
	estimatedDelivery time.Time
}

func NewShipped(v Validated, shippedAt, estimatedDelivery time.Time) Shipped {
	return Shipped{Validated: v, shippedAt: shippedAt, estimatedDelivery: estimatedDelivery}
}

func (Shipped) Name() string   { return "shipped" }
func (Shipped) shippingState() {}

func (s Shipped) ShippedAt() time.Time         { return s.shippedAt }
func (s Shipped) EstimatedDelivery() time.Time { return s.estimatedDelivery }

// Invalid carries the rejection reasons and the order id as submitted.
type Invalid struct {
	orderID string
	reasons []string
}

func NewInvalid(orderID string, reasons ...string) Invalid {
	return Invalid{orderID: orderID, reasons: append([]string(nil), reasons...)}
}

func (Invalid) Name() string   { return "invalid" }
func (Invalid) shippingState() {}

func (i Invalid) OrderID() string { return i.orderID }

func (i Invalid) Reasons() []string {
	return append([]string(nil), i.reasons...)
}
