package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the stored record of a placed order. Payment and shipping read it
// and move it along Status.
type Order struct {
	id              kernel.OrderID
	customerName    kernel.CustomerName
	customerEmail   kernel.CustomerEmail
	shippingAddress kernel.ShippingAddress
	lines           []PricedLine
	total           kernel.Price
	status          Status
	createdAt       time.Time
	paidAt          *time.Time
	shippedAt       *time.Time
	trackingNumber  string
	carrier         string
	isConstructed   bool
}

// NewOrder captures a stock checked order for storage with status Placed.
func NewOrder(checked StockChecked) (*Order, error) {
	if err := checked.id.Validate(); err != nil {
		return nil, err
	}
	if len(checked.lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}
	return &Order{
		id:              checked.id,
		customerName:    checked.customerName,
		customerEmail:   checked.customerEmail,
		shippingAddress: checked.shippingAddress,
		lines:           slices.Clone(checked.lines),
		total:           checked.total,
		status:          StatusPlaced,
		createdAt:       checked.createdAt,
		isConstructed:   true,
	}, nil
}

// Snapshot carries the stored fields of an order for RestoreOrder.
type Snapshot struct {
	ID              kernel.OrderID
	CustomerName    kernel.CustomerName
	CustomerEmail   kernel.CustomerEmail
	ShippingAddress kernel.ShippingAddress
	Lines           []PricedLine
	Total           kernel.Price
	Status          Status
	CreatedAt       time.Time
	PaidAt          *time.Time
	ShippedAt       *time.Time
	TrackingNumber  string
	Carrier         string
}

// RestoreOrder rebuilds an order read back from storage.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(s.ID.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}
	return &Order{
		id:              s.ID,
		customerName:    s.CustomerName,
		customerEmail:   s.CustomerEmail,
		shippingAddress: s.ShippingAddress,
		lines:           slices.Clone(s.Lines),
		total:           s.Total,
		status:          s.Status,
		createdAt:       s.CreatedAt,
		paidAt:          s.PaidAt,
		shippedAt:       s.ShippedAt,
		trackingNumber:  s.TrackingNumber,
		carrier:         s.Carrier,
		isConstructed:   true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.OrderID                      { return o.id }
func (o *Order) CustomerName() kernel.CustomerName       { return o.customerName }
func (o *Order) CustomerEmail() kernel.CustomerEmail     { return o.customerEmail }
func (o *Order) ShippingAddress() kernel.ShippingAddress { return o.shippingAddress }
func (o *Order) Lines() []PricedLine                     { return slices.Clone(o.lines) }
func (o *Order) TotalPrice() kernel.Price                { return o.total }
func (o *Order) Status() Status                          { return o.status }
func (o *Order) CreatedAt() time.Time                    { return o.createdAt }
func (o *Order) PaidAt() *time.Time                      { return o.paidAt }
func (o *Order) ShippedAt() *time.Time                   { return o.shippedAt }
func (o *Order) TrackingNumber() string                  { return o.trackingNumber }
func (o *Order) Carrier() string                         { return o.carrier }

// Snapshot exposes the stored fields for persistence adapters.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:              o.id,
		CustomerName:    o.customerName,
		CustomerEmail:   o.customerEmail,
		ShippingAddress: o.shippingAddress,
		Lines:           slices.Clone(o.lines),
		Total:           o.total,
		Status:          o.status,
		CreatedAt:       o.createdAt,
		PaidAt:          o.paidAt,
		ShippedAt:       o.shippedAt,
		TrackingNumber:  o.trackingNumber,
		Carrier:         o.carrier,
	}
}

// MarkPaid records that the full total was captured.
func (o *Order) MarkPaid(at time.Time) error {
	next, err := o.status.Pay()
	if err != nil {
		return err
	}
	o.status = next
	o.paidAt = &at
	return nil
}

// MarkShipped records the carrier hand-over.
func (o *Order) MarkShipped(trackingNumber, carrier string, at time.Time) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	next, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = next
	o.shippedAt = &at
	o.trackingNumber = trackingNumber
	o.carrier = carrier
	return nil
}
