package order

import (
	"slices"
	"time"

	"shop/internal/core/domain/model/kernel"
)

// State is one stage of an order on its way through placement. The set of
// implementations is closed to this package.
type State interface {
	// Name is the lower case stage name used in failure reasons.
	Name() string
	orderState()
}

// Unvalidated holds raw, untrusted input.
type Unvalidated struct {
	customerName       string
	customerEmail      string
	shippingStreet     string
	shippingCity       string
	shippingPostalCode string
	shippingCountry    string
	lines              []UnvalidatedLine
}

func NewUnvalidated(
	customerName, customerEmail string,
	shippingStreet, shippingCity, shippingPostalCode, shippingCountry string,
	lines []UnvalidatedLine,
) Unvalidated {
	return Unvalidated{
		customerName:       customerName,
		customerEmail:      customerEmail,
		shippingStreet:     shippingStreet,
		shippingCity:       shippingCity,
		shippingPostalCode: shippingPostalCode,
		shippingCountry:    shippingCountry,
		lines:              slices.Clone(lines),
	}
}

func (Unvalidated) Name() string { return "unvalidated" }
func (Unvalidated) orderState()  {}

func (u Unvalidated) CustomerName() string       { return u.customerName }
func (u Unvalidated) CustomerEmail() string      { return u.customerEmail }
func (u Unvalidated) ShippingStreet() string     { return u.shippingStreet }
func (u Unvalidated) ShippingCity() string       { return u.shippingCity }
func (u Unvalidated) ShippingPostalCode() string { return u.shippingPostalCode }
func (u Unvalidated) ShippingCountry() string    { return u.shippingCountry }

func (u Unvalidated) Lines() []UnvalidatedLine {
	return slices.Clone(u.lines)
}

// header is the part every post-validation state shares.
type header struct {
	id              kernel.OrderID
	customerName    kernel.CustomerName
	customerEmail   kernel.CustomerEmail
	shippingAddress kernel.ShippingAddress
	createdAt       time.Time
}

func (h header) OrderID() kernel.OrderID                 { return h.id }
func (h header) CustomerName() kernel.CustomerName       { return h.customerName }
func (h header) CustomerEmail() kernel.CustomerEmail     { return h.customerEmail }
func (h header) ShippingAddress() kernel.ShippingAddress { return h.shippingAddress }
func (h header) CreatedAt() time.Time                    { return h.createdAt }

// Validated has well formed customer data and lines and a freshly minted id.
type Validated struct {
	header
	lines []ValidatedLine
}

func NewValidated(
	id kernel.OrderID,
	customerName kernel.CustomerName,
	customerEmail kernel.CustomerEmail,
	shippingAddress kernel.ShippingAddress,
	lines []ValidatedLine,
	createdAt time.Time,
) Validated {
	return Validated{
		header: header{
			id:              id,
			customerName:    customerName,
			customerEmail:   customerEmail,
			shippingAddress: shippingAddress,
			createdAt:       createdAt,
		},
		lines: slices.Clone(lines),
	}
}

func (Validated) Name() string { return "validated" }
func (Validated) orderState()  {}

func (v Validated) Lines() []ValidatedLine {
	return slices.Clone(v.lines)
}

// StockChecked has every line priced and its stock reserved.
type StockChecked struct {
	header
	lines []PricedLine
	total kernel.Price
}

func NewStockChecked(v Validated, lines []PricedLine) StockChecked {
	return StockChecked{
		header: v.header,
		lines:  slices.Clone(lines),
		total:  TotalOf(lines),
	}
}

func (StockChecked) Name() string { return "stock checked" }
func (StockChecked) orderState()  {}

func (s StockChecked) Lines() []PricedLine {
	return slices.Clone(s.lines)
}

func (s StockChecked) TotalPrice() kernel.Price {
	return s.total
}

// Pending is a persisted order awaiting payment.
type Pending struct {
	header
	lines []PricedLine
	total kernel.Price
}

func NewPending(s StockChecked) Pending {
	return Pending{header: s.header, lines: s.lines, total: s.total}
}

func (Pending) Name() string { return "pending" }
func (Pending) orderState()  {}

func (p Pending) Lines() []PricedLine {
	return slices.Clone(p.lines)
}

func (p Pending) TotalPrice() kernel.Price {
	return p.total
}

// Placed is the terminal state of a placement whose payment was confirmed.
// PlaceOrderWorkflow stops at Pending; Placed is reached only by a
// confirmation step built on NewPlaced, which the current workflows do not
// run.
type Placed struct {
	header
	lines    []PricedLine
	total    kernel.Price
	placedAt time.Time
}

// NewPlaced confirms a pending placement at placedAt.
func NewPlaced(p Pending, placedAt time.Time) Placed {
	return Placed{header: p.header, lines: p.lines, total: p.total, placedAt: placedAt}
}

func (Placed) Name() string { return "placed" }
func (Placed) orderState()  {}

func (p Placed) Lines() []PricedLine {
	return slices.Clone(p.lines)
}

func (p Placed) TotalPrice() kernel.Price {
	return p.total
}

func (p Placed) PlacedAt() time.Time {
	return p.placedAt
}

// Invalid carries every reason the order was rejected, in discovery order.
type Invalid struct {
	reasons []string
}

func NewInvalid(reasons ...string) Invalid {
	return Invalid{reasons: slices.Clone(reasons)}
}

func (Invalid) Name() string { return "invalid" }
func (Invalid) orderState()  {}

func (i Invalid) Reasons() []string {
	return slices.Clone(i.reasons)
}
