package kernel

import (
	"strings"

	"shop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderIDIsNotConstructed   = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID or ParseOrderID")
	ErrPaymentIDIsNotConstructed = errs.NewValueIsRequiredError("PaymentID must be created via NewPaymentID or ParsePaymentID")
)

// OrderID identifies a placed order. A fresh one is minted only when an order
// passes validation; existing ids come back through ParseOrderID.
type OrderID struct {
	id uuid.UUID
}

// NewOrderID creates a random order id.
func NewOrderID() OrderID {
	return OrderID{id: uuid.New()}
}

// ParseOrderID accepts a UUID in any standard textual form.
func ParseOrderID(raw string) (OrderID, error) {
	id, err := parseIdentifier("order id", "Order ID", raw)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{id: id}, nil
}

// OrderIDFromUUID rebuilds an id read back from storage.
func OrderIDFromUUID(id uuid.UUID) (OrderID, error) {
	orderID := OrderID{id: id}
	if err := orderID.Validate(); err != nil {
		return OrderID{}, err
	}
	return orderID, nil
}

// UUID returns the underlying UUID.
func (o OrderID) UUID() uuid.UUID {
	return o.id
}

// String returns the canonical lower-case UUID form.
func (o OrderID) String() string {
	return o.id.String()
}

// IsEqual reports whether both ids hold the same UUID.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate fails for the zero OrderID.
func (o OrderID) Validate() error {
	if o.id == uuid.Nil {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// PaymentID identifies a validated payment.
type PaymentID struct {
	id uuid.UUID
}

// NewPaymentID creates a random payment id.
func NewPaymentID() PaymentID {
	return PaymentID{id: uuid.New()}
}

// ParsePaymentID accepts a UUID in any standard textual form.
func ParsePaymentID(raw string) (PaymentID, error) {
	id, err := parseIdentifier("payment id", "Payment ID", raw)
	if err != nil {
		return PaymentID{}, err
	}
	return PaymentID{id: id}, nil
}

// UUID returns the underlying UUID.
func (p PaymentID) UUID() uuid.UUID {
	return p.id
}

// String returns the canonical lower-case UUID form.
func (p PaymentID) String() string {
	return p.id.String()
}

// IsEqual reports whether both ids hold the same UUID.
func (p PaymentID) IsEqual(other PaymentID) bool {
	return p.id == other.id
}

// Validate fails for the zero PaymentID.
func (p PaymentID) Validate() error {
	if p.id == uuid.Nil {
		return ErrPaymentIDIsNotConstructed
	}
	return nil
}

func parseIdentifier(param, label, raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, required(param, label+" must not be empty")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, malformed(param, "Invalid "+label+" format")
	}
	return id, nil
}
