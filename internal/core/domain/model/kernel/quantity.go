package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const (
	QuantityMin = 1
	QuantityMax = 1000
)

var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("Quantity must be created via NewQuantity or ParseQuantity")

// Quantity is the number of units of one product on an order line.
type Quantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewQuantity accepts values from QuantityMin to QuantityMax.
func NewQuantity(value int) (Quantity, error) {
	if value < QuantityMin {
		return Quantity{}, outOfRange("quantity", fmt.Sprintf("Quantity must be at least %d", QuantityMin))
	}
	if value > QuantityMax {
		return Quantity{}, outOfRange("quantity", fmt.Sprintf("Quantity must not exceed %d", QuantityMax))
	}
	return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParseQuantity reads a decimal integer such as "2" and applies NewQuantity.
func ParseQuantity(raw string) (Quantity, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Quantity{}, required("quantity", "Quantity must not be empty")
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return Quantity{}, notParseable("quantity", "Quantity must be a valid integer")
	}
	return NewQuantity(value)
}

// Int returns the number of units.
func (q Quantity) Int() int {
	return q.value
}

// String returns the number of units in decimal.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

// Validate fails for a Quantity not built by a constructor.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
