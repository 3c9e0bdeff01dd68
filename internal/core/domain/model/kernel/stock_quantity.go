package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const (
	StockQuantityMin = 0
	StockQuantityMax = 100_000
)

var ErrStockQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"StockQuantity must be created via NewStockQuantity or ParseStockQuantity")

// StockQuantity is the number of units of a product available in the warehouse.
type StockQuantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewStockQuantity accepts values from StockQuantityMin to StockQuantityMax.
func NewStockQuantity(value int) (StockQuantity, error) {
	if value < StockQuantityMin {
		return StockQuantity{}, outOfRange("stock quantity", "Stock quantity cannot be negative")
	}
	if value > StockQuantityMax {
		return StockQuantity{}, outOfRange("stock quantity",
			fmt.Sprintf("Stock quantity must not exceed %d", StockQuantityMax))
	}
	return StockQuantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParseStockQuantity reads a decimal integer and applies NewStockQuantity.
func ParseStockQuantity(raw string) (StockQuantity, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return StockQuantity{}, required("stock quantity", "Stock quantity must not be empty")
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return StockQuantity{}, notParseable("stock quantity", "Stock quantity must be a valid integer")
	}
	return NewStockQuantity(value)
}

// Int returns the number of units in stock.
func (s StockQuantity) Int() int {
	return s.value
}

// String returns the number of units in decimal.
func (s StockQuantity) String() string {
	return strconv.Itoa(s.value)
}

// HasEnoughStock reports whether requested units can be taken from this stock.
func (s StockQuantity) HasEnoughStock(requested Quantity) bool {
	return s.value >= requested.Int()
}

// Decrease removes the requested units. It fails when stock would go negative.
func (s StockQuantity) Decrease(requested Quantity) (StockQuantity, error) {
	if !s.HasEnoughStock(requested) {
		return StockQuantity{}, errs.NewValueIsOutOfRangeError("stock quantity", s.value-requested.Int(),
			StockQuantityMin, StockQuantityMax)
	}
	return NewStockQuantity(s.value - requested.Int())
}

// Increase returns released units to stock.
func (s StockQuantity) Increase(released Quantity) (StockQuantity, error) {
	return NewStockQuantity(s.value + released.Int())
}

// Validate fails for a StockQuantity not built by a constructor.
func (s StockQuantity) Validate() error {
	return s.guard.Validate(ErrStockQuantityIsNotConstructed)
}
