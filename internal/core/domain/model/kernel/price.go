package kernel

import (
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const priceScale = 2

var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice or ParsePrice")

var (
	PriceMin = decimal.New(1, -priceScale)
	PriceMax = decimal.NewFromInt(1_000_000)
)

// Price is a monetary amount with two decimal places.
//
// Constructed prices lie in [PriceMin, PriceMax]. Amounts produced by Add and
// Multiply are exact results of arithmetic on valid prices (line totals, order
// totals) and are not range checked again, so a total may exceed PriceMax.
type Price struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice checks the range of amount and rounds it to two decimals.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.LessThan(PriceMin) {
		return Price{}, outOfRange("price", "Price must be at least "+PriceMin.StringFixed(priceScale))
	}
	if amount.GreaterThan(PriceMax) {
		return Price{}, outOfRange("price", "Price must not exceed 1,000,000")
	}
	return newPrice(amount), nil
}

// ParsePrice parses a decimal string such as "1599.99".
func ParsePrice(raw string) (Price, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Price{}, required("price", "Price must not be empty")
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Price{}, notParseable("price", "Price must be a valid number")
	}
	return NewPrice(amount)
}

// MustParsePrice is ParsePrice for literals known to be valid. It panics otherwise.
func MustParsePrice(raw string) Price {
	p, err := ParsePrice(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// SumPrices adds up prices. The sum of no prices is a zero amount.
func SumPrices(prices ...Price) Price {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.amount)
	}
	return newPrice(total)
}

func newPrice(amount decimal.Decimal) Price {
	return Price{amount: amount.RoundBank(priceScale), guard: guard.NewConstructorGuard()}
}

// Amount returns the amount rounded to two decimals.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Add returns the sum of both prices.
func (p Price) Add(other Price) Price {
	return newPrice(p.amount.Add(other.amount))
}

// Multiply returns the price of quantity units, rounded to two decimals.
func (p Price) Multiply(quantity Quantity) Price {
	return newPrice(p.amount.Mul(decimal.NewFromInt(int64(quantity.Int()))))
}

// IsEqual compares amounts numerically, so 150 equals 150.00.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String formats the amount with exactly two decimals, e.g. "150.00".
func (p Price) String() string {
	return p.amount.StringFixed(priceScale)
}

// Validate fails for a Price not built by a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
