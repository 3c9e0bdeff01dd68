package kernel

import (
	"regexp"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrProductCodeIsNotConstructed = errs.NewValueIsRequiredError("ProductCode must be created via NewProductCode")

var productCodePattern = regexp.MustCompile(`^[A-Z]{2,4}\d{3,6}$`)

// ProductCode identifies a catalog product: 2-4 uppercase letters followed by
// 3-6 digits, for example CPU001 or GPU12345. Input is trimmed and upper-cased
// before it is checked, so "gpu001" and "GPU001" are the same code.
type ProductCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewProductCode normalizes raw and checks it against the code format.
func NewProductCode(raw string) (ProductCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return ProductCode{}, required("product code", "Product code must not be empty")
	}
	if !productCodePattern.MatchString(normalized) {
		return ProductCode{}, malformed("product code",
			"Invalid product code format. Expected 2-4 uppercase letters followed by 3-6 digits (e.g. CPU001, GPU12345)")
	}
	return ProductCode{value: normalized, guard: guard.NewConstructorGuard()}, nil
}

// String returns the upper-case code.
func (c ProductCode) String() string {
	return c.value
}

// IsEqual compares normalized codes.
func (c ProductCode) IsEqual(other ProductCode) bool {
	return c.value == other.value
}

// Validate fails for a ProductCode not built by NewProductCode.
func (c ProductCode) Validate() error {
	return c.guard.Validate(ErrProductCodeIsNotConstructed)
}
