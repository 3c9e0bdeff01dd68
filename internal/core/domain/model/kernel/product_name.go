package kernel

import (
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const (
	ProductNameMinLength = 3
	ProductNameMaxLength = 200
)

var ErrProductNameIsNotConstructed = errs.NewValueIsRequiredError("ProductName must be created via NewProductName")

// ProductName is the display name of a catalog product.
type ProductName struct {
	value string
	guard guard.ConstructorGuard
}

// NewProductName trims raw and checks its length.
func NewProductName(raw string) (ProductName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ProductName{}, required("product name", "Product name must not be empty")
	}
	if length(trimmed) < ProductNameMinLength {
		return ProductName{}, outOfRange("product name",
			fmt.Sprintf("Product name must be at least %d characters", ProductNameMinLength))
	}
	if length(trimmed) > ProductNameMaxLength {
		return ProductName{}, outOfRange("product name",
			fmt.Sprintf("Product name must not exceed %d characters", ProductNameMaxLength))
	}
	return ProductName{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// String returns the trimmed name.
func (n ProductName) String() string {
	return n.value
}

// IsEqual compares names exactly.
func (n ProductName) IsEqual(other ProductName) bool {
	return n.value == other.value
}

// Validate fails for a ProductName not built by NewProductName.
func (n ProductName) Validate() error {
	return n.guard.Validate(ErrProductNameIsNotConstructed)
}
