package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const (
	CustomerNameMinLength = 2
	CustomerNameMaxLength = 100
)

var ErrCustomerNameIsNotConstructed = errs.NewValueIsRequiredError("CustomerName must be created via NewCustomerName")

var customerNamePattern = regexp.MustCompile(`^[\p{L}\s\-']+$`)

// CustomerName is the full name of the buyer. Letters of any script, spaces,
// hyphens and apostrophes are accepted.
type CustomerName struct {
	value string
	guard guard.ConstructorGuard
}

// NewCustomerName trims raw and checks its length.
func NewCustomerName(raw string) (CustomerName, error) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return CustomerName{}, required("customer name", "Customer name must not be empty")
	case length(trimmed) < CustomerNameMinLength:
		return CustomerName{}, outOfRange("customer name",
			fmt.Sprintf("Customer name must be at least %d characters", CustomerNameMinLength))
	case length(trimmed) > CustomerNameMaxLength:
		return CustomerName{}, outOfRange("customer name",
			fmt.Sprintf("Customer name must not exceed %d characters", CustomerNameMaxLength))
	case !customerNamePattern.MatchString(trimmed):
		return CustomerName{}, malformed("customer name",
			"Customer name can only contain letters, spaces, hyphens, and apostrophes")
	}
	return CustomerName{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// String returns the trimmed name.
func (n CustomerName) String() string {
	return n.value
}

// IsEqual compares names exactly.
func (n CustomerName) IsEqual(other CustomerName) bool {
	return n.value == other.value
}

// Validate fails for a CustomerName not built by NewCustomerName.
func (n CustomerName) Validate() error {
	return n.guard.Validate(ErrCustomerNameIsNotConstructed)
}
