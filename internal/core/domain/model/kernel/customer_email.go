package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const CustomerEmailMaxLength = 254

var ErrCustomerEmailIsNotConstructed = errs.NewValueIsRequiredError("CustomerEmail must be created via NewCustomerEmail")

var customerEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CustomerEmail is the buyer's contact address, stored lower-cased.
type CustomerEmail struct {
	value string
	guard guard.ConstructorGuard
}

// NewCustomerEmail trims and lower-cases raw and checks its length and format.
func NewCustomerEmail(raw string) (CustomerEmail, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case normalized == "":
		return CustomerEmail{}, required("email", "Email must not be empty")
	case len(normalized) > CustomerEmailMaxLength:
		return CustomerEmail{}, outOfRange("email",
			fmt.Sprintf("Email must not exceed %d characters", CustomerEmailMaxLength))
	case !customerEmailPattern.MatchString(normalized):
		return CustomerEmail{}, malformed("email", "Invalid email format")
	}
	return CustomerEmail{value: normalized, guard: guard.NewConstructorGuard()}, nil
}

// String returns the normalized address.
func (e CustomerEmail) String() string {
	return e.value
}

// Domain returns the part after the @ sign.
func (e CustomerEmail) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// IsEqual compares normalized addresses.
func (e CustomerEmail) IsEqual(other CustomerEmail) bool {
	return e.value == other.value
}

// Validate fails for a CustomerEmail not built by NewCustomerEmail.
func (e CustomerEmail) Validate() error {
	return e.guard.Validate(ErrCustomerEmailIsNotConstructed)
}
