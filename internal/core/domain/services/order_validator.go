package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderHasNoLines is returned for an order without any line.
	ErrOrderHasNoLines = errs.NewRuleViolationError(errs.ErrValueIsRequired, "lines",
		"Order must have at least one item")

	// ErrDuplicateProducts is the kind of the error listing repeated product codes.
	ErrDuplicateProducts = errors.New("duplicate products in order")
)

// OrderValidator checks every part of a raw order and reports all problems at once.
//
// Rules:
//   - customer name, email and shipping address must be valid value objects
//   - at least one line, each with a valid product code and quantity
//   - a product code appears in at most one line
//
// Example usage:
//
//	validator := NewOrderValidator(time.Now)
//	validated, err := validator.Validate(unvalidated)
//	if err != nil {
//	    reasons := errs.Reasons(err)
//	    // ["Invalid email format", "Order line 2: Quantity must be at least 1"]
//	}
type OrderValidator struct {
	now func() time.Time
}

// NewOrderValidator creates a validator stamping orders with the given clock.
// A nil clock means time.Now.
func NewOrderValidator(now func() time.Time) OrderValidator {
	if now == nil {
		now = time.Now
	}
	return OrderValidator{now: now}
}

// Validate returns a validated order with a new OrderID, or the joined errors
// of every failed check in input order. Line errors are prefixed with
// "Order line N: " where N counts from 1.
func (v OrderValidator) Validate(u order.Unvalidated) (order.Validated, error) {
	name, nameErr := kernel.NewCustomerName(u.CustomerName())
	email, emailErr := kernel.NewCustomerEmail(u.CustomerEmail())
	address, addressErr := kernel.NewShippingAddress(
		u.ShippingStreet(),
		u.ShippingCity(),
		u.ShippingPostalCode(),
		u.ShippingCountry(),
	)

	problems := []error{nameErr, emailErr, addressErr}

	raw := u.Lines()
	if len(raw) == 0 {
		problems = append(problems, ErrOrderHasNoLines)
	}

	lines := make([]order.ValidatedLine, 0, len(raw))
	for i, line := range raw {
		validated, err := validateLine(line)
		if err != nil {
			problems = append(problems, prefixLine(i+1, err)...)
			continue
		}
		lines = append(lines, validated)
	}

	if duplicates := duplicateCodes(lines); len(duplicates) > 0 {
		problems = append(problems, errs.NewRuleViolationError(ErrDuplicateProducts, "lines",
			"Duplicate products in order: "+strings.Join(duplicates, ", ")))
	}

	if err := errors.Join(problems...); err != nil {
		return order.Validated{}, err
	}

	return order.NewValidated(kernel.NewOrderID(), name, email, address, lines, v.now().UTC()), nil
}

func validateLine(line order.UnvalidatedLine) (order.ValidatedLine, error) {
	code, codeErr := kernel.NewProductCode(line.ProductCode)
	quantity, quantityErr := kernel.ParseQuantity(line.Quantity)
	if err := errors.Join(codeErr, quantityErr); err != nil {
		return order.ValidatedLine{}, err
	}
	return order.NewValidatedLine(code, quantity), nil
}

func prefixLine(number int, err error) []error {
	leaves := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		leaves = joined.Unwrap()
	}
	prefixed := make([]error, 0, len(leaves))
	for _, leaf := range leaves {
		prefixed = append(prefixed, fmt.Errorf("Order line %d: %w", number, leaf))
	}
	return prefixed
}

// duplicateCodes lists each repeated code once, in order of first appearance.
func duplicateCodes(lines []order.ValidatedLine) []string {
	counts := make(map[string]int, len(lines))
	seen := make([]string, 0, len(lines))
	for _, line := range lines {
		code := line.ProductCode().String()
		if counts[code] == 0 {
			seen = append(seen, code)
		}
		counts[code]++
	}

	duplicates := make([]string, 0)
	for _, code := range seen {
		if counts[code] > 1 {
			duplicates = append(duplicates, code)
		}
	}
	return duplicates
}
