package payment

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"shop/internal/pkg/errs"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// ParseCardNumber strips spaces and hyphens and checks the digit count.
// It returns the bare digits.
func ParseCardNumber(raw string) (string, error) {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	if !cardNumberPattern.MatchString(digits) {
		return "", errs.NewRuleViolationError(errs.ErrValueIsInvalid, "card number",
			"Invalid card number format. Expected 13-19 digits")
	}
	return digits, nil
}

// MaskCardNumber keeps the last four digits, e.g. "****-****-****-1234".
func MaskCardNumber(digits string) string {
	last := digits
	if len(digits) > 4 {
		last = digits[len(digits)-4:]
	}
	return "****-****-****-" + last
}

// ParseCardHolder trims the name and requires at least two characters.
func ParseCardHolder(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if len([]rune(trimmed)) < 2 {
		return "", errs.NewRuleViolationError(errs.ErrValueIsRequired, "card holder name", "Card holder name is required")
	}
	return trimmed, nil
}

// CheckExpiry accepts MM/YY and rejects cards whose expiry month ended before now.
func CheckExpiry(raw string, now time.Time) error {
	m := expiryPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return errs.NewRuleViolationError(errs.ErrValueIsInvalid, "expiry date", "Invalid expiry date format. Expected MM/YY")
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	// first instant after the expiry month
	end := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.UTC().Before(end) {
		return errs.NewRuleViolationError(errs.ErrValueIsOutOfRange, "expiry date", "Card has expired")
	}
	return nil
}

func CheckCVV(raw string) error {
	if !cvvPattern.MatchString(strings.TrimSpace(raw)) {
		return errs.NewRuleViolationError(errs.ErrValueIsInvalid, "cvv", "Invalid CVV format. Expected 3-4 digits")
	}
	return nil
}
