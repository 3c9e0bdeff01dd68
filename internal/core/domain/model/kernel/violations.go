package kernel

import (
	"unicode/utf8"

	"shop/internal/pkg/errs"
)

func required(param, message string) error {
	return errs.NewRuleViolationError(errs.ErrValueIsRequired, param, message)
}

func malformed(param, message string) error {
	return errs.NewRuleViolationError(errs.ErrValueIsInvalid, param, message)
}

func outOfRange(param, message string) error {
	return errs.NewRuleViolationError(errs.ErrValueIsOutOfRange, param, message)
}

func notParseable(param, message string) error {
	return errs.NewRuleViolationError(errs.ErrValueIsNotParseable, param, message)
}

// length counts characters rather than bytes so accented names are measured fairly.
func length(s string) int {
	return utf8.RuneCountInString(s)
}
