package errs

// RuleViolationError is a validation failure whose Message is meant for the
// end user and is reported verbatim. Kind is one of the package sentinels and
// lets callers classify the failure with errors.Is.
type RuleViolationError struct {
	ParamName string
	Message   string
	Kind      error
}

func NewRuleViolationError(kind error, paramName, message string) *RuleViolationError {
	if kind == nil {
		kind = ErrValueIsInvalid
	}
	return &RuleViolationError{
		ParamName: paramName,
		Message:   sanitize(message),
		Kind:      kind,
	}
}

func (e *RuleViolationError) Error() string {
	return e.Message
}

func (e *RuleViolationError) Unwrap() error {
	return e.Kind
}
