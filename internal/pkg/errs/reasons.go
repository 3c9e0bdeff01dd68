package errs

// Reasons flattens err into the list of messages it carries. Errors produced by
// errors.Join are expanded depth first, preserving order; every other error
// contributes its own Error() text. A nil error yields an empty list.
func Reasons(err error) []string {
	if err == nil {
		return []string{}
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	reasons := make([]string, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		reasons = append(reasons, Reasons(e)...)
	}
	return reasons
}
