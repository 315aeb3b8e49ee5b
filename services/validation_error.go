package services

// ValidationError carries the single user-facing message for the first unmet
// rule. No submission happens once one is raised.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
