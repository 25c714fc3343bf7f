package domain

import "fmt"

// ValidationError reports a structurally invalid input field. Inputs are
// validated before any projection work begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CapacityError reports a batch request exceeding a hard limit. No
// scenarios have been run when this error is returned.
type CapacityError struct {
	What  string
	Count int
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s %d exceeds limit of %d", e.What, e.Count, e.Limit)
}

// ConfigurationError reports a setting the engine cannot act on, such as
// an unrecognized province in accurate tax mode.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Setting, e.Reason)
}

func fieldAt(kind string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", kind, i, field)
}
