package form

import "strings"

// ValidationError is a local check that failed before anything was sent.
type ValidationError struct {
	// Field is set when a single value could not be parsed.
	Field string
	// Missing lists the required fields left blank.
	Missing []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "validation: missing " + strings.Join(e.Missing, ", ") + ": " + e.Message
	}
	return "validation: " + e.Message
}

func (e *ValidationError) UserMessage() string { return e.Message }
