// Package rendering turns a validated Brief into a fixed-layout PDF.
package rendering

import "fmt"

// Error represents a rendering failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rendering error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rendering error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
