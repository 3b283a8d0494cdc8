// Package generator orchestrates brief generation: admission, scrubbing,
// request assembly, the external model call, and validation of its output.
package generator

import (
	"fmt"
	"strings"

	"github.com/joshwakefield/jd-brief/internal/types"
)

// InputSizeError indicates the JD text is outside the admissible range.
// User-correctable; surfaced before any external call is made.
type InputSizeError struct {
	Length int
	Min    int
	Max    int
}

func (e *InputSizeError) Error() string {
	return fmt.Sprintf("job description is %d characters, must be between %d and %d", e.Length, e.Min, e.Max)
}

// MalformedOutputError indicates the generator returned non-parseable output.
type MalformedOutputError struct {
	Cause error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generator returned malformed output: %v", e.Cause)
	}
	return "generator returned malformed output"
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// SchemaViolationError indicates parseable but contract-violating output.
// Carries the violated rule list; the caller may retry the same request
// since the external generator is non-deterministic.
type SchemaViolationError struct {
	Violations *types.Violations
}

func (e *SchemaViolationError) Error() string {
	rules := e.Violations.Rules()
	if len(rules) == 0 {
		return "generated brief violates the contract"
	}
	return fmt.Sprintf("generated brief violates the contract: %s", strings.Join(rules, ", "))
}

// GenerationError wraps failures of the external model call itself.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
