package storage

import "fmt"

// Error represents a storage failure. Surfaced to the caller as-is;
// no automatic retry.
type Error struct {
	Op    string
	Key   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s failed for %s: %v", e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("storage %s failed for %s", e.Op, e.Key)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
