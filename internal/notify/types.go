package notify

import "fmt"

// NotifyError represents an error that occurred while delivering a
// notification.
type NotifyError struct {
	// Op is the operation that failed (e.g., "send")
	Op string

	// Target is the notification recipient associated with the operation
	Target string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *NotifyError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("notify %s (target: %s): %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("notify %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *NotifyError) Unwrap() error {
	return e.Err
}
