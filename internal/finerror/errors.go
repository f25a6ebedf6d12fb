// Package finerror defines the typed error taxonomy for the normalization
// pipeline. All errors carry a human-readable reason so callers can surface
// them directly; nothing is swallowed silently.
package finerror

import "fmt"

// MalformedResponseError represents an upstream payload with invalid JSON or
// the wrong shape. It is not retried here; retrying the document service call
// is the caller's concern.
type MalformedResponseError struct {
	Source string // "receipt" or "statement"
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s response: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed %s response: %s", e.Source, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// InvalidTransactionError represents a single extracted transaction that
// failed numeric or date validation. The whole batch is aborted when one is
// returned: partial silent data loss is worse than a visible failure.
type InvalidTransactionError struct {
	Description string
	Field       string
	Reason      string
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("invalid transaction %q: %s: %s", e.Description, e.Field, e.Reason)
}

// UnsupportedInputError represents input the pipeline cannot interpret at all,
// such as a non-object payload or an unknown document source.
type UnsupportedInputError struct {
	Reason string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input: %s", e.Reason)
}
