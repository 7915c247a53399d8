package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ValidationError reports a malformed or missing input field.
// Never retried; the Field lets callers attach the message to a form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a referenced entity that does not exist at write time.
// The write is rejected rather than silently defaulted.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// StoreError wraps a transient store failure. Callers may retry with backoff.
// Timeout distinguishes a deadline/cancellation from other infrastructure
// failures so the boundary can report it as its own condition.
type StoreError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *StoreError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("store timeout during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// storeErr classifies a low-level store failure, marking context deadline and
// cancellation as timeouts.
func storeErr(op string, err error) error {
	timeout := errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
	return &StoreError{Op: op, Timeout: timeout, Err: err}
}

// wrapLookupErr maps a single-row fetch failure to NotFoundError when the row
// is absent, or to a StoreError otherwise.
func wrapLookupErr(entity string, id int, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return storeErr("fetch "+entity, err)
}

// AdvisoryError reports a failure of the external AI advisor. It is never
// fatal: callers degrade to locally computed results and surface the error
// as a warning.
type AdvisoryError struct {
	Op  string
	Err error
}

func (e *AdvisoryError) Error() string {
	return fmt.Sprintf("advisory service failed during %s: %v", e.Op, e.Err)
}

func (e *AdvisoryError) Unwrap() error { return e.Err }
