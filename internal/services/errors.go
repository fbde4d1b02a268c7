package services

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors returned by the billing services. Callers match them with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDocumentLocked    = errors.New("document is locked")
	ErrQuoteExpired      = errors.New("quote has expired")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAccessDenied      = errors.New("access denied")
	ErrValidation        = errors.New("validation failed")
	ErrCheckoutExpired   = errors.New("checkout session expired")
	ErrCheckoutPending   = errors.New("checkout session not completed yet")
)

// ValidationError reports which inputs were rejected. It matches ErrValidation.
type ValidationError struct {
	Message string
	Details []string
}

// NewValidationError creates a ValidationError with optional field details
func NewValidationError(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidTransition(kind, from, to string) error {
	return fmt.Errorf("%w: %s cannot move from %s to %s", ErrInvalidTransition, kind, from, to)
}

func documentLocked(kind, status string) error {
	return fmt.Errorf("%w: %s in status %s can no longer be edited", ErrDocumentLocked, kind, status)
}
