package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAccountBlocked      = errors.New("account is blocked")
	ErrTransferExpired     = errors.New("transfer expired")
	ErrNoCurrentCode       = errors.New("no current verification code")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrNotFound            = errors.New("not found")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrInvalidAmount       = errors.New("transfer amount must be positive")
	ErrInvalidInput        = errors.New("invalid input")
)

// TransitionError reports an operation attempted from a status that does
// not allow it. It matches ErrInvalidTransition with errors.Is.
type TransitionError struct {
	From      TransferStatus
	Operation string
}

// NewTransitionError creates a TransitionError for the given status and operation
func NewTransitionError(from TransferStatus, operation string) *TransitionError {
	return &TransitionError{From: from, Operation: operation}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s transfer in status %s", e.Operation, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
