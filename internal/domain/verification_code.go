package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CodeStatus represents the lifecycle status of a verification code
type CodeStatus string

const (
	CodeStatusPending   CodeStatus = "pending"
	CodeStatusValidated CodeStatus = "validated"
	CodeStatusExpired   CodeStatus = "expired"
)

// VerificationCode is one step of a transfer's ladder
type VerificationCode struct {
	ID             uuid.UUID
	TransferID     uuid.UUID
	Order          int // 0-based, unique per transfer
	Label          string
	ExpectedValue  string
	Status         CodeStatus
	FailedAttempts int
	CreatedAt      time.Time
	ValidatedAt    *time.Time
	// ExpiresAt is the step deadline while pending. Once validated it is
	// rewritten to the end of the audit window and never allows re-submission.
	ExpiresAt *time.Time
}

// Validate ensures the code adheres to domain rules
func (c *VerificationCode) Validate() error {
	if c.TransferID == uuid.Nil {
		return errors.New("verification code must belong to a transfer")
	}
	if strings.TrimSpace(c.ExpectedValue) == "" {
		return errors.New("verification code value cannot be empty")
	}
	if c.Order < 0 {
		return errors.New("verification code order cannot be negative")
	}
	switch c.Status {
	case CodeStatusPending, CodeStatusValidated, CodeStatusExpired:
	default:
		return errors.New("verification code status is invalid")
	}
	return nil
}

// Matches compares a submission against the expected value, ignoring case.
// Surrounding whitespace is dropped on both sides.
func (c *VerificationCode) Matches(submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(c.ExpectedValue))
}

// IsOverdue reports whether a pending code passed its step deadline at now
func (c *VerificationCode) IsOverdue(now time.Time) bool {
	return c.Status == CodeStatusPending && c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// CurrentCode returns the pending code whose order equals index, or nil
func CurrentCode(codes []*VerificationCode, index int) *VerificationCode {
	for _, c := range codes {
		if c.Order == index && c.Status == CodeStatusPending {
			return c
		}
	}
	return nil
}

// LadderComplete reports whether the cursor moved past every appended code
// with none left pending and the last step validated. Earlier expired steps
// count as passed; an expired last step needs a fresh code.
func LadderComplete(codes []*VerificationCode, index int) bool {
	if len(codes) == 0 || index != len(codes) {
		return false
	}
	lastValidated := false
	for _, c := range codes {
		if c.Status == CodeStatusPending {
			return false
		}
		if c.Order == len(codes)-1 {
			lastValidated = c.Status == CodeStatusValidated
		}
	}
	return lastValidated
}
