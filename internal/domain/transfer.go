package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus represents the lifecycle status of a transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusExecuting TransferStatus = "executing"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
	TransferStatusBlocked   TransferStatus = "blocked"
	TransferStatusExpired   TransferStatus = "expired"
	TransferStatusFailed    TransferStatus = "failed"
)

// allowedTransitions lists, for each source status, the statuses it may move to.
// Blocked only leaves through an administrative unblock.
var allowedTransitions = map[TransferStatus][]TransferStatus{
	TransferStatusPending: {
		TransferStatusExecuting,
		TransferStatusBlocked,
		TransferStatusCancelled,
		TransferStatusExpired,
		TransferStatusCompleted, // administrative force-validate
	},
	TransferStatusExecuting: {
		TransferStatusPending,
		TransferStatusExecuting,
		TransferStatusCompleted,
		TransferStatusBlocked,
		TransferStatusCancelled,
		TransferStatusExpired,
		TransferStatusFailed,
	},
	TransferStatusBlocked: {
		TransferStatusPending,
		TransferStatusExecuting,
	},
	TransferStatusCompleted: {},
	TransferStatusCancelled: {},
	TransferStatusExpired:   {},
	TransferStatusFailed:    {},
}

// CanTransition reports whether a transfer may move from one status to another
func CanTransition(from, to TransferStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known status
func (s TransferStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal reports whether no regular operation may leave s
func (s TransferStatus) IsTerminal() bool {
	switch s {
	case TransferStatusCompleted, TransferStatusCancelled, TransferStatusExpired, TransferStatusFailed:
		return true
	}
	return false
}

// IsLive reports whether the transfer still accepts ladder operations
func (s TransferStatus) IsLive() bool {
	return s == TransferStatusPending || s == TransferStatusExecuting
}

// Transfer is the aggregate root of the authorization ladder.
// Funds are held at creation; the ladder authorizes an already-committed intent.
type Transfer struct {
	ID                    uuid.UUID
	OwnerID               uuid.UUID
	DestinationAccountRef string
	Amount                decimal.Decimal
	Description           string
	Status                TransferStatus
	CurrentCodeIndex      int
	FailedAttemptsTotal   int
	IsAccountBlocked      bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
	ExecutedAt            *time.Time // NULL until completed
	ExpiresAt             time.Time  // deadline for completing the whole ladder
	Version               int
}

// Validate ensures the transfer adheres to domain rules
func (t *Transfer) Validate() error {
	if t.OwnerID == uuid.Nil {
		return errors.New("transfer owner ID cannot be empty")
	}
	if t.DestinationAccountRef == "" {
		return errors.New("transfer destination cannot be empty")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !t.Status.IsValid() {
		return errors.New("transfer status is invalid")
	}
	if t.CurrentCodeIndex < 0 {
		return errors.New("current code index cannot be negative")
	}
	if t.ExpiresAt.Before(t.CreatedAt) {
		return errors.New("transfer cannot expire before it is created")
	}
	return nil
}

// TransitionTo moves the transfer to the given status, enforcing the state machine
func (t *Transfer) TransitionTo(to TransferStatus, operation string) error {
	if !CanTransition(t.Status, to) {
		return NewTransitionError(t.Status, operation)
	}
	t.Status = to
	return nil
}

// IsPastDeadline reports whether the ladder deadline has passed at now
func (t *Transfer) IsPastDeadline(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
