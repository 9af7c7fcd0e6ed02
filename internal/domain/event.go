package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType names a transfer lifecycle notification
type EventType string

const (
	EventCreated            EventType = "created"
	EventCodeAdded          EventType = "code_added"
	EventCodeValidated      EventType = "code_validated"
	EventAllCodesValidated  EventType = "all_codes_validated"
	EventExecuted           EventType = "executed"
	EventUserBlocked        EventType = "user_blocked"
	EventCodeExpired        EventType = "code_expired"
	EventCancelled          EventType = "cancelled"
	EventSuspiciousActivity EventType = "suspicious_activity"
	EventTransferExpired    EventType = "transfer_expired"
	EventFailed             EventType = "failed"
	EventForceValidated     EventType = "force_validated"
	EventTransferBlocked    EventType = "transfer_blocked"
	EventTransferUnblocked  EventType = "transfer_unblocked"
	EventUserUnblocked      EventType = "user_unblocked"
)

// Event is the payload handed to a NotificationSink
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       EventType       `json:"type"`
	TransferID uuid.UUID       `json:"transfer_id"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	CodeID     *uuid.UUID      `json:"code_id,omitempty"`
	CodeLabel  string          `json:"code_label,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Status     TransferStatus  `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewTransferEvent builds an event describing t at the given time
func NewTransferEvent(eventType EventType, t *Transfer, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		TransferID: t.ID,
		OwnerID:    t.OwnerID,
		Amount:     t.Amount,
		Status:     t.Status,
		OccurredAt: at,
	}
}

// WithCode attaches the code a code-level event refers to
func (e Event) WithCode(c *VerificationCode) Event {
	id := c.ID
	e.CodeID = &id
	e.CodeLabel = c.Label
	return e
}

// WithReason attaches a human-readable reason
func (e Event) WithReason(reason string) Event {
	e.Reason = reason
	return e
}
