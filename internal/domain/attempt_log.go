package domain

import (
	"time"

	"github.com/google/uuid"
)

// Origin carries the client metadata captured for audit rows
type Origin struct {
	ClientIP    string
	ClientAgent string
}

// AttemptLog is an immutable record of one code submission
type AttemptLog struct {
	ID             uuid.UUID
	TransferID     uuid.UUID
	CodeID         uuid.UUID
	SubmittedValue string
	Succeeded      bool
	ClientIP       *string
	ClientAgent    *string
	Timestamp      time.Time
}

// NewAttemptLog builds an attempt row for a submission against code
func NewAttemptLog(code *VerificationCode, submitted string, succeeded bool, origin Origin, at time.Time) *AttemptLog {
	log := &AttemptLog{
		ID:             uuid.New(),
		TransferID:     code.TransferID,
		CodeID:         code.ID,
		SubmittedValue: submitted,
		Succeeded:      succeeded,
		Timestamp:      at,
	}
	if origin.ClientIP != "" {
		ip := origin.ClientIP
		log.ClientIP = &ip
	}
	if origin.ClientAgent != "" {
		agent := origin.ClientAgent
		log.ClientAgent = &agent
	}
	return log
}

// AuditAction names an administrative override
type AuditAction string

const (
	AuditActionForceValidate AuditAction = "force_validate"
	AuditActionBlock         AuditAction = "block_transfer"
	AuditActionUnblock       AuditAction = "unblock_transfer"
	AuditActionUnblockUser   AuditAction = "unblock_user"
)

// AuditEntry records an administrative override
type AuditEntry struct {
	ID         uuid.UUID
	TransferID *uuid.UUID // NULL for user-wide actions
	OwnerID    uuid.UUID
	Action     AuditAction
	Actor      string
	Reason     string
	CreatedAt  time.Time
}
