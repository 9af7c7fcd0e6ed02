package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/transferauth/internal/domain"
)

// attemptRepository implements domain.AttemptLogRepository
type attemptRepository struct {
	db *DB
}

// NewAttemptLogRepository creates a new attempt log repository
func NewAttemptLogRepository(db *DB) domain.AttemptLogRepository {
	return &attemptRepository{db: db}
}

// Create appends an attempt row
func (r *attemptRepository) Create(ctx context.Context, a *domain.AttemptLog) error {
	query := `
		INSERT INTO attempt_logs (id, transfer_id, code_id, submitted_value, succeeded, client_ip, client_agent, attempted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		a.ID,
		a.TransferID,
		a.CodeID,
		a.SubmittedValue,
		a.Succeeded,
		nullString(a.ClientIP),
		nullString(a.ClientAgent),
		a.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt log: %w", err)
	}
	return nil
}

// ListByTransfer retrieves the attempts of a transfer, oldest first
func (r *attemptRepository) ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]*domain.AttemptLog, error) {
	query := `
		SELECT id, transfer_id, code_id, submitted_value, succeeded, client_ip, client_agent, attempted_at
		FROM attempt_logs
		WHERE transfer_id = $1
		ORDER BY attempted_at, id
	`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempt logs: %w", err)
	}
	defer rows.Close()

	attempts := make([]*domain.AttemptLog, 0)
	for rows.Next() {
		var a domain.AttemptLog
		var clientIP, clientAgent sql.NullString
		if err := rows.Scan(
			&a.ID,
			&a.TransferID,
			&a.CodeID,
			&a.SubmittedValue,
			&a.Succeeded,
			&clientIP,
			&clientAgent,
			&a.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt log: %w", err)
		}
		if clientIP.Valid {
			a.ClientIP = &clientIP.String
		}
		if clientAgent.Valid {
			a.ClientAgent = &clientAgent.String
		}
		attempts = append(attempts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attempt logs: %w", err)
	}
	return attempts, nil
}

// auditRepository implements domain.AuditRepository on the audit_entries table
type auditRepository struct {
	db *DB
}

// NewAuditRepository creates a new SQL audit repository
func NewAuditRepository(db *DB) domain.AuditRepository {
	return &auditRepository{db: db}
}

// Record inserts an audit entry in the caller's transaction
func (r *auditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (id, transfer_id, owner_id, action, actor, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var transferID interface{}
	if entry.TransferID != nil {
		transferID = *entry.TransferID
	}

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		entry.ID,
		transferID,
		entry.OwnerID,
		string(entry.Action),
		entry.Actor,
		entry.Reason,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
