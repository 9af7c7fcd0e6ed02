package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/simaogato/transferauth/internal/domain"
)

const codeColumns = `
	id, transfer_id, code_order, label, expected_value, status,
	failed_attempts, created_at, validated_at, expires_at`

// uniqueViolation is the PostgreSQL error code for a unique constraint breach
const uniqueViolation = "23505"

// codeRepository implements domain.VerificationCodeRepository
type codeRepository struct {
	db *DB
}

// NewVerificationCodeRepository creates a new verification code repository
func NewVerificationCodeRepository(db *DB) domain.VerificationCodeRepository {
	return &codeRepository{db: db}
}

func scanCode(row rowScanner) (*domain.VerificationCode, error) {
	var code domain.VerificationCode
	var validatedAt, expiresAt sql.NullTime

	err := row.Scan(
		&code.ID,
		&code.TransferID,
		&code.Order,
		&code.Label,
		&code.ExpectedValue,
		&code.Status,
		&code.FailedAttempts,
		&code.CreatedAt,
		&validatedAt,
		&expiresAt,
	)
	if err != nil {
		return nil, err
	}

	if validatedAt.Valid {
		at := validatedAt.Time
		code.ValidatedAt = &at
	}
	if expiresAt.Valid {
		at := expiresAt.Time
		code.ExpiresAt = &at
	}
	return &code, nil
}

func (r *codeRepository) list(ctx context.Context, query string, args ...any) ([]*domain.VerificationCode, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query verification codes: %w", err)
	}
	defer rows.Close()

	codes := make([]*domain.VerificationCode, 0)
	for rows.Next() {
		code, err := scanCode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verification code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating verification codes: %w", err)
	}
	return codes, nil
}

// Create creates a new verification code. A second code with the same
// order on one transfer is reported as ErrConcurrencyConflict.
func (r *codeRepository) Create(ctx context.Context, c *domain.VerificationCode) error {
	query := `
		INSERT INTO verification_codes (` + codeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		c.ID,
		c.TransferID,
		c.Order,
		c.Label,
		c.ExpectedValue,
		string(c.Status),
		c.FailedAttempts,
		c.CreatedAt,
		nullTime(c.ValidatedAt),
		nullTime(c.ExpiresAt),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("code order %d already used on transfer %s: %w", c.Order, c.TransferID, domain.ErrConcurrencyConflict)
		}
		return fmt.Errorf("failed to create verification code: %w", err)
	}
	return nil
}

// Update persists the mutable fields of a code
func (r *codeRepository) Update(ctx context.Context, c *domain.VerificationCode) error {
	query := `
		UPDATE verification_codes
		SET status = $1, failed_attempts = $2, validated_at = $3, expires_at = $4
		WHERE id = $5
	`

	result, err := r.db.conn(ctx).ExecContext(ctx, query,
		string(c.Status),
		c.FailedAttempts,
		nullTime(c.ValidatedAt),
		nullTime(c.ExpiresAt),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update verification code: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("verification code %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// ListByTransfer retrieves every code of a transfer ordered by order
func (r *codeRepository) ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]*domain.VerificationCode, error) {
	query := `SELECT ` + codeColumns + ` FROM verification_codes WHERE transfer_id = $1 ORDER BY code_order`
	return r.list(ctx, query, transferID)
}

// GetNextCodeOrder returns max(order)+1, or 0 when the transfer has no codes
func (r *codeRepository) GetNextCodeOrder(ctx context.Context, transferID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(code_order) + 1, 0) FROM verification_codes WHERE transfer_id = $1`

	var next int
	if err := r.db.conn(ctx).QueryRowContext(ctx, query, transferID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next code order: %w", err)
	}
	return next, nil
}

// FindExpiredCodes returns overdue pending codes of live transfers
func (r *codeRepository) FindExpiredCodes(ctx context.Context, now time.Time) ([]*domain.VerificationCode, error) {
	query := `
		SELECT ` + prefixed("c", codeColumns) + `
		FROM verification_codes c
		JOIN transfers t ON t.id = c.transfer_id
		WHERE c.status = 'pending'
			AND c.expires_at IS NOT NULL
			AND c.expires_at < $1
			AND t.status IN ('pending', 'executing')
		ORDER BY c.transfer_id, c.code_order
	`
	return r.list(ctx, query, now)
}
