package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/transferauth/internal/domain"
)

const transferColumns = `
	id, owner_id, destination_account_ref, amount, description, status,
	current_code_index, failed_attempts_total, is_account_blocked,
	created_at, updated_at, executed_at, expires_at, version`

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// transferRepository implements domain.TransferRepository
type transferRepository struct {
	db *DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *DB) domain.TransferRepository {
	return &transferRepository{db: db}
}

func scanTransfer(row rowScanner) (*domain.Transfer, error) {
	var transfer domain.Transfer
	var amountStr string
	var executedAt sql.NullTime

	err := row.Scan(
		&transfer.ID,
		&transfer.OwnerID,
		&transfer.DestinationAccountRef,
		&amountStr,
		&transfer.Description,
		&transfer.Status,
		&transfer.CurrentCodeIndex,
		&transfer.FailedAttemptsTotal,
		&transfer.IsAccountBlocked,
		&transfer.CreatedAt,
		&transfer.UpdatedAt,
		&executedAt,
		&transfer.ExpiresAt,
		&transfer.Version,
	)
	if err != nil {
		return nil, err
	}

	// Parse amount (NUMERIC)
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	transfer.Amount = amount

	if executedAt.Valid {
		at := executedAt.Time
		transfer.ExecutedAt = &at
	}

	return &transfer, nil
}

// Create creates a new transfer
func (r *transferRepository) Create(ctx context.Context, t *domain.Transfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		t.ID,
		t.OwnerID,
		t.DestinationAccountRef,
		t.Amount.String(),
		t.Description,
		string(t.Status),
		t.CurrentCodeIndex,
		t.FailedAttemptsTotal,
		t.IsAccountBlocked,
		t.CreatedAt,
		t.UpdatedAt,
		nullTime(t.ExecutedAt),
		t.ExpiresAt,
		t.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

func (r *transferRepository) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	transfer, err := scanTransfer(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transfer %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transfer by ID: %w", err)
	}
	return transfer, nil
}

// GetByID retrieves a transfer by its ID
func (r *transferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate retrieves a transfer and locks its row until the
// surrounding transaction ends
func (r *transferRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	return r.get(ctx, id, true)
}

// Update persists t when the stored version still matches
func (r *transferRepository) Update(ctx context.Context, t *domain.Transfer) error {
	query := `
		UPDATE transfers
		SET status = $1,
			current_code_index = $2,
			failed_attempts_total = $3,
			is_account_blocked = $4,
			updated_at = $5,
			executed_at = $6,
			description = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
	`

	result, err := r.db.conn(ctx).ExecContext(ctx, query,
		string(t.Status),
		t.CurrentCodeIndex,
		t.FailedAttemptsTotal,
		t.IsAccountBlocked,
		t.UpdatedAt,
		nullTime(t.ExecutedAt),
		t.Description,
		t.ID,
		t.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transfer %s at version %d: %w", t.ID, t.Version, domain.ErrConcurrencyConflict)
	}

	t.Version++
	return nil
}

// ListByOwner retrieves all transfers of an owner, oldest first
func (r *transferRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE owner_id = $1 ORDER BY created_at, id`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer rows.Close()

	transfers := make([]*domain.Transfer, 0)
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfers: %w", err)
	}
	return transfers, nil
}

// IsUserBlocked reports whether any transfer of the owner is locked out
func (r *transferRepository) IsUserBlocked(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transfers WHERE owner_id = $1 AND is_account_blocked)`

	var blocked bool
	if err := r.db.conn(ctx).QueryRowContext(ctx, query, ownerID).Scan(&blocked); err != nil {
		return false, fmt.Errorf("failed to check owner block: %w", err)
	}
	return blocked, nil
}

// FindExpirable returns IDs of live transfers whose deadline passed
func (r *transferRepository) FindExpirable(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM transfers
		WHERE status IN ('pending', 'executing') AND expires_at < $1
		ORDER BY expires_at
	`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find expirable transfers: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan transfer id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
