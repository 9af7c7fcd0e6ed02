package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/transferauth/internal/domain"
)

// Ledger implements domain.AccountLedger on the accounts table. Debits and
// credits join the caller's transaction.
type Ledger struct {
	db *DB
}

// NewLedger creates a new SQL ledger
func NewLedger(db *DB) *Ledger {
	return &Ledger{db: db}
}

// OpenAccount creates an account with an opening balance. An existing
// account is left untouched.
func (l *Ledger) OpenAccount(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal) error {
	query := `INSERT INTO accounts (id, balance) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`

	if _, err := l.db.conn(ctx).ExecContext(ctx, query, accountID, balance.String()); err != nil {
		return fmt.Errorf("failed to open account: %w", err)
	}
	return nil
}

// Debit removes amount from the account. The balance check happens in the
// UPDATE itself so concurrent debits cannot overdraw.
func (l *Ledger) Debit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	query := `
		UPDATE accounts
		SET balance = balance - $1, updated_at = NOW()
		WHERE id = $2 AND balance >= $1
	`

	result, err := l.db.conn(ctx).ExecContext(ctx, query, amount.String(), accountID)
	if err != nil {
		return fmt.Errorf("failed to debit account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	// 0 rows: either the account is missing or the balance check failed
	if rows == 0 {
		if _, err := l.Balance(ctx, accountID); err != nil {
			return err
		}
		return domain.ErrInsufficientFunds
	}
	return nil
}

// Credit adds amount to the account
func (l *Ledger) Credit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	query := `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`

	result, err := l.db.conn(ctx).ExecContext(ctx, query, amount.String(), accountID)
	if err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account %s: %w", accountID, domain.ErrNotFound)
	}
	return nil
}

// Balance returns the current balance of the account
func (l *Ledger) Balance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	var balanceStr string
	err := l.db.conn(ctx).QueryRowContext(ctx, `SELECT balance FROM accounts WHERE id = $1`, accountID).Scan(&balanceStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("account %s: %w", accountID, domain.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse balance: %w", err)
	}
	return balance, nil
}

var _ domain.AccountLedger = (*Ledger)(nil)
