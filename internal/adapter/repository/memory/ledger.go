package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/transferauth/internal/domain"
)

// Ledger implements domain.AccountLedger over the store's balances, so
// ledger effects roll back together with the rest of a transaction
type Ledger struct {
	store *Store
}

// NewLedger creates a ledger over store
func NewLedger(store *Store) *Ledger {
	return &Ledger{store: store}
}

// OpenAccount creates an account with an opening balance. It is a no-op
// when the account already exists.
func (l *Ledger) OpenAccount(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	if _, exists := l.store.balances[accountID]; !exists {
		l.store.balances[accountID] = balance
	}
	return nil
}

// Debit removes amount from the account when the balance covers it
func (l *Ledger) Debit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	balance, ok := l.store.balances[accountID]
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, domain.ErrNotFound)
	}
	if balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}
	l.store.balances[accountID] = balance.Sub(amount)
	return nil
}

// Credit adds amount to the account
func (l *Ledger) Credit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	balance, ok := l.store.balances[accountID]
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, domain.ErrNotFound)
	}
	l.store.balances[accountID] = balance.Add(amount)
	return nil
}

// Balance returns the current balance of the account
func (l *Ledger) Balance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	balance, ok := l.store.balances[accountID]
	if !ok {
		return decimal.Zero, fmt.Errorf("account %s: %w", accountID, domain.ErrNotFound)
	}
	return balance, nil
}

var _ domain.AccountLedger = (*Ledger)(nil)
