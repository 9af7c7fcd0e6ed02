// Package memory provides in-process implementations of the domain
// repositories, the account ledger and the transaction manager. It backs
// STORAGE_BACKEND=memory and the usecase tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/transferauth/internal/domain"
)

// Store holds every table in memory. Aggregates are copied on the way in
// and out so callers never share pointers with the store.
type Store struct {
	mu        sync.Mutex // protects the maps below
	txMu      sync.Mutex // serializes TransactionManager.Run
	transfers map[uuid.UUID]domain.Transfer
	codes     map[uuid.UUID]domain.VerificationCode
	attempts  []domain.AttemptLog
	audit     []domain.AuditEntry
	balances  map[uuid.UUID]decimal.Decimal
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		transfers: make(map[uuid.UUID]domain.Transfer),
		codes:     make(map[uuid.UUID]domain.VerificationCode),
		attempts:  make([]domain.AttemptLog, 0),
		audit:     make([]domain.AuditEntry, 0),
		balances:  make(map[uuid.UUID]decimal.Decimal),
	}
}

type snapshot struct {
	transfers map[uuid.UUID]domain.Transfer
	codes     map[uuid.UUID]domain.VerificationCode
	attempts  []domain.AttemptLog
	audit     []domain.AuditEntry
	balances  map[uuid.UUID]decimal.Decimal
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		transfers: make(map[uuid.UUID]domain.Transfer, len(s.transfers)),
		codes:     make(map[uuid.UUID]domain.VerificationCode, len(s.codes)),
		attempts:  make([]domain.AttemptLog, len(s.attempts)),
		audit:     make([]domain.AuditEntry, len(s.audit)),
		balances:  make(map[uuid.UUID]decimal.Decimal, len(s.balances)),
	}
	for k, v := range s.transfers {
		snap.transfers[k] = v
	}
	for k, v := range s.codes {
		snap.codes[k] = v
	}
	copy(snap.attempts, s.attempts)
	copy(snap.audit, s.audit)
	for k, v := range s.balances {
		snap.balances[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transfers = snap.transfers
	s.codes = snap.codes
	s.attempts = snap.attempts
	s.audit = snap.audit
	s.balances = snap.balances
}

// transactionManager implements domain.TransactionManager by snapshotting
// the store and restoring it when fn fails
type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a transaction manager over store
func NewTransactionManager(store *Store) domain.TransactionManager {
	return &transactionManager{store: store}
}

// Run executes fn atomically with respect to other Run calls
func (m *transactionManager) Run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	snap := m.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			m.store.restore(snap)
			panic(r)
		}
		if err != nil {
			m.store.restore(snap)
		}
	}()

	return fn(ctx)
}
