package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/simaogato/transferauth/internal/domain"
)

// attemptRepository implements domain.AttemptLogRepository
type attemptRepository struct {
	store *Store
}

// NewAttemptLogRepository creates a new in-memory attempt log repository
func NewAttemptLogRepository(store *Store) domain.AttemptLogRepository {
	return &attemptRepository{store: store}
}

// Create appends an attempt row
func (r *attemptRepository) Create(ctx context.Context, a *domain.AttemptLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.attempts = append(r.store.attempts, *a)
	return nil
}

// ListByTransfer returns attempts in insertion order
func (r *attemptRepository) ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]*domain.AttemptLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.AttemptLog, 0)
	for _, a := range r.store.attempts {
		if a.TransferID == transferID {
			result = append(result, &a)
		}
	}
	return result, nil
}

// auditRepository implements domain.AuditRepository
type auditRepository struct {
	store *Store
}

// NewAuditRepository creates a new in-memory audit repository
func NewAuditRepository(store *Store) domain.AuditRepository {
	return &auditRepository{store: store}
}

// Record appends an audit entry
func (r *auditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.audit = append(r.store.audit, *entry)
	return nil
}

// AuditEntries returns a copy of all recorded audit entries
func (s *Store) AuditEntries() []domain.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]domain.AuditEntry, len(s.audit))
	copy(copied, s.audit)
	return copied
}
