package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/transferauth/internal/domain"
)

// codeRepository implements domain.VerificationCodeRepository
type codeRepository struct {
	store *Store
}

// NewVerificationCodeRepository creates a new in-memory code repository
func NewVerificationCodeRepository(store *Store) domain.VerificationCodeRepository {
	return &codeRepository{store: store}
}

// Create stores a new code, rejecting a duplicate order within the transfer
func (r *codeRepository) Create(ctx context.Context, c *domain.VerificationCode) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.codes {
		if existing.TransferID == c.TransferID && existing.Order == c.Order {
			return fmt.Errorf("code order %d already used on transfer %s: %w", c.Order, c.TransferID, domain.ErrConcurrencyConflict)
		}
	}
	r.store.codes[c.ID] = *c
	return nil
}

// Update persists the mutable fields of a code
func (r *codeRepository) Update(ctx context.Context, c *domain.VerificationCode) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.codes[c.ID]; !ok {
		return fmt.Errorf("verification code %s: %w", c.ID, domain.ErrNotFound)
	}
	r.store.codes[c.ID] = *c
	return nil
}

// ListByTransfer returns the ladder of a transfer ordered by Order
func (r *codeRepository) ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]*domain.VerificationCode, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.VerificationCode, 0)
	for _, c := range r.store.codes {
		if c.TransferID == transferID {
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result, nil
}

// GetNextCodeOrder returns max(order)+1, or 0 for an empty ladder
func (r *codeRepository) GetNextCodeOrder(ctx context.Context, transferID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	next := 0
	for _, c := range r.store.codes {
		if c.TransferID == transferID && c.Order >= next {
			next = c.Order + 1
		}
	}
	return next, nil
}

// FindExpiredCodes returns overdue pending codes of live transfers, ordered
// by transfer and then by order
func (r *codeRepository) FindExpiredCodes(ctx context.Context, now time.Time) ([]*domain.VerificationCode, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.VerificationCode, 0)
	for _, c := range r.store.codes {
		t, ok := r.store.transfers[c.TransferID]
		if !ok || !t.Status.IsLive() {
			continue
		}
		if c.IsOverdue(now) {
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TransferID != result[j].TransferID {
			return result[i].TransferID.String() < result[j].TransferID.String()
		}
		return result[i].Order < result[j].Order
	})
	return result, nil
}
