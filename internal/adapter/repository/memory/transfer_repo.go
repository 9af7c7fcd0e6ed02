package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/transferauth/internal/domain"
)

// transferRepository implements domain.TransferRepository
type transferRepository struct {
	store *Store
}

// NewTransferRepository creates a new in-memory transfer repository
func NewTransferRepository(store *Store) domain.TransferRepository {
	return &transferRepository{store: store}
}

// Create stores a new transfer
func (r *transferRepository) Create(ctx context.Context, t *domain.Transfer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.transfers[t.ID]; exists {
		return fmt.Errorf("transfer %s already exists", t.ID)
	}
	r.store.transfers[t.ID] = *t
	return nil
}

// GetByID retrieves a transfer by its ID
func (r *transferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.transfers[id]
	if !ok {
		return nil, fmt.Errorf("transfer %s: %w", id, domain.ErrNotFound)
	}
	return &t, nil
}

// GetByIDForUpdate is GetByID; isolation comes from the transaction manager
func (r *transferRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	return r.GetByID(ctx, id)
}

// Update replaces the stored transfer when versions match
func (r *transferRepository) Update(ctx context.Context, t *domain.Transfer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.transfers[t.ID]
	if !ok {
		return fmt.Errorf("transfer %s: %w", t.ID, domain.ErrNotFound)
	}
	if stored.Version != t.Version {
		return fmt.Errorf("transfer %s at version %d: %w", t.ID, t.Version, domain.ErrConcurrencyConflict)
	}

	t.Version++
	r.store.transfers[t.ID] = *t
	return nil
}

// ListByOwner retrieves all transfers of an owner, oldest first
func (r *transferRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Transfer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.Transfer, 0)
	for _, t := range r.store.transfers {
		if t.OwnerID == ownerID {
			result = append(result, &t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// IsUserBlocked reports whether any transfer of the owner is locked out
func (r *transferRepository) IsUserBlocked(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.transfers {
		if t.OwnerID == ownerID && t.IsAccountBlocked {
			return true, nil
		}
	}
	return false, nil
}

// FindExpirable returns live transfers whose deadline is before now
func (r *transferRepository) FindExpirable(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ids := make([]uuid.UUID, 0)
	for id, t := range r.store.transfers {
		if t.Status.IsLive() && t.IsPastDeadline(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
