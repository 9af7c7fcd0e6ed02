package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRepository defines the interface for transfer persistence operations
type TransferRepository interface {
	// Create creates a new transfer
	Create(ctx context.Context, t *Transfer) error

	// GetByID retrieves a transfer by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Transfer, error)

	// GetByIDForUpdate retrieves a transfer and locks its row for the
	// duration of the surrounding transaction
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transfer, error)

	// Update persists t if its stored version equals t.Version, then bumps
	// t.Version. A mismatch returns ErrConcurrencyConflict.
	Update(ctx context.Context, t *Transfer) error

	// ListByOwner retrieves all transfers of an owner, oldest first
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Transfer, error)

	// IsUserBlocked reports whether any transfer of the owner is locked out
	IsUserBlocked(ctx context.Context, ownerID uuid.UUID) (bool, error)

	// FindExpirable returns IDs of pending/executing transfers whose deadline passed
	FindExpirable(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

// VerificationCodeRepository defines the interface for verification code persistence operations
type VerificationCodeRepository interface {
	// Create creates a new verification code
	Create(ctx context.Context, c *VerificationCode) error

	// Update persists the mutable fields of a code
	Update(ctx context.Context, c *VerificationCode) error

	// ListByTransfer retrieves every code of a transfer ordered by Order
	ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]*VerificationCode, error)

	// GetNextCodeOrder returns max(order)+1, or 0 when the transfer has no codes
	GetNextCodeOrder(ctx context.Context, transferID uuid.UUID) (int, error)

	// FindExpiredCodes returns pending codes of pending/executing transfers
	// whose step deadline is before now, ordered by transfer then order
	FindExpiredCodes(ctx context.Context, now time.Time) ([]*VerificationCode, error)
}

// AttemptLogRepository defines the interface for attempt log persistence operations
type AttemptLogRepository interface {
	// Create appends an attempt row
	Create(ctx context.Context, a *AttemptLog) error

	// ListByTransfer retrieves the attempts of a transfer, oldest first
	ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]*AttemptLog, error)
}

// AuditRepository stores administrative override records
type AuditRepository interface {
	Record(ctx context.Context, entry *AuditEntry) error
}

// AccountLedger is the external account abstraction. Debit fails with
// ErrInsufficientFunds when the available balance is below amount.
type AccountLedger interface {
	Debit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error
	Credit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error
	Balance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}

// TransactionManager runs fn inside one atomic unit. A non-nil error from
// fn rolls back every write made through ctx.
type TransactionManager interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker provides mutual exclusion keyed by an arbitrary string
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// NotificationSink consumes lifecycle events. Implementations must not block.
type NotificationSink interface {
	Notify(ctx context.Context, event Event) error
}

// Clock abstracts time so deadlines can be tested without real clocks
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in UTC
type SystemClock struct{}

// Now returns the current UTC time
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
