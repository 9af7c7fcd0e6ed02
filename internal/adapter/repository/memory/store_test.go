package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/transferauth/internal/domain"
)

func newTransfer(owner uuid.UUID, now time.Time) *domain.Transfer {
	return &domain.Transfer{
		ID:                    uuid.New(),
		OwnerID:               owner,
		DestinationAccountRef: "acct-dest",
		Amount:                decimal.NewFromInt(40),
		Status:                domain.TransferStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
		ExpiresAt:             now.Add(time.Hour),
	}
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ledger := NewLedger(store)
	transfers := NewTransferRepository(store)
	txManager := NewTransactionManager(store)

	owner := uuid.New()
	require.NoError(t, ledger.OpenAccount(ctx, owner, decimal.NewFromInt(100)))

	tr := newTransfer(owner, time.Now())
	boom := errors.New("boom")

	err := txManager.Run(ctx, func(ctx context.Context) error {
		require.NoError(t, ledger.Debit(ctx, owner, tr.Amount))
		require.NoError(t, transfers.Create(ctx, tr))
		return boom
	})

	assert.ErrorIs(t, err, boom)

	balance, err := ledger.Balance(ctx, owner)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(balance), "debit must be rolled back")

	_, err = transfers.GetByID(ctx, tr.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ledger := NewLedger(store)
	txManager := NewTransactionManager(store)

	owner := uuid.New()
	require.NoError(t, ledger.OpenAccount(ctx, owner, decimal.NewFromInt(100)))

	err := txManager.Run(ctx, func(ctx context.Context) error {
		return ledger.Debit(ctx, owner, decimal.NewFromInt(30))
	})
	require.NoError(t, err)

	balance, _ := ledger.Balance(ctx, owner)
	assert.True(t, decimal.NewFromInt(70).Equal(balance))
}

func TestTransferRepository_OptimisticVersion(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewTransferRepository(store)

	tr := newTransfer(uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, tr))

	first, err := repo.GetByID(ctx, tr.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, tr.ID)
	require.NoError(t, err)

	first.Status = domain.TransferStatusExecuting
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, 1, first.Version)

	second.Status = domain.TransferStatusCancelled
	err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)

	stored, _ := repo.GetByID(ctx, tr.ID)
	assert.Equal(t, domain.TransferStatusExecuting, stored.Status)
}

func TestTransferRepository_Queries(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewTransferRepository(store)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	owner := uuid.New()

	live := newTransfer(owner, now)
	blocked := newTransfer(owner, now.Add(time.Second))
	blocked.Status = domain.TransferStatusBlocked
	blocked.IsAccountBlocked = true
	done := newTransfer(uuid.New(), now)
	done.Status = domain.TransferStatusCompleted

	for _, tr := range []*domain.Transfer{live, blocked, done} {
		require.NoError(t, repo.Create(ctx, tr))
	}

	isBlocked, err := repo.IsUserBlocked(ctx, owner)
	require.NoError(t, err)
	assert.True(t, isBlocked)

	isBlocked, err = repo.IsUserBlocked(ctx, done.OwnerID)
	require.NoError(t, err)
	assert.False(t, isBlocked)

	owned, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, live.ID, owned[0].ID)

	expirable, err := repo.FindExpirable(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{live.ID}, expirable)
}

func TestCodeRepository_OrderingAndExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewVerificationCodeRepository(store)
	now := time.Now()
	past := now.Add(-time.Minute)

	tr := newTransfer(uuid.New(), now)
	require.NoError(t, NewTransferRepository(store).Create(ctx, tr))
	transferID := tr.ID

	cancelled := newTransfer(uuid.New(), now)
	cancelled.Status = domain.TransferStatusCancelled
	require.NoError(t, NewTransferRepository(store).Create(ctx, cancelled))
	require.NoError(t, repo.Create(ctx, &domain.VerificationCode{
		ID: uuid.New(), TransferID: cancelled.ID, ExpectedValue: "Z",
		Status: domain.CodeStatusPending, ExpiresAt: &past,
	}))

	next, err := repo.GetNextCodeOrder(ctx, transferID)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	for i := 0; i < 3; i++ {
		c := &domain.VerificationCode{
			ID:            uuid.New(),
			TransferID:    transferID,
			Order:         i,
			ExpectedValue: "X",
			Status:        domain.CodeStatusPending,
		}
		if i < 2 {
			c.ExpiresAt = &past
		}
		require.NoError(t, repo.Create(ctx, c))
	}

	dup := &domain.VerificationCode{ID: uuid.New(), TransferID: transferID, Order: 1, ExpectedValue: "Y"}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrConcurrencyConflict)

	next, err = repo.GetNextCodeOrder(ctx, transferID)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	expired, err := repo.FindExpiredCodes(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 2)
	assert.Equal(t, 0, expired[0].Order)
	assert.Equal(t, 1, expired[1].Order)

	ladder, err := repo.ListByTransfer(ctx, transferID)
	require.NoError(t, err)
	require.Len(t, ladder, 3)
	for i, c := range ladder {
		assert.Equal(t, i, c.Order)
	}
}

func TestLedger_DebitCredit(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(NewStore())
	account := uuid.New()

	assert.ErrorIs(t, ledger.Debit(ctx, account, decimal.NewFromInt(1)), domain.ErrNotFound)

	require.NoError(t, ledger.OpenAccount(ctx, account, decimal.RequireFromString("150.00")))
	require.NoError(t, ledger.OpenAccount(ctx, account, decimal.NewFromInt(999)))

	assert.ErrorIs(t, ledger.Debit(ctx, account, decimal.RequireFromString("150.01")), domain.ErrInsufficientFunds)
	assert.ErrorIs(t, ledger.Debit(ctx, account, decimal.Zero), domain.ErrInvalidAmount)

	require.NoError(t, ledger.Debit(ctx, account, decimal.RequireFromString("100.00")))
	require.NoError(t, ledger.Credit(ctx, account, decimal.RequireFromString("25.50")))

	balance, err := ledger.Balance(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "75.5", balance.String())
}
