package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransfer() Transfer {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return Transfer{
		ID:                    uuid.New(),
		OwnerID:               uuid.New(),
		DestinationAccountRef: "DE89370400440532013000",
		Amount:                decimal.NewFromInt(100),
		Status:                TransferStatusPending,
		CreatedAt:             now,
		ExpiresAt:             now.Add(24 * time.Hour),
	}
}

func TestTransfer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tr *Transfer)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid pending transfer should pass",
			mutate:  func(tr *Transfer) {},
			wantErr: false,
		},
		{
			name:    "Missing owner should fail",
			mutate:  func(tr *Transfer) { tr.OwnerID = uuid.Nil },
			wantErr: true,
			errMsg:  "transfer owner ID cannot be empty",
		},
		{
			name:    "Missing destination should fail",
			mutate:  func(tr *Transfer) { tr.DestinationAccountRef = "" },
			wantErr: true,
			errMsg:  "transfer destination cannot be empty",
		},
		{
			name:    "Zero amount should fail",
			mutate:  func(tr *Transfer) { tr.Amount = decimal.Zero },
			wantErr: true,
			errMsg:  ErrInvalidAmount.Error(),
		},
		{
			name:    "Negative amount should fail",
			mutate:  func(tr *Transfer) { tr.Amount = decimal.NewFromInt(-5) },
			wantErr: true,
			errMsg:  ErrInvalidAmount.Error(),
		},
		{
			name:    "Unknown status should fail",
			mutate:  func(tr *Transfer) { tr.Status = "settled" },
			wantErr: true,
			errMsg:  "transfer status is invalid",
		},
		{
			name:    "Negative cursor should fail",
			mutate:  func(tr *Transfer) { tr.CurrentCodeIndex = -1 },
			wantErr: true,
			errMsg:  "current code index cannot be negative",
		},
		{
			name:    "Deadline before creation should fail",
			mutate:  func(tr *Transfer) { tr.ExpiresAt = tr.CreatedAt.Add(-time.Minute) },
			wantErr: true,
			errMsg:  "transfer cannot expire before it is created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTransfer()
			tt.mutate(&tr)

			err := tr.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from TransferStatus
		to   TransferStatus
		want bool
	}{
		{TransferStatusPending, TransferStatusExecuting, true},
		{TransferStatusExecuting, TransferStatusPending, true},
		{TransferStatusExecuting, TransferStatusCompleted, true},
		{TransferStatusPending, TransferStatusBlocked, true},
		{TransferStatusExecuting, TransferStatusBlocked, true},
		{TransferStatusPending, TransferStatusCancelled, true},
		{TransferStatusExecuting, TransferStatusCancelled, true},
		{TransferStatusPending, TransferStatusExpired, true},
		{TransferStatusExecuting, TransferStatusFailed, true},
		{TransferStatusBlocked, TransferStatusPending, true},
		{TransferStatusBlocked, TransferStatusExecuting, true},

		{TransferStatusPending, TransferStatusFailed, false},
		{TransferStatusBlocked, TransferStatusCancelled, false},
		{TransferStatusBlocked, TransferStatusCompleted, false},
		{TransferStatusCancelled, TransferStatusCancelled, false},
		{TransferStatusCompleted, TransferStatusCompleted, false},
		{TransferStatusCompleted, TransferStatusCancelled, false},
		{TransferStatusExpired, TransferStatusPending, false},
		{TransferStatusFailed, TransferStatusExecuting, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransfer_TransitionTo(t *testing.T) {
	tr := validTransfer()
	tr.Status = TransferStatusCancelled

	err := tr.TransitionTo(TransferStatusCancelled, "cancel")

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	var te *TransitionError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, TransferStatusCancelled, te.From)
	assert.Equal(t, "cancel", te.Operation)
	assert.Equal(t, TransferStatusCancelled, tr.Status)

	tr.Status = TransferStatusPending
	assert.NoError(t, tr.TransitionTo(TransferStatusExecuting, "validate"))
	assert.Equal(t, TransferStatusExecuting, tr.Status)
}

func TestTransferStatus_Classification(t *testing.T) {
	assert.True(t, TransferStatusCompleted.IsTerminal())
	assert.True(t, TransferStatusCancelled.IsTerminal())
	assert.True(t, TransferStatusExpired.IsTerminal())
	assert.True(t, TransferStatusFailed.IsTerminal())
	assert.False(t, TransferStatusBlocked.IsTerminal())
	assert.False(t, TransferStatusPending.IsTerminal())

	assert.True(t, TransferStatusPending.IsLive())
	assert.True(t, TransferStatusExecuting.IsLive())
	assert.False(t, TransferStatusBlocked.IsLive())
}

func TestTransfer_IsPastDeadline(t *testing.T) {
	tr := validTransfer()

	assert.False(t, tr.IsPastDeadline(tr.ExpiresAt))
	assert.True(t, tr.IsPastDeadline(tr.ExpiresAt.Add(time.Nanosecond)))
}
