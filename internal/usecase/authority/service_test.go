package authority

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/transferauth/internal/domain"
)

func newMockedAuthority(repo *MockTransferRepository, ledger *MockAccountLedger, sink domain.NotificationSink, clock domain.Clock) *TransferAuthority {
	return NewTransferAuthority(Dependencies{
		TransferRepo: repo,
		Ledger:       ledger,
		TxManager:    passthroughTx{},
		Notifier:     sink,
		Clock:        clock,
	})
}

func TestTransferAuthority_Initiate(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name      string
		input     InitiateInput
		setup     func(repo *MockTransferRepository, ledger *MockAccountLedger)
		wantErr   error
		wantEvent bool
	}{
		{
			name: "Valid transfer should hold funds and be created",
			input: InitiateInput{
				OwnerID:               owner,
				DestinationAccountRef: " ES91-2100-0418 ",
				Amount:                decimal.NewFromInt(40),
				Description:           "rent",
			},
			setup: func(repo *MockTransferRepository, ledger *MockAccountLedger) {
				repo.On("IsUserBlocked", mock.Anything, owner).Return(false, nil)
				ledger.On("Debit", mock.Anything, owner, decimal.NewFromInt(40)).Return(nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(tr *domain.Transfer) bool {
					return tr.Status == domain.TransferStatusPending &&
						tr.DestinationAccountRef == "ES91-2100-0418" &&
						tr.CurrentCodeIndex == 0
				})).Return(nil)
			},
			wantEvent: true,
		},
		{
			name:    "Zero amount should fail",
			input:   InitiateInput{OwnerID: owner, DestinationAccountRef: "dest", Amount: decimal.Zero},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "Negative amount should fail",
			input:   InitiateInput{OwnerID: owner, DestinationAccountRef: "dest", Amount: decimal.NewFromInt(-5)},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "Missing destination should fail",
			input:   InitiateInput{OwnerID: owner, Amount: decimal.NewFromInt(5)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:  "Blocked owner should fail before touching funds",
			input: InitiateInput{OwnerID: owner, DestinationAccountRef: "dest", Amount: decimal.NewFromInt(5)},
			setup: func(repo *MockTransferRepository, ledger *MockAccountLedger) {
				repo.On("IsUserBlocked", mock.Anything, owner).Return(true, nil)
			},
			wantErr: domain.ErrAccountBlocked,
		},
		{
			name:  "Insufficient funds should fail without creating the transfer",
			input: InitiateInput{OwnerID: owner, DestinationAccountRef: "dest", Amount: decimal.NewFromInt(500)},
			setup: func(repo *MockTransferRepository, ledger *MockAccountLedger) {
				repo.On("IsUserBlocked", mock.Anything, owner).Return(false, nil)
				ledger.On("Debit", mock.Anything, owner, decimal.NewFromInt(500)).Return(domain.ErrInsufficientFunds)
			},
			wantErr: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTransferRepository)
			ledger := new(MockAccountLedger)
			sink := new(MockNotificationSink)
			if tt.setup != nil {
				tt.setup(repo, ledger)
			}
			if tt.wantEvent {
				sink.On("Notify", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventCreated && e.OwnerID == owner
				})).Return(nil).Once()
			}

			clock := newFakeClock()
			svc := newMockedAuthority(repo, ledger, sink, clock)
			transfer, err := svc.Initiate(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, transfer)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, clock.Now().Add(24*time.Hour), transfer.ExpiresAt)
				assert.Equal(t, domain.TransferStatusPending, transfer.Status)
			}

			repo.AssertExpectations(t)
			ledger.AssertExpectations(t)
			sink.AssertExpectations(t)
		})
	}
}

func TestTransferAuthority_SinkFailureDoesNotFailOperation(t *testing.T) {
	owner := uuid.New()
	repo := new(MockTransferRepository)
	ledger := new(MockAccountLedger)
	sink := new(MockNotificationSink)

	repo.On("IsUserBlocked", mock.Anything, owner).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	ledger.On("Debit", mock.Anything, owner, mock.Anything).Return(nil)
	sink.On("Notify", mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	svc := newMockedAuthority(repo, ledger, sink, newFakeClock())
	transfer, err := svc.Initiate(context.Background(), InitiateInput{
		OwnerID:               owner,
		DestinationAccountRef: "dest",
		Amount:                decimal.NewFromInt(1),
	})

	require.NoError(t, err)
	assert.NotNil(t, transfer)
	sink.AssertExpectations(t)
}

type panickingSink struct{}

func (panickingSink) Notify(ctx context.Context, event domain.Event) error {
	panic("sink exploded")
}

func TestTransferAuthority_SinkPanicIsRecovered(t *testing.T) {
	owner := uuid.New()
	repo := new(MockTransferRepository)
	ledger := new(MockAccountLedger)

	repo.On("IsUserBlocked", mock.Anything, owner).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	ledger.On("Debit", mock.Anything, owner, mock.Anything).Return(nil)

	svc := newMockedAuthority(repo, ledger, panickingSink{}, newFakeClock())

	assert.NotPanics(t, func() {
		_, err := svc.Initiate(context.Background(), InitiateInput{
			OwnerID:               owner,
			DestinationAccountRef: "dest",
			Amount:                decimal.NewFromInt(1),
		})
		assert.NoError(t, err)
	})
}

func TestTransferAuthority_ValidateCodeUnknownTransfer(t *testing.T) {
	repo := new(MockTransferRepository)
	id := uuid.New()
	repo.On("GetByIDForUpdate", mock.Anything, id).Return(nil, domain.ErrNotFound)

	svc := NewTransferAuthority(Dependencies{
		TransferRepo: repo,
		TxManager:    passthroughTx{},
		Locker:       noLock{},
	})

	_, err := svc.ValidateCode(context.Background(), id, "123456", domain.Origin{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}

type noLock struct{}

func (noLock) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Policy)
		wantErr bool
	}{
		{name: "Default policy should pass", mutate: func(p *Policy) {}},
		{name: "Zero attempts should fail", mutate: func(p *Policy) { p.MaxFailedAttempts = 0 }, wantErr: true},
		{name: "Zero transfer TTL should fail", mutate: func(p *Policy) { p.TransferTTL = 0 }, wantErr: true},
		{name: "Negative code TTL should fail", mutate: func(p *Policy) { p.CodeTTL = -time.Minute }, wantErr: true},
		{name: "Zero audit window should fail", mutate: func(p *Policy) { p.CodeAuditWindow = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
