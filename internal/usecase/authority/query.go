package authority

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/transferauth/internal/domain"
)

// TransferView is a transfer together with its ladder
type TransferView struct {
	Transfer *domain.Transfer
	Codes    []*domain.VerificationCode
}

// GetTransfer returns a transfer and its codes
func (s *TransferAuthority) GetTransfer(ctx context.Context, transferID uuid.UUID) (*TransferView, error) {
	transfer, err := s.TransferRepo.GetByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	codes, err := s.CodeRepo.ListByTransfer(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification codes: %w", err)
	}
	return &TransferView{Transfer: transfer, Codes: codes}, nil
}

// ListAttempts returns the submission history of a transfer, oldest first
func (s *TransferAuthority) ListAttempts(ctx context.Context, transferID uuid.UUID) ([]*domain.AttemptLog, error) {
	if _, err := s.TransferRepo.GetByID(ctx, transferID); err != nil {
		return nil, err
	}
	return s.AttemptRepo.ListByTransfer(ctx, transferID)
}

// IsUserBlocked reports whether any transfer of the owner is locked out
func (s *TransferAuthority) IsUserBlocked(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	return s.TransferRepo.IsUserBlocked(ctx, ownerID)
}

// Balance returns the owner's available balance
func (s *TransferAuthority) Balance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	return s.Ledger.Balance(ctx, ownerID)
}
