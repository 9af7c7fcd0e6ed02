package authority

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/simaogato/transferauth/internal/domain"
)

// AdminAction identifies who performs an override and why
type AdminAction struct {
	Actor  string
	Reason string
}

// Validate checks that the override is attributable
func (a AdminAction) Validate() error {
	if strings.TrimSpace(a.Actor) == "" {
		return fmt.Errorf("%w: admin actor cannot be empty", domain.ErrInvalidInput)
	}
	return nil
}

func (s *TransferAuthority) recordAudit(ctx context.Context, l *ladder, action domain.AuditAction, admin AdminAction) error {
	transferID := l.transfer.ID
	entry := &domain.AuditEntry{
		ID:         uuid.New(),
		TransferID: &transferID,
		OwnerID:    l.transfer.OwnerID,
		Action:     action,
		Actor:      strings.TrimSpace(admin.Actor),
		Reason:     admin.Reason,
		CreatedAt:  l.now,
	}
	if err := s.AuditRepo.Record(ctx, entry); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// ForceValidateTransfer validates every outstanding code and completes the
// transfer without a code comparison
func (s *TransferAuthority) ForceValidateTransfer(ctx context.Context, transferID uuid.UUID, admin AdminAction) (*domain.Transfer, error) {
	if err := admin.Validate(); err != nil {
		return nil, err
	}

	l, err := s.mutate(ctx, transferID, func(ctx context.Context, l *ladder) error {
		t := l.transfer
		if !t.Status.IsLive() {
			return domain.NewTransitionError(t.Status, "force validate")
		}

		auditUntil := l.now.Add(s.Policy.CodeAuditWindow)
		for _, code := range l.codes {
			if code.Status != domain.CodeStatusPending {
				continue
			}
			validatedAt := l.now
			code.Status = domain.CodeStatusValidated
			code.ValidatedAt = &validatedAt
			code.ExpiresAt = &auditUntil
			if err := s.CodeRepo.Update(ctx, code); err != nil {
				return fmt.Errorf("failed to update verification code: %w", err)
			}
		}

		executedAt := l.now
		t.CurrentCodeIndex = len(l.codes)
		t.ExecutedAt = &executedAt
		if err := t.TransitionTo(domain.TransferStatusCompleted, "force validate"); err != nil {
			return err
		}
		if err := s.save(ctx, l); err != nil {
			return err
		}
		if err := s.recordAudit(ctx, l, domain.AuditActionForceValidate, admin); err != nil {
			return err
		}

		l.emit(l.event(domain.EventForceValidated).WithReason(admin.Reason))
		l.emit(l.event(domain.EventExecuted))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Warn().
		Str("transfer_id", transferID.String()).
		Str("actor", admin.Actor).
		Msg("transfer force validated")
	return l.transfer, nil
}

// BlockTransfer stops a live transfer until an administrator unblocks it
func (s *TransferAuthority) BlockTransfer(ctx context.Context, transferID uuid.UUID, admin AdminAction) (*domain.Transfer, error) {
	if err := admin.Validate(); err != nil {
		return nil, err
	}

	l, err := s.mutate(ctx, transferID, func(ctx context.Context, l *ladder) error {
		t := l.transfer
		if !t.Status.IsLive() {
			return domain.NewTransitionError(t.Status, "block")
		}
		if err := t.TransitionTo(domain.TransferStatusBlocked, "block"); err != nil {
			return err
		}
		if err := s.save(ctx, l); err != nil {
			return err
		}
		if err := s.recordAudit(ctx, l, domain.AuditActionBlock, admin); err != nil {
			return err
		}
		l.emit(l.event(domain.EventTransferBlocked).WithReason(admin.Reason))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Warn().
		Str("transfer_id", transferID.String()).
		Str("actor", admin.Actor).
		Msg("transfer blocked by admin")
	return l.transfer, nil
}

// UnblockTransfer returns a blocked transfer to the ladder. The failed
// attempts of the current code are reset so the owner gets a fresh set.
func (s *TransferAuthority) UnblockTransfer(ctx context.Context, transferID uuid.UUID, admin AdminAction) (*domain.Transfer, error) {
	if err := admin.Validate(); err != nil {
		return nil, err
	}

	l, err := s.mutate(ctx, transferID, func(ctx context.Context, l *ladder) error {
		if l.transfer.Status != domain.TransferStatusBlocked {
			return domain.NewTransitionError(l.transfer.Status, "unblock")
		}
		if err := s.restore(ctx, l); err != nil {
			return err
		}
		if err := s.recordAudit(ctx, l, domain.AuditActionUnblock, admin); err != nil {
			return err
		}
		l.emit(l.event(domain.EventTransferUnblocked).WithReason(admin.Reason))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info().
		Str("transfer_id", transferID.String()).
		Str("actor", admin.Actor).
		Msg("transfer unblocked")
	return l.transfer, nil
}

// UnblockUser lifts the lock-out of every transfer of the owner and
// returns how many transfers were unblocked
func (s *TransferAuthority) UnblockUser(ctx context.Context, ownerID uuid.UUID, admin AdminAction) (int, error) {
	if err := admin.Validate(); err != nil {
		return 0, err
	}

	transfers, err := s.TransferRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to list transfers: %w", err)
	}

	unblocked := 0
	for _, candidate := range transfers {
		if !candidate.IsAccountBlocked {
			continue
		}
		changed := false
		_, err := s.mutate(ctx, candidate.ID, func(ctx context.Context, l *ladder) error {
			if !l.transfer.IsAccountBlocked {
				return nil
			}
			if l.transfer.Status == domain.TransferStatusBlocked {
				if err := s.restore(ctx, l); err != nil {
					return err
				}
			} else {
				l.transfer.IsAccountBlocked = false
				if err := s.save(ctx, l); err != nil {
					return err
				}
			}
			if err := s.recordAudit(ctx, l, domain.AuditActionUnblockUser, admin); err != nil {
				return err
			}
			l.emit(l.event(domain.EventUserUnblocked).WithReason(admin.Reason))
			changed = true
			return nil
		})
		if err != nil {
			return unblocked, err
		}
		if changed {
			unblocked++
		}
	}

	s.Logger.Info().
		Str("owner_id", ownerID.String()).
		Str("actor", admin.Actor).
		Int("transfers", unblocked).
		Msg("owner unblocked")
	return unblocked, nil
}

// restore clears the lock-out of a blocked transfer and puts it back where
// its ladder stands: executing when the ladder is complete, else pending
func (s *TransferAuthority) restore(ctx context.Context, l *ladder) error {
	t := l.transfer

	if code := domain.CurrentCode(l.codes, t.CurrentCodeIndex); code != nil && code.FailedAttempts > 0 {
		code.FailedAttempts = 0
		if err := s.CodeRepo.Update(ctx, code); err != nil {
			return fmt.Errorf("failed to update verification code: %w", err)
		}
	}

	target := domain.TransferStatusPending
	if domain.LadderComplete(l.codes, t.CurrentCodeIndex) {
		target = domain.TransferStatusExecuting
	}

	t.IsAccountBlocked = false
	if err := t.TransitionTo(target, "unblock"); err != nil {
		return err
	}
	return s.save(ctx, l)
}
