// Package authority implements the transfer authorization lifecycle: funds
// are held at initiation, released to the destination once every
// verification code of the ladder is validated, and refunded on cancel.
package authority

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/simaogato/transferauth/internal/domain"
)

// Dependencies groups the collaborators of a TransferAuthority
type Dependencies struct {
	TransferRepo domain.TransferRepository
	CodeRepo     domain.VerificationCodeRepository
	AttemptRepo  domain.AttemptLogRepository
	AuditRepo    domain.AuditRepository
	Ledger       domain.AccountLedger
	TxManager    domain.TransactionManager
	Locker       domain.Locker
	Notifier     domain.NotificationSink
	Clock        domain.Clock
	Policy       *Policy
	Logger       *zerolog.Logger
}

// TransferAuthority handles transfer authorization operations
type TransferAuthority struct {
	TransferRepo domain.TransferRepository
	CodeRepo     domain.VerificationCodeRepository
	AttemptRepo  domain.AttemptLogRepository
	AuditRepo    domain.AuditRepository
	Ledger       domain.AccountLedger
	TxManager    domain.TransactionManager
	Locker       domain.Locker
	Notifier     domain.NotificationSink
	Clock        domain.Clock
	Policy       Policy
	Logger       zerolog.Logger
}

// NewTransferAuthority creates a new TransferAuthority instance. Clock,
// Policy and Logger fall back to the system clock, DefaultPolicy and a
// no-op logger.
func NewTransferAuthority(deps Dependencies) *TransferAuthority {
	s := &TransferAuthority{
		TransferRepo: deps.TransferRepo,
		CodeRepo:     deps.CodeRepo,
		AttemptRepo:  deps.AttemptRepo,
		AuditRepo:    deps.AuditRepo,
		Ledger:       deps.Ledger,
		TxManager:    deps.TxManager,
		Locker:       deps.Locker,
		Notifier:     deps.Notifier,
		Clock:        deps.Clock,
		Policy:       DefaultPolicy(),
		Logger:       zerolog.Nop(),
	}
	if s.Clock == nil {
		s.Clock = domain.SystemClock{}
	}
	if deps.Policy != nil {
		s.Policy = *deps.Policy
	}
	if deps.Logger != nil {
		s.Logger = deps.Logger.With().Str("component", "authority").Logger()
	}
	return s
}

// InitiateInput represents the input for initiating a transfer
type InitiateInput struct {
	OwnerID               uuid.UUID
	DestinationAccountRef string
	Amount                decimal.Decimal
	Description           string
}

// Initiate creates a pending transfer and holds its amount on the owner's account
// Logic:
//  1. Reject non-positive amounts and owners with a locked-out transfer
//  2. Debit the owner's account
//  3. Store the transfer with an empty ladder
//
// The debit and the insert commit together or not at all.
func (s *TransferAuthority) Initiate(ctx context.Context, input InitiateInput) (*domain.Transfer, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	now := s.Clock.Now()
	transfer := &domain.Transfer{
		ID:                    uuid.New(),
		OwnerID:               input.OwnerID,
		DestinationAccountRef: strings.TrimSpace(input.DestinationAccountRef),
		Amount:                input.Amount,
		Description:           input.Description,
		Status:                domain.TransferStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
		ExpiresAt:             now.Add(s.Policy.TransferTTL),
	}
	if err := transfer.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	err := s.TxManager.Run(ctx, func(ctx context.Context) error {
		blocked, err := s.TransferRepo.IsUserBlocked(ctx, input.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to check owner block: %w", err)
		}
		if blocked {
			return domain.ErrAccountBlocked
		}

		if err := s.Ledger.Debit(ctx, input.OwnerID, input.Amount); err != nil {
			return fmt.Errorf("failed to hold funds: %w", err)
		}

		return s.TransferRepo.Create(ctx, transfer)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("owner_id", transfer.OwnerID.String()).
		Str("amount", transfer.Amount.String()).
		Msg("transfer initiated")

	s.publish(ctx, []domain.Event{domain.NewTransferEvent(domain.EventCreated, transfer, now)})
	return transfer, nil
}

// AddCodeInput represents the input for appending a verification code
type AddCodeInput struct {
	TransferID uuid.UUID
	Label      string
	Value      string
}

// AddCode appends a code to the end of the ladder. An executing transfer
// goes back to pending since a new code is now outstanding.
func (s *TransferAuthority) AddCode(ctx context.Context, input AddCodeInput) (*domain.VerificationCode, error) {
	value := strings.TrimSpace(input.Value)
	if value == "" {
		return nil, fmt.Errorf("%w: verification code value cannot be empty", domain.ErrInvalidInput)
	}

	var code *domain.VerificationCode
	_, err := s.mutate(ctx, input.TransferID, func(ctx context.Context, l *ladder) error {
		t := l.transfer
		if !t.Status.IsLive() {
			return domain.NewTransitionError(t.Status, "add code to")
		}

		order, err := s.CodeRepo.GetNextCodeOrder(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("failed to compute code order: %w", err)
		}

		deadline := l.now.Add(s.Policy.CodeTTL)
		code = &domain.VerificationCode{
			ID:            uuid.New(),
			TransferID:    t.ID,
			Order:         order,
			Label:         strings.TrimSpace(input.Label),
			ExpectedValue: value,
			Status:        domain.CodeStatusPending,
			CreatedAt:     l.now,
			ExpiresAt:     &deadline,
		}
		if err := code.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if err := s.CodeRepo.Create(ctx, code); err != nil {
			return fmt.Errorf("failed to create verification code: %w", err)
		}

		if t.Status == domain.TransferStatusExecuting {
			if err := t.TransitionTo(domain.TransferStatusPending, "add code to"); err != nil {
				return err
			}
		}
		if err := s.save(ctx, l); err != nil {
			return err
		}

		l.emit(l.event(domain.EventCodeAdded).WithCode(code))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return code, nil
}

// ValidationResult describes the outcome of one code submission
type ValidationResult struct {
	Transfer          *domain.Transfer
	Validated         bool
	RemainingAttempts int
	Blocked           bool
	AllCodesValidated bool
}

// ValidateCode checks submitted against the current code of the ladder
// Logic:
//  1. Refuse locked-out or finished transfers
//  2. A transfer past its deadline is expired and ErrTransferExpired returned
//  3. Compare against the current code and record the attempt
//  4. On a match the code is validated and the cursor advances
//  5. On a mismatch the counters grow; reaching the limit locks the owner out
func (s *TransferAuthority) ValidateCode(ctx context.Context, transferID uuid.UUID, submitted string, origin domain.Origin) (*ValidationResult, error) {
	result := &ValidationResult{}

	l, err := s.mutate(ctx, transferID, func(ctx context.Context, l *ladder) error {
		t := l.transfer

		if t.IsAccountBlocked {
			return domain.ErrAccountBlocked
		}
		if !t.Status.IsLive() {
			return domain.NewTransitionError(t.Status, "validate code on")
		}

		if t.IsPastDeadline(l.now) {
			if err := t.TransitionTo(domain.TransferStatusExpired, "expire"); err != nil {
				return err
			}
			if err := s.save(ctx, l); err != nil {
				return err
			}
			l.emit(l.event(domain.EventTransferExpired))
			return failAfterCommit(domain.ErrTransferExpired)
		}

		code := domain.CurrentCode(l.codes, t.CurrentCodeIndex)
		if code == nil {
			return domain.ErrNoCurrentCode
		}

		matched := code.Matches(submitted)
		if err := s.AttemptRepo.Create(ctx, domain.NewAttemptLog(code, submitted, matched, origin, l.now)); err != nil {
			return fmt.Errorf("failed to record attempt: %w", err)
		}

		if matched {
			return s.acceptCode(ctx, l, code, result)
		}
		return s.rejectCode(ctx, l, code, result)
	})
	if err != nil {
		return nil, err
	}

	result.Transfer = l.transfer
	return result, nil
}

func (s *TransferAuthority) acceptCode(ctx context.Context, l *ladder, code *domain.VerificationCode, result *ValidationResult) error {
	t := l.transfer

	validatedAt := l.now
	auditUntil := l.now.Add(s.Policy.CodeAuditWindow)
	code.Status = domain.CodeStatusValidated
	code.ValidatedAt = &validatedAt
	code.ExpiresAt = &auditUntil
	if err := s.CodeRepo.Update(ctx, code); err != nil {
		return fmt.Errorf("failed to update verification code: %w", err)
	}

	t.CurrentCodeIndex++
	if err := t.TransitionTo(domain.TransferStatusExecuting, "validate code on"); err != nil {
		return err
	}
	if err := s.save(ctx, l); err != nil {
		return err
	}

	result.Validated = true
	result.RemainingAttempts = s.Policy.MaxFailedAttempts - code.FailedAttempts
	l.emit(l.event(domain.EventCodeValidated).WithCode(code))

	if domain.LadderComplete(l.codes, t.CurrentCodeIndex) {
		result.AllCodesValidated = true
		l.emit(l.event(domain.EventAllCodesValidated))
	}

	s.Logger.Info().
		Str("transfer_id", t.ID.String()).
		Int("order", code.Order).
		Msg("verification code validated")
	return nil
}

func (s *TransferAuthority) rejectCode(ctx context.Context, l *ladder, code *domain.VerificationCode, result *ValidationResult) error {
	t := l.transfer

	code.FailedAttempts++
	t.FailedAttemptsTotal++
	if err := s.CodeRepo.Update(ctx, code); err != nil {
		return fmt.Errorf("failed to update verification code: %w", err)
	}

	remaining := s.Policy.MaxFailedAttempts - code.FailedAttempts
	if remaining <= 0 {
		remaining = 0
		t.IsAccountBlocked = true
		if err := t.TransitionTo(domain.TransferStatusBlocked, "block"); err != nil {
			return err
		}
		result.Blocked = true
	}
	if err := s.save(ctx, l); err != nil {
		return err
	}
	result.RemainingAttempts = remaining

	if result.Blocked {
		reason := fmt.Sprintf("%d failed attempts on code %d", code.FailedAttempts, code.Order)
		l.emit(l.event(domain.EventUserBlocked).WithCode(code).WithReason(reason))
		l.emit(l.event(domain.EventSuspiciousActivity).WithCode(code).WithReason(reason))

		s.Logger.Warn().
			Str("transfer_id", t.ID.String()).
			Str("owner_id", t.OwnerID.String()).
			Int("failed_attempts_total", t.FailedAttemptsTotal).
			Msg("owner locked out after failed attempts")
	}
	return nil
}

// ExecuteTransfer completes a transfer whose ladder is complete. Expired steps
// count as passed as long as a later code was validated.
// Any internal failure while completing leaves the transfer failed.
func (s *TransferAuthority) ExecuteTransfer(ctx context.Context, transferID uuid.UUID) (*domain.Transfer, error) {
	var result *domain.Transfer

	err := s.withTransferLock(ctx, transferID, func(ctx context.Context) error {
		var internal error
		l, err := s.inTx(ctx, transferID, func(ctx context.Context, l *ladder) error {
			t := l.transfer
			if t.Status != domain.TransferStatusExecuting || !domain.LadderComplete(l.codes, t.CurrentCodeIndex) {
				return domain.NewTransitionError(t.Status, "execute")
			}

			executedAt := l.now
			t.ExecutedAt = &executedAt
			if err := t.TransitionTo(domain.TransferStatusCompleted, "execute"); err != nil {
				return err
			}
			if err := s.save(ctx, l); err != nil {
				internal = err
				return err
			}
			l.emit(l.event(domain.EventExecuted))
			return nil
		})
		if err == nil {
			result = l.transfer
			return nil
		}
		if internal == nil || errors.Is(internal, domain.ErrConcurrencyConflict) {
			return err
		}

		s.markFailed(ctx, transferID, internal)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info().
		Str("transfer_id", result.ID.String()).
		Str("destination", result.DestinationAccountRef).
		Msg("transfer executed")
	return result, nil
}

// markFailed moves an executing transfer to failed after its completion
// could not be persisted. The caller already holds the transfer lock.
func (s *TransferAuthority) markFailed(ctx context.Context, transferID uuid.UUID, cause error) {
	ctx = context.WithoutCancel(ctx)
	_, err := s.inTx(ctx, transferID, func(ctx context.Context, l *ladder) error {
		if err := l.transfer.TransitionTo(domain.TransferStatusFailed, "fail"); err != nil {
			return err
		}
		if err := s.save(ctx, l); err != nil {
			return err
		}
		l.emit(l.event(domain.EventFailed).WithReason(cause.Error()))
		return nil
	})
	if err != nil {
		s.Logger.Error().
			Err(err).
			AnErr("cause", cause).
			Str("transfer_id", transferID.String()).
			Msg("failed to mark transfer as failed")
		return
	}
	s.Logger.Error().
		Err(cause).
		Str("transfer_id", transferID.String()).
		Msg("transfer execution failed")
}

// CancelTransfer refunds the held amount and cancels a pending or
// executing transfer
func (s *TransferAuthority) CancelTransfer(ctx context.Context, transferID uuid.UUID) (*domain.Transfer, error) {
	l, err := s.mutate(ctx, transferID, func(ctx context.Context, l *ladder) error {
		t := l.transfer
		if !t.Status.IsLive() {
			return domain.NewTransitionError(t.Status, "cancel")
		}

		if err := s.Ledger.Credit(ctx, t.OwnerID, t.Amount); err != nil {
			return fmt.Errorf("failed to refund funds: %w", err)
		}
		if err := t.TransitionTo(domain.TransferStatusCancelled, "cancel"); err != nil {
			return err
		}
		if err := s.save(ctx, l); err != nil {
			return err
		}
		l.emit(l.event(domain.EventCancelled))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info().
		Str("transfer_id", transferID.String()).
		Msg("transfer cancelled")
	return l.transfer, nil
}
