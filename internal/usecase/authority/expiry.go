package authority

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/transferauth/internal/domain"
)

// ExpireCodes expires overdue pending codes and advances the cursor of
// their transfers. Only the current code of a ladder can expire, so a
// transfer whose next codes are also overdue moves one step per code in
// order. Per-transfer failures are logged and joined into the returned
// error without stopping the sweep.
func (s *TransferAuthority) ExpireCodes(ctx context.Context) (int, error) {
	now := s.Clock.Now()

	overdue, err := s.CodeRepo.FindExpiredCodes(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired codes: %w", err)
	}

	transferIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, c := range overdue {
		if !seen[c.TransferID] {
			seen[c.TransferID] = true
			transferIDs = append(transferIDs, c.TransferID)
		}
	}

	expired := 0
	var errs []error
	for _, id := range transferIDs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		n, err := s.expireTransferCodes(ctx, id, now)
		if err != nil {
			s.Logger.Error().Err(err).Str("transfer_id", id.String()).Msg("failed to expire codes")
			errs = append(errs, err)
			continue
		}
		expired += n
	}

	if expired > 0 {
		s.Logger.Info().Int("codes", expired).Msg("expired verification codes")
	}
	return expired, errors.Join(errs...)
}

// expireTransferCodes walks the ladder from the cursor, expiring each
// overdue current code. State is re-read under the lock so a code
// validated since the scan is left alone.
func (s *TransferAuthority) expireTransferCodes(ctx context.Context, transferID uuid.UUID, now time.Time) (int, error) {
	count := 0
	_, err := s.mutate(ctx, transferID, func(ctx context.Context, l *ladder) error {
		t := l.transfer
		if !t.Status.IsLive() || t.IsAccountBlocked {
			return nil
		}

		for {
			code := domain.CurrentCode(l.codes, t.CurrentCodeIndex)
			if code == nil || !code.IsOverdue(now) {
				break
			}
			code.Status = domain.CodeStatusExpired
			if err := s.CodeRepo.Update(ctx, code); err != nil {
				return fmt.Errorf("failed to update verification code: %w", err)
			}
			t.CurrentCodeIndex++
			count++
			l.emit(l.event(domain.EventCodeExpired).WithCode(code))
		}

		if count == 0 {
			return nil
		}
		return s.save(ctx, l)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ExpireTransfers moves live transfers past their deadline to expired.
// Held funds stay held; only CancelTransfer refunds.
func (s *TransferAuthority) ExpireTransfers(ctx context.Context) (int, error) {
	now := s.Clock.Now()

	ids, err := s.TransferRepo.FindExpirable(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find expirable transfers: %w", err)
	}

	expired := 0
	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		done := false
		_, err := s.mutate(ctx, id, func(ctx context.Context, l *ladder) error {
			t := l.transfer
			if !t.Status.IsLive() || !t.IsPastDeadline(now) {
				return nil
			}
			if err := t.TransitionTo(domain.TransferStatusExpired, "expire"); err != nil {
				return err
			}
			if err := s.save(ctx, l); err != nil {
				return err
			}
			l.emit(l.event(domain.EventTransferExpired))
			done = true
			return nil
		})
		if err != nil {
			s.Logger.Error().Err(err).Str("transfer_id", id.String()).Msg("failed to expire transfer")
			errs = append(errs, err)
			continue
		}
		if done {
			expired++
		}
	}

	if expired > 0 {
		s.Logger.Info().Int("transfers", expired).Msg("expired transfers")
	}
	return expired, errors.Join(errs...)
}
