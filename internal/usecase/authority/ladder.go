package authority

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/transferauth/internal/domain"
)

// ladder is a transfer loaded for mutation together with its codes and the
// events produced while it is being changed
type ladder struct {
	transfer *domain.Transfer
	codes    []*domain.VerificationCode
	events   []domain.Event
	now      time.Time
}

func (l *ladder) emit(e domain.Event) {
	l.events = append(l.events, e)
}

func (l *ladder) event(eventType domain.EventType) domain.Event {
	return domain.NewTransferEvent(eventType, l.transfer, l.now)
}

// committedError marks an error that must reach the caller only after the
// state changes made alongside it have been committed
type committedError struct {
	err error
}

func (e *committedError) Error() string { return e.err.Error() }
func (e *committedError) Unwrap() error { return e.err }

func failAfterCommit(err error) error {
	return &committedError{err: err}
}

// transferLockKey is the Locker key guarding one transfer
func transferLockKey(id uuid.UUID) string {
	return "lock:transfer:" + id.String()
}

// withTransferLock serializes every mutation of one transfer
func (s *TransferAuthority) withTransferLock(ctx context.Context, id uuid.UUID, fn func(ctx context.Context) error) error {
	return s.Locker.WithLock(ctx, transferLockKey(id), fn)
}

// inTx loads the transfer and its codes inside one transaction, hands them
// to fn and publishes the collected events once the transaction commits.
// A committedError returned by fn commits the changes and is then returned
// unwrapped.
func (s *TransferAuthority) inTx(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, l *ladder) error) (*ladder, error) {
	var (
		loaded   *ladder
		deferred error
	)

	err := s.TxManager.Run(ctx, func(ctx context.Context) error {
		transfer, err := s.TransferRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		codes, err := s.CodeRepo.ListByTransfer(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load verification codes: %w", err)
		}

		loaded = &ladder{transfer: transfer, codes: codes, now: s.Clock.Now()}
		if err := fn(ctx, loaded); err != nil {
			var ce *committedError
			if errors.As(err, &ce) {
				deferred = ce.err
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, loaded.events)
	if deferred != nil {
		return loaded, deferred
	}
	return loaded, nil
}

// mutate runs fn on the transfer under its lock and inside a transaction
func (s *TransferAuthority) mutate(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, l *ladder) error) (*ladder, error) {
	var result *ladder
	err := s.withTransferLock(ctx, id, func(ctx context.Context) error {
		l, err := s.inTx(ctx, id, fn)
		result = l
		return err
	})
	return result, err
}

// save stamps and persists the transfer of l
func (s *TransferAuthority) save(ctx context.Context, l *ladder) error {
	l.transfer.UpdatedAt = l.now
	if err := s.TransferRepo.Update(ctx, l.transfer); err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}
	return nil
}

// publish hands events to the sink. Sink failures never reach the caller.
func (s *TransferAuthority) publish(ctx context.Context, events []domain.Event) {
	if s.Notifier == nil {
		return
	}
	for _, e := range events {
		s.notify(ctx, e)
	}
}

func (s *TransferAuthority) notify(ctx context.Context, e domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error().
				Interface("panic", r).
				Str("event", string(e.Type)).
				Str("transfer_id", e.TransferID.String()).
				Msg("notification sink panicked")
		}
	}()

	if err := s.Notifier.Notify(ctx, e); err != nil {
		s.Logger.Warn().
			Err(err).
			Str("event", string(e.Type)).
			Str("transfer_id", e.TransferID.String()).
			Msg("notification sink rejected event")
	}
}
