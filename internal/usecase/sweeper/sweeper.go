// Package sweeper periodically expires overdue verification codes and
// transfers.
package sweeper

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Expirer is implemented by the transfer authority
type Expirer interface {
	ExpireCodes(ctx context.Context) (int, error)
	ExpireTransfers(ctx context.Context) (int, error)
}

// Sweeper runs the expiry passes on a fixed interval
type Sweeper struct {
	expirer  Expirer
	interval time.Duration
	logger   zerolog.Logger
}

// NewSweeper creates a new Sweeper instance
func NewSweeper(expirer Expirer, interval time.Duration, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		expirer:  expirer,
		interval: interval,
		logger:   logger.With().Str("component", "sweeper").Logger(),
	}
}

// Run sweeps once immediately and then on every tick until ctx is done
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.SweepOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("sweeper stopped")
			return nil
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce expires codes first so the cursor is up to date, then transfers
func (s *Sweeper) SweepOnce(ctx context.Context) {
	codes, err := s.expirer.ExpireCodes(ctx)
	if err != nil {
		s.logger.Error().Err(err).Int("expired", codes).Msg("code sweep finished with errors")
	}

	transfers, err := s.expirer.ExpireTransfers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Int("expired", transfers).Msg("transfer sweep finished with errors")
	}

	if codes > 0 || transfers > 0 {
		s.logger.Info().Int("codes", codes).Int("transfers", transfers).Msg("sweep completed")
	}
}
