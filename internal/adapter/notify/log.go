package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/simaogato/transferauth/internal/domain"
)

// LogPublisher writes events to the application log. It backs
// NOTIFY_BACKEND=log for local runs.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a LogPublisher
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With().Str("component", "events").Logger()}
}

// Publish logs event at info level
func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	e := p.logger.Info().
		Str("event_id", event.ID.String()).
		Str("event", string(event.Type)).
		Str("transfer_id", event.TransferID.String()).
		Str("owner_id", event.OwnerID.String()).
		Str("status", string(event.Status)).
		Str("amount", event.Amount.String())
	if event.CodeID != nil {
		e = e.Str("code_id", event.CodeID.String()).Str("code_label", event.CodeLabel)
	}
	if event.Reason != "" {
		e = e.Str("reason", event.Reason)
	}
	e.Msg("transfer event")
	return nil
}

// Close is a no-op
func (p *LogPublisher) Close() error {
	return nil
}
