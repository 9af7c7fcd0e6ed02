// Package notify delivers transfer lifecycle events to external systems.
// The Dispatcher decouples the authority from slow or failing brokers;
// publishers do the actual delivery.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/simaogato/transferauth/internal/domain"
)

// ErrQueueFull is returned by Notify when the event had to be dropped
var ErrQueueFull = errors.New("notification queue is full")

// Publisher delivers one event to a downstream system
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// Dispatcher is a domain.NotificationSink with a bounded in-memory queue.
// Notify never blocks; a background Run loop hands events to the publisher.
type Dispatcher struct {
	queue          chan domain.Event
	publisher      Publisher
	logger         zerolog.Logger
	publishTimeout time.Duration
}

// NewDispatcher creates a Dispatcher holding at most size pending events
func NewDispatcher(publisher Publisher, size int, logger zerolog.Logger) *Dispatcher {
	if size < 1 {
		size = 1
	}
	return &Dispatcher{
		queue:          make(chan domain.Event, size),
		publisher:      publisher,
		logger:         logger.With().Str("component", "dispatcher").Logger(),
		publishTimeout: 5 * time.Second,
	}
}

// Notify enqueues event, dropping it when the queue is full
func (d *Dispatcher) Notify(ctx context.Context, event domain.Event) error {
	select {
	case d.queue <- event:
		return nil
	default:
		d.logger.Warn().
			Str("event", string(event.Type)).
			Str("transfer_id", event.TransferID.String()).
			Msg("notification queue full, event dropped")
		return ErrQueueFull
	}
}

// Pending returns the number of queued events
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// Run publishes queued events until ctx is cancelled, then flushes what is
// left in the queue and closes the publisher
func (d *Dispatcher) Run(ctx context.Context) error {
	defer func() {
		if err := d.publisher.Close(); err != nil {
			d.logger.Error().Err(err).Msg("failed to close publisher")
		}
	}()

	for {
		select {
		case event := <-d.queue:
			d.deliver(ctx, event)
		case <-ctx.Done():
			d.flush()
			return nil
		}
	}
}

func (d *Dispatcher) flush() {
	ctx := context.Background()
	for {
		select {
		case event := <-d.queue:
			d.deliver(ctx, event)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Interface("panic", r).
				Str("event", string(event.Type)).
				Msg("publisher panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Error().
			Err(err).
			Str("event", string(event.Type)).
			Str("transfer_id", event.TransferID.String()).
			Msg("failed to publish event")
		return
	}

	d.logger.Debug().
		Str("event", string(event.Type)).
		Str("transfer_id", event.TransferID.String()).
		Msg("event published")
}

var _ domain.NotificationSink = (*Dispatcher)(nil)
