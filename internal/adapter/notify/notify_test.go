package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/transferauth/internal/domain"
)

func sampleEvent(eventType domain.EventType) domain.Event {
	return domain.Event{
		ID:         uuid.New(),
		Type:       eventType,
		TransferID: uuid.New(),
		OwnerID:    uuid.New(),
		Amount:     decimal.RequireFromString("40.00"),
		Status:     domain.TransferStatusPending,
		OccurredAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

// MockPublisher is a mock implementation of Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// collectingPublisher records delivered events
type collectingPublisher struct {
	mu        sync.Mutex
	events    []domain.Event
	closed    bool
	delivered chan struct{}
}

func newCollectingPublisher() *collectingPublisher {
	return &collectingPublisher{delivered: make(chan struct{}, 100)}
}

func (p *collectingPublisher) Publish(ctx context.Context, event domain.Event) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
	p.delivered <- struct{}{}
	if event.Type == domain.EventFailed {
		panic("publisher bug")
	}
	return nil
}

func (p *collectingPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	d := NewDispatcher(newCollectingPublisher(), 2, zerolog.Nop())

	require.NoError(t, d.Notify(context.Background(), sampleEvent(domain.EventCreated)))
	require.NoError(t, d.Notify(context.Background(), sampleEvent(domain.EventCodeAdded)))
	err := d.Notify(context.Background(), sampleEvent(domain.EventCodeAdded))

	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 2, d.Pending())
}

func TestDispatcher_RunDeliversAndRecovers(t *testing.T) {
	pub := newCollectingPublisher()
	d := NewDispatcher(pub, 10, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.NoError(t, d.Notify(ctx, sampleEvent(domain.EventFailed)))
	require.NoError(t, d.Notify(ctx, sampleEvent(domain.EventExecuted)))

	for i := 0; i < 2; i++ {
		select {
		case <-pub.delivered:
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}

	cancel()
	require.NoError(t, <-done)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Len(t, pub.events, 2, "a panicking publish must not stop the loop")
	assert.True(t, pub.closed)
}

func TestDispatcher_FlushesOnShutdown(t *testing.T) {
	pub := newCollectingPublisher()
	d := NewDispatcher(pub, 10, zerolog.Nop())

	for i := 0; i < 3; i++ {
		require.NoError(t, d.Notify(context.Background(), sampleEvent(domain.EventCodeAdded)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Len(t, pub.events, 3)
	assert.Equal(t, 0, d.Pending())
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := &KafkaPublisher{writer: writer}
	event := sampleEvent(domain.EventCodeValidated)

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, event.TransferID.String(), string(msg.Key))
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "code_validated", string(msg.Headers[0].Value))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "code_validated", decoded["type"])
	assert.Equal(t, "40", decoded["amount"])

	writer.err = errors.New("leader not available")
	assert.ErrorContains(t, p.Publish(context.Background(), event), "leader not available")
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	closed   bool
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.key = key
	c.msg = msg
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := NewRabbitMQPublisher(ch, "transfers")
	event := sampleEvent(domain.EventUserBlocked)

	require.NoError(t, p.Publish(context.Background(), event))

	assert.Equal(t, "transfers", ch.exchange)
	assert.Equal(t, "transfer.user_blocked", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, event.ID.String(), ch.msg.MessageId)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestBreakerPublisher_OpensAfterFailures(t *testing.T) {
	next := new(MockPublisher)
	next.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Times(3)

	p := NewBreakerPublisher("kafka", next, BreakerConfig{
		ConsecutiveFailures: 3,
		Timeout:             time.Minute,
		MaxRequests:         1,
	}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		assert.ErrorContains(t, p.Publish(context.Background(), sampleEvent(domain.EventCreated)), "broker down")
	}
	assert.Equal(t, gobreaker.StateOpen, p.State())

	err := p.Publish(context.Background(), sampleEvent(domain.EventCreated))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	next.AssertNumberOfCalls(t, "Publish", 3)
}

func TestLogPublisher_Publish(t *testing.T) {
	p := NewLogPublisher(zerolog.Nop())
	event := sampleEvent(domain.EventCodeExpired)
	code := &domain.VerificationCode{ID: uuid.New(), Label: "sms"}

	assert.NoError(t, p.Publish(context.Background(), event.WithCode(code).WithReason("deadline")))
	assert.NoError(t, p.Close())
}
