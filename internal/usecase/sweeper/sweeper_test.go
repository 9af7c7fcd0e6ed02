package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockExpirer is a mock implementation of Expirer
type MockExpirer struct {
	mock.Mock
}

func (m *MockExpirer) ExpireCodes(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockExpirer) ExpireTransfers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestSweeper_SweepOnce_RunsBothPasses(t *testing.T) {
	ctx := context.Background()
	expirer := new(MockExpirer)
	expirer.On("ExpireCodes", ctx).Return(2, nil).Once()
	expirer.On("ExpireTransfers", ctx).Return(1, nil).Once()

	NewSweeper(expirer, time.Minute, zerolog.Nop()).SweepOnce(ctx)

	expirer.AssertExpectations(t)
}

func TestSweeper_SweepOnce_ContinuesAfterCodeFailure(t *testing.T) {
	ctx := context.Background()
	expirer := new(MockExpirer)
	expirer.On("ExpireCodes", ctx).Return(0, errors.New("db down")).Once()
	expirer.On("ExpireTransfers", ctx).Return(0, nil).Once()

	NewSweeper(expirer, time.Minute, zerolog.Nop()).SweepOnce(ctx)

	expirer.AssertExpectations(t)
}

func TestSweeper_Run_TicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	expirer := new(MockExpirer)

	calls := make(chan struct{}, 10)
	expirer.On("ExpireCodes", mock.Anything).Return(0, nil).Run(func(args mock.Arguments) {
		select {
		case calls <- struct{}{}:
		default:
		}
	})
	expirer.On("ExpireTransfers", mock.Anything).Return(0, nil)

	done := make(chan error, 1)
	go func() { done <- NewSweeper(expirer, 5*time.Millisecond, zerolog.Nop()).Run(ctx) }()

	for i := 0; i < 3; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("sweeper did not tick")
		}
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
