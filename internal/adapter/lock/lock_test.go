package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/transferauth/internal/domain"
)

func setupRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	locker, err := NewRedisLocker(context.Background(), client, DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)
	return locker, mr
}

// assertMutualExclusion runs many goroutines on one key and checks that no
// two of them were ever inside the critical section together
func assertMutualExclusion(t *testing.T, locker domain.Locker) {
	t.Helper()

	var (
		inside  int32
		maxSeen int32
		total   int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := locker.WithLock(context.Background(), "lock:transfer:shared", func(ctx context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					seen := atomic.LoadInt32(&maxSeen)
					if n <= seen || atomic.CompareAndSwapInt32(&maxSeen, seen, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				atomic.AddInt32(&total, 1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen)
	assert.Equal(t, int32(10), total)
}

func TestMemoryLocker_MutualExclusion(t *testing.T) {
	assertMutualExclusion(t, NewMemoryLocker())
}

func TestMemoryLocker_PropagatesErrorAndCleansUp(t *testing.T) {
	locker := NewMemoryLocker()

	err := locker.WithLock(context.Background(), "lock:a", func(ctx context.Context) error {
		return domain.ErrNotFound
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, locker.locks)
}

func TestMemoryLocker_HonoursContext(t *testing.T) {
	locker := NewMemoryLocker()
	held := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = locker.WithLock(context.Background(), "lock:busy", func(ctx context.Context) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := locker.WithLock(ctx, "lock:busy", func(ctx context.Context) error {
		called = true
		return nil
	})
	close(release)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
}

func TestMemoryLocker_RejectsEmptyKey(t *testing.T) {
	err := NewMemoryLocker().WithLock(context.Background(), " ", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestRedisLocker_WithLock(t *testing.T) {
	locker, mr := setupRedisLocker(t)

	executed := false
	err := locker.WithLock(context.Background(), "lock:transfer:1", func(ctx context.Context) error {
		executed = true
		assert.True(t, mr.Exists("lock:transfer:1"), "key must exist while held")
		return nil
	})

	require.NoError(t, err)
	assert.True(t, executed)
	assert.False(t, mr.Exists("lock:transfer:1"), "key must be removed after release")
}

func TestRedisLocker_PropagatesError(t *testing.T) {
	locker, mr := setupRedisLocker(t)

	err := locker.WithLock(context.Background(), "lock:transfer:2", func(ctx context.Context) error {
		return domain.ErrAccountBlocked
	})

	assert.ErrorIs(t, err, domain.ErrAccountBlocked)
	assert.False(t, mr.Exists("lock:transfer:2"))
}

func TestRedisLocker_MutualExclusion(t *testing.T) {
	locker, _ := setupRedisLocker(t)
	assertMutualExclusion(t, locker)
}

func TestRedisLocker_FailsWhenHeldElsewhere(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	locker, err := NewRedisLocker(context.Background(), client, Options{
		Expiry:     time.Second,
		Tries:      2,
		RetryDelay: time.Millisecond,
	}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, mr.Set("lock:transfer:3", "someone-else"))

	called := false
	err = locker.WithLock(context.Background(), "lock:transfer:3", func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "Default options should pass", opts: DefaultOptions()},
		{name: "Zero expiry should fail", opts: Options{Tries: 1}, wantErr: true},
		{name: "Zero tries should fail", opts: Options{Expiry: time.Second}, wantErr: true},
		{name: "Negative delay should fail", opts: Options{Expiry: time.Second, Tries: 1, RetryDelay: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
