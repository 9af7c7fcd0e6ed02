package lock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/simaogato/transferauth/internal/domain"
)

// Options configures lock acquisition
type Options struct {
	// Expiry bounds how long a crashed holder keeps the lock
	Expiry time.Duration
	// Tries is the number of acquisition attempts before giving up
	Tries int
	// RetryDelay is the pause between attempts
	RetryDelay time.Duration
}

// DefaultOptions returns the acquisition settings used for transfer locks
func DefaultOptions() Options {
	return Options{
		Expiry:     10 * time.Second,
		Tries:      32,
		RetryDelay: 50 * time.Millisecond,
	}
}

// Validate checks the options
func (o Options) Validate() error {
	if o.Expiry <= 0 {
		return errors.New("lock expiry must be greater than 0")
	}
	if o.Tries < 1 {
		return errors.New("lock tries must be at least 1")
	}
	if o.RetryDelay < 0 {
		return errors.New("lock retry delay cannot be negative")
	}
	return nil
}

// RedisLocker is a distributed domain.Locker backed by Redis
type RedisLocker struct {
	rs     *redsync.Redsync
	opts   Options
	logger zerolog.Logger
}

// NewRedisLocker creates a RedisLocker over client. The connection is
// checked with a PING.
func NewRedisLocker(ctx context.Context, client redis.UniversalClient, opts Options, logger zerolog.Logger) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		opts:   opts,
		logger: logger.With().Str("component", "redis_locker").Logger(),
	}, nil
}

// WithLock runs fn while holding the distributed lock for key. The lock
// is released even when fn panics. Errors from fn are returned unchanged.
func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	mutex := l.rs.NewMutex(
		key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	defer func() {
		// Release even if the caller's context is already done.
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); !ok || err != nil {
			l.logger.Error().Err(err).Str("lock_key", key).Bool("unlock_ok", ok).Msg("failed to release lock")
		}
	}()

	return fn(ctx)
}

var _ domain.Locker = (*RedisLocker)(nil)
