// Package lock provides domain.Locker implementations: an in-process
// keyed mutex and a Redis-backed distributed lock.
package lock

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/simaogato/transferauth/internal/domain"
)

// ErrEmptyKey is returned when WithLock is called without a key
var ErrEmptyKey = errors.New("lock key cannot be empty")

type keyLock struct {
	ch      chan struct{}
	waiters int
}

// MemoryLocker serializes callers sharing a key within one process.
// Waiting honours context cancellation.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewMemoryLocker creates an empty MemoryLocker
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*keyLock)}
}

// WithLock runs fn while holding the lock for key
func (l *MemoryLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.waiters++
	l.mu.Unlock()

	defer l.release(key, kl)

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-kl.ch }()

	return fn(ctx)
}

// release drops the key entry once nobody holds or waits for it
func (l *MemoryLocker) release(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.waiters--
	if kl.waiters == 0 {
		delete(l.locks, key)
	}
}

var _ domain.Locker = (*MemoryLocker)(nil)
