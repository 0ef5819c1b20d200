// Package idempotency remembers request keys so a retried checkout is not
// turned into a second order.
package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Checker reports whether key was already claimed, claiming it if not.
type Checker interface {
	Seen(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func Key(callerID, requestKey string) string {
	return "idem:checkout:" + callerID + ":" + requestKey
}

func (s *Store) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Release frees a key whose request failed, so the client may retry it.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// Memory is an in-process Checker for tests and single-node runs without Redis.
type Memory struct {
	mu        sync.Mutex
	keys      map[string]time.Time
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{keys: map[string]time.Time{}, ttl: ttl, now: time.Now}
}

func (m *Memory) Seen(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	if exp, ok := m.keys[key]; ok && now.Before(exp) {
		return true, nil
	}
	m.keys[key] = now.Add(m.ttl)
	return false, nil
}

// sweep drops expired keys, at most once per ttl. Caller holds mu.
func (m *Memory) sweep(now time.Time) {
	if now.Before(m.nextSweep) {
		return
	}
	for k, exp := range m.keys {
		if !now.Before(exp) {
			delete(m.keys, k)
		}
	}
	m.nextSweep = now.Add(m.ttl)
}

func (m *Memory) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}
