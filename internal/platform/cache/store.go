// Package cache holds a small in-process TTL cache with load deduplication.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store caches values of one type by key. Entries expire ttl after they are
// written; a ttl of zero keeps them until invalidated. Expired entries are
// dropped when next read.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	group   singleflight.Group
	now     func() time.Time
}

func New[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if s.ttl > 0 && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (s *Store[V]) Set(key string, value V) {
	e := entry[V]{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

func (s *Store[V]) Invalidate(keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Load returns the cached value for key or calls load to fill it. Callers
// racing on a missing key share a single load. Errors are returned to every
// waiting caller and are not cached.
func (s *Store[V]) Load(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if v, ok := s.Get(key); ok {
			return v, nil
		}
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(key, loaded)
		return loaded, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}
