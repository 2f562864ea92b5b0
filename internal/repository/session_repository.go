package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type sessionEntry[T any] struct {
	value    T
	lastSeen time.Time
}

// SessionStore keeps per-visitor page state (a feed, a form) in memory
// until it has been idle for longer than TTL. Nothing survives a restart.
type SessionStore[T any] struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry[T]
	ttl     time.Duration
	now     func() time.Time
}

func NewSessionStore[T any](ttl time.Duration) *SessionStore[T] {
	return &SessionStore[T]{
		entries: make(map[string]*sessionEntry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock swaps the time source, used by tests.
func (s *SessionStore[T]) WithClock(now func() time.Time) *SessionStore[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Create stores value under a fresh uuid and returns the id.
func (s *SessionStore[T]) Create(value T) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &sessionEntry[T]{value: value, lastSeen: s.now()}
	return id
}

// Get returns the value and refreshes its idle timer. Expired entries are
// treated as missing even if the janitor has not swept them yet.
func (s *SessionStore[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	e, ok := s.entries[id]
	if !ok {
		return zero, false
	}
	now := s.now()
	if s.expired(e, now) {
		delete(s.entries, id)
		return zero, false
	}
	e.lastSeen = now
	return e.value, true
}

func (s *SessionStore[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *SessionStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops every expired entry and returns how many went.
func (s *SessionStore[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps every interval until ctx is done.
func (s *SessionStore[T]) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					log.Printf("🧹 Swept %d expired sessions\n", n)
				}
			}
		}
	}()
}

func (s *SessionStore[T]) expired(e *sessionEntry[T], now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
