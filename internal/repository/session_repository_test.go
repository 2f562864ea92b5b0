package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/unclebandit/ambassador-campaign/internal/repository"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSessionStoreCreateGet(t *testing.T) {
	store := repository.NewSessionStore[string](time.Minute)

	a := store.Create("a")
	b := store.Create("b")
	if a == b {
		t.Fatal("expected distinct ids")
	}

	if v, ok := store.Get(a); !ok || v != "a" {
		t.Errorf("expected a, got %q %v", v, ok)
	}
	if _, ok := store.Get("missing"); ok {
		t.Error("expected missing id to miss")
	}

	store.Delete(a)
	if _, ok := store.Get(a); ok {
		t.Error("expected deleted id to miss")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", store.Len())
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := repository.NewSessionStore[int](10 * time.Minute).WithClock(clock.Now)

	id := store.Create(1)

	clock.Advance(9 * time.Minute)
	if _, ok := store.Get(id); !ok {
		t.Fatal("expected entry before ttl")
	}

	// the read above refreshed the idle timer
	clock.Advance(9 * time.Minute)
	if _, ok := store.Get(id); !ok {
		t.Fatal("expected entry after refresh")
	}

	clock.Advance(11 * time.Minute)
	if _, ok := store.Get(id); ok {
		t.Error("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Errorf("expected expired entry removed on read, got %d", store.Len())
	}
}

func TestSessionStoreSweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := repository.NewSessionStore[int](time.Minute).WithClock(clock.Now)

	store.Create(1)
	store.Create(2)
	clock.Advance(2 * time.Minute)
	fresh := store.Create(3)

	if n := store.Sweep(); n != 2 {
		t.Errorf("expected 2 swept, got %d", n)
	}
	if _, ok := store.Get(fresh); !ok {
		t.Error("expected fresh entry to survive")
	}
}

func TestSessionStoreZeroTTLNeverExpires(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := repository.NewSessionStore[int](0).WithClock(clock.Now)

	id := store.Create(7)
	clock.Advance(1000 * time.Hour)
	if store.Sweep() != 0 {
		t.Error("expected nothing swept")
	}
	if _, ok := store.Get(id); !ok {
		t.Error("expected entry to be kept")
	}
}

func TestSessionStoreJanitor(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := repository.NewSessionStore[int](time.Minute).WithClock(clock.Now)
	store.Create(1)
	clock.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.StartJanitor(ctx, 5*time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for store.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("janitor did not sweep the expired entry")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
