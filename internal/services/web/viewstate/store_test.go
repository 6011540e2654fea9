package viewstate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
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
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestStoreOpenAndGet(t *testing.T) {
	t.Parallel()

	store := NewStore(Options{})
	view := store.Open(State{Project: launchpad.Project{Slug: "alpha"}, Swap: launchpad.DefaultSwapForm()})
	if view.ID() == "" {
		t.Fatal("expected view id")
	}

	got, err := store.Get(view.ID())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	state, err := got.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if state.Project.Slug != "alpha" {
		t.Fatalf("slug = %q, want %q", state.Project.Slug, "alpha")
	}
	if state.Swap.From != launchpad.DefaultFromToken {
		t.Fatalf("swap from = %q, want %q", state.Swap.From, launchpad.DefaultFromToken)
	}
}

func TestStoreGetUnknownView(t *testing.T) {
	t.Parallel()

	store := NewStore(Options{})
	for _, id := range []string{"", "  ", "missing"} {
		if _, err := store.Get(id); !errors.Is(err, ErrExpired) {
			t.Fatalf("Get(%q) error = %v, want %v", id, err, ErrExpired)
		}
	}
}

func TestStoreExpiresIdleViews(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(Options{TTL: time.Minute, Now: clock.Now})
	view := store.Open(State{})

	clock.Advance(30 * time.Second)
	if _, err := store.Get(view.ID()); err != nil {
		t.Fatalf("Get() before ttl error = %v", err)
	}

	clock.Advance(61 * time.Second)
	if _, err := store.Get(view.ID()); !errors.Is(err, ErrExpired) {
		t.Fatalf("Get() after ttl error = %v, want %v", err, ErrExpired)
	}
	if view.Alive() {
		t.Fatal("expected expired view to be closed")
	}
}

func TestStoreSweepRemovesExpiredViews(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(Options{TTL: time.Minute, Now: clock.Now})
	stale := store.Open(State{})
	clock.Advance(45 * time.Second)
	fresh := store.Open(State{})
	clock.Advance(30 * time.Second)

	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("Sweep() = %d, want 1", removed)
	}
	if stale.Alive() {
		t.Fatal("expected stale view closed")
	}
	if !fresh.Alive() {
		t.Fatal("expected fresh view alive")
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
}

func TestStoreEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(Options{MaxViews: 2, Now: clock.Now})
	first := store.Open(State{})
	clock.Advance(time.Second)
	second := store.Open(State{})
	clock.Advance(time.Second)
	if _, err := store.Get(first.ID()); err != nil {
		t.Fatalf("Get(first) error = %v", err)
	}
	clock.Advance(time.Second)
	third := store.Open(State{})

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	if second.Alive() {
		t.Fatal("expected least recently used view evicted")
	}
	if !first.Alive() || !third.Alive() {
		t.Fatal("expected recent views to survive")
	}
}

func TestViewRefusesUpdatesAfterClose(t *testing.T) {
	t.Parallel()

	store := NewStore(Options{})
	view := store.Open(State{Sentiment: launchpad.Sentiment{Upvotes: 1}})
	view.Close()

	if _, err := view.Update(func(s *State) { s.Sentiment.Upvotes = 99 }); !errors.Is(err, ErrClosed) {
		t.Fatalf("Update() error = %v, want %v", err, ErrClosed)
	}
	if _, err := view.Snapshot(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Snapshot() error = %v, want %v", err, ErrClosed)
	}
	if _, err := store.Get(view.ID()); !errors.Is(err, ErrExpired) {
		t.Fatalf("Get() error = %v, want %v", err, ErrExpired)
	}
}

func TestViewAcquireRejectsConcurrentOperation(t *testing.T) {
	t.Parallel()

	store := NewStore(Options{})
	view := store.Open(State{})

	release, err := view.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if _, err := view.Acquire(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Acquire() error = %v, want %v", err, ErrBusy)
	}
	state, _ := view.Snapshot()
	if !state.Busy {
		t.Fatal("expected busy state while acquired")
	}

	release()
	release()
	state, _ = view.Snapshot()
	if state.Busy {
		t.Fatal("expected busy cleared after release")
	}
	again, err := view.Acquire()
	if err != nil {
		t.Fatalf("Acquire() after release error = %v", err)
	}
	again()
}

func TestViewSnapshotCopiesQuote(t *testing.T) {
	t.Parallel()

	store := NewStore(Options{})
	view := store.Open(State{})
	quote := launchpad.MockQuote(launchpad.DefaultSwapForm())
	if _, err := view.Update(func(s *State) { s.Quote = &quote }); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	snapshot, _ := view.Snapshot()
	snapshot.Quote.Route = "mutated"
	again, _ := view.Snapshot()
	if again.Quote.Route != launchpad.MockQuoteRoute {
		t.Fatalf("route = %q, want %q", again.Quote.Route, launchpad.MockQuoteRoute)
	}
}

func TestStoreCloseClosesViews(t *testing.T) {
	t.Parallel()

	store := NewStore(Options{})
	view := store.Open(State{})
	store.Close()

	if view.Alive() {
		t.Fatal("expected view closed with store")
	}
	late := store.Open(State{})
	if late.Alive() {
		t.Fatal("expected views opened after close to start closed")
	}
}

func TestStoreRunClosesOnContextDone(t *testing.T) {
	t.Parallel()

	store := NewStore(Options{})
	view := store.Open(State{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if view.Alive() {
		t.Fatal("expected view closed after janitor stopped")
	}
}
