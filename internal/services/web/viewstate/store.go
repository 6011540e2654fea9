// Package viewstate keeps the transient interactive state of open detail
// pages: sentiment tally, swap form and the last quote.
//
// State lives only in memory and is discarded when a view expires, is
// evicted, or the store closes. Nothing here is a source of truth.
package viewstate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/google/uuid"
)

const (
	defaultTTL      = 30 * time.Minute
	defaultMaxViews = 10_000
)

var (
	// ErrExpired reports that a view id is unknown, expired or evicted.
	ErrExpired = errors.New("view expired")
	// ErrClosed reports an update against a view that has been torn down.
	ErrClosed = errors.New("view closed")
	// ErrBusy reports that a swap operation is already running for the view.
	ErrBusy = errors.New("view busy")
)

// State is the per-view interactive state.
type State struct {
	Project   launchpad.Project
	Sentiment launchpad.Sentiment
	Swap      launchpad.SwapForm
	Quote     *launchpad.Quote
	Busy      bool
}

// View is one open detail page. All access is serialized by its own mutex.
type View struct {
	id string

	mu       sync.Mutex
	state    State
	closed   bool
	lastSeen time.Time
}

// ID returns the opaque view identifier.
func (v *View) ID() string {
	return v.id
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() (State, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return State{}, ErrClosed
	}
	return v.state.clone(), nil
}

// Update applies fn to the state unless the view has been closed.
func (v *View) Update(fn func(*State)) (State, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return State{}, ErrClosed
	}
	if fn != nil {
		fn(&v.state)
	}
	return v.state.clone(), nil
}

// Acquire marks the view busy. The returned release clears the flag and is
// safe to call more than once or after the view closed.
func (v *View) Acquire() (func(), error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil, ErrClosed
	}
	if v.state.Busy {
		return nil, ErrBusy
	}
	v.state.Busy = true
	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			v.state.Busy = false
			v.mu.Unlock()
		})
	}, nil
}

// Alive reports whether the view still accepts updates.
func (v *View) Alive() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.closed
}

// Close tears the view down; later updates are refused.
func (v *View) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}

func (v *View) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *View) seen() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

func (s State) clone() State {
	if s.Quote != nil {
		quote := *s.Quote
		s.Quote = &quote
	}
	return s
}

// Options configures a Store.
type Options struct {
	// TTL is the idle time after which a view expires.
	TTL time.Duration
	// MaxViews bounds the number of open views; the least recently used view
	// is evicted when the bound is reached.
	MaxViews int
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Store is a thread-safe registry of open views.
type Store struct {
	ttl      time.Duration
	maxViews int
	now      func() time.Time

	mu     sync.Mutex
	views  map[string]*View
	closed bool
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.MaxViews <= 0 {
		opts.MaxViews = defaultMaxViews
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		ttl:      opts.TTL,
		maxViews: opts.MaxViews,
		now:      opts.Now,
		views:    make(map[string]*View),
	}
}

// Open registers a new view with the given initial state.
func (s *Store) Open(initial State) *View {
	now := s.now()
	view := &View{id: uuid.NewString(), state: initial.clone(), lastSeen: now}
	view.state.Busy = false

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		view.closed = true
		return view
	}
	for len(s.views) >= s.maxViews {
		s.evictOldestLocked()
	}
	s.views[view.id] = view
	return view
}

// Get returns a live view and refreshes its idle timer.
func (s *Store) Get(id string) (*View, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrExpired
	}
	now := s.now()

	s.mu.Lock()
	view, ok := s.views[id]
	if ok && now.Sub(view.seen()) > s.ttl {
		delete(s.views, id)
		s.mu.Unlock()
		view.Close()
		return nil, ErrExpired
	}
	s.mu.Unlock()
	if !ok || !view.Alive() {
		return nil, ErrExpired
	}
	view.touch(now)
	return view, nil
}

// Sweep closes and removes every expired view and returns how many were
// removed.
func (s *Store) Sweep() int {
	now := s.now()
	var expired []*View

	s.mu.Lock()
	for id, view := range s.views {
		if now.Sub(view.seen()) > s.ttl {
			delete(s.views, id)
			expired = append(expired, view)
		}
	}
	s.mu.Unlock()

	for _, view := range expired {
		view.Close()
	}
	return len(expired)
}

// Run sweeps expired views every interval until ctx ends, then closes the
// store.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Len returns the number of registered views.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// Close closes every view. Views opened afterwards start closed.
func (s *Store) Close() {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*View)
	s.closed = true
	s.mu.Unlock()

	for _, view := range views {
		view.Close()
	}
}

func (s *Store) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, view := range s.views {
		seen := view.seen()
		if oldestID == "" || seen.Before(oldest) {
			oldestID = id
			oldest = seen
		}
	}
	if oldestID == "" {
		return
	}
	view := s.views[oldestID]
	delete(s.views, oldestID)
	view.Close()
}
