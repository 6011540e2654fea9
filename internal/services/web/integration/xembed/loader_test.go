package xembed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/descilaunch/launchpad-web/internal/platform/logging"
	webstorage "github.com/descilaunch/launchpad-web/internal/services/web/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oembedBody = `{"url":"https://twitter.com/desci","author_name":"DeSci Launch","html":"<a class=\"twitter-timeline\"></a>"}`

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]webstorage.CacheEntry
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]webstorage.CacheEntry{}}
}

func (m *memoryCache) Close() error { return nil }

func (m *memoryCache) GetCacheEntry(_ context.Context, key string) (webstorage.CacheEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	return entry, ok, nil
}

func (m *memoryCache) PutCacheEntry(_ context.Context, entry webstorage.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.CacheKey] = entry
	return nil
}

func (m *memoryCache) DeleteCacheEntry(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memoryCache) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for key, entry := range m.entries {
		if entry.Expired(now) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed, nil
}

func newTestLoader(t *testing.T, handler http.HandlerFunc, cfg Config) *Loader {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg.Endpoint = server.URL + "/oembed"
	cfg.HTTPClient = server.Client()
	cfg.Logger = logging.Discard()
	if cfg.Interval == 0 {
		cfg.Interval = time.Millisecond
	}
	return NewLoader(cfg)
}

func TestLoadSucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oembed", r.URL.Path)
		assert.Equal(t, "https://twitter.com/desci", r.URL.Query().Get("url"))
		assert.Equal(t, "dark", r.URL.Query().Get("theme"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(oembedBody))
	}, Config{})

	embed := loader.Load(context.Background(), "https://x.com/desci")
	require.True(t, embed.Loaded(), "err = %v", embed.Err)
	assert.Equal(t, "desci", embed.Handle)
	assert.Equal(t, "https://twitter.com/desci", embed.ProfileURL)
	assert.Equal(t, "DeSci Launch", embed.AuthorName)
	assert.Equal(t, 1, embed.Attempts)
	assert.False(t, embed.Cached)
}

func TestLoadRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	loader := newTestLoader(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(oembedBody))
	}, Config{})

	embed := loader.Load(context.Background(), "desci")
	require.True(t, embed.Loaded(), "err = %v", embed.Err)
	assert.Equal(t, 3, embed.Attempts)
}

func TestLoadStopsAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	loader := newTestLoader(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, Config{MaxAttempts: 4})

	embed := loader.Load(context.Background(), "desci")
	assert.Equal(t, StateFailed, embed.State)
	assert.Error(t, embed.Err)
	assert.Equal(t, 4, embed.Attempts)
	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, "https://twitter.com/desci", embed.ProfileURL)
}

func TestLoadDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, Config{})

	embed := loader.Load(context.Background(), "desci")
	assert.Equal(t, StateFailed, embed.State)
	assert.Equal(t, 1, embed.Attempts)
}

func TestLoadTreatsMissingMarkupAsFailure(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"author_name":"nobody"}`))
	}, Config{MaxAttempts: 2})

	embed := loader.Load(context.Background(), "desci")
	assert.Equal(t, StateFailed, embed.State)
	assert.Equal(t, 2, embed.Attempts)
}

func TestLoadWithoutHandle(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t, func(http.ResponseWriter, *http.Request) {
		t.Error("endpoint should not be called")
	}, Config{})

	embed := loader.Load(context.Background(), "https://example.com/x")
	assert.Equal(t, StateFailed, embed.State)
	assert.ErrorIs(t, embed.Err, ErrNoHandle)
	assert.Zero(t, embed.Attempts)
}

func TestLoadUsesCache(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := newMemoryCache()
	var calls atomic.Int32
	loader := newTestLoader(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(oembedBody))
	}, Config{Cache: cache, CacheTTL: time.Hour, Now: func() time.Time { return now }})

	first := loader.Load(context.Background(), "@DeSci")
	require.True(t, first.Loaded())
	assert.False(t, first.Cached)

	entry, found, err := cache.GetCacheEntry(context.Background(), "xembed:desci")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, entry.ExpiresAt.Equal(now.Add(time.Hour)), "expires_at = %v", entry.ExpiresAt)

	second := loader.Load(context.Background(), "desci")
	require.True(t, second.Loaded())
	assert.True(t, second.Cached)
	assert.Equal(t, "DeSci Launch", second.AuthorName)
	assert.Equal(t, int32(1), calls.Load())

	now = now.Add(2 * time.Hour)
	removed, err := cache.PurgeExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestLoadHonoursCancellation(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, Config{Interval: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	embed := loader.Load(ctx, "desci")
	assert.Equal(t, StateFailed, embed.State)
	assert.Less(t, time.Since(start), 5*time.Second)
}
