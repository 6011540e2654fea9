package xembed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/descilaunch/launchpad-web/internal/platform/logging"
	"github.com/descilaunch/launchpad-web/internal/platform/timeouts"
	webstorage "github.com/descilaunch/launchpad-web/internal/services/web/storage"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// DefaultEndpoint is the public oEmbed endpoint for timelines.
const DefaultEndpoint = "https://publish.twitter.com/oembed"

const (
	defaultMaxAttempts = 10
	defaultCacheTTL    = 6 * time.Hour
	cacheScope         = "xembed"
)

// ErrNoHandle reports a project without a usable profile reference.
var ErrNoHandle = errors.New("no profile handle")

// State is the terminal outcome of a load.
type State string

const (
	StateLoaded State = "loaded"
	StateFailed State = "failed"
)

// Embed is the result of loading one timeline.
type Embed struct {
	Handle     string
	ProfileURL string
	AuthorName string
	State      State
	// Attempts counts backend calls made for this load; zero when served
	// from cache.
	Attempts int
	Cached   bool
	Err      error
}

// Loaded reports whether the timeline can be rendered.
func (e Embed) Loaded() bool {
	return e.State == StateLoaded
}

// Config configures a Loader.
type Config struct {
	Endpoint    string
	MaxAttempts int
	Interval    time.Duration
	CacheTTL    time.Duration
	HTTPClient  *http.Client
	Cache       webstorage.Store
	Logger      logrus.FieldLogger
	Now         func() time.Time
}

// Loader checks timeline availability with a bounded retry schedule.
type Loader struct {
	endpoint    string
	maxAttempts int
	interval    time.Duration
	cacheTTL    time.Duration
	http        *resty.Client
	cache       webstorage.Store
	log         logrus.FieldLogger
	now         func() time.Time
}

// NewLoader builds a Loader with defaults for unset fields.
func NewLoader(cfg Config) *Loader {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Interval <= 0 {
		cfg.Interval = timeouts.EmbedPollInterval
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetTimeout(timeouts.BackendRequest).SetHeader("Accept", "application/json")
	return &Loader{
		endpoint:    endpoint,
		maxAttempts: cfg.MaxAttempts,
		interval:    cfg.Interval,
		cacheTTL:    cfg.CacheTTL,
		http:        rc,
		cache:       cfg.Cache,
		log:         logging.Component(cfg.Logger, "xembed"),
		now:         cfg.Now,
	}
}

// Load resolves the timeline for a profile reference. It always returns a
// terminal Embed; Err carries the last failure when State is StateFailed.
func (l *Loader) Load(ctx context.Context, ref string) Embed {
	handle := NormalizeHandle(ref)
	if handle == "" {
		return Embed{State: StateFailed, Err: ErrNoHandle}
	}
	embed := Embed{Handle: handle, ProfileURL: ProfileURL(handle)}

	if author, ok := l.cached(ctx, handle); ok {
		embed.AuthorName = author
		embed.State = StateLoaded
		embed.Cached = true
		return embed
	}

	var attempts atomic.Int32
	payload, err := backoff.Retry(ctx, func() ([]byte, error) {
		attempts.Add(1)
		return l.fetch(ctx, embed.ProfileURL)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(l.interval)),
		backoff.WithMaxTries(uint(l.maxAttempts)),
	)
	embed.Attempts = int(attempts.Load())
	if err != nil {
		l.log.WithError(err).WithFields(logrus.Fields{
			"handle":   handle,
			"attempts": embed.Attempts,
		}).Warn("timeline embed unavailable")
		embed.State = StateFailed
		embed.Err = err
		return embed
	}

	embed.AuthorName = gjson.GetBytes(payload, "author_name").String()
	embed.State = StateLoaded
	l.store(ctx, handle, payload)
	return embed
}

func (l *Loader) fetch(ctx context.Context, profileURL string) ([]byte, error) {
	resp, err := l.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"url":         profileURL,
			"omit_script": "true",
			"dnt":         "true",
			"theme":       "dark",
			"limit":       "5",
		}).
		Get(l.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch oembed: %w", err)
	}
	status := resp.StatusCode()
	switch {
	case resp.IsSuccess():
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return nil, fmt.Errorf("fetch oembed: unexpected status code: %d", status)
	default:
		return nil, backoff.Permanent(fmt.Errorf("fetch oembed: unexpected status code: %d", status))
	}
	body := resp.Body()
	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "html").Exists() {
		return nil, fmt.Errorf("fetch oembed: response has no timeline markup")
	}
	return body, nil
}

func cacheKey(handle string) string {
	return cacheScope + ":" + strings.ToLower(handle)
}

func (l *Loader) cached(ctx context.Context, handle string) (string, bool) {
	if l.cache == nil {
		return "", false
	}
	entry, found, err := l.cache.GetCacheEntry(ctx, cacheKey(handle))
	if err != nil {
		l.log.WithError(err).WithField("handle", handle).Warn("read embed cache")
		return "", false
	}
	if !found || entry.Expired(l.now()) {
		return "", false
	}
	return gjson.GetBytes(entry.PayloadBytes, "author_name").String(), true
}

func (l *Loader) store(ctx context.Context, handle string, payload []byte) {
	if l.cache == nil {
		return
	}
	now := l.now().UTC()
	if err := l.cache.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     cacheKey(handle),
		Scope:        cacheScope,
		PayloadBytes: payload,
		CheckedAt:    now,
		ExpiresAt:    now.Add(l.cacheTTL),
	}); err != nil {
		l.log.WithError(err).WithField("handle", handle).Warn("write embed cache")
	}
}
