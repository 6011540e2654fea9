// Package launchpadapi is the REST client for the launchpad backend.
package launchpadapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/descilaunch/launchpad-web/internal/platform/otel"
	"github.com/descilaunch/launchpad-web/internal/platform/timeouts"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is used when no backend URL is configured.
const DefaultBaseURL = "https://desci-backend.onrender.com"

const (
	pathProjects  = "/api/launchpad/projects"
	pathSentiment = "/api/launchpad/projects/{id}/sentiment"
	pathQuote     = "/api/swaps/quote"
	pathExecute   = "/api/swaps/execute"
)

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d", e.Op, e.Status)
}

// ErrMalformedQuote reports a quote response that is not a JSON object.
var ErrMalformedQuote = errors.New("malformed quote response")

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the underlying transport, mainly for tests.
	HTTPClient *http.Client
}

// Client calls the launchpad backend.
type Client struct {
	http   *resty.Client
	tracer trace.Tracer
}

// New builds a Client. A blank base URL falls back to DefaultBaseURL.
func New(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.BackendRequest
	}
	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc, tracer: otel.Tracer("launchpadapi")}
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// ListProjects reads the full project collection. A payload that is not an
// array yields an empty collection.
func (c *Client) ListProjects(ctx context.Context) (projects []launchpad.Project, err error) {
	ctx, span := c.start(ctx, "ListProjects", pathProjects)
	defer func() { end(span, err) }()

	resp, err := c.http.R().SetContext(ctx).Get(pathProjects)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Op: "list projects", Status: resp.StatusCode()}
	}
	projects = launchpad.DecodeProjects(resp.Body())
	span.SetAttributes(attribute.Int("launchpad.projects", len(projects)))
	return projects, nil
}

// RecordSentiment sends one vote for a project.
func (c *Client) RecordSentiment(ctx context.Context, projectID string, vote launchpad.Vote) (err error) {
	ctx, span := c.start(ctx, "RecordSentiment", pathSentiment)
	defer func() { end(span, err) }()

	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return errors.New("record sentiment: project id is required")
	}
	if vote != launchpad.VoteUp && vote != launchpad.VoteDown {
		return fmt.Errorf("record sentiment: unsupported vote %q", vote)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", projectID).
		SetBody(map[string]string{"vote": string(vote)}).
		Post(pathSentiment)
	if err != nil {
		return fmt.Errorf("record sentiment: %w", err)
	}
	if !resp.IsSuccess() {
		return &StatusError{Op: "record sentiment", Status: resp.StatusCode()}
	}
	return nil
}

// Quote asks the backend for a swap quote.
func (c *Client) Quote(ctx context.Context, form launchpad.SwapForm) (quote launchpad.Quote, err error) {
	ctx, span := c.start(ctx, "Quote", pathQuote)
	defer func() { end(span, err) }()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"from":     form.From,
			"to":       form.To,
			"amount":   form.RequestAmount(),
			"slippage": form.Slippage,
		}).
		Get(pathQuote)
	if err != nil {
		return launchpad.Quote{}, fmt.Errorf("quote swap: %w", err)
	}
	if !resp.IsSuccess() {
		return launchpad.Quote{}, &StatusError{Op: "quote swap", Status: resp.StatusCode()}
	}
	quote, ok := launchpad.DecodeQuote(resp.Body())
	if !ok {
		return launchpad.Quote{}, fmt.Errorf("quote swap: %w", ErrMalformedQuote)
	}
	return quote, nil
}

// Execute submits a swap for the connected wallet. The response body is
// not used.
func (c *Client) Execute(ctx context.Context, form launchpad.SwapForm, walletAddress string) (err error) {
	ctx, span := c.start(ctx, "Execute", pathExecute)
	defer func() { end(span, err) }()

	var address any
	if trimmed := strings.TrimSpace(walletAddress); trimmed != "" {
		address = trimmed
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"from":          form.From,
			"to":            form.To,
			"amount":        form.RequestAmount(),
			"slippage":      form.Slippage,
			"walletAddress": address,
		}).
		Post(pathExecute)
	if err != nil {
		return fmt.Errorf("execute swap: %w", err)
	}
	if !resp.IsSuccess() {
		return &StatusError{Op: "execute swap", Status: resp.StatusCode()}
	}
	return nil
}

func (c *Client) start(ctx context.Context, name string, route string) (context.Context, trace.Span) {
	ctx, span := c.tracer.Start(ctx, "launchpadapi."+name, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("http.route", route))
	return ctx, span
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
