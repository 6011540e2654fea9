// Package timeouts defines shared timeout constants used across the web
// service and its backend integrations.
package timeouts

import "time"

// BackendRequest caps a single call to the launchpad REST backend.
const BackendRequest = 10 * time.Second

// BackgroundMutation caps best-effort notifications that outlive the
// originating request, such as sentiment votes.
const BackgroundMutation = 5 * time.Second

// EmbedInitialDelay is the one-time wait before the social feed is first
// requested by the browser.
const EmbedInitialDelay = time.Second

// EmbedPollInterval spaces consecutive social embed load attempts.
const EmbedPollInterval = 500 * time.Millisecond

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
