// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"
)

// Viewer contains chrome data for the current browser: the connected
// wallet, if any.
type Viewer struct {
	WalletAddress string
	WalletShort   string
}

// Connected reports whether the viewer has a wallet attached.
func (v Viewer) Connected() bool {
	return v.WalletAddress != ""
}

// ResolveViewer resolves chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with gateway dependencies implement this
// so the registry can derive service health without centralizing client knowledge.
type HealthReporter interface {
	Healthy() bool
}

// Drainer is an optional interface for modules that run work past the
// response, such as background backend notifications. Drain blocks until
// that work finishes or ctx ends.
type Drainer interface {
	Drain(ctx context.Context) error
}
