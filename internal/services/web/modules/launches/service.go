package launches

import (
	"context"
	"errors"
	"fmt"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/descilaunch/launchpad-web/internal/services/web/integration/xembed"
	apperrors "github.com/descilaunch/launchpad-web/internal/services/web/platform/errors"
)

// LaunchpadGateway is the slice of the launchpad backend this module uses.
type LaunchpadGateway interface {
	ListProjects(context.Context) ([]launchpad.Project, error)
	RecordSentiment(ctx context.Context, projectID string, vote launchpad.Vote) error
	Quote(ctx context.Context, form launchpad.SwapForm) (launchpad.Quote, error)
	Execute(ctx context.Context, form launchpad.SwapForm, walletAddress string) error
}

// FeedLoader loads the social timeline of a project.
type FeedLoader interface {
	Load(ctx context.Context, ref string) xembed.Embed
}

type unavailableGateway struct{}

func (unavailableGateway) ListProjects(context.Context) ([]launchpad.Project, error) {
	return nil, errGatewayUnavailable
}

func (unavailableGateway) RecordSentiment(context.Context, string, launchpad.Vote) error {
	return errGatewayUnavailable
}

func (unavailableGateway) Quote(context.Context, launchpad.SwapForm) (launchpad.Quote, error) {
	return launchpad.Quote{}, errGatewayUnavailable
}

func (unavailableGateway) Execute(context.Context, launchpad.SwapForm, string) error {
	return errGatewayUnavailable
}

var errGatewayUnavailable = apperrors.E(apperrors.KindUnavailable, "launchpad backend is not configured")

type service struct {
	gateway LaunchpadGateway
	feeds   FeedLoader
}

func newService(gateway LaunchpadGateway, feeds FeedLoader) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, feeds: feeds}
}

// loadProject fetches the collection and resolves token against it.
func (s service) loadProject(ctx context.Context, token string) (launchpad.Project, error) {
	projects, err := s.gateway.ListProjects(ctx)
	if err != nil {
		return launchpad.Project{}, apperrors.Wrap(apperrors.KindUpstream, "detail.error.load_failed", "failed to load launch details", err)
	}
	project, err := launchpad.ResolveProject(projects, token)
	if errors.Is(err, launchpad.ErrNotFound) {
		return launchpad.Project{}, apperrors.EK(apperrors.KindNotFound, "detail.error.not_found", "launch not found")
	}
	if err != nil {
		return launchpad.Project{}, fmt.Errorf("resolve launch %q: %w", token, err)
	}
	return project, nil
}

// quote asks the backend for a swap quote. Any failure yields the mock quote
// echoing the form together with the cause.
func (s service) quote(ctx context.Context, form launchpad.SwapForm) (launchpad.Quote, error) {
	quote, err := s.gateway.Quote(ctx, form)
	if err != nil {
		return launchpad.MockQuote(form), fmt.Errorf("quote swap: %w", err)
	}
	return quote, nil
}

func (s service) execute(ctx context.Context, form launchpad.SwapForm, walletAddress string) error {
	if err := s.gateway.Execute(ctx, form, walletAddress); err != nil {
		return fmt.Errorf("execute swap: %w", err)
	}
	return nil
}

// loadFeed resolves the embed for a project social link. A missing loader
// reports a failed embed so the fallback card still links the profile.
func (s service) loadFeed(ctx context.Context, ref string) xembed.Embed {
	if s.feeds == nil {
		handle := xembed.NormalizeHandle(ref)
		embed := xembed.Embed{Handle: handle, State: xembed.StateFailed, Err: errors.New("feed loader is not configured")}
		if handle != "" {
			embed.ProfileURL = xembed.ProfileURL(handle)
		}
		return embed
	}
	return s.feeds.Load(ctx, ref)
}
