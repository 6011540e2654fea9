package home

import (
	"context"
	"fmt"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	apperrors "github.com/descilaunch/launchpad-web/internal/services/web/platform/errors"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
)

// ProjectGateway lists launch projects from the backend.
type ProjectGateway interface {
	ListProjects(context.Context) ([]launchpad.Project, error)
}

type unavailableGateway struct{}

func (unavailableGateway) ListProjects(context.Context) ([]launchpad.Project, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "launchpad backend is not configured")
}

type service struct {
	gateway      ProjectGateway
	previewLimit int
}

func newService(gateway ProjectGateway, previewLimit int) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if previewLimit <= 0 {
		previewLimit = DefaultPreviewLimit
	}
	return service{gateway: gateway, previewLimit: previewLimit}
}

// loadHome returns the preview grid. A failed fetch still yields a usable,
// empty view alongside the error so the page renders.
func (s service) loadHome(ctx context.Context) (webtemplates.HomeView, error) {
	projects, err := s.gateway.ListProjects(ctx)
	if err != nil {
		return webtemplates.HomeView{}, fmt.Errorf("list projects: %w", err)
	}
	if len(projects) > s.previewLimit {
		projects = projects[:s.previewLimit]
	}
	return webtemplates.HomeView{Projects: webtemplates.NewProjectCards(projects)}, nil
}

func (s service) loadLaunches(ctx context.Context) (webtemplates.LaunchesView, error) {
	projects, err := s.gateway.ListProjects(ctx)
	if err != nil {
		return webtemplates.LaunchesView{}, fmt.Errorf("list projects: %w", err)
	}
	return webtemplates.LaunchesView{Projects: webtemplates.NewProjectCards(projects)}, nil
}
