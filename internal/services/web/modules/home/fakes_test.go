package home

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
)

// fakeGateway implements ProjectGateway for tests with canned projects,
// error injection and call counting.
type fakeGateway struct {
	projects []launchpad.Project
	err      error
	calls    atomic.Int32
}

func (f *fakeGateway) ListProjects(context.Context) ([]launchpad.Project, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

func sampleProjects(n int) []launchpad.Project {
	projects := make([]launchpad.Project, 0, n)
	for idx := 1; idx <= n; idx++ {
		id := strconv.Itoa(idx)
		projects = append(projects, launchpad.Project{
			ID:              id,
			Slug:            "project-" + id,
			Name:            "Project " + id,
			ProjectType:     "Longevity",
			Status:          launchpad.StatusLive,
			ProgressPercent: float64(idx * 10),
		})
	}
	return projects
}
