package home

import (
	"net/http"

	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc := h.Localizer(w, r)
	view, err := h.service.loadHome(r.Context())
	if err != nil {
		h.Logger().WithError(err).Warn("landing page without projects")
	}
	h.WritePage(w, r, webtemplates.T(loc, "title.home"), http.StatusOK, webtemplates.HomePage(view, loc))
}

func (h handlers) handleLaunches(w http.ResponseWriter, r *http.Request) {
	loc := h.Localizer(w, r)
	view, err := h.service.loadLaunches(r.Context())
	if err != nil {
		h.Logger().WithError(err).Warn("launch index without projects")
	}
	h.WritePage(w, r, webtemplates.T(loc, "title.launches"), http.StatusOK, webtemplates.LaunchesPage(view, loc))
}
