package launches

import (
	"net/http"

	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.LaunchPattern, h.handleDetail)
	mux.HandleFunc(http.MethodPost+" "+routepath.LaunchVotePattern, h.handleVote)
	mux.HandleFunc(http.MethodPost+" "+routepath.LaunchSwapQuotePattern, h.handleSwapQuote)
	mux.HandleFunc(http.MethodPost+" "+routepath.LaunchSwapExecPattern, h.handleSwapExecute)
	mux.HandleFunc(http.MethodPost+" "+routepath.LaunchSwapGuardPattern, h.handleSwapGuard)
	mux.HandleFunc(http.MethodGet+" "+routepath.LaunchFeedPattern, h.handleFeed)
	mux.HandleFunc(routepath.LaunchesPrefix, h.WriteNotFound)
}
