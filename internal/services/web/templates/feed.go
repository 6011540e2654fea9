package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/descilaunch/launchpad-web/internal/platform/timeouts"
)

// FeedState is the social feed lifecycle as rendered.
type FeedState string

const (
	FeedPending FeedState = "pending"
	FeedLoaded  FeedState = "loaded"
	FeedFailed  FeedState = "failed"
	FeedMissing FeedState = "missing"
)

// feedLoadTrigger fires the feed request once, after the initial delay.
var feedLoadTrigger = "load delay:" + strconv.FormatInt(timeouts.EmbedInitialDelay.Milliseconds(), 10) + "ms"

// FeedView is the social feed card state.
type FeedView struct {
	State      FeedState
	LoadURL    string
	Handle     string
	ProfileURL string
}

// FeedPanel renders the social feed card shell around the feed body.
func FeedPanel(view FeedView, loc Localizer) templ.Component {
	return component(func(h *html) {
		h.open("section", "class", "rounded-2xl border border-slate-800 bg-slate-900/70 p-5")
		h.el("h2", T(loc, "detail.feed.title"), "class", "text-sm font-semibold")
		h.el("p", T(loc, "detail.feed.subtitle"), "class", "text-[11px] uppercase tracking-wide text-slate-500")
		h.component(FeedBody(view, loc))
		h.close("section")
	})
}

// FeedBody renders one feed state. The pending placeholder loads the feed
// fragment once after a short delay.
func FeedBody(view FeedView, loc Localizer) templ.Component {
	return component(func(h *html) {
		switch view.State {
		case FeedPending:
			h.open("div", "class", "mt-4 text-xs text-slate-400", "data-feed-state", string(FeedPending),
				"hx-get", view.LoadURL, "hx-trigger", feedLoadTrigger, "hx-swap", "outerHTML")
			h.text(T(loc, "detail.feed.loading", view.Handle))
			h.close("div")
		case FeedLoaded:
			h.open("div", "class", "mt-4", "data-feed-state", string(FeedLoaded))
			h.el("a", T(loc, "detail.feed.loading", view.Handle),
				"class", "twitter-timeline",
				"href", safeURL(view.ProfileURL),
				"data-theme", "dark",
				"data-height", "600",
				"data-chrome", "noheader nofooter noborders transparent",
				"data-tweet-limit", "5",
				"data-dnt", "true")
			h.close("div")
		case FeedFailed:
			h.open("div", "class", "mt-4 rounded-xl border border-slate-800 bg-slate-950/60 p-4 text-center", "data-feed-state", string(FeedFailed))
			h.el("p", T(loc, "detail.feed.unavailable"), "class", "text-sm font-semibold text-slate-200")
			h.el("p", T(loc, "detail.feed.unavailable_reason"), "class", "mt-1 text-xs text-slate-400")
			h.el("a", T(loc, "detail.feed.view_profile", view.Handle), "href", safeURL(view.ProfileURL),
				"target", "_blank", "rel", "noopener noreferrer", "class", "mt-3 inline-flex text-xs font-semibold text-sky-300 hover:underline")
			h.close("div")
		default:
			h.el("p", T(loc, "detail.feed.missing"), "class", "mt-4 text-xs text-slate-500", "data-feed-state", string(FeedMissing))
		}
	})
}
