package templates

import "github.com/a-h/templ"

// SentimentWidgetID is the element vote responses replace.
const SentimentWidgetID = "sentiment-widget"

const sentimentSparkline = "M 0 50 Q 50 45, 100 30 T 200 15"

// SentimentView is the community sentiment widget state.
type SentimentView struct {
	VoteURL    string
	Upvotes    int
	Downvotes  int
	Percentage int
	// Vote is "up", "down" or empty.
	Vote string
}

// SentimentWidget renders the sentiment card. Vote buttons post the choice
// and the response replaces the whole widget.
func SentimentWidget(view SentimentView, loc Localizer) templ.Component {
	return component(func(h *html) {
		h.open("section", "id", SentimentWidgetID, "class", "rounded-2xl border border-slate-800 bg-slate-900/70 p-5", "data-vote", view.Vote)
		h.el("h2", T(loc, "detail.sentiment.title"), "class", "text-sm font-semibold")
		h.el("p", T(loc, "detail.sentiment.prompt"), "class", "mt-1 text-xs text-slate-400")

		h.open("div", "class", "mt-4 flex items-end justify-between")
		h.el("p", T(loc, "detail.sentiment.positive", view.Percentage), "class", "text-2xl font-bold text-sky-300", "data-sentiment-percentage", itoa(view.Percentage))
		h.raw(`<svg viewBox="0 0 200 60" class="h-12 w-40" aria-hidden="true">`,
			`<defs><linearGradient id="sentimentGradient" x1="0" y1="0" x2="0" y2="1">`,
			`<stop offset="0%" stop-color="#38bdf8" stop-opacity="0.5"></stop>`,
			`<stop offset="100%" stop-color="#38bdf8" stop-opacity="0"></stop>`,
			`</linearGradient></defs>`,
			`<path d="`, sentimentSparkline, ` L 200 60 L 0 60 Z" fill="url(#sentimentGradient)"></path>`,
			`<path d="`, sentimentSparkline, `" fill="none" stroke="#38bdf8" stroke-width="2"></path>`,
			`</svg>`)
		h.close("div")

		h.open("form", "method", "post", "action", view.VoteURL, "class", "mt-4 flex gap-2",
			"hx-post", view.VoteURL, "hx-target", "#"+SentimentWidgetID, "hx-swap", "outerHTML")
		writeVoteButton(h, "up", "↑", view.Upvotes, view.Vote == "up", T(loc, "detail.sentiment.upvote"))
		writeVoteButton(h, "down", "↓", view.Downvotes, view.Vote == "down", T(loc, "detail.sentiment.downvote"))
		h.close("form")
		h.close("section")
	})
}

func writeVoteButton(h *html, vote string, arrow string, count int, active bool, label string) {
	class := "flex flex-1 items-center justify-center gap-2 rounded-xl border border-slate-700 px-3 py-2 text-sm text-slate-200 hover:bg-slate-800"
	if active {
		class = "flex flex-1 items-center justify-center gap-2 rounded-xl border border-sky-400 bg-sky-500/15 px-3 py-2 text-sm text-sky-200"
	}
	pressed := "false"
	if active {
		pressed = "true"
	}
	h.open("button", "type", "submit", "name", "vote", "value", vote, "class", class, "aria-pressed", pressed, "aria-label", label)
	h.el("span", arrow, "aria-hidden", "true")
	h.el("span", itoa(count), "data-vote-count", vote)
	h.close("button")
}
