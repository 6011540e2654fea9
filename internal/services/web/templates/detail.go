package templates

import "github.com/a-h/templ"

// DetailView is the launch detail page content.
type DetailView struct {
	Name         string
	Symbol       string
	Description  string
	ProjectType  string
	HeroImageURL string
	LogoURL      string
	StatusLabel  string
	StatusClass  string
	SocialURL    string

	Raise               RaiseView
	Market              MarketView
	ProjectTokenAddress string
	SuiRaiseAddress     string

	Sentiment   SentimentView
	Participate ParticipateView
	Feed        FeedView
}

// RaiseView is the raise-details panel.
type RaiseView struct {
	Currency      string
	HardCap       string
	SoftCap       string
	TicketSize    string
	PricePerToken string
	TokenSymbol   string
	Progress      float64
	ProgressLabel string
}

// MarketView holds the market overview metrics.
type MarketView struct {
	TAM               string
	PerPatientRevenue string
	PatientReach      string
}

const (
	infoGroup         = "info"
	infoAbout         = "about"
	infoTeam          = "team"
	infoResearch      = "research"
	infoValueCapture  = "value-capture"
	infoRoadmap       = "roadmap"
	roadmapMilestones = 3
)

// DetailPage renders the launch detail body.
func DetailPage(view DetailView, loc Localizer) templ.Component {
	return component(func(h *html) {
		writeDetailHero(h, view, loc)

		h.open("div", "class", "mt-8 grid gap-6 lg:grid-cols-3")
		h.open("div", "class", "space-y-6 lg:col-span-2")
		writeRaisePanel(h, view, loc)
		writeInfoTabs(h, view, loc)
		h.component(TokenomicsPanel(loc))
		h.close("div")

		h.open("aside", "class", "space-y-6")
		h.component(SentimentWidget(view.Sentiment, loc))
		h.component(ParticipatePanel(view.Participate, loc))
		h.component(FeedPanel(view.Feed, loc))
		h.close("aside")
		h.close("div")
	})
}

func writeDetailHero(h *html, view DetailView, loc Localizer) {
	h.open("section", "class", "overflow-hidden rounded-3xl border border-slate-800 bg-slate-900/70")
	if view.HeroImageURL != "" {
		h.void("img", "src", safeURL(view.HeroImageURL), "alt", view.Name, "class", "h-56 w-full object-cover")
	}
	h.open("div", "class", "flex flex-wrap items-start gap-4 p-6")
	if view.LogoURL != "" {
		h.void("img", "src", safeURL(view.LogoURL), "alt", "", "class", "h-14 w-14 rounded-xl border border-slate-700 object-cover")
	}
	h.open("div", "class", "flex-1")
	h.open("div", "class", "flex flex-wrap items-center gap-3")
	h.el("h1", view.Name, "class", "text-3xl font-semibold")
	if view.Symbol != "" {
		h.el("span", view.Symbol, "class", "font-mono text-sm text-slate-400")
	}
	h.el("span", view.StatusLabel, "class", "rounded-full px-2.5 py-0.5 text-[11px] font-semibold uppercase "+view.StatusClass, "data-status-badge", "true")
	h.close("div")
	if view.ProjectType != "" {
		h.el("p", view.ProjectType, "class", "mt-1 text-xs uppercase tracking-wide text-slate-500")
	}
	if view.Description != "" {
		h.el("p", view.Description, "class", "mt-3 max-w-3xl text-sm text-slate-300")
	}
	h.close("div")
	if view.SocialURL != "" {
		h.el("a", T(loc, "detail.social.x"), "href", safeURL(view.SocialURL), "target", "_blank", "rel", "noopener noreferrer",
			"class", "rounded-full border border-slate-700 px-3 py-1 text-xs font-semibold text-slate-200 hover:bg-slate-800")
	}
	h.close("div")
	h.close("section")
}

func writeRaisePanel(h *html, view DetailView, loc Localizer) {
	raise := view.Raise
	h.open("section", "class", "rounded-2xl border border-slate-800 bg-slate-900/70 p-5")
	h.el("h2", T(loc, "detail.raise.title"), "class", "text-lg font-semibold")
	h.open("dl", "class", "mt-4 grid grid-cols-2 gap-4 text-sm md:grid-cols-3")
	for _, row := range []struct{ key, value string }{
		{"detail.raise.currency", raise.Currency},
		{"detail.raise.hard_cap", raise.HardCap},
		{"detail.raise.soft_cap", raise.SoftCap},
		{"detail.raise.ticket_size", raise.TicketSize},
		{"detail.raise.price", raise.PricePerToken},
		{"detail.raise.token_symbol", raise.TokenSymbol},
	} {
		h.open("div")
		h.el("dt", T(loc, row.key), "class", "text-[11px] uppercase tracking-wide text-slate-500")
		h.el("dd", row.value, "class", "mt-1 font-mono text-slate-100")
		h.close("div")
	}
	h.close("dl")

	h.el("p", T(loc, "detail.raise.progress"), "class", "mt-6 text-[11px] uppercase tracking-wide text-slate-500")
	writeProgressBar(h, raise.Progress, "h-2.5", true)
	h.el("p", raise.ProgressLabel, "class", "mt-2 text-xs text-slate-300", "data-progress-label", "true")

	h.open("dl", "class", "mt-6 grid gap-3 text-xs md:grid-cols-2")
	for _, row := range []struct{ key, value string }{
		{"detail.address.token", view.ProjectTokenAddress},
		{"detail.address.raise", view.SuiRaiseAddress},
	} {
		h.open("div", "class", "rounded-lg border border-slate-800 bg-slate-950/60 p-3")
		h.el("dt", T(loc, row.key), "class", "text-slate-500")
		h.el("dd", row.value, "class", "mt-1 break-all font-mono text-slate-200")
		h.close("div")
	}
	h.close("dl")
	h.close("section")
}

func writeInfoTabs(h *html, view DetailView, loc Localizer) {
	h.open("section", "class", "rounded-2xl border border-slate-800 bg-slate-900/70 p-5")
	writeTabStrip(h, infoGroup, []tab{
		{id: infoAbout, label: T(loc, "detail.tabs.about")},
		{id: infoTeam, label: T(loc, "detail.tabs.team")},
		{id: infoResearch, label: T(loc, "detail.tabs.research")},
		{id: infoValueCapture, label: T(loc, "detail.tabs.value_capture")},
		{id: infoRoadmap, label: T(loc, "detail.tabs.roadmap")},
	}, infoAbout)

	openTabPanel(h, infoGroup, infoAbout, infoAbout)
	h.el("h3", T(loc, "detail.about.title"), "class", "text-sm font-semibold")
	h.el("p", view.Description, "class", "mt-2 text-sm text-slate-300")
	h.el("h4", T(loc, "detail.about.key_details"), "class", "mt-5 text-xs font-semibold uppercase tracking-wide text-slate-400")
	h.open("ul", "class", "mt-2 space-y-1 text-sm text-slate-300")
	for _, row := range []struct{ key, value string }{
		{"detail.about.status", view.StatusLabel},
		{"detail.about.token", view.Raise.TokenSymbol},
		{"detail.about.raise_currency", view.Raise.Currency},
	} {
		h.open("li")
		h.el("span", T(loc, row.key)+": ", "class", "text-slate-500")
		h.text(row.value)
		h.close("li")
	}
	h.close("ul")
	h.el("h4", T(loc, "detail.market.title"), "class", "mt-5 text-xs font-semibold uppercase tracking-wide text-slate-400")
	h.open("div", "class", "mt-2 grid gap-3 md:grid-cols-3")
	for _, row := range []struct{ key, value string }{
		{"detail.market.tam", view.Market.TAM},
		{"detail.market.per_patient", view.Market.PerPatientRevenue},
		{"detail.market.reach", view.Market.PatientReach},
	} {
		h.open("div", "class", "rounded-xl border border-slate-800 bg-slate-950/60 p-4")
		h.el("p", T(loc, row.key), "class", "text-[11px] text-slate-500")
		h.el("p", row.value, "class", "mt-1 text-lg font-semibold text-slate-100")
		h.close("div")
	}
	h.close("div")
	h.close("div")

	openTabPanel(h, infoGroup, infoTeam, infoAbout)
	h.el("p", T(loc, "detail.team.placeholder"), "class", "text-sm text-slate-400")
	h.close("div")

	openTabPanel(h, infoGroup, infoResearch, infoAbout)
	h.el("p", T(loc, "detail.research.placeholder"), "class", "text-sm text-slate-400")
	h.el("h4", T(loc, "detail.research.approach_title"), "class", "mt-4 text-xs font-semibold uppercase tracking-wide text-slate-400")
	h.el("p", T(loc, "detail.research.approach_body"), "class", "mt-1 text-sm text-slate-400")
	h.close("div")

	openTabPanel(h, infoGroup, infoValueCapture, infoAbout)
	h.open("ul", "class", "list-disc space-y-1 pl-5 text-sm text-slate-300")
	for _, key := range []string{"detail.value_capture.utility", "detail.value_capture.licensing", "detail.value_capture.community"} {
		h.el("li", T(loc, key))
	}
	h.close("ul")
	h.close("div")

	openTabPanel(h, infoGroup, infoRoadmap, infoAbout)
	h.open("ol", "class", "space-y-1 text-sm text-slate-300")
	for idx := 1; idx <= roadmapMilestones; idx++ {
		h.el("li", T(loc, "detail.roadmap.milestone", idx))
	}
	h.close("ol")
	h.close("div")
	h.close("section")
}
