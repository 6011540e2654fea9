package templates

import (
	"github.com/a-h/templ"
	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

const heroImageURL = "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&w=1200&q=80"

// ProjectCard is one launch in a card grid.
type ProjectCard struct {
	Href          string
	Name          string
	Symbol        string
	Description   string
	ProjectType   string
	ImageURL      string
	StatusLabel   string
	StatusClass   string
	Progress      float64
	ProgressLabel string
}

// NewProjectCard maps a project to its card. Cards link by id, falling back
// to the slug for records without one.
func NewProjectCard(project launchpad.Project) ProjectCard {
	token := project.ID
	if token == "" {
		token = project.Slug
	}
	return ProjectCard{
		Href:          routepath.Launch(token),
		Name:          project.Name,
		Symbol:        project.DisplaySymbol(),
		Description:   project.Description,
		ProjectType:   project.ProjectType,
		ImageURL:      project.HeroImageURL,
		StatusLabel:   launchpad.FormatStatus(project.Status),
		StatusClass:   launchpad.StatusClass(project.Status),
		Progress:      launchpad.ClampProgress(project.ProgressPercent),
		ProgressLabel: launchpad.ProgressLabel(project.ProgressPercent),
	}
}

// NewProjectCards maps projects in order.
func NewProjectCards(projects []launchpad.Project) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for _, project := range projects {
		cards = append(cards, NewProjectCard(project))
	}
	return cards
}

// HomeView is the landing page content.
type HomeView struct {
	Projects []ProjectCard
}

// LaunchesView is the full launch index.
type LaunchesView struct {
	Projects []ProjectCard
}

var missionMilestones = []struct{ quarter, key string }{
	{"Q1 2026", "home.mission.q1_2026"},
	{"Q2 2026", "home.mission.q2_2026"},
	{"Q3 2026", "home.mission.q3_2026"},
	{"Q4 2026", "home.mission.q4_2026"},
	{"Q1 2027", "home.mission.q1_2027"},
	{"Q2 2027", "home.mission.q2_2027"},
	{"Q3 2027", "home.mission.q3_2027"},
	{"Q4 2027", "home.mission.q4_2027"},
	{"Q1 2028", "home.mission.q1_2028"},
}

const recentUpdateCount = 3

// HomePage renders the landing page body.
func HomePage(view HomeView, loc Localizer) templ.Component {
	return component(func(h *html) {
		writeHero(h, loc)
		writeAbout(h, loc)

		h.open("section", "class", "mt-16", "aria-labelledby", "recent-projects")
		h.open("div", "class", "flex items-end justify-between")
		h.el("h2", T(loc, "home.recent.title"), "id", "recent-projects", "class", "text-2xl font-semibold")
		h.el("a", T(loc, "home.recent.more"), "href", routepath.Blog, "class", "text-sm text-cyan-300 hover:underline")
		h.close("div")
		writeCardGrid(h, view.Projects, loc)
		h.close("section")

		writeMission(h, loc)
		writeNewsletter(h, loc)
		writeUpdates(h, loc)
		writeCallToAction(h, loc)
	})
}

// LaunchesPage renders the launch index body.
func LaunchesPage(view LaunchesView, loc Localizer) templ.Component {
	return component(func(h *html) {
		h.open("section", "class", "py-4")
		h.el("h1", T(loc, "launches.title"), "class", "text-3xl font-semibold")
		h.el("p", T(loc, "launches.subtitle"), "class", "mt-2 text-sm text-slate-400")
		writeCardGrid(h, view.Projects, loc)
		h.close("section")
	})
}

func writeHero(h *html, loc Localizer) {
	h.open("section", "class", "grid items-center gap-10 py-10 md:grid-cols-2")
	h.open("div")
	h.el("span", T(loc, "home.hero.badge"), "class", "inline-flex rounded-full border border-cyan-400/40 bg-cyan-400/10 px-3 py-1 text-[11px] font-semibold tracking-widest text-cyan-300")
	h.el("h1", T(loc, "home.hero.title"), "class", "mt-5 text-4xl font-bold leading-tight md:text-5xl")
	h.el("p", T(loc, "home.hero.subtitle"), "class", "mt-4 max-w-xl text-base text-slate-300")
	h.open("div", "class", "mt-8 flex flex-wrap gap-3")
	h.el("a", T(loc, "home.hero.explore"), "href", routepath.Launches, "class", "rounded-full bg-cyan-400 px-5 py-2 text-sm font-semibold text-slate-950 hover:bg-cyan-300")
	h.el("a", T(loc, "home.hero.shop"), "href", routepath.Shop, "class", "rounded-full border border-slate-600 px-5 py-2 text-sm font-semibold text-slate-100 hover:bg-slate-800")
	h.close("div")
	h.close("div")
	h.open("div", "class", "overflow-hidden rounded-3xl border border-slate-800")
	h.void("img", "src", heroImageURL, "alt", T(loc, "home.hero.image_alt"), "class", "h-80 w-full object-cover", "loading", "eager")
	h.close("div")
	h.close("section")
}

func writeAbout(h *html, loc Localizer) {
	h.open("section", "class", "mt-16 rounded-3xl border border-slate-800 bg-slate-900/60 p-8")
	h.el("h2", T(loc, "home.about.title"), "class", "text-2xl font-semibold")
	h.el("p", T(loc, "home.about.body"), "class", "mt-4 text-sm leading-relaxed text-slate-300")
	h.el("p", T(loc, "home.about.collaboration"), "class", "mt-3 text-sm leading-relaxed text-slate-300")
	h.el("a", T(loc, "home.about.docs"), "href", routepath.Docs, "class", "mt-6 inline-flex text-sm font-semibold text-cyan-300 hover:underline")
	h.close("section")
}

func writeCardGrid(h *html, cards []ProjectCard, loc Localizer) {
	if len(cards) == 0 {
		h.el("p", T(loc, "launches.empty"), "class", "mt-6 text-sm text-slate-400", "data-empty-launches", "true")
		return
	}
	h.open("ul", "class", "mt-6 grid gap-6 sm:grid-cols-2 lg:grid-cols-3")
	for _, card := range cards {
		h.open("li")
		h.open("a", "href", card.Href, "class", "group block overflow-hidden rounded-2xl border border-slate-800 bg-slate-900/70 hover:border-cyan-400/50", "data-project-card", card.Href)
		if card.ImageURL != "" {
			h.void("img", "src", safeURL(card.ImageURL), "alt", card.Name, "class", "h-40 w-full object-cover", "loading", "lazy")
		} else {
			h.raw(`<div class="h-40 w-full bg-gradient-to-br from-sky-900 to-slate-900"></div>`)
		}
		h.open("div", "class", "p-5")
		h.open("div", "class", "flex items-center justify-between gap-2")
		h.el("span", card.ProjectType, "class", "text-[11px] uppercase tracking-wide text-slate-400")
		h.el("span", card.StatusLabel, "class", "rounded-full px-2 py-0.5 text-[10px] font-semibold uppercase "+card.StatusClass)
		h.close("div")
		h.open("h3", "class", "mt-2 text-lg font-semibold group-hover:text-cyan-300")
		h.text(card.Name)
		if card.Symbol != "" {
			h.el("span", " · "+card.Symbol, "class", "text-sm font-normal text-slate-400")
		}
		h.close("h3")
		if card.Description != "" {
			h.el("p", card.Description, "class", "mt-2 line-clamp-2 text-sm text-slate-400")
		}
		writeProgressBar(h, card.Progress, "h-1.5", false)
		h.el("p", card.ProgressLabel, "class", "mt-2 text-xs text-slate-300")
		h.close("div")
		h.close("a")
		h.close("li")
	}
	h.close("ul")
}

func writeMission(h *html, loc Localizer) {
	h.open("section", "class", "mt-16")
	h.el("h2", T(loc, "home.mission.title"), "class", "text-2xl font-semibold")
	h.el("p", T(loc, "home.mission.body"), "class", "mt-3 max-w-2xl text-sm text-slate-300")
	h.open("ol", "class", "mt-8 grid gap-4 sm:grid-cols-3")
	for _, milestone := range missionMilestones {
		h.open("li", "class", "rounded-xl border border-slate-800 bg-slate-900/60 p-4")
		h.el("p", milestone.quarter, "class", "text-xs font-semibold text-cyan-300")
		h.el("p", T(loc, milestone.key), "class", "mt-1 text-sm text-slate-200")
		h.close("li")
	}
	h.close("ol")
	h.close("section")
}

func writeNewsletter(h *html, loc Localizer) {
	h.open("section", "class", "mt-16 rounded-3xl border border-slate-800 bg-gradient-to-r from-sky-950 to-slate-900 p-8")
	h.el("h2", T(loc, "home.newsletter.title"), "class", "text-2xl font-semibold")
	h.el("p", T(loc, "home.newsletter.body"), "class", "mt-2 text-sm text-slate-300")
	h.open("form", "class", "mt-6 flex max-w-md gap-2", "data-newsletter", "true")
	h.void("input", "type", "email", "name", "email", "placeholder", T(loc, "home.newsletter.placeholder"), "aria-label", T(loc, "home.newsletter.placeholder"),
		"class", "h-10 flex-1 rounded-full border border-slate-700 bg-slate-950/80 px-4 text-sm outline-none focus:border-cyan-400/60")
	h.el("button", T(loc, "home.newsletter.submit"), "type", "submit", "class", "rounded-full bg-cyan-400 px-5 text-sm font-semibold text-slate-950")
	h.close("form")
	h.close("section")
}

func writeUpdates(h *html, loc Localizer) {
	h.open("section", "class", "mt-16")
	h.open("div", "class", "flex items-end justify-between")
	h.el("h2", T(loc, "home.updates.title"), "class", "text-2xl font-semibold")
	h.el("a", T(loc, "home.updates.more"), "href", routepath.Blog, "class", "text-sm text-cyan-300 hover:underline")
	h.close("div")
	h.open("ul", "class", "mt-6 grid gap-4 sm:grid-cols-3")
	for idx := 1; idx <= recentUpdateCount; idx++ {
		h.open("li", "class", "rounded-xl border border-slate-800 bg-slate-900/60 p-5")
		h.el("h3", T(loc, "home.updates.item_title", idx), "class", "text-sm font-semibold")
		h.el("p", T(loc, "home.updates.item_body"), "class", "mt-2 text-xs text-slate-400")
		h.close("li")
	}
	h.close("ul")
	h.close("section")
}

func writeCallToAction(h *html, loc Localizer) {
	h.open("section", "class", "mt-16 rounded-3xl border border-cyan-400/30 bg-cyan-400/5 p-10 text-center")
	h.el("h2", T(loc, "home.cta.title"), "class", "text-2xl font-semibold")
	h.el("p", T(loc, "home.cta.body"), "class", "mt-2 text-sm text-slate-300")
	h.el("a", T(loc, "home.cta.apply"), "href", routepath.Apply, "class", "mt-6 inline-flex rounded-full bg-cyan-400 px-6 py-2 text-sm font-semibold text-slate-950")
	h.close("section")
}

// writeProgressBar draws the funding bar; percent is already clamped.
// writeProgressBar renders a filled track. With marker set, a thin end
// marker is drawn inside the track at the fill edge.
func writeProgressBar(h *html, percent float64, height string, marker bool) {
	h.open("div", "class", "relative mt-4 w-full overflow-hidden rounded-full bg-[#1f2933] "+height, "role", "progressbar",
		"aria-valuemin", "0", "aria-valuemax", "100", "aria-valuenow", ftoa(percent))
	h.raw(`<div class="h-full rounded-full bg-[#38bdf8]" style="width: `, ftoa(percent), `%" data-progress-fill></div>`)
	if marker {
		h.raw(`<span class="absolute inset-y-0" style="left: calc(`, ftoa(percent), `% - 1px); width: 2px; background: rgba(255,255,255,0.7)" data-progress-marker></span>`)
	}
	h.close("div")
}
