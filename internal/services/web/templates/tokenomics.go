package templates

import (
	"github.com/a-h/templ"
	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/dustin/go-humanize"
)

const (
	tokenomicsGroup   = "tokenomics"
	tokenomicsPie     = "distribution"
	tokenomicsRelease = "release"
)

// releaseGradients pairs each release layer gradient with its colour.
var releaseGradients = []struct{ id, color string }{
	{"vebioGradient", "#a855f7"},
	{"treasuryGradient", "#6b7280"},
	{"ignitionVestingGradient", "#22c55e"},
	{"concentratedGradient", "#2563eb"},
	{"wideLiquidityGradient", "#3b82f6"},
	{"ignitionLiquidGradient", "#60a5fa"},
	{"bioProtocolGradient", "#1e40af"},
}

// TokenomicsPanel renders the distribution pie and the release chart under
// two tabs.
func TokenomicsPanel(loc Localizer) templ.Component {
	return component(func(h *html) {
		h.open("section", "class", "rounded-2xl border border-slate-800 bg-slate-900/70 p-5", "data-tokenomics", "true")
		h.el("h2", T(loc, "detail.tokenomics.title"), "class", "text-lg font-semibold")
		writeTabStrip(h, tokenomicsGroup, []tab{
			{id: tokenomicsPie, label: T(loc, "detail.tokenomics.distribution")},
			{id: tokenomicsRelease, label: T(loc, "detail.tokenomics.release")},
		}, tokenomicsPie)

		openTabPanel(h, tokenomicsGroup, tokenomicsPie, tokenomicsPie)
		h.open("div", "class", "grid items-center gap-6 md:grid-cols-2")
		writeDistributionPie(h)
		writeDistributionLegend(h, loc)
		h.close("div")
		h.close("div")

		openTabPanel(h, tokenomicsGroup, tokenomicsRelease, tokenomicsPie)
		writeReleaseChart(h, loc)
		writeReleaseLegend(h)
		h.close("div")
		h.close("section")
	})
}

func writeDistributionPie(h *html) {
	size := ftoa(launchpad.PieSize)
	h.raw(`<svg viewBox="0 0 `, size, ` `, size, `" class="mx-auto h-56 w-56" role="img" data-chart="distribution">`)
	h.raw(`<defs><filter id="pieGlow" x="-20%" y="-20%" width="140%" height="140%">`,
		`<feGaussianBlur stdDeviation="2" result="blur"></feGaussianBlur>`,
		`<feMerge><feMergeNode in="blur"></feMergeNode><feMergeNode in="SourceGraphic"></feMergeNode></feMerge>`,
		`</filter></defs>`)
	for _, slice := range launchpad.PieSlices(launchpad.Distribution, launchpad.PieSize, launchpad.PieRadius) {
		h.open("path", "d", slice.Path, "fill", slice.Color, "stroke", "#0f172a", "stroke-width", "2", "filter", "url(#pieGlow)")
		h.el("title", slice.Name+" "+launchpad.FormatPercent(slice.Percentage)+"%")
		h.close("path")
	}
	h.raw(`</svg>`)
}

func writeDistributionLegend(h *html, loc Localizer) {
	h.open("div")
	h.open("ul", "class", "space-y-2 text-sm")
	for _, allocation := range launchpad.Distribution {
		h.open("li", "class", "flex items-center justify-between gap-3")
		h.open("span", "class", "flex items-center gap-2 text-slate-300")
		h.raw(`<span class="inline-block h-3 w-3 rounded-sm" style="background-color: `, templ.EscapeString(allocation.Color), `"></span>`)
		h.text(allocation.Name)
		h.close("span")
		h.el("span", launchpad.FormatPercent(allocation.Percentage)+"%", "class", "font-mono text-slate-100")
		h.close("li")
	}
	h.close("ul")
	h.open("p", "class", "mt-4 text-xs text-slate-400")
	h.text(T(loc, "detail.tokenomics.total_supply") + ": ")
	h.el("span", humanize.Comma(launchpad.TotalSupply), "class", "font-mono text-slate-100", "data-total-supply", "true")
	h.close("p")
	h.close("div")
}

func writeReleaseChart(h *html, loc Localizer) {
	width := ftoa(launchpad.ReleaseWidth)
	height := ftoa(launchpad.ReleaseHeight)
	left := ftoa(launchpad.ReleasePaddingLeft)
	right := ftoa(launchpad.ReleaseWidth - launchpad.ReleasePaddingRight)
	bottom := float64(launchpad.ReleaseHeight - launchpad.ReleasePaddingBottom)

	h.raw(`<svg viewBox="0 0 `, width, ` `, height, `" class="w-full" role="img" data-chart="release">`)
	h.raw(`<defs>`)
	for _, gradient := range releaseGradients {
		h.raw(`<linearGradient id="`, gradient.id, `" x1="0" y1="0" x2="0" y2="1">`,
			`<stop offset="0%" stop-color="`, gradient.color, `" stop-opacity="0.8"></stop>`,
			`<stop offset="100%" stop-color="`, gradient.color, `" stop-opacity="0.2"></stop>`,
			`</linearGradient>`)
	}
	h.raw(`</defs>`)

	for _, tick := range launchpad.ReleaseTicks() {
		y := ftoa(tick.Y)
		h.void("line", "x1", left, "x2", right, "y1", y, "y2", y, "stroke", "#334155", "stroke-dasharray", "2,2")
		h.close("line")
		h.el("text", tick.Label, "x", ftoa(launchpad.ReleasePaddingLeft-8), "y", ftoa(tick.Y+3), "text-anchor", "end", "fill", "#94a3b8", "font-size", "10")
	}
	for _, layer := range launchpad.ReleaseLayers() {
		h.open("path", "d", layer.Path, "fill", "url(#"+layer.GradientID+")", "stroke", layer.Color, "stroke-width", "1")
		h.el("title", layer.Name)
		h.close("path")
	}
	h.el("text", T(loc, "detail.tokenomics.unlocked_axis"), "x", "12", "y", ftoa(launchpad.ReleaseHeight/2),
		"transform", "rotate(-90 12 "+ftoa(launchpad.ReleaseHeight/2)+")", "text-anchor", "middle", "fill", "#94a3b8", "font-size", "10")
	h.el("text", T(loc, "detail.tokenomics.start_label"), "x", left, "y", ftoa(bottom+20), "fill", "#94a3b8", "font-size", "10")
	h.el("text", T(loc, "detail.tokenomics.end_label"), "x", right, "y", ftoa(bottom+20), "text-anchor", "end", "fill", "#94a3b8", "font-size", "10")
	h.raw(`</svg>`)
}

func writeReleaseLegend(h *html) {
	h.open("ul", "class", "mt-4 grid gap-2 text-xs sm:grid-cols-2")
	for _, series := range launchpad.ReleaseSchedule {
		h.open("li", "class", "flex items-center gap-2 text-slate-300")
		h.raw(`<span class="inline-block h-3 w-3 rounded-sm" style="background-color: `, templ.EscapeString(series.Color), `"></span>`)
		h.text(series.Name)
		h.close("li")
	}
	h.close("ul")
}
