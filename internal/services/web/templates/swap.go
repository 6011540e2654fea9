package templates

import (
	"github.com/a-h/templ"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

// SwapWidgetID is the element swap responses replace.
const SwapWidgetID = "swap-widget"

// ParticipateView is the wallet plus swap panel.
type ParticipateView struct {
	ReturnTo string
	Wallet   WalletView
	Swap     SwapView
}

// SwapView is the mocked swap box state.
type SwapView struct {
	QuoteURL   string
	ExecuteURL string
	GuardURL   string
	Connected  bool
	From       string
	To         string
	Amount     string
	Slippage   string
	Tokens     []string
	Slippages  []string
	Busy       bool
	Quote      *QuoteView
}

// QuoteView is the quote preview block.
type QuoteView struct {
	Status      string
	Route       string
	ExpectedOut string
}

// ParticipatePanel renders the participate card with wallet state and the
// swap box.
func ParticipatePanel(view ParticipateView, loc Localizer) templ.Component {
	return component(func(h *html) {
		h.open("section", "id", routepath.LaunchParticipateAnchor, "class", "rounded-2xl border border-slate-800 bg-slate-900/70 p-5", "data-participate", "true")
		h.el("h2", T(loc, "detail.participate.title"), "class", "text-sm font-semibold")
		if view.Wallet.Connected() {
			h.open("div", "class", "mt-3 flex items-center justify-between gap-2 text-xs")
			h.open("p", "class", "text-slate-300")
			h.text(T(loc, "detail.participate.connected_as") + " ")
			h.el("span", view.Wallet.Address, "class", "break-all font-mono text-sky-300")
			h.close("p")
			h.open("form", "method", "post", "action", routepath.WalletDisconnect)
			h.void("input", "type", "hidden", "name", "return_to", "value", view.ReturnTo)
			h.el("button", T(loc, "detail.participate.disconnect"), "type", "submit", "class", "rounded-full border border-slate-600 px-3 py-1 text-[11px] font-semibold text-slate-100 hover:bg-slate-800")
			h.close("form")
			h.close("div")
		} else {
			h.el("p", T(loc, "detail.participate.prompt"), "class", "mt-2 text-xs text-slate-400")
			h.open("form", "method", "post", "action", routepath.WalletConnect, "class", "mt-3 flex gap-2")
			h.void("input", "type", "hidden", "name", "return_to", "value", view.ReturnTo)
			h.void("input", "type", "text", "name", "address", "required", "", "autocomplete", "off", "spellcheck", "false",
				"placeholder", T(loc, "wallet.address_placeholder"), "aria-label", T(loc, "wallet.address_label"),
				"class", "h-9 flex-1 rounded-lg border border-slate-700 bg-slate-950/80 px-3 font-mono text-xs outline-none focus:border-sky-500/60")
			h.el("button", T(loc, "detail.participate.connect"), "type", "submit", "class", "rounded-lg bg-sky-500 px-3 text-xs font-semibold text-slate-950 hover:bg-sky-400")
			h.close("form")
		}
		h.component(SwapWidget(view.Swap, loc))
		h.close("section")
	})
}

// SwapWidget renders the swap box. Without a wallet, focusing a field or
// pressing a button asks the server to raise the wallet prompt.
func SwapWidget(view SwapView, loc Localizer) templ.Component {
	return component(func(h *html) {
		target := "#" + SwapWidgetID
		h.open("form", "id", SwapWidgetID, "method", "post", "action", view.QuoteURL,
			"class", "mt-5 rounded-xl border border-slate-800 bg-slate-950/60 p-4",
			"hx-post", view.QuoteURL, "hx-target", target, "hx-swap", "outerHTML",
			"data-busy", flag(view.Busy), "data-wallet-connected", flag(view.Connected))
		h.el("h3", T(loc, "detail.swap.title"), "class", "text-xs font-semibold uppercase tracking-wide text-slate-400")

		guard := []string{}
		if !view.Connected && view.GuardURL != "" {
			guard = []string{"hx-post", view.GuardURL, "hx-trigger", "focus", "hx-swap", "none", "hx-target", "this"}
		}

		h.open("div", "class", "mt-3 grid grid-cols-2 gap-3")
		writeTokenSelect(h, "from", T(loc, "detail.swap.from"), view.From, view.Tokens, guard)
		writeTokenSelect(h, "to", T(loc, "detail.swap.to"), view.To, view.Tokens, guard)
		h.close("div")

		h.open("label", "class", "mt-3 block text-[11px] text-slate-400")
		h.text(T(loc, "detail.swap.amount"))
		h.void("input", append([]string{"type", "text", "name", "amount", "inputmode", "decimal", "value", view.Amount, "placeholder", "0.0",
			"class", "mt-1 h-9 w-full rounded-lg border border-slate-700 bg-slate-900 px-3 text-sm text-slate-100 outline-none focus:border-sky-500/60"}, guard...)...)
		h.close("label")

		h.open("label", "class", "mt-3 block text-[11px] text-slate-400")
		h.text(T(loc, "detail.swap.slippage"))
		h.open("select", append([]string{"name", "slippage", "class", "mt-1 h-9 w-full rounded-lg border border-slate-700 bg-slate-900 px-2 text-sm"}, guard...)...)
		for _, option := range view.Slippages {
			h.open("option", "value", option, "selected?", flag(option == view.Slippage))
			h.text(option + "%")
			h.close("option")
		}
		h.close("select")
		h.close("label")

		h.open("div", "class", "mt-4 grid grid-cols-2 gap-2")
		h.el("button", T(loc, "detail.swap.get_quote"), "type", "submit", "disabled?", flag(view.Busy),
			"data-busy-label", T(loc, "detail.swap.loading"),
			"class", "rounded-lg border border-sky-500/60 py-2 text-xs font-semibold text-sky-200 hover:bg-sky-500/10 disabled:opacity-50")
		h.el("button", T(loc, "detail.swap.execute"), "type", "submit", "disabled?", flag(view.Busy),
			"formaction", view.ExecuteURL, "hx-post", view.ExecuteURL, "hx-target", target, "hx-swap", "outerHTML",
			"data-busy-label", T(loc, "detail.swap.working"),
			"class", "rounded-lg bg-sky-500 py-2 text-xs font-semibold text-slate-950 hover:bg-sky-400 disabled:opacity-50")
		h.close("div")

		writeQuote(h, view.Quote, loc)
		h.close("form")
	})
}

func writeTokenSelect(h *html, name string, label string, selected string, tokens []string, guard []string) {
	h.open("label", "class", "block text-[11px] text-slate-400")
	h.text(label)
	h.open("select", append([]string{"name", name, "class", "mt-1 h-9 w-full rounded-lg border border-slate-700 bg-slate-900 px-2 text-sm"}, guard...)...)
	for _, token := range tokens {
		h.open("option", "value", token, "selected?", flag(token == selected))
		h.text(token)
		h.close("option")
	}
	h.close("select")
	h.close("label")
}

func writeQuote(h *html, quote *QuoteView, loc Localizer) {
	h.open("div", "class", "mt-4 rounded-lg border border-dashed border-slate-700 p-3 text-xs", "data-quote", flag(quote != nil))
	if quote == nil {
		h.el("p", T(loc, "detail.swap.quote_empty"), "class", "text-slate-500")
		h.close("div")
		return
	}
	h.open("dl", "class", "grid grid-cols-2 gap-y-1 text-slate-300")
	for _, row := range []struct{ key, value string }{
		{"detail.swap.quote_status", quote.Status},
		{"detail.swap.quote_route", quote.Route},
		{"detail.swap.quote_expected", quote.ExpectedOut},
	} {
		h.el("dt", T(loc, row.key), "class", "text-slate-500")
		h.el("dd", row.value, "class", "text-right")
	}
	h.close("dl")
	h.close("div")
}
