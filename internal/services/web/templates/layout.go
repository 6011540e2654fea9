package templates

import (
	"github.com/a-h/templ"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

const (
	htmxScriptURL     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindScriptURL = "https://cdn.tailwindcss.com"
)

// Layout renders the document shell around the page body passed as templ
// children.
func Layout(page PageContext) templ.Component {
	return component(func(h *html) {
		lang := page.Lang
		if lang == "" {
			lang = "en"
		}
		h.raw("<!doctype html>")
		h.open("html", "lang", lang, "class", "dark")
		h.open("head")
		h.void("meta", "charset", "utf-8")
		h.void("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
		h.void("meta", "name", "description", "content", T(page.Loc, "layout.meta_description"))
		h.el("title", pageTitle(page.Loc, page.Title))
		h.raw(`<script src="`, tailwindScriptURL, `"></script>`)
		h.raw(`<script src="`, htmxScriptURL, `" defer></script>`)
		h.void("link", "rel", "stylesheet", "href", routepath.StaticFile("app.css"))
		h.raw(`<script src="`, templ.EscapeString(routepath.StaticFile("app.js")), `" defer></script>`)
		h.close("head")
		h.open("body", "class", "min-h-screen bg-[#0d1426] text-slate-50 antialiased", "hx-headers", `{"X-Requested-With":"htmx"}`)
		writeHeader(h, page)
		h.open("main", "class", "mx-auto max-w-7xl px-4 py-6", "id", "main")
		h.children()
		h.close("main")
		writeFooter(h, page)
		h.component(toastRegion(page.Toast))
		h.close("body")
		h.close("html")
	})
}

func writeHeader(h *html, page PageContext) {
	loc := page.Loc
	h.open("header", "class", "sticky top-0 z-40 border-b border-slate-800/80 bg-[#0d1426]/90 backdrop-blur")
	h.open("nav", "class", "mx-auto flex max-w-7xl items-center justify-between gap-4 px-4 py-3")
	h.el("a", T(loc, "layout.brand"), "href", routepath.Root, "class", "text-sm font-semibold tracking-wide text-slate-50")

	h.open("ul", "class", "hidden items-center gap-6 text-xs text-slate-300 md:flex")
	for _, link := range []struct{ key, href string }{
		{"layout.nav.launchpad", routepath.Launches},
		{"layout.nav.shop", routepath.Shop},
		{"layout.nav.docs", routepath.Docs},
		{"layout.nav.blog", routepath.Blog},
	} {
		class := "hover:text-cyan-300"
		if navActive(page.CurrentPath, link.href) {
			class = "text-cyan-300"
		}
		h.open("li")
		h.el("a", T(loc, link.key), "href", link.href, "class", class)
		h.close("li")
	}
	h.close("ul")

	writeWalletControl(h, page)
	h.close("nav")
	h.close("header")
}

func writeWalletControl(h *html, page PageContext) {
	loc := page.Loc
	if page.Wallet.Connected() {
		h.open("form", "method", "post", "action", routepath.WalletDisconnect, "class", "flex items-center gap-2", "data-wallet-form", "disconnect")
		h.el("span", page.Wallet.Short, "class", "font-mono text-xs text-sky-300", "title", page.Wallet.Address, "data-wallet-address", page.Wallet.Address)
		h.el("button", T(loc, "wallet.disconnect"), "type", "submit", "class", "rounded-full border border-slate-600 px-3 py-1 text-[11px] font-semibold uppercase text-slate-100 hover:bg-slate-800")
		h.close("form")
		return
	}
	h.open("form", "method", "post", "action", routepath.WalletConnect, "class", "flex items-center gap-2", "data-wallet-form", "connect")
	h.void("input", "type", "text", "name", "address", "required", "", "autocomplete", "off", "spellcheck", "false",
		"placeholder", T(loc, "wallet.address_placeholder"), "aria-label", T(loc, "wallet.address_label"),
		"class", "h-8 w-40 rounded-full border border-slate-700 bg-slate-950/80 px-3 font-mono text-[11px] text-slate-200 outline-none focus:border-sky-500/60")
	h.el("button", T(loc, "wallet.connect"), "type", "submit", "class", "rounded-full bg-sky-500 px-3 py-1 text-[11px] font-semibold uppercase text-slate-950 hover:bg-sky-400")
	h.close("form")
}

func writeFooter(h *html, page PageContext) {
	h.open("footer", "class", "border-t border-slate-800/80 py-8 text-center text-xs text-slate-500")
	h.el("p", T(page.Loc, "layout.footer"))
	h.close("footer")
}
