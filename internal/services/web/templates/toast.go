package templates

import "github.com/a-h/templ"

// ToastRegionID is the element toasts are swapped into.
const ToastRegionID = "toast-region"

// Toast is a transient notice shown in the corner of the page.
type Toast struct {
	Title       string
	Description string
	Destructive bool
}

// NewToast resolves a toast from a notice key: the title lives at
// key+".title" and the description at key+".description".
func NewToast(loc Localizer, key string, destructive bool) Toast {
	return Toast{
		Title:       T(loc, key+".title"),
		Description: T(loc, key+".description"),
		Destructive: destructive,
	}
}

// ToastOOB renders a toast as an out-of-band swap so it can ride along with
// any fragment response.
func ToastOOB(toast Toast) templ.Component {
	return component(func(h *html) {
		h.open("div", "id", ToastRegionID, "hx-swap-oob", "innerHTML", "class", "toast-region", "aria-live", "polite")
		writeToast(h, toast)
		h.close("div")
	})
}

func toastRegion(toast *Toast) templ.Component {
	return component(func(h *html) {
		h.open("div", "id", ToastRegionID, "class", "toast-region", "aria-live", "polite")
		if toast != nil {
			writeToast(h, *toast)
		}
		h.close("div")
	})
}

func writeToast(h *html, toast Toast) {
	class := "toast rounded-xl border border-slate-700 bg-slate-900/95 px-4 py-3 text-sm text-slate-100 shadow-lg"
	if toast.Destructive {
		class = "toast toast-destructive rounded-xl border border-rose-500/40 bg-rose-950/95 px-4 py-3 text-sm text-rose-100 shadow-lg"
	}
	h.open("div", "class", class, "role", "status", "data-toast", "")
	h.el("p", toast.Title, "class", "font-semibold")
	if toast.Description != "" {
		h.el("p", toast.Description, "class", "mt-1 text-xs opacity-80")
	}
	h.close("div")
}
