package templates

// tab is one entry of a server-rendered tab strip; the static script
// switches panels by data-tab-target.
type tab struct {
	id    string
	label string
}

func writeTabStrip(h *html, group string, tabs []tab, active string) {
	h.open("div", "class", "flex flex-wrap gap-1 border-b border-slate-800", "role", "tablist", "data-tab-group", group)
	for _, item := range tabs {
		selected := item.id == active
		class := "rounded-t-lg px-3 py-2 text-xs text-slate-400 hover:text-slate-100"
		if selected {
			class = "rounded-t-lg border-b-2 border-sky-400 px-3 py-2 text-xs font-semibold text-sky-200"
		}
		ariaSelected := "false"
		if selected {
			ariaSelected = "true"
		}
		h.el("button", item.label, "type", "button", "role", "tab", "id", group+"-tab-"+item.id,
			"aria-controls", group+"-panel-"+item.id, "aria-selected", ariaSelected,
			"data-tab-target", group+"-panel-"+item.id, "class", class)
	}
	h.close("div")
}

func openTabPanel(h *html, group string, id string, active string) {
	h.open("div", "id", group+"-panel-"+id, "role", "tabpanel", "aria-labelledby", group+"-tab-"+id,
		"data-tab-panel", group, "class", "pt-4", "hidden?", flag(id != active))
}
