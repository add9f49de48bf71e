package renderer

import "github.com/etnz/capex"

// RenderPV renders an acceptance report as a printable markdown document.
// The document itself is in French, like the signed paper it replaces.
func RenderPV(pv *capex.PV) string {
	partials := map[string]string{
		"pv_items": "pv_items.md",
	}
	return renderTemplate("pv", "pv.md", partials, pv)
}
