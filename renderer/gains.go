package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capex"
)

// GainsMarkdown renders the negotiated savings report.
func GainsMarkdown(r *capex.GainsReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Negotiated Savings\n\n")
	fmt.Fprintln(&b, "| Project | Allocated | Ordered | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, pg := range r.Projects {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			cell(pg.Project.Name),
			pg.Project.AllocatedBudget.Kilo(),
			pg.Project.TotalOrdered.Kilo(),
			pg.Gain.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** |\n",
		r.TotalAllocated.Kilo(),
		r.TotalOrdered.Kilo(),
		r.TotalGain.SignedString(),
	)
	return b.String()
}
