package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/capex"
)

// BudgetMarkdown renders the per-category budget report, amounts in MDH.
func BudgetMarkdown(r *capex.BudgetReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Budget by Category\n\n")
	fmt.Fprintln(&b, "| Category | Allocated | Consumed | Engaged | Remaining | Consumption |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, cat := range r.Categories {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			cell(cat.Name),
			cat.Allocated.Mega(),
			cat.Consumed.Mega(),
			cat.Engaged.Mega(),
			cat.Remaining.Mega(),
			cat.Consumption,
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** | **%s** | **%s** |\n",
		r.TotalAllocated.Mega(),
		r.TotalConsumed.Mega(),
		r.TotalEngaged.Mega(),
		r.TotalRemaining.Mega(),
		r.TotalConsumed.Ratio(r.TotalAllocated),
	)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Engaged Projects\n")
		printed := false
		for _, cat := range r.Categories {
			if len(cat.EngagedProjects) == 0 {
				continue
			}
			printed = true
			fmt.Fprintf(w, "\n### %s\n\n", cell(cat.Name))
			for _, p := range cat.EngagedProjects {
				fmt.Fprintf(w, "- [%d] %s: %s (%s)\n", p.RowIndex, cell(p.Name), p.AllocatedBudget.Kilo(), cell(p.RequestNumber))
			}
		}
		return printed
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Unknown Categories\n\n")
		fmt.Fprint(w, "These categories are referenced by projects but have no budget envelope; their amounts are not counted above.\n\n")
		for _, name := range r.Orphans {
			fmt.Fprintf(w, "- %s\n", cell(name))
		}
		return len(r.Orphans) > 0
	})

	return b.String()
}
