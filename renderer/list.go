package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capex"
)

// ListMarkdown renders projects as a table, amounts in KDH.
func ListMarkdown(projects []capex.ProjectWithDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Projects (%d)\n\n", len(projects))
	fmt.Fprintln(&b, "| Row | Project | PO | Vendor | Stage | Allocated | Ordered | Year | Category |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|:---|---:|---:|:---|:---|")
	for _, p := range projects {
		po := p.PONumber
		if po == "" {
			po = "-"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			p.RowIndex,
			cell(p.Name),
			cell(po),
			cell(p.Vendor),
			cell(p.Status),
			p.AllocatedBudget.Kilo(),
			p.TotalOrdered.Kilo(),
			p.BudgetYear,
			cell(p.BudgetCategory),
		)
	}
	return b.String()
}

// ProjectMarkdown renders one project with its order lines.
func ProjectMarkdown(p capex.ProjectWithDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "- Row: %d\n", p.RowIndex)
	fmt.Fprintf(&b, "- Stage: %s\n", p.Status)
	fmt.Fprintf(&b, "- Category: %s\n", p.BudgetCategory)
	fmt.Fprintf(&b, "- Budget year: %s\n", p.BudgetYear)
	fmt.Fprintf(&b, "- Allocated: %s\n", p.AllocatedBudget)
	if p.PONumber == "" {
		fmt.Fprintln(&b, "- Purchase order: none")
		return b.String()
	}
	fmt.Fprintf(&b, "- Purchase order: %s (%s, %s)\n", p.PONumber, cell(p.Vendor), p.OrderDate)
	fmt.Fprintf(&b, "- Ordered: %s\n", p.TotalOrdered)
	if p.RequestNumber != "" {
		fmt.Fprintf(&b, "- Request: %s\n", p.RequestNumber)
	}

	if len(p.Details) == 0 {
		return b.String()
	}
	fmt.Fprint(&b, "\n## Order Lines\n\n")
	fmt.Fprintln(&b, "| Line | Description | Qty | Unit Price | Total | Received |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	for _, d := range p.Details {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			cell(d.LineID),
			cell(d.Description),
			d.Quantity,
			d.UnitPrice,
			d.LineTotal,
			d.QuantityReceived,
		)
	}
	return b.String()
}
