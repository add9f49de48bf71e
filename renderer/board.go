package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capex"
)

// BoardMarkdown renders the Kanban board, one section per pipeline stage.
// Empty stages still show, so the pipeline shape stays visible.
func BoardMarkdown(b *capex.Board) string {
	var sb strings.Builder

	fmt.Fprint(&sb, "# Board\n")
	for _, stage := range capex.Stages {
		col := b.ByStage(stage)
		fmt.Fprintf(&sb, "\n## %s (%d)\n", stage, len(col))
		if len(col) == 0 {
			continue
		}
		fmt.Fprintln(&sb)
		for _, p := range col {
			po := p.PONumber
			if po == "" {
				po = "no PO"
			}
			fmt.Fprintf(&sb, "- [%d] %s (%s, %s)\n", p.RowIndex, cell(p.Name), cell(po), p.AllocatedBudget.Kilo())
		}
	}
	return sb.String()
}
