package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/capex"
)

// ForecastMarkdown renders the monthly forecast totals, all twelve months.
func ForecastMarkdown(forecasts []capex.MonthForecast) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Monthly Forecast\n\n")
	fmt.Fprintln(&b, "| Month | Planned |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, f := range forecasts {
		fmt.Fprintf(&b, "| %s | %s |\n", capex.MonthNames[f.Month], f.Total.Kilo())
	}
	return b.String()
}

// AttentionMarkdown renders the two watch lists: budgets without an order
// and orders without a delivery plan. Empty lists render nothing.
func AttentionMarkdown(awaitingPO []capex.Project, awaitingForecast []capex.ProjectWithDetails) string {
	var b strings.Builder

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "# Awaiting Purchase Order (%d)\n\n", len(awaitingPO))
		for _, p := range awaitingPO {
			fmt.Fprintf(w, "- [%d] %s: %s\n", p.RowIndex, cell(p.Name), p.AllocatedBudget.Kilo())
		}
		return len(awaitingPO) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if b.Len() > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# Awaiting Forecast (%d)\n\n", len(awaitingForecast))
		for _, p := range awaitingForecast {
			fmt.Fprintf(w, "- [%d] %s: %s, %d lines\n", p.RowIndex, cell(p.Name), p.PONumber, len(p.Details))
		}
		return len(awaitingForecast) > 0
	})

	if b.Len() == 0 {
		return "Nothing needs attention.\n"
	}
	return b.String()
}
