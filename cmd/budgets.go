package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/capex"
	"github.com/etnz/capex/renderer"
)

// budgetsCmd holds the flags for the 'budgets' subcommand.
type budgetsCmd struct {
	marker string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "budget consumption per category" }
func (*budgetsCmd) Usage() string {
	return `cpx budgets [-marker <text>]

  Aggregates allocated, consumed, engaged and remaining budget per category.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.marker, "marker", capex.DefaultPolicy.VendorMarker, "Vendor substring flagging internally-managed projects")
}

func (c *budgetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := loadView(ctx)
	if err != nil {
		return fail(err)
	}
	pol := capex.DefaultPolicy
	pol.VendorMarker = c.marker
	printMarkdown(renderer.BudgetMarkdown(v.BudgetReport(pol)))
	return subcommands.ExitSuccess
}
