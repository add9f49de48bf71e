package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/capex"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	row      int
	name     string
	category string
	budget   float64
	year     string
	vendor   string
	request  string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update a project" }
func (*updateCmd) Usage() string {
	return `cpx update -row <n> [-name <name>] [-category <name>] [-budget <MAD>] [-year <year>] [-vendor <name>] [-da <number>]

  Rewrites the project row, changing only the given fields. Columns this
  tool does not know about are preserved.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Row index of the project")
	f.StringVar(&c.name, "name", "", "New project name")
	f.StringVar(&c.category, "category", "", "New budget category")
	f.Float64Var(&c.budget, "budget", -1, "New allocated budget in MAD")
	f.StringVar(&c.year, "year", "", "New budget year")
	f.StringVar(&c.vendor, "vendor", "", "New vendor name")
	f.StringVar(&c.request, "da", "", "New request number (numDA)")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == 0 {
		return fail(fmt.Errorf("-row is required"))
	}
	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}
	found, err := v.Find(c.row)
	if err != nil {
		return fail(err)
	}

	p := found.Project
	if c.name != "" {
		p.Name = c.name
	}
	if c.category != "" {
		p.BudgetCategory = c.category
	}
	if c.budget >= 0 {
		p.AllocatedBudget = capex.MAD(c.budget)
	}
	if c.year != "" {
		p.BudgetYear = c.year
	}
	if c.vendor != "" {
		p.Vendor = c.vendor
	}
	if c.request != "" {
		p.RequestNumber = c.request
	}

	if err := v.UpdateProject(ctx, p); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
