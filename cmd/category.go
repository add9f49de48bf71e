package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/capex"
)

// categoryAddCmd holds the flags for the 'category-add' subcommand.
type categoryAddCmd struct {
	name   string
	budget float64
}

func (*categoryAddCmd) Name() string     { return "category-add" }
func (*categoryAddCmd) Synopsis() string { return "create a budget category" }
func (*categoryAddCmd) Usage() string {
	return `cpx category-add -name <name> -budget <MMAD>

  Appends a category envelope. The budget is in millions of MAD.
`
}

func (c *categoryAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Category name")
	f.Float64Var(&c.budget, "budget", 0, "Allocated envelope in millions of MAD")
}

func (c *categoryAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("-name is required"))
	}
	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}
	if err := v.CreateBudgetCategory(ctx, c.name, capex.Q(c.budget)); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// categorySetCmd holds the flags for the 'category-set' subcommand.
type categorySetCmd struct {
	row    int
	name   string
	budget float64
}

func (*categorySetCmd) Name() string     { return "category-set" }
func (*categorySetCmd) Synopsis() string { return "update a budget category" }
func (*categorySetCmd) Usage() string {
	return `cpx category-set -row <n> [-name <name>] [-budget <MMAD>]

  Rewrites the category envelope at the given row.
`
}

func (c *categorySetCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Row index of the category")
	f.StringVar(&c.name, "name", "", "New category name")
	f.Float64Var(&c.budget, "budget", -1, "New envelope in millions of MAD")
}

func (c *categorySetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == 0 {
		return fail(fmt.Errorf("-row is required"))
	}
	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}

	var current *capex.GlobalBudget
	for _, g := range v.Snapshot().GlobalBudgets {
		if g.RowIndex == c.row {
			g := g
			current = &g
			break
		}
	}
	if current == nil {
		return fail(fmt.Errorf("no category at row %d", c.row))
	}
	if c.name != "" {
		current.Category = c.name
	}
	if c.budget >= 0 {
		current.AllocatedBudget = capex.Q(c.budget)
	}

	if err := v.UpdateBudgetCategory(ctx, *current); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// categoryRmCmd holds the flags for the 'category-rm' subcommand.
type categoryRmCmd struct {
	row int
}

func (*categoryRmCmd) Name() string     { return "category-rm" }
func (*categoryRmCmd) Synopsis() string { return "delete a budget category" }
func (*categoryRmCmd) Usage() string {
	return `cpx category-rm -row <n>

  Deletes the category envelope. Projects keep their category label and show
  up as unknown categories on the next budget report.
`
}

func (c *categoryRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Row index of the category")
}

func (c *categoryRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == 0 {
		return fail(fmt.Errorf("-row is required"))
	}
	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}
	if err := v.DeleteBudgetCategory(ctx, c.row); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
