package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/capex"
)

// createCmd holds the flags for the 'create' subcommand.
type createCmd struct {
	name     string
	category string
	budget   float64
	year     string
	status   string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a project" }
func (*createCmd) Usage() string {
	return `cpx create -name <name> -category <name> -budget <MAD> [-year <year>] [-status <stage>]

  Appends a new project row. The budget is in MAD.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Project name")
	f.StringVar(&c.category, "category", "", "Budget category")
	f.Float64Var(&c.budget, "budget", 0, "Allocated budget in MAD")
	f.StringVar(&c.year, "year", "", "Budget year")
	f.StringVar(&c.status, "status", capex.Stages[0], "Initial pipeline stage")
}

func (c *createCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("-name is required"))
	}
	stage, err := capex.ParseStage(c.status)
	if err != nil {
		return fail(err)
	}

	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}
	p := capex.Project{
		Name:            c.name,
		BudgetCategory:  c.category,
		AllocatedBudget: capex.MAD(c.budget),
		BudgetYear:      c.year,
		Status:          stage,
	}
	if err := v.CreateProject(ctx, p, nil); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
