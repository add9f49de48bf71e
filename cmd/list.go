package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/capex"
	"github.com/etnz/capex/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	search   string
	status   string
	year     string
	category string
	row      int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list projects" }
func (*listCmd) Usage() string {
	return `cpx list [-q <text>] [-status <stage>] [-year <year>] [-category <name>] [-row <n>]

  Lists projects matching every given criterion. With -row, shows the full
  detail of one project instead.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Text search over name, order number and vendor")
	f.StringVar(&c.status, "status", "", "Keep only this pipeline stage")
	f.StringVar(&c.year, "year", "", "Keep only this budget year")
	f.StringVar(&c.category, "category", "", "Keep only this budget category")
	f.IntVar(&c.row, "row", 0, "Show one project by row index")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := loadView(ctx)
	if err != nil {
		return fail(err)
	}

	if c.row != 0 {
		p, err := v.Find(c.row)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.ProjectMarkdown(p))
		return subcommands.ExitSuccess
	}

	if c.status != "" {
		stage, err := capex.ParseStage(c.status)
		if err != nil {
			return fail(err)
		}
		c.status = stage
	}
	filter := capex.Filter{Search: c.search, Status: c.status, Year: c.year, Category: c.category}
	printMarkdown(renderer.ListMarkdown(v.Filtered(filter)))
	return subcommands.ExitSuccess
}
