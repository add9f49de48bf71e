package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/etnz/capex"
	"github.com/etnz/capex/renderer"
)

// pvCmd holds the flags for the 'pv' subcommand.
type pvCmd struct {
	row   int
	place string
	date  string
}

func (*pvCmd) Name() string     { return "pv" }
func (*pvCmd) Synopsis() string { return "generate a provisional acceptance report" }
func (*pvCmd) Usage() string {
	return `cpx pv -row <n> [-place <place>] [-date <YYYY-MM-DD>]

  Prints the acceptance document for the outstanding quantities of the
  project's order, as raw markdown, ready to redirect to a file.
`
}

func (c *pvCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Row index of the project")
	f.StringVar(&c.place, "place", "", "Place of the acceptance")
	f.StringVar(&c.date, "date", "", "Date of the acceptance, today when empty")
}

func (c *pvCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == 0 {
		return fail(fmt.Errorf("-row is required"))
	}
	opts := capex.PVOptions{Place: c.place}
	if c.date != "" {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			return fail(fmt.Errorf("invalid date %q: %w", c.date, err))
		}
		opts.Date = d
	}

	v, err := loadView(ctx)
	if err != nil {
		return fail(err)
	}
	p, err := v.Find(c.row)
	if err != nil {
		return fail(err)
	}
	pv, err := capex.NewPV(p, opts)
	if err != nil {
		return fail(err)
	}
	fmt.Print(renderer.RenderPV(pv))
	return subcommands.ExitSuccess
}
