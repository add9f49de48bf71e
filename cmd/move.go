package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"
)

type moveCmd struct{}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "move a project to another pipeline stage" }
func (*moveCmd) Usage() string {
	return `cpx move <row> <stage>

  Moves the project at the given row index to the given stage. The stage
  label is matched ignoring case.
`
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {}

func (c *moveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		return fail(fmt.Errorf("usage: cpx move <row> <stage>"))
	}
	row, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		return fail(fmt.Errorf("invalid row index %q", f.Arg(0)))
	}
	stage := strings.Join(f.Args()[1:], " ")

	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}
	client, err := storeClient()
	if err != nil {
		return fail(err)
	}
	if err := v.Board().Move(ctx, client, row, stage); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
