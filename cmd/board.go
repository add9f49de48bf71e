package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/capex/renderer"
)

type boardCmd struct{}

func (*boardCmd) Name() string     { return "board" }
func (*boardCmd) Synopsis() string { return "show the pipeline board" }
func (*boardCmd) Usage() string {
	return `cpx board

  Shows every project grouped by pipeline stage.
`
}

func (c *boardCmd) SetFlags(f *flag.FlagSet) {}

func (c *boardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := loadView(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BoardMarkdown(v.Board()))
	return subcommands.ExitSuccess
}
