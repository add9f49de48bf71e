package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/capex/renderer"
)

type gainsCmd struct{}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "negotiated savings on committed projects" }
func (*gainsCmd) Usage() string {
	return `cpx gains

  Shows allocated versus ordered for every committed project, and the
  resulting saving.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {}

func (c *gainsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := loadView(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.GainsMarkdown(v.GainsReport()))
	return subcommands.ExitSuccess
}
