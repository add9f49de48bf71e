package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/capex"
)

// pullCmd holds the flags for the 'pull' subcommand.
type pullCmd struct {
	output string
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "save the store content to a local snapshot file" }
func (*pullCmd) Usage() string {
	return `cpx pull [-o <file>]

  Fetches the full store content. Writes it to the given file, or to stdout.
`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination file. Stdout when empty.")
}

func (c *pullCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := storeClient()
	if err != nil {
		return fail(err)
	}
	s, err := client.GetData(ctx)
	if err != nil {
		return fail(err)
	}

	if c.output == "" {
		if err := capex.EncodeSnapshot(os.Stdout, s); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}
	if err := capex.WriteSnapshotFile(c.output, s); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Saved %d projects, %d order lines and %d categories to %s\n",
		len(s.Projects), len(s.OrderDetails), len(s.GlobalBudgets), c.output)
	return subcommands.ExitSuccess
}
