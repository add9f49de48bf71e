package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	row int
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a project and its order lines" }
func (*deleteCmd) Usage() string {
	return `cpx delete -row <n> -yes

  Deletes the project row and every order line attached to its purchase
  order. There is no undo; -yes is required.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Row index of the project")
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == 0 {
		return fail(fmt.Errorf("-row is required"))
	}
	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}
	p, err := v.Find(c.row)
	if err != nil {
		return fail(err)
	}
	if !c.yes {
		return fail(fmt.Errorf("refusing to delete %q (row %d, order %q) without -yes", p.Name, p.RowIndex, p.PONumber))
	}
	if err := v.DeleteProject(ctx, p.RowIndex, p.PONumber); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
