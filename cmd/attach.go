package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/etnz/capex/extract"
)

// attachCmd holds the flags for the 'attach' subcommand.
type attachCmd struct {
	row int
	pdf string
}

func (*attachCmd) Name() string     { return "attach" }
func (*attachCmd) Synopsis() string { return "attach a purchase order PDF to a project" }
func (*attachCmd) Usage() string {
	return `cpx attach -row <n> -pdf <file>

  Extracts the order number, date, vendor, total and line items from the
  PDF and writes them onto the project. Needs $GEMINI_API_KEY.
`
}

func (c *attachCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Row index of the project")
	f.StringVar(&c.pdf, "pdf", "", "Purchase order PDF file")
}

func (c *attachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == 0 || c.pdf == "" {
		return fail(fmt.Errorf("-row and -pdf are required"))
	}
	pdf, err := os.ReadFile(c.pdf)
	if err != nil {
		return fail(err)
	}

	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}
	found, err := v.Find(c.row)
	if err != nil {
		return fail(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}
	po, err := extract.PurchaseOrder(ctx, client, pdf)
	if err != nil {
		return fail(err)
	}

	fmt.Fprintf(os.Stderr, "Extracted order %s from %s: %s, %d lines, total %s\n",
		po.PONumber, c.pdf, po.Vendor, len(po.Details), po.TotalOrdered)

	p := found.Project
	p.ApplyOrder(po)
	if err := v.UpdateProjectAndDetails(ctx, p, po.Details); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
