// Package cmd implements the CLI application to track the capex portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/capex"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&boardCmd{}, "reports")
	c.Register(&listCmd{}, "reports")
	c.Register(&budgetsCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&forecastCmd{}, "reports")
	c.Register(&pvCmd{}, "reports")

	c.Register(&createCmd{}, "projects")
	c.Register(&updateCmd{}, "projects")
	c.Register(&deleteCmd{}, "projects")
	c.Register(&moveCmd{}, "projects")
	c.Register(&attachCmd{}, "projects")

	c.Register(&categoryAddCmd{}, "budget categories")
	c.Register(&categorySetCmd{}, "budget categories")
	c.Register(&categoryRmCmd{}, "budget categories")

	c.Register(&pullCmd{}, "store")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var storeURL = flag.String("store-url", os.Getenv("CAPEX_STORE_URL"), "Store web app URL. Defaults to $CAPEX_STORE_URL.")
var snapshotFile = flag.String("file", "", "Read from a local snapshot file instead of the store. Write commands still need the store.")

// storeClient returns a client for the configured store.
func storeClient() (*capex.Client, error) {
	if *storeURL == "" {
		return nil, fmt.Errorf("no store configured: set -store-url or $CAPEX_STORE_URL")
	}
	return capex.NewClient(*storeURL), nil
}

// writerNotifier reports operation outcomes on stderr, so notifications do
// not mix with report output on stdout.
type writerNotifier struct{}

func (writerNotifier) Notify(sev capex.Severity, message string) {
	switch sev {
	case capex.SeverityError:
		fmt.Fprintln(os.Stderr, "❌", message)
	default:
		fmt.Fprintln(os.Stderr, "✅", message)
	}
}

// loadView returns a view over the current data: the local snapshot file
// when -file is set, a fresh store read otherwise.
func loadView(ctx context.Context) (*capex.View, error) {
	if *snapshotFile != "" {
		s, err := capex.ReadSnapshotFile(*snapshotFile)
		if err != nil {
			return nil, err
		}
		v := capex.NewView(nil, writerNotifier{})
		v.Load(s)
		return v, nil
	}
	client, err := storeClient()
	if err != nil {
		return nil, err
	}
	v := capex.NewView(client, writerNotifier{})
	if err := v.Refresh(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// storeView returns a refreshed view bound to the store, for commands that
// write. It ignores -file: a mutation against a stale local copy would use
// stale row indices.
func storeView(ctx context.Context) (*capex.View, error) {
	client, err := storeClient()
	if err != nil {
		return nil, err
	}
	v := capex.NewView(client, writerNotifier{})
	if err := v.Refresh(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints err and converts it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
