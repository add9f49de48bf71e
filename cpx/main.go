package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/capex"
	"github.com/etnz/capex/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion. It is a no-op outside of a shell
// completion request; `COMP_INSTALL=1 cpx` installs it.
func completion() {
	stages := predict.Set(capex.Stages)
	months := predict.Set(capex.Months)
	row := predict.Something

	spec := &complete.Command{
		Flags: map[string]complete.Predictor{
			"store-url": predict.Something,
			"file":      predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"board": {},
			"gains": {},
			"list": {Flags: map[string]complete.Predictor{
				"q": predict.Something, "status": stages, "year": predict.Something,
				"category": predict.Something, "row": row,
			}},
			"budgets": {Flags: map[string]complete.Predictor{
				"marker": predict.Something,
			}},
			"forecast": {Flags: map[string]complete.Predictor{
				"po": predict.Something, "line": predict.Something, "month": months,
				"qty": predict.Something, "exclusive": predict.Nothing,
			}},
			"pv": {Flags: map[string]complete.Predictor{
				"row": row, "place": predict.Something, "date": predict.Something,
			}},
			"create": {Flags: map[string]complete.Predictor{
				"name": predict.Something, "category": predict.Something,
				"budget": predict.Something, "year": predict.Something, "status": stages,
			}},
			"update": {Flags: map[string]complete.Predictor{
				"row": row, "name": predict.Something, "category": predict.Something,
				"budget": predict.Something, "year": predict.Something,
				"vendor": predict.Something, "da": predict.Something,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"row": row, "yes": predict.Nothing,
			}},
			"move": {Args: stages},
			"attach": {Flags: map[string]complete.Predictor{
				"row": row, "pdf": predict.Files("*.pdf"),
			}},
			"category-add": {Flags: map[string]complete.Predictor{
				"name": predict.Something, "budget": predict.Something,
			}},
			"category-set": {Flags: map[string]complete.Predictor{
				"row": row, "name": predict.Something, "budget": predict.Something,
			}},
			"category-rm": {Flags: map[string]complete.Predictor{
				"row": row,
			}},
			"pull": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.json"),
			}},
			"topic": {Args: predict.Set{"readme", "store", "reports", "board", "extraction", "snapshot"}},
		},
	}
	spec.Complete("cpx")
}
