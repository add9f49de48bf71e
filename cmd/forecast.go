package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/capex"
	"github.com/etnz/capex/renderer"
)

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	po        string
	line      string
	month     string
	qty       float64
	exclusive bool
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "show or set delivery forecasts" }
func (*forecastCmd) Usage() string {
	return `cpx forecast [-po <order> -line <line> -month <jan..dec> -qty <n> [-exclusive]]

  Without flags, shows the monthly forecast totals and the watch lists.
  With -po, plans the delivery of one order line: sets the quantity of the
  given month bucket. -exclusive clears the other eleven buckets first.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.po, "po", "", "Purchase order number to plan")
	f.StringVar(&c.line, "line", "", "Order line id to plan")
	f.StringVar(&c.month, "month", "", "Month bucket (jan..dec)")
	f.Float64Var(&c.qty, "qty", 0, "Quantity planned for the month")
	f.BoolVar(&c.exclusive, "exclusive", false, "Clear the other month buckets of the line")
}

func (c *forecastCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.po == "" {
		return c.report(ctx)
	}
	return c.plan(ctx)
}

func (c *forecastCmd) report(ctx context.Context) subcommands.ExitStatus {
	v, err := loadView(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ForecastMarkdown(v.Forecasts()))
	printMarkdown(renderer.AttentionMarkdown(
		capex.AwaitingPO(v.Snapshot().Projects, capex.DefaultPolicy),
		capex.AwaitingForecasts(v.Projects()),
	))
	return subcommands.ExitSuccess
}

func (c *forecastCmd) plan(ctx context.Context) subcommands.ExitStatus {
	month := -1
	for i, m := range capex.Months {
		if m == c.month {
			month = i
			break
		}
	}
	if month < 0 {
		return fail(fmt.Errorf("unknown month %q, expected one of %v", c.month, capex.Months))
	}

	v, err := storeView(ctx)
	if err != nil {
		return fail(err)
	}

	var lines []capex.OrderDetail
	for _, d := range v.Snapshot().OrderDetails {
		if d.PONumber == c.po {
			lines = append(lines, d)
		}
	}
	if len(lines) == 0 {
		return fail(fmt.Errorf("no order lines for %q", c.po))
	}

	found := false
	for i := range lines {
		if lines[i].LineID != c.line {
			continue
		}
		found = true
		if c.exclusive {
			lines[i].Forecast = capex.Forecast{}
		}
		lines[i].Forecast[month] = capex.Q(c.qty)
	}
	if !found {
		return fail(fmt.Errorf("order %q has no line %q", c.po, c.line))
	}

	if err := v.UpdateForecasts(ctx, c.po, lines); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
