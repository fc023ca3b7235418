package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	report "github.com/jcferrara/investment-report"
	"github.com/jcferrara/investment-report/date"
	"github.com/jcferrara/investment-report/renderer"
)

type returnsCmd struct {
	asOf  string
	chart string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display the daily portfolio return series" }
func (*returnsCmd) Usage() string {
	return `returns [-date YYYY-MM-DD] [-chart file.png]

  Replays the portfolio value for every calendar day from the first
  purchase through the as-of date (default today), and displays the net
  return series. With -chart, also writes the series as a PNG chart.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "date", "", "as-of date, defaults to today")
	f.StringVar(&c.chart, "chart", "", "write the series as a PNG chart to this file")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf := date.Today()
	if c.asOf != "" {
		var err error
		if asOf, err = date.Parse(c.asOf); err != nil {
			return fail(err)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}
	market, err := loadMarket(cfg)
	if err != nil {
		return fail(err)
	}

	r, err := report.NewDailyReturns(ledger, market, asOf)
	if err != nil {
		return fail(err)
	}

	if c.chart != "" {
		out, err := os.Create(c.chart)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
		if err := renderer.ReturnsChart(r, out); err != nil {
			return fail(fmt.Errorf("cannot render chart: %w", err))
		}
	}
	return render(renderer.ReturnsMarkdown(r))
}
