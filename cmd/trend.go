package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	report "github.com/jcferrara/investment-report"
	"github.com/jcferrara/investment-report/renderer"
)

type trendCmd struct {
	symbol string
	short  int
	long   int
	chart  string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display a symbol's moving-average trend" }
func (*trendCmd) Usage() string {
	return `trend -s <symbol> [-short n] [-long n] [-chart file.png]

  Displays a symbol's daily close with short and long simple moving
  averages. With -chart, also writes the series as a PNG chart.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "symbol to report on")
	f.IntVar(&c.short, "short", 0, "short moving-average window in trading days, defaults from config")
	f.IntVar(&c.long, "long", 0, "long moving-average window in trading days, defaults from config")
	f.StringVar(&c.chart, "chart", "", "write the series as a PNG chart to this file")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "-s is required")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	if c.short == 0 {
		c.short = cfg.ShortWindow
	}
	if c.long == 0 {
		c.long = cfg.LongWindow
	}
	market, err := loadMarket(cfg)
	if err != nil {
		return fail(err)
	}

	r, err := report.NewTrend(market, c.symbol, c.short, c.long)
	if err != nil {
		return fail(err)
	}

	if c.chart != "" {
		out, err := os.Create(c.chart)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
		if err := renderer.TrendChart(r, out); err != nil {
			return fail(fmt.Errorf("cannot render chart: %w", err))
		}
	}
	return render(renderer.TrendMarkdown(r))
}
