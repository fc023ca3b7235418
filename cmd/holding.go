package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	report "github.com/jcferrara/investment-report"
	"github.com/jcferrara/investment-report/date"
	"github.com/jcferrara/investment-report/renderer"
)

type holdingCmd struct {
	asOf string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display per-symbol holding-period returns" }
func (*holdingCmd) Usage() string {
	return `holding [-date YYYY-MM-DD]

  Displays the cumulative gain or loss on every symbol since purchase,
  valued at the latest price available on or before the as-of date.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "date", "", "as-of date, defaults to today")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	return render(renderer.HoldingMarkdown(report.NewHoldingReturns(ledger, market, asOf)))
}
