package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	report "github.com/jcferrara/investment-report"
	"github.com/jcferrara/investment-report/date"
	"github.com/jcferrara/investment-report/renderer"
)

type riskCmd struct {
	asOf string
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display per-symbol monthly return and risk" }
func (*riskCmd) Usage() string {
	return `risk [-date YYYY-MM-DD]

  Displays the mean and standard deviation of monthly returns for every
  symbol in the price feed.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "date", "", "as-of date, defaults to today")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	market, err := loadMarket(cfg)
	if err != nil {
		return fail(err)
	}
	return render(renderer.RiskMarkdown(report.NewRisk(market, asOf)))
}
