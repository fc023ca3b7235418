package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	report "github.com/jcferrara/investment-report"
	"github.com/jcferrara/investment-report/renderer"
)

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the capital allocation breakdown" }
func (*allocationCmd) Usage() string {
	return `allocation

  Displays invested capital per symbol and its share of the portfolio.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}
	return render(renderer.AllocationMarkdown(report.NewAllocation(ledger)))
}
