package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	report "github.com/jcferrara/investment-report"
	"github.com/jcferrara/investment-report/renderer"
)

type concentrationCmd struct{}

func (*concentrationCmd) Name() string     { return "concentration" }
func (*concentrationCmd) Synopsis() string { return "display the capital-concentration curve" }
func (*concentrationCmd) Usage() string {
	return `concentration

  Displays symbols ordered by invested capital with cumulative weight.
`
}

func (c *concentrationCmd) SetFlags(f *flag.FlagSet) {}

func (c *concentrationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}
	return render(renderer.ConcentrationMarkdown(report.NewConcentration(ledger)))
}
