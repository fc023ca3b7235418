package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	report "github.com/jcferrara/investment-report"
)

type fetchCmd struct {
	months int
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download price history for the ledger's symbols" }
func (*fetchCmd) Usage() string {
	return `fetch [-months n]

  Downloads daily close prices for every symbol in the position log over
  the lookback window, and writes them to the price feed file.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 0, "lookback window in months, defaults from config")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	if c.months == 0 {
		c.months = cfg.LookbackMonths
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}

	symbols := slices.Collect(ledger.Symbols())
	market, err := report.FetchPrices(symbols, c.months)
	if err != nil {
		return fail(err)
	}

	out, err := os.Create(cfg.Prices)
	if err != nil {
		return fail(err)
	}
	defer out.Close()
	if err := report.WritePrices(out, market); err != nil {
		return fail(err)
	}
	fmt.Printf("wrote %d symbols over %d trading days to %s\n",
		len(symbols), market.TradingDays().Len(), cfg.Prices)
	return subcommands.ExitSuccess
}
