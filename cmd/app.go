// Package cmd implements the CLI application to build portfolio reports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	report "github.com/jcferrara/investment-report"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&allocationCmd{}, "reports")
	c.Register(&concentrationCmd{}, "reports")
	c.Register(&returnsCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")
	c.Register(&riskCmd{}, "reports")

	c.Register(&fetchCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var configFile = flag.String("config", "invrep.yaml", "path to the report settings file (yaml)")
var positionsFile = flag.String("positions", "", "path to the position log (CSV), overrides the config file")
var pricesFile = flag.String("prices", "", "path to the price feed (CSV), overrides the config file")

// loadConfig resolves the effective settings from the config file and the
// overriding flags.
func loadConfig() (report.Config, error) {
	c, err := report.LoadConfig(*configFile)
	if err != nil {
		return c, err
	}
	if *positionsFile != "" {
		c.Positions = *positionsFile
	}
	if *pricesFile != "" {
		c.Prices = *pricesFile
	}
	return c, nil
}

// loadLedger reads the position log named by the settings.
func loadLedger(c report.Config) (*report.Ledger, error) {
	f, err := os.Open(c.Positions)
	if err != nil {
		return nil, fmt.Errorf("cannot open position log: %w", err)
	}
	defer f.Close()
	return report.ReadPositions(f)
}

// loadMarket reads the price feed named by the settings.
func loadMarket(c report.Config) (*report.Market, error) {
	f, err := os.Open(c.Prices)
	if err != nil {
		return nil, fmt.Errorf("cannot open price feed: %w", err)
	}
	defer f.Close()
	return report.ReadPrices(f)
}

// render prints a markdown document to stdout, styled for the terminal.
func render(doc string) subcommands.ExitStatus {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err == nil {
		if styled, rerr := r.Render(doc); rerr == nil {
			fmt.Print(styled)
			return subcommands.ExitSuccess
		}
	}
	// fall back to the raw markdown
	fmt.Println(doc)
	return subcommands.ExitSuccess
}

// fail prints the error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
