package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the report settings read from an optional yaml file.
type Config struct {
	// Positions is the path to the position log CSV.
	Positions string `yaml:"positions"`
	// Prices is the path to the price feed CSV.
	Prices string `yaml:"prices"`
	// LookbackMonths is how far back fetched price history reaches.
	LookbackMonths int `yaml:"lookback_months"`
	// ShortWindow and LongWindow are the trend moving-average windows, in
	// trading days.
	ShortWindow int `yaml:"short_window"`
	LongWindow  int `yaml:"long_window"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Positions:      "positions.csv",
		Prices:         "prices.csv",
		LookbackMonths: DefaultLookbackMonths,
		ShortWindow:    DefaultShortWindow,
		LongWindow:     DefaultLongWindow,
	}
}

// LoadConfig reads settings from a yaml file, filling absent fields with
// defaults. A missing file is not an error: it returns the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &c); err != nil {
		return c, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	if c.LookbackMonths <= 0 {
		c.LookbackMonths = DefaultLookbackMonths
	}
	if c.ShortWindow <= 0 {
		c.ShortWindow = DefaultShortWindow
	}
	if c.LongWindow <= 0 {
		c.LongWindow = DefaultLongWindow
	}
	return c, nil
}
