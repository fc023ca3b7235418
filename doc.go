// Package report computes investment-portfolio performance from a log of
// buy transactions and historical daily price data.
//
// The core is the daily portfolio-return reconstruction: replaying the
// portfolio value day by day from an append-only position log against a
// sparse trading-day price series, with point-in-time membership (only
// positions opened on or before a date count) and as-of pricing (the latest
// available close on or before that date).
//
// Around the core, the package builds the usual reporting tables: capital
// allocation and concentration, per-symbol holding-period return,
// moving-average trends, and monthly return/risk statistics. Rendering
// lives in the renderer subpackage; the CLI in cmd.
package report
