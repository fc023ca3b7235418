package report

import (
	"math"

	"github.com/jcferrara/investment-report/date"
)

// RiskReport holds the historical monthly return and risk of every symbol in
// the market.
type RiskReport struct {
	Entries []RiskEntry
}

// RiskEntry is the mean and standard deviation of one symbol's monthly
// returns over the lookback window.
type RiskEntry struct {
	Symbol string
	Months int // number of monthly returns observed
	Mean   Percent
	Stdev  Percent
}

// NewRisk computes per-symbol monthly return statistics. Month boundaries
// are the last trading day of each month, found by an unbounded backward
// search, not the fixed three-day valuation probe.
//
// A symbol needs at least two monthly closes to produce a return; symbols
// with fewer are reported with zero months and zero statistics.
func NewRisk(market *Market, asOf date.Date) *RiskReport {
	boundaries := monthEnds(market.TradingDays(), asOf)

	r := &RiskReport{}
	for symbol := range market.Symbols() {
		// monthly closes keyed by boundary date; boundaries the symbol
		// misses (not yet listed, delisted) are skipped
		var closes []float64
		for _, on := range boundaries {
			if close, ok := market.Close(symbol, on); ok {
				closes = append(closes, close)
			}
		}

		var returns []float64
		for i := 1; i < len(closes); i++ {
			if closes[i-1] != 0 {
				returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
			}
		}

		entry := RiskEntry{Symbol: symbol, Months: len(returns)}
		if len(returns) > 0 {
			mean, stdev := stats(returns)
			entry.Mean = Percent(mean * 100)
			entry.Stdev = Percent(stdev * 100)
		}
		r.Entries = append(r.Entries, entry)
	}
	return r
}

// monthEnds returns the last trading day of every month covered by the
// trading-day set, up to and including asOf's month, in chronological order.
func monthEnds(days *TradingDays, asOf date.Date) []date.Date {
	start, ok := days.First()
	if !ok {
		return nil
	}

	var ends []date.Date
	for month := start.StartOfMonth(); !month.After(asOf); month = month.EndOfMonth().Add(1) {
		boundary := month.EndOfMonth()
		if boundary.After(asOf) {
			boundary = asOf
		}
		if on, ok := days.Previous(boundary); ok && !on.Before(month) {
			ends = append(ends, on)
		}
	}
	return ends
}

// stats returns the mean and sample standard deviation of the values.
func stats(values []float64) (mean, stdev float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	if len(values) < 2 {
		return mean, 0
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(values)-1))
}
