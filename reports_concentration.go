package report

import "sort"

// ConcentrationReport is the capital-concentration curve: symbols ordered by
// invested capital, largest first, with the running share of total capital.
type ConcentrationReport struct {
	Entries []ConcentrationEntry
	Total   Money
}

// ConcentrationEntry is one step of the concentration curve.
type ConcentrationEntry struct {
	Symbol     string
	Invested   Money
	Weight     Percent
	Cumulative Percent // running sum of weights up to and including this symbol
}

// NewConcentration derives the concentration curve from the capital
// allocation.
func NewConcentration(ledger *Ledger) *ConcentrationReport {
	alloc := NewAllocation(ledger)

	entries := make([]ConcentrationEntry, 0, len(alloc.Entries))
	for _, e := range alloc.Entries {
		entries = append(entries, ConcentrationEntry{Symbol: e.Symbol, Invested: e.Invested, Weight: e.Weight})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].Invested.LessThan(entries[i].Invested)
	})

	var running Percent
	for i := range entries {
		running += entries[i].Weight
		entries[i].Cumulative = running
	}
	return &ConcentrationReport{Entries: entries, Total: alloc.Total}
}
