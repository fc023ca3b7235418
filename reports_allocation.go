package report

// AllocationReport breaks down invested capital by symbol.
type AllocationReport struct {
	Entries []AllocationEntry
	Total   Money
}

// AllocationEntry is the capital allocated to one symbol.
type AllocationEntry struct {
	Symbol   string
	Invested Money
	Weight   Percent // share of total invested capital
}

// NewAllocation aggregates the ledger's cost basis by symbol. Weights sum to
// 100 within floating point tolerance. Pure aggregation, no temporal logic.
func NewAllocation(ledger *Ledger) *AllocationReport {
	r := &AllocationReport{Total: ledger.TotalInvested()}
	for symbol := range ledger.Symbols() {
		invested := ledger.Invested(symbol)
		var weight Percent
		if !r.Total.IsZero() {
			weight = Percent(invested.Div(r.Total).InexactFloat64() * 100)
		}
		r.Entries = append(r.Entries, AllocationEntry{
			Symbol:   symbol,
			Invested: invested,
			Weight:   weight,
		})
	}
	return r
}
