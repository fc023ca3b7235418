package report

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/jcferrara/investment-report/date"
)

// HoldingReturnReport is the holding-period return of every symbol in the
// ledger, valued at the latest price available on or before the report date.
type HoldingReturnReport struct {
	Date    date.Date
	Entries []HoldingReturn
}

// HoldingReturn is the cumulative gain or loss on one symbol since purchase.
type HoldingReturn struct {
	Symbol      string
	Quantity    Quantity
	Invested    Money
	MarketValue Money
	PriceDate   date.Date // date of the price used for the market value
	Return      Percent
}

// NewHoldingReturns computes the per-symbol holding-period return, the
// degenerate single-date case of the valuation engine evaluated once per
// symbol at its latest price on or before asOf. Symbols without any usable
// price row are reported at cost with a zero return; symbols with zero
// invested capital report a zero return rather than failing.
func NewHoldingReturns(ledger *Ledger, market *Market, asOf date.Date) *HoldingReturnReport {
	r := &HoldingReturnReport{Date: asOf}
	for symbol := range ledger.Symbols() {
		entry := HoldingReturn{Symbol: symbol}
		for p := range ledger.PositionsAsOf(asOf) {
			if p.Symbol == symbol {
				entry.Quantity = entry.Quantity.Add(p.Quantity)
				entry.Invested = entry.Invested.Add(p.Cost())
			}
		}
		if entry.Quantity.IsZero() {
			// every position in this symbol opens after asOf
			continue
		}

		on, close, ok := market.CloseAsOf(symbol, asOf)
		if !ok {
			log.Printf("no price history for %s on or before %s, holding reported at cost", symbol, asOf)
			entry.MarketValue = entry.Invested
			r.Entries = append(r.Entries, entry)
			continue
		}
		entry.PriceDate = on
		entry.MarketValue = USD(decimal.NewFromFloat(close)).Mul(entry.Quantity)
		if !entry.Invested.IsZero() {
			frac := entry.MarketValue.Sub(entry.Invested).Div(entry.Invested).Round(returnPlaces)
			entry.Return = Percent(frac.InexactFloat64() * 100)
		}
		r.Entries = append(r.Entries, entry)
	}
	return r
}
