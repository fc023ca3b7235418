package report

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/jcferrara/investment-report/date"
)

// returnPlaces is the precision of the return fraction computed by the
// valuation engine. Rounding happens here, not at presentation.
const returnPlaces = 6

// Valuation values a portfolio at arbitrary calendar dates from a ledger and
// a market. It never mutates either.
type Valuation struct {
	ledger *Ledger
	market *Market
}

// NewValuation returns a valuation engine over the given ledger and market.
func NewValuation(ledger *Ledger, market *Market) *Valuation {
	return &Valuation{ledger: ledger, market: market}
}

// ReturnAsOf computes the portfolio's net return as a fraction (0.1 means
// +10%) on the given calendar date, rounded to six places.
//
// Only positions opened on or before the date count, valued at the close of
// the as-of trading day resolved by TradingDays.AsOf. Positions whose symbol
// has no price row at that day contribute no gain and no loss (inner join);
// their cost still weighs in the denominator. When no capital is invested
// yet, the return is zero, never an error.
func (v *Valuation) ReturnAsOf(on date.Date) decimal.Decimal {
	asOf := v.market.TradingDays().AsOf(on)

	netChange := decimal.Zero
	cost := decimal.Zero
	for p := range v.ledger.PositionsAsOf(on) {
		cost = cost.Add(p.Cost().Decimal())

		close, ok := v.market.Close(p.Symbol, asOf)
		if !ok {
			log.Printf("no price for %s on %s, position opened %s counts as unchanged", p.Symbol, asOf, p.OpenDate)
			continue
		}
		gain := decimal.NewFromFloat(close).Sub(p.CostPerShare.Decimal()).Mul(p.Quantity.Decimal())
		netChange = netChange.Add(gain)
	}

	if cost.IsZero() {
		return decimal.Zero
	}
	return netChange.Div(cost).Round(returnPlaces)
}
