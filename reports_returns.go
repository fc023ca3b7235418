package report

import (
	"fmt"

	"github.com/jcferrara/investment-report/date"
)

// DailyReturnReport is the portfolio's net return replayed over every
// calendar day of the reporting window.
type DailyReturnReport struct {
	Range   date.Range
	Entries []DailyReturn
}

// DailyReturn is the portfolio's net return on one calendar day.
type DailyReturn struct {
	Date   date.Date
	Return Percent
}

// NewDailyReturns replays the portfolio value for every calendar day from
// the oldest open date through asOf, inclusive. Non-trading days inherit the
// most recent trading day's valuation through the as-of resolution, so the
// series has exactly one entry per calendar day, strictly ascending.
//
// The as-of date is an explicit parameter: the core never reads the process
// clock.
func NewDailyReturns(ledger *Ledger, market *Market, asOf date.Date) (*DailyReturnReport, error) {
	from, ok := ledger.OldestOpenDate()
	if !ok {
		return nil, fmt.Errorf("ledger has no positions")
	}
	if asOf.Before(from) {
		return nil, fmt.Errorf("as-of date %s is before the first position open date %s", asOf, from)
	}

	v := NewValuation(ledger, market)
	r := &DailyReturnReport{Range: date.Range{From: from, To: asOf}}
	r.Entries = make([]DailyReturn, 0, r.Range.Len())
	for on := range r.Range.Days() {
		frac := v.ReturnAsOf(on)
		r.Entries = append(r.Entries, DailyReturn{
			Date:   on,
			Return: Percent(frac.InexactFloat64() * 100),
		})
	}
	return r, nil
}

// Latest returns the last entry of the series.
func (r *DailyReturnReport) Latest() DailyReturn {
	if len(r.Entries) == 0 {
		return DailyReturn{}
	}
	return r.Entries[len(r.Entries)-1]
}
