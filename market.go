package report

import (
	"iter"
	"maps"
	"slices"

	"github.com/jcferrara/investment-report/date"
)

// Market holds historical daily close prices for a set of symbols over the
// lookback window. It is loaded once per report run and read-only afterwards.
//
// Prices are sparse: trading days are a proper subset of calendar days, and a
// symbol may be missing on a trading day (IPO after window start, delisting,
// feed gap).
type Market struct {
	prices map[string]*date.History[float64]
	days   *TradingDays
}

// NewMarket returns a new empty market data collection.
func NewMarket() *Market {
	return &Market{
		prices: make(map[string]*date.History[float64]),
		days:   newTradingDays(),
	}
}

// Add records the close price for a symbol on a given day. An existing value
// at the same (symbol, day) is overwritten.
func (m *Market) Add(symbol string, on date.Date, close float64) {
	h, ok := m.prices[symbol]
	if !ok {
		h = new(date.History[float64])
		m.prices[symbol] = h
	}
	h.Append(on, close)
	m.days.add(on)
}

// Has reports whether the market holds any price for the symbol.
func (m *Market) Has(symbol string) bool {
	_, ok := m.prices[symbol]
	return ok
}

// Close returns the close price for a symbol on exactly the given day.
func (m *Market) Close(symbol string, on date.Date) (float64, bool) {
	h, ok := m.prices[symbol]
	if !ok {
		return 0, false
	}
	return h.Get(on)
}

// CloseAsOf returns the close price for a symbol on the given day, or the
// most recent one before it, along with its date.
func (m *Market) CloseAsOf(symbol string, on date.Date) (day date.Date, close float64, ok bool) {
	h, found := m.prices[symbol]
	if !found {
		return date.Date{}, 0, false
	}
	return h.AsOf(on)
}

// Latest returns the most recent close price for a symbol and its date.
func (m *Market) Latest(symbol string) (on date.Date, close float64, ok bool) {
	h, found := m.prices[symbol]
	if !found || h.Len() == 0 {
		return date.Date{}, 0, false
	}
	on, close = h.Latest()
	return on, close, true
}

// Prices returns an iterator over the (day, close) series of a symbol in
// chronological order. The iterator is empty for unknown symbols.
func (m *Market) Prices(symbol string) iter.Seq2[date.Date, float64] {
	h, ok := m.prices[symbol]
	if !ok {
		return func(yield func(date.Date, float64) bool) {}
	}
	return h.Values()
}

// Symbols returns an iterator over the distinct symbols in the market, sorted.
func (m *Market) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		symbols := slices.Collect(maps.Keys(m.prices))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// TradingDays returns the symbol-independent set of days with at least one
// price observation.
func (m *Market) TradingDays() *TradingDays { return m.days }

// TradingDays is the set of days carrying at least one price observation in
// a Market, across all symbols. It resolves calendar dates to trading days.
type TradingDays struct {
	days []date.Date // sorted, unique
	set  map[date.Date]struct{}
}

func newTradingDays() *TradingDays {
	return &TradingDays{set: make(map[date.Date]struct{})}
}

func (t *TradingDays) add(on date.Date) {
	if _, ok := t.set[on]; ok {
		return
	}
	t.set[on] = struct{}{}
	i, _ := slices.BinarySearchFunc(t.days, on, date.Date.Compare)
	t.days = slices.Insert(t.days, i, on)
}

// Len returns the number of trading days in the set.
func (t *TradingDays) Len() int { return len(t.days) }

// Has reports whether the given day carries at least one price observation.
func (t *TradingDays) Has(on date.Date) bool {
	_, ok := t.set[on]
	return ok
}

// AsOf maps a calendar date to the trading day whose prices value a
// portfolio on that date. It probes the date itself, then one and two days
// back; when none of the three hits, it falls back to three days back
// unconditionally, whether or not that day holds data.
//
// The fixed-depth probe means a gap longer than three days (holiday
// clusters, a symbol not yet listed) resolves to a day without data. The
// valuation engine treats the resulting empty join as zero contribution
// rather than an error. Previous is the hardened alternative for call sites
// not bound to this behavior.
func (t *TradingDays) AsOf(on date.Date) date.Date {
	for back := 0; back < 3; back++ {
		if probe := on.Add(-back); t.Has(probe) {
			return probe
		}
	}
	return on.Add(-3)
}

// Previous returns the latest trading day on or before the given date,
// searching the whole set. It returns false when no trading day exists on or
// before that date.
func (t *TradingDays) Previous(on date.Date) (date.Date, bool) {
	i, found := slices.BinarySearchFunc(t.days, on, date.Date.Compare)
	if found {
		return t.days[i], true
	}
	if i == 0 {
		return date.Date{}, false
	}
	return t.days[i-1], true
}

// First returns the earliest trading day in the set, or false when the set
// is empty.
func (t *TradingDays) First() (date.Date, bool) {
	if len(t.days) == 0 {
		return date.Date{}, false
	}
	return t.days[0], true
}

// Latest returns the most recent trading day in the set, or false when the
// set is empty.
func (t *TradingDays) Latest() (date.Date, bool) {
	if len(t.days) == 0 {
		return date.Date{}, false
	}
	return t.days[len(t.days)-1], true
}
