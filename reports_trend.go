package report

import (
	"fmt"

	"github.com/jcferrara/investment-report/date"
)

// Default moving-average windows, in trading days.
const (
	DefaultShortWindow = 50
	DefaultLongWindow  = 200
)

// TrendReport is one symbol's daily close overlaid with short and long
// simple moving averages.
type TrendReport struct {
	Symbol      string
	ShortWindow int
	LongWindow  int
	Entries     []TrendPoint
}

// TrendPoint is one trading day of the trend series. An average is zero
// until its window holds enough observations.
type TrendPoint struct {
	Date     date.Date
	Close    float64
	ShortAvg float64
	LongAvg  float64
}

// NewTrend computes the moving-average trend of a symbol over its whole
// price history. Windows are counted in trading days (rows), not calendar
// days, and each average only appears once its window is full.
func NewTrend(market *Market, symbol string, shortWindow, longWindow int) (*TrendReport, error) {
	if shortWindow <= 0 || longWindow <= 0 {
		return nil, fmt.Errorf("windows must be positive, got %d and %d", shortWindow, longWindow)
	}
	if shortWindow >= longWindow {
		return nil, fmt.Errorf("short window %d must be smaller than long window %d", shortWindow, longWindow)
	}
	if !market.Has(symbol) {
		return nil, fmt.Errorf("no price history for %s", symbol)
	}

	r := &TrendReport{Symbol: symbol, ShortWindow: shortWindow, LongWindow: longWindow}

	var closes []float64
	for on, close := range market.Prices(symbol) {
		closes = append(closes, close)
		r.Entries = append(r.Entries, TrendPoint{
			Date:     on,
			Close:    close,
			ShortAvg: window(closes, shortWindow),
			LongAvg:  window(closes, longWindow),
		})
	}
	return r, nil
}

// window returns the mean of the last n values, or 0 when fewer than n are
// available.
func window(values []float64, n int) float64 {
	if len(values) < n {
		return 0
	}
	sum := 0.0
	for i := len(values) - n; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(n)
}
