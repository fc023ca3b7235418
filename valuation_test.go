package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcferrara/investment-report/date"
)

func TestReturnAsOfRoundTrip(t *testing.T) {
	// A single position {AAPL, qty=10, cost/share=100} priced at 110 on its
	// open date yields exactly 10%.
	on := date.New(2025, time.June, 2)
	l := NewLedger()
	if err := l.Append(pos("AAPL", 10, on, 100)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", on, 110)

	got := NewValuation(l, m).ReturnAsOf(on)
	want := decimal.NewFromFloat(0.1)
	if !got.Equal(want) {
		t.Errorf("ReturnAsOf() = %s want %s", got, want)
	}
}

func TestReturnAsOfBeforeFirstOpen(t *testing.T) {
	on := date.New(2025, time.June, 2)
	l := NewLedger()
	if err := l.Append(pos("AAPL", 10, on, 100)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", on, 110)

	// No capital is invested yet: the return is the zero sentinel, not an error.
	if got := NewValuation(l, m).ReturnAsOf(on.Add(-10)); !got.IsZero() {
		t.Errorf("ReturnAsOf(before any open) = %s want 0", got)
	}
}

func TestReturnAsOfStableAcrossQuietDays(t *testing.T) {
	// With no new position and no new price between two dates, the valuation
	// must not change (non-trading days inherit the last trading day).
	mon := date.New(2025, time.June, 2)
	l := NewLedger()
	if err := l.Append(pos("AAPL", 10, mon, 100)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", mon, 110)

	v := NewValuation(l, m)
	d1 := v.ReturnAsOf(mon)
	d2 := v.ReturnAsOf(mon.Add(1))
	d3 := v.ReturnAsOf(mon.Add(2))
	if !d1.Equal(d2) || !d2.Equal(d3) {
		t.Errorf("ReturnAsOf drifted across quiet days: %s, %s, %s", d1, d2, d3)
	}
}

func TestReturnAsOfMissingSymbolContributesCostOnly(t *testing.T) {
	// MSFT has no price row at the as-of day: inner join drops its gain, but
	// its cost still weighs in the denominator.
	on := date.New(2025, time.June, 2)
	l := NewLedger()
	if err := l.Append(
		pos("AAPL", 10, on, 100), // cost 1000
		pos("MSFT", 10, on, 100), // cost 1000, never priced
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", on, 110) // +100 net change

	got := NewValuation(l, m).ReturnAsOf(on)
	want := decimal.NewFromFloat(0.05) // 100 / 2000
	if !got.Equal(want) {
		t.Errorf("ReturnAsOf() = %s want %s", got, want)
	}
}

func TestReturnAsOfRounding(t *testing.T) {
	// 1/3000 = 0.000333... must come back rounded to six places.
	on := date.New(2025, time.June, 2)
	l := NewLedger()
	if err := l.Append(pos("AAPL", 1, on, 3000)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", on, 3001)

	got := NewValuation(l, m).ReturnAsOf(on)
	want := decimal.RequireFromString("0.000333")
	if !got.Equal(want) {
		t.Errorf("ReturnAsOf() = %s want %s", got, want)
	}
}

func TestReturnAsOfFallbackBeyondProbe(t *testing.T) {
	// The as-of day resolves to D-3 even without data there; the empty join
	// yields a zero net change, not an error.
	mon := date.New(2025, time.June, 2)
	l := NewLedger()
	if err := l.Append(pos("AAPL", 10, mon, 100)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", mon, 110)

	if got := NewValuation(l, m).ReturnAsOf(mon.Add(6)); !got.IsZero() {
		t.Errorf("ReturnAsOf(past the probe window) = %s want 0", got)
	}
}
