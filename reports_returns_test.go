package report

import (
	"testing"
	"time"

	"github.com/jcferrara/investment-report/date"
)

func TestNewDailyReturns(t *testing.T) {
	// Mon through Wed priced, report through Sunday: the series must hold one
	// entry per calendar day, strictly ascending, weekends inheriting Wed.
	mon := date.New(2025, time.June, 2)
	wed := mon.Add(2)
	sun := mon.Add(6)

	l := NewLedger()
	if err := l.Append(pos("AAPL", 10, mon, 100)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", mon, 100)
	m.Add("AAPL", mon.Add(1), 105)
	m.Add("AAPL", wed, 110)

	r, err := NewDailyReturns(l, m, sun)
	if err != nil {
		t.Fatalf("NewDailyReturns() error = %v", err)
	}

	if len(r.Entries) != 7 {
		t.Fatalf("len(Entries) = %d want 7 (one per calendar day)", len(r.Entries))
	}
	for i, e := range r.Entries {
		if want := mon.Add(i); e.Date != want {
			t.Errorf("Entries[%d].Date = %v want %v", i, e.Date, want)
		}
		if i > 0 && !r.Entries[i-1].Date.Before(e.Date) {
			t.Errorf("Entries[%d].Date %v not strictly after %v", i, e.Date, r.Entries[i-1].Date)
		}
	}

	if got := r.Entries[0].Return; !got.Equal(0) {
		t.Errorf("Mon return = %v want 0%%", got)
	}
	if got := r.Entries[1].Return; !got.Equal(5) {
		t.Errorf("Tue return = %v want 5%%", got)
	}
	// Thu and Fri probe back to Wed; Sat lands on Wed through the
	// unconditional D-3 fallback.
	for i := 2; i <= 5; i++ {
		if got := r.Entries[i].Return; !got.Equal(10) {
			t.Errorf("Entries[%d].Return = %v want 10%%", i, got)
		}
	}
	// Sun resolves to Thu, a day without data: the empty join yields the
	// zero contribution.
	if got := r.Latest(); !got.Return.Equal(0) || got.Date != sun {
		t.Errorf("Latest() = %v, %v want 0%%, %v", got.Return, got.Date, sun)
	}
}

func TestNewDailyReturnsEmptyLedger(t *testing.T) {
	if _, err := NewDailyReturns(NewLedger(), NewMarket(), date.New(2025, time.June, 2)); err == nil {
		t.Errorf("NewDailyReturns() on an empty ledger expected an error")
	}
}

func TestNewDailyReturnsAsOfBeforeFirstOpen(t *testing.T) {
	mon := date.New(2025, time.June, 2)
	l := NewLedger()
	if err := l.Append(pos("AAPL", 10, mon, 100)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if _, err := NewDailyReturns(l, NewMarket(), mon.Add(-1)); err == nil {
		t.Errorf("NewDailyReturns() before the first open date expected an error")
	}
}
