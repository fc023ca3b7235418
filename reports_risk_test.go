package report

import (
	"math"
	"testing"
	"time"

	"github.com/jcferrara/investment-report/date"
)

func TestNewRisk(t *testing.T) {
	// Three month-end closes 100, 110, 99 give monthly returns +10% and -10%:
	// mean 0, sample stdev sqrt(0.02) as a percentage.
	m := NewMarket()
	m.Add("AAPL", date.New(2025, time.January, 31), 100)
	m.Add("AAPL", date.New(2025, time.February, 28), 110)
	m.Add("AAPL", date.New(2025, time.March, 31), 99)

	r := NewRisk(m, date.New(2025, time.March, 31))
	if len(r.Entries) != 1 {
		t.Fatalf("len(Entries) = %d want 1", len(r.Entries))
	}

	e := r.Entries[0]
	if e.Symbol != "AAPL" {
		t.Errorf("Symbol = %s want AAPL", e.Symbol)
	}
	if e.Months != 2 {
		t.Errorf("Months = %d want 2", e.Months)
	}
	if !e.Mean.Equal(0) {
		t.Errorf("Mean = %v want 0", e.Mean)
	}
	wantStdev := Percent(math.Sqrt(0.02) * 100)
	if !e.Stdev.Equal(wantStdev) {
		t.Errorf("Stdev = %v want %v", e.Stdev, wantStdev)
	}
}

func TestNewRiskMonthEndResolution(t *testing.T) {
	// The last trading day of a month may fall before the calendar month end;
	// the keyed lookup must pick it up instead of skipping the month.
	m := NewMarket()
	m.Add("AAPL", date.New(2025, time.January, 30), 100) // Jan 31 has no data
	m.Add("AAPL", date.New(2025, time.February, 27), 120)

	r := NewRisk(m, date.New(2025, time.February, 28))
	e := r.Entries[0]
	if e.Months != 1 {
		t.Fatalf("Months = %d want 1", e.Months)
	}
	if want := Percent(20); !e.Mean.Equal(want) {
		t.Errorf("Mean = %v want %v", e.Mean, want)
	}
	if !e.Stdev.Equal(0) {
		t.Errorf("Stdev = %v want 0 with a single observation", e.Stdev)
	}
}

func TestNewRiskSparseSymbol(t *testing.T) {
	// A symbol listed mid-window produces fewer monthly returns; one with a
	// single close produces none and reports zero statistics.
	m := NewMarket()
	m.Add("AAPL", date.New(2025, time.January, 31), 100)
	m.Add("AAPL", date.New(2025, time.February, 28), 110)
	m.Add("AAPL", date.New(2025, time.March, 31), 121)
	m.Add("NEWCO", date.New(2025, time.March, 31), 50)

	r := NewRisk(m, date.New(2025, time.March, 31))
	if len(r.Entries) != 2 {
		t.Fatalf("len(Entries) = %d want 2", len(r.Entries))
	}

	newco := r.Entries[1]
	if newco.Symbol != "NEWCO" {
		t.Fatalf("Entries[1].Symbol = %s want NEWCO", newco.Symbol)
	}
	if newco.Months != 0 || !newco.Mean.Equal(0) || !newco.Stdev.Equal(0) {
		t.Errorf("NEWCO stats = %d, %v, %v want all zero", newco.Months, newco.Mean, newco.Stdev)
	}
}

func TestMonthEnds(t *testing.T) {
	m := NewMarket()
	jan30 := date.New(2025, time.January, 30)
	feb27 := date.New(2025, time.February, 27)
	m.Add("AAPL", jan30, 100)
	m.Add("AAPL", feb27, 120)

	ends := monthEnds(m.TradingDays(), date.New(2025, time.March, 15))
	// March has no trading day, so only January and February boundaries.
	want := []date.Date{jan30, feb27}
	if len(ends) != len(want) {
		t.Fatalf("monthEnds() = %v want %v", ends, want)
	}
	for i := range want {
		if ends[i] != want[i] {
			t.Errorf("monthEnds()[%d] = %v want %v", i, ends[i], want[i])
		}
	}
}
