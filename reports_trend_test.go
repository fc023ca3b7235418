package report

import (
	"testing"
	"time"

	"github.com/jcferrara/investment-report/date"
)

func TestNewTrend(t *testing.T) {
	m := NewMarket()
	mon := date.New(2025, time.June, 2)
	closes := []float64{100, 102, 104, 106}
	for i, c := range closes {
		m.Add("AAPL", mon.Add(i), c)
	}

	r, err := NewTrend(m, "AAPL", 2, 4)
	if err != nil {
		t.Fatalf("NewTrend() error = %v", err)
	}
	if len(r.Entries) != 4 {
		t.Fatalf("len(Entries) = %d want 4", len(r.Entries))
	}

	// The short average appears once two closes exist, the long after four.
	cases := []struct {
		i        int
		shortAvg float64
		longAvg  float64
	}{
		{0, 0, 0},
		{1, 101, 0},
		{2, 103, 0},
		{3, 105, 103},
	}
	for _, c := range cases {
		e := r.Entries[c.i]
		if e.ShortAvg != c.shortAvg {
			t.Errorf("Entries[%d].ShortAvg = %v want %v", c.i, e.ShortAvg, c.shortAvg)
		}
		if e.LongAvg != c.longAvg {
			t.Errorf("Entries[%d].LongAvg = %v want %v", c.i, e.LongAvg, c.longAvg)
		}
	}
}

func TestNewTrendErrors(t *testing.T) {
	m := NewMarket()
	m.Add("AAPL", date.New(2025, time.June, 2), 100)

	if _, err := NewTrend(m, "MSFT", 2, 4); err == nil {
		t.Errorf("NewTrend(unknown symbol) expected an error")
	}
	if _, err := NewTrend(m, "AAPL", 0, 4); err == nil {
		t.Errorf("NewTrend(zero window) expected an error")
	}
	if _, err := NewTrend(m, "AAPL", 4, 2); err == nil {
		t.Errorf("NewTrend(short >= long) expected an error")
	}
}
