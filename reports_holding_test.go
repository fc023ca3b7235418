package report

import (
	"testing"
	"time"

	"github.com/jcferrara/investment-report/date"
)

func TestNewHoldingReturns(t *testing.T) {
	jan := date.New(2025, time.January, 10)
	asOf := date.New(2025, time.June, 2)

	l := NewLedger()
	if err := l.Append(
		pos("AAPL", 10, jan, 100),         // 1000 invested
		pos("AAPL", 10, jan.Add(20), 110), // 1100 invested
		pos("MSFT", 5, jan, 300),          // 1500 invested, never priced
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", jan, 100)
	m.Add("AAPL", asOf.Add(-3), 126) // latest price before asOf

	r := NewHoldingReturns(l, m, asOf)

	if len(r.Entries) != 2 {
		t.Fatalf("len(Entries) = %d want 2", len(r.Entries))
	}

	aapl := r.Entries[0]
	if aapl.Symbol != "AAPL" {
		t.Fatalf("Entries[0].Symbol = %s want AAPL", aapl.Symbol)
	}
	if !aapl.Invested.Equal(USD(2100)) {
		t.Errorf("AAPL Invested = %v want %v", aapl.Invested, USD(2100))
	}
	if !aapl.MarketValue.Equal(USD(2520)) { // 20 shares at 126
		t.Errorf("AAPL MarketValue = %v want %v", aapl.MarketValue, USD(2520))
	}
	if aapl.PriceDate != asOf.Add(-3) {
		t.Errorf("AAPL PriceDate = %v want %v", aapl.PriceDate, asOf.Add(-3))
	}
	if want := Percent(20); !aapl.Return.Equal(want) { // 420/2100
		t.Errorf("AAPL Return = %v want %v", aapl.Return, want)
	}

	// MSFT has no prices: reported at cost with the zero sentinel.
	msft := r.Entries[1]
	if msft.Symbol != "MSFT" {
		t.Fatalf("Entries[1].Symbol = %s want MSFT", msft.Symbol)
	}
	if !msft.MarketValue.Equal(msft.Invested) {
		t.Errorf("MSFT MarketValue = %v want at cost %v", msft.MarketValue, msft.Invested)
	}
	if !msft.Return.Equal(0) {
		t.Errorf("MSFT Return = %v want 0", msft.Return)
	}
}

func TestNewHoldingReturnsPointInTime(t *testing.T) {
	// A position opened after the as-of date must not count.
	jan := date.New(2025, time.January, 10)
	l := NewLedger()
	if err := l.Append(
		pos("AAPL", 10, jan, 100),
		pos("AAPL", 90, jan.Add(60), 100),
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	m := NewMarket()
	m.Add("AAPL", jan, 120)

	r := NewHoldingReturns(l, m, jan.Add(30))
	if len(r.Entries) != 1 {
		t.Fatalf("len(Entries) = %d want 1", len(r.Entries))
	}
	if got := r.Entries[0].Quantity; !got.Equal(Q(10)) {
		t.Errorf("Quantity = %v want 10", got)
	}
	if !r.Entries[0].Invested.Equal(USD(1000)) {
		t.Errorf("Invested = %v want %v", r.Entries[0].Invested, USD(1000))
	}
}

func TestNewHoldingReturnsAllFuture(t *testing.T) {
	// Every position opens after asOf: the symbol is skipped, not reported.
	feb := date.New(2025, time.February, 10)
	l := NewLedger()
	if err := l.Append(pos("AAPL", 10, feb, 100)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	r := NewHoldingReturns(l, NewMarket(), feb.Add(-5))
	if len(r.Entries) != 0 {
		t.Errorf("len(Entries) = %d want 0", len(r.Entries))
	}
}
