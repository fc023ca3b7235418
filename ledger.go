package report

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/jcferrara/investment-report/date"
)

// Position is a single buy transaction: a quantity of a security acquired on
// a given date at a given cost per share. Positions are immutable once
// recorded in a Ledger.
type Position struct {
	Symbol       string
	Quantity     Quantity
	OpenDate     date.Date
	CostPerShare Money
}

// Cost returns the total cost basis of the position (quantity x cost per share).
func (p Position) Cost() Money { return p.CostPerShare.Mul(p.Quantity) }

// Validate checks the position for correctness.
func (p Position) Validate() error {
	if p.Symbol == "" {
		return fmt.Errorf("position has an empty symbol")
	}
	if !p.Quantity.IsPositive() {
		return fmt.Errorf("position %s: quantity must be positive, got %s", p.Symbol, p.Quantity)
	}
	if !p.CostPerShare.IsPositive() {
		return fmt.Errorf("position %s: cost per share must be positive, got %s", p.Symbol, p.CostPerShare)
	}
	if p.OpenDate.IsZero() {
		return fmt.Errorf("position %s: open date is missing", p.Symbol)
	}
	return nil
}

// Ledger is the complete, append-only log of buy transactions for one
// portfolio. Positions are always kept in chronological order of open date.
type Ledger struct {
	positions []Position
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{positions: make([]Position, 0)}
}

// Append records positions in the ledger, keeping chronological order. The
// sort is stable, positions opened the same day keep their relative order.
func (l *Ledger) Append(positions ...Position) error {
	for _, p := range positions {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	l.positions = append(l.positions, positions...)
	sort.SliceStable(l.positions, func(i, j int) bool {
		return l.positions[i].OpenDate.Before(l.positions[j].OpenDate)
	})
	return nil
}

// Len returns the number of positions in the ledger.
func (l *Ledger) Len() int { return len(l.positions) }

// Positions returns an iterator over all positions in chronological order.
func (l *Ledger) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range l.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// PositionsAsOf returns an iterator over positions opened on or before the
// given date. This is the point-in-time membership rule: a position counts
// toward portfolio value only from its open date forward.
func (l *Ledger) PositionsAsOf(on date.Date) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range l.positions {
			if p.OpenDate.After(on) {
				// positions are sorted by open date, safe to stop here
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// OldestOpenDate returns the open date of the earliest position, or false if
// the ledger is empty.
func (l *Ledger) OldestOpenDate() (date.Date, bool) {
	if len(l.positions) == 0 {
		return date.Date{}, false
	}
	return l.positions[0].OpenDate, true
}

// Symbols returns an iterator over the distinct symbols in the ledger, sorted.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, p := range l.positions {
			seen[p.Symbol] = struct{}{}
		}
		symbols := slices.Collect(maps.Keys(seen))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// InvestedAsOf returns the total cost basis of positions opened on or before
// the given date.
func (l *Ledger) InvestedAsOf(on date.Date) Money {
	var total Money
	for p := range l.PositionsAsOf(on) {
		total = total.Add(p.Cost())
	}
	return total
}

// Invested returns the per-symbol cost basis aggregated over the whole ledger.
func (l *Ledger) Invested(symbol string) Money {
	var total Money
	for _, p := range l.positions {
		if p.Symbol == symbol {
			total = total.Add(p.Cost())
		}
	}
	return total
}

// TotalInvested returns the total cost basis over the whole ledger.
func (l *Ledger) TotalInvested() Money {
	var total Money
	for _, p := range l.positions {
		total = total.Add(p.Cost())
	}
	return total
}
