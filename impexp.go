package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcferrara/investment-report/date"
)

// this file contains functions to handle the tabular exchange formats.
// Both inputs are plain CSV with a header line, human readable and easy to
// produce from a spreadsheet or a data feed.

// Position log columns, in order.
var positionHeader = []string{"Symbol", "Quantity", "Open Date", "Cost Per Share"}

// Price feed columns, in order.
var priceHeader = []string{"symbol", "date", "close"}

// ReadPositions imports a position log from 'r'.
//
// The format is CSV with the header "Symbol,Quantity,Open Date,Cost Per
// Share". Quantities and costs must be positive numbers, open dates must
// parse per the [date] package. Any malformed row fails the whole import:
// ingestion is the fail-fast boundary, the core never sees bad positions.
func ReadPositions(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read position log header: %w", err)
	}
	if err := checkHeader(header, positionHeader); err != nil {
		return nil, fmt.Errorf("invalid position log: %w", err)
	}

	ledger := NewLedger()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read position log line %d: %w", line, err)
		}

		quantity, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("position log line %d: invalid quantity %q: %w", line, record[1], err)
		}
		open, err := date.Parse(record[2])
		if err != nil {
			return nil, fmt.Errorf("position log line %d: %w", line, err)
		}
		cost, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("position log line %d: invalid cost per share %q: %w", line, record[3], err)
		}

		p := Position{
			Symbol:       strings.TrimSpace(record[0]),
			Quantity:     Q(quantity),
			OpenDate:     open,
			CostPerShare: USD(cost),
		}
		if err := ledger.Append(p); err != nil {
			return nil, fmt.Errorf("position log line %d: %w", line, err)
		}
	}
	return ledger, nil
}

// ReadPrices imports a historical price feed from 'r'.
//
// The format is CSV with the header "symbol,date,close", one row per
// (symbol, trading day) observation. Rows may cover any subset of symbols
// and days; gaps are the normal case, not an error.
func ReadPrices(r io.Reader) (*Market, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read price feed header: %w", err)
	}
	if err := checkHeader(header, priceHeader); err != nil {
		return nil, fmt.Errorf("invalid price feed: %w", err)
	}

	market := NewMarket()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read price feed line %d: %w", line, err)
		}

		on, err := date.Parse(record[1])
		if err != nil {
			return nil, fmt.Errorf("price feed line %d: %w", line, err)
		}
		close, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("price feed line %d: invalid close %q: %w", line, record[2], err)
		}
		if close <= 0 {
			return nil, fmt.Errorf("price feed line %d: close must be positive, got %v", line, close)
		}
		market.Add(strings.TrimSpace(record[0]), on, close)
	}
	return market, nil
}

// WritePrices exports a market to 'w' in the price feed format, symbols
// sorted, each symbol's series in chronological order.
func WritePrices(w io.Writer, market *Market) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(priceHeader); err != nil {
		return err
	}
	for symbol := range market.Symbols() {
		for on, close := range market.Prices(symbol) {
			record := []string{symbol, on.String(), strconv.FormatFloat(close, 'f', -1, 64)}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("want %d columns %v, got %d", len(want), want, len(got))
	}
	for i := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want[i]) {
			return fmt.Errorf("want column %d to be %q, got %q", i+1, want[i], got[i])
		}
	}
	return nil
}
