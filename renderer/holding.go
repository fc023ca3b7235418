package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	report "github.com/jcferrara/investment-report"
)

// HoldingMarkdown renders the per-symbol holding-period returns.
func HoldingMarkdown(r *report.HoldingReturnReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Holding-Period Return as of %s", r.Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Quantity", "Invested ($)", "Value ($)", "Priced On", "Return (%)"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		pricedOn := "-"
		if !e.PriceDate.IsZero() {
			pricedOn = e.PriceDate.String()
		}
		table.Rows = append(table.Rows, []string{
			e.Symbol,
			e.Quantity.String(),
			money(e.Invested),
			money(e.MarketValue),
			pricedOn,
			signedPercent(e.Return),
		})
	}
	doc.Table(table)
	return doc.String()
}
