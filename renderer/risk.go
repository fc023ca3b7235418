package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	report "github.com/jcferrara/investment-report"
)

// RiskMarkdown renders the per-symbol monthly return/risk table.
func RiskMarkdown(r *report.RiskReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Return and Risk")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Months", "Mean Return (%)", "Stdev (%)"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			e.Symbol,
			fmt.Sprintf("%d", e.Months),
			signedPercent(e.Mean),
			percent(e.Stdev),
		})
	}
	doc.Table(table)
	return doc.String()
}
