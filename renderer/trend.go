package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	report "github.com/jcferrara/investment-report"
)

// TrendMarkdown renders a symbol's moving-average trend series.
func TrendMarkdown(r *report.TrendReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Trend (%d/%d day averages)", r.Symbol, r.ShortWindow, r.LongWindow))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Date",
			"Close",
			fmt.Sprintf("%d-day Avg", r.ShortWindow),
			fmt.Sprintf("%d-day Avg", r.LongWindow),
		},
		Rows: [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			price(e.Close),
			price(e.ShortAvg),
			price(e.LongAvg),
		})
	}
	doc.Table(table)
	return doc.String()
}
