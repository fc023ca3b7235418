package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	report "github.com/jcferrara/investment-report"
)

// ReturnsMarkdown renders the daily portfolio return series.
func ReturnsMarkdown(r *report.DailyReturnReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Return, %s to %s", r.Range.From, r.Range.To))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Return (%)"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			signedPercent(e.Return),
		})
	}
	doc.Table(table)

	doc.PlainTextf("Latest: %s on %s", signedPercent(r.Latest().Return), r.Latest().Date)
	return doc.String()
}
