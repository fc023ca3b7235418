package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	report "github.com/jcferrara/investment-report"
)

// AllocationMarkdown renders the capital allocation breakdown.
func AllocationMarkdown(r *report.AllocationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Capital Allocation")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Invested ($)", "Invested (%)"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			e.Symbol,
			money(e.Invested),
			percent(e.Weight),
		})
	}
	doc.Table(table)

	doc.PlainTextf("Total invested: %s", money(r.Total))
	return doc.String()
}

// ConcentrationMarkdown renders the capital-concentration curve.
func ConcentrationMarkdown(r *report.ConcentrationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Capital Concentration")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Invested ($)", "Invested (%)", "Cumulative (%)"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			e.Symbol,
			money(e.Invested),
			percent(e.Weight),
			percent(e.Cumulative),
		})
	}
	doc.Table(table)
	return doc.String()
}
