// Package renderer turns report structures into markdown documents and PNG
// charts. It never computes anything: values arrive ready from the report
// package.
package renderer

import (
	"fmt"

	report "github.com/jcferrara/investment-report"
)

// money formats a monetary amount for a table cell.
func money(m report.Money) string { return m.String() }

// percent formats a percentage for a table cell.
func percent(p report.Percent) string { return p.String() }

// signedPercent formats a percentage with its sign, "-" when flat.
func signedPercent(p report.Percent) string { return p.SignedString() }

// price formats a raw close price for a table cell.
func price(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
