// Package renderer converts calculation results into markdown
// documents, ready to be rendered on a terminal or saved as reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fincalc"
)

// amount formats a float as money in the report currency.
func amount(v float64, currency string) string {
	return fincalc.NewMoneyFromFloat(v, currency).String()
}

// years formats a period count measured in years.
func years(v float64) string {
	return fmt.Sprintf("%.2f years", v)
}

// fields flattens record fields into a "name=value; ..." cell.
func fields(fs []fincalc.Field) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.Name + "=" + f.Value
	}
	return strings.Join(parts, "; ")
}
