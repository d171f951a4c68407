package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders a multi-year cash flow projection to a
// markdown string.
func ProjectionMarkdown(p *fincalc.Projection, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Flow Projections")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			"Year",
			"Projected Flow",
		},
	}
	for i, cf := range p.Flows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			amount(cf, currency),
		})
	}
	doc.Table(table)

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Cash Flow"),
			md.Bold(amount(p.Total, currency)),
		},
		Rows: [][]string{
			{"Average Annual Flow", amount(p.Average, currency)},
			{"Compound Annual Growth", fincalc.AsPercent(p.Growth).String()},
		},
	})

	return doc.String()
}
