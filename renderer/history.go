package renderer

import (
	"bytes"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders calculation records to a markdown string,
// most recent last, in file order.
func HistoryMarkdown(records []fincalc.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Calculation History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{
			"Time",
			"Operation",
			"Inputs",
			"Outputs",
		},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Time.Format("2006-01-02 15:04"),
			r.Op,
			fields(r.Inputs),
			fields(r.Outputs),
		})
	}
	doc.Table(table)

	return doc.String()
}
