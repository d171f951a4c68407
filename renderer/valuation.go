package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// ValuationMarkdown renders a DCF valuation to a markdown string.
func ValuationMarkdown(v *fincalc.ValuationResult, discountRate, terminalGrowth fincalc.Percent, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("DCF Valuation")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Enterprise Value"),
			md.Bold(amount(v.EnterpriseValue, currency)),
		},
		Rows: [][]string{
			{"PV of Projected Cash Flows", amount(v.PVCashflows, currency)},
			{"Terminal Value", amount(v.TerminalValue, currency)},
			{"PV of Terminal Value", amount(v.PVTerminalValue, currency)},
			{"Discount Rate", discountRate.String()},
			{"Terminal Growth", terminalGrowth.String()},
		},
	})

	if len(v.CashflowBreakdown) > 0 {
		doc.H2("Cash Flow Breakdown")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				"Year",
				"Present Value",
			},
		}
		for i, pv := range v.CashflowBreakdown {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(i + 1),
				amount(pv, currency),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
