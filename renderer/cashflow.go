package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// CashflowAnalysis is the composite report of the cash flow screen:
// net present value, plus the internal rate of return and the payback
// period when their searches succeed.
type CashflowAnalysis struct {
	Rate      fincalc.Percent
	Cashflows []float64
	Currency  string

	NPV        float64
	IRR        fincalc.Percent
	HasIRR     bool
	Payback    float64
	HasPayback bool
}

// CashflowMarkdown renders the CashflowAnalysis report to a markdown string.
func CashflowMarkdown(r *CashflowAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Flow Analysis")

	irr := "not found"
	if r.HasIRR {
		irr = r.IRR.String()
	}
	payback := "never"
	if r.HasPayback {
		payback = years(r.Payback)
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Net Present Value"),
			md.Bold(amount(r.NPV, r.Currency)),
		},
		Rows: [][]string{
			{"Discount Rate", r.Rate.String()},
			{"Internal Rate of Return", irr},
			{"Payback Period", payback},
			{"Periods", strconv.Itoa(len(r.Cashflows))},
		},
	})

	return doc.String()
}
