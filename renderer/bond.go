package renderer

import (
	"bytes"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// BondMarkdown renders a bond pricing result to a markdown string.
func BondMarkdown(b *fincalc.BondResult, requiredYield fincalc.Percent, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bond Pricing")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Bond Price"),
			md.Bold(amount(b.Price, currency)),
		},
		Rows: [][]string{
			{"PV of Coupons", amount(b.PVCoupons, currency)},
			{"PV of Face Value", amount(b.PVFaceValue, currency)},
			{"Annual Coupon", amount(b.CouponPayment, currency)},
			{"Required Yield", requiredYield.String()},
			{"Current Yield", fincalc.AsPercent(b.CurrentYield).String()},
			{"Macaulay Duration", years(b.Duration)},
		},
	})

	return doc.String()
}

// YieldMarkdown renders a yield-to-maturity result to a markdown string.
func YieldMarkdown(ytm fincalc.Percent, marketPrice float64, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Yield to Maturity")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Yield to Maturity"),
			md.Bold(ytm.String()),
		},
		Rows: [][]string{
			{"Market Price", amount(marketPrice, currency)},
		},
	})

	return doc.String()
}
