package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// npvCmd is the composite cash flow screen: NPV plus, when the
// searches succeed, IRR and payback period.
type npvCmd struct {
	rate      string
	cashflows string
	guess     string
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "analyze a cash flow series (NPV, IRR, payback)" }
func (*npvCmd) Usage() string {
	return `fcs npv -rate <percent> -cf <flows>

  Computes the net present value of a comma-separated cash flow series
  (initial investment first, as a negative number), along with its
  internal rate of return and payback period when they exist.

Usage Examples:
$ fcs npv -rate 8 -cf "-1000,400,400,400"
`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "rate", "", "discount rate, in percent")
	f.StringVar(&c.cashflows, "cf", "", "comma-separated cash flows, initial investment first")
	f.StringVar(&c.guess, "guess", "10", "initial guess for the IRR search, in percent")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cashflows, err := parseCashflows(c.cashflows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	guess, err := parseRate(c.guess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report := &renderer.CashflowAnalysis{
		Rate:      fincalc.AsPercent(rate),
		Cashflows: cashflows,
		Currency:  *currency,
		NPV:       fincalc.NPV(rate, cashflows),
	}

	rec := fincalc.NewRecord("npv")
	rec.AddInput("rate", formatNum(rate))
	rec.AddInput("cashflows", c.cashflows)
	rec.AddOutput("npv", formatNum(report.NPV))

	// IRR and payback are best effort on this screen: a series without
	// a root or a recovery still has a meaningful NPV.
	if irr, err := fincalc.IRR(cashflows, guess); err == nil {
		report.IRR = fincalc.AsPercent(irr)
		report.HasIRR = true
		rec.AddOutput("irr", formatNum(irr))
	} else if !errors.Is(err, fincalc.ErrNoConvergence) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if payback, err := fincalc.PaybackPeriod(cashflows); err == nil {
		report.Payback = payback
		report.HasPayback = true
		rec.AddOutput("payback", formatNum(payback))
	} else if !errors.Is(err, fincalc.ErrNoPayback) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	AppendRecord(rec)
	printMarkdown(renderer.CashflowMarkdown(report))
	return subcommands.ExitSuccess
}
