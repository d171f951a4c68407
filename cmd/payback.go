package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

type paybackCmd struct {
	cashflows string
}

func (*paybackCmd) Name() string     { return "payback" }
func (*paybackCmd) Synopsis() string { return "compute the payback period of an investment" }
func (*paybackCmd) Usage() string {
	return `fcs payback -cf <flows>

  Computes how many periods it takes for the cumulative cash flows to
  recover the initial investment (the first flow, which must be
  negative). Fractional periods are linearly interpolated.
`
}

func (c *paybackCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cashflows, "cf", "", "comma-separated cash flows, initial investment first")
}

func (c *paybackCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cashflows, err := parseCashflows(c.cashflows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	payback, err := fincalc.PaybackPeriod(cashflows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("payback")
	rec.AddInput("cashflows", c.cashflows)
	rec.AddOutput("payback", formatNum(payback))
	AppendRecord(rec)

	fmt.Printf("Payback period: %.2f years\n", payback)
	return subcommands.ExitSuccess
}
