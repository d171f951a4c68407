package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

type irrCmd struct {
	cashflows string
	guess     string
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "compute the internal rate of return of a cash flow series" }
func (*irrCmd) Usage() string {
	return `fcs irr -cf <flows> [-guess <percent>]

  Finds the discount rate at which the series' net present value is
  zero, using Newton-Raphson from the initial guess. The search can
  fail; retry with a different guess.
`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cashflows, "cf", "", "comma-separated cash flows, initial investment first")
	f.StringVar(&c.guess, "guess", "10", "initial guess, in percent")
}

func (c *irrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	irr, err := fincalc.IRR(cashflows, guess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("irr")
	rec.AddInput("cashflows", c.cashflows)
	rec.AddInput("guess", formatNum(guess))
	rec.AddOutput("irr", formatNum(irr))
	AppendRecord(rec)

	fmt.Printf("IRR: %s\n", fincalc.AsPercent(irr))
	return subcommands.ExitSuccess
}
