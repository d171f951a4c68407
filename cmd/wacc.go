package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

type waccCmd struct {
	costOfEquity string
	costOfDebt   string
	taxRate      string
	equity       string
	debt         string
}

func (*waccCmd) Name() string     { return "wacc" }
func (*waccCmd) Synopsis() string { return "compute the weighted average cost of capital" }
func (*waccCmd) Usage() string {
	return `fcs wacc -ce <percent> -cd <percent> -tax <percent> -e <value> -d <value>

  Weights the cost of equity and the after-tax cost of debt by the
  market values of equity and debt.

Usage Examples:
$ fcs wacc -ce 12 -cd 6 -tax 25 -e 700 -d 300
`
}

func (c *waccCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.costOfEquity, "ce", "", "cost of equity, in percent")
	f.StringVar(&c.costOfDebt, "cd", "", "cost of debt, in percent")
	f.StringVar(&c.taxRate, "tax", "", "corporate tax rate, in percent")
	f.StringVar(&c.equity, "e", "", "market value of equity")
	f.StringVar(&c.debt, "d", "", "market value of debt")
}

func (c *waccCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ce, err := parseRate(c.costOfEquity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cd, err := parseRate(c.costOfDebt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tax, err := parseRate(c.taxRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	equity, err := parseNum(c.equity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	debt, err := parseNum(c.debt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	wacc, err := fincalc.WACC(ce, cd, tax, equity, debt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("wacc")
	rec.AddInput("cost-of-equity", formatNum(ce))
	rec.AddInput("cost-of-debt", formatNum(cd))
	rec.AddInput("tax-rate", formatNum(tax))
	rec.AddInput("equity", formatNum(equity))
	rec.AddInput("debt", formatNum(debt))
	rec.AddOutput("wacc", formatNum(wacc))
	AppendRecord(rec)

	fmt.Printf("WACC: %s\n", fincalc.AsPercent(wacc))
	return subcommands.ExitSuccess
}
