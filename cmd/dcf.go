package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

type dcfCmd struct {
	cashflows    string
	growth       string
	rate         string
	terminalYear int
}

func (*dcfCmd) Name() string     { return "dcf" }
func (*dcfCmd) Synopsis() string { return "value a company by discounted cash flows" }
func (*dcfCmd) Usage() string {
	return `fcs dcf -cf <flows> -growth <percent> -rate <percent>

  Computes an enterprise value from projected free cash flows: the
  explicit flows are discounted year by year, then a Gordon-growth
  terminal value is added. The discount rate must exceed the terminal
  growth rate.

Usage Examples:
$ fcs dcf -cf "100,110,120,130,140" -growth 2 -rate 10
`
}

func (c *dcfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cashflows, "cf", "", "comma-separated projected free cash flows")
	f.StringVar(&c.growth, "growth", "", "terminal growth rate, in percent")
	f.StringVar(&c.rate, "rate", "", "discount rate, in percent")
	f.IntVar(&c.terminalYear, "terminal-year", 0, "year of the terminal value (default: last projected year)")
}

func (c *dcfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cashflows, err := parseCashflows(c.cashflows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	growth, err := parseRate(c.growth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	v, err := fincalc.DCFValuation(cashflows, growth, rate, c.terminalYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("dcf")
	rec.AddInput("cashflows", c.cashflows)
	rec.AddInput("growth", formatNum(growth))
	rec.AddInput("rate", formatNum(rate))
	rec.AddOutput("enterprise-value", formatNum(v.EnterpriseValue))
	AppendRecord(rec)

	printMarkdown(renderer.ValuationMarkdown(&v, fincalc.AsPercent(rate), fincalc.AsPercent(growth), *currency))
	return subcommands.ExitSuccess
}
