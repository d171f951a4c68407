package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

type capmCmd struct {
	riskFree     string
	beta         string
	marketReturn string
}

func (*capmCmd) Name() string     { return "capm" }
func (*capmCmd) Synopsis() string { return "compute an expected return from the capital asset pricing model" }
func (*capmCmd) Usage() string {
	return `fcs capm -rf <percent> -beta <value> -rm <percent>

  Expected return = risk-free rate + beta * (market return - risk-free
  rate). Often used as the cost of equity input to 'wacc'.

Usage Examples:
$ fcs capm -rf 3 -beta 1.2 -rm 8
`
}

func (c *capmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.riskFree, "rf", "", "risk-free rate, in percent")
	f.StringVar(&c.beta, "beta", "", "asset beta")
	f.StringVar(&c.marketReturn, "rm", "", "expected market return, in percent")
}

func (c *capmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rf, err := parseRate(c.riskFree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	beta, err := parseNum(c.beta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rm, err := parseRate(c.marketReturn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	expected := fincalc.CAPM(rf, beta, rm)

	rec := fincalc.NewRecord("capm")
	rec.AddInput("risk-free", formatNum(rf))
	rec.AddInput("beta", formatNum(beta))
	rec.AddInput("market-return", formatNum(rm))
	rec.AddOutput("expected-return", formatNum(expected))
	AppendRecord(rec)

	fmt.Printf("Expected return: %s\n", fincalc.AsPercent(expected))
	return subcommands.ExitSuccess
}
