package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

// pvCmd and fvCmd are the two directions of the same time-value
// computation, so they share this file.

type pvCmd struct {
	amount  string
	rate    string
	periods int
}

func (*pvCmd) Name() string     { return "pv" }
func (*pvCmd) Synopsis() string { return "discount a future amount to its present value" }
func (*pvCmd) Usage() string {
	return `fcs pv -amount <value> -rate <percent> -periods <n>

  Discounts a single future amount back to today.

Usage Examples:
$ fcs pv -amount 1628.89 -rate 5 -periods 10
`
}

func (c *pvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "future amount")
	f.StringVar(&c.rate, "rate", "", "discount rate per period, in percent")
	f.IntVar(&c.periods, "periods", 1, "number of periods")
}

func (c *pvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseNum(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	pv := fincalc.PresentValue(amount, rate, c.periods)

	rec := fincalc.NewRecord("pv")
	rec.AddInput("amount", formatNum(amount))
	rec.AddInput("rate", formatNum(rate))
	rec.AddInput("periods", fmt.Sprint(c.periods))
	rec.AddOutput("present-value", formatNum(pv))
	AppendRecord(rec)

	fmt.Printf("Present value: %s\n", fincalc.NewMoneyFromFloat(pv, *currency))
	return subcommands.ExitSuccess
}

type fvCmd struct {
	amount  string
	rate    string
	periods int
}

func (*fvCmd) Name() string     { return "fv" }
func (*fvCmd) Synopsis() string { return "compound a present amount to its future value" }
func (*fvCmd) Usage() string {
	return `fcs fv -amount <value> -rate <percent> -periods <n>

  Compounds a single amount forward at a constant rate.

Usage Examples:
$ fcs fv -amount 1000 -rate 5 -periods 10
`
}

func (c *fvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "present amount")
	f.StringVar(&c.rate, "rate", "", "growth rate per period, in percent")
	f.IntVar(&c.periods, "periods", 1, "number of periods")
}

func (c *fvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseNum(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fv := fincalc.FutureValue(amount, rate, c.periods)

	rec := fincalc.NewRecord("fv")
	rec.AddInput("amount", formatNum(amount))
	rec.AddInput("rate", formatNum(rate))
	rec.AddInput("periods", fmt.Sprint(c.periods))
	rec.AddOutput("future-value", formatNum(fv))
	AppendRecord(rec)

	fmt.Printf("Future value: %s\n", fincalc.NewMoneyFromFloat(fv, *currency))
	return subcommands.ExitSuccess
}
