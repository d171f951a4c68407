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

type ytmCmd struct {
	price  string
	face   string
	coupon string
	years  int
	freq   int
	guess  string
}

func (*ytmCmd) Name() string     { return "ytm" }
func (*ytmCmd) Synopsis() string { return "find the yield to maturity implied by a bond's market price" }
func (*ytmCmd) Usage() string {
	return `fcs ytm -price <value> -face <value> -coupon <percent> -years <n> [-freq <n>]

  Searches for the annual yield at which the bond's computed price
  matches the observed market price. The search can fail on prices no
  plausible yield can produce.

Usage Examples:
$ fcs ytm -price 925.61 -face 1000 -coupon 5 -years 10
`
}

func (c *ytmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "price", "", "observed market price")
	f.StringVar(&c.face, "face", "", "face value")
	f.StringVar(&c.coupon, "coupon", "", "annual coupon rate, in percent")
	f.IntVar(&c.years, "years", 0, "years to maturity")
	f.IntVar(&c.freq, "freq", 2, "coupon payments per year")
	f.StringVar(&c.guess, "guess", "5", "initial guess, in percent")
}

func (c *ytmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := parseNum(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	face, err := parseNum(c.face)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	coupon, err := parseRate(c.coupon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	guess, err := parseRate(c.guess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	opts := fincalc.DefaultYTMOptions()
	opts.Guess = guess

	ytm, err := fincalc.YieldToMaturity(price, face, coupon, c.years, c.freq, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("ytm")
	rec.AddInput("price", formatNum(price))
	rec.AddInput("face", formatNum(face))
	rec.AddInput("coupon", formatNum(coupon))
	rec.AddInput("years", fmt.Sprint(c.years))
	rec.AddInput("freq", fmt.Sprint(c.freq))
	rec.AddOutput("ytm", formatNum(ytm))
	AppendRecord(rec)

	printMarkdown(renderer.YieldMarkdown(fincalc.AsPercent(ytm), price, *currency))
	return subcommands.ExitSuccess
}
