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

type bondCmd struct {
	face   string
	coupon string
	yield  string
	years  int
	freq   int
}

func (*bondCmd) Name() string     { return "bond" }
func (*bondCmd) Synopsis() string { return "price a bond at a required yield" }
func (*bondCmd) Usage() string {
	return `fcs bond -face <value> -coupon <percent> -yield <percent> -years <n> [-freq <n>]

  Prices a fixed-coupon bond by discounting its coupons and face value
  at the required yield, and reports current yield and Macaulay
  duration alongside.

Usage Examples:
$ fcs bond -face 1000 -coupon 5 -yield 6 -years 10
`
}

func (c *bondCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.face, "face", "", "face value")
	f.StringVar(&c.coupon, "coupon", "", "annual coupon rate, in percent")
	f.StringVar(&c.yield, "yield", "", "required annual yield, in percent")
	f.IntVar(&c.years, "years", 0, "years to maturity")
	f.IntVar(&c.freq, "freq", 2, "coupon payments per year")
}

func (c *bondCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	yield, err := parseRate(c.yield)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := fincalc.BondPrice(face, coupon, yield, c.years, c.freq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("bond")
	rec.AddInput("face", formatNum(face))
	rec.AddInput("coupon", formatNum(coupon))
	rec.AddInput("yield", formatNum(yield))
	rec.AddInput("years", fmt.Sprint(c.years))
	rec.AddInput("freq", fmt.Sprint(c.freq))
	rec.AddOutput("price", formatNum(b.Price))
	rec.AddOutput("duration", formatNum(b.Duration))
	AppendRecord(rec)

	printMarkdown(renderer.BondMarkdown(&b, fincalc.AsPercent(yield), *currency))
	return subcommands.ExitSuccess
}
