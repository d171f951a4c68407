package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

type cagrCmd struct {
	begin   string
	end     string
	periods int
}

func (*cagrCmd) Name() string     { return "cagr" }
func (*cagrCmd) Synopsis() string { return "compute a compound annual growth rate" }
func (*cagrCmd) Usage() string {
	return `fcs cagr -begin <value> -end <value> -periods <n>

  Computes the constant annual growth rate that takes the beginning
  value to the ending value over the given number of periods.

Usage Examples:
$ fcs cagr -begin 1000 -end 2000 -periods 10
`
}

func (c *cagrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.begin, "begin", "", "beginning value")
	f.StringVar(&c.end, "end", "", "ending value")
	f.IntVar(&c.periods, "periods", 1, "number of periods")
}

func (c *cagrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	begin, err := parseNum(c.begin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := parseNum(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cagr, err := fincalc.CAGR(begin, end, c.periods)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("cagr")
	rec.AddInput("begin", formatNum(begin))
	rec.AddInput("end", formatNum(end))
	rec.AddInput("periods", fmt.Sprint(c.periods))
	rec.AddOutput("cagr", formatNum(cagr))
	AppendRecord(rec)

	fmt.Printf("CAGR: %s\n", fincalc.AsPercent(cagr))
	return subcommands.ExitSuccess
}
