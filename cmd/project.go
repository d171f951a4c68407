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

type projectCmd struct {
	initial string
	growth  string
	years   int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project a growing cash flow series" }
func (*projectCmd) Usage() string {
	return `fcs project -initial <amount> -growth <percent> -years <n>

  Projects a cash flow series from a first-year amount and a constant
  growth rate. Handy for building the input to 'dcf' or 'npv'.

Usage Examples:
$ fcs project -initial 1000 -growth 10 -years 3
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.initial, "initial", "", "first-year cash flow")
	f.StringVar(&c.growth, "growth", "", "annual growth rate, in percent")
	f.IntVar(&c.years, "years", 5, "number of years to project")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initial, err := parseNum(c.initial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	growth, err := parseRate(c.growth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := fincalc.ProjectCashflows(initial, growth, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("project")
	rec.AddInput("initial", formatNum(initial))
	rec.AddInput("growth", formatNum(growth))
	rec.AddInput("years", fmt.Sprint(c.years))
	rec.AddOutput("total", formatNum(p.Total))
	AppendRecord(rec)

	printMarkdown(renderer.ProjectionMarkdown(&p, *currency))
	return subcommands.ExitSuccess
}
