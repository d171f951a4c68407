package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	last int
	op   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list past calculations" }
func (*historyCmd) Usage() string {
	return `fcs history [-n <count>] [-op <name>]

  Lists the calculations recorded in the history file, most recent
  last. Use -op to keep only one operation and -n to limit the count.

Usage Examples:
$ fcs history -n 10
$ fcs history -op npv
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.last, "n", 0, "show only the last n records (0 for all)")
	f.StringVar(&c.op, "op", "", "show only records for this operation")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := DecodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.op != "" {
		kept := records[:0]
		for _, r := range records {
			if r.Op == c.op {
				kept = append(kept, r)
			}
		}
		records = kept
	}
	if c.last > 0 && len(records) > c.last {
		records = records[len(records)-c.last:]
	}

	printMarkdown(renderer.HistoryMarkdown(records))
	return subcommands.ExitSuccess
}
