// Package cmd implements the CLI application of the finance calculator.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&npvCmd{}, "cash flows")
	c.Register(&irrCmd{}, "cash flows")
	c.Register(&paybackCmd{}, "cash flows")
	c.Register(&projectCmd{}, "cash flows")

	c.Register(&dcfCmd{}, "valuation")
	c.Register(&waccCmd{}, "valuation")
	c.Register(&capmCmd{}, "valuation")

	c.Register(&cagrCmd{}, "growth")
	c.Register(&pvCmd{}, "growth")
	c.Register(&fvCmd{}, "growth")

	c.Register(&bondCmd{}, "bonds")
	c.Register(&ytmCmd{}, "bonds")

	c.Register(&sciCmd{}, "scientific")

	c.Register(&historyCmd{}, "history")
	c.Register(&exportCmd{}, "history")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var historyFile = flag.String("history-file", "history.jsonl", "Path to the calculation history file (JSONL format)")
var currency = flag.String("currency", "USD", "Currency code used to format monetary results")

// AppendRecord appends a single calculation record to the history file.
// The history is best effort: a failed write warns on stderr but never
// hides the calculation result.
func AppendRecord(rec fincalc.Record) {
	f, err := os.OpenFile(*historyFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("warning: cannot open history file %q: %v", *historyFile, err)
		return
	}
	defer f.Close()

	if err := fincalc.EncodeRecord(f, rec); err != nil {
		log.Printf("warning: cannot append to history file %q: %v", *historyFile, err)
	}
}

// DecodeHistory reads all records from the app history file. A missing
// file is an empty history.
func DecodeHistory() ([]fincalc.Record, error) {
	f, err := os.Open(*historyFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, history file does not exist, using an empty history instead")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fincalc.DecodeHistory(f)
}
