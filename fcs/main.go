package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fincalc/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It must
// stay in sync with cmd.Register.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"history-file": predict.Files("*.jsonl"),
		"currency":     predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
	},
	Sub: map[string]*complete.Command{
		"npv":     {Flags: map[string]complete.Predictor{"rate": predict.Something, "cf": predict.Something, "guess": predict.Something}},
		"irr":     {Flags: map[string]complete.Predictor{"cf": predict.Something, "guess": predict.Something}},
		"payback": {Flags: map[string]complete.Predictor{"cf": predict.Something}},
		"project": {Flags: map[string]complete.Predictor{"initial": predict.Something, "growth": predict.Something, "years": predict.Something}},
		"dcf":     {Flags: map[string]complete.Predictor{"cf": predict.Something, "growth": predict.Something, "rate": predict.Something, "terminal-year": predict.Something}},
		"wacc":    {Flags: map[string]complete.Predictor{"ce": predict.Something, "cd": predict.Something, "tax": predict.Something, "e": predict.Something, "d": predict.Something}},
		"capm":    {Flags: map[string]complete.Predictor{"rf": predict.Something, "beta": predict.Something, "rm": predict.Something}},
		"cagr":    {Flags: map[string]complete.Predictor{"begin": predict.Something, "end": predict.Something, "periods": predict.Something}},
		"pv":      {Flags: map[string]complete.Predictor{"amount": predict.Something, "rate": predict.Something, "periods": predict.Something}},
		"fv":      {Flags: map[string]complete.Predictor{"amount": predict.Something, "rate": predict.Something, "periods": predict.Something}},
		"bond":    {Flags: map[string]complete.Predictor{"face": predict.Something, "coupon": predict.Something, "yield": predict.Something, "years": predict.Something, "freq": predict.Something}},
		"ytm":     {Flags: map[string]complete.Predictor{"price": predict.Something, "face": predict.Something, "coupon": predict.Something, "years": predict.Something, "freq": predict.Something, "guess": predict.Something}},
		"sci":     {Flags: map[string]complete.Predictor{"mode": predict.Set{"deg", "rad"}}},
		"history": {Flags: map[string]complete.Predictor{"n": predict.Something, "op": predict.Something}},
		"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
		"topic":   {Args: predict.Set{"readme", "cashflows", "valuation", "bonds", "scientific", "history"}},
	},
}

func main() {
	completion.Complete("fcs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
