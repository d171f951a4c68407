package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

type sciCmd struct {
	mode string
}

func (*sciCmd) Name() string     { return "sci" }
func (*sciCmd) Synopsis() string { return "evaluate a scientific function" }
func (*sciCmd) Usage() string {
	return `fcs sci [-mode deg|rad] <function> <args...>

  Evaluates one of the calculator's scientific functions:

    sqrt cbrt root log ln logb exp pow fact
    sin cos tan asin acos atan

  Trigonometric functions honor the -mode flag.

Usage Examples:
$ fcs sci sqrt 2
$ fcs sci -mode deg sin 30
$ fcs sci pow 2 10
`
}

func (c *sciCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", "deg", "angle mode for trigonometric functions (deg or rad)")
}

func (c *sciCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := fincalc.ParseAngleMode(c.mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: a function name is required")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	args := make([]float64, 0, f.NArg()-1)
	for _, raw := range f.Args()[1:] {
		v, err := parseNum(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		args = append(args, v)
	}

	result, err := evalSci(name, args, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := fincalc.NewRecord("sci")
	rec.AddInput("function", name)
	for i, a := range args {
		rec.AddInput(fmt.Sprintf("arg%d", i+1), formatNum(a))
	}
	rec.AddOutput("result", formatNum(result))
	AppendRecord(rec)

	fmt.Println(formatNum(result))
	return subcommands.ExitSuccess
}

func evalSci(name string, args []float64, mode fincalc.AngleMode) (float64, error) {
	arity := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d argument(s), got %d", name, n, len(args))
		}
		return nil
	}

	switch name {
	case "sqrt":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.SquareRoot(args[0])
	case "cbrt":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.CubeRoot(args[0]), nil
	case "root":
		if err := arity(2); err != nil {
			return 0, err
		}
		return fincalc.NthRoot(args[0], args[1])
	case "log":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Log10(args[0])
	case "ln":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Ln(args[0])
	case "logb":
		if err := arity(2); err != nil {
			return 0, err
		}
		return fincalc.LogBase(args[0], args[1])
	case "exp":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Exp(args[0]), nil
	case "pow":
		if err := arity(2); err != nil {
			return 0, err
		}
		return fincalc.Power(args[0], args[1]), nil
	case "fact":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Factorial(args[0])
	case "sin":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Sin(args[0], mode), nil
	case "cos":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Cos(args[0], mode), nil
	case "tan":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Tan(args[0], mode), nil
	case "asin":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Asin(args[0], mode)
	case "acos":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Acos(args[0], mode)
	case "atan":
		if err := arity(1); err != nil {
			return 0, err
		}
		return fincalc.Atan(args[0], mode), nil
	default:
		return 0, fmt.Errorf("unknown function %q", name)
	}
}
