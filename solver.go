package fincalc

import (
	"fmt"
	"math"
)

// derivativeFloor is the magnitude below which a derivative is
// considered vanished and the search is aborted instead of dividing.
const derivativeFloor = 1e-10

// NewtonOptions tune a Newton-Raphson root search.
//
// The zero value is not usable: callers are expected to start from the
// defaults of the calculation they invoke (see DefaultYTMOptions) and
// override individual fields.
type NewtonOptions struct {
	// Guess is the initial trial value.
	Guess float64
	// Tolerance is the convergence test: the search succeeds when
	// |fn(x)| drops below it.
	Tolerance float64
	// MaxIterations caps the search. It is the only bounded wait in the
	// package: a search that has not converged by then fails.
	MaxIterations int
	// Bounded aborts the search as soon as a trial value leaves
	// [Min, Max]. IRR runs unbounded; yield to maturity keeps the
	// original guard band.
	Bounded  bool
	Min, Max float64
}

// newton searches for a root of fn starting at opts.Guess, using deriv
// as the first derivative. It returns ErrNoConvergence (wrapped with
// the failure cause) when the initial guess or a trial value leaves the
// guard band, the derivative vanishes, or the iteration cap is reached.
func newton(fn, deriv func(float64) float64, opts NewtonOptions) (float64, error) {
	x := opts.Guess
	if opts.Bounded && (x < opts.Min || x > opts.Max) {
		return 0, fmt.Errorf("initial guess %g outside guard band [%g, %g]: %w", x, opts.Min, opts.Max, ErrNoConvergence)
	}
	for iter := 0; iter < opts.MaxIterations; iter++ {
		fx := fn(x)
		if math.Abs(fx) < opts.Tolerance {
			return x, nil
		}

		dfx := deriv(x)
		if math.Abs(dfx) < derivativeFloor {
			return 0, fmt.Errorf("derivative vanished at iteration %d: %w", iter, ErrNoConvergence)
		}

		x -= fx / dfx

		if opts.Bounded && (x < opts.Min || x > opts.Max) {
			return 0, fmt.Errorf("trial value %g left guard band [%g, %g] at iteration %d: %w", x, opts.Min, opts.Max, iter, ErrNoConvergence)
		}
	}
	return 0, fmt.Errorf("no root after %d iterations: %w", opts.MaxIterations, ErrNoConvergence)
}

// centralDifference returns a numerical first derivative of fn, using
// the central-difference quotient with step h.
func centralDifference(fn func(float64) float64, h float64) func(float64) float64 {
	return func(x float64) float64 {
		return (fn(x+h) - fn(x-h)) / (2 * h)
	}
}
