package fincalc

// this file holds the scientific keypad of the calculator: guarded
// wrappers around the math library. Domain violations are explicit
// errors, never a silent NaN.

import (
	"fmt"
	"math"
)

// AngleMode selects the unit of trigonometric arguments and results.
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
)

// ParseAngleMode parses "deg"/"degrees" or "rad"/"radians".
func ParseAngleMode(s string) (AngleMode, error) {
	switch s {
	case "deg", "degrees":
		return Degrees, nil
	case "rad", "radians":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("angle mode must be 'deg' or 'rad', got %q", s)
}

// Factorial computes n! for a non-negative integer given as a float
// (the keypad has no integer entry). Values above 170 overflow float64.
func Factorial(n float64) (float64, error) {
	if n < 0 || n != math.Trunc(n) {
		return 0, fmt.Errorf("factorial is only defined for non-negative integers, got %v", n)
	}
	if n > 170 {
		return 0, fmt.Errorf("factorial of %v overflows", n)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// SquareRoot computes √x, rejecting negative arguments.
func SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("square root of negative number %v", x)
	}
	return math.Sqrt(x), nil
}

// CubeRoot computes ∛x. Negative arguments are valid.
func CubeRoot(x float64) float64 {
	return math.Cbrt(x)
}

// NthRoot computes the nth root of x. The root order must not be zero,
// and x must not be negative (fractional exponents of negative numbers
// have no real solution in general).
func NthRoot(x, n float64) (float64, error) {
	if n == 0 {
		return 0, fmt.Errorf("cannot compute the 0th root")
	}
	if x < 0 {
		return 0, fmt.Errorf("root of negative number %v", x)
	}
	return math.Pow(x, 1/n), nil
}

// Exp computes e raised to the power x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Power computes x raised to the power y.
func Power(x, y float64) float64 {
	return math.Pow(x, y)
}

// Log10 computes the base-10 logarithm of x, which must be positive.
func Log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("logarithm undefined for non-positive number %v", x)
	}
	return math.Log10(x), nil
}

// Ln computes the natural logarithm of x, which must be positive.
func Ln(x float64) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("logarithm undefined for non-positive number %v", x)
	}
	return math.Log(x), nil
}

// LogBase computes the logarithm of x in the given base.
func LogBase(x, base float64) (float64, error) {
	if x <= 0 || base <= 0 || base == 1 {
		return 0, fmt.Errorf("invalid logarithm parameters x=%v base=%v", x, base)
	}
	return math.Log(x) / math.Log(base), nil
}

// Sin computes the sine of x in the given angle mode.
func Sin(x float64, mode AngleMode) float64 {
	return math.Sin(toRadians(x, mode))
}

// Cos computes the cosine of x in the given angle mode.
func Cos(x float64, mode AngleMode) float64 {
	return math.Cos(toRadians(x, mode))
}

// Tan computes the tangent of x in the given angle mode.
func Tan(x float64, mode AngleMode) float64 {
	return math.Tan(toRadians(x, mode))
}

// Asin computes the arcsine of x, in the given angle mode. x must lie
// in [-1, 1].
func Asin(x float64, mode AngleMode) (float64, error) {
	if x < -1 || x > 1 {
		return 0, fmt.Errorf("arcsine argument %v outside [-1, 1]", x)
	}
	return fromRadians(math.Asin(x), mode), nil
}

// Acos computes the arccosine of x, in the given angle mode. x must lie
// in [-1, 1].
func Acos(x float64, mode AngleMode) (float64, error) {
	if x < -1 || x > 1 {
		return 0, fmt.Errorf("arccosine argument %v outside [-1, 1]", x)
	}
	return fromRadians(math.Acos(x), mode), nil
}

// Atan computes the arctangent of x, in the given angle mode.
func Atan(x float64, mode AngleMode) float64 {
	return fromRadians(math.Atan(x), mode)
}

func toRadians(x float64, mode AngleMode) float64 {
	if mode == Degrees {
		return x * math.Pi / 180
	}
	return x
}

func fromRadians(x float64, mode AngleMode) float64 {
	if mode == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

// Memory is the calculator memory register (M+, M−, MS, MR, MC). The
// zero value is an empty register. It is the one stateful helper of the
// package and is owned by a single presentation session, so it needs no
// synchronization.
type Memory struct {
	value float64
}

func (m *Memory) Add(v float64)      { m.value += v }
func (m *Memory) Subtract(v float64) { m.value -= v }
func (m *Memory) Store(v float64)    { m.value = v }
func (m *Memory) Recall() float64    { return m.value }
func (m *Memory) Clear()             { m.value = 0 }
