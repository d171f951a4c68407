package fincalc

import (
	"math"
	"testing"
)

func TestFactorial(t *testing.T) {
	testCases := []struct {
		n    float64
		want float64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}
	for _, tc := range testCases {
		got, err := Factorial(tc.n)
		if err != nil {
			t.Fatalf("Factorial(%v) returned unexpected error: %v", tc.n, err)
		}
		if got != tc.want {
			t.Errorf("Factorial(%v) = %v, want %v", tc.n, got, tc.want)
		}
	}

	for _, n := range []float64{-1, 2.5, 171} {
		if _, err := Factorial(n); err == nil {
			t.Errorf("Factorial(%v) should fail", n)
		}
	}
}

func TestRoots(t *testing.T) {
	if got, err := SquareRoot(9); err != nil || got != 3 {
		t.Errorf("SquareRoot(9) = %v, %v, want 3", got, err)
	}
	if _, err := SquareRoot(-1); err == nil {
		t.Error("SquareRoot(-1) should fail")
	}
	if got := CubeRoot(-27); got != -3 {
		t.Errorf("CubeRoot(-27) = %v, want -3", got)
	}
	if got, err := NthRoot(32, 5); err != nil || !approx(got, 2, 1e-9) {
		t.Errorf("NthRoot(32, 5) = %v, %v, want 2", got, err)
	}
	if _, err := NthRoot(8, 0); err == nil {
		t.Error("NthRoot(8, 0) should fail")
	}
	if _, err := NthRoot(-8, 3); err == nil {
		t.Error("NthRoot(-8, 3) should fail")
	}
}

func TestExpPower(t *testing.T) {
	if got := Exp(1); !approx(got, math.E, 1e-12) {
		t.Errorf("Exp(1) = %v, want e", got)
	}
	if got := Power(2, 10); got != 1024 {
		t.Errorf("Power(2, 10) = %v, want 1024", got)
	}
}

func TestLogarithms(t *testing.T) {
	if got, err := Log10(1000); err != nil || !approx(got, 3, 1e-12) {
		t.Errorf("Log10(1000) = %v, %v, want 3", got, err)
	}
	if got, err := Ln(math.E); err != nil || !approx(got, 1, 1e-12) {
		t.Errorf("Ln(e) = %v, %v, want 1", got, err)
	}
	if got, err := LogBase(8, 2); err != nil || !approx(got, 3, 1e-12) {
		t.Errorf("LogBase(8, 2) = %v, %v, want 3", got, err)
	}

	for _, x := range []float64{0, -1} {
		if _, err := Log10(x); err == nil {
			t.Errorf("Log10(%v) should fail", x)
		}
		if _, err := Ln(x); err == nil {
			t.Errorf("Ln(%v) should fail", x)
		}
	}
	if _, err := LogBase(8, 1); err == nil {
		t.Error("LogBase(8, 1) should fail")
	}
}

func TestTrigonometry(t *testing.T) {
	if got := Sin(30, Degrees); !approx(got, 0.5, 1e-12) {
		t.Errorf("Sin(30°) = %v, want 0.5", got)
	}
	if got := Cos(math.Pi, Radians); !approx(got, -1, 1e-12) {
		t.Errorf("Cos(π) = %v, want -1", got)
	}
	if got := Tan(45, Degrees); !approx(got, 1, 1e-12) {
		t.Errorf("Tan(45°) = %v, want 1", got)
	}
	if got, err := Asin(0.5, Degrees); err != nil || !approx(got, 30, 1e-9) {
		t.Errorf("Asin(0.5) = %v°, %v, want 30°", got, err)
	}
	if got, err := Acos(1, Radians); err != nil || !approx(got, 0, 1e-12) {
		t.Errorf("Acos(1) = %v, %v, want 0", got, err)
	}
	if got := Atan(1, Degrees); !approx(got, 45, 1e-9) {
		t.Errorf("Atan(1) = %v°, want 45°", got)
	}

	for _, x := range []float64{-1.5, 1.5} {
		if _, err := Asin(x, Radians); err == nil {
			t.Errorf("Asin(%v) should fail", x)
		}
		if _, err := Acos(x, Radians); err == nil {
			t.Errorf("Acos(%v) should fail", x)
		}
	}
}

func TestParseAngleMode(t *testing.T) {
	for s, want := range map[string]AngleMode{"deg": Degrees, "degrees": Degrees, "rad": Radians, "radians": Radians} {
		got, err := ParseAngleMode(s)
		if err != nil || got != want {
			t.Errorf("ParseAngleMode(%q) = %v, %v, want %v", s, got, err, want)
		}
	}
	if _, err := ParseAngleMode("grad"); err == nil {
		t.Error("ParseAngleMode(\"grad\") should fail")
	}
}

func TestMemory(t *testing.T) {
	var m Memory
	if m.Recall() != 0 {
		t.Errorf("fresh memory recalls %v, want 0", m.Recall())
	}
	m.Add(10)
	m.Add(5)
	m.Subtract(3)
	if got := m.Recall(); got != 12 {
		t.Errorf("Recall() = %v, want 12", got)
	}
	m.Store(100)
	if got := m.Recall(); got != 100 {
		t.Errorf("Recall() after Store = %v, want 100", got)
	}
	m.Clear()
	if got := m.Recall(); got != 0 {
		t.Errorf("Recall() after Clear = %v, want 0", got)
	}
}
