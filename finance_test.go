package fincalc

import (
	"errors"
	"math"
	"testing"
)

// approx reports whether got is within tol of want.
func approx(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestNPV(t *testing.T) {
	testCases := []struct {
		name      string
		rate      float64
		cashflows []float64
		want      float64
	}{
		{
			name:      "classic project",
			rate:      0.10,
			cashflows: []float64{-1000, 500, 500, 500},
			want:      243.42599549211127, // -1000 + 500/1.1 + 500/1.21 + 500/1.331
		},
		{
			name:      "zero rate sums the flows",
			rate:      0,
			cashflows: []float64{1, 2, 3},
			want:      6,
		},
		{
			name:      "single flow is undiscounted",
			rate:      0.5,
			cashflows: []float64{100},
			want:      100,
		},
		{
			name:      "empty series",
			rate:      0.1,
			cashflows: nil,
			want:      0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NPV(tc.rate, tc.cashflows)
			if !approx(got, tc.want, 1e-9) {
				t.Errorf("NPV(%v, %v) = %v, want %v", tc.rate, tc.cashflows, got, tc.want)
			}
		})
	}
}

func TestIRR(t *testing.T) {
	t.Run("single period recovers the exact rate", func(t *testing.T) {
		got, err := IRR([]float64{-100, 110}, DefaultIRRGuess)
		if err != nil {
			t.Fatalf("IRR() returned unexpected error: %v", err)
		}
		if !approx(got, 0.10, 1e-6) {
			t.Errorf("IRR() = %v, want 0.10", got)
		}
	})

	t.Run("found rate is a root of NPV", func(t *testing.T) {
		cashflows := []float64{-1000, 500, 500, 500}
		rate, err := IRR(cashflows, DefaultIRRGuess)
		if err != nil {
			t.Fatalf("IRR() returned unexpected error: %v", err)
		}
		if residual := NPV(rate, cashflows); math.Abs(residual) >= 1e-6 {
			t.Errorf("NPV at the found rate %v is %v, want |NPV| < 1e-6", rate, residual)
		}
	})

	t.Run("all positive flows never cross zero", func(t *testing.T) {
		_, err := IRR([]float64{100, 200, 300}, DefaultIRRGuess)
		if !errors.Is(err, ErrNoConvergence) {
			t.Fatalf("IRR() error = %v, want ErrNoConvergence", err)
		}
	})

	t.Run("identical inputs give identical results", func(t *testing.T) {
		cashflows := []float64{-1000, 400, 400, 400}
		first, err1 := IRR(cashflows, DefaultIRRGuess)
		second, err2 := IRR(cashflows, DefaultIRRGuess)
		if err1 != nil || err2 != nil {
			t.Fatalf("IRR() returned unexpected errors: %v, %v", err1, err2)
		}
		if first != second {
			t.Errorf("IRR() is not reproducible: %v != %v", first, second)
		}
	})
}

func TestPaybackPeriod(t *testing.T) {
	testCases := []struct {
		name      string
		cashflows []float64
		want      float64
	}{
		{
			name:      "exact single period recovery",
			cashflows: []float64{-1000, 1000},
			want:      1,
		},
		{
			name:      "interpolated fractional year",
			cashflows: []float64{-1000, 400, 400, 400},
			want:      2.5, // 2 + 200/400
		},
		{
			name:      "recovery within the first period",
			cashflows: []float64{-500, 1000},
			want:      0.5,
		},
		{
			name:      "recovery on a later exact boundary",
			cashflows: []float64{-1000, 400, 600},
			want:      2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PaybackPeriod(tc.cashflows)
			if err != nil {
				t.Fatalf("PaybackPeriod(%v) returned unexpected error: %v", tc.cashflows, err)
			}
			if !approx(got, tc.want, 1e-9) {
				t.Errorf("PaybackPeriod(%v) = %v, want %v", tc.cashflows, got, tc.want)
			}
		})
	}

	t.Run("failures", func(t *testing.T) {
		for _, cashflows := range [][]float64{
			nil,               // no flows at all
			{1000, -500},      // no initial investment
			{-1000, 100, 100}, // never recovered
		} {
			if _, err := PaybackPeriod(cashflows); !errors.Is(err, ErrNoPayback) {
				t.Errorf("PaybackPeriod(%v) error = %v, want ErrNoPayback", cashflows, err)
			}
		}
	})
}

func TestDCFValuation(t *testing.T) {
	freeCashflows := []float64{100, 110, 121}
	got, err := DCFValuation(freeCashflows, 0.02, 0.10, 0)
	if err != nil {
		t.Fatalf("DCFValuation() returned unexpected error: %v", err)
	}

	// Each flow grows 10% a year and is discounted at 10%, so every
	// present value is 100/1.1.
	wantPV := 3 * 100 / 1.1
	if !approx(got.PVCashflows, wantPV, 1e-9) {
		t.Errorf("PVCashflows = %v, want %v", got.PVCashflows, wantPV)
	}
	wantTerminal := 121 * 1.02 / 0.08
	if !approx(got.TerminalValue, wantTerminal, 1e-9) {
		t.Errorf("TerminalValue = %v, want %v", got.TerminalValue, wantTerminal)
	}
	if !approx(got.PVTerminalValue, wantTerminal/math.Pow(1.1, 3), 1e-9) {
		t.Errorf("PVTerminalValue = %v, want %v", got.PVTerminalValue, wantTerminal/math.Pow(1.1, 3))
	}
	if got.EnterpriseValue != got.PVCashflows+got.PVTerminalValue {
		t.Errorf("EnterpriseValue = %v, want PVCashflows + PVTerminalValue = %v", got.EnterpriseValue, got.PVCashflows+got.PVTerminalValue)
	}
	if len(got.CashflowBreakdown) != len(freeCashflows) {
		t.Fatalf("CashflowBreakdown has %d entries, want %d", len(got.CashflowBreakdown), len(freeCashflows))
	}

	t.Run("terminal year override", func(t *testing.T) {
		later, err := DCFValuation(freeCashflows, 0.02, 0.10, 5)
		if err != nil {
			t.Fatalf("DCFValuation() returned unexpected error: %v", err)
		}
		if !approx(later.PVTerminalValue, wantTerminal/math.Pow(1.1, 5), 1e-9) {
			t.Errorf("PVTerminalValue = %v, want %v", later.PVTerminalValue, wantTerminal/math.Pow(1.1, 5))
		}
	})

	t.Run("guards", func(t *testing.T) {
		if _, err := DCFValuation(nil, 0.02, 0.10, 0); err == nil {
			t.Error("DCFValuation() with no cash flows should fail")
		}
		if _, err := DCFValuation(freeCashflows, 0.10, 0.10, 0); err == nil {
			t.Error("DCFValuation() with discount rate equal to growth should fail")
		}
		if _, err := DCFValuation(freeCashflows, 0.12, 0.10, 0); err == nil {
			t.Error("DCFValuation() with discount rate below growth should fail")
		}
	})
}

func TestWACC(t *testing.T) {
	got, err := WACC(0.12, 0.06, 0.25, 800, 200)
	if err != nil {
		t.Fatalf("WACC() returned unexpected error: %v", err)
	}
	// 0.8×0.12 + 0.2×0.06×0.75
	if !approx(got, 0.105, 1e-12) {
		t.Errorf("WACC() = %v, want 0.105", got)
	}

	if _, err := WACC(0.12, 0.06, 0.25, 0, 0); err == nil {
		t.Error("WACC() with zero capitalization should fail")
	}
}

func TestCAPM(t *testing.T) {
	if got := CAPM(0.03, 1.2, 0.08); !approx(got, 0.09, 1e-12) {
		t.Errorf("CAPM() = %v, want 0.09", got)
	}
}

func TestCAGR(t *testing.T) {
	got, err := CAGR(100, 200, 10)
	if err != nil {
		t.Fatalf("CAGR() returned unexpected error: %v", err)
	}
	if want := math.Pow(2, 0.1) - 1; !approx(got, want, 1e-12) {
		t.Errorf("CAGR() = %v, want %v", got, want)
	}

	t.Run("domain errors", func(t *testing.T) {
		if _, err := CAGR(0, 200, 10); err == nil {
			t.Error("CAGR() with zero beginning value should fail")
		}
		if _, err := CAGR(-100, 200, 10); err == nil {
			t.Error("CAGR() with negative beginning value should fail")
		}
		if _, err := CAGR(100, -200, 10); err == nil {
			t.Error("CAGR() with negative ending value should fail")
		}
		if _, err := CAGR(100, 200, 0); err == nil {
			t.Error("CAGR() with zero periods should fail")
		}
	})
}

func TestPresentFutureValue(t *testing.T) {
	if got := FutureValue(1000, 0.05, 10); !approx(got, 1628.894626777442, 1e-9) {
		t.Errorf("FutureValue() = %v, want 1628.894626777442", got)
	}
	// Discounting a compounded value recovers the principal.
	if got := PresentValue(FutureValue(1000, 0.05, 10), 0.05, 10); !approx(got, 1000, 1e-9) {
		t.Errorf("PresentValue(FutureValue()) = %v, want 1000", got)
	}
}

func TestProjectCashflows(t *testing.T) {
	got, err := ProjectCashflows(1000, 0.10, 3)
	if err != nil {
		t.Fatalf("ProjectCashflows() returned unexpected error: %v", err)
	}
	want := []float64{1100, 1210, 1331}
	if len(got.Flows) != len(want) {
		t.Fatalf("Flows has %d entries, want %d", len(got.Flows), len(want))
	}
	for i := range want {
		if !approx(got.Flows[i], want[i], 1e-9) {
			t.Errorf("Flows[%d] = %v, want %v", i, got.Flows[i], want[i])
		}
	}
	if !approx(got.Total, 3641, 1e-9) {
		t.Errorf("Total = %v, want 3641", got.Total)
	}
	if !approx(got.Average, 3641.0/3, 1e-9) {
		t.Errorf("Average = %v, want %v", got.Average, 3641.0/3)
	}
	if !approx(got.Growth, 0.10, 1e-9) {
		t.Errorf("Growth = %v, want 0.10", got.Growth)
	}

	t.Run("guards", func(t *testing.T) {
		if _, err := ProjectCashflows(1000, 0.10, 0); err == nil {
			t.Error("ProjectCashflows() with zero years should fail")
		}
		if _, err := ProjectCashflows(0, 0.10, 3); err == nil {
			t.Error("ProjectCashflows() with zero initial flow should fail")
		}
	})
}
