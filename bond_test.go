package fincalc

import (
	"errors"
	"math"
	"testing"
)

func TestBondPrice_Par(t *testing.T) {
	// When the coupon rate equals the required yield, the bond prices
	// at par whatever the maturity or payment frequency.
	for _, years := range []int{1, 5, 10, 30} {
		for _, freq := range []int{1, 2, 4, 12} {
			got, err := BondPrice(1000, 0.05, 0.05, years, freq)
			if err != nil {
				t.Fatalf("BondPrice(1000, 0.05, 0.05, %d, %d) returned unexpected error: %v", years, freq, err)
			}
			if !approx(got.Price, 1000, 1e-6) {
				t.Errorf("BondPrice(1000, 0.05, 0.05, %d, %d).Price = %v, want 1000", years, freq, got.Price)
			}
		}
	}
}

func TestBondPrice_Discount(t *testing.T) {
	// Coupon below yield: the bond trades at a discount.
	got, err := BondPrice(1000, 0.05, 0.06, 10, 2)
	if err != nil {
		t.Fatalf("BondPrice() returned unexpected error: %v", err)
	}
	if !approx(got.Price, 925.61, 0.01) {
		t.Errorf("Price = %v, want ≈925.61", got.Price)
	}
	if got.Price != got.PVCoupons+got.PVFaceValue {
		t.Errorf("Price = %v, want PVCoupons + PVFaceValue = %v", got.Price, got.PVCoupons+got.PVFaceValue)
	}
	if !approx(got.CouponPayment, 50, 1e-9) {
		t.Errorf("CouponPayment = %v, want 50", got.CouponPayment)
	}
	if !approx(got.CurrentYield, 50/got.Price, 1e-12) {
		t.Errorf("CurrentYield = %v, want %v", got.CurrentYield, 50/got.Price)
	}
	// Duration of a coupon bond is strictly below its maturity.
	if got.Duration <= 0 || got.Duration >= 10 {
		t.Errorf("Duration = %v, want within (0, 10)", got.Duration)
	}
}

func TestBondPrice_ZeroYield(t *testing.T) {
	// The annuity formula divides by the period yield; the zero-yield
	// limit must be taken explicitly.
	got, err := BondPrice(1000, 0.05, 0, 10, 2)
	if err != nil {
		t.Fatalf("BondPrice() returned unexpected error: %v", err)
	}
	if !approx(got.PVCoupons, 500, 1e-9) { // 25 per period × 20 periods
		t.Errorf("PVCoupons = %v, want 500", got.PVCoupons)
	}
	if !approx(got.PVFaceValue, 1000, 1e-9) {
		t.Errorf("PVFaceValue = %v, want 1000", got.PVFaceValue)
	}
	if !approx(got.Price, 1500, 1e-9) {
		t.Errorf("Price = %v, want 1500", got.Price)
	}
}

func TestBondPrice_ZeroCouponDuration(t *testing.T) {
	// A zero-coupon bond has a single cash flow at maturity, so its
	// Macaulay duration is exactly its maturity.
	got, err := BondPrice(1000, 0, 0.05, 10, 2)
	if err != nil {
		t.Fatalf("BondPrice() returned unexpected error: %v", err)
	}
	if !approx(got.Duration, 10, 1e-9) {
		t.Errorf("Duration = %v, want 10", got.Duration)
	}
	if got.CurrentYield != 0 {
		t.Errorf("CurrentYield = %v, want 0", got.CurrentYield)
	}
}

func TestBondPrice_Guards(t *testing.T) {
	testCases := []struct {
		name   string
		face   float64
		coupon float64
		yield  float64
		years  int
		freq   int
	}{
		{"zero face value", 0, 0.05, 0.05, 10, 2},
		{"negative coupon", 1000, -0.01, 0.05, 10, 2},
		{"zero maturity", 1000, 0.05, 0.05, 0, 2},
		{"zero frequency", 1000, 0.05, 0.05, 10, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BondPrice(tc.face, tc.coupon, tc.yield, tc.years, tc.freq); err == nil {
				t.Error("BondPrice() should fail")
			}
		})
	}
}

func TestYieldToMaturity(t *testing.T) {
	t.Run("recovers the yield of a discount bond", func(t *testing.T) {
		got, err := YieldToMaturity(925.61, 1000, 0.05, 10, 2, DefaultYTMOptions())
		if err != nil {
			t.Fatalf("YieldToMaturity() returned unexpected error: %v", err)
		}
		if !approx(got, 0.06, 0.01) {
			t.Errorf("YieldToMaturity() = %v, want ≈0.06", got)
		}
	})

	t.Run("par bond yields its coupon rate", func(t *testing.T) {
		got, err := YieldToMaturity(1000, 1000, 0.05, 10, 2, DefaultYTMOptions())
		if err != nil {
			t.Fatalf("YieldToMaturity() returned unexpected error: %v", err)
		}
		if !approx(got, 0.05, 0.01) {
			t.Errorf("YieldToMaturity() = %v, want ≈0.05", got)
		}
	})

	t.Run("found yield prices the bond at the target", func(t *testing.T) {
		const target = 850
		ytm, err := YieldToMaturity(target, 1000, 0.04, 7, 2, DefaultYTMOptions())
		if err != nil {
			t.Fatalf("YieldToMaturity() returned unexpected error: %v", err)
		}
		repriced, err := BondPrice(1000, 0.04, ytm, 7, 2)
		if err != nil {
			t.Fatalf("BondPrice() returned unexpected error: %v", err)
		}
		if math.Abs(repriced.Price-target) >= 0.01 {
			t.Errorf("repricing at the found yield gives %v, want within 0.01 of %v", repriced.Price, target)
		}
	})

	t.Run("guard band aborts an extreme search", func(t *testing.T) {
		// A price this low implies a yield far above 100%: the trial
		// must leave the guard band.
		_, err := YieldToMaturity(10, 1000, 0.05, 10, 2, DefaultYTMOptions())
		if !errors.Is(err, ErrNoConvergence) {
			t.Fatalf("YieldToMaturity() error = %v, want ErrNoConvergence", err)
		}
	})

	t.Run("invalid bond parameters are rejected upfront", func(t *testing.T) {
		if _, err := YieldToMaturity(925.61, 1000, 0.05, 0, 2, DefaultYTMOptions()); err == nil {
			t.Error("YieldToMaturity() with zero maturity should fail")
		}
	})
}
