package fincalc

import (
	"fmt"
	"math"
)

// BondResult is the price decomposition of a fixed-coupon bond. Price
// is always PVCoupons + PVFaceValue.
type BondResult struct {
	// Price is the present value of all remaining cash flows.
	Price float64
	// PVCoupons is the present value of the coupon annuity.
	PVCoupons float64
	// PVFaceValue is the present value of the principal repayment.
	PVFaceValue float64
	// CurrentYield is the annual coupon amount divided by Price.
	CurrentYield float64
	// Duration is the Macaulay duration, in years.
	Duration float64
	// CouponPayment is the annual coupon amount.
	CouponPayment float64
}

// BondPrice prices a fixed-coupon bond from its face value, annual
// coupon rate, required yield and maturity. paymentsPerYear is the
// coupon frequency (2 for the usual semi-annual schedule).
//
// The coupon annuity uses the closed ordinary-annuity form, falling
// back to coupon × periods when the period yield is zero (the limit of
// the formula as the yield goes to zero). Duration is a per-period
// weighted loop: it has no closed form because the final period carries
// both coupon and principal.
func BondPrice(faceValue, couponRate, yieldRate float64, yearsToMaturity, paymentsPerYear int) (BondResult, error) {
	if faceValue <= 0 {
		return BondResult{}, fmt.Errorf("face value must be positive, got %v", faceValue)
	}
	if couponRate < 0 {
		return BondResult{}, fmt.Errorf("coupon rate must not be negative, got %v", couponRate)
	}
	if yearsToMaturity <= 0 {
		return BondResult{}, fmt.Errorf("years to maturity must be positive, got %d", yearsToMaturity)
	}
	if paymentsPerYear <= 0 {
		return BondResult{}, fmt.Errorf("payments per year must be positive, got %d", paymentsPerYear)
	}

	periods := yearsToMaturity * paymentsPerYear
	coupon := faceValue * couponRate / float64(paymentsPerYear)
	periodYield := yieldRate / float64(paymentsPerYear)

	var pvCoupons float64
	if periodYield == 0 {
		pvCoupons = coupon * float64(periods)
	} else {
		pvCoupons = coupon * (1 - math.Pow(1+periodYield, -float64(periods))) / periodYield
	}
	pvFace := faceValue / math.Pow(1+periodYield, float64(periods))
	price := pvCoupons + pvFace

	var weightedTime float64
	for t := 1; t <= periods; t++ {
		cf := coupon
		if t == periods {
			cf += faceValue
		}
		pv := cf / math.Pow(1+periodYield, float64(t))
		weightedTime += float64(t) / float64(paymentsPerYear) * pv
	}

	return BondResult{
		Price:         price,
		PVCoupons:     pvCoupons,
		PVFaceValue:   pvFace,
		CurrentYield:  coupon * float64(paymentsPerYear) / price,
		Duration:      weightedTime / price,
		CouponPayment: coupon * float64(paymentsPerYear),
	}, nil
}

// DefaultYTMOptions returns the search settings the calculator has
// always used for yield to maturity: guess 5%, an absolute price
// tolerance of 0.01 currency units, 100 iterations, and a guard band of
// [-0.5, 1.0] on the trial yield.
//
// The guard band is a sanity clamp inherited from the original
// calculator; its fitness for extreme bond parameters is unverified, so
// it is carried in the options rather than hard-coded.
func DefaultYTMOptions() NewtonOptions {
	return NewtonOptions{
		Guess:         0.05,
		Tolerance:     0.01,
		MaxIterations: 100,
		Bounded:       true,
		Min:           -0.5,
		Max:           1.0,
	}
}

// YieldToMaturity solves for the yield at which the bond prices at
// targetPrice. The search is Newton-Raphson on the pricing function,
// with a central-difference numerical derivative (step 1e-4); there is
// no closed-form derivative here, unlike IRR.
//
// Callers normally pass DefaultYTMOptions(), overriding fields as
// needed. The search fails with ErrNoConvergence when the derivative
// vanishes, a trial yield leaves the guard band, or the iteration cap
// is reached.
func YieldToMaturity(targetPrice, faceValue, couponRate float64, yearsToMaturity, paymentsPerYear int, opts NewtonOptions) (float64, error) {
	// Reject invalid bond parameters upfront so the closure below
	// cannot fail.
	if _, err := BondPrice(faceValue, couponRate, opts.Guess, yearsToMaturity, paymentsPerYear); err != nil {
		return 0, err
	}

	priceDiff := func(ytm float64) float64 {
		result, _ := BondPrice(faceValue, couponRate, ytm, yearsToMaturity, paymentsPerYear)
		return result.Price - targetPrice
	}
	return newton(priceDiff, centralDifference(priceDiff, 1e-4), opts)
}
