package fincalc

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoConvergence is returned by the iterative searches (IRR, yield to
// maturity) when no root is found. It is final for that call: retrying
// with a different initial guess is the caller's decision.
var ErrNoConvergence = errors.New("root search did not converge")

// ErrNoPayback is returned by PaybackPeriod when the cumulative cash
// flows never recover the initial investment, or when there is no
// initial investment to recover.
var ErrNoPayback = errors.New("initial investment is never recovered")

// DefaultIRRGuess is the initial trial rate for IRR.
const DefaultIRRGuess = 0.10

// NPV computes the net present value of cashflows discounted at rate:
// the sum of cashflows[i] / (1+rate)^i. Index 0 is "now" and is not
// discounted.
//
// A rate of -1 collapses every discount factor to zero and is the
// caller's responsibility to avoid.
func NPV(rate float64, cashflows []float64) float64 {
	var total float64
	for i, cf := range cashflows {
		total += cf / math.Pow(1+rate, float64(i))
	}
	return total
}

// IRR computes the internal rate of return of cashflows: the discount
// rate at which their net present value is zero. The search is
// Newton-Raphson from guess, with the analytic derivative of NPV, and
// converges when |NPV| < 1e-6.
//
// The trial rate is not clamped during iteration, so pathological cash
// flow patterns can drive the search to unrealistic values before it
// fails; this mirrors the calculator's historical behavior.
func IRR(cashflows []float64, guess float64) (float64, error) {
	value := func(rate float64) float64 { return NPV(rate, cashflows) }
	slope := func(rate float64) float64 {
		var d float64
		for i, cf := range cashflows {
			d += -float64(i) * cf / math.Pow(1+rate, float64(i+1))
		}
		return d
	}
	return newton(value, slope, NewtonOptions{
		Guess:         guess,
		Tolerance:     1e-6,
		MaxIterations: 100,
	})
}

// PaybackPeriod computes how many periods it takes for the cumulative
// cash flows to recover the initial investment (cashflows[0], which
// must be negative). The fractional part is a linear interpolation
// assuming a uniform flow within the recovery period.
func PaybackPeriod(cashflows []float64) (float64, error) {
	if len(cashflows) == 0 {
		return 0, fmt.Errorf("no cash flows: %w", ErrNoPayback)
	}
	if cashflows[0] >= 0 {
		return 0, fmt.Errorf("first cash flow must be a negative investment: %w", ErrNoPayback)
	}

	cumulative := cashflows[0]
	for i := 1; i < len(cashflows); i++ {
		cumulative += cashflows[i]
		if cumulative >= 0 {
			before := cumulative - cashflows[i] // still negative, or zero
			return float64(i-1) + math.Abs(before)/cashflows[i], nil
		}
	}
	return 0, ErrNoPayback
}

// ValuationResult breaks down a discounted-cash-flow enterprise
// valuation. EnterpriseValue is always PVCashflows + PVTerminalValue.
type ValuationResult struct {
	PVCashflows     float64
	TerminalValue   float64
	PVTerminalValue float64
	EnterpriseValue float64
	// CashflowBreakdown holds the present value of each projected flow,
	// in projection order.
	CashflowBreakdown []float64
}

// DCFValuation values a business from its projected free cash flows.
//
// Each flow is discounted at period i+1 (the first projected flow is
// one period out, unlike NPV where index 0 is undiscounted). The
// terminal value is a Gordon-growth perpetuity on the last flow,
// discounted at terminalYear periods. terminalYear <= 0 defaults to the
// projection length.
//
// The discount rate must exceed the terminal growth rate; the
// perpetuity is undefined otherwise.
func DCFValuation(freeCashflows []float64, terminalGrowth, discountRate float64, terminalYear int) (ValuationResult, error) {
	if len(freeCashflows) == 0 {
		return ValuationResult{}, errors.New("dcf valuation requires at least one projected cash flow")
	}
	if discountRate <= terminalGrowth {
		return ValuationResult{}, fmt.Errorf("discount rate %v must exceed terminal growth rate %v", discountRate, terminalGrowth)
	}
	if terminalYear <= 0 {
		terminalYear = len(freeCashflows)
	}

	breakdown := make([]float64, len(freeCashflows))
	var pvCashflows float64
	for i, cf := range freeCashflows {
		pv := cf / math.Pow(1+discountRate, float64(i+1))
		breakdown[i] = pv
		pvCashflows += pv
	}

	last := freeCashflows[len(freeCashflows)-1]
	terminal := last * (1 + terminalGrowth) / (discountRate - terminalGrowth)
	pvTerminal := terminal / math.Pow(1+discountRate, float64(terminalYear))

	return ValuationResult{
		PVCashflows:       pvCashflows,
		TerminalValue:     terminal,
		PVTerminalValue:   pvTerminal,
		EnterpriseValue:   pvCashflows + pvTerminal,
		CashflowBreakdown: breakdown,
	}, nil
}

// WACC computes the weighted average cost of capital. The debt leg is
// tax-shielded: debtWeight × costOfDebt × (1 − taxRate).
func WACC(costOfEquity, costOfDebt, taxRate, marketValueEquity, marketValueDebt float64) (float64, error) {
	total := marketValueEquity + marketValueDebt
	if total == 0 {
		return 0, errors.New("combined market value of equity and debt is zero")
	}
	equityWeight := marketValueEquity / total
	debtWeight := marketValueDebt / total
	return equityWeight*costOfEquity + debtWeight*costOfDebt*(1-taxRate), nil
}

// CAPM computes the cost of equity under the capital asset pricing
// model: riskFree + beta × (marketReturn − riskFree).
func CAPM(riskFreeRate, beta, marketReturn float64) float64 {
	return riskFreeRate + beta*(marketReturn-riskFreeRate)
}

// CAGR computes the compound annual growth rate from beginningValue to
// endingValue over the given number of periods. Both values must be
// positive (the fractional exponent has no real solution otherwise) and
// periods must be at least 1.
func CAGR(beginningValue, endingValue float64, periods int) (float64, error) {
	if periods <= 0 {
		return 0, fmt.Errorf("periods must be positive, got %d", periods)
	}
	if beginningValue <= 0 {
		return 0, fmt.Errorf("beginning value must be positive, got %v", beginningValue)
	}
	if endingValue < 0 {
		return 0, fmt.Errorf("ending value must not be negative, got %v", endingValue)
	}
	return math.Pow(endingValue/beginningValue, 1/float64(periods)) - 1, nil
}

// PresentValue discounts futureValue back over periods at rate.
func PresentValue(futureValue, rate float64, periods int) float64 {
	return futureValue / math.Pow(1+rate, float64(periods))
}

// FutureValue compounds presentValue forward over periods at rate.
func FutureValue(presentValue, rate float64, periods int) float64 {
	return presentValue * math.Pow(1+rate, float64(periods))
}

// Projection is a multi-year compounding of an initial cash flow.
type Projection struct {
	// Flows[i] is the projected cash flow for year i+1.
	Flows   []float64
	Total   float64
	Average float64
	// Growth is the compound annual growth rate from the initial flow
	// to the last projected one.
	Growth float64
}

// ProjectCashflows compounds initial at growthRate for the given number
// of years and summarizes the result. The initial flow must be positive
// so that the growth rate of the projection is well defined.
func ProjectCashflows(initial, growthRate float64, years int) (Projection, error) {
	if years <= 0 {
		return Projection{}, fmt.Errorf("years must be positive, got %d", years)
	}
	if initial <= 0 {
		return Projection{}, fmt.Errorf("initial cash flow must be positive, got %v", initial)
	}

	flows := make([]float64, years)
	var total float64
	for year := 1; year <= years; year++ {
		cf := initial * math.Pow(1+growthRate, float64(year))
		flows[year-1] = cf
		total += cf
	}

	growth, err := CAGR(initial, flows[years-1], years)
	if err != nil {
		return Projection{}, err
	}

	return Projection{
		Flows:   flows,
		Total:   total,
		Average: total / float64(years),
		Growth:  growth,
	}, nil
}
