// Package fincalc provides the calculation engine of an investment
// finance calculator: time-value-of-money metrics, discounted-cash-flow
// valuation, cost-of-capital formulas and fixed-income pricing.
//
// The core functionalities include:
//   - Cash Flow Analysis: net present value, internal rate of return
//     (Newton-Raphson) and payback period over an ordered series of
//     signed cash flows.
//   - Valuation: discounted-cash-flow enterprise valuation with a
//     Gordon-growth terminal value, weighted average cost of capital,
//     and the capital asset pricing model.
//   - Growth: compound annual growth rate, present and future value,
//     and multi-year cash flow projections.
//   - Fixed Income: bond pricing with current yield and Macaulay
//     duration, and yield-to-maturity root finding.
//   - Calculation History: recording every invocation as an immutable
//     record, persisted in a human-readable JSONL file and exportable
//     as CSV.
//
// Every calculation is a pure function: no state is shared between
// calls, results are reproducible, and all functions are safe for
// concurrent use. Failures are explicit error values; an iterative
// search that does not converge reports ErrNoConvergence rather than a
// sentinel number.
//
// This package serves as the foundational logic for the `fcs`
// command-line tool.
package fincalc
