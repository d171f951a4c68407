package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// this file validates raw user text into the numeric types the engine
// expects; the engine itself never sees a string.

// parseCashflows parses a comma-separated list of signed cash flows,
// initial investment first. Blank entries are skipped so trailing
// commas are harmless.
func parseCashflows(s string) ([]float64, error) {
	var flows []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cash flow %q", part)
		}
		flows = append(flows, v)
	}
	if len(flows) == 0 {
		return nil, errors.New("at least one cash flow is required")
	}
	return flows, nil
}

// parseRate parses a rate expressed in percent ("8", "8.5" or "8.5%")
// into a decimal fraction, the way the calculator keypad always did.
func parseRate(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q", s)
	}
	return v / 100, nil
}

// parseNum parses a plain number (an amount, a beta, a price).
func parseNum(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// formatNum renders a float with full precision, for history records.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
