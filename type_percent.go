package fincalc

import "fmt"

// Percent is a rate expressed in percentage points (10.5 means 10.5%).
type Percent float64

// AsPercent converts a decimal rate (0.105) into a Percent (10.5).
func AsPercent(rate float64) Percent { return Percent(rate * 100) }

// Rate converts back to a decimal fraction.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
