package fincalc

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display. The engine itself
// works in float64 currency units; Money exists so that reports format
// amounts with the proper symbol and fraction for their currency.
type Money struct {
	value *money.Money
}

// NewMoney creates a Money from an exact decimal amount in major units.
func NewMoney(amount decimal.Decimal, currency string) Money {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Money{}
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	amount = amount.Mul(factor)
	return Money{money.New(amount.IntPart(), currency)}
}

// NewMoneyFromFloat creates a Money from a float amount in major units.
func NewMoneyFromFloat(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// String returns the formatted money value, e.g. "$925.61".
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

// SignedString is like String with an explicit sign; a zero value is
// rendered as "-".
func (m Money) SignedString() string {
	switch {
	case m.value == nil || m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	default:
		return m.String()
	}
}

func (m Money) IsZero() bool {
	return m.value == nil || m.value.IsZero()
}

func (m Money) Equals(other Money) bool {
	if m.value == nil || other.value == nil {
		return m.value == other.value
	}
	eq, err := m.value.Equals(other.value)
	return err == nil && eq
}
