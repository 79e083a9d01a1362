// Package discount provides a monetary amount that can have a percentage
// discount applied to it.
//
// [Amount] embeds [money.Amount], so it inherits its accessors, its
// arithmetic, and its scale validation, and it can be used as an operand of
// any money.Amount method.
package discount

import (
	"github.com/govalues/decimal"

	"github.com/ledgerkit/money"
)

// Amount is a monetary amount with discount support.
// The zero value corresponds to "XXX 0".
type Amount struct {
	money.Amount
}

// New wraps a monetary amount.
func New(a money.Amount) Amount {
	return Amount{Amount: a}
}

// ParseAmount is like [money.ParseAmount] but returns a discountable amount.
func ParseAmount(curr, amount string) (Amount, error) {
	a, err := money.ParseAmount(curr, amount)
	if err != nil {
		return Amount{}, err
	}
	return New(a), nil
}

// NewAmountFromFloat64 is like [money.NewAmountFromFloat64] but returns
// a discountable amount.
func NewAmountFromFloat64(curr string, amount float64) (Amount, error) {
	a, err := money.NewAmountFromFloat64(curr, amount)
	if err != nil {
		return Amount{}, err
	}
	return New(a), nil
}

// Apply returns the amount reduced by the given percentage,
// i.e. a * (1 - percentage / 100).
// Only the percentage is converted from float, the factor is computed in
// decimal arithmetic: Apply(10) multiplies by 0.9 and USD 100 becomes USD 90.0,
// Apply(7) multiplies by 0.93 and USD 100 becomes USD 93.00.
//
// The result is validated like any other amount: Apply returns a
// [*money.InvalidCurrencyScaleError] if the discounted value has more digits
// after the decimal point than the currency allows.
func (a Amount) Apply(percentage float64) (Amount, error) {
	p, err := decimal.NewFromFloat64(percentage)
	if err != nil {
		return Amount{}, err
	}
	p, err = p.Quo(decimal.Hundred)
	if err != nil {
		return Amount{}, err
	}
	factor, err := decimal.One.Sub(p)
	if err != nil {
		return Amount{}, err
	}
	d, err := a.Decimal().Mul(factor)
	if err != nil {
		return Amount{}, err
	}
	return ParseAmount(a.Curr().Code(), d.String())
}
