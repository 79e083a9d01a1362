package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Monetary is implemented by every type that represents a monetary value.
// It is the operand type of the arithmetic methods of [Amount], which lets
// types embedding an Amount take part in arithmetic with plain amounts.
type Monetary interface {
	Curr() Currency
	Decimal() decimal.Decimal
}

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
//
// An Amount never carries more digits after the decimal point than its currency
// allows, see [Currency.Scale].
// Amount is immutable and is designed to be safe for concurrent use by multiple
// goroutines.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newAmountSafe creates a new amount and checks the scale.
// All constructors and arithmetic methods end up here.
//
// The scale is taken from the product of the amount and one, which is the
// canonical form of the amount in the decimal engine. The amount itself is
// stored as given.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	e, err := d.Mul(decimal.One)
	if err != nil {
		return Amount{}, err
	}
	if e.Scale() > c.Scale() {
		return Amount{}, &InvalidCurrencyScaleError{
			Amount: e,
			Scale:  e.Scale(),
			Curr:   c,
			Limit:  c.Scale(),
		}
	}
	return Amount{curr: c, value: d}, nil
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an [*InvalidCurrencyScaleError] if the scale of
// the amount is greater than the scale of the currency.
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, amount)
}

// NewAmountFromFloat64 converts a float to an amount.
// The float is converted to a decimal using its shortest exact representation,
// so 10.1234 has a scale of 4.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the currency code is not valid;
//   - the float is a special value (NaN or Inf) or does not fit the decimal engine;
//   - the scale of the amount is greater than the scale of the currency
//     ([*InvalidCurrencyScaleError]).
func NewAmountFromFloat64(curr string, amount float64) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, err
	}
	// Decimal
	d, err := decimal.NewFromFloat64(amount)
	if err != nil {
		return Amount{}, err
	}
	// Amount
	return newAmountSafe(c, d)
}

// ParseAmount converts currency and decimal strings to an amount.
// Trailing zeros of the decimal string are kept, so "10.00" remains "10.00"
// and "100" remains "100".
// Leading zeros of the integer part are not kept, so "001.23" becomes "1.23".
// See also constructors [ParseCurr] and [decimal.Parse].
//
// ParseAmount returns an error if:
//   - the currency code is not valid;
//   - the decimal string cannot be parsed;
//   - the scale of the amount is greater than the scale of the currency
//     ([*InvalidCurrencyScaleError]).
func ParseAmount(curr, amount string) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, err
	}
	// Decimal
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, err
	}
	// Amount
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding half to even] (banker's rounding).
// See also constructor [NewAmountFromFloat64].
//
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Float64() (f float64, ok bool) {
	return a.Decimal().Float64()
}

// Scale returns the number of digits after the decimal point.
// It never exceeds the scale of the currency.
func (a Amount) Scale() int {
	return a.Decimal().Scale()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Decimal().Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Decimal().IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Decimal().IsPos()
}

// SameCurr returns true if amounts are denominated in the same currency.
// Currencies are compared by code, the concrete type of b does not matter.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Monetary) bool {
	return a.Curr().Code() == b.Curr().Code()
}

// checkCurr returns a [*DifferentCurrenciesError] if b is denominated in
// a different currency.
func (a Amount) checkCurr(b Monetary) error {
	if !a.SameCurr(b) {
		return &DifferentCurrenciesError{Left: a.Curr(), Right: b.Curr()}
	}
	return nil
}

// derive builds the result of an operation from its decimal value.
// The value is round-tripped through its string form and the regular
// constructor, so results are validated exactly like user input.
func (a Amount) derive(d decimal.Decimal) (Amount, error) {
	return ParseAmount(a.Curr().Code(), d.String())
}

// Add returns the sum of amounts a and b.
// The scale of the result is the larger of the scales of the operands.
//
// Add returns an error if:
//   - amounts are denominated in different currencies ([*DifferentCurrenciesError]);
//   - the result does not fit the decimal engine.
func (a Amount) Add(b Monetary) (Amount, error) {
	if err := a.checkCurr(b); err != nil {
		return Amount{}, err
	}
	d, err := a.Decimal().Add(b.Decimal())
	if err != nil {
		return Amount{}, err
	}
	return a.derive(d)
}

// Sub returns the difference between amounts a and b.
// The scale of the result is the larger of the scales of the operands.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies ([*DifferentCurrenciesError]);
//   - the result does not fit the decimal engine.
func (a Amount) Sub(b Monetary) (Amount, error) {
	if err := a.checkCurr(b); err != nil {
		return Amount{}, err
	}
	d, err := a.Decimal().Sub(b.Decimal())
	if err != nil {
		return Amount{}, err
	}
	return a.derive(d)
}

// Mul returns the product of amounts a and b.
// The scale of the result is the sum of the scales of the operands and
// the result is not rounded.
//
// Mul returns an error if:
//   - amounts are denominated in different currencies ([*DifferentCurrenciesError]);
//   - the scale of the result is greater than the scale of the currency
//     ([*InvalidCurrencyScaleError]), e.g. USD 1.25 * USD 1.25;
//   - the result does not fit the decimal engine.
func (a Amount) Mul(b Monetary) (Amount, error) {
	if err := a.checkCurr(b); err != nil {
		return Amount{}, err
	}
	d, err := a.Decimal().Mul(b.Decimal())
	if err != nil {
		return Amount{}, err
	}
	return a.derive(d)
}

// Quo returns the quotient of amounts a and b.
// Unlike the other arithmetic methods, the quotient is coerced to the
// scale of the currency: extra digits are truncated using
// [rounding toward zero] and missing digits are zero-padded.
// For example, CHF 8.99 / CHF 5 = CHF 1.79.
//
// Quo returns an error if:
//   - amounts are denominated in different currencies ([*DifferentCurrenciesError]);
//   - the divisor is 0;
//   - the result does not fit the decimal engine.
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (a Amount) Quo(b Monetary) (Amount, error) {
	if err := a.checkCurr(b); err != nil {
		return Amount{}, err
	}
	d, err := a.Decimal().Quo(b.Decimal())
	if err != nil {
		return Amount{}, err
	}
	scale := a.Curr().Scale()
	d = d.Trunc(scale).Pad(scale)
	return a.derive(d)
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns a [*DifferentCurrenciesError] if amounts are denominated in
// different currencies.
func (a Amount) Cmp(b Monetary) (int, error) {
	if err := a.checkCurr(b); err != nil {
		return 0, err
	}
	d, e := a.Decimal(), b.Decimal()
	return d.Cmp(e), nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount: the currency code followed by the decimal
// representation of the value, e.g. "BRL 101.50".
// See also methods [Currency.String], [Decimal.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
// [Decimal.String]: https://pkg.go.dev/github.com/govalues/decimal#Decimal.String
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}
