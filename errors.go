package money

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidCurrencyScale is matched by every [*InvalidCurrencyScaleError].
	ErrInvalidCurrencyScale = errors.New("invalid currency scale")
	// ErrCurrencyMismatch is matched by every [*DifferentCurrenciesError].
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// InvalidCurrencyScaleError is returned when an amount carries more digits
// after the decimal point than its currency allows.
// The error is returned both by constructors and by arithmetic methods,
// since every result is validated the same way.
type InvalidCurrencyScaleError struct {
	Amount decimal.Decimal // offending amount
	Scale  int             // scale of the offending amount
	Curr   Currency        // currency the amount was bound to
	Limit  int             // fraction digits of the currency
}

func (e *InvalidCurrencyScaleError) Error() string {
	return fmt.Sprintf("decimal scale %v provided for currency %v is invalid: scale must be less than or equal to %v",
		e.Scale, e.Curr.Code(), e.Limit)
}

// Is reports whether target is [ErrInvalidCurrencyScale].
func (e *InvalidCurrencyScaleError) Is(target error) bool {
	return target == ErrInvalidCurrencyScale
}

// DifferentCurrenciesError is returned when the operands of a binary operation
// are denominated in different currencies.
// Left is the currency of the receiver, Right is the currency of the argument.
type DifferentCurrenciesError struct {
	Left  Currency
	Right Currency
}

func (e *DifferentCurrenciesError) Error() string {
	return fmt.Sprintf("currencies %v and %v are different: currencies must be the same to perform this operation",
		e.Left.Code(), e.Right.Code())
}

// Is reports whether target is [ErrCurrencyMismatch].
func (e *DifferentCurrenciesError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}
