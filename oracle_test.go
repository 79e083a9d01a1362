package money

import (
	"errors"
	"testing"

	ssd "github.com/shopspring/decimal"
)

// oracleValues are amounts valid in USD, used to cross-check arithmetic
// against an independent decimal implementation.
var oracleValues = []string{
	"0", "0.01", "-0.10", "1", "1.5", "-2.25", "3", "100", "999.99", "-12345.6",
}

// oracleScale returns the number of digits after the decimal point of d.
func oracleScale(d ssd.Decimal) int {
	return max(0, -int(d.Exponent()))
}

func TestAmount_Oracle(t *testing.T) {
	for _, x := range oracleValues {
		for _, y := range oracleValues {
			a, b := MustParseAmount("USD", x), MustParseAmount("USD", y)
			d, e := ssd.RequireFromString(x), ssd.RequireFromString(y)

			t.Run("add", func(t *testing.T) {
				got, err := a.Add(b)
				if err != nil {
					t.Fatalf("%q.Add(%q) failed: %v", a, b, err)
				}
				checkOracle(t, "Add", a, b, got, d.Add(e))
			})

			t.Run("sub", func(t *testing.T) {
				got, err := a.Sub(b)
				if err != nil {
					t.Fatalf("%q.Sub(%q) failed: %v", a, b, err)
				}
				checkOracle(t, "Sub", a, b, got, d.Sub(e))
			})

			t.Run("mul", func(t *testing.T) {
				got, err := a.Mul(b)
				if oracleScale(d)+oracleScale(e) > USD.Scale() {
					if !errors.Is(err, ErrInvalidCurrencyScale) {
						t.Fatalf("%q.Mul(%q) error = %v, want %v", a, b, err, ErrInvalidCurrencyScale)
					}
					return
				}
				if err != nil {
					t.Fatalf("%q.Mul(%q) failed: %v", a, b, err)
				}
				checkOracle(t, "Mul", a, b, got, d.Mul(e))
			})

			t.Run("quo", func(t *testing.T) {
				if e.IsZero() {
					return
				}
				got, err := a.Quo(b)
				if err != nil {
					t.Fatalf("%q.Quo(%q) failed: %v", a, b, err)
				}
				if got.Scale() != USD.Scale() {
					t.Errorf("%q.Quo(%q).Scale() = %v, want %v", a, b, got.Scale(), USD.Scale())
				}
				checkOracle(t, "Quo", a, b, got, d.DivRound(e, 24).Truncate(int32(USD.Scale())))
			})
		}
	}
}

func checkOracle(t *testing.T, op string, a, b, got Amount, want ssd.Decimal) {
	t.Helper()
	if got.Curr() != a.Curr() {
		t.Errorf("%q.%v(%q).Curr() = %v, want %v", a, op, b, got.Curr(), a.Curr())
	}
	if got.Scale() > got.Curr().Scale() {
		t.Errorf("%q.%v(%q).Scale() = %v, exceeds %v", a, op, b, got.Scale(), got.Curr().Scale())
	}
	if !ssd.RequireFromString(got.Decimal().String()).Equal(want) {
		t.Errorf("%q.%v(%q) = %q, want %v", a, op, b, got, want)
	}
}
