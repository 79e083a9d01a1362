package money

import (
	"errors"
	"fmt"
	"strings"
)

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into a read-only in-memory table
// that stores properties defined by [ISO 4217], such as code and fraction digits.
// The table is built once at package initialization and never modified,
// so a Currency value is safe for concurrent use by multiple goroutines.
//
// Two currencies are the same if and only if they have the same code.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

type currencyInfo struct {
	code  string // alphabetic code
	num   string // numeric code
	scale int8   // fraction digits
}

// ErrUnknownCurrency is returned by [ParseCurr] when the code does not
// belong to any currency of the registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// currLookup maps alphabetic codes (both cases) and numeric codes to currencies.
var currLookup = func() map[string]Currency {
	m := make(map[string]Currency, 3*len(currencies))
	for i, info := range currencies {
		c := Currency(i) //nolint:gosec
		m[info.code] = c
		m[strings.ToLower(info.code)] = c
		m[info.num] = c
	}
	return m
}()

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error wrapping [ErrUnknownCurrency] if the string does
// not represent a currency of the registry.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("parsing currency %q: %w", curr, ErrUnknownCurrency)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String method implements the [fmt.Stringer] interface and returns
// the alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Scale returns the fraction digits of the currency, that is the maximum
// number of digits after the decimal point an amount in this currency may carry.
// The currently supported currencies use scales of 0, 2, 3, or 4:
//   - A scale of 0 indicates currencies without minor units.
//     For example, the [Japanese Yen] does not have minor units.
//   - A scale of 2 indicates currencies that use 2 digits to represent their minor units.
//     For example, the [US Dollar] represents its minor unit, 1 cent, as 0.01 dollars.
//   - A scale of 3 indicates currencies with 3 digits in their minor units.
//     For instance, the minor unit of the [Tunisian Dinar], 1 millime, is represented as 0.001 dinars.
//   - A scale of 4 is used by accounting units such as the [Unidad de Fomento].
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Tunisian Dinar]: https://en.wikipedia.org/wiki/Tunisian_dinar
// [Unidad de Fomento]: https://en.wikipedia.org/wiki/Unidad_de_Fomento
func (c Currency) Scale() int {
	return int(c.info().scale)
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	return c.info().num
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// This method always returns a valid code.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	return c.info().code
}

// info returns the registry entry of the currency.
// Indexes outside of the table resolve to [XXX].
func (c Currency) info() currencyInfo {
	if int(c) >= len(currencies) {
		return currencies[XXX]
	}
	return currencies[c]
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	text := c.Code()
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(text) {
		pad := strings.Repeat(" ", w-len(text))
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}
