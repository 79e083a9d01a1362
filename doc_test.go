package money_test

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/ledgerkit/money"
)

// Voucher is an amount extended with a label.
// It embeds money.Amount and can therefore be used as an operand.
type Voucher struct {
	money.Amount
	Label string
}

// In this example, a voucher is subtracted from a price.
// The voucher is a distinct type, but it is denominated in the same currency,
// so it can take part in arithmetic with plain amounts.
func Example_embedding() {
	price := money.MustParseAmount("USD", "25.00")
	voucher := Voucher{
		Amount: money.MustParseAmount("USD", "5"),
		Label:  "SPRING",
	}

	total, err := price.Sub(voucher)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v - %v (%v) = %v\n", price, voucher.Amount, voucher.Label, total)
	// Output: USD 25.00 - USD 5 (SPRING) = USD 20.00
}

func ExampleParseCurr() {
	c, err := money.ParseCurr("clf")
	if err != nil {
		panic(err)
	}
	fmt.Println(c, c.Num(), c.Scale())
	// Output: CLF 990 4
}

func ExampleParseAmount() {
	a, err := money.ParseAmount("BRL", "100")
	if err != nil {
		panic(err)
	}
	b, err := money.ParseAmount("BRL", "1.50")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	fmt.Println(b)
	// Output:
	// BRL 100
	// BRL 1.50
}

func ExampleNewAmountFromFloat64() {
	a, err := money.NewAmountFromFloat64("USD", 100.12)
	fmt.Println(a, err)
	_, err = money.NewAmountFromFloat64("BRL", 10.1234)
	fmt.Println(err)
	// Output:
	// USD 100.12 <nil>
	// decimal scale 4 provided for currency BRL is invalid: scale must be less than or equal to 2
}

func ExampleNewAmountFromDecimal() {
	d := decimal.MustParse("9.123")
	a, err := money.NewAmountFromDecimal(money.TND, d)
	fmt.Println(a, err)
	_, err = money.NewAmountFromDecimal(money.JPY, d)
	fmt.Println(errors.Is(err, money.ErrInvalidCurrencyScale))
	// Output:
	// TND 9.123 <nil>
	// true
}

func ExampleAmount_Add() {
	a := money.MustParseAmount("BRL", "100")
	b := money.MustParseAmount("BRL", "1.50")
	fmt.Println(a.Add(b))
	// Output: BRL 101.50 <nil>
}

func ExampleAmount_Sub() {
	a := money.MustParseAmount("EUR", "10.50")
	b := money.MustParseAmount("EUR", "0.50")
	fmt.Println(a.Sub(b))
	// Output: EUR 10.00 <nil>
}

func ExampleAmount_Mul() {
	a := money.MustParseAmount("GBP", "5")
	b := money.MustParseAmount("GBP", "3.12")
	fmt.Println(a.Mul(b))

	c := money.MustParseAmount("GBP", "1.25")
	_, err := c.Mul(c)
	var e *money.InvalidCurrencyScaleError
	if errors.As(err, &e) {
		fmt.Println(e.Amount, e.Scale, e.Curr, e.Limit)
	}
	// Output:
	// GBP 15.60 <nil>
	// 1.5625 4 GBP 2
}

func ExampleAmount_Quo() {
	a := money.MustParseAmount("CHF", "8.99")
	b := money.MustParseAmount("CHF", "5")
	fmt.Println(a.Quo(b))
	// Output: CHF 1.79 <nil>
}

func ExampleDifferentCurrenciesError() {
	a := money.MustParseAmount("BRL", "100")
	b := money.MustParseAmount("USD", "1.50")
	_, err := a.Add(b)
	fmt.Println(err)
	var e *money.DifferentCurrenciesError
	if errors.As(err, &e) {
		fmt.Println(e.Left, e.Right)
	}
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))
	// Output:
	// currencies BRL and USD are different: currencies must be the same to perform this operation
	// BRL USD
	// true
}
