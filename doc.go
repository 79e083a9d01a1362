/*
Package money implements immutable monetary amounts bound to a currency.
It leverages the [decimal] package's capabilities for handling decimal floating-point
numbers and combines it with a [Currency] type for representing different currencies.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - A read-only registry of ISO 4217 currencies and their fraction digits
  - Validation of the scale of every amount against its currency
  - Arithmetic between monetary values guarded by a currency check
  - Extension types that embed [Amount] and interoperate with it

# Representation

An [Amount] consists of a [Currency] and a decimal.Decimal value.
The Currency type is implemented as an integer index into an in-memory table
containing the code, the numeric code, and the fraction digits of each currency.

# Construction

Amounts are created from a decimal ([NewAmountFromDecimal]), from a float
([NewAmountFromFloat64]), or from a string ([ParseAmount]).
All constructors check that the number of digits after the decimal point does
not exceed the fraction digits of the currency, see [Currency.Scale].
The value is stored as given: trailing zeros are neither added nor removed.

# Operations

[Amount.Add], [Amount.Sub], [Amount.Mul], and [Amount.Quo] accept any [Monetary]
value in the same currency.
Every result goes through the same validation as a newly constructed amount.
Quo truncates the quotient to the scale of the currency, the other operations
never round, so Mul fails if the product has too many digits after the
decimal point.

# Errors

Two error types are specific to this package:
[*InvalidCurrencyScaleError] and [*DifferentCurrenciesError].
They carry the offending values in exported fields and match
[ErrInvalidCurrencyScale] and [ErrCurrencyMismatch] through [errors.Is].
Errors of the currency registry and of the decimal package are returned unchanged.
*/
package money
