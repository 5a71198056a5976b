/*
Package money implements monetary values that never lose precision silently.
Every value is an arbitrary-precision integer number of minor units of its
currency, such as cents, combined with the currency code and the number of
fractional digits of that currency.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Currencies and their fractions configured by the application
  - Exact conversion between decimal amounts and minor units
  - Arithmetic and comparison operations between monetary values
  - Rate computation and conversion between currencies with truncation rules

# Representation

A [Money] value holds its minor units (see [Money.Value]) and exposes the
decimal amount (see [Money.Amount]) as value / 10^fraction.
For a currency with fraction 6, the amount "1.004" is stored as the value
"1004000".
The conversion between the two forms is performed by the
[github.com/govalues/scaledmoney/scaled] package on digit strings, so there is
no upper limit on the magnitude of values.

# Currencies

Currencies are not built in.
The application creates a [Registry] with a fraction for every currency it
uses, and obtains values from the registry:

	reg := money.MustNewRegistry(map[string]money.Config{
		"USD": {Fraction: 2},
		"XRP": {Fraction: 6},
	})
	a, err := reg.FromAmount("1.03", "USD")

The [github.com/govalues/scaledmoney/currencyconfig] package loads the same
mapping from a configuration file or the environment.

Values remember the fraction they were constructed with.
Re-initializing the registry does not affect existing values.

# Truncation

Digits that do not fit the fraction of a currency are discarded, never rounded.
This applies to construction from amounts, to factors of [Money.Mul] and
[Money.Div], and to the results of those methods, of [Registry.Rate] and of
[Money.Cnv].
The error introduced by any single operation is thus less than one minor unit.

# Errors

Operations return errors wrapping one of [ErrUnknownCurrency],
[ErrCurrencyMismatch], [ErrInvalidConversion], [ErrDivisionByZero],
[ErrInvalidAmount], [ErrInvalidValue] or [ErrInvalidFraction], which can be
tested with [errors.Is].
The package never logs.
*/
package money
