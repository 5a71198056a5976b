package money

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/scaledmoney/scaled"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownCurrency is returned when a currency is not present in the [Registry].
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrCurrencyMismatch is returned when an operation combines values
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInvalidConversion is returned when a rate or a conversion is requested
	// between inappropriate currencies.
	ErrInvalidConversion = errors.New("invalid conversion")
	// ErrDivisionByZero is returned when a divisor resolves to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// Codec errors, see package scaled.
	ErrInvalidAmount   = scaled.ErrInvalidAmount
	ErrInvalidValue    = scaled.ErrInvalidValue
	ErrInvalidFraction = scaled.ErrInvalidFraction
)

// Money type represents a monetary value in a given currency.
// The value is stored as an arbitrary-precision integer number of minor units
// of the currency (e.g. cents), so the amount is equal to value / 10^fraction.
//
// Money is immutable: every operation returns a new value and leaves its
// operands untouched, which makes it safe for concurrent use by multiple
// goroutines.
// Instances are obtained from a [Registry]; the zero value is a zero amount
// in an empty currency with no fractional digits.
type Money struct {
	value decimal.Decimal // minor units, exponent is always 0
	curr  string          // currency code
	frac  int             // fractional digits of the currency
}

// newMoney creates a new value without checking the currency.
// The value is truncated toward zero to an integer number of minor units.
func newMoney(curr string, frac int, value decimal.Decimal) Money {
	return Money{value: decimal.NewFromBigInt(value.BigInt(), 0), curr: curr, frac: frac}
}

// parseValue converts a string of minor units.
func parseValue(value string) (decimal.Decimal, error) {
	// Validation is delegated to the codec, which rejects exponents and decimal points.
	if _, err := scaled.ValueToAmount(value, 0); err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(value)
}

// FromAmount converts a decimal amount to a monetary value.
// Fractional digits beyond the fraction of the currency are discarded,
// without rounding:
//
//	FromAmount("1.999", "USD") = 1.99 USD
//
// FromAmount returns an error if the currency is unknown or the amount is
// not a decimal number.
func (r *Registry) FromAmount(amount, curr string) (Money, error) {
	frac, err := r.Fraction(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	v, err := scaled.AmountToValue(amount, frac)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	return newMoney(curr, frac, d), nil
}

// MustFromAmount is like [Registry.FromAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func (r *Registry) MustFromAmount(amount, curr string) Money {
	m, err := r.FromAmount(amount, curr)
	if err != nil {
		panic(fmt.Sprintf("FromAmount(%q, %q) failed: %v", amount, curr, err))
	}
	return m
}

// FromValue converts an integer number of minor units (e.g. cents) to
// a monetary value.
// See also method [Money.Value].
//
// FromValue returns an error if the currency is unknown or the value is not
// an integer.
func (r *Registry) FromValue(value, curr string) (Money, error) {
	frac, err := r.Fraction(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := parseValue(value)
	if err != nil {
		return Money{}, fmt.Errorf("parsing value %q: %w", value, err)
	}
	return newMoney(curr, frac, d), nil
}

// MustFromValue is like [Registry.FromValue] but panics if the value cannot be constructed.
func (r *Registry) MustFromValue(value, curr string) Money {
	m, err := r.FromValue(value, curr)
	if err != nil {
		panic(fmt.Sprintf("FromValue(%q, %q) failed: %v", value, curr, err))
	}
	return m
}

// FromInt64Value is like [Registry.FromValue] but takes the minor units as an integer.
func (r *Registry) FromInt64Value(value int64, curr string) (Money, error) {
	frac, err := r.Fraction(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return newMoney(curr, frac, decimal.NewFromInt(value)), nil
}

// Zero returns a zero monetary value in the currency.
func (r *Registry) Zero(curr string) (Money, error) {
	return r.FromInt64Value(0, curr)
}

// MustZero is like [Registry.Zero] but panics if the currency is unknown.
func (r *Registry) MustZero(curr string) Money {
	m, err := r.Zero(curr)
	if err != nil {
		panic(fmt.Sprintf("Zero(%q) failed: %v", curr, err))
	}
	return m
}

// FromAmounts converts every amount with [Registry.FromAmount], preserving order.
// No values are returned if any of the amounts cannot be converted.
func (r *Registry) FromAmounts(amounts []string, curr string) ([]Money, error) {
	res := make([]Money, len(amounts))
	for i, a := range amounts {
		m, err := r.FromAmount(a, curr)
		if err != nil {
			return nil, fmt.Errorf("converting amount #%v: %w", i, err)
		}
		res[i] = m
	}
	return res, nil
}

// FromValues converts every value with [Registry.FromValue], preserving order.
// No values are returned if any of the values cannot be converted.
func (r *Registry) FromValues(values []string, curr string) ([]Money, error) {
	res := make([]Money, len(values))
	for i, v := range values {
		m, err := r.FromValue(v, curr)
		if err != nil {
			return nil, fmt.Errorf("converting value #%v: %w", i, err)
		}
		res[i] = m
	}
	return res, nil
}

// Parse converts a string in the format produced by [Money.String] to a
// monetary value:
//
//	1.05 USD
//	-0.000001 XRP
//
// Parse returns an error if the string is malformed or the currency is unknown.
func (r *Registry) Parse(s string) (Money, error) {
	amount, curr, ok := strings.Cut(s, " ")
	if !ok {
		return Money{}, fmt.Errorf("parsing %q: missing currency", s)
	}
	m, err := r.FromAmount(amount, curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return m, nil
}

// MustParse is like [Registry.Parse] but panics if the string cannot be parsed.
func (r *Registry) MustParse(s string) Money {
	m, err := r.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// Curr returns the currency code.
func (m Money) Curr() string {
	return m.curr
}

// Fraction returns the number of digits after the decimal point captured from
// the registry when the value was constructed.
func (m Money) Fraction() int {
	return m.frac
}

// Value returns the number of minor units as an integer string.
// See also constructor [Registry.FromValue].
func (m Money) Value() string {
	return m.value.String()
}

// BigInt returns a copy of the number of minor units.
func (m Money) BigInt() *big.Int {
	return new(big.Int).Set(m.value.BigInt())
}

// Amount returns the amount with exactly [Money.Fraction] digits after the
// decimal point, such as "1.50" for 150 cents.
// See also method [Money.TrimmedAmount].
func (m Money) Amount() string {
	a, err := scaled.ValueToAmount(m.Value(), m.frac)
	if err != nil {
		// The value is always a valid integer.
		panic(fmt.Sprintf("ValueToAmount(%q, %v) failed: %v", m.Value(), m.frac, err))
	}
	return a
}

// TrimmedAmount is like [Money.Amount] but without trailing zeros, such as
// "1.5" for 150 cents.
func (m Money) TrimmedAmount() string {
	a, err := scaled.ValueToAmountTrim(m.Value(), m.frac)
	if err != nil {
		panic(fmt.Sprintf("ValueToAmountTrim(%q, %v) failed: %v", m.Value(), m.frac, err))
	}
	return a
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the value, such as "1.05 USD".
// See also methods [Money.Amount], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Amount() + " " + m.curr
}

// decimalAmount returns the amount value / 10^fraction.
func (m Money) decimalAmount() decimal.Decimal {
	return m.value.Shift(-int32(m.frac)) //nolint:gosec
}

// SameCurr returns true if values are denominated in the same currency.
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.value.Sign()
}

// IsPositive returns:
//
//	true  if m >= 0
//	false otherwise
//
// Note that zero counts as positive.
func (m Money) IsPositive() bool {
	return m.value.Sign() >= 0
}

// IsNegative returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNegative() bool {
	return m.value.Sign() < 0
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Abs returns the absolute value.
func (m Money) Abs() Money {
	return newMoney(m.curr, m.frac, m.value.Abs())
}

// Neg returns a value with the opposite sign.
func (m Money) Neg() Money {
	return newMoney(m.curr, m.frac, m.value.Neg())
}

// Add returns the sum of values m and b.
// The result has the currency and the fraction of m.
//
// Add returns an error if values are denominated in different currencies.
func (m Money) Add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, ErrCurrencyMismatch)
	}
	return newMoney(m.curr, m.frac, m.value.Add(b.value)), nil
}

// Sub returns the difference between values m and b.
// The result can be negative.
//
// Sub returns an error if values are denominated in different currencies.
func (m Money) Sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, ErrCurrencyMismatch)
	}
	return newMoney(m.curr, m.frac, m.value.Sub(b.value)), nil
}

// Factor is a multiplier or divisor of a monetary value.
// It is implemented by [RawAmount] and [Money].
type Factor interface {
	// factorFor resolves the factor to an amount that can be applied to m.
	factorFor(m Money) (decimal.Decimal, error)
	fmt.Stringer
}

// RawAmount is a decimal string used as a [Factor].
// It is interpreted as an amount in the currency of the value it is applied to,
// so digits beyond the fraction of that currency are discarded.
type RawAmount string

func (a RawAmount) factorFor(m Money) (decimal.Decimal, error) {
	v, err := scaled.AmountToValue(string(a), m.frac)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing factor %q: %w", string(a), err)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing factor %q: %w", string(a), err)
	}
	return d.Shift(-int32(m.frac)), nil //nolint:gosec
}

// String returns the decimal string.
func (a RawAmount) String() string {
	return string(a)
}

func (m Money) factorFor(b Money) (decimal.Decimal, error) {
	if !b.SameCurr(m) {
		return decimal.Decimal{}, ErrCurrencyMismatch
	}
	return m.decimalAmount(), nil
}

// Mul returns the product of value m and the amount of factor f.
// The product is truncated toward zero to a whole number of minor units:
//
//	1.03 USD * 1.3 = 1.33 USD (1.339 truncated)
//
// Mul returns an error if the factor is a malformed amount or a value
// denominated in a different currency.
func (m Money) Mul(f Factor) (Money, error) {
	e, err := f.factorFor(m)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, f, err)
	}
	return newMoney(m.curr, m.frac, m.value.Mul(e)), nil
}

// Div returns the quotient of value m and the amount of factor f.
// The quotient is truncated toward zero to a whole number of minor units:
//
//	1.03 USD / 1.43 = 0.72 USD (0.7202... truncated)
//
// Div returns an error if:
//   - the factor is a malformed amount or a value denominated in a different currency;
//   - the factor is zero, after truncation to the fraction of the currency.
func (m Money) Div(f Factor) (Money, error) {
	e, err := f.factorFor(m)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, err)
	}
	if e.IsZero() {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, ErrDivisionByZero)
	}
	q, _ := m.value.QuoRem(e, 0)
	return newMoney(m.curr, m.frac, q), nil
}

// Cmp compares values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if values are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return m.value.Cmp(b.value), nil
}

// Gt returns true if m > b.
// See also method [Money.Cmp].
func (m Money) Gt(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c > 0, err
}

// Ge returns true if m >= b.
func (m Money) Ge(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c >= 0, err
}

// Eq returns true if m = b.
func (m Money) Eq(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c == 0, err
}

// Ne returns true if m != b.
func (m Money) Ne(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c != 0, err
}

// Lt returns true if m < b.
func (m Money) Lt(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c < 0, err
}

// Le returns true if m <= b.
func (m Money) Le(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c <= 0, err
}
