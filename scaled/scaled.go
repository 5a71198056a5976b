/*
Package scaled converts between decimal amount strings and scaled integer
strings, called values, that hold the same quantity in minor units.

For a fraction of 6 the amount "1.004" corresponds to the value "1004000".
Conversions operate on digit strings only, so amounts of any size are handled
exactly.
*/
package scaled

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidAmount is returned when an amount string is not a plain decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidValue is returned when a value string is not a plain integer.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidFraction is returned for a negative number of fractional digits.
	ErrInvalidFraction = errors.New("invalid fraction")
)

// AmountToValue converts a decimal amount to an integer value with the given
// number of fractional digits.
// The input string must be in one of the following formats:
//
//	1.234
//	-1.234
//	.234
//	1234
//	1234.
//
// Fractional digits beyond the fraction are discarded without rounding, and
// missing ones are filled with zeros:
//
//	AmountToValue("1.999", 2) = "199"
//	AmountToValue("1.5", 3)   = "1500"
//
// The result has no leading zeros, and zero is never signed.
func AmountToValue(amount string, fraction int) (string, error) {
	if fraction < 0 {
		return "", ErrInvalidFraction
	}
	neg, digits := cutSign(amount)
	whole, frac, _ := strings.Cut(digits, ".")
	if whole == "" && frac == "" {
		return "", ErrInvalidAmount
	}
	if !isDigits(whole) || !isDigits(frac) {
		return "", ErrInvalidAmount
	}

	// Truncation or padding
	if len(frac) > fraction {
		frac = frac[:fraction]
	} else {
		frac += strings.Repeat("0", fraction-len(frac))
	}

	return withSign(neg, trimLeadingZeros(whole+frac)), nil
}

// ValueToAmount converts an integer value to a decimal amount with exactly
// fraction digits after the decimal point.
// Trailing zeros are kept:
//
//	ValueToAmount("1004000", 6) = "1.004000"
//	ValueToAmount("-5", 2)      = "-0.05"
//
// When fraction is 0 the amount has no decimal point.
// ValueToAmount is the inverse of [AmountToValue] for the values it produces.
func ValueToAmount(value string, fraction int) (string, error) {
	return valueToAmount(value, fraction, false)
}

// ValueToAmountTrim is like [ValueToAmount] but removes trailing zeros of the
// fractional part, along with a decimal point left without digits.
// The integer part is never trimmed:
//
//	ValueToAmountTrim("1004000", 6) = "1.004"
//	ValueToAmountTrim("1000", 2)    = "10"
func ValueToAmountTrim(value string, fraction int) (string, error) {
	return valueToAmount(value, fraction, true)
}

func valueToAmount(value string, fraction int, trim bool) (string, error) {
	if fraction < 0 {
		return "", ErrInvalidFraction
	}
	neg, digits := cutSign(value)
	if digits == "" || !isDigits(digits) {
		return "", ErrInvalidValue
	}
	digits = trimLeadingZeros(digits)
	if digits == "0" {
		neg = false
	}

	// Leading zeros, so that at least one integer digit remains
	if len(digits) <= fraction {
		digits = strings.Repeat("0", fraction-len(digits)+1) + digits
	}

	whole, frac := digits[:len(digits)-fraction], digits[len(digits)-fraction:]
	if trim {
		frac = strings.TrimRight(frac, "0")
	}

	amount := whole
	if frac != "" {
		amount += "." + frac
	}
	if neg {
		amount = "-" + amount
	}
	return amount, nil
}

// cutSign strips a leading minus sign.
func cutSign(s string) (neg bool, rest string) {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return true, rest
	}
	return false, s
}

func withSign(neg bool, digits string) string {
	if neg && digits != "0" {
		return "-" + digits
	}
	return digits
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// trimLeadingZeros removes leading zeros but keeps a single "0".
func trimLeadingZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}
