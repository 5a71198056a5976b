package money

import (
	"errors"
	"fmt"

	fixed "github.com/govalues/decimal"
)

var errDecimalOverflow = errors.New("decimal overflow")

// Decimal returns the amount as a fixed-precision [decimal.Decimal] from the
// github.com/govalues/decimal package, with the fraction of the currency as
// its scale.
//
// Decimal returns an error if the amount cannot be represented exactly, that is
// if it has more than [decimal.MaxPrec] significant digits or the fraction
// exceeds [decimal.MaxScale].
//
// [decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#MaxPrec
// [decimal.MaxScale]: https://pkg.go.dev/github.com/govalues/decimal#MaxScale
func (m Money) Decimal() (fixed.Decimal, error) {
	if m.frac > fixed.MaxScale {
		return fixed.Decimal{}, fmt.Errorf("converting [%v]: %w: fraction %v", m, errDecimalOverflow, m.frac)
	}
	a := m.Amount()
	d, err := fixed.Parse(a)
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting [%v]: %w", m, err)
	}
	// Parse rounds digits that do not fit the coefficient.
	if d.String() != a {
		return fixed.Decimal{}, fmt.Errorf("converting [%v]: %w", m, errDecimalOverflow)
	}
	return d, nil
}

// FromDecimal converts a fixed-precision decimal from the github.com/govalues/decimal
// package to a monetary value.
// Digits beyond the fraction of the currency are discarded, as with [Registry.FromAmount].
func (r *Registry) FromDecimal(d fixed.Decimal, curr string) (Money, error) {
	return r.FromAmount(d.String(), curr)
}
