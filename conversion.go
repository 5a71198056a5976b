package money

import (
	"fmt"
)

// Rate returns how many units of the target currency correspond to one unit of
// the source currency, given the price of a quantity (source) and the price of
// one unit (target) in a common currency.
// The result is truncated toward zero to the fraction of the target currency:
//
//	Rate(0.5 USD, 400 USD, "XRP") = 0.001250 XRP
//
// The result can be passed to [Money.Cnv].
//
// Rate returns an error if:
//   - source and target are denominated in different currencies;
//   - the target currency is the currency of source and target;
//   - the target currency is unknown;
//   - target is zero.
func (r *Registry) Rate(source, target Money, curr string) (Money, error) {
	q, err := r.rate(source, target, curr)
	if err != nil {
		return Money{}, fmt.Errorf("computing rate [%v / %v] in %v: %w", source, target, curr, err)
	}
	return q, nil
}

func (r *Registry) rate(source, target Money, curr string) (Money, error) {
	if !source.SameCurr(target) {
		return Money{}, fmt.Errorf("%w: different currencies %v and %v", ErrInvalidConversion, source.Curr(), target.Curr())
	}
	if source.Curr() == curr {
		return Money{}, fmt.Errorf("%w: rate of %v to itself", ErrInvalidConversion, curr)
	}
	frac, err := r.Fraction(curr)
	if err != nil {
		return Money{}, err
	}
	if target.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	q, _ := source.value.QuoRem(target.value, int32(frac)) //nolint:gosec
	return newMoney(curr, frac, q.Shift(int32(frac))), nil //nolint:gosec
}

// Cnv returns value m converted to the currency of rate, where rate is the
// amount of that currency worth one unit of the currency of m.
// The result is truncated toward zero to the fraction of rate:
//
//	2.04 USD.Cnv(10.3 XRP) = 21.012000 XRP
//
// Cnv returns an error if m and rate are denominated in the same currency.
func (m Money) Cnv(rate Money) (Money, error) {
	if m.SameCurr(rate) {
		return Money{}, fmt.Errorf("converting [%v] with rate [%v]: %w: same currency", m, rate, ErrInvalidConversion)
	}
	// m.value * rate.value / 10^(m.frac + rate.frac), expressed in minor units of rate
	d := m.value.Mul(rate.value).Shift(-int32(m.frac)) //nolint:gosec
	return newMoney(rate.Curr(), rate.Fraction(), d), nil
}
