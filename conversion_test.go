package money

import (
	"errors"
	"testing"
)

func TestRegistry_Rate(t *testing.T) {
	reg := newTestRegistry()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			source, target [2]string
			curr           string
			want           string
		}{
			{[2]string{"0.5", "USD"}, [2]string{"400", "USD"}, "XRP", "0.001250"},
			{[2]string{"10", "USD"}, [2]string{"3", "USD"}, "XRP", "3.333333"},
			{[2]string{"-10", "USD"}, [2]string{"3", "USD"}, "XRP", "-3.333333"},
			{[2]string{"1", "XRP"}, [2]string{"3", "XRP"}, "USD", "0.33"},
			{[2]string{"2", "XRP"}, [2]string{"3", "XRP"}, "JPY", "0"},
		}
		for _, tt := range tests {
			source := reg.MustFromAmount(tt.source[0], tt.source[1])
			target := reg.MustFromAmount(tt.target[0], tt.target[1])
			got, err := reg.Rate(source, target, tt.curr)
			if err != nil {
				t.Errorf("Rate(%v, %v, %q) failed: %v", source, target, tt.curr, err)
				continue
			}
			if got.Curr() != tt.curr {
				t.Errorf("Rate(%v, %v, %q).Curr() = %q, want %q", source, target, tt.curr, got.Curr(), tt.curr)
			}
			if got.Amount() != tt.want {
				t.Errorf("Rate(%v, %v, %q) = %q, want %q", source, target, tt.curr, got.Amount(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		usd := reg.MustFromAmount("0.5", "USD")
		xrp := reg.MustFromAmount("400", "XRP")
		tests := map[string]struct {
			source, target Money
			curr           string
			want           error
		}{
			"different currencies": {usd, xrp, "JPY", ErrInvalidConversion},
			"same currency":        {usd, usd, "USD", ErrInvalidConversion},
			"unknown currency":     {usd, usd, "EUR", ErrUnknownCurrency},
			"zero target":          {usd, reg.MustZero("USD"), "XRP", ErrDivisionByZero},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := reg.Rate(tt.source, tt.target, tt.curr)
				if !errors.Is(err, tt.want) {
					t.Errorf("Rate(%v, %v, %q) error = %v, want %v", tt.source, tt.target, tt.curr, err, tt.want)
				}
			})
		}
	})
}

func TestMoney_Cnv(t *testing.T) {
	reg := newTestRegistry()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			money, rate, want [2]string
		}{
			{[2]string{"2.04", "USD"}, [2]string{"10.3", "XRP"}, [2]string{"21.012000", "XRP"}},
			{[2]string{"0.5", "XRP"}, [2]string{"0.34", "USD"}, [2]string{"0.17", "USD"}},
			{[2]string{"20.5345", "XRP"}, [2]string{"0.34", "USD"}, [2]string{"6.98", "USD"}},
			{[2]string{"3.000231", "XRP"}, [2]string{"0.43", "USD"}, [2]string{"1.29", "USD"}},
			{[2]string{"-3.000231", "XRP"}, [2]string{"0.43", "USD"}, [2]string{"-1.29", "USD"}},
			{[2]string{"150", "JPY"}, [2]string{"0.67", "USD"}, [2]string{"100.50", "USD"}},
		}
		for _, tt := range tests {
			m := reg.MustFromAmount(tt.money[0], tt.money[1])
			rate := reg.MustFromAmount(tt.rate[0], tt.rate[1])
			got, err := m.Cnv(rate)
			if err != nil {
				t.Errorf("%v.Cnv(%v) failed: %v", m, rate, err)
				continue
			}
			want := reg.MustFromAmount(tt.want[0], tt.want[1])
			if got.Value() != want.Value() || got.Curr() != want.Curr() {
				t.Errorf("%v.Cnv(%v) = %v, want %v", m, rate, got, want)
			}
			if same(got, m) || same(got, rate) {
				t.Errorf("%v.Cnv(%v) = %v, want a new value", m, rate, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := reg.MustFromAmount("1.23", "USD")
		rate := reg.MustFromAmount("0.3", "USD")
		_, err := m.Cnv(rate)
		if !errors.Is(err, ErrInvalidConversion) {
			t.Errorf("%v.Cnv(%v) error = %v, want %v", m, rate, err, ErrInvalidConversion)
		}
	})
}

func TestRegistry_RateCnv(t *testing.T) {
	reg := newTestRegistry()

	// 400 USD buys 1 XRP, so 0.5 USD buys 0.00125 XRP.
	rate, err := reg.Rate(reg.MustFromAmount("0.5", "USD"), reg.MustFromAmount("400", "USD"), "XRP")
	if err != nil {
		t.Fatalf("Rate() failed: %v", err)
	}
	got, err := reg.MustFromAmount("800", "USD").Cnv(rate)
	if err != nil {
		t.Fatalf("Cnv() failed: %v", err)
	}
	if want := "1.000000 XRP"; got.String() != want {
		t.Errorf("Cnv() = %q, want %q", got, want)
	}
}
