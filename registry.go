package money

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Config holds the properties of a single currency.
type Config struct {
	// Fraction is the number of digits after the decimal point required for
	// representing the minor unit of a currency.
	// For example, 2 for US Dollars (1 cent = 0.01 dollars), or 6 for an asset
	// that is divisible into millionths.
	Fraction int `mapstructure:"fraction" json:"fraction"`
}

// Registry maps currency codes to their [Config] and constructs monetary values
// denominated in those currencies.
// The zero value is an empty registry that knows no currencies.
//
// A registry is normally populated once, during program start-up, with
// [NewRegistry] or [Registry.Init], and then shared.
// Lookups are safe for concurrent use by multiple goroutines.
// Concurrent calls to [Registry.Init] are not supported and must be
// serialized by the caller.
//
// Values already constructed keep the fraction they were created with,
// even if the registry is later re-initialized with a different one.
type Registry struct {
	currs atomic.Pointer[map[string]Config]
}

// NewRegistry returns a registry holding the given currencies.
// See also method [Registry.Init].
func NewRegistry(currs map[string]Config) (*Registry, error) {
	r := &Registry{}
	if err := r.Init(currs); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNewRegistry is like [NewRegistry] but panics if any of the currencies is invalid.
// It simplifies safe initialization of global variables holding registries.
func MustNewRegistry(currs map[string]Config) *Registry {
	r, err := NewRegistry(currs)
	if err != nil {
		panic(fmt.Sprintf("NewRegistry(%v) failed: %v", currs, err))
	}
	return r
}

// Init replaces the entire set of known currencies.
// Currencies are not merged with the previous set.
// The map is copied, so later changes to it do not affect the registry.
//
// Init returns an error if a currency code is empty or a fraction is negative.
// In that case the registry is left unchanged.
func (r *Registry) Init(currs map[string]Config) error {
	m := make(map[string]Config, len(currs))
	for code, cfg := range currs {
		if code == "" {
			return fmt.Errorf("initializing registry: empty currency code")
		}
		if cfg.Fraction < 0 {
			return fmt.Errorf("initializing registry: currency %v: %w %v", code, ErrInvalidFraction, cfg.Fraction)
		}
		m[code] = cfg
	}
	r.currs.Store(&m)
	return nil
}

// HasCurrency returns true if the currency is known to the registry.
func (r *Registry) HasCurrency(curr string) bool {
	_, ok := r.config(curr)
	return ok
}

// Fraction returns the number of fractional digits configured for the currency.
//
// Fraction returns an error if the currency is unknown.
func (r *Registry) Fraction(curr string) (int, error) {
	cfg, ok := r.config(curr)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownCurrency, curr)
	}
	return cfg.Fraction, nil
}

// Currencies returns the codes of all known currencies in lexical order.
func (r *Registry) Currencies() []string {
	m := r.currs.Load()
	if m == nil {
		return nil
	}
	codes := make([]string, 0, len(*m))
	for code := range *m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (r *Registry) config(curr string) (Config, bool) {
	m := r.currs.Load()
	if m == nil {
		return Config{}, false
	}
	cfg, ok := (*m)[curr]
	return cfg, ok
}
