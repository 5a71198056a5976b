// Package currencyconfig loads the set of known currencies for a
// [money.Registry] from a configuration file and the environment.
//
// A configuration file lists every currency with its fraction:
//
//	currencies:
//	  - code: USD
//	    fraction: 2
//	  - code: XRP
//	    fraction: 6
//
// Any format supported by viper can be used, selected by the file extension.
// The MONEYCALC_CURRENCIES environment variable, such as "USD:2,XRP:6",
// replaces the currencies of the file entirely.
package currencyconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	money "github.com/govalues/scaledmoney"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by [Load].
const EnvPrefix = "MONEYCALC"

var (
	// ErrNoCurrencies is returned when neither the file nor the environment
	// define any currency.
	ErrNoCurrencies = errors.New("no currencies configured")
	// ErrInvalidEntry is returned for a malformed currency definition.
	ErrInvalidEntry = errors.New("invalid currency entry")
)

// Options control where the configuration is read from.
type Options struct {
	// File is the path of the configuration file.
	// If empty, the MONEYCALC_CONFIG environment variable is used; if that is
	// empty too, only the environment is consulted.
	File string
	// EnvFile is an optional .env file loaded into the environment before
	// reading it. Variables already set take precedence.
	EnvFile string
}

type entry struct {
	Code     string `mapstructure:"code"`
	Fraction *int   `mapstructure:"fraction"`
}

// Load reads the currencies described by opts.
// The result can be passed to [money.NewRegistry] or [money.Registry.Init].
func Load(opts Options) (map[string]money.Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("loading env file %v: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindEnv("config"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("inline", EnvPrefix+"_CURRENCIES"); err != nil {
		return nil, err
	}

	// Environment
	if inline := v.GetString("inline"); inline != "" {
		currs, err := ParseInline(inline)
		if err != nil {
			return nil, fmt.Errorf("parsing %v_CURRENCIES: %w", EnvPrefix, err)
		}
		return currs, nil
	}

	// File
	file := opts.File
	if file == "" {
		file = v.GetString("config")
	}
	if file == "" {
		return nil, ErrNoCurrencies
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %v: %w", file, err)
	}
	var entries []entry
	if err := v.UnmarshalKey("currencies", &entries); err != nil {
		return nil, fmt.Errorf("decoding config file %v: %w", file, err)
	}
	currs, err := fromEntries(entries)
	if err != nil {
		return nil, fmt.Errorf("config file %v: %w", file, err)
	}
	return currs, nil
}

// NewRegistry is a shortcut for [Load] followed by [money.NewRegistry].
func NewRegistry(opts Options) (*money.Registry, error) {
	currs, err := Load(opts)
	if err != nil {
		return nil, err
	}
	return money.NewRegistry(currs)
}

// ParseInline parses a comma-separated list of code:fraction pairs:
//
//	USD:2,XRP:6,JPY:0
func ParseInline(s string) (map[string]money.Config, error) {
	var entries []entry
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, frac, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%w %q: missing fraction", ErrInvalidEntry, pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(frac))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidEntry, pair, err)
		}
		entries = append(entries, entry{Code: strings.TrimSpace(code), Fraction: &n})
	}
	return fromEntries(entries)
}

func fromEntries(entries []entry) (map[string]money.Config, error) {
	if len(entries) == 0 {
		return nil, ErrNoCurrencies
	}
	currs := make(map[string]money.Config, len(entries))
	for i, e := range entries {
		switch {
		case e.Code == "":
			return nil, fmt.Errorf("%w #%v: empty code", ErrInvalidEntry, i)
		case e.Fraction == nil:
			return nil, fmt.Errorf("%w %v: missing fraction", ErrInvalidEntry, e.Code)
		case *e.Fraction < 0:
			return nil, fmt.Errorf("%w %v: negative fraction %v", ErrInvalidEntry, e.Code, *e.Fraction)
		}
		if _, ok := currs[e.Code]; ok {
			return nil, fmt.Errorf("%w %v: duplicate code", ErrInvalidEntry, e.Code)
		}
		currs[e.Code] = money.Config{Fraction: *e.Fraction}
	}
	return currs, nil
}
