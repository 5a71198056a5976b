// Moneycalc evaluates a single monetary operation over a configured set of
// currencies.
//
//	moneycalc --config currencies.yaml add "1.03 USD" "3.05 USD"
//	MONEYCALC_CURRENCIES=USD:2,XRP:6 moneycalc rate "0.5 USD" "400 USD" XRP
//
// Negative operands must follow "--" so they are not taken for flags:
//
//	moneycalc --config currencies.yaml -- neg "-1.05 USD"
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/govalues/scaledmoney/currencyconfig"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Log("msg", "moneycalc failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, logger log.Logger) error {
	fs := pflag.NewFlagSet("moneycalc", pflag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.String("config", "", "currency configuration file (yaml, json or toml)")
	fs.String("env-file", "", "optional .env file loaded before the environment is read")
	fs.Bool("trim", false, "print monetary results without trailing zeros")
	fs.Usage = func() {
		fmt.Fprintf(stdout, "usage: moneycalc [flags] <operation> <args...>\n\noperations: %v\n\nflags:\n", strings.Join(Ops(), ", "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(currencyconfig.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing operation")
	}

	reg, err := currencyconfig.NewRegistry(currencyconfig.Options{
		File:    v.GetString("config"),
		EnvFile: v.GetString("env-file"),
	})
	if err != nil {
		return err
	}
	logger.Log("msg", "currencies loaded", "currencies", strings.Join(reg.Currencies(), ","))

	var calc Calculator
	calc = NewCalculator(reg, v.GetBool("trim"))
	calc = NewLoggingCalculator(log.With(logger, "component", "calculator"), calc)

	result, err := calc.Eval(fs.Arg(0), fs.Args()[1:])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}
