package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/govalues/scaledmoney/currencyconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv isolates the test from the variables read by run.
func setEnv(t *testing.T, currencies string) {
	t.Helper()
	t.Setenv(currencyconfig.EnvPrefix+"_CONFIG", "")
	t.Setenv(currencyconfig.EnvPrefix+"_ENV_FILE", "")
	t.Setenv(currencyconfig.EnvPrefix+"_TRIM", "")
	t.Setenv(currencyconfig.EnvPrefix+"_CURRENCIES", currencies)
}

func TestRun(t *testing.T) {
	setEnv(t, "USD:2,XRP:6")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "1.03 USD", "3.05 USD"}, "4.08 USD\n"},
		{[]string{"--trim", "rate", "0.5 USD", "400 USD", "XRP"}, "0.00125 XRP\n"},
		{[]string{"--", "neg", "-1.05 USD"}, "1.05 USD\n"},
		{[]string{"currencies"}, "USD 2\nXRP 6\n"},
	}
	for _, tt := range tests {
		var stdout bytes.Buffer
		err := run(tt.args, &stdout, log.NewNopLogger())
		if assert.NoError(t, err, "run(%q)", tt.args) {
			assert.Equal(t, tt.want, stdout.String(), "run(%q)", tt.args)
		}
	}
}

func TestRun_ConfigFile(t *testing.T) {
	setEnv(t, "")
	path := filepath.Join(t.TempDir(), "currencies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currencies:\n  - code: JPY\n    fraction: 0\n"), 0o600))

	var stdout, logs bytes.Buffer
	err := run([]string{"--config", path, "mul", "150 JPY", "1.5"}, &stdout, log.NewLogfmtLogger(&logs))
	require.NoError(t, err)
	assert.Equal(t, "150 JPY\n", stdout.String())
	assert.Contains(t, logs.String(), "component=calculator")
	assert.Contains(t, logs.String(), "method=mul")
}

func TestRun_Error(t *testing.T) {
	t.Run("missing operation", func(t *testing.T) {
		setEnv(t, "USD:2")
		var stdout bytes.Buffer
		assert.Error(t, run(nil, &stdout, log.NewNopLogger()))
		assert.Contains(t, stdout.String(), "usage: moneycalc")
	})

	t.Run("no currencies", func(t *testing.T) {
		setEnv(t, "")
		err := run([]string{"add", "1 USD", "1 USD"}, &bytes.Buffer{}, log.NewNopLogger())
		assert.ErrorIs(t, err, currencyconfig.ErrNoCurrencies)
	})

	t.Run("unknown flag", func(t *testing.T) {
		setEnv(t, "USD:2")
		assert.Error(t, run([]string{"--precision", "2", "add"}, &bytes.Buffer{}, log.NewNopLogger()))
	})

	t.Run("failed operation", func(t *testing.T) {
		setEnv(t, "USD:2")
		err := run([]string{"div", "1 USD", "0"}, &bytes.Buffer{}, log.NewNopLogger())
		assert.Error(t, err)
	})
}

func TestRun_Help(t *testing.T) {
	setEnv(t, "")
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"--help"}, &stdout, log.NewNopLogger()))
	assert.Contains(t, stdout.String(), "operations: abs, add, cmp")
}
