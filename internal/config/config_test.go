package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/money"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONEYCALC_LOG_LEVEL", "")
	t.Setenv("MONEYCALC_LOG_PRETTY", "")
	t.Setenv("MONEYCALC_DEFAULT_CURRENCY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, money.USD, cfg.DefaultCurrency)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MONEYCALC_LOG_LEVEL", "debug")
	t.Setenv("MONEYCALC_LOG_PRETTY", "true")
	t.Setenv("MONEYCALC_DEFAULT_CURRENCY", "brl")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, money.BRL, cfg.DefaultCurrency)
}

func TestLoad_InvalidCurrency(t *testing.T) {
	t.Setenv("MONEYCALC_DEFAULT_CURRENCY", "BTC")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, money.ErrUnknownCurrency)
}

func TestLoad_DotEnv(t *testing.T) {
	// Unset for the duration of the test.
	t.Setenv("MONEYCALC_DEFAULT_CURRENCY", "")
	require.NoError(t, os.Unsetenv("MONEYCALC_DEFAULT_CURRENCY"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MONEYCALC_DEFAULT_CURRENCY=CHF\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, money.CHF, cfg.DefaultCurrency)
}

func TestLoad_EnvOverridesDotEnv(t *testing.T) {
	t.Setenv("MONEYCALC_DEFAULT_CURRENCY", "JPY")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MONEYCALC_DEFAULT_CURRENCY=CHF\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, money.JPY, cfg.DefaultCurrency)
}
