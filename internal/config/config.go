package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ledgerkit/money"
)

// Config holds the calculator configuration.
type Config struct {
	LogLevel        string
	LogPretty       bool
	DefaultCurrency money.Currency
}

// Load reads configuration from an optional .env file and from
// MONEYCALC_* environment variables, the latter taking precedence.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MONEYCALC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("DEFAULT_CURRENCY", "USD")
	v.AutomaticEnv()

	curr, err := money.ParseCurr(v.GetString("DEFAULT_CURRENCY"))
	if err != nil {
		return nil, fmt.Errorf("loading MONEYCALC_DEFAULT_CURRENCY: %w", err)
	}

	return &Config{
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogPretty:       v.GetBool("LOG_PRETTY"),
		DefaultCurrency: curr,
	}, nil
}
