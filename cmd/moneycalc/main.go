// Command moneycalc evaluates monetary expressions from the command line.
//
// Usage:
//
//	moneycalc BRL:100 + BRL:1.50
//	moneycalc 8.99 / 5
//	moneycalc USD:100 discount 10
//
// The result is printed to stdout. Configuration is read from the
// environment: MONEYCALC_LOG_LEVEL, MONEYCALC_LOG_PRETTY and
// MONEYCALC_DEFAULT_CURRENCY, optionally through a .env file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ledgerkit/money"
	"github.com/ledgerkit/money/internal/calc"
	"github.com/ledgerkit/money/internal/config"
	"github.com/ledgerkit/money/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "moneycalc: %v\n", err)
		os.Exit(2)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	os.Exit(run(os.Args[1:], cfg.DefaultCurrency, log, os.Stdout))
}

// run evaluates args and writes the result to out.
// It returns the process exit status.
func run(args []string, def money.Currency, log zerolog.Logger, out io.Writer) int {
	res, err := calc.New(log, def).Eval(args)
	if err != nil {
		logError(log, err)
		return 1
	}
	fmt.Fprintln(out, res)
	return 0
}

// logError logs err together with the payload of the money error types.
func logError(log zerolog.Logger, err error) {
	ev := log.Error().Err(err)

	var scaleErr *money.InvalidCurrencyScaleError
	var currErr *money.DifferentCurrenciesError
	switch {
	case errors.As(err, &scaleErr):
		ev = ev.
			Str("amount", scaleErr.Amount.String()).
			Int("scale", scaleErr.Scale).
			Str("currency", scaleErr.Curr.Code()).
			Int("limit", scaleErr.Limit)
	case errors.As(err, &currErr):
		ev = ev.
			Str("left", currErr.Left.Code()).
			Str("right", currErr.Right.Code())
	}
	ev.Msg("evaluation failed")
}
