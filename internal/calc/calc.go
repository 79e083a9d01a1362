// Package calc evaluates simple left-to-right monetary expressions such as
//
//	BRL:100 + BRL:1.50 - 0.50
//	USD:100 discount 10
//
// Operands without a currency prefix use the default currency.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ledgerkit/money"
	"github.com/ledgerkit/money/discount"
)

var (
	errEmptyExpression = errors.New("empty expression")
	errMissingOperand  = errors.New("missing operand")
	errUnknownOperator = errors.New("unknown operator")
)

// op is a binary operation between two monetary values.
type op func(a money.Amount, b money.Monetary) (money.Amount, error)

var ops = map[string]op{
	"add": money.Amount.Add,
	"+":   money.Amount.Add,
	"sub": money.Amount.Sub,
	"-":   money.Amount.Sub,
	"mul": money.Amount.Mul,
	"*":   money.Amount.Mul,
	"x":   money.Amount.Mul,
	"div": money.Amount.Quo,
	"/":   money.Amount.Quo,
}

const discountOp = "discount"

// ParseOperand converts a token to an amount.
// The token is either "CUR:amount" or a bare amount in currency def.
// Errors of the money package are returned unchanged.
func ParseOperand(tok string, def money.Currency) (money.Amount, error) {
	curr, amount, ok := strings.Cut(tok, ":")
	if !ok {
		return money.ParseAmount(def.Code(), tok)
	}
	return money.ParseAmount(curr, amount)
}

// Evaluator evaluates expressions.
type Evaluator struct {
	log zerolog.Logger
	def money.Currency
}

// New creates an evaluator using def for operands without a currency.
func New(log zerolog.Logger, def money.Currency) *Evaluator {
	return &Evaluator{
		log: log.With().Str("component", "calc").Logger(),
		def: def,
	}
}

// Eval evaluates tokens strictly from left to right, without precedence.
func (e *Evaluator) Eval(tokens []string) (money.Amount, error) {
	if len(tokens) == 0 {
		return money.Amount{}, errEmptyExpression
	}
	acc, err := ParseOperand(tokens[0], e.def)
	if err != nil {
		return money.Amount{}, err
	}
	for i := 1; i < len(tokens); i += 2 {
		name := strings.ToLower(tokens[i])
		if i+1 >= len(tokens) {
			return money.Amount{}, fmt.Errorf("operator %q: %w", name, errMissingOperand)
		}
		arg := tokens[i+1]

		var res money.Amount
		switch fn, ok := ops[name]; {
		case name == discountOp:
			res, err = applyDiscount(acc, arg)
		case ok:
			var b money.Amount
			b, err = ParseOperand(arg, e.def)
			if err != nil {
				return money.Amount{}, err
			}
			res, err = fn(acc, b)
		default:
			return money.Amount{}, fmt.Errorf("%w %q", errUnknownOperator, name)
		}
		if err != nil {
			return money.Amount{}, err
		}

		e.log.Debug().
			Str("op", name).
			Str("left", acc.String()).
			Str("right", arg).
			Str("result", res.String()).
			Msg("step")
		acc = res
	}
	return acc, nil
}

func applyDiscount(a money.Amount, arg string) (money.Amount, error) {
	pct, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return money.Amount{}, fmt.Errorf("parsing discount percentage %q: %w", arg, err)
	}
	d, err := discount.New(a).Apply(pct)
	if err != nil {
		return money.Amount{}, err
	}
	return d.Amount, nil
}
