package money

import (
	"fmt"

	"github.com/amirasaad/moneycore/pkg/currency"
	"github.com/amirasaad/moneycore/pkg/moneyerr"
)

// Re-exported so callers of pkg/money never need to import pkg/moneyerr
// directly for errors.Is checks.
var (
	ErrInvalidFormat    = moneyerr.ErrInvalidFormat
	ErrCurrencyMismatch = moneyerr.ErrCurrencyMismatch
	ErrEmptyInput       = moneyerr.ErrEmptyInput
	ErrDivideByZero     = moneyerr.ErrDivideByZero
	ErrInvalidPartition = moneyerr.ErrInvalidPartition
	ErrInvalidScale     = moneyerr.ErrInvalidScale
)

func invalidFormatErr(input string, reason string) error {
	return moneyerr.New(moneyerr.InvalidFormat, reason, "input", input)
}

func currencyMismatchErr(a, b currency.Code) error {
	return moneyerr.New(
		moneyerr.CurrencyMismatch,
		fmt.Sprintf("cannot operate on different currencies: %s and %s", a, b),
		"a", a, "b", b,
	)
}

func symbolMismatchErr(symbol string, want, got currency.Code) error {
	return moneyerr.New(
		moneyerr.CurrencyMismatch,
		fmt.Sprintf("symbol %q does not match requested currency %s", symbol, got),
		"symbol", symbol, "expected", want, "requested", got,
	)
}

func emptyInputErr(op string) error {
	return moneyerr.New(moneyerr.EmptyInput, fmt.Sprintf("%s requires at least one input", op))
}

func divideByZeroErr() error {
	return moneyerr.New(moneyerr.DivideByZero, "divisor must not be zero")
}

func invalidPartitionErr(reason string) error {
	return moneyerr.New(moneyerr.InvalidPartition, reason)
}

func invalidScaleErr(scale currency.Scale) error {
	return moneyerr.New(moneyerr.InvalidScale, fmt.Sprintf("unknown scale token %v", scale), "scale", scale)
}
