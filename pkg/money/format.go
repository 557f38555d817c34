package money

import (
	"math/big"
	"strings"

	"github.com/amirasaad/moneycore/pkg/currency"
)

// FormatCode renders p in code-form: "CCC <digits>[.<digits>]" with
// underscore thousands grouping.
func FormatCode(p Price) string {
	sign, intPart, fracPart := splitDigits(p)
	groupedInt := groupRightToLeft(intPart, '_')

	switch p.scale {
	case currency.Whole:
		return string(p.currency) + " " + sign + groupedInt
	case currency.Centi:
		frac := trimTrailingZerosMin(fracPart, 2)
		return string(p.currency) + " " + sign + groupedInt + "." + frac
	default:
		frac := groupLeftToRight(fracPart, '_')
		return string(p.currency) + " " + sign + groupedInt + "." + frac
	}
}

// FormatSymbol renders p in symbol-form: "<symbol><digits>[.<digits>]" with
// comma thousands grouping and no underscores in the fractional part. The
// symbol is a prefix; unknown currencies fall back to their code text as
// the prefix.
func FormatSymbol(p Price) string {
	sign, intPart, fracPart := splitDigits(p)
	groupedInt := groupRightToLeft(intPart, ',')
	symbol := currency.SymbolForCode(p.currency)

	switch p.scale {
	case currency.Whole:
		return symbol + sign + groupedInt
	case currency.Centi:
		frac := trimTrailingZerosMin(fracPart, 2)
		return symbol + sign + groupedInt + "." + frac
	default:
		return symbol + sign + groupedInt + "." + fracPart
	}
}

// splitDigits returns the sign ("" or "-"), grouping-free integer part, and
// grouping-free fractional part (exactly p.scale.Digits() digits) for p's
// absolute amount.
func splitDigits(p Price) (sign, intPart, fracPart string) {
	d := p.scale.Digits()
	abs := new(big.Int).Abs(p.amount)
	if p.amount.Sign() < 0 {
		sign = "-"
	}

	digits := abs.String()
	if len(digits) < d+1 {
		digits = strings.Repeat("0", d+1-len(digits)) + digits
	}

	if d == 0 {
		return sign, digits, ""
	}
	return sign, digits[:len(digits)-d], digits[len(digits)-d:]
}

// groupRightToLeft inserts sep into digits every three characters, counting
// from the right (the usual thousands grouping for an integer part).
func groupRightToLeft(digits string, sep byte) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	lead := n % 3
	var b strings.Builder
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupLeftToRight inserts sep into digits every three characters, counting
// from the left, e.g. "000000250" -> "000_000_250". Used for the
// fractional-part grouping of milli/micro/nano/pico scales.
func groupLeftToRight(digits string, sep byte) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	for i := 0; i < n; i += 3 {
		if i > 0 {
			b.WriteByte(sep)
		}
		end := i + 3
		if end > n {
			end = n
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// trimTrailingZerosMin trims trailing zeros from digits but never below
// minLen characters.
func trimTrailingZerosMin(digits string, minLen int) string {
	trimmed := strings.TrimRight(digits, "0")
	if len(trimmed) < minLen {
		return digits[:minLen]
	}
	return trimmed
}
