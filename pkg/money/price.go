// Package money implements the currency-aware monetary value type (Price),
// its three interchangeable input/output formats, and the arithmetic,
// rounding, normalization, comparison and allocation kernels that operate
// on it. Every operation is a pure function over immutable inputs: a Price
// is a plain (amount, currency, scale) triple, never a mutable object.
package money

import (
	"math/big"

	"github.com/amirasaad/moneycore/pkg/currency"
)

// Price is the structured, lossless representation of a monetary value:
// an exact integer amount of minor units at a given scale, in a given
// currency. It is conceptually immutable: every operation below returns a
// fresh Price rather than mutating an existing one.
type Price struct {
	amount   *big.Int
	currency currency.Code
	scale    currency.Scale
}

// Amount returns the exact integer number of minor units. The returned
// value is a defensive copy; mutating it does not affect p.
func (p Price) Amount() *big.Int {
	return new(big.Int).Set(p.amount)
}

// Currency returns p's currency code.
func (p Price) Currency() currency.Code {
	return p.currency
}

// Scale returns p's decimal scale.
func (p Price) Scale() currency.Scale {
	return p.scale
}

// Zero returns a Price of amount 0 in code, at code's registry default
// scale.
func Zero(code currency.Code) Price {
	return Price{amount: big.NewInt(0), currency: code, scale: currency.DefaultScaleFor(code)}
}

// FromMinorUnits builds a Price directly from an exact integer amount of
// minor units, skipping the parser, for callers that already hold a
// validated (amount, scale) pair.
//
// Fails with InvalidScale if scale is not one of the six known scales.
func FromMinorUnits(amount *big.Int, code currency.Code, scale currency.Scale) (Price, error) {
	if !scale.IsValid() {
		return Price{}, invalidScaleErr(scale)
	}
	return Price{amount: new(big.Int).Set(amount), currency: code, scale: scale}, nil
}

// IsZero reports whether p's amount is exactly zero.
func (p Price) IsZero() bool {
	return p.amount.Sign() == 0
}

// IsPositive reports whether p's amount is strictly greater than zero.
func (p Price) IsPositive() bool {
	return p.amount.Sign() > 0
}

// IsNegative reports whether p's amount is strictly less than zero.
func (p Price) IsNegative() bool {
	return p.amount.Sign() < 0
}

// Abs returns a Price with the same currency and scale and a non-negative
// amount.
func (p Price) Abs() Price {
	if p.amount.Sign() < 0 {
		return Price{amount: new(big.Int).Neg(p.amount), currency: p.currency, scale: p.scale}
	}
	return p
}

// Negate returns a Price with the same currency and scale and the sign of
// the amount flipped.
func (p Price) Negate() Price {
	return Price{amount: new(big.Int).Neg(p.amount), currency: p.currency, scale: p.scale}
}

// rescale returns a copy of p expressed at scale to, which must be the same
// or finer than p's current scale (magnitude(to) <= magnitude(p.scale)) so
// the multiplication is always exact.
func (p Price) rescale(to currency.Scale) Price {
	diff := p.scale.Magnitude() - to.Magnitude()
	if diff == 0 {
		return Price{amount: new(big.Int).Set(p.amount), currency: p.currency, scale: to}
	}
	factor := pow10(diff)
	return Price{amount: new(big.Int).Mul(p.amount, factor), currency: p.currency, scale: to}
}

// pow10 returns 10^n for n >= 0.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
