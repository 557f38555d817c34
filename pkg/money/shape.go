package money

import (
	"math/big"

	"github.com/amirasaad/moneycore/pkg/currency"
)

// Shape is the structured numeric input/output form: an exact big-integer
// amount, a currency code, and an optional scale token. When Scale is nil,
// the currency's registry default applies: shape input always canonicalizes
// to either the provided scale or the currency default, never an absent
// one.
type Shape struct {
	Amount   *big.Int
	Currency string
	Scale    *string
}

// ToShape lowers p to its structured Shape form.
func ToShape(p Price) Shape {
	scale := p.scale.String()
	return Shape{
		Amount:   p.Amount(),
		Currency: string(p.currency),
		Scale:    &scale,
	}
}

// coerceShape implements the "Shape -> CoerceAmount -> InheritOrLookupScale
// -> Emit" leg of the parse state machine.
func coerceShape(s Shape) (Price, error) {
	if s.Amount == nil {
		return Price{}, invalidFormatErr("<shape>", "shape amount is missing")
	}
	if s.Currency == "" {
		return Price{}, invalidFormatErr("<shape>", "shape currency is missing")
	}

	code := currency.Code(s.Currency)
	var scale currency.Scale
	if s.Scale == nil {
		scale = currency.DefaultScaleFor(code)
	} else {
		resolved, ok := currency.ParseScaleToken(*s.Scale)
		if !ok {
			return Price{}, invalidScaleErr(resolved)
		}
		scale = resolved
	}

	return Price{amount: new(big.Int).Set(s.Amount), currency: code, scale: scale}, nil
}

// isShape reports whether x is a Shape with an exact amount, a non-empty
// currency, and (if present) a known scale token.
func isShape(x any) bool {
	s, ok := x.(Shape)
	if !ok {
		return false
	}
	if s.Amount == nil || s.Currency == "" {
		return false
	}
	if s.Scale != nil {
		if _, ok := currency.ParseScaleToken(*s.Scale); !ok {
			return false
		}
	}
	return true
}
