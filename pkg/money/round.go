package money

import "math/big"

// RoundMode selects one of the five IEEE-754 rounding directions the
// precision-adjustment primitive supports.
type RoundMode int

const (
	// Floor rounds toward negative infinity.
	Floor RoundMode = iota
	// Ceil rounds toward positive infinity.
	Ceil
	// HalfUp rounds ties, and anything strictly past the half mark, away
	// from zero.
	HalfUp
	// HalfDown rounds only strictly-past-half away from zero; ties
	// truncate toward zero.
	HalfDown
	// HalfEven rounds strictly-past-half away from zero and ties to
	// whichever neighbor is even.
	HalfEven
)

// DefaultRoundMode is applied whenever a caller does not select one.
const DefaultRoundMode = HalfUp

var one = big.NewInt(1)

// divRound divides dividend by divisor (divisor > 0) and rounds the
// quotient according to mode: q = trunc(d/v), r = d - q*v (r takes the sign
// of d), and the half-comparison is done via 2*|r| vs v to avoid any
// truncation error from a literal v/2.
func divRound(dividend, divisor *big.Int, mode RoundMode) *big.Int {
	q, r := new(big.Int).QuoRem(dividend, divisor, new(big.Int))
	if r.Sign() == 0 {
		return q
	}

	switch mode {
	case Floor:
		if dividend.Sign() < 0 {
			q.Sub(q, one)
		}
		return q
	case Ceil:
		if dividend.Sign() > 0 {
			q.Add(q, one)
		}
		return q
	}

	absR := new(big.Int).Abs(r)
	doubled := new(big.Int).Lsh(absR, 1)
	cmp := doubled.Cmp(divisor)

	direction := int64(1)
	if r.Sign() < 0 {
		direction = -1
	}

	switch mode {
	case HalfUp:
		if cmp >= 0 {
			q.Add(q, big.NewInt(direction))
		}
	case HalfDown:
		if cmp > 0 {
			q.Add(q, big.NewInt(direction))
		}
	case HalfEven:
		switch {
		case cmp > 0:
			q.Add(q, big.NewInt(direction))
		case cmp == 0:
			if new(big.Int).And(q, one).Sign() != 0 { // q is odd
				q.Add(q, big.NewInt(direction))
			}
		}
	}
	return q
}
