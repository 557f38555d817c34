package money

import (
	"math/big"

	"github.com/amirasaad/moneycore/pkg/currency"
)

// Sum adds one or more Prices, normalizing mixed scales to the finest
// common scale first. Fails with EmptyInput on no arguments, or
// CurrencyMismatch if the currencies differ.
func Sum(prices ...Price) (Price, error) {
	if len(prices) == 0 {
		return Price{}, emptyInputErr("sum")
	}
	normalized, err := Normalize(prices...)
	if err != nil {
		return Price{}, err
	}
	total := big.NewInt(0)
	for _, p := range normalized {
		total.Add(total, p.amount)
	}
	return Price{amount: total, currency: prices[0].currency, scale: normalized[0].scale}, nil
}

// Subtract returns a - b. It behaves as Sum over {a, -b}; the result scale
// is the finer of the two inputs' scales.
func Subtract(a, b Price) (Price, error) {
	return Sum(a, b.Negate())
}

// Average returns the mean of prices, truncating toward zero, at the
// finest input scale. Fails with EmptyInput on no arguments.
func Average(prices ...Price) (Price, error) {
	if len(prices) == 0 {
		return Price{}, emptyInputErr("average")
	}
	normalized, err := Normalize(prices...)
	if err != nil {
		return Price{}, err
	}
	total := big.NewInt(0)
	for _, p := range normalized {
		total.Add(total, p.amount)
	}
	n := big.NewInt(int64(len(normalized)))
	mean := new(big.Int).Quo(total, n)
	return Price{amount: mean, currency: prices[0].currency, scale: normalized[0].scale}, nil
}

// StdDev returns the population standard deviation of prices, at the
// finest input scale. Fails with EmptyInput on no arguments; a single
// element yields zero at its own scale.
func StdDev(prices ...Price) (Price, error) {
	if len(prices) == 0 {
		return Price{}, emptyInputErr("stddev")
	}
	if len(prices) == 1 {
		return Price{amount: big.NewInt(0), currency: prices[0].currency, scale: prices[0].scale}, nil
	}
	normalized, err := Normalize(prices...)
	if err != nil {
		return Price{}, err
	}

	n := big.NewInt(int64(len(normalized)))
	total := big.NewInt(0)
	for _, p := range normalized {
		total.Add(total, p.amount)
	}
	mean := new(big.Int).Quo(total, n)

	sumSq := big.NewInt(0)
	for _, p := range normalized {
		diff := new(big.Int).Sub(p.amount, mean)
		sumSq.Add(sumSq, diff.Mul(diff, diff))
	}
	variance := new(big.Int).Quo(sumSq, n)
	stdDev := new(big.Int).Sqrt(variance)

	return Price{amount: stdDev, currency: prices[0].currency, scale: normalized[0].scale}, nil
}

// Multiply scales p's amount by k, a real (possibly fractional) scalar. k
// is captured at 12-digit fixed precision, then the product is rounded
// back to an integer with mode. Output scale equals input scale.
func Multiply(p Price, k float64, mode RoundMode) (Price, error) {
	fixed := fixedPoint12(k)
	product := new(big.Int).Mul(p.amount, fixed)
	rounded := divRound(product, pow10(12), mode)
	return Price{amount: rounded, currency: p.currency, scale: p.scale}, nil
}

// fixedPoint12 returns round(k * 10^12) as an exact big.Int, computed via
// big.Rat so the only rounding error is the ordinary one incurred by k's
// own float64 representation, never by the fixed-point capture itself.
func fixedPoint12(k float64) *big.Int {
	kRat := new(big.Rat).SetFloat64(k)
	scaled := new(big.Rat).Mul(kRat, new(big.Rat).SetInt(pow10(12)))
	return divRound(scaled.Num(), scaled.Denom(), HalfUp)
}

// Divide divides p's amount by the non-zero integer divisor v, choosing an
// output scale from |v|'s magnitude alone so the quotient keeps meaningful
// precision:
//   - |v| < 100: keep input scale.
//   - 100 <= |v| < 1_000_000: milli.
//   - 1_000_000 <= |v| < 1_000_000_000: nano.
//   - |v| >= 1_000_000_000: pico.
func Divide(p Price, v int64, mode RoundMode) (Price, error) {
	if v == 0 {
		return Price{}, divideByZeroErr()
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}

	outputScale := p.scale
	switch {
	case abs < 100:
		outputScale = p.scale
	case abs < 1_000_000:
		outputScale = currency.Milli
	case abs < 1_000_000_000:
		outputScale = currency.Nano
	default:
		outputScale = currency.Pico
	}

	rescaled, err := SetPrecision(p, outputScale, mode)
	if err != nil {
		return Price{}, err
	}
	quotient := divRound(rescaled.amount, big.NewInt(abs), mode)
	if v < 0 {
		quotient.Neg(quotient)
	}
	return Price{amount: quotient, currency: p.currency, scale: outputScale}, nil
}

// SetPrecision changes p's scale to to. Increasing precision (moving to a
// finer scale) is always exact; decreasing precision uses the rounding
// kernel with mode.
func SetPrecision(p Price, to currency.Scale, mode RoundMode) (Price, error) {
	if !to.IsValid() {
		return Price{}, invalidScaleErr(to)
	}
	diff := to.Magnitude() - p.scale.Magnitude()
	if diff <= 0 {
		return p.rescale(to), nil
	}
	divisor := pow10(diff)
	rounded := divRound(p.amount, divisor, mode)
	return Price{amount: rounded, currency: p.currency, scale: to}, nil
}

// Round is the decrease-precision alias for SetPrecision.
func Round(p Price, to currency.Scale, mode RoundMode) (Price, error) {
	return SetPrecision(p, to, mode)
}
