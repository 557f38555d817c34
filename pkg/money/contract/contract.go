// Package contract is a uniform, orchestrated surface over pkg/money's
// arithmetic, parsing, formatting and comparison kernels. Every operation
// here accepts inputs in any of the three interchangeable formats, a
// code-form string, a symbol-form string, or a money.Shape, classifies and
// parses them, runs the underlying kernel operation, and lets the caller
// choose how the result is rendered via AsWords / AsShape / AsHuman.
//
// This package intentionally holds no logic of its own beyond dispatch: it
// is the seam between "any of three input shapes" and the structured
// money.Price the kernel actually operates on.
package contract

import (
	"github.com/amirasaad/moneycore/pkg/currency"
	"github.com/amirasaad/moneycore/pkg/money"
)

// Options configures the optional round mode an arithmetic or precision
// operation uses. When no Option is passed, the operation uses
// money.DefaultRoundMode (HalfUp).
type Options struct {
	Round money.RoundMode
	round bool
}

// Option configures an Options.
type Option func(*Options)

// WithRound selects the rounding mode for operations that may need to
// discard precision (Multiply, Divide, SetPrecision, Round).
func WithRound(mode money.RoundMode) Option {
	return func(o *Options) { o.Round = mode; o.round = true }
}

func resolve(opts []Option) Options {
	o := Options{Round: money.DefaultRoundMode}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func parseAll(inputs []any) ([]money.Price, error) {
	prices := make([]money.Price, len(inputs))
	for i, in := range inputs {
		p, err := money.ParseAny(in)
		if err != nil {
			return nil, err
		}
		prices[i] = p
	}
	return prices, nil
}

// Sum adds one or more inputs (any mix of the three formats, though all
// must share one currency), normalizing mixed scales first.
func Sum(inputs ...any) (money.Price, error) {
	prices, err := parseAll(inputs)
	if err != nil {
		return money.Price{}, err
	}
	return money.Sum(prices...)
}

// Subtract returns a - b.
func Subtract(a, b any) (money.Price, error) {
	pa, err := money.ParseAny(a)
	if err != nil {
		return money.Price{}, err
	}
	pb, err := money.ParseAny(b)
	if err != nil {
		return money.Price{}, err
	}
	return money.Subtract(pa, pb)
}

// Multiply scales of by the scalar by.
func Multiply(of any, by float64, opts ...Option) (money.Price, error) {
	p, err := money.ParseAny(of)
	if err != nil {
		return money.Price{}, err
	}
	o := resolve(opts)
	return money.Multiply(p, by, o.Round)
}

// Divide divides of by the non-zero integer scalar by.
func Divide(of any, by int64, opts ...Option) (money.Price, error) {
	p, err := money.ParseAny(of)
	if err != nil {
		return money.Price{}, err
	}
	o := resolve(opts)
	return money.Divide(p, by, o.Round)
}

// Allocate splits of according to spec, distributing the remainder per
// policy.
func Allocate(of any, spec money.PartitionSpec, policy money.RemainderPolicy) ([]money.Price, error) {
	p, err := money.ParseAny(of)
	if err != nil {
		return nil, err
	}
	return money.Allocate(p, spec, policy)
}

// SetPrecision changes of's scale to to.
func SetPrecision(of any, to currency.Scale, opts ...Option) (money.Price, error) {
	p, err := money.ParseAny(of)
	if err != nil {
		return money.Price{}, err
	}
	o := resolve(opts)
	return money.SetPrecision(p, to, o.Round)
}

// Round is the decrease-precision alias of SetPrecision.
func Round(of any, to currency.Scale, opts ...Option) (money.Price, error) {
	p, err := money.ParseAny(of)
	if err != nil {
		return money.Price{}, err
	}
	o := resolve(opts)
	return money.Round(p, to, o.Round)
}

// Average returns the mean of inputs.
func Average(inputs ...any) (money.Price, error) {
	prices, err := parseAll(inputs)
	if err != nil {
		return money.Price{}, err
	}
	return money.Average(prices...)
}

// StdDev returns the population standard deviation of inputs.
func StdDev(inputs ...any) (money.Price, error) {
	prices, err := parseAll(inputs)
	if err != nil {
		return money.Price{}, err
	}
	return money.StdDev(prices...)
}

// AsWords renders p in code-form ("USD 50.37").
func AsWords(p money.Price) string {
	return money.FormatCode(p)
}

// AsShape renders p in structured Shape form.
func AsShape(p money.Price) money.Shape {
	return money.ToShape(p)
}

// AsHuman renders p in symbol-form ("$50.37").
func AsHuman(p money.Price) string {
	return money.FormatSymbol(p)
}

// NormalizeToWords parses x (optionally overriding the resolved currency,
// for symbol-form disambiguation) and renders it in code-form.
func NormalizeToWords(x any, currencyOverride ...currency.Code) (string, error) {
	var opts []money.ParseOption
	if len(currencyOverride) > 0 {
		opts = append(opts, money.WithCurrency(currencyOverride[0]))
	}
	p, err := money.ParseAny(x, opts...)
	if err != nil {
		return "", err
	}
	return money.FormatCode(p), nil
}

// IsPrice reports whether x is recognized as any of the three input forms.
func IsPrice(x any) bool { return money.IsPrice(x) }

// IsCodeForm reports whether s is a strict code-form string.
func IsCodeForm(s string) bool { return money.IsCodeForm(s) }

// IsSymbolForm reports whether s is a symbol-form string.
func IsSymbolForm(s string) bool { return money.IsSymbolForm(s) }

// IsShape reports whether x is a well-formed money.Shape.
func IsShape(x any) bool { return money.IsShape(x) }

// Equal reports whether a and b are numerically equal.
func Equal(a, b any) (bool, error) {
	pa, pb, err := parsePair(a, b)
	if err != nil {
		return false, err
	}
	return money.Equal(pa, pb)
}

// Greater reports whether a > b.
func Greater(a, b any) (bool, error) {
	pa, pb, err := parsePair(a, b)
	if err != nil {
		return false, err
	}
	return money.Greater(pa, pb)
}

// Lesser reports whether a < b.
func Lesser(a, b any) (bool, error) {
	pa, pb, err := parsePair(a, b)
	if err != nil {
		return false, err
	}
	return money.Lesser(pa, pb)
}

func parsePair(a, b any) (money.Price, money.Price, error) {
	pa, err := money.ParseAny(a)
	if err != nil {
		return money.Price{}, money.Price{}, err
	}
	pb, err := money.ParseAny(b)
	if err != nil {
		return money.Price{}, money.Price{}, err
	}
	return pa, pb, nil
}

// SortOptions configures Sorted's order.
type SortOptions struct {
	Order money.SortOrder
}

// SortOption configures SortOptions.
type SortOption func(*SortOptions)

// Ascending sorts smallest to largest (the default).
func Ascending() SortOption { return func(o *SortOptions) { o.Order = money.Asc } }

// Descending sorts largest to smallest.
func Descending() SortOption { return func(o *SortOptions) { o.Order = money.Desc } }

// Sorted returns inputs reordered by numeric value, stably.
func Sorted(inputs []any, opts ...SortOption) ([]money.Price, error) {
	o := SortOptions{Order: money.Asc}
	for _, opt := range opts {
		opt(&o)
	}
	prices, err := parseAll(inputs)
	if err != nil {
		return nil, err
	}
	return money.Sorted(prices, o.Order)
}

// DefaultScaleFor returns the registry default scale for code.
func DefaultScaleFor(code currency.Code) currency.Scale {
	return currency.DefaultScaleFor(code)
}
