package money

import "github.com/amirasaad/moneycore/pkg/currency"

// Normalize rescales prices to their common finest scale without loss and
// returns fresh Price values at that scale, preserving input order. It
// fails with CurrencyMismatch if the inputs do not all share one currency.
// Normalizing an already-finest-scale sequence is a no-op (idempotent):
// every rescale factor is 10^0 = 1.
func Normalize(prices ...Price) ([]Price, error) {
	if len(prices) == 0 {
		return nil, nil
	}
	first := prices[0].currency
	scales := make([]currency.Scale, len(prices))
	for i, p := range prices {
		if p.currency != first {
			return nil, currencyMismatchErr(first, p.currency)
		}
		scales[i] = p.scale
	}
	finest := currency.MinScale(scales...)

	out := make([]Price, len(prices))
	for i, p := range prices {
		out[i] = p.rescale(finest)
	}
	return out, nil
}
