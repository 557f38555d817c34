package money

import "sort"

// SortOrder selects ascending or descending order for Sorted.
type SortOrder int

const (
	// Asc orders from smallest to largest. It is the default.
	Asc SortOrder = iota
	// Desc orders from largest to smallest.
	Desc
)

// IsSameCurrency reports whether p and other share a currency. Unlike
// Equal/Greater/Lesser it never fails and never touches amounts or scale:
// it is a standalone currency check, useful before an operation that would
// otherwise fail with CurrencyMismatch.
func (p Price) IsSameCurrency(other Price) bool {
	return p.currency == other.currency
}

// Equal reports whether a and b are numerically equal: after normalizing
// to their finest common scale, their amounts and currencies match. Fails
// with CurrencyMismatch on mixed currencies.
func Equal(a, b Price) (bool, error) {
	na, nb, err := normalizePair(a, b)
	if err != nil {
		return false, err
	}
	return na.amount.Cmp(nb.amount) == 0, nil
}

// Greater reports whether a > b. Fails with CurrencyMismatch on mixed
// currencies.
func Greater(a, b Price) (bool, error) {
	na, nb, err := normalizePair(a, b)
	if err != nil {
		return false, err
	}
	return na.amount.Cmp(nb.amount) > 0, nil
}

// Lesser reports whether a < b. Fails with CurrencyMismatch on mixed
// currencies.
func Lesser(a, b Price) (bool, error) {
	na, nb, err := normalizePair(a, b)
	if err != nil {
		return false, err
	}
	return na.amount.Cmp(nb.amount) < 0, nil
}

func normalizePair(a, b Price) (Price, Price, error) {
	normalized, err := Normalize(a, b)
	if err != nil {
		return Price{}, Price{}, err
	}
	return normalized[0], normalized[1], nil
}

// Sorted returns a fresh, stably-ordered copy of prices by numeric value.
// Equal elements keep their original relative order. Empty and singleton
// inputs are returned unchanged. Fails with CurrencyMismatch if the inputs
// don't all share one currency.
func Sorted(prices []Price, order SortOrder) ([]Price, error) {
	out := make([]Price, len(prices))
	copy(out, prices)
	if len(out) < 2 {
		return out, nil
	}

	normalized, err := Normalize(out...)
	if err != nil {
		return nil, err
	}

	keys := make([]int, len(out))
	for i := range keys {
		keys[i] = i
	}
	sort.SliceStable(keys, func(i, j int) bool {
		cmp := normalized[keys[i]].amount.Cmp(normalized[keys[j]].amount)
		if order == Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	sorted := make([]Price, len(out))
	for i, k := range keys {
		sorted[i] = out[k]
	}
	return sorted, nil
}
