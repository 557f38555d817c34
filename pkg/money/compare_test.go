package money_test

import (
	"testing"

	"github.com/amirasaad/moneycore/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSameCurrency(t *testing.T) {
	usd := mustParse(t, "USD 10.00")
	otherUSD := mustParse(t, "USD 999_999.99")
	eur := mustParse(t, "EUR 10.00")

	assert.True(t, usd.IsSameCurrency(otherUSD), "amount and scale never matter")
	assert.True(t, usd.IsSameCurrency(usd))
	assert.False(t, usd.IsSameCurrency(eur))
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "USD 10.00")
	b := mustParse(t, "USD 10.000_000")
	c := mustParse(t, "USD 10.01")

	eq, err := money.Equal(a, b)
	require.NoError(t, err)
	assert.True(t, eq, "equal after normalization across differing scales")

	eq, err = money.Equal(a, c)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = money.Equal(a, mustParse(t, "EUR 10.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestGreaterAndLesser(t *testing.T) {
	small := mustParse(t, "USD 5.00")
	big := mustParse(t, "USD 10.00")

	gt, err := money.Greater(big, small)
	require.NoError(t, err)
	assert.True(t, gt)

	gt, err = money.Greater(small, big)
	require.NoError(t, err)
	assert.False(t, gt)

	lt, err := money.Lesser(small, big)
	require.NoError(t, err)
	assert.True(t, lt)
}

func TestSorted_Ascending(t *testing.T) {
	prices := []money.Price{
		mustParse(t, "USD 30.00"),
		mustParse(t, "USD 10.00"),
		mustParse(t, "USD 20.00"),
	}
	sorted, err := money.Sorted(prices, money.Asc)
	require.NoError(t, err)
	assert.Equal(t, "USD 10.00", money.FormatCode(sorted[0]))
	assert.Equal(t, "USD 20.00", money.FormatCode(sorted[1]))
	assert.Equal(t, "USD 30.00", money.FormatCode(sorted[2]))
}

func TestSorted_Descending(t *testing.T) {
	prices := []money.Price{
		mustParse(t, "USD 30.00"),
		mustParse(t, "USD 10.00"),
		mustParse(t, "USD 20.00"),
	}
	sorted, err := money.Sorted(prices, money.Desc)
	require.NoError(t, err)
	assert.Equal(t, "USD 30.00", money.FormatCode(sorted[0]))
	assert.Equal(t, "USD 20.00", money.FormatCode(sorted[1]))
	assert.Equal(t, "USD 10.00", money.FormatCode(sorted[2]))
}

func TestSorted_Ascending_NumericNotLexicographic(t *testing.T) {
	prices := []money.Price{
		mustParse(t, "USD 100.00"),
		mustParse(t, "USD 9.00"),
		mustParse(t, "USD 50.00"),
	}
	sorted, err := money.Sorted(prices, money.Asc)
	require.NoError(t, err)
	assert.Equal(t, "USD 9.00", money.FormatCode(sorted[0]), "a string sort would put 100.00 before 50.00 before 9.00")
	assert.Equal(t, "USD 50.00", money.FormatCode(sorted[1]))
	assert.Equal(t, "USD 100.00", money.FormatCode(sorted[2]))
}

func TestSorted_StableOnTies(t *testing.T) {
	a := mustParse(t, "USD 10.00")
	b := mustParse(t, "USD 10.000_000")
	c := mustParse(t, "USD 5.00")
	sorted, err := money.Sorted([]money.Price{a, b, c}, money.Asc)
	require.NoError(t, err)
	assert.Equal(t, c, sorted[0])
	assert.Equal(t, a, sorted[1], "equal elements keep their original relative order")
	assert.Equal(t, b, sorted[2])
}

func TestSorted_SingletonAndEmpty(t *testing.T) {
	empty, err := money.Sorted(nil, money.Asc)
	require.NoError(t, err)
	assert.Empty(t, empty)

	single := []money.Price{mustParse(t, "USD 1.00")}
	sorted, err := money.Sorted(single, money.Asc)
	require.NoError(t, err)
	assert.Equal(t, single, sorted)
}

func TestSorted_CurrencyMismatch(t *testing.T) {
	prices := []money.Price{mustParse(t, "USD 10.00"), mustParse(t, "EUR 5.00")}
	_, err := money.Sorted(prices, money.Asc)
	require.Error(t, err)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
}
