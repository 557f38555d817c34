package money_test

import (
	"testing"

	"github.com/amirasaad/moneycore/pkg/currency"
	"github.com/amirasaad/moneycore/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Empty(t *testing.T) {
	out, err := money.Normalize()
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestNormalize_SameScaleIsIdempotent(t *testing.T) {
	a := mustParse(t, "USD 10.00")
	b := mustParse(t, "USD 20.00")
	out, err := money.Normalize(a, b)
	require.NoError(t, err)
	assert.Equal(t, currency.Centi, out[0].Scale())
	assert.Equal(t, currency.Centi, out[1].Scale())
	assert.Equal(t, a.Amount(), out[0].Amount())
}

func TestNormalize_MixedScaleRescalesToFinest(t *testing.T) {
	a := mustParse(t, "USD 10.00")     // centi
	b := mustParse(t, "USD 0.000_250") // micro
	out, err := money.Normalize(a, b)
	require.NoError(t, err)
	assert.Equal(t, currency.Micro, out[0].Scale())
	assert.Equal(t, currency.Micro, out[1].Scale())
	assert.Equal(t, "USD 10.000_000", money.FormatCode(out[0]))
	assert.Equal(t, "USD 0.000_250", money.FormatCode(out[1]))
}

func TestNormalize_CurrencyMismatch(t *testing.T) {
	usd := mustParse(t, "USD 10.00")
	eur := mustParse(t, "EUR 10.00")
	_, err := money.Normalize(usd, eur)
	require.Error(t, err)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestNormalize_PreservesOrder(t *testing.T) {
	a := mustParse(t, "USD 0.000_250")
	b := mustParse(t, "USD 10.00")
	c := mustParse(t, "USD 5.00")
	out, err := money.Normalize(a, b, c)
	require.NoError(t, err)
	assert.Equal(t, "USD 0.000_250", money.FormatCode(out[0]))
	assert.Equal(t, "USD 10.000_000", money.FormatCode(out[1]))
	assert.Equal(t, "USD 5.000_000", money.FormatCode(out[2]))
}
