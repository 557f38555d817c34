package currency_test

import (
	"testing"

	"github.com/amirasaad/moneycore/pkg/currency"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCurrencyForSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   currency.Code
		ok     bool
	}{
		{"$", currency.USD, true},
		{"€", currency.EUR, true},
		{"R$", currency.BRL, true},
		{"zł", currency.PLN, true},
		{"?", "", false},
	}
	for _, tt := range tests {
		got, ok := currency.DefaultCurrencyForSymbol(tt.symbol)
		assert.Equal(t, tt.ok, ok, "symbol=%q", tt.symbol)
		if tt.ok {
			assert.Equal(t, tt.want, got, "symbol=%q", tt.symbol)
		}
	}
}

func TestIsUniqueSymbol(t *testing.T) {
	code, ok := currency.IsUniqueSymbol("€")
	assert.True(t, ok)
	assert.Equal(t, currency.EUR, code)

	_, ok = currency.IsUniqueSymbol("$")
	assert.False(t, ok)
}

func TestRequiresUniqueSymbol(t *testing.T) {
	sym, ok := currency.RequiresUniqueSymbol(currency.EUR, "$")
	assert.True(t, ok)
	assert.Equal(t, "€", sym)

	_, ok = currency.RequiresUniqueSymbol(currency.EUR, "€")
	assert.False(t, ok)

	_, ok = currency.RequiresUniqueSymbol(currency.USD, "$")
	assert.False(t, ok)
}

func TestSymbolForCode(t *testing.T) {
	assert.Equal(t, "$", currency.SymbolForCode(currency.USD))
	assert.Equal(t, "€", currency.SymbolForCode(currency.EUR))
	assert.Equal(t, "XYZ", currency.SymbolForCode("XYZ"))
}

func TestMatchSymbol(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSymbol string
		wantAmount string
		wantOK     bool
	}{
		{"prefix dollar", "$1,000.00", "$", "1,000.00", true},
		{"suffix zloty", "1.234,00zł", "zł", "1.234,00", true},
		{"prefix brl", "R$50.00", "R$", "50.00", true},
		{"no match", "USD 10.00", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, amt, ok := currency.MatchSymbol(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSymbol, sym)
				assert.Equal(t, tt.wantAmount, amt)
			}
		})
	}
}

func TestMatchSymbol_PrefersLongestGlyph(t *testing.T) {
	// "R$" must win over a bare "$" prefix match.
	sym, amt, ok := currency.MatchSymbol("R$1,234.56")
	assert.True(t, ok)
	assert.Equal(t, "R$", sym)
	assert.Equal(t, "1,234.56", amt)
}
