package currency_test

import (
	"testing"

	"github.com/amirasaad/moneycore/pkg/currency"
	"github.com/stretchr/testify/assert"
)

func TestScale_MagnitudeAndDigits(t *testing.T) {
	tests := []struct {
		name      string
		scale     currency.Scale
		magnitude int
		digits    int
	}{
		{"whole", currency.Whole, 0, 0},
		{"centi", currency.Centi, -2, 2},
		{"milli", currency.Milli, -3, 3},
		{"micro", currency.Micro, -6, 6},
		{"nano", currency.Nano, -9, 9},
		{"pico", currency.Pico, -12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.magnitude, tt.scale.Magnitude())
			assert.Equal(t, tt.digits, tt.scale.Digits())
			assert.True(t, tt.scale.IsValid())
		})
	}
}

func TestScale_String(t *testing.T) {
	assert.Equal(t, "whole", currency.Whole.String())
	assert.Equal(t, "pico", currency.Pico.String())
	assert.Contains(t, currency.Scale(99).String(), "Scale(")
}

func TestScale_IsValid(t *testing.T) {
	assert.True(t, currency.Milli.IsValid())
	assert.False(t, currency.Scale(42).IsValid())
}

func TestParseScaleToken(t *testing.T) {
	tests := []struct {
		token string
		want  currency.Scale
		ok    bool
	}{
		{"whole", currency.Whole, true},
		{"centi", currency.Centi, true},
		{"pico", currency.Pico, true},
		{"unknown", currency.Whole, false},
		{"", currency.Whole, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := currency.ParseScaleToken(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFiner(t *testing.T) {
	assert.Equal(t, currency.Pico, currency.Finer(currency.Whole, currency.Pico))
	assert.Equal(t, currency.Pico, currency.Finer(currency.Pico, currency.Whole))
	assert.Equal(t, currency.Centi, currency.Finer(currency.Centi, currency.Centi))
}

func TestMinScale(t *testing.T) {
	assert.Equal(t, currency.Whole, currency.MinScale())
	assert.Equal(t, currency.Centi, currency.MinScale(currency.Centi))
	assert.Equal(t, currency.Nano, currency.MinScale(currency.Whole, currency.Milli, currency.Nano, currency.Centi))
}

func TestScaleWithAtLeastDigits(t *testing.T) {
	tests := []struct {
		k     int
		want  currency.Scale
		found bool
	}{
		{0, currency.Whole, true},
		{1, currency.Centi, true},
		{2, currency.Centi, true},
		{3, currency.Milli, true},
		{4, currency.Micro, true},
		{6, currency.Micro, true},
		{7, currency.Nano, true},
		{12, currency.Pico, true},
		{13, currency.Pico, false},
	}
	for _, tt := range tests {
		got, ok := currency.ScaleWithAtLeastDigits(tt.k)
		assert.Equal(t, tt.found, ok, "k=%d", tt.k)
		if tt.found {
			assert.Equal(t, tt.want, got, "k=%d", tt.k)
		}
	}
}
