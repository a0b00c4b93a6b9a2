package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuinorg/objects4go/errors"
)

func TestNewCurrencyAmount(t *testing.T) {
	c, err := NewCurrencyAmount("1234.56", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "1234.56 EUR", c.String())
	assert.Equal(t, "EUR", c.Currency().String())
	assert.True(t, c.Amount().Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, int32(2), c.Scale())
}

func TestParseCurrencyAmount(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1234.56 EUR", "1234.56 EUR"},
		{"1234.5 EUR", "1234.50 EUR"},
		{"7 usd", "7.00 USD"},
		{"-3.10 GBP", "-3.10 GBP"},
		{"1500 JPY", "1500 JPY"},
		{"0.125 KWD", "0.125 KWD"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, err := ParseCurrencyAmount(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())

			again, err := ParseCurrencyAmount(c.String())
			require.NoError(t, err)
			assert.True(t, again.Equals(c))
		})
	}
}

func TestIsValidCurrencyAmount(t *testing.T) {
	for _, value := range []string{"", "1234.56", "EUR", "1234.56  EUR", "abc EUR", "1.234 EUR", "1.5 JPY", "10 XYZ", "10 EURO", "10 XXX"} {
		t.Run(value, func(t *testing.T) {
			assert.False(t, IsValidCurrencyAmount(value))
			_, err := ParseCurrencyAmount(value)
			assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
		})
	}
}

func TestCurrencyAmountArithmetic(t *testing.T) {
	a := MustParseCurrencyAmount("10.50 EUR")
	b := MustParseCurrencyAmount("0.75 EUR")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "11.25 EUR", sum.String())

	diff, err := b.Subtract(a)
	require.NoError(t, err)
	assert.Equal(t, "-9.75 EUR", diff.String())

	_, err = a.Add(MustParseCurrencyAmount("1.00 USD"))
	assert.True(t, errors.IsCode(err, errors.ErrCodePrecondition))
}

func TestCurrencyAmountCompare(t *testing.T) {
	assert.Equal(t, 1, MustParseCurrencyAmount("2 EUR").Compare(MustParseCurrencyAmount("1.99 EUR")))
	assert.Equal(t, -1, MustParseCurrencyAmount("9 CHF").Compare(MustParseCurrencyAmount("1 EUR")))
	assert.True(t, MustParseCurrencyAmount("2.5 EUR").Equals(MustParseCurrencyAmount("2.50 EUR")))
	assert.True(t, MustParseCurrencyAmount("0 EUR").IsZero())
}

func TestCurrencyAmountText(t *testing.T) {
	var c CurrencyAmount
	require.NoError(t, c.UnmarshalText([]byte("99.9 USD")))
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "99.90 USD", string(text))
	assert.Error(t, c.UnmarshalText([]byte("99.9")))
}
