package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/fuinorg/objects4go/errors"
)

// CurrencyAmount is a decimal amount in an ISO 4217 currency. Its text
// form is "<amount> <code>" with the amount written with the currency's
// number of decimals, e.g. "1234.56 EUR" or "1500 JPY".
type CurrencyAmount struct {
	amount   decimal.Decimal
	currency currency.Unit
	scale    int32
	text     string
}

// NewCurrencyAmount creates an amount from its decimal text and a
// three-letter currency code.
func NewCurrencyAmount(amount, code string) (CurrencyAmount, error) {
	c, reason := newCurrencyAmount(amount, code)
	if reason != "" {
		return CurrencyAmount{}, errors.InvalidArgument("currencyAmount", amount+" "+code, reason)
	}
	return c, nil
}

// ParseCurrencyAmount parses "<amount> <code>".
func ParseCurrencyAmount(s string) (CurrencyAmount, error) {
	c, reason := parseCurrencyAmount(s)
	if reason != "" {
		return CurrencyAmount{}, errors.InvalidArgument("currencyAmount", s, reason)
	}
	return c, nil
}

// MustParseCurrencyAmount parses s and panics if it is invalid.
func MustParseCurrencyAmount(s string) CurrencyAmount {
	return errors.Must(ParseCurrencyAmount(s))
}

// IsValidCurrencyAmount reports whether s is a valid "<amount> <code>" value.
func IsValidCurrencyAmount(s string) bool {
	_, reason := parseCurrencyAmount(s)
	return reason == ""
}

func parseCurrencyAmount(s string) (CurrencyAmount, string) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return CurrencyAmount{}, "expected '<amount> <currency>'"
	}
	return newCurrencyAmount(parts[0], parts[1])
}

func newCurrencyAmount(amount, code string) (CurrencyAmount, string) {
	if len(code) != 3 {
		return CurrencyAmount{}, "currency must be a three-letter ISO 4217 code"
	}
	unit, err := currency.ParseISO(code)
	if err != nil || unit == (currency.Unit{}) {
		return CurrencyAmount{}, "unknown currency " + code
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return CurrencyAmount{}, "amount is not a decimal number"
	}
	scale, _ := currency.Standard.Rounding(unit)
	return fromDecimal(value, unit, int32(scale))
}

func fromDecimal(value decimal.Decimal, unit currency.Unit, scale int32) (CurrencyAmount, string) {
	if !value.Equal(value.Round(scale)) {
		return CurrencyAmount{}, "amount has more decimals than " + unit.String() + " allows"
	}
	return CurrencyAmount{
		amount:   value,
		currency: unit,
		scale:    scale,
		text:     value.StringFixed(scale) + " " + unit.String(),
	}, ""
}

// Amount returns the decimal amount.
func (c CurrencyAmount) Amount() decimal.Decimal { return c.amount }

// Currency returns the currency.
func (c CurrencyAmount) Currency() currency.Unit { return c.currency }

// Scale returns the number of decimals of the currency.
func (c CurrencyAmount) Scale() int32 { return c.scale }

// IsZero reports whether the amount is zero.
func (c CurrencyAmount) IsZero() bool { return c.amount.IsZero() }

func (c CurrencyAmount) requireSameCurrency(other CurrencyAmount) error {
	if c.currency == other.currency {
		return nil
	}
	return errors.PreconditionArgument("other", other.String(), "must be in "+c.currency.String())
}

// Add returns the sum of both amounts, which must share the currency.
func (c CurrencyAmount) Add(other CurrencyAmount) (CurrencyAmount, error) {
	if err := c.requireSameCurrency(other); err != nil {
		return CurrencyAmount{}, err
	}
	sum, _ := fromDecimal(c.amount.Add(other.amount), c.currency, c.scale)
	return sum, nil
}

// Subtract returns the difference of both amounts, which must share the
// currency.
func (c CurrencyAmount) Subtract(other CurrencyAmount) (CurrencyAmount, error) {
	if err := c.requireSameCurrency(other); err != nil {
		return CurrencyAmount{}, err
	}
	diff, _ := fromDecimal(c.amount.Sub(other.amount), c.currency, c.scale)
	return diff, nil
}

// Compare orders by currency code, then amount.
func (c CurrencyAmount) Compare(other CurrencyAmount) int {
	if c.currency != other.currency {
		return strings.Compare(c.currency.String(), other.currency.String())
	}
	return c.amount.Cmp(other.amount)
}

// Equals checks if both amounts are numerically equal in the same currency.
func (c CurrencyAmount) Equals(other CurrencyAmount) bool {
	return c.Compare(other) == 0
}

func (c CurrencyAmount) String() string {
	return c.text
}

// MarshalText implements encoding.TextMarshaler.
func (c CurrencyAmount) MarshalText() ([]byte, error) {
	return []byte(c.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CurrencyAmount) UnmarshalText(data []byte) error {
	parsed, err := ParseCurrencyAmount(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
