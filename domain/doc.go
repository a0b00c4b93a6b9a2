// Package domain provides small immutable value objects that travel next
// to opening hours in application models: currency amounts, UUID strings
// and email addresses.
//
// Each type has a textual base form. Parse* converts the text into the
// value, IsValid* checks it without building the value, and String (or
// MarshalText) returns the canonical text again:
//
//	amount, err := domain.ParseCurrencyAmount("1234.56 EUR")
//	amount.String() // "1234.56 EUR"
package domain
