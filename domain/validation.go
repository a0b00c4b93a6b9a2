package domain

import "github.com/fuinorg/objects4go/validation"

// Validation tags installed by RegisterValidations.
const (
	TagCurrencyAmount = "currencyamount"
	TagUUIDStr        = "uuidstr"
	TagEmailAddress   = "emailaddress"
)

// RegisterValidations installs string tags for the value objects of this
// package on engine.
func RegisterValidations(engine *validation.Engine) error {
	if err := engine.RegisterText(TagCurrencyAmount, validation.Text[CurrencyAmount]("currency amount")); err != nil {
		return err
	}
	if err := engine.RegisterText(TagUUIDStr, validation.Text[UUIDStr]("uuid")); err != nil {
		return err
	}
	return engine.RegisterText(TagEmailAddress, validation.Text[EmailAddress]("email address"))
}
