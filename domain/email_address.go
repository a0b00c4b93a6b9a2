package domain

import (
	"regexp"
	"strings"

	"github.com/fuinorg/objects4go/contract"
	"github.com/fuinorg/objects4go/errors"
)

// maxEmailLength is the RFC 5321 path limit.
const maxEmailLength = 254

// emailRegex is a simplified RFC 5322 compliant email regex.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// EmailAddress is a validated, lower-cased email address.
type EmailAddress struct {
	value string
}

// ParseEmailAddress trims and lower-cases s before validating it.
func ParseEmailAddress(s string) (EmailAddress, error) {
	normalized := strings.TrimSpace(strings.ToLower(s))
	if err := contract.RequireArgNotEmpty("emailAddress", normalized); err != nil {
		return EmailAddress{}, err
	}
	if err := contract.RequireArgMaxLength("emailAddress", normalized, maxEmailLength); err != nil {
		return EmailAddress{}, err
	}
	if err := contract.RequireArgValid("emailAddress", normalized, "email address", emailRegex.MatchString); err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: normalized}, nil
}

// MustParseEmailAddress parses s and panics if it is invalid.
func MustParseEmailAddress(s string) EmailAddress {
	return errors.Must(ParseEmailAddress(s))
}

// IsValidEmailAddress reports whether s is an email address.
func IsValidEmailAddress(s string) bool {
	_, err := ParseEmailAddress(s)
	return err == nil
}

// LocalPart returns the part before '@'.
func (e EmailAddress) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Domain returns the part after '@'.
func (e EmailAddress) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// IsEmpty returns true if the email is empty.
func (e EmailAddress) IsEmpty() bool {
	return e.value == ""
}

// Equals checks if two emails are equal.
func (e EmailAddress) Equals(other EmailAddress) bool {
	return e.value == other.value
}

func (e EmailAddress) String() string {
	return e.value
}

// MarshalText implements encoding.TextMarshaler.
func (e EmailAddress) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EmailAddress) UnmarshalText(data []byte) error {
	parsed, err := ParseEmailAddress(string(data))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
