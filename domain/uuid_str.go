package domain

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fuinorg/objects4go/errors"
)

// UUIDStr is a UUID kept in its canonical 36 character lower-case form.
type UUIDStr struct {
	value string
}

// NewUUIDStr creates a random (version 4) UUID.
func NewUUIDStr() UUIDStr {
	return UUIDStr{value: uuid.NewString()}
}

// ParseUUIDStr parses a hyphenated UUID, e.g.
// "123e4567-e89b-12d3-a456-426614174000". Upper-case hex digits are
// accepted and lower-cased.
func ParseUUIDStr(s string) (UUIDStr, error) {
	u, ok := parseUUIDStr(s)
	if !ok {
		return UUIDStr{}, errors.InvalidArgument("uuid", s, "expected xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx")
	}
	return u, nil
}

// MustParseUUIDStr parses s and panics if it is invalid.
func MustParseUUIDStr(s string) UUIDStr {
	return errors.Must(ParseUUIDStr(s))
}

// IsValidUUIDStr reports whether s is a hyphenated UUID.
func IsValidUUIDStr(s string) bool {
	_, ok := parseUUIDStr(s)
	return ok
}

func parseUUIDStr(s string) (UUIDStr, bool) {
	// uuid.Parse also accepts braces, urn prefixes and unhyphenated forms.
	if len(s) != 36 {
		return UUIDStr{}, false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return UUIDStr{}, false
	}
	return UUIDStr{value: u.String()}, true
}

// UUID returns the parsed UUID.
func (u UUIDStr) UUID() uuid.UUID {
	return uuid.MustParse(u.value)
}

// IsEmpty reports whether u is the zero value.
func (u UUIDStr) IsEmpty() bool {
	return u.value == ""
}

// Equals checks if two UUIDs are equal.
func (u UUIDStr) Equals(other UUIDStr) bool {
	return strings.EqualFold(u.value, other.value)
}

func (u UUIDStr) String() string {
	return u.value
}

// MarshalText implements encoding.TextMarshaler.
func (u UUIDStr) MarshalText() ([]byte, error) {
	return []byte(u.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUIDStr) UnmarshalText(data []byte) error {
	parsed, err := ParseUUIDStr(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
