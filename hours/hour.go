package hours

import (
	"fmt"

	"github.com/fuinorg/objects4go/contract"
	"github.com/fuinorg/objects4go/errors"
)

// MinutesPerDay is the number of minutes between 00:00 and 24:00.
const MinutesPerDay = 24 * 60

// Hour is a time of day with minute precision, from 00:00 to 24:00.
type Hour struct {
	minutes int
}

// NewHour creates an Hour from minutes since midnight.
func NewHour(minutes int) (Hour, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return Hour{}, errors.InvalidArgument("minutes", fmt.Sprint(minutes),
			fmt.Sprintf("must be between 0 and %d", MinutesPerDay))
	}
	return Hour{minutes: minutes}, nil
}

// ParseHour parses "HH:MM".
func ParseHour(s string) (Hour, error) {
	if err := contract.RequireArgValid("hour", s, "HH:MM time between 00:00 and 24:00", IsValidHour); err != nil {
		return Hour{}, err
	}
	minutes, _ := parseHour(s)
	return Hour{minutes: minutes}, nil
}

// IsValidHour reports whether s is a valid "HH:MM" value.
func IsValidHour(s string) bool {
	_, ok := parseHour(s)
	return ok
}

// Minutes returns the minutes since midnight.
func (h Hour) Minutes() int {
	return h.minutes
}

func (h Hour) String() string {
	return formatMinutes(h.minutes)
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// parseHour accepts exactly two digits, a colon and two digits.
// 24 is only allowed together with 00 minutes.
func parseHour(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	hh, ok := twoDigits(s[0], s[1])
	if !ok {
		return 0, false
	}
	mm, ok := twoDigits(s[3], s[4])
	if !ok {
		return 0, false
	}
	if hh > 24 || mm > 59 || (hh == 24 && mm != 0) {
		return 0, false
	}
	return hh*60 + mm, true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
