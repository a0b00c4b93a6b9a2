package hours

import (
	"strings"
	"time"

	"github.com/fuinorg/objects4go/contract"
)

// DayOfTheWeek is a weekday or the public holiday pseudo-day.
// The zero value is not a valid day.
type DayOfTheWeek int

// Days in ordinal order. PublicHoliday sorts after Sunday but has no
// neighbours.
const (
	Monday DayOfTheWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	PublicHoliday
)

var dayNames = [...]string{"", "MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN", "PH"}

// AllDays returns every day in ordinal order.
func AllDays() []DayOfTheWeek {
	return []DayOfTheWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, PublicHoliday}
}

// ParseDayOfTheWeek parses "Mon".."Sun" or "PH", ignoring case.
func ParseDayOfTheWeek(s string) (DayOfTheWeek, error) {
	if err := contract.RequireArgValid("dayOfTheWeek", s, "day, expected one of MON..SUN or PH", IsValidDayOfTheWeek); err != nil {
		return 0, err
	}
	d, _ := parseDay(s)
	return d, nil
}

// IsValidDayOfTheWeek reports whether s names a day.
func IsValidDayOfTheWeek(s string) bool {
	_, ok := parseDay(s)
	return ok
}

func parseDay(s string) (DayOfTheWeek, bool) {
	upper := strings.ToUpper(s)
	for d := Monday; d <= PublicHoliday; d++ {
		if dayNames[d] == upper {
			return d, true
		}
	}
	return 0, false
}

// DayOfTheWeekFor converts a time.Weekday.
func DayOfTheWeekFor(w time.Weekday) DayOfTheWeek {
	if w == time.Sunday {
		return Sunday
	}
	return DayOfTheWeek(w)
}

// IsValid reports whether d is one of the defined days.
func (d DayOfTheWeek) IsValid() bool {
	return d >= Monday && d <= PublicHoliday
}

// IsWeekday reports whether d is Monday through Sunday.
func (d DayOfTheWeek) IsWeekday() bool {
	return d >= Monday && d <= Sunday
}

// Ordinal returns 1 for Monday up to 8 for the public holiday.
func (d DayOfTheWeek) Ordinal() int {
	return int(d)
}

// Follows reports whether d comes directly after other. It never wraps
// from Sunday to Monday and is false whenever PublicHoliday is involved.
func (d DayOfTheWeek) Follows(other DayOfTheWeek) bool {
	return d.IsWeekday() && other.IsWeekday() && d == other+1
}

// After reports whether d sorts after other.
func (d DayOfTheWeek) After(other DayOfTheWeek) bool {
	return d > other
}

// Next returns the following day, Sunday wrapping to Monday.
// PublicHoliday has no next day.
func (d DayOfTheWeek) Next() (DayOfTheWeek, bool) {
	switch {
	case d == Sunday:
		return Monday, true
	case d.IsWeekday():
		return d + 1, true
	}
	return 0, false
}

// Previous returns the preceding day, Monday wrapping to Sunday.
// PublicHoliday has no previous day.
func (d DayOfTheWeek) Previous() (DayOfTheWeek, bool) {
	switch {
	case d == Monday:
		return Sunday, true
	case d.IsWeekday():
		return d - 1, true
	}
	return 0, false
}

func (d DayOfTheWeek) String() string {
	if !d.IsValid() {
		return ""
	}
	return dayNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d DayOfTheWeek) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DayOfTheWeek) UnmarshalText(data []byte) error {
	parsed, err := ParseDayOfTheWeek(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
