package hours

import (
	"fmt"
	"strings"

	"github.com/fuinorg/objects4go/errors"
)

// DayOpeningHours couples one day with the ranges open on it,
// e.g. "MON 09:00-12:00+13:00-17:00".
type DayOpeningHours struct {
	day   DayOfTheWeek
	hours HourRanges
}

// NewDayOpeningHours creates the opening hours of one day.
func NewDayOpeningHours(day DayOfTheWeek, hours HourRanges) (DayOpeningHours, error) {
	d := DayOpeningHours{day: day, hours: hours}
	if reason := d.check(); reason != "" {
		return DayOpeningHours{}, errors.InvalidArgument("dayOpeningHours", d.String(), reason)
	}
	return d, nil
}

// ParseDayOpeningHours parses "<day> <ranges>", e.g. "Mon 09:00-17:00".
func ParseDayOpeningHours(s string) (DayOpeningHours, error) {
	d, reason := parseDayOpeningHours(s)
	if reason != "" {
		return DayOpeningHours{}, errors.InvalidArgument("dayOpeningHours", s, reason)
	}
	return d, nil
}

// MustParseDayOpeningHours parses s and panics if it is invalid.
func MustParseDayOpeningHours(s string) DayOpeningHours {
	return errors.Must(ParseDayOpeningHours(s))
}

// IsValidDayOpeningHours reports whether s is a valid day schedule.
func IsValidDayOpeningHours(s string) bool {
	_, reason := parseDayOpeningHours(s)
	return reason == ""
}

func parseDayOpeningHours(s string) (DayOpeningHours, string) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return DayOpeningHours{}, "expected '<day> <ranges>'"
	}
	day, ok := parseDay(parts[0])
	if !ok {
		return DayOpeningHours{}, fmt.Sprintf("unknown day %q", parts[0])
	}
	hours, reason := parseHourRanges(parts[1])
	if reason != "" {
		return DayOpeningHours{}, reason
	}
	d := DayOpeningHours{day: day, hours: hours}
	return d, d.check()
}

func (d DayOpeningHours) check() string {
	switch {
	case !d.day.IsValid():
		return "day is required"
	case d.hours.IsEmpty():
		return "at least one range is required"
	case d.day == PublicHoliday && !d.hours.IsNormalized():
		return "PH has no following day, ranges may not span midnight"
	}
	return ""
}

// Day returns the day.
func (d DayOpeningHours) Day() DayOfTheWeek { return d.day }

// HourRanges returns the open ranges.
func (d DayOpeningHours) HourRanges() HourRanges { return d.hours }

// IsNormalized reports whether no range wraps past midnight.
func (d DayOpeningHours) IsNormalized() bool {
	return d.hours.IsNormalized()
}

// Normalize returns this value if no range wraps past midnight. Otherwise
// the part after midnight moves to the next day and two values are returned.
func (d DayOpeningHours) Normalize() []DayOpeningHours {
	parts := d.hours.Normalize()
	if len(parts) == 1 {
		return []DayOpeningHours{d}
	}
	next, _ := d.day.Next()
	return []DayOpeningHours{
		{day: d.day, hours: parts[0]},
		{day: next, hours: parts[1]},
	}
}

func (d DayOpeningHours) requireSameDay(other DayOpeningHours) error {
	if d.day == other.day {
		return nil
	}
	return errors.PreconditionArgument("other", other.String(), "must be for "+d.day.String())
}

// Add merges the ranges of other, which must be for the same day.
func (d DayOpeningHours) Add(other DayOpeningHours) (DayOpeningHours, error) {
	if err := d.requireSameDay(other); err != nil {
		return DayOpeningHours{}, err
	}
	hours, err := d.hours.Add(other.hours)
	if err != nil {
		return DayOpeningHours{}, err
	}
	return DayOpeningHours{day: d.day, hours: hours}, nil
}

// Diff lists the changes from d to to, which must be for the same day.
func (d DayOpeningHours) Diff(to DayOpeningHours) ([]DayChange, error) {
	if err := d.requireSameDay(to); err != nil {
		return nil, err
	}
	changes, err := d.hours.Diff(to.hours)
	if err != nil {
		return nil, err
	}
	return tagChanges(d.day, changes), nil
}

// AsAddedChanges reports every range as added.
func (d DayOpeningHours) AsAddedChanges() []DayChange {
	return d.asChanges(Added)
}

// AsRemovedChanges reports every range as removed.
func (d DayOpeningHours) AsRemovedChanges() []DayChange {
	return d.asChanges(Removed)
}

func (d DayOpeningHours) asChanges(t ChangeType) []DayChange {
	changes := make([]DayChange, 0, len(d.hours.ranges))
	for _, r := range d.hours.ranges {
		changes = append(changes, DayChange{Type: t, Day: d.day, Range: r})
	}
	return changes
}

// OpenAt reports whether every minute of r is open on this day.
func (d DayOpeningHours) OpenAt(r HourRange) (bool, error) {
	return d.hours.OpenAt(r)
}

// Equals compares the day only, so that two values for the same day can
// be merged with Add.
func (d DayOpeningHours) Equals(other DayOpeningHours) bool {
	return d.day == other.day
}

func (d DayOpeningHours) String() string {
	return d.day.String() + " " + d.hours.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d DayOpeningHours) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DayOpeningHours) UnmarshalText(data []byte) error {
	parsed, err := ParseDayOpeningHours(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
