package hours

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fuinorg/objects4go/contract"
	"github.com/fuinorg/objects4go/errors"
	"github.com/fuinorg/objects4go/validation"
)

// MultiDayOfTheWeek is an ordered set of days written in compact form,
// e.g. "Mon-Fri", "Sat/Sun" or "Mon/Wed-Fri".
type MultiDayOfTheWeek struct {
	days []DayOfTheWeek
}

// NewMultiDayOfTheWeek creates a set from individual days.
func NewMultiDayOfTheWeek(days ...DayOfTheWeek) (MultiDayOfTheWeek, error) {
	err := contract.RequireArg("days", days, validation.MinSize[DayOfTheWeek](1), definedDays)
	if err != nil {
		return MultiDayOfTheWeek{}, err
	}
	return sortedDays(days), nil
}

func definedDays(days []DayOfTheWeek) *validation.ValidationError {
	for _, d := range days {
		if !d.IsValid() {
			return &validation.ValidationError{Message: fmt.Sprintf("%d is not a day of the week", int(d)), Code: "day"}
		}
	}
	return nil
}

// ParseMultiDayOfTheWeek parses '/' separated days and inclusive '-' ranges.
func ParseMultiDayOfTheWeek(s string) (MultiDayOfTheWeek, error) {
	m, reason := parseMultiDay(s)
	if reason != "" {
		return MultiDayOfTheWeek{}, errors.InvalidArgument("multiDayOfTheWeek", s, reason)
	}
	return m, nil
}

// MustParseMultiDayOfTheWeek parses s and panics if it is invalid.
func MustParseMultiDayOfTheWeek(s string) MultiDayOfTheWeek {
	return errors.Must(ParseMultiDayOfTheWeek(s))
}

// IsValidMultiDayOfTheWeek reports whether s is a valid compact day list.
func IsValidMultiDayOfTheWeek(s string) bool {
	_, reason := parseMultiDay(s)
	return reason == ""
}

func parseMultiDay(s string) (MultiDayOfTheWeek, string) {
	if s == "" {
		return MultiDayOfTheWeek{}, "at least one day is required"
	}
	var days []DayOfTheWeek
	for _, item := range strings.Split(s, "/") {
		bounds := strings.Split(item, "-")
		switch len(bounds) {
		case 1:
			d, ok := parseDay(item)
			if !ok {
				return MultiDayOfTheWeek{}, fmt.Sprintf("unknown day %q", item)
			}
			days = append(days, d)
		case 2:
			from, ok := parseDay(bounds[0])
			if !ok {
				return MultiDayOfTheWeek{}, fmt.Sprintf("unknown day %q", bounds[0])
			}
			to, ok := parseDay(bounds[1])
			if !ok {
				return MultiDayOfTheWeek{}, fmt.Sprintf("unknown day %q", bounds[1])
			}
			if !from.IsWeekday() || !to.IsWeekday() {
				return MultiDayOfTheWeek{}, fmt.Sprintf("range %q may not include PH", item)
			}
			if !to.After(from) {
				return MultiDayOfTheWeek{}, fmt.Sprintf("range %q must be ascending", item)
			}
			for d := from; d <= to; d++ {
				days = append(days, d)
			}
		default:
			return MultiDayOfTheWeek{}, fmt.Sprintf("malformed range %q", item)
		}
	}
	return sortedDays(days), ""
}

func sortedDays(days []DayOfTheWeek) MultiDayOfTheWeek {
	out := slices.Clone(days)
	slices.Sort(out)
	return MultiDayOfTheWeek{days: slices.Compact(out)}
}

// Days returns the days in ordinal order.
func (m MultiDayOfTheWeek) Days() []DayOfTheWeek {
	return slices.Clone(m.days)
}

// Contains reports whether d is part of the set.
func (m MultiDayOfTheWeek) Contains(d DayOfTheWeek) bool {
	_, found := slices.BinarySearch(m.days, d)
	return found
}

// Compress returns the shortest compact form. Runs of three or more
// consecutive days become "MON-WED", shorter runs are listed with '/'.
func (m MultiDayOfTheWeek) Compress() string {
	var parts []string
	for i := 0; i < len(m.days); {
		j := i
		for j+1 < len(m.days) && m.days[j+1].Follows(m.days[j]) {
			j++
		}
		if j-i >= 2 {
			parts = append(parts, m.days[i].String()+"-"+m.days[j].String())
		} else {
			for k := i; k <= j; k++ {
				parts = append(parts, m.days[k].String())
			}
		}
		i = j + 1
	}
	return strings.Join(parts, "/")
}

// Equals checks if both sets contain the same days.
func (m MultiDayOfTheWeek) Equals(other MultiDayOfTheWeek) bool {
	return slices.Equal(m.days, other.days)
}

func (m MultiDayOfTheWeek) String() string {
	return m.Compress()
}

// MarshalText implements encoding.TextMarshaler.
func (m MultiDayOfTheWeek) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MultiDayOfTheWeek) UnmarshalText(data []byte) error {
	parsed, err := ParseMultiDayOfTheWeek(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
