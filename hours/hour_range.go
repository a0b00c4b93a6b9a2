package hours

import (
	"fmt"
	"strings"

	"github.com/fuinorg/objects4go/errors"
)

// HourRange is a contiguous interval of one day in minutes. Start is
// inclusive and end exclusive. When end is before start the range wraps
// past midnight, e.g. 18:00-03:00.
//
// 24:00 is only valid as an end and 00:00 only as a start.
type HourRange struct {
	start int
	end   int
}

// NewHourRange creates a range from minutes since midnight.
func NewHourRange(start, end int) (HourRange, error) {
	r := HourRange{start: start, end: end}
	if reason := r.check(); reason != "" {
		return HourRange{}, errors.InvalidArgument("hourRange", r.String(), reason)
	}
	return r, nil
}

// ParseHourRange parses "HH:MM-HH:MM".
func ParseHourRange(s string) (HourRange, error) {
	r, reason := parseHourRange(s)
	if reason != "" {
		return HourRange{}, errors.InvalidArgument("hourRange", s, reason)
	}
	return r, nil
}

// MustParseHourRange parses s and panics if it is invalid.
func MustParseHourRange(s string) HourRange {
	return errors.Must(ParseHourRange(s))
}

// IsValidHourRange reports whether s is a valid "HH:MM-HH:MM" value.
func IsValidHourRange(s string) bool {
	_, reason := parseHourRange(s)
	return reason == ""
}

func parseHourRange(s string) (HourRange, string) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return HourRange{}, "expected HH:MM-HH:MM"
	}
	start, ok := parseHour(parts[0])
	if !ok {
		return HourRange{}, fmt.Sprintf("invalid start %q", parts[0])
	}
	end, ok := parseHour(parts[1])
	if !ok {
		return HourRange{}, fmt.Sprintf("invalid end %q", parts[1])
	}
	r := HourRange{start: start, end: end}
	return r, r.check()
}

func (r HourRange) check() string {
	switch {
	case r.start < 0 || r.start >= MinutesPerDay:
		return "start must be between 00:00 and 23:59"
	case r.end <= 0 || r.end > MinutesPerDay:
		return "end must be between 00:01 and 24:00"
	case r.start == r.end:
		return "start and end must differ"
	}
	return ""
}

// Start returns the first open minute.
func (r HourRange) Start() int { return r.start }

// End returns the minute the range closes.
func (r HourRange) End() int { return r.end }

// From returns the start as an Hour.
func (r HourRange) From() Hour { return Hour{minutes: r.start} }

// To returns the end as an Hour.
func (r HourRange) To() Hour { return Hour{minutes: r.end} }

// IsNormalized reports whether the range stays within one day.
func (r HourRange) IsNormalized() bool {
	return r.start < r.end
}

// Normalize splits a range wrapping past midnight into today's part
// (start-24:00) and tomorrow's part (00:00-end). A range within one day is
// returned unchanged.
func (r HourRange) Normalize() []HourRange {
	if r.IsNormalized() {
		return []HourRange{r}
	}
	return []HourRange{
		{start: r.start, end: MinutesPerDay},
		{start: 0, end: r.end},
	}
}

// Duration returns the number of open minutes.
func (r HourRange) Duration() int {
	if r.IsNormalized() {
		return r.end - r.start
	}
	return MinutesPerDay - r.start + r.end
}

// Overlaps reports whether both ranges share at least one minute, today
// or, for two wrapping ranges, tomorrow.
func (r HourRange) Overlaps(other HourRange) bool {
	a, b := r.Normalize(), other.Normalize()
	if overlap(a[0], b[0]) {
		return true
	}
	return len(a) == 2 && len(b) == 2 && overlap(a[1], b[1])
}

// Contains reports whether every minute of other is within r. Like
// Overlaps, a range within one day is matched against today's part of a
// wrapping r only.
func (r HourRange) Contains(other HourRange) bool {
	if r.IsNormalized() != other.IsNormalized() {
		if r.IsNormalized() {
			return false
		}
		return r.Normalize()[0].Contains(other)
	}
	return r.start <= other.start && other.end <= r.end
}

func overlap(a, b HourRange) bool {
	return a.start < b.end && b.start < a.end
}

// Compare orders ranges by start, then end.
func (r HourRange) Compare(other HourRange) int {
	switch {
	case r.start != other.start:
		return cmpInt(r.start, other.start)
	default:
		return cmpInt(r.end, other.end)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equals checks if two ranges are equal.
func (r HourRange) Equals(other HourRange) bool {
	return r == other
}

func (r HourRange) String() string {
	return formatMinutes(r.start) + "-" + formatMinutes(r.end)
}

// MarshalText implements encoding.TextMarshaler.
func (r HourRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *HourRange) UnmarshalText(data []byte) error {
	parsed, err := ParseHourRange(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
