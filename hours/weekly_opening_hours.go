package hours

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fuinorg/objects4go/contract"
	"github.com/fuinorg/objects4go/errors"
)

// WeeklyOpeningHours holds at most one DayOpeningHours per day, sorted by
// day. Its text form is a comma separated list of
// "<MultiDayOfTheWeek> <HourRanges>" segments.
type WeeklyOpeningHours struct {
	days []DayOpeningHours
}

// NewWeeklyOpeningHours creates a schedule from day values as given. It
// fails if no day is passed, a day appears twice, or a range spanning
// midnight overlaps the ranges of the following day. Values are not merged
// or normalized.
func NewWeeklyOpeningHours(days ...DayOpeningHours) (WeeklyOpeningHours, error) {
	if err := contract.RequireArgNotEmptySlice("dayOpeningHours", days); err != nil {
		return WeeklyOpeningHours{}, err
	}
	err := contract.RequireArgUnique("dayOpeningHours", days, DayOpeningHours.Day)
	if err != nil {
		return WeeklyOpeningHours{}, err
	}
	w := sortedWeek(days)
	var fragments []DayOpeningHours
	for _, d := range w.days {
		if reason := d.check(); reason != "" {
			return WeeklyOpeningHours{}, errors.InvalidArgument("dayOpeningHours", d.String(), reason)
		}
		fragments = append(fragments, d.Normalize()...)
	}
	if reason := overlapping(fragments); reason != "" {
		return WeeklyOpeningHours{}, errors.InvalidArgument("dayOpeningHours", w.String(), reason)
	}
	return w, nil
}

// ParseWeeklyOpeningHours parses e.g. "Mon-Fri 09:00-17:00,Sat/Sun 10:00-14:00".
//
// Every day is normalized while parsing: a range spanning midnight moves
// its second part to the next day and is merged with that day's ranges.
func ParseWeeklyOpeningHours(s string) (WeeklyOpeningHours, error) {
	w, reason := parseWeekly(s)
	if reason != "" {
		return WeeklyOpeningHours{}, errors.InvalidArgument("weeklyOpeningHours", s, reason)
	}
	return w, nil
}

// MustParseWeeklyOpeningHours parses s and panics if it is invalid.
func MustParseWeeklyOpeningHours(s string) WeeklyOpeningHours {
	return errors.Must(ParseWeeklyOpeningHours(s))
}

// IsValidWeeklyOpeningHours reports whether s is a valid weekly schedule.
// Besides the syntax it rejects a day listed twice and normalized ranges
// of different segments that overlap on the same day.
func IsValidWeeklyOpeningHours(s string) bool {
	_, reason := parseWeekly(s)
	return reason == ""
}

func parseWeekly(s string) (WeeklyOpeningHours, string) {
	if s == "" {
		return WeeklyOpeningHours{}, "at least one day is required"
	}
	assigned := make(map[DayOfTheWeek]bool)
	var fragments []DayOpeningHours
	for _, segment := range strings.Split(s, ",") {
		parts := strings.Split(segment, " ")
		if len(parts) != 2 {
			return WeeklyOpeningHours{}, fmt.Sprintf("segment %q: expected '<days> <ranges>'", segment)
		}
		days, reason := parseMultiDay(parts[0])
		if reason != "" {
			return WeeklyOpeningHours{}, fmt.Sprintf("segment %q: %s", segment, reason)
		}
		ranges, reason := parseHourRanges(parts[1])
		if reason != "" {
			return WeeklyOpeningHours{}, fmt.Sprintf("segment %q: %s", segment, reason)
		}
		for _, day := range days.days {
			if assigned[day] {
				return WeeklyOpeningHours{}, fmt.Sprintf("day %s is assigned more than once", day)
			}
			assigned[day] = true
			d := DayOpeningHours{day: day, hours: ranges}
			if reason := d.check(); reason != "" {
				return WeeklyOpeningHours{}, fmt.Sprintf("segment %q: %s", segment, reason)
			}
			fragments = append(fragments, d.Normalize()...)
		}
	}
	if reason := overlapping(fragments); reason != "" {
		return WeeklyOpeningHours{}, reason
	}
	return mergeWeek(fragments), ""
}

// overlapping describes the first pair of normalized fragments open during
// the same minute of the same day, or returns "".
func overlapping(fragments []DayOpeningHours) string {
	for i, a := range fragments {
		for _, b := range fragments[i+1:] {
			if a.day == b.day && a.hours.Overlaps(b.hours) {
				return fmt.Sprintf("%s overlaps %s", a, b)
			}
		}
	}
	return ""
}

// mergeWeek combines normalized values of the same day with Add.
func mergeWeek(fragments []DayOpeningHours) WeeklyOpeningHours {
	byDay := make(map[DayOfTheWeek]DayOpeningHours, len(fragments))
	for _, f := range fragments {
		existing, ok := byDay[f.day]
		if !ok {
			byDay[f.day] = f
			continue
		}
		merged, err := existing.Add(f)
		if err != nil {
			// Fragments are normalized and share the day.
			panic(err)
		}
		byDay[f.day] = merged
	}
	days := make([]DayOpeningHours, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, d)
	}
	return sortedWeek(days)
}

func sortedWeek(days []DayOpeningHours) WeeklyOpeningHours {
	out := slices.Clone(days)
	slices.SortFunc(out, func(a, b DayOpeningHours) int {
		return cmpInt(int(a.day), int(b.day))
	})
	return WeeklyOpeningHours{days: out}
}

// Days returns the day values in day order.
func (w WeeklyOpeningHours) Days() []DayOpeningHours {
	return slices.Clone(w.days)
}

// Get returns the value for day.
func (w WeeklyOpeningHours) Get(day DayOfTheWeek) (DayOpeningHours, bool) {
	for _, d := range w.days {
		if d.day == day {
			return d, true
		}
	}
	return DayOpeningHours{}, false
}

// IsNormalized reports whether no day has a range spanning midnight.
func (w WeeklyOpeningHours) IsNormalized() bool {
	for _, d := range w.days {
		if !d.IsNormalized() {
			return false
		}
	}
	return true
}

// Normalize moves every part after midnight to the following day and
// merges it there.
func (w WeeklyOpeningHours) Normalize() WeeklyOpeningHours {
	var fragments []DayOpeningHours
	for _, d := range w.days {
		fragments = append(fragments, d.Normalize()...)
	}
	return mergeWeek(fragments)
}

// Compress returns the shortest text form: days with the same compressed
// ranges are grouped into one segment, e.g. "MON-FRI 09:00-17:00,SAT/SUN 10:00-14:00".
func (w WeeklyOpeningHours) Compress() string {
	var keys []string
	groups := make(map[string][]DayOfTheWeek)
	for _, d := range w.days {
		key := d.hours.Compress().String()
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], d.day)
	}
	segments := make([]string, len(keys))
	for i, key := range keys {
		segments[i] = sortedDays(groups[key]).Compress() + " " + key
	}
	return strings.Join(segments, ",")
}

// IsSimilarTo reports whether both schedules are open at the same times,
// comparing their normalized and compressed forms.
func (w WeeklyOpeningHours) IsSimilarTo(other WeeklyOpeningHours) bool {
	return w.Normalize().Compress() == other.Normalize().Compress()
}

// Diff lists the changes from w to to, per day in day order. Days only
// in w are reported as removed, days only in to as added.
func (w WeeklyOpeningHours) Diff(to WeeklyOpeningHours) ([]DayChange, error) {
	from, target := w.Normalize(), to.Normalize()
	var changes []DayChange
	for _, day := range AllDays() {
		a, inFrom := from.Get(day)
		b, inTo := target.Get(day)
		switch {
		case inFrom && inTo:
			dayChanges, err := a.Diff(b)
			if err != nil {
				return nil, err
			}
			changes = append(changes, dayChanges...)
		case inFrom:
			changes = append(changes, a.AsRemovedChanges()...)
		case inTo:
			changes = append(changes, b.AsAddedChanges()...)
		}
	}
	return changes, nil
}

// OpenAt reports whether the schedule is open during every range of day.
// day must not span midnight.
func (w WeeklyOpeningHours) OpenAt(day DayOpeningHours) (bool, error) {
	if !day.IsNormalized() {
		return false, errors.PreconditionArgument("dayOpeningHours", day.String(), "must not span midnight")
	}
	entry, ok := w.Normalize().Get(day.day)
	if !ok {
		return false, nil
	}
	for _, r := range day.hours.ranges {
		open, err := entry.OpenAt(r)
		if err != nil || !open {
			return false, err
		}
	}
	return true, nil
}

// OpenAtTime reports whether the schedule is open at t, using t's location.
func (w WeeklyOpeningHours) OpenAtTime(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()
	day := DayOpeningHours{
		day:   DayOfTheWeekFor(t.Weekday()),
		hours: HourRanges{ranges: []HourRange{{start: minute, end: minute + 1}}},
	}
	open, _ := w.OpenAt(day)
	return open
}

func (w WeeklyOpeningHours) String() string {
	parts := make([]string, len(w.days))
	for i, d := range w.days {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}

// MarshalText implements encoding.TextMarshaler.
func (w WeeklyOpeningHours) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WeeklyOpeningHours) UnmarshalText(data []byte) error {
	parsed, err := ParseWeeklyOpeningHours(string(data))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
