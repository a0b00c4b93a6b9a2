package hours

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fuinorg/objects4go/errors"
)

// HourRanges is the set of ranges open on one day, kept in canonical order
// (earliest start first) without duplicates. No two ranges share a minute
// and at most one range wraps past midnight.
type HourRanges struct {
	ranges []HourRange
}

// NewHourRanges creates a set from individual ranges.
func NewHourRanges(ranges ...HourRange) (HourRanges, error) {
	h, reason := newHourRanges(ranges)
	if reason != "" {
		return HourRanges{}, errors.InvalidArgument("hourRanges", joinRanges(ranges), reason)
	}
	return h, nil
}

// ParseHourRanges parses ranges joined with '+', e.g. "09:00-12:00+13:00-17:00".
//
// Empty segments caused by leading, trailing or doubled '+' are skipped.
func ParseHourRanges(s string) (HourRanges, error) {
	h, reason := parseHourRanges(s)
	if reason != "" {
		return HourRanges{}, errors.InvalidArgument("hourRanges", s, reason)
	}
	return h, nil
}

// MustParseHourRanges parses s and panics if it is invalid.
func MustParseHourRanges(s string) HourRanges {
	return errors.Must(ParseHourRanges(s))
}

// IsValidHourRanges reports whether s is a valid '+' joined range list.
func IsValidHourRanges(s string) bool {
	_, reason := parseHourRanges(s)
	return reason == ""
}

func parseHourRanges(s string) (HourRanges, string) {
	var ranges []HourRange
	for _, segment := range strings.Split(s, "+") {
		if segment == "" {
			continue
		}
		r, reason := parseHourRange(segment)
		if reason != "" {
			return HourRanges{}, fmt.Sprintf("segment %q: %s", segment, reason)
		}
		ranges = append(ranges, r)
	}
	return newHourRanges(ranges)
}

func newHourRanges(ranges []HourRange) (HourRanges, string) {
	if len(ranges) == 0 {
		return HourRanges{}, "at least one range is required"
	}
	for _, r := range ranges {
		if reason := r.check(); reason != "" {
			return HourRanges{}, fmt.Sprintf("range %s: %s", r, reason)
		}
	}
	h := sortedRanges(ranges)

	var today Minutes
	wraps := 0
	for _, r := range h.ranges {
		if !r.IsNormalized() {
			wraps++
		}
		part := minutesOf(r.Normalize()[0])
		if !today.And(part).IsEmpty() {
			return HourRanges{}, fmt.Sprintf("range %s overlaps another range", r)
		}
		today = today.Or(part)
	}
	if wraps > 1 {
		return HourRanges{}, "only one range may span midnight"
	}
	return h, ""
}

// sortedRanges copies, sorts and deduplicates without further checks.
func sortedRanges(ranges []HourRange) HourRanges {
	out := slices.Clone(ranges)
	slices.SortFunc(out, HourRange.Compare)
	return HourRanges{ranges: slices.Compact(out)}
}

// Ranges returns a copy of the ranges in canonical order.
func (h HourRanges) Ranges() []HourRange {
	return slices.Clone(h.ranges)
}

// IsEmpty reports whether the set has no ranges. Only the zero value is empty.
func (h HourRanges) IsEmpty() bool {
	return len(h.ranges) == 0
}

// IsNormalized reports whether no range wraps past midnight.
func (h HourRanges) IsNormalized() bool {
	for _, r := range h.ranges {
		if !r.IsNormalized() {
			return false
		}
	}
	return true
}

func (h HourRanges) wrapping() (HourRange, bool) {
	for _, r := range h.ranges {
		if !r.IsNormalized() {
			return r, true
		}
	}
	return HourRange{}, false
}

// Normalize returns this set if no range wraps past midnight. Otherwise it
// returns two sets: today's ranges including start-24:00 of the wrapping
// range, and tomorrow's 00:00-end.
func (h HourRanges) Normalize() []HourRanges {
	wrap, ok := h.wrapping()
	if !ok {
		return []HourRanges{h}
	}
	today := make([]HourRange, 0, len(h.ranges))
	for _, r := range h.ranges {
		today = append(today, r.Normalize()[0])
	}
	return []HourRanges{
		sortedRanges(today),
		{ranges: []HourRange{wrap.Normalize()[1]}},
	}
}

// coverage returns the open minutes of today and of tomorrow.
func (h HourRanges) coverage() (today, tomorrow Minutes) {
	for _, r := range h.ranges {
		parts := r.Normalize()
		today.setRange(parts[0].start, parts[0].end)
		if len(parts) == 2 {
			tomorrow.setRange(parts[1].start, parts[1].end)
		}
	}
	return today, tomorrow
}

func (h HourRanges) requireNormalized(argument string) error {
	if h.IsNormalized() {
		return nil
	}
	return errors.PreconditionArgument(argument, h.String(), "must not span midnight")
}

// ToMinutes returns the open minutes. It fails if a range wraps past midnight.
func (h HourRanges) ToMinutes() (Minutes, error) {
	if err := h.requireNormalized("hourRanges"); err != nil {
		return Minutes{}, err
	}
	return minutesOf(h.ranges...), nil
}

// Add returns the union with other. Ranges sharing at least one minute are
// merged into the range spanning both. Adjacent ranges such as 09:00-12:00
// and 12:00-13:00 stay separate so that Add is commutative and idempotent on
// the text form; Compress joins them. Both sets must be normalized.
func (h HourRanges) Add(other HourRanges) (HourRanges, error) {
	if err := h.requireNormalized("hourRanges"); err != nil {
		return HourRanges{}, err
	}
	if err := other.requireNormalized("other"); err != nil {
		return HourRanges{}, err
	}
	result := slices.Clone(h.ranges)
	for _, r := range other.ranges {
		merged := r
		kept := result[:0:0]
		for _, existing := range result {
			if overlap(existing, merged) {
				merged = HourRange{start: min(existing.start, merged.start), end: max(existing.end, merged.end)}
				continue
			}
			kept = append(kept, existing)
		}
		result = append(kept, merged)
	}
	return sortedRanges(result), nil
}

// Remove returns the minutes of this set not covered by other. Ranges may be
// cut into several fragments. The boolean is false if nothing remains.
// Both sets must be normalized.
func (h HourRanges) Remove(other HourRanges) (HourRanges, bool, error) {
	if err := h.requireNormalized("hourRanges"); err != nil {
		return HourRanges{}, false, err
	}
	if err := other.requireNormalized("other"); err != nil {
		return HourRanges{}, false, err
	}
	removed := minutesOf(other.ranges...)
	var result []HourRange
	for _, r := range h.ranges {
		result = append(result, minutesOf(r).AndNot(removed).Ranges()...)
	}
	if len(result) == 0 {
		return HourRanges{}, false, nil
	}
	return sortedRanges(result), true, nil
}

// Overlaps reports whether both sets are open during the same minute of
// the same day.
func (h HourRanges) Overlaps(other HourRanges) bool {
	todayA, tomorrowA := h.coverage()
	todayB, tomorrowB := other.coverage()
	return !todayA.And(todayB).IsEmpty() || !tomorrowA.And(tomorrowB).IsEmpty()
}

// OpenAt reports whether every minute of r is open today. r must not wrap
// past midnight.
func (h HourRanges) OpenAt(r HourRange) (bool, error) {
	if !r.IsNormalized() {
		return false, errors.PreconditionArgument("hourRange", r.String(), "must not span midnight")
	}
	today, _ := h.coverage()
	return minutesOf(r).AndNot(today).IsEmpty(), nil
}

// Diff lists what changes from h to to: minutes only open in h are
// Removed, minutes only open in to are Added. Both must be normalized.
func (h HourRanges) Diff(to HourRanges) ([]Change, error) {
	if err := h.requireNormalized("from"); err != nil {
		return nil, err
	}
	if err := to.requireNormalized("to"); err != nil {
		return nil, err
	}
	from, target := minutesOf(h.ranges...), minutesOf(to.ranges...)

	var changes []Change
	for _, r := range from.AndNot(target).Ranges() {
		changes = append(changes, Change{Type: Removed, Range: r})
	}
	for _, r := range target.AndNot(from).Ranges() {
		changes = append(changes, Change{Type: Added, Range: r})
	}
	sortChanges(changes)
	return changes, nil
}

// Compress merges overlapping and touching ranges. A range reaching 24:00
// that touches the wrapping range is folded back into it, so
// "18:00-21:00+21:00-03:00" becomes "18:00-03:00".
func (h HourRanges) Compress() HourRanges {
	if h.IsEmpty() {
		return h
	}
	today, tomorrow := h.coverage()
	runs := today.Ranges()
	wrap, ok := h.wrapping()
	if !ok {
		return HourRanges{ranges: runs}
	}

	// The last run always ends at 24:00 because it contains the wrap.
	last := runs[len(runs)-1]
	out := runs[:len(runs)-1]
	end := tomorrow.Ranges()[0].end
	start := last.start
	if start <= end {
		// Folding the whole run would read as a same-day range.
		out = append(out, HourRange{start: last.start, end: wrap.start})
		start = wrap.start
	}
	out = append(out, HourRange{start: start, end: end})
	return sortedRanges(out)
}

// IsSimilarTo reports whether both sets are equal once compressed.
func (h HourRanges) IsSimilarTo(other HourRanges) bool {
	return h.Compress().Equals(other.Compress())
}

// Duration returns the total number of open minutes.
func (h HourRanges) Duration() int {
	total := 0
	for _, r := range h.ranges {
		total += r.Duration()
	}
	return total
}

// Equals checks if both sets contain the same ranges.
func (h HourRanges) Equals(other HourRanges) bool {
	return slices.Equal(h.ranges, other.ranges)
}

func (h HourRanges) String() string {
	return joinRanges(h.ranges)
}

func joinRanges(ranges []HourRange) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, "+")
}

// MarshalText implements encoding.TextMarshaler.
func (h HourRanges) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HourRanges) UnmarshalText(data []byte) error {
	parsed, err := ParseHourRanges(string(data))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
