// Package testgen provides rapid generators for the text forms of the
// value types, for use in property-based tests.
package testgen

import (
	"fmt"
	"slices"
	"strings"

	"pgregory.net/rapid"
)

const minutesPerDay = 24 * 60

var dayNames = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN", "PH"}

func clock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// HourRangeGen generates valid "HH:MM-HH:MM" ranges, including ranges
// that span midnight.
func HourRangeGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		start := rapid.IntRange(0, minutesPerDay-1).Draw(t, "start")
		end := rapid.IntRange(1, minutesPerDay).Filter(func(e int) bool { return e != start }).Draw(t, "end")
		return clock(start) + "-" + clock(end)
	})
}

// SameDayRangesGen generates '+' joined ranges that do not span midnight
// and never share a minute.
func SameDayRangesGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		points := rapid.SliceOfNDistinct(rapid.IntRange(0, minutesPerDay), 2, 8, rapid.ID[int]).Draw(t, "points")
		slices.Sort(points)
		var ranges []string
		for i := 0; i+1 < len(points); i += 2 {
			ranges = append(ranges, clock(points[i])+"-"+clock(points[i+1]))
		}
		return strings.Join(ranges, "+")
	})
}

// DayGen generates day names in random case.
func DayGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		name := rapid.SampledFrom(dayNames).Draw(t, "day")
		if rapid.Bool().Draw(t, "lower") {
			return strings.ToLower(name)
		}
		return name
	})
}

// MultiDayGen generates '/' joined lists of distinct days.
func MultiDayGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		days := rapid.SliceOfNDistinct(rapid.SampledFrom(dayNames), 1, len(dayNames), rapid.ID[string]).Draw(t, "days")
		return strings.Join(days, "/")
	})
}

// WeeklyGen generates weekly schedules where every day appears at most
// once and no range spans midnight.
func WeeklyGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		days := rapid.SliceOfNDistinct(rapid.SampledFrom(dayNames), 1, len(dayNames), rapid.ID[string]).Draw(t, "days")
		var segments []string
		for len(days) > 0 {
			n := rapid.IntRange(1, len(days)).Draw(t, "group")
			ranges := SameDayRangesGen().Draw(t, "ranges")
			segments = append(segments, strings.Join(days[:n], "/")+" "+ranges)
			days = days[n:]
		}
		return strings.Join(segments, ",")
	})
}

// CurrencyAmountGen generates "<amount> <code>" values with the currency's
// number of decimals.
func CurrencyAmountGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		code := rapid.SampledFrom([]string{"USD", "EUR", "GBP", "JPY", "CHF"}).Draw(t, "currency")
		units := rapid.Int64Range(-999999, 999999).Draw(t, "units")
		if code == "JPY" {
			return fmt.Sprintf("%d %s", units, code)
		}
		cents := rapid.IntRange(0, 99).Draw(t, "cents")
		sign := ""
		if units < 0 {
			sign, units = "-", -units
		}
		return fmt.Sprintf("%s%d.%02d %s", sign, units, cents, code)
	})
}

// EmailGen generates valid email addresses.
func EmailGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		local := rapid.StringMatching(`[a-z][a-z0-9]{2,10}`).Draw(t, "local")
		domain := rapid.StringMatching(`[a-z]{3,8}`).Draw(t, "domain")
		tld := rapid.SampledFrom([]string{"com", "org", "net", "io", "dev"}).Draw(t, "tld")
		return fmt.Sprintf("%s@%s.%s", local, domain, tld)
	})
}
