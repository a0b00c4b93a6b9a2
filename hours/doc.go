// Package hours models opening hours: minute-of-day ranges, the set of
// ranges open on one day, days of the week and the weekly schedule built
// from them.
//
// All values are immutable. Every transformation (Normalize, Compress, Add,
// Remove, Diff) returns a new value, so values can be shared between
// goroutines without synchronisation.
//
// Textual forms:
//
//	HourRange           09:00-17:00, 18:00-03:00 (wraps past midnight)
//	HourRanges          09:00-12:00+13:00-17:00
//	DayOfTheWeek        Mon..Sun, PH (public holiday)
//	MultiDayOfTheWeek   Mon-Fri, Sat/Sun, Mon/Wed-Fri
//	DayOpeningHours     Mon 09:00-12:00+13:00-17:00
//	WeeklyOpeningHours  Mon-Fri 09:00-12:00+13:00-17:00,Sat/Sun 09:00-12:00
//
// Example usage:
//
//	week, err := hours.ParseWeeklyOpeningHours("Mon-Thu 09:00-18:00,Fri 09:00-03:00")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(week.Compress())
package hours
