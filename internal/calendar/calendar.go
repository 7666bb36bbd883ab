// Package calendar generates the month grid for the training studio and
// places sessions on it.
//
// Calendar dates are timezone-naive: every Day is a plain (year, month, day)
// triple, all date arithmetic runs in UTC, and session dates are compared on
// their UTC calendar fields only. Time-of-day never participates in any
// comparison. Months are numbered 0-11 to match the studio front end.
package calendar

import "time"

// Day is one generated day-cell of a displayed month.
type Day struct {
	Day     int `json:"day"`     // 1..daysInMonth(month, year)
	WeekDay int `json:"weekDay"` // 0 (Sunday) .. 6 (Saturday)
	Month   int `json:"month"`   // 0 (January) .. 11 (December)
	Year    int `json:"year"`
}

// Date returns the day as a time.Time at midnight UTC.
func (d Day) Date() time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth counts the days of (month, year) via day zero of the
// following month, so leap years fall out of the date system itself.
func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month+1)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GenerateMonth returns one Day per calendar day of (month, year) in
// ascending day order, starting at 1. Month is 0-based.
//
// Values outside 0..11 (or absurd years) are not rejected: they roll over
// the way time.Date normalizes them, e.g. month 12 of 2024 produces
// January 2025. Callers wanting strict validation must do it themselves.
func GenerateMonth(month, year int) []Day {
	n := daysInMonth(month, year)
	days := make([]Day, 0, n)

	for day := 1; day <= n; day++ {
		date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
		days = append(days, Day{
			Day:     day,
			WeekDay: int(date.Weekday()),
			Month:   month,
			Year:    year,
		})
	}

	return days
}

// IsToday reports whether d is the same calendar date as now.
// The reference time is explicit so callers control the clock.
func IsToday(d Day, now time.Time) bool {
	y, m, dd := now.UTC().Date()
	return d.Day == dd && d.Month == int(m)-1 && d.Year == y
}

// IsTomorrow reports whether d is the calendar date after now.
func IsTomorrow(d Day, now time.Time) bool {
	return IsToday(d, now.UTC().AddDate(0, 0, 1))
}

// ShouldScrollTo reports whether d is the day the view wants to scroll
// into sight. Equality is on (day, month, year); WeekDay is ignored.
func ShouldScrollTo(d, target Day) bool {
	return d.Day == target.Day && d.Month == target.Month && d.Year == target.Year
}

// LongWeekday returns the full weekday name for d, e.g. "Thursday".
func LongWeekday(d Day) string {
	return d.Date().Format("Monday")
}

// ShortWeekday returns the abbreviated weekday name for d, e.g. "Thu".
func ShortWeekday(d Day) string {
	return d.Date().Format("Mon")
}

// ShortMonth returns the abbreviated month name for d, e.g. "Feb".
func ShortMonth(d Day) string {
	return d.Date().Format("Jan")
}
