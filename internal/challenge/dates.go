package challenge

import (
	"math"
	"time"
)

// DayFormat is the calendar-day layout used throughout the challenge.
const DayFormat = "2006-01-02"

// PrevDay returns the calendar day before date. Malformed input yields "".
func PrevDay(date string) string {
	t, err := time.Parse(DayFormat, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DayFormat)
}

// DaysElapsed returns whole days from the start date to now (negative before
// the challenge starts).
func DaysElapsed(startDate string, now time.Time) int {
	start, err := time.Parse(DayFormat, startDate)
	if err != nil {
		return 0
	}
	return int(now.Sub(start).Hours() / 24)
}

// DaysRemaining returns days from now until the end date, rounded up.
func DaysRemaining(endDate string, now time.Time) int {
	end, err := time.Parse(DayFormat, endDate)
	if err != nil {
		return 0
	}
	diff := end.Sub(now).Hours() / 24
	return int(math.Ceil(diff))
}

// IsHeatWeek reports whether now falls in the first seven days of the challenge.
func IsHeatWeek(startDate string, now time.Time) bool {
	elapsed := DaysElapsed(startDate, now)
	return elapsed >= 0 && elapsed < 7
}
