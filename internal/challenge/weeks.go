package challenge

import (
	"time"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// Weekly70KGoal is the weekly step total that earns a bonus-ticket achievement.
const Weekly70KGoal = 70000

// WeekWindow is one challenge week, inclusive on both ends.
type WeekWindow struct {
	Start string // YYYY-MM-DD
	End   string // YYYY-MM-DD
}

// CompletedWeeks lists the challenge weeks that have fully elapsed: consecutive
// seven-day windows from the start date whose last day is before today. The
// current, still-running week is never included.
func CompletedWeeks(startDate string, now time.Time) []WeekWindow {
	start, err := time.Parse(DayFormat, startDate)
	if err != nil {
		return nil
	}
	today := now.Format(DayFormat)

	var weeks []WeekWindow
	for weekStart := start; ; weekStart = weekStart.AddDate(0, 0, 7) {
		weekEnd := weekStart.AddDate(0, 0, 6)
		if weekEnd.Format(DayFormat) >= today {
			break
		}
		weeks = append(weeks, WeekWindow{
			Start: weekStart.Format(DayFormat),
			End:   weekEnd.Format(DayFormat),
		})
	}
	return weeks
}

// StepsBetween sums a participant's daily history entries dated within the
// window, inclusive on both ends.
func StepsBetween(p models.Participant, from, to string) int {
	total := 0
	for _, d := range p.DailyHistory {
		if d.Date >= from && d.Date <= to {
			total += d.Steps
		}
	}
	return total
}
