package challenge

import "github.com/jlouisugbo/walking-challenge/internal/models"

// Streak counts consecutive trailing days at or above StreakThreshold, walking
// backward from today. Today itself is counted only if the history contains an
// entry for it; a single missing day breaks the streak even if earlier days
// qualify.
func Streak(history []models.DailyStep, today string) int {
	if len(history) == 0 || today == "" {
		return 0
	}

	byDate := make(map[string]int, len(history))
	for _, d := range history {
		byDate[d.Date] = d.Steps
	}

	streak := 0
	day := today
	if _, ok := byDate[today]; !ok {
		// No entry for today yet; the streak is measured up to yesterday.
		day = PrevDay(today)
	}

	for day != "" {
		steps, ok := byDate[day]
		if !ok || steps < StreakThreshold {
			break
		}
		streak++
		day = PrevDay(day)
	}

	return streak
}
