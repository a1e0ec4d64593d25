package wildcard

import (
	"time"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// ActiveFrom returns the first day the wildcard runs: the day after heat week
// (start + 7 days) when heat week is enabled, otherwise the challenge start.
func ActiveFrom(cfg models.ChallengeConfig) (string, error) {
	start, err := time.Parse(challenge.DayFormat, cfg.StartDate)
	if err != nil {
		return "", err
	}
	if cfg.HeatWeekEnabled {
		start = start.AddDate(0, 0, 7)
	}
	return start.Format(challenge.DayFormat), nil
}

// MissingDates lists, in calendar order, every day from activeFrom through
// yesterday that has no stored wildcard result. Today is never included; its
// winner is only decided once the day is complete.
func MissingDates(existing []models.WildcardResult, activeFrom string, now time.Time) []string {
	start, err := time.Parse(challenge.DayFormat, activeFrom)
	if err != nil {
		return nil
	}
	yesterday := now.AddDate(0, 0, -1).Format(challenge.DayFormat)

	have := make(map[string]bool, len(existing))
	for _, r := range existing {
		have[r.Date] = true
	}

	var missing []string
	for day := start; ; day = day.AddDate(0, 0, 1) {
		ds := day.Format(challenge.DayFormat)
		if ds > yesterday {
			break
		}
		if !have[ds] {
			missing = append(missing, ds)
		}
	}
	return missing
}
