package wildcard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// comebackFloor is the prior-day ceiling that makes a recovery count as a
// comeback.
const comebackFloor = 8000

// Pick computes the wildcard winner for one category on one calendar day.
// It returns nil when no participant satisfies the category's preconditions;
// callers must treat nil as "no winner today". The engine is stateless and
// replay-safe: history entries dated after the target day are ignored, so
// recomputing a past day yields the same winner for the same category.
func Pick(category models.WildcardCategory, participants []models.Participant, date string) *models.WildcardResult {
	if len(participants) == 0 {
		return nil
	}
	day, err := time.Parse(challenge.DayFormat, date)
	if err != nil {
		return nil
	}

	var (
		winner *models.Participant
		value  int
	)
	describe := func(string) string { return "" }

	switch category {
	case models.CategoryBestImproved:
		yesterday := challenge.PrevDay(date)
		best := 0.0
		for i := range participants {
			p := &participants[i]
			today := p.StepsOn(date)
			prior := p.StepsOn(yesterday)
			if prior > 0 && today > prior {
				percent := float64(today-prior) / float64(prior) * 100
				if percent > best {
					best = percent
					winner = p
					value = int(math.Round(percent))
				}
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s improved by %d%% from the previous day", name, value)
		}

	case models.CategoryMostStepsDay:
		for i := range participants {
			p := &participants[i]
			if today := p.StepsOn(date); today > value {
				value = today
				winner = p
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s walked %s steps today", name, formatSteps(value))
		}

	case models.CategoryGreatestIncrease:
		yesterday := challenge.PrevDay(date)
		best := 0
		for i := range participants {
			p := &participants[i]
			increase := p.StepsOn(date) - p.StepsOn(yesterday)
			if increase > best {
				best = increase
				winner = p
				value = increase
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s increased by %s steps", name, formatSteps(value))
		}

	case models.CategoryConsistencyKing:
		lowest := math.Inf(1)
		for i := range participants {
			p := &participants[i]
			week := lastNDaySteps(p, date, 7)
			if len(week) >= 3 {
				if sd := stdDev(week); sd < lowest {
					lowest = sd
					winner = p
					value = int(math.Round(sd))
				}
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s maintained the most consistent pace", name)
		}

	case models.CategoryWeekendWarrior:
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			// On a weekday this category has no meaning; fall back to the
			// plain daily maximum, same winner rule as most-steps-day.
			return Pick(models.CategoryMostStepsDay, participants, date)
		}
		for i := range participants {
			p := &participants[i]
			if today := p.StepsOn(date); today > value {
				value = today
				winner = p
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s dominated the weekend with %s steps", name, formatSteps(value))
		}

	case models.CategoryComebackKid:
		yesterday := challenge.PrevDay(date)
		bestRatio := 0.0
		for i := range participants {
			p := &participants[i]
			today := p.StepsOn(date)
			prior := p.StepsOn(yesterday)
			if prior > 0 && prior < comebackFloor && today > prior {
				if ratio := float64(today) / float64(prior); ratio > bestRatio {
					bestRatio = ratio
					winner = p
					value = today
				}
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s bounced back with %s steps", name, formatSteps(value))
		}

	case models.CategoryStreakMaster:
		longest := 0
		for i := range participants {
			p := &participants[i]
			if run := longestRun(p, date); run > longest {
				longest = run
				winner = p
				value = run
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s hit 10k+ steps for %d days straight", name, value)
		}

	case models.CategoryAverageExcellence:
		best := 0.0
		for i := range participants {
			p := &participants[i]
			last3 := lastNDaySteps(p, date, 3)
			if len(last3) == 3 {
				avg := float64(last3[0]+last3[1]+last3[2]) / 3
				if avg > best {
					best = avg
					winner = p
					value = int(math.Round(avg))
				}
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s averaged %s steps over 3 days", name, formatSteps(value))
		}

	case models.CategoryOverAchiever:
		best := 0.0
		for i := range participants {
			p := &participants[i]
			all := stepsThrough(p, date)
			if len(all) == 0 {
				continue
			}
			sum := 0
			for _, s := range all {
				sum += s
			}
			avg := float64(sum) / float64(len(all))
			above := float64(p.StepsOn(date)) - avg
			if above > best {
				best = above
				winner = p
				value = int(math.Round(above))
			}
		}
		describe = func(name string) string {
			return fmt.Sprintf("%s exceeded their average by %s steps", name, formatSteps(value))
		}

	case models.CategoryDailyDominator:
		for i := range participants {
			p := &participants[i]
			if today := p.StepsOn(date); today > value {
				value = today
				winner = p
			}
		}
		weekday := day.Weekday().String()
		describe = func(name string) string {
			return fmt.Sprintf("%s dominated %s with %s steps", name, weekday, formatSteps(value))
		}

	default:
		return nil
	}

	if winner == nil {
		return nil
	}

	return &models.WildcardResult{
		Date:        date,
		Category:    category,
		WinnerID:    winner.ID,
		WinnerName:  winner.Name,
		Value:       value,
		Description: describe(winner.Name),
		CreatedAt:   time.Now(),
	}
}

// lastNDaySteps returns the step counts of the participant's n most recent
// history entries dated on or before day, newest first.
func lastNDaySteps(p *models.Participant, day string, n int) []int {
	entries := make([]models.DailyStep, 0, len(p.DailyHistory))
	for _, d := range p.DailyHistory {
		if d.Date <= day {
			entries = append(entries, d)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	if len(entries) > n {
		entries = entries[:n]
	}
	steps := make([]int, len(entries))
	for i, d := range entries {
		steps[i] = d.Steps
	}
	return steps
}

// stepsThrough returns all step counts dated on or before day, oldest first.
func stepsThrough(p *models.Participant, day string) []int {
	entries := make([]models.DailyStep, 0, len(p.DailyHistory))
	for _, d := range p.DailyHistory {
		if d.Date <= day {
			entries = append(entries, d)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	steps := make([]int, len(entries))
	for i, d := range entries {
		steps[i] = d.Steps
	}
	return steps
}

// longestRun finds the longest run of consecutive history entries at or above
// the streak threshold, considering entries up to and including day.
func longestRun(p *models.Participant, day string) int {
	steps := stepsThrough(p, day)
	longest, current := 0, 0
	for _, s := range steps {
		if s >= challenge.StreakThreshold {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// stdDev is the population standard deviation.
func stdDev(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := float64(sum) / float64(len(values))
	variance := 0.0
	for _, v := range values {
		diff := float64(v) - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// formatSteps renders a step count with thousands separators.
func formatSteps(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
