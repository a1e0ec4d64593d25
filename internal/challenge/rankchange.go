package challenge

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// StepsAsOf sums a participant's daily history entries dated on or before day.
// A participant whose history starts later reconstructs to 0.
func StepsAsOf(p models.Participant, day string) int {
	total := 0
	for _, d := range p.DailyHistory {
		if d.Date <= day {
			total += d.Steps
		}
	}
	return total
}

// RankChange compares a participant's current leaderboard position against the
// position they held on the reconstructed prior-day leaderboard. Ties in the
// reconstruction are broken by roster order (stable sort).
func RankChange(participants []models.Participant, targetID uuid.UUID, today string) *models.RankChange {
	yesterday := PrevDay(today)
	if yesterday == "" {
		return nil
	}

	yesterdayRank := positionalRank(participants, targetID, func(p models.Participant) int {
		return StepsAsOf(p, yesterday)
	})
	currentRank := positionalRank(participants, targetID, func(p models.Participant) int {
		return p.TotalSteps
	})
	if yesterdayRank == 0 || currentRank == 0 {
		return nil
	}

	change := yesterdayRank - currentRank
	rc := &models.RankChange{Direction: models.RankSame}
	switch {
	case change > 0:
		rc.Direction = models.RankUp
		rc.Magnitude = change
	case change < 0:
		rc.Direction = models.RankDown
		rc.Magnitude = -change
	}
	return rc
}

// positionalRank returns the 1-based position of targetID when participants
// are sorted descending by the given metric, or 0 if the target is absent.
func positionalRank(participants []models.Participant, targetID uuid.UUID, metric func(models.Participant) int) int {
	order := make([]models.Participant, len(participants))
	copy(order, participants)
	sort.SliceStable(order, func(i, j int) bool {
		return metric(order[i]) > metric(order[j])
	})
	for i, p := range order {
		if p.ID == targetID {
			return i + 1
		}
	}
	return 0
}
