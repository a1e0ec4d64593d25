package challenge

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// Rank sorts participants by total steps and derives the full leaderboard
// view: dense competition ranks (ties share a rank, the next distinct total
// resumes at its 1-based position), milestone flags, raffle tickets, progress,
// prizes, rank changes, streaks and badges.
//
// Prizes attach to ranks exactly 1, 2 and 3. Ties at rank 1 each receive the
// first-place prize; the original left this ambiguous and the behavior is kept
// rather than resolved.
func Rank(
	participants []models.Participant,
	weekly70k map[uuid.UUID]int,
	cfg models.ChallengeConfig,
	today string,
) []models.RankedParticipant {
	sorted := make([]models.Participant, len(participants))
	copy(sorted, participants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalSteps > sorted[j].TotalSteps
	})

	ranked := make([]models.RankedParticipant, 0, len(sorted))
	currentRank := 1
	previousSteps := -1

	for i, p := range sorted {
		if p.TotalSteps != previousSteps {
			currentRank = i + 1
		}
		previousSteps = p.TotalSteps

		rp := models.RankedParticipant{
			Participant:     p,
			Rank:            currentRank,
			Milestones:      Milestones(p.TotalSteps),
			RaffleTickets:   RaffleTickets(p.TotalSteps, weekly70k[p.ID]),
			ProgressPercent: Progress(p.TotalSteps, cfg.GoalSteps),
			Weekly70KCount:  weekly70k[p.ID],
		}

		switch currentRank {
		case 1:
			prize := cfg.Prizes.First
			rp.Prize = &prize
		case 2:
			prize := cfg.Prizes.Second
			rp.Prize = &prize
		case 3:
			prize := cfg.Prizes.Third
			rp.Prize = &prize
		}

		if today != "" {
			rp.RankChange = RankChange(participants, p.ID, today)
			rp.Streak = Streak(p.DailyHistory, today)
		}
		rp.Badges = Badges(rp)

		ranked = append(ranked, rp)
	}

	return ranked
}
