package challenge

import (
	"math"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// TotalSteps sums the cumulative totals of all participants.
func TotalSteps(participants []models.Participant) int {
	total := 0
	for _, p := range participants {
		total += p.TotalSteps
	}
	return total
}

// AverageSteps returns the rounded mean of participant totals, 0 for an empty
// roster.
func AverageSteps(participants []models.Participant) int {
	if len(participants) == 0 {
		return 0
	}
	return int(math.Round(float64(TotalSteps(participants)) / float64(len(participants))))
}

// SummarizeMilestones counts milestone achievements and raffle tickets across
// the ranked roster.
func SummarizeMilestones(ranked []models.RankedParticipant) models.MilestoneStats {
	var stats models.MilestoneStats
	for _, p := range ranked {
		if p.Milestones.Reached150K {
			stats.Reached150K++
		}
		if p.Milestones.Reached225K {
			stats.Reached225K++
		}
		if p.Milestones.Reached300K {
			stats.Reached300K++
		}
		stats.TotalTickets += p.RaffleTickets
	}
	return stats
}
