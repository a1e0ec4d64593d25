package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

func TestTotalAndAverageSteps(t *testing.T) {
	participants := []models.Participant{
		participant("a", 100),
		participant("b", 101),
		participant("c", 101),
	}

	assert.Equal(t, 302, TotalSteps(participants))
	assert.Equal(t, 101, AverageSteps(participants))

	assert.Zero(t, TotalSteps(nil))
	assert.Zero(t, AverageSteps(nil))
}

func TestSummarizeMilestones(t *testing.T) {
	ranked := []models.RankedParticipant{
		{
			Milestones:    models.MilestoneStatus{Reached150K: true, Reached225K: true, Reached300K: true},
			RaffleTickets: 3,
		},
		{
			Milestones:    models.MilestoneStatus{Reached150K: true},
			RaffleTickets: 1,
		},
		{RaffleTickets: 1},
	}

	stats := SummarizeMilestones(ranked)
	assert.Equal(t, 2, stats.Reached150K)
	assert.Equal(t, 1, stats.Reached225K)
	assert.Equal(t, 1, stats.Reached300K)
	assert.Equal(t, 5, stats.TotalTickets)
}
