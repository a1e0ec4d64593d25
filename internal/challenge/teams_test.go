package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

func teamMember(name, team string, steps int) models.RankedParticipant {
	return models.RankedParticipant{
		Participant: models.Participant{Name: name, Team: &team, TotalSteps: steps},
	}
}

func TestAggregateTeams(t *testing.T) {
	ranked := []models.RankedParticipant{
		teamMember("a", "Team Alpha", 10000),
		teamMember("b", "Team Bravo", 30000),
		teamMember("c", "Team Alpha", 15000),
		teamMember("d", "Team Bravo", 5000),
	}

	teams := AggregateTeams(ranked)
	require.Len(t, teams, 2)

	assert.Equal(t, "Team Bravo", teams[0].Name)
	assert.Equal(t, 1, teams[0].Rank)
	assert.Equal(t, 35000, teams[0].TotalSteps)
	assert.Equal(t, 17500, teams[0].AverageSteps)
	assert.Len(t, teams[0].Members, 2)

	assert.Equal(t, "Team Alpha", teams[1].Name)
	assert.Equal(t, 2, teams[1].Rank)
	assert.Equal(t, 25000, teams[1].TotalSteps)
	assert.Equal(t, 12500, teams[1].AverageSteps)
}

func TestAggregateTeamsRoundsAverage(t *testing.T) {
	ranked := []models.RankedParticipant{
		teamMember("a", "Team Alpha", 100),
		teamMember("b", "Team Alpha", 101),
		teamMember("c", "Team Alpha", 101),
	}

	teams := AggregateTeams(ranked)
	require.Len(t, teams, 1)
	// 302/3 = 100.67 rounds up
	assert.Equal(t, 101, teams[0].AverageSteps)
}

func TestAggregateTeamsSkipsUnassigned(t *testing.T) {
	empty := ""
	ranked := []models.RankedParticipant{
		teamMember("a", "Team Alpha", 1000),
		{Participant: models.Participant{Name: "free agent", TotalSteps: 99999}},
		{Participant: models.Participant{Name: "blank team", Team: &empty, TotalSteps: 99999}},
	}

	teams := AggregateTeams(ranked)
	require.Len(t, teams, 1)
	assert.Equal(t, 1000, teams[0].TotalSteps)
}

func TestAggregateTeamsTieKeepsDiscoveryOrder(t *testing.T) {
	// Tied totals do not share a rank. The team seen first in the roster
	// keeps the earlier position.
	ranked := []models.RankedParticipant{
		teamMember("a", "Team Alpha", 2000),
		teamMember("b", "Team Bravo", 2000),
	}

	teams := AggregateTeams(ranked)
	require.Len(t, teams, 2)
	assert.Equal(t, "Team Alpha", teams[0].Name)
	assert.Equal(t, 1, teams[0].Rank)
	assert.Equal(t, "Team Bravo", teams[1].Name)
	assert.Equal(t, 2, teams[1].Rank)
}

func TestAggregateTeamsEmpty(t *testing.T) {
	assert.Empty(t, AggregateTeams(nil))
}
