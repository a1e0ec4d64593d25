package challenge

import (
	"sort"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// DefaultTeamNames are used when the admin triggers team formation without
// providing names.
var DefaultTeamNames = []string{"Team Alpha", "Team Bravo", "Team Charlie", "Team Delta", "Team Echo"}

// DraftTeam is one team produced by the snake draft.
type DraftTeam struct {
	Name    string
	Members []models.Participant
}

// SnakeDraft distributes participants across teams in serpentine order after
// sorting by total steps descending, so each team gets a mix of high and low
// performers. Assignment order for n teams is 0..n-1, n-1..0, repeating.
func SnakeDraft(participants []models.Participant, teamNames []string) []DraftTeam {
	if len(teamNames) == 0 {
		return nil
	}

	sorted := make([]models.Participant, len(participants))
	copy(sorted, participants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalSteps > sorted[j].TotalSteps
	})

	teams := make([]DraftTeam, len(teamNames))
	for i, name := range teamNames {
		teams[i] = DraftTeam{Name: name}
	}

	idx := 0
	dir := 1
	for _, p := range sorted {
		teams[idx].Members = append(teams[idx].Members, p)
		idx += dir
		if idx >= len(teams) {
			idx = len(teams) - 1
			dir = -1
		} else if idx < 0 {
			idx = 0
			dir = 1
		}
	}

	return teams
}
