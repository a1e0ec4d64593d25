package challenge

import (
	"math"
	"sort"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// AggregateTeams groups ranked participants by team name, sums and averages
// their totals, and assigns positional 1-based ranks by total steps descending.
// Unlike participant ranking, team ranking does not share ranks on ties: the
// first team in sort order at a given total takes the lower rank. Participants
// without a team are excluded.
func AggregateTeams(ranked []models.RankedParticipant) []models.Team {
	byName := make(map[string][]models.RankedParticipant)
	var names []string

	for _, p := range ranked {
		if p.Team == nil || *p.Team == "" {
			continue
		}
		if _, ok := byName[*p.Team]; !ok {
			names = append(names, *p.Team)
		}
		byName[*p.Team] = append(byName[*p.Team], p)
	}

	teams := make([]models.Team, 0, len(names))
	for _, name := range names {
		members := byName[name]
		total := 0
		for _, m := range members {
			total += m.TotalSteps
		}
		avg := 0
		if len(members) > 0 {
			avg = int(math.Round(float64(total) / float64(len(members))))
		}
		teams = append(teams, models.Team{
			Name:         name,
			Members:      members,
			TotalSteps:   total,
			AverageSteps: avg,
		})
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].TotalSteps > teams[j].TotalSteps
	})
	for i := range teams {
		teams[i].Rank = i + 1
	}

	return teams
}
