package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

func TestBadges(t *testing.T) {
	tests := []struct {
		name string
		p    models.RankedParticipant
		want []models.Badge
	}{
		{
			name: "nothing earned",
			p:    models.RankedParticipant{Rank: 10},
			want: nil,
		},
		{
			name: "goal crusher excludes milestone achiever",
			p: models.RankedParticipant{
				Rank:       5,
				Milestones: models.MilestoneStatus{Reached150K: true, Reached225K: true, Reached300K: true},
			},
			want: []models.Badge{models.BadgeGoalCrusher},
		},
		{
			name: "milestone achiever below 300k",
			p: models.RankedParticipant{
				Rank:       5,
				Milestones: models.MilestoneStatus{Reached150K: true},
			},
			want: []models.Badge{models.BadgeMilestoneAchiever},
		},
		{
			name: "top performer at rank 3",
			p:    models.RankedParticipant{Rank: 3},
			want: []models.Badge{models.BadgeTopPerformer},
		},
		{
			name: "week warrior needs three 70k weeks",
			p:    models.RankedParticipant{Rank: 8, Weekly70KCount: 3},
			want: []models.Badge{models.BadgeWeekWarrior},
		},
		{
			name: "streak master at seven days",
			p:    models.RankedParticipant{Rank: 8, Streak: 7},
			want: []models.Badge{models.BadgeStreakMaster},
		},
		{
			name: "wildcard winner with any points",
			p: models.RankedParticipant{
				Participant: models.Participant{Points: 1},
				Rank:        8,
			},
			want: []models.Badge{models.BadgeWildcardWinner},
		},
		{
			name: "stacked achievements",
			p: models.RankedParticipant{
				Participant:    models.Participant{Points: 2},
				Rank:           1,
				Milestones:     models.MilestoneStatus{Reached150K: true, Reached225K: true, Reached300K: true},
				Streak:         9,
				Weekly70KCount: 4,
			},
			want: []models.Badge{
				models.BadgeGoalCrusher,
				models.BadgeTopPerformer,
				models.BadgeWeekWarrior,
				models.BadgeStreakMaster,
				models.BadgeWildcardWinner,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Badges(tt.p))
		})
	}
}
