package challenge

import "github.com/jlouisugbo/walking-challenge/internal/models"

// Badges evaluates the achievement rule table against a ranked participant.
// Rules are independent and non-exclusive; all qualifying badges are returned.
// Milestone-achiever and goal-crusher are mutually exclusive by construction
// (the former requires 150k without 300k).
func Badges(p models.RankedParticipant) []models.Badge {
	var badges []models.Badge

	if p.Milestones.Reached300K {
		badges = append(badges, models.BadgeGoalCrusher)
	}
	if p.Rank >= 1 && p.Rank <= 3 {
		badges = append(badges, models.BadgeTopPerformer)
	}
	if p.Weekly70KCount >= 3 {
		badges = append(badges, models.BadgeWeekWarrior)
	}
	if p.Streak >= 7 {
		badges = append(badges, models.BadgeStreakMaster)
	}
	if p.Points > 0 {
		badges = append(badges, models.BadgeWildcardWinner)
	}
	if p.Milestones.Reached150K && !p.Milestones.Reached300K {
		badges = append(badges, models.BadgeMilestoneAchiever)
	}

	return badges
}
