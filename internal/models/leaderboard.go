package models

// LeaderboardResponse is the API response for the participant leaderboard.
type LeaderboardResponse struct {
	Participants      []RankedParticipant `json:"participants"`
	TotalParticipants int                 `json:"total_participants"`
}

// MilestoneStats summarizes milestone progress across the whole roster.
type MilestoneStats struct {
	Reached150K  int `json:"reached_150k"`
	Reached225K  int `json:"reached_225k"`
	Reached300K  int `json:"reached_300k"`
	TotalTickets int `json:"total_tickets"`
}

// ChallengeStats is the API response for the dashboard stats panel.
type ChallengeStats struct {
	TotalParticipants int            `json:"total_participants"`
	TotalSteps        int            `json:"total_steps"`
	AverageSteps      int            `json:"average_steps"`
	Milestones        MilestoneStats `json:"milestones"`
	DaysElapsed       int            `json:"days_elapsed"`
	DaysRemaining     int            `json:"days_remaining"`
	HeatWeek          bool           `json:"heat_week"`
}
