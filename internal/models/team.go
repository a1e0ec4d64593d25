package models

// Team is a derived grouping of ranked participants by team name.
// Participants without a team are excluded from team views entirely.
type Team struct {
	Name         string              `json:"name"`
	Members      []RankedParticipant `json:"members"`
	TotalSteps   int                 `json:"total_steps"`
	AverageSteps int                 `json:"average_steps"`
	Rank         int                 `json:"rank"`
}

// TeamsResponse is the API response for the team leaderboard.
type TeamsResponse struct {
	Teams      []Team `json:"teams"`
	TotalTeams int    `json:"total_teams"`
}
