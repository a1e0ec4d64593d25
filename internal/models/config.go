package models

// Prizes holds the cash prize table for the challenge.
type Prizes struct {
	First              int `json:"first"`
	Second             int `json:"second"`
	Third              int `json:"third"`
	TeamBonusPerMember int `json:"team_bonus_per_member"`
}

// ChallengeConfig is the singleton challenge configuration record.
type ChallengeConfig struct {
	StartDate              string `json:"start_date"` // YYYY-MM-DD
	EndDate                string `json:"end_date"`   // YYYY-MM-DD
	GoalSteps              int    `json:"goal_steps"`
	Milestones             []int  `json:"milestones"`
	Prizes                 Prizes `json:"prizes"`
	TeamSize               int    `json:"team_size"`
	HeatWeekEnabled        bool   `json:"heat_week_enabled"`
	TeamCompetitionEnabled bool   `json:"team_competition_enabled"`
	TeamsFormed            bool   `json:"teams_formed"`
}

// DefaultConfig returns the configuration used before an admin saves one.
func DefaultConfig() ChallengeConfig {
	return ChallengeConfig{
		StartDate:  "2025-11-10",
		EndDate:    "2025-12-10",
		GoalSteps:  300000,
		Milestones: []int{150000, 225000, 300000},
		Prizes: Prizes{
			First:              25,
			Second:             15,
			Third:              10,
			TeamBonusPerMember: 15,
		},
		TeamSize:               3,
		HeatWeekEnabled:        true,
		TeamCompetitionEnabled: true,
	}
}
