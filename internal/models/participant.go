package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyStep is one day's step count for a participant.
type DailyStep struct {
	Date      string    `json:"date"` // YYYY-MM-DD
	Steps     int       `json:"steps"`
	Timestamp time.Time `json:"timestamp"`
}

// Participant is the authoritative record for one challenge participant.
// TotalSteps is not required to equal the sum of DailyHistory: daily tracking
// may have started after cumulative tracking, and the two are never reconciled.
type Participant struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	TotalSteps   int         `json:"total_steps"`
	Points       int         `json:"points"` // wildcard points
	Team         *string     `json:"team"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	DailyHistory []DailyStep `json:"daily_history,omitempty"`
}

// StepsOn returns the participant's recorded steps for a calendar day,
// or 0 when no entry exists for that day.
func (p *Participant) StepsOn(date string) int {
	for _, d := range p.DailyHistory {
		if d.Date == date {
			return d.Steps
		}
	}
	return 0
}

// MilestoneStatus flags which cumulative milestones a participant has reached.
type MilestoneStatus struct {
	Reached150K bool `json:"reached_150k"`
	Reached225K bool `json:"reached_225k"`
	Reached300K bool `json:"reached_300k"`
}

// RankChangeDirection indicates day-over-day leaderboard movement.
type RankChangeDirection string

const (
	RankUp   RankChangeDirection = "up"
	RankDown RankChangeDirection = "down"
	RankSame RankChangeDirection = "same"
)

// RankChange is a participant's movement versus the reconstructed
// prior-day leaderboard.
type RankChange struct {
	Direction RankChangeDirection `json:"direction"`
	Magnitude int                 `json:"magnitude"`
}

// Badge is a named achievement on the leaderboard.
type Badge string

const (
	BadgeGoalCrusher       Badge = "goal_crusher"       // reached 300k
	BadgeTopPerformer      Badge = "top_performer"      // rank 1-3
	BadgeWeekWarrior       Badge = "week_warrior"       // 3+ weekly 70k achievements
	BadgeStreakMaster      Badge = "streak_master"      // 7+ day streak
	BadgeWildcardWinner    Badge = "wildcard_winner"    // any wildcard points
	BadgeMilestoneAchiever Badge = "milestone_achiever" // reached 150k but not 300k
)

// RankedParticipant is the derived leaderboard view of a Participant.
// It is recomputed on every read and never persisted.
type RankedParticipant struct {
	Participant
	Rank            int             `json:"rank"`
	Milestones      MilestoneStatus `json:"milestones"`
	RaffleTickets   int             `json:"raffle_tickets"`
	ProgressPercent float64         `json:"progress_percent"`
	Prize           *int            `json:"prize,omitempty"`
	RankChange      *RankChange     `json:"rank_change,omitempty"`
	Streak          int             `json:"streak"`
	Badges          []Badge         `json:"badges,omitempty"`
	Weekly70KCount  int             `json:"weekly_70k_count"`
}
