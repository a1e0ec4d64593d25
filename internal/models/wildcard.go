package models

import (
	"time"

	"github.com/google/uuid"
)

// WildcardCategory selects one of the daily bonus-point mini-game strategies.
type WildcardCategory string

const (
	CategoryBestImproved      WildcardCategory = "best-improved"
	CategoryMostStepsDay      WildcardCategory = "most-steps-day"
	CategoryGreatestIncrease  WildcardCategory = "greatest-increase"
	CategoryConsistencyKing   WildcardCategory = "consistency-king"
	CategoryWeekendWarrior    WildcardCategory = "weekend-warrior"
	CategoryComebackKid       WildcardCategory = "comeback-kid"
	CategoryStreakMaster      WildcardCategory = "streak-master"
	CategoryAverageExcellence WildcardCategory = "average-excellence"
	CategoryOverAchiever      WildcardCategory = "over-achiever"
	CategoryDailyDominator    WildcardCategory = "daily-dominator"
)

// WildcardResult records the winner of one day's wildcard draw.
// At most one result exists per calendar day; recomputation overwrites.
type WildcardResult struct {
	Date        string           `json:"date"` // YYYY-MM-DD
	Category    WildcardCategory `json:"category"`
	WinnerID    uuid.UUID        `json:"winner_id"`
	WinnerName  string           `json:"winner_name"`
	Value       int              `json:"value"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}
