// Package wildcard implements the daily bonus-point mini-game: ten independent
// winner-selection strategies over participants' daily histories, plus the
// backfill planning used to catch up on days nobody computed a winner.
package wildcard

import (
	"math/rand"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// CategoryInfo describes a wildcard category for display.
type CategoryInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// AllCategories lists every category in a fixed order, used for random
// selection and for the category listing endpoint.
var AllCategories = []models.WildcardCategory{
	models.CategoryBestImproved,
	models.CategoryMostStepsDay,
	models.CategoryGreatestIncrease,
	models.CategoryConsistencyKing,
	models.CategoryWeekendWarrior,
	models.CategoryComebackKid,
	models.CategoryStreakMaster,
	models.CategoryAverageExcellence,
	models.CategoryOverAchiever,
	models.CategoryDailyDominator,
}

// Categories maps each category to its display metadata.
var Categories = map[models.WildcardCategory]CategoryInfo{
	models.CategoryBestImproved: {
		Name:        "Best Improved",
		Description: "Highest percentage increase from previous day",
		Emoji:       "📈",
	},
	models.CategoryMostStepsDay: {
		Name:        "Most Steps in One Day",
		Description: "Highest single day step count",
		Emoji:       "🏆",
	},
	models.CategoryGreatestIncrease: {
		Name:        "Greatest Increase",
		Description: "Biggest absolute step increase from previous day",
		Emoji:       "🚀",
	},
	models.CategoryConsistencyKing: {
		Name:        "Consistency Champion",
		Description: "Most consistent daily steps (lowest variance)",
		Emoji:       "👑",
	},
	models.CategoryWeekendWarrior: {
		Name:        "Weekend Warrior",
		Description: "Most steps on a weekend day",
		Emoji:       "🎉",
	},
	models.CategoryComebackKid: {
		Name:        "Comeback Kid",
		Description: "Biggest recovery after a low day",
		Emoji:       "💪",
	},
	models.CategoryStreakMaster: {
		Name:        "Streak Master",
		Description: "Most consecutive days hitting 10,000+ steps",
		Emoji:       "🔥",
	},
	models.CategoryAverageExcellence: {
		Name:        "Average Excellence",
		Description: "Highest average over last 3 days",
		Emoji:       "⭐",
	},
	models.CategoryOverAchiever: {
		Name:        "Over-Achiever",
		Description: "Most steps above personal average",
		Emoji:       "🎯",
	},
	models.CategoryDailyDominator: {
		Name:        "Daily Dominator",
		Description: "Highest steps for this day of the week",
		Emoji:       "👊",
	},
}

// RandomCategory picks a category uniformly at random. The generator is
// injected so callers control seeding; which category runs on a given day is a
// game-design choice, not an engine invariant.
func RandomCategory(r *rand.Rand) models.WildcardCategory {
	return AllCategories[r.Intn(len(AllCategories))]
}
