package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// GetStats returns the dashboard summary: totals, milestone counts and
// challenge timing.
func GetStats(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	ranked, participants, cfg, err := loadRanked(c, store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats", "details": err.Error()})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, models.ChallengeStats{
		TotalParticipants: len(participants),
		TotalSteps:        challenge.TotalSteps(participants),
		AverageSteps:      challenge.AverageSteps(participants),
		Milestones:        challenge.SummarizeMilestones(ranked),
		DaysElapsed:       challenge.DaysElapsed(cfg.StartDate, now),
		DaysRemaining:     challenge.DaysRemaining(cfg.EndDate, now),
		HeatWeek:          cfg.HeatWeekEnabled && challenge.IsHeatWeek(cfg.StartDate, now),
	})
}
