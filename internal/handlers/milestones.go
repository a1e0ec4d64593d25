package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
)

// RunWeeklyMilestones recomputes the weekly 70k achievements for every
// completed challenge week from daily history and stores them (admin only).
// Re-running overwrites each week's row, so corrected history imports flow
// through to raffle tickets on the next leaderboard read.
func RunWeeklyMilestones(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	ctx := c.Request.Context()

	cfg, err := store.LoadConfig(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load config", "details": err.Error()})
		return
	}

	weeks := challenge.CompletedWeeks(cfg.StartDate, time.Now())
	if len(weeks) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No completed weeks yet", "weeks": 0})
		return
	}

	participants, err := store.ListParticipants(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load participants", "details": err.Error()})
		return
	}

	achievements := 0
	for _, week := range weeks {
		for _, p := range participants {
			total := challenge.StepsBetween(p, week.Start, week.End)
			achieved := total >= challenge.Weekly70KGoal
			if err := store.UpsertWeeklyMilestone(ctx, p.ID, week.Start, week.End, total, achieved); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save weekly milestone", "details": err.Error()})
				return
			}
			if achieved {
				achievements++
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Weekly milestones recomputed",
		"weeks":        len(weeks),
		"participants": len(participants),
		"achievements": achievements,
	})
}
