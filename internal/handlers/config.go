package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// GetConfig returns the current challenge configuration.
func GetConfig(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	cfg, err := store.LoadConfig(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig replaces the challenge configuration (admin only).
func UpdateConfig(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var cfg models.ChallengeConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	for _, date := range []string{cfg.StartDate, cfg.EndDate} {
		if _, err := time.Parse(challenge.DayFormat, date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
	}
	if cfg.GoalSteps <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Goal steps must be positive"})
		return
	}

	if err := store.SaveConfig(c.Request.Context(), cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Config updated successfully"})
}
