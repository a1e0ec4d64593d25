package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/database"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// loadRanked loads the roster and derives the full leaderboard view. Every
// read recomputes from authoritative state; nothing derived is cached.
func loadRanked(c *gin.Context, store *database.Store) ([]models.RankedParticipant, []models.Participant, models.ChallengeConfig, error) {
	ctx := c.Request.Context()

	participants, err := store.ListParticipants(ctx)
	if err != nil {
		return nil, nil, models.ChallengeConfig{}, err
	}
	weekly70k, err := store.Weekly70KCounts(ctx)
	if err != nil {
		return nil, nil, models.ChallengeConfig{}, err
	}
	cfg, err := store.LoadConfig(ctx)
	if err != nil {
		return nil, nil, models.ChallengeConfig{}, err
	}

	today := time.Now().Format(challenge.DayFormat)
	ranked := challenge.Rank(participants, weekly70k, cfg, today)
	return ranked, participants, cfg, nil
}

// GetLeaderboard returns the ranked participant leaderboard.
func GetLeaderboard(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	ranked, _, _, err := loadRanked(c, store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.LeaderboardResponse{
		Participants:      ranked,
		TotalParticipants: len(ranked),
	})
}
