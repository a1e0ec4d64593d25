package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// GetTeams returns the team leaderboard. Participants without a team do not
// appear in any team.
func GetTeams(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	ranked, _, _, err := loadRanked(c, store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load teams", "details": err.Error()})
		return
	}

	teams := challenge.AggregateTeams(ranked)
	c.JSON(http.StatusOK, models.TeamsResponse{
		Teams:      teams,
		TotalTeams: len(teams),
	})
}

// FormTeamsRequest optionally overrides the default team names.
type FormTeamsRequest struct {
	TeamNames []string `json:"team_names"`
	Force     bool     `json:"force"` // re-run even if teams were already formed
}

// FormTeams runs the snake draft and persists the assignments (admin only).
func FormTeams(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req FormTeamsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	ctx := c.Request.Context()

	cfg, err := store.LoadConfig(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load config", "details": err.Error()})
		return
	}
	if cfg.TeamsFormed && !req.Force {
		c.JSON(http.StatusConflict, gin.H{"error": "Teams have already been formed"})
		return
	}

	participants, err := store.ListParticipants(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load participants", "details": err.Error()})
		return
	}
	if len(participants) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No participants to draft"})
		return
	}

	names := req.TeamNames
	if len(names) == 0 {
		names = challenge.DefaultTeamNames
	}

	draft := challenge.SnakeDraft(participants, names)
	summary := make([]gin.H, 0, len(draft))

	for _, team := range draft {
		teamName := team.Name
		total := 0
		for _, member := range team.Members {
			if err := store.SetTeam(ctx, member.ID, &teamName); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign team", "details": err.Error()})
				return
			}
			total += member.TotalSteps
		}
		summary = append(summary, gin.H{
			"name":        teamName,
			"members":     len(team.Members),
			"total_steps": total,
		})
	}

	if err := store.SetTeamsFormed(ctx, true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record team formation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Teams formed successfully",
		"teams":   summary,
	})
}
