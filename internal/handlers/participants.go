package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/database"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
)

// GetParticipant returns one participant's full leaderboard view, including
// streak, badges and day-over-day rank change.
func GetParticipant(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format"})
		return
	}

	ranked, _, _, err := loadRanked(c, store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load participant", "details": err.Error()})
		return
	}

	for _, rp := range ranked {
		if rp.ID == id {
			c.JSON(http.StatusOK, rp)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
}

// CreateParticipantRequest is the admin payload for adding a participant.
type CreateParticipantRequest struct {
	Name  string  `json:"name" binding:"required"`
	Steps int     `json:"steps"`
	Team  *string `json:"team"`
}

// CreateParticipant adds a new participant (admin only).
func CreateParticipant(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if req.Steps < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Steps must be non-negative"})
		return
	}

	p, err := store.CreateParticipant(c.Request.Context(), req.Name, req.Steps, req.Team)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create participant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// UpdateParticipantRequest carries optional participant field updates.
type UpdateParticipantRequest struct {
	Name       *string `json:"name"`
	TotalSteps *int    `json:"total_steps"`
	Points     *int    `json:"points"`
	Team       *string `json:"team"`
	ClearTeam  bool    `json:"clear_team"`
	Notes      *string `json:"notes"`
}

// UpdateParticipant updates participant fields (admin only).
func UpdateParticipant(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format"})
		return
	}

	var req UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.TotalSteps != nil && *req.TotalSteps < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Steps must be non-negative"})
		return
	}

	upd := database.ParticipantUpdate{
		Name:       req.Name,
		TotalSteps: req.TotalSteps,
		Points:     req.Points,
		Notes:      req.Notes,
	}
	if req.Team != nil || req.ClearTeam {
		upd.TeamSet = true
		if !req.ClearTeam {
			upd.Team = req.Team
		}
	}

	if err := store.UpdateParticipant(c.Request.Context(), id, upd); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update participant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant updated successfully"})
}

// DeleteParticipant removes a participant and their history (admin only).
func DeleteParticipant(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format"})
		return
	}

	if err := store.DeleteParticipant(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete participant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted successfully"})
}

// UpdateStepsRequest is the admin payload for a step update. TotalSteps
// replaces the cumulative total; Steps records a daily-history entry for Date
// (today when omitted). The two are deliberately independent: daily history
// may have started later than cumulative tracking.
type UpdateStepsRequest struct {
	TotalSteps *int   `json:"total_steps"`
	Steps      *int   `json:"steps"`
	Date       string `json:"date"`
}

// UpdateSteps applies a manual step update to one participant (admin only).
func UpdateSteps(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format"})
		return
	}

	var req UpdateStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.TotalSteps == nil && req.Steps == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide total_steps and/or steps"})
		return
	}
	if (req.TotalSteps != nil && *req.TotalSteps < 0) || (req.Steps != nil && *req.Steps < 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Steps must be non-negative"})
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(challenge.DayFormat)
	} else if _, err := time.Parse(challenge.DayFormat, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()

	if req.TotalSteps != nil {
		err := store.UpdateParticipant(ctx, id, database.ParticipantUpdate{TotalSteps: req.TotalSteps})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update steps", "details": err.Error()})
			return
		}
	}

	if req.Steps != nil {
		if err := store.UpsertDailyHistory(ctx, id, date, *req.Steps); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save daily history", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Steps updated successfully", "date": date})
}
