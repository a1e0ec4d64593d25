package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/database"
	"github.com/jlouisugbo/walking-challenge/internal/importer"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
)

// ImportRequest carries pasted bulk-import text.
type ImportRequest struct {
	Text   string `json:"text" binding:"required"`
	Format string `json:"format"` // "csv" (default) or "pacer"
}

func parseEntries(req ImportRequest) ([]importer.Entry, []string, bool) {
	switch req.Format {
	case "pacer":
		result := importer.ParsePacer(req.Text)
		entries := make([]importer.Entry, 0, len(result.Entries))
		for _, e := range result.Entries {
			entries = append(entries, importer.Entry{Name: e.Name, Steps: e.Steps})
		}
		return entries, result.Errors, result.Success
	default:
		result := importer.ParseCSV(req.Text)
		return result.Entries, result.Errors, result.Success
	}
}

// PreviewImport parses pasted text and classifies each row against the
// current roster without changing anything (admin only).
func PreviewImport(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entries, parseErrors, success := parseEntries(req)
	if !success {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse import", "errors": parseErrors})
		return
	}

	roster, err := store.ListParticipants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load participants", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"preview": importer.BuildPreview(entries, roster),
		"errors":  parseErrors,
	})
}

// ApplyImport parses pasted text and applies it: new names become
// participants (their daily tracking starts with the next import), existing
// participants get the new total plus a daily-history increment for today
// (admin only).
func ApplyImport(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entries, parseErrors, success := parseEntries(req)
	if !success {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse import", "errors": parseErrors})
		return
	}

	ctx := c.Request.Context()

	roster, err := store.ListParticipants(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load participants", "details": err.Error()})
		return
	}

	today := time.Now().Format(challenge.DayFormat)
	created, updated, unchanged := 0, 0, 0

	for _, preview := range importer.BuildPreview(entries, roster) {
		switch preview.Status {
		case importer.StatusNew:
			if _, err := store.CreateParticipant(ctx, preview.Name, preview.NewSteps, nil); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create participant", "details": err.Error()})
				return
			}
			created++
		case importer.StatusUpdate:
			steps := preview.NewSteps
			err := store.UpdateParticipant(ctx, *preview.ParticipantID, database.ParticipantUpdate{TotalSteps: &steps})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update participant", "details": err.Error()})
				return
			}
			if preview.Change != 0 {
				if err := store.UpsertDailyHistory(ctx, *preview.ParticipantID, today, preview.Change); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save daily history", "details": err.Error()})
					return
				}
			}
			updated++
		default:
			unchanged++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Import applied successfully",
		"date":      today,
		"created":   created,
		"updated":   updated,
		"unchanged": unchanged,
		"errors":    parseErrors,
	})
}

// ImportHistorical applies a date-headed historical paste: each block upserts
// daily-history entries for its date for participants matched by name
// (admin only). Unknown names are reported, not created; historical data for
// people who never joined is noise.
func ImportHistorical(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	imports := importer.ParseHistoricalCSV(req.Text)
	if len(imports) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No dated entries found in paste"})
		return
	}

	ctx := c.Request.Context()

	roster, err := store.ListParticipants(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load participants", "details": err.Error()})
		return
	}

	applied := 0
	var unknown []string

	for _, block := range imports {
		for _, preview := range importer.BuildPreview(block.Entries, roster) {
			if preview.ParticipantID == nil {
				unknown = append(unknown, preview.Name)
				continue
			}
			if err := store.UpsertDailyHistory(ctx, *preview.ParticipantID, block.Date, preview.NewSteps); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save daily history", "details": err.Error()})
				return
			}
			applied++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Historical import applied",
		"dates":   len(imports),
		"applied": applied,
		"unknown": unknown,
	})
}
