package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/challenge"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
	"github.com/jlouisugbo/walking-challenge/internal/wildcard"
)

// GetWildcards returns all stored wildcard results, newest first.
func GetWildcards(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	results, err := store.ListWildcardResults(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wildcard results", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":    results,
		"count":      len(results),
		"categories": wildcard.Categories,
	})
}

// GetTodaysWildcard returns today's result, or 204 when none exists yet.
func GetTodaysWildcard(c *gin.Context) {
	store, ok := middleware.GetStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	today := time.Now().Format(challenge.DayFormat)
	result, err := store.GetWildcardByDate(c.Request.Context(), today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wildcard result", "details": err.Error()})
		return
	}
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RunWildcards backfills wildcard winners for every missing day between the
// wildcard activation date and yesterday (admin only). Each missing day gets
// a uniformly random category; days with no qualifying participant are
// skipped. Results persist one per date, and each winner earns a point.
func RunWildcards(c *gin.Context) {
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

	activeFrom, err := wildcard.ActiveFrom(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid challenge start date", "details": err.Error()})
		return
	}

	existing, err := store.ListWildcardResults(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wildcard results", "details": err.Error()})
		return
	}

	missing := wildcard.MissingDates(existing, activeFrom, time.Now())
	if len(missing) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "All wildcards up to date", "processed": 0})
		return
	}

	participants, err := store.ListParticipants(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load participants", "details": err.Error()})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	processed := 0
	skipped := 0
	var winners []gin.H

	for _, date := range missing {
		category := wildcard.RandomCategory(rng)
		result := wildcard.Pick(category, participants, date)
		if result == nil {
			skipped++
			continue
		}

		if err := store.UpsertWildcardResult(ctx, *result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save wildcard result", "details": err.Error()})
			return
		}
		if err := store.AwardPoint(ctx, result.WinnerID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award point", "details": err.Error()})
			return
		}

		processed++
		winners = append(winners, gin.H{
			"date":     result.Date,
			"category": result.Category,
			"winner":   result.WinnerName,
			"value":    result.Value,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Wildcard backfill complete",
		"processed": processed,
		"skipped":   skipped,
		"winners":   winners,
	})
}
