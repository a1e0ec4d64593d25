package challenge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

func TestCompletedWeeks(t *testing.T) {
	start := "2025-11-10"

	t.Run("no week complete yet", func(t *testing.T) {
		// day 6 of week one: the week ends today, still running
		now := time.Date(2025, 11, 16, 12, 0, 0, 0, time.UTC)
		assert.Empty(t, CompletedWeeks(start, now))
	})

	t.Run("first week complete", func(t *testing.T) {
		now := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
		weeks := CompletedWeeks(start, now)
		require.Len(t, weeks, 1)
		assert.Equal(t, WeekWindow{Start: "2025-11-10", End: "2025-11-16"}, weeks[0])
	})

	t.Run("three weeks in", func(t *testing.T) {
		now := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
		weeks := CompletedWeeks(start, now)
		require.Len(t, weeks, 3)
		assert.Equal(t, "2025-11-24", weeks[2].Start)
		assert.Equal(t, "2025-11-30", weeks[2].End)
	})

	t.Run("bad start date", func(t *testing.T) {
		assert.Nil(t, CompletedWeeks("garbage", time.Now()))
	})
}

func TestStepsBetween(t *testing.T) {
	p := models.Participant{DailyHistory: []models.DailyStep{
		day("2025-11-09", 9999),
		day("2025-11-10", 10000),
		day("2025-11-13", 12000),
		day("2025-11-16", 8000),
		day("2025-11-17", 50000),
	}}

	assert.Equal(t, 30000, StepsBetween(p, "2025-11-10", "2025-11-16"))
	assert.Equal(t, 0, StepsBetween(p, "2025-11-18", "2025-11-24"))
}
