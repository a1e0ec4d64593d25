package wildcard

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

func TestActiveFrom(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.StartDate = "2025-11-10"

	cfg.HeatWeekEnabled = true
	from, err := ActiveFrom(cfg)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-17", from)

	cfg.HeatWeekEnabled = false
	from, err = ActiveFrom(cfg)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-10", from)

	cfg.StartDate = "garbage"
	_, err = ActiveFrom(cfg)
	assert.Error(t, err)
}

func TestMissingDates(t *testing.T) {
	now := time.Date(2025, 11, 21, 9, 0, 0, 0, time.UTC)
	existing := []models.WildcardResult{
		{Date: "2025-11-17"},
		{Date: "2025-11-19"},
	}

	missing := MissingDates(existing, "2025-11-17", now)
	assert.Equal(t, []string{"2025-11-18", "2025-11-20"}, missing)
}

func TestMissingDatesExcludesToday(t *testing.T) {
	now := time.Date(2025, 11, 18, 23, 59, 0, 0, time.UTC)

	missing := MissingDates(nil, "2025-11-17", now)
	assert.Equal(t, []string{"2025-11-17"}, missing)
}

func TestMissingDatesNothingToDo(t *testing.T) {
	now := time.Date(2025, 11, 17, 9, 0, 0, 0, time.UTC)

	// active-from is today, so yesterday precedes the range entirely
	assert.Empty(t, MissingDates(nil, "2025-11-17", now))
	assert.Nil(t, MissingDates(nil, "garbage", now))
}

func TestRandomCategory(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	seen := make(map[models.WildcardCategory]bool)
	for i := 0; i < 200; i++ {
		c := RandomCategory(r)
		_, known := Categories[c]
		require.True(t, known, "unknown category %q", c)
		seen[c] = true
	}
	// with 200 draws every category should appear
	assert.Len(t, seen, len(AllCategories))
}

func TestCategoryMetadataComplete(t *testing.T) {
	for _, c := range AllCategories {
		info, ok := Categories[c]
		require.True(t, ok, "missing metadata for %q", c)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}
}
