package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePacer(t *testing.T) {
	text := `
Alice
57,323
1

Bob
42,100
2
`
	result := ParsePacer(text)
	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, PacerEntry{Name: "Alice", Steps: 57323, Rank: 1}, result.Entries[0])
	assert.Equal(t, PacerEntry{Name: "Bob", Steps: 42100, Rank: 2}, result.Entries[1])
}

func TestParsePacerBadTriples(t *testing.T) {
	text := `
Alice
not-steps
1
Bob
42,100
2
`
	result := ParsePacer(text)
	assert.True(t, result.Success)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Bob", result.Entries[0].Name)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Invalid steps")
}

func TestParsePacerIncompleteTrailingEntry(t *testing.T) {
	result := ParsePacer("Alice\n57,323\n1\nBob\n42,100")
	assert.True(t, result.Success)
	require.Len(t, result.Entries, 1)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Incomplete entry")
}

func TestParsePacerBadRank(t *testing.T) {
	result := ParsePacer("Alice\n57,323\nzero")
	assert.False(t, result.Success)
	assert.Empty(t, result.Entries)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Invalid rank")
}

func TestParsePacerEmptyInput(t *testing.T) {
	result := ParsePacer("")
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "No data to parse")
}
