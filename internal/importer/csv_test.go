package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	text := `
Alice, 57,323
Bob, 12.500
Carol,9000
`
	result := ParseCSV(text)
	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, Entry{Name: "Alice", Steps: 57323}, result.Entries[0])
	assert.Equal(t, Entry{Name: "Bob", Steps: 12500}, result.Entries[1])
	assert.Equal(t, Entry{Name: "Carol", Steps: 9000}, result.Entries[2])
}

func TestParseCSVPerLineErrors(t *testing.T) {
	text := `
Alice, 1000
just-a-name
, 2000
Bob, lots
Carol, 3000
`
	result := ParseCSV(text)
	assert.True(t, result.Success)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "Alice", result.Entries[0].Name)
	assert.Equal(t, "Carol", result.Entries[1].Name)

	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "Line 2")
	assert.Contains(t, result.Errors[1], "Line 3")
	assert.Contains(t, result.Errors[2], "Line 4")
}

func TestParseCSVEmptyInput(t *testing.T) {
	result := ParseCSV("   \n \n")
	assert.False(t, result.Success)
	assert.Empty(t, result.Entries)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "No data to parse")
}

func TestParseCSVAllLinesBad(t *testing.T) {
	result := ParseCSV("oops\nstill bad")
	assert.False(t, result.Success)
	assert.Empty(t, result.Entries)
	assert.Len(t, result.Errors, 2)
}

func TestParseHistoricalCSV(t *testing.T) {
	text := `
2025-11-18
Alice, 10,000
Bob, 8000

11/19/2025
Alice, 12000
`
	imports := ParseHistoricalCSV(text)
	require.Len(t, imports, 2)

	assert.Equal(t, "2025-11-18", imports[0].Date)
	require.Len(t, imports[0].Entries, 2)
	assert.Equal(t, Entry{Name: "Alice", Steps: 10000}, imports[0].Entries[0])
	assert.Equal(t, Entry{Name: "Bob", Steps: 8000}, imports[0].Entries[1])

	assert.Equal(t, "2025-11-19", imports[1].Date)
	require.Len(t, imports[1].Entries, 1)
}

func TestParseHistoricalCSVPadsSlashDates(t *testing.T) {
	imports := ParseHistoricalCSV("1/2/2025\nAlice, 100")
	require.Len(t, imports, 1)
	assert.Equal(t, "2025-01-02", imports[0].Date)
}

func TestParseHistoricalCSVSkipsStrayLines(t *testing.T) {
	text := `
Alice, 5000
2025-11-18
not a row
Bob, 7000
`
	// the first entry precedes any date header and is dropped
	imports := ParseHistoricalCSV(text)
	require.Len(t, imports, 1)
	assert.Equal(t, "2025-11-18", imports[0].Date)
	require.Len(t, imports[0].Entries, 1)
	assert.Equal(t, "Bob", imports[0].Entries[0].Name)
}

func TestParseHistoricalCSVDateWithNoRows(t *testing.T) {
	// only the second block has rows; the empty first block is dropped
	imports := ParseHistoricalCSV("2025-11-18\n2025-11-19\nAlice, 100")
	require.Len(t, imports, 1)
	assert.Equal(t, "2025-11-19", imports[0].Date)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-11-18", normalizeDate("2025-11-18"))
	assert.Equal(t, "2025-01-02", normalizeDate("1/2/2025"))
	assert.Equal(t, "2025-11-19", normalizeDate("11/19/2025"))
}
