package importer

import (
	"fmt"
	"strconv"
	"strings"
)

// PacerEntry is one row from a pasted Pacer leaderboard.
type PacerEntry struct {
	Name  string `json:"name"`
	Steps int    `json:"steps"`
	Rank  int    `json:"rank"`
}

// PacerResult reports parsed Pacer entries alongside per-entry errors.
type PacerResult struct {
	Success bool         `json:"success"`
	Entries []PacerEntry `json:"entries"`
	Errors  []string     `json:"errors"`
}

// ParsePacer parses the Pacer leaderboard paste format: line triples of
// name, steps (with comma separators), and rank.
func ParsePacer(text string) PacerResult {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return PacerResult{Errors: []string{"No data to parse. Please paste the Pacer leaderboard."}}
	}

	var result PacerResult
	for i := 0; i < len(lines); i += 3 {
		if i+2 >= len(lines) {
			result.Errors = append(result.Errors, fmt.Sprintf("Incomplete entry at line %d", i+1))
			break
		}

		name := lines[i]
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid name at line %d", i+1))
			continue
		}

		steps, err := strconv.Atoi(strings.ReplaceAll(lines[i+1], ",", ""))
		if err != nil || steps < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid steps %q for %s", lines[i+1], name))
			continue
		}

		rank, err := strconv.Atoi(lines[i+2])
		if err != nil || rank < 1 {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid rank %q for %s", lines[i+2], name))
			continue
		}

		result.Entries = append(result.Entries, PacerEntry{Name: name, Steps: steps, Rank: rank})
	}

	if len(result.Entries) == 0 && len(result.Errors) > 0 {
		return PacerResult{Errors: result.Errors}
	}

	result.Success = true
	return result
}
