// Package importer parses the bulk-import text formats admins paste into the
// dashboard: simple "Name, Steps" CSV, date-headed historical CSV, and the
// Pacer leaderboard export. Bad lines are collected as per-line error strings
// rather than aborting the whole paste.
package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one parsed name/steps pair.
type Entry struct {
	Name  string `json:"name"`
	Steps int    `json:"steps"`
}

// ParseResult reports parsed entries alongside per-line errors.
type ParseResult struct {
	Success bool     `json:"success"`
	Entries []Entry  `json:"entries"`
	Errors  []string `json:"errors"`
}

// HistoricalImport is one date's worth of entries from a historical paste.
type HistoricalImport struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Entries []Entry `json:"entries"`
}

var separators = regexp.MustCompile(`[.,]`)

// ParseCSV parses "Name, Steps" lines. Step values may carry comma or period
// thousands separators ("57,323" and "57.323" both mean 57323).
func ParseCSV(text string) ParseResult {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return ParseResult{Errors: []string{"No data to parse. Please paste CSV data."}}
	}

	var result ParseResult
	for i, line := range lines {
		parts := strings.Split(line, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 2 {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid format. Expected \"Name, Steps\"", i+1))
			continue
		}

		name := parts[0]
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid name", i+1))
			continue
		}

		// Rejoin the remaining fields: the steps value itself may have been
		// split on its thousands separators.
		raw := strings.Join(parts[1:], "")
		steps, err := strconv.Atoi(separators.ReplaceAllString(raw, ""))
		if err != nil || steps < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid steps %q for %s", i+1, strings.Join(parts[1:], ","), name))
			continue
		}

		result.Entries = append(result.Entries, Entry{Name: name, Steps: steps})
	}

	result.Success = len(result.Entries) > 0
	return result
}

var dateLine = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4})$`)

// ParseHistoricalCSV parses blocks of "Name, Steps" lines headed by a date
// line (YYYY-MM-DD or M/D/YYYY). Lines that parse as neither are skipped.
func ParseHistoricalCSV(text string) []HistoricalImport {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil
	}

	var imports []HistoricalImport
	currentDate := ""
	var current []Entry

	flush := func() {
		if currentDate != "" && len(current) > 0 {
			imports = append(imports, HistoricalImport{Date: currentDate, Entries: current})
		}
		current = nil
	}

	for _, line := range lines {
		if m := dateLine.FindStringSubmatch(line); m != nil {
			flush()
			currentDate = normalizeDate(m[1])
			continue
		}

		parts := strings.Split(line, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 2 || parts[0] == "" {
			continue
		}
		raw := strings.Join(parts[1:], "")
		steps, err := strconv.Atoi(separators.ReplaceAllString(raw, ""))
		if err != nil || steps < 0 {
			continue
		}
		current = append(current, Entry{Name: parts[0], Steps: steps})
	}
	flush()

	return imports
}

// normalizeDate converts M/D/YYYY to YYYY-MM-DD; ISO dates pass through.
func normalizeDate(date string) string {
	if !strings.Contains(date, "/") {
		return date
	}
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[0]), pad2(parts[1]))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
