package importer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// PreviewStatus classifies what applying an import row would do.
type PreviewStatus string

const (
	StatusUpdate    PreviewStatus = "update"
	StatusNew       PreviewStatus = "new"
	StatusUnchanged PreviewStatus = "unchanged"
)

// Preview is one row of an import preview shown to the admin before applying.
type Preview struct {
	Name          string        `json:"name"`
	OldSteps      int           `json:"old_steps"`
	NewSteps      int           `json:"new_steps"`
	Change        int           `json:"change"`
	Status        PreviewStatus `json:"status"`
	ParticipantID *uuid.UUID    `json:"participant_id,omitempty"`
}

// BuildPreview matches parsed entries against the current roster by
// case-insensitive name and classifies each as new, update or unchanged.
func BuildPreview(entries []Entry, roster []models.Participant) []Preview {
	byName := make(map[string]*models.Participant, len(roster))
	for i := range roster {
		byName[strings.ToLower(roster[i].Name)] = &roster[i]
	}

	previews := make([]Preview, 0, len(entries))
	for _, entry := range entries {
		existing := byName[strings.ToLower(entry.Name)]
		if existing == nil {
			previews = append(previews, Preview{
				Name:     entry.Name,
				NewSteps: entry.Steps,
				Change:   entry.Steps,
				Status:   StatusNew,
			})
			continue
		}

		change := entry.Steps - existing.TotalSteps
		status := StatusUpdate
		if change == 0 {
			status = StatusUnchanged
		}
		id := existing.ID
		previews = append(previews, Preview{
			Name:          entry.Name,
			OldSteps:      existing.TotalSteps,
			NewSteps:      entry.Steps,
			Change:        change,
			Status:        status,
			ParticipantID: &id,
		})
	}

	return previews
}
