package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// ListParticipants returns every participant ordered by total steps
// descending, with daily history attached newest first.
func (s *Store) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	query := `
		SELECT id, name, total_steps, points, team, notes, created_at, updated_at
		FROM participants
		ORDER BY total_steps DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.TotalSteps, &p.Points, &p.Team, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		index[p.ID] = len(participants)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	historyQuery := `
		SELECT participant_id, date::text, steps, created_at
		FROM daily_history
		ORDER BY date DESC
	`

	hrows, err := s.pool.Query(ctx, historyQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily history: %w", err)
	}
	defer hrows.Close()

	for hrows.Next() {
		var (
			pid   uuid.UUID
			entry models.DailyStep
		)
		if err := hrows.Scan(&pid, &entry.Date, &entry.Steps, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan daily history: %w", err)
		}
		if i, ok := index[pid]; ok {
			participants[i].DailyHistory = append(participants[i].DailyHistory, entry)
		}
	}
	if err := hrows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// GetParticipant returns one participant with history, or pgx.ErrNoRows.
func (s *Store) GetParticipant(ctx context.Context, id uuid.UUID) (*models.Participant, error) {
	query := `
		SELECT id, name, total_steps, points, team, notes, created_at, updated_at
		FROM participants
		WHERE id = $1
	`

	var p models.Participant
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.TotalSteps, &p.Points, &p.Team, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT date::text, steps, created_at FROM daily_history WHERE participant_id = $1 ORDER BY date DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.DailyStep
		if err := rows.Scan(&entry.Date, &entry.Steps, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan daily history: %w", err)
		}
		p.DailyHistory = append(p.DailyHistory, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}

// CreateParticipant inserts a new participant and returns the stored record.
func (s *Store) CreateParticipant(ctx context.Context, name string, steps int, team *string) (*models.Participant, error) {
	query := `
		INSERT INTO participants (id, name, total_steps, points, team, notes, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, '', NOW(), NOW())
		RETURNING id, name, total_steps, points, team, notes, created_at, updated_at
	`

	var p models.Participant
	err := s.pool.QueryRow(ctx, query, uuid.New(), strings.TrimSpace(name), steps, team).Scan(
		&p.ID, &p.Name, &p.TotalSteps, &p.Points, &p.Team, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	return &p, nil
}

// ParticipantUpdate carries optional field updates; nil fields are untouched.
type ParticipantUpdate struct {
	Name       *string
	TotalSteps *int
	Points     *int
	Team       *string
	TeamSet    bool // distinguishes "clear team" from "leave team alone"
	Notes      *string
}

// UpdateParticipant applies the non-nil fields of the update.
func (s *Store) UpdateParticipant(ctx context.Context, id uuid.UUID, upd ParticipantUpdate) error {
	sets := []string{"updated_at = NOW()"}
	params := []interface{}{id}

	add := func(column string, value interface{}) {
		params = append(params, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(params)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.TotalSteps != nil {
		add("total_steps", *upd.TotalSteps)
	}
	if upd.Points != nil {
		add("points", *upd.Points)
	}
	if upd.TeamSet {
		add("team", upd.Team)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}

	query := fmt.Sprintf("UPDATE participants SET %s WHERE id = $1", strings.Join(sets, ", "))
	tag, err := s.pool.Exec(ctx, query, params...)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteParticipant removes a participant and (via FK cascade) their history.
func (s *Store) DeleteParticipant(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AwardPoint increments a participant's wildcard points by one.
func (s *Store) AwardPoint(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE participants SET points = points + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to award point: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetTeam assigns (or clears, with nil) a participant's team.
func (s *Store) SetTeam(ctx context.Context, id uuid.UUID, team *string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE participants SET team = $2, updated_at = NOW() WHERE id = $1`, id, team)
	if err != nil {
		return fmt.Errorf("failed to set team: %w", err)
	}
	return nil
}

// UpsertDailyHistory records a participant's steps for one calendar day,
// overwriting any existing entry for that day.
func (s *Store) UpsertDailyHistory(ctx context.Context, id uuid.UUID, date string, steps int) error {
	query := `
		INSERT INTO daily_history (participant_id, date, steps, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (participant_id, date) DO UPDATE SET steps = EXCLUDED.steps
	`
	if _, err := s.pool.Exec(ctx, query, id, date, steps); err != nil {
		return fmt.Errorf("failed to upsert daily history: %w", err)
	}
	return nil
}
