package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

// UpsertWildcardResult stores a day's wildcard winner, overwriting any
// existing result for that date. One result per calendar day, always.
func (s *Store) UpsertWildcardResult(ctx context.Context, r models.WildcardResult) error {
	query := `
		INSERT INTO wildcard_results (date, category, winner_id, winner_name, value, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (date) DO UPDATE SET
			category = EXCLUDED.category,
			winner_id = EXCLUDED.winner_id,
			winner_name = EXCLUDED.winner_name,
			value = EXCLUDED.value,
			description = EXCLUDED.description
	`
	_, err := s.pool.Exec(ctx, query, r.Date, r.Category, r.WinnerID, r.WinnerName, r.Value, r.Description)
	if err != nil {
		return fmt.Errorf("failed to upsert wildcard result: %w", err)
	}
	return nil
}

// ListWildcardResults returns all stored results, newest date first.
func (s *Store) ListWildcardResults(ctx context.Context) ([]models.WildcardResult, error) {
	query := `
		SELECT date::text, category, winner_id, winner_name, value, description, created_at
		FROM wildcard_results
		ORDER BY date DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query wildcard results: %w", err)
	}
	defer rows.Close()

	var results []models.WildcardResult
	for rows.Next() {
		var r models.WildcardResult
		if err := rows.Scan(&r.Date, &r.Category, &r.WinnerID, &r.WinnerName, &r.Value, &r.Description, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wildcard result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetWildcardByDate returns the result for one day, or nil when none exists.
func (s *Store) GetWildcardByDate(ctx context.Context, date string) (*models.WildcardResult, error) {
	query := `
		SELECT date::text, category, winner_id, winner_name, value, description, created_at
		FROM wildcard_results
		WHERE date = $1
	`

	var r models.WildcardResult
	err := s.pool.QueryRow(ctx, query, date).Scan(
		&r.Date, &r.Category, &r.WinnerID, &r.WinnerName, &r.Value, &r.Description, &r.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query wildcard result: %w", err)
	}
	return &r, nil
}
