package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Weekly70KCounts returns, per participant, how many weeks they achieved the
// 70k weekly goal.
func (s *Store) Weekly70KCounts(ctx context.Context) (map[uuid.UUID]int, error) {
	query := `
		SELECT participant_id, COUNT(*)
		FROM weekly_milestones
		WHERE achieved_70k = true
		GROUP BY participant_id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly milestones: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id    uuid.UUID
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan weekly milestone count: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

// UpsertWeeklyMilestone records one participant's result for one challenge
// week, overwriting an existing row for the same week.
func (s *Store) UpsertWeeklyMilestone(ctx context.Context, participantID uuid.UUID, weekStart, weekEnd string, totalSteps int, achieved70k bool) error {
	query := `
		INSERT INTO weekly_milestones (participant_id, week_start, week_end, total_steps, achieved_70k)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (participant_id, week_start) DO UPDATE SET
			week_end = EXCLUDED.week_end,
			total_steps = EXCLUDED.total_steps,
			achieved_70k = EXCLUDED.achieved_70k
	`
	if _, err := s.pool.Exec(ctx, query, participantID, weekStart, weekEnd, totalSteps, achieved70k); err != nil {
		return fmt.Errorf("failed to upsert weekly milestone: %w", err)
	}
	return nil
}
