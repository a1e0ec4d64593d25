package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jlouisugbo/walking-challenge/internal/models"
)

const (
	configKeyMain        = "main_config"
	configKeyTeamsFormed = "teams_formed"
)

// LoadConfig returns the stored challenge configuration, falling back to the
// defaults when no admin has saved one yet. The teams-formed flag lives under
// its own key so automation can flip it without rewriting the whole config.
func (s *Store) LoadConfig(ctx context.Context) (models.ChallengeConfig, error) {
	cfg := models.DefaultConfig()

	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM challenge_config WHERE key = $1`, configKeyMain).Scan(&raw)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	var formed []byte
	err = s.pool.QueryRow(ctx,
		`SELECT value FROM challenge_config WHERE key = $1`, configKeyTeamsFormed).Scan(&formed)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return cfg, fmt.Errorf("failed to load teams-formed flag: %w", err)
	}
	cfg.TeamsFormed = err == nil && string(formed) == `"true"`

	return cfg, nil
}

// SaveConfig stores the challenge configuration under the main config key.
func (s *Store) SaveConfig(ctx context.Context, cfg models.ChallengeConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return s.upsertConfigValue(ctx, configKeyMain, raw)
}

// SetTeamsFormed flips the teams-formed automation flag.
func (s *Store) SetTeamsFormed(ctx context.Context, formed bool) error {
	value := `"false"`
	if formed {
		value = `"true"`
	}
	return s.upsertConfigValue(ctx, configKeyTeamsFormed, []byte(value))
}

func (s *Store) upsertConfigValue(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO challenge_config (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save config value %s: %w", key, err)
	}
	return nil
}
