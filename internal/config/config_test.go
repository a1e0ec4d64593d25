package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
port: "9090"
database_url: "postgres://localhost/challenge"
jwt_secret: "file-secret"
admin_password_hash: "$2a$10$abcdefghijklmnopqrstuv"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/challenge", cfg.DatabaseURL)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	// defaulted
	assert.Equal(t, "walking-challenge", cfg.JWTIssuer)
}

func TestLoadFromEnvWhenFileAbsent(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/envdb")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_ISSUER", "custom-issuer")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost/envdb", cfg.DatabaseURL)
	assert.Equal(t, "custom-issuer", cfg.JWTIssuer)
}

func TestLoadMissingRequiredFields(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database_url")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
