package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration settings.
type Config struct {
	Port              string `yaml:"port"`
	DatabaseURL       string `yaml:"database_url"`
	JWTSecret         string `yaml:"jwt_secret"`
	JWTIssuer         string `yaml:"jwt_issuer"`
	AdminPasswordHash string `yaml:"admin_password_hash"` // bcrypt
}

// Load reads the configuration from a YAML file, falling back to environment
// variables when the file is absent.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return loadFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, cfg.validate()
}

func loadFromEnv() (*Config, error) {
	cfg := Config{
		Port:              os.Getenv("PORT"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTIssuer:         os.Getenv("JWT_ISSUER"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.JWTIssuer == "" {
		c.JWTIssuer = "walking-challenge"
	}
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required (set DATABASE_URL)")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required (set JWT_SECRET)")
	}
	if c.AdminPasswordHash == "" {
		return fmt.Errorf("admin_password_hash is required (set ADMIN_PASSWORD_HASH)")
	}
	return nil
}
