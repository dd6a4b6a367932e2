package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the configuration is internally consistent
// before anything connects with it.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return fmt.Errorf("postgres driver requires DB_HOST, DB_PORT, DB_USER and DB_NAME")
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			return fmt.Errorf("sqlite driver requires SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.SemanticWeight < 0 || cfg.KeywordWeight < 0 {
		return fmt.Errorf("search weights must be non-negative")
	}
	if cfg.SemanticWeight == 0 && cfg.KeywordWeight == 0 {
		return fmt.Errorf("at least one search weight must be positive")
	}

	return nil
}
