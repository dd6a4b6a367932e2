package database

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/recipefinder/internal/model"
)

// Migrate brings the schema up to date. On Postgres the pgvector extension
// must exist before the embedding column can be created.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to create vector extension: %w", err)
		}
	}

	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	return nil
}

// MigrateSQL runs the same migration over a raw database/sql connection,
// used by cmd/migrate against Postgres without going through GORM.
func MigrateSQL(db *sql.DB) error {
	statements := []string{
		"CREATE EXTENSION IF NOT EXISTS vector",
		`CREATE TABLE IF NOT EXISTS recipes (
			id VARCHAR(64) PRIMARY KEY,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ,
			deleted_at TIMESTAMPTZ,
			title VARCHAR(255) NOT NULL,
			ingredients JSONB NOT NULL DEFAULT '[]',
			steps JSONB NOT NULL DEFAULT '[]',
			embedding vector(1024)
		)`,
		"CREATE INDEX IF NOT EXISTS idx_recipes_deleted_at ON recipes (deleted_at)",
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration statement failed: %w", err)
		}
	}
	return nil
}
