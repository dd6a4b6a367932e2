package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// StringArray is a custom type for handling string arrays in JSONB
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a single entry in the recipe catalog. The embedding column holds
// the vector for the full ingredient text, written during catalog warm-up
// (cmd/seed_recipes -embeddings). Search scores per-ingredient vectors
// through the embedding cache and does not read this column; it exists for
// database-side ranking.
type Recipe struct {
	ID          string          `gorm:"size:64;primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Ingredients StringArray     `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       StringArray     `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Embedding   pgvector.Vector `gorm:"type:vector(1024)" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}
