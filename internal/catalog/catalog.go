// Package catalog provides the recipe stores a search call reads from.
package catalog

import (
	"context"
	"fmt"

	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipefinder/internal/model"
)

// GormCatalog stores recipes in a relational database via GORM.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a catalog backed by db.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetAllRecipes returns a snapshot of the whole catalog. Each call gets a
// fresh slice, so concurrent searches never observe a half-updated catalog.
func (c *GormCatalog) GetAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := c.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID.
func (c *GormCatalog) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := c.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ImportRecipes inserts or replaces recipes by ID and returns the number
// written.
func (c *GormCatalog) ImportRecipes(ctx context.Context, recipes []model.Recipe) (int, error) {
	if len(recipes) == 0 {
		return 0, nil
	}
	result := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&recipes)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to import recipes: %w", result.Error)
	}
	return len(recipes), nil
}

// Count returns the number of recipes in the catalog.
func (c *GormCatalog) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveEmbedding caches the whole-recipe embedding on the recipe row during
// catalog warm-up. The search path embeds individual ingredients instead and
// never reads this column.
func (c *GormCatalog) SaveEmbedding(ctx context.Context, id string, vector []float32) error {
	return c.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", id).
		Update("embedding", pgvector.NewVector(vector)).Error
}

// StaticCatalog serves a fixed, in-memory recipe list. It backs tests and
// the no-database development mode.
type StaticCatalog struct {
	recipes []model.Recipe
}

// NewStaticCatalog creates a catalog over the given recipes.
func NewStaticCatalog(recipes []model.Recipe) *StaticCatalog {
	return &StaticCatalog{recipes: recipes}
}

// GetAllRecipes returns a copy of the recipe list.
func (c *StaticCatalog) GetAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	snapshot := make([]model.Recipe, len(c.recipes))
	copy(snapshot, c.recipes)
	return snapshot, nil
}
