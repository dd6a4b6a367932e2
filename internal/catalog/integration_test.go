package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipefinder/internal/service"
	"github.com/pageza/recipefinder/internal/testhelpers"
)

func TestGormCatalogPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupTestDatabase(t)
	store := NewGormCatalog(db)
	ctx := context.Background()

	require.NoError(t, SeedEmbedded(ctx, store))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(EmbeddedRecipes)), count)

	recipe, err := store.GetRecipe(ctx, EmbeddedRecipes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, EmbeddedRecipes[0].Title, recipe.Title)

	// the vector column survives a write and read back
	embedding := make([]float32, service.EmbeddingDimension)
	embedding[0] = 0.25
	embedding[1] = -0.5
	require.NoError(t, store.SaveEmbedding(ctx, recipe.ID, embedding))

	reloaded, err := store.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	stored := reloaded.Embedding.Slice()
	require.Len(t, stored, service.EmbeddingDimension)
	assert.InDelta(t, 0.25, stored[0], 1e-6)
	assert.InDelta(t, -0.5, stored[1], 1e-6)
}
