package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipefinder/internal/catalog"
	"github.com/pageza/recipefinder/internal/model"
)

// stubEmbedder returns deterministic vectors from a fixed table, so hybrid
// rankings are reproducible without a network.
type stubEmbedder struct {
	vectors map[string][]float32
	calls   int
	err     error
}

func (s *stubEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	result := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := s.vectors[t]; ok {
			result[i] = v
		} else {
			result[i] = []float32{0, 0, 1}
		}
	}
	return result, nil
}

func testCatalog() CatalogProvider {
	return catalog.NewStaticCatalog([]model.Recipe{
		{
			ID:          "r1",
			Title:       "Chicken and Rice",
			Ingredients: model.StringArray{"chicken", "rice", "broccoli"},
		},
		{
			ID:          "r2",
			Title:       "Cheesy Pasta",
			Ingredients: model.StringArray{"pasta", "cheese", "tomato"},
		},
	})
}

func TestSearchKeywordScenario(t *testing.T) {
	svc := NewSearchService(testCatalog(), nil, DefaultWeights())

	results, total, err := svc.Search(context.Background(), []string{"chicken", "rice"}, 5, 0.3, false)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "r1", results[0].Recipe.ID)
	assert.Equal(t, []string{"chicken", "rice"}, results[0].MatchedIngredients)
	assert.Equal(t, []string{"broccoli"}, results[0].MissingIngredients)
	assert.InDelta(t, 2.0/3.0, results[0].MatchScore, 1e-9)
}

func TestSearchRanksBetterMatchFirst(t *testing.T) {
	svc := NewSearchService(testCatalog(), nil, DefaultWeights())

	results, total, err := svc.Search(context.Background(), []string{"chicken", "rice"}, 5, 0, false)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, "r1", results[0].Recipe.ID)
	assert.Equal(t, "r2", results[1].Recipe.ID)
	assert.Greater(t, results[0].MatchScore, results[1].MatchScore)
}

func TestSearchContainmentMatch(t *testing.T) {
	store := catalog.NewStaticCatalog([]model.Recipe{
		{ID: "r1", Title: "Bruschetta", Ingredients: model.StringArray{"cherry tomatoes", "bread"}},
	})
	svc := NewSearchService(store, nil, DefaultWeights())

	results, _, err := svc.Search(context.Background(), []string{"tomatoes"}, 5, 0, false)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].MatchedIngredients)
	assert.Contains(t, results[0].MatchedIngredients, "cherry tomato")
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewSearchService(testCatalog(), nil, DefaultWeights())

	results, total, err := svc.Search(context.Background(), nil, 5, 0.1, false)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, total)

	results, total, err = svc.Search(context.Background(), []string{"", "  "}, 5, 0.1, true)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, total)
}

func TestSearchEmptyCatalog(t *testing.T) {
	svc := NewSearchService(catalog.NewStaticCatalog(nil), nil, DefaultWeights())

	results, total, err := svc.Search(context.Background(), []string{"chicken"}, 5, 0, false)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, total)
}

func TestSearchTopKLaws(t *testing.T) {
	svc := NewSearchService(testCatalog(), nil, DefaultWeights())

	for _, k := range []int{-1, 0, 1, 2, 10} {
		results, total, err := svc.Search(context.Background(), []string{"chicken", "rice", "pasta"}, k, 0, false)
		require.NoError(t, err)
		if k <= 0 {
			assert.Empty(t, results, "topK=%d", k)
		} else {
			assert.LessOrEqual(t, len(results), k, "topK=%d", k)
		}
		// truncation never changes the pre-truncation count
		assert.Equal(t, 2, total, "topK=%d", k)
	}
}

func TestSearchThresholdMonotonic(t *testing.T) {
	svc := NewSearchService(testCatalog(), nil, DefaultWeights())

	prev := -1
	for _, threshold := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0, 1.5} {
		_, total, err := svc.Search(context.Background(), []string{"chicken", "rice"}, 10, threshold, false)
		require.NoError(t, err)
		if prev >= 0 {
			assert.LessOrEqual(t, total, prev, "threshold=%v", threshold)
		}
		prev = total
	}
}

func TestSearchTieBreaksByRecipeID(t *testing.T) {
	store := catalog.NewStaticCatalog([]model.Recipe{
		{ID: "r9", Title: "Roast B", Ingredients: model.StringArray{"chicken"}},
		{ID: "r1", Title: "Roast A", Ingredients: model.StringArray{"chicken"}},
	})
	svc := NewSearchService(store, nil, DefaultWeights())

	results, _, err := svc.Search(context.Background(), []string{"chicken"}, 5, 0, false)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "r1", results[0].Recipe.ID)
	assert.Equal(t, "r9", results[1].Recipe.ID)
}

func TestSearchDeterministic(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"chicken": {1, 0, 0},
		"rice":    {0, 1, 0},
	}}
	svc := NewSearchService(testCatalog(), embedder, DefaultWeights())

	first, firstTotal, err := svc.Search(context.Background(), []string{"chicken", "rice"}, 5, 0, true)
	require.NoError(t, err)
	second, secondTotal, err := svc.Search(context.Background(), []string{"chicken", "rice"}, 5, 0, true)
	require.NoError(t, err)

	assert.Equal(t, firstTotal, secondTotal)
	assert.Equal(t, first, second)
}

func TestSearchHybridFusesScores(t *testing.T) {
	// Identical vectors for matching terms, orthogonal otherwise.
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"chicken":  {1, 0, 0},
		"rice":     {0, 1, 0},
		"broccoli": {0, 0, 1},
		"pasta":    {0, 0, 1},
		"cheese":   {0, 0, 1},
		"tomato":   {0, 0, 1},
	}}
	svc := NewSearchService(testCatalog(), embedder, DefaultWeights())

	results, _, err := svc.Search(context.Background(), []string{"chicken", "rice"}, 5, 0, true)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "r1", results[0].Recipe.ID)

	// r1: semantic = (1 + 1 + 0) / 3, keyword = 2/3, fused = 0.5*2/3 + 0.5*2/3
	assert.InDelta(t, 2.0/3.0, results[0].MatchScore, 1e-9)
	// One embedding attempt covers both recipes
	assert.Equal(t, 1, embedder.calls)
}

func TestSearchWeightsAreTunable(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"chicken":  {1, 0, 0},
		"rice":     {1, 0, 0},
		"broccoli": {1, 0, 0},
	}}
	store := catalog.NewStaticCatalog([]model.Recipe{
		{ID: "r1", Title: "Chicken Bowl", Ingredients: model.StringArray{"chicken", "rice", "broccoli"}},
	})
	svc := NewSearchService(store, embedder, Weights{Semantic: 1, Keyword: 0})

	results, _, err := svc.Search(context.Background(), []string{"chicken"}, 5, 0, true)
	require.NoError(t, err)

	require.Len(t, results, 1)
	// pure semantic: every ingredient embeds identically to the query
	assert.InDelta(t, 1.0, results[0].MatchScore, 1e-9)
}

func TestSearchFallsBackWhenEmbedderFails(t *testing.T) {
	failing := &stubEmbedder{err: errors.New("rate limited")}
	hybrid := NewSearchService(testCatalog(), failing, DefaultWeights())
	keyword := NewSearchService(testCatalog(), nil, DefaultWeights())

	hybridResults, hybridTotal, err := hybrid.Search(context.Background(), []string{"chicken", "rice"}, 5, 0.3, true)
	require.NoError(t, err)
	keywordResults, keywordTotal, err := keyword.Search(context.Background(), []string{"chicken", "rice"}, 5, 0.3, false)
	require.NoError(t, err)

	assert.Equal(t, keywordTotal, hybridTotal)
	assert.Equal(t, keywordResults, hybridResults)
	// the adapter is tried exactly once per call
	assert.Equal(t, 1, failing.calls)
}

func TestSearchUseHybridFalseSkipsEmbedder(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{}}
	svc := NewSearchService(testCatalog(), embedder, DefaultWeights())

	_, _, err := svc.Search(context.Background(), []string{"chicken"}, 5, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 0, embedder.calls)
}
