package service

import (
	"context"

	"github.com/pageza/recipefinder/internal/model"
)

// EmbedderInterface turns an ordered batch of texts into one embedding
// vector per text. Implementations may batch or cache internally; callers
// only rely on the call being idempotent and on the returned slice matching
// the input length.
type EmbedderInterface interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// CatalogProvider supplies the read-only recipe snapshot a search call
// operates on. The returned slice must be stable for the duration of the
// call; implementations hand out fresh snapshots rather than mutating a
// shared one.
type CatalogProvider interface {
	GetAllRecipes(ctx context.Context) ([]model.Recipe, error)
}

// EmbeddingCache stores embedding vectors keyed by normalized ingredient
// text. Implementations must tolerate concurrent readers and writers;
// redundant recomputation on a racing first write is acceptable.
type EmbeddingCache interface {
	Get(ctx context.Context, key string) ([]float32, bool)
	Set(ctx context.Context, key string, vector []float32)
}

// ISearchService defines the single operation the HTTP layer consumes.
type ISearchService interface {
	Search(ctx context.Context, ingredients []string, topK int, threshold float64, useHybrid bool) ([]MatchResult, int, error)
}

// IParsingService extracts an ingredient list (and free-form preferences)
// from natural-language user input. The search engine only consumes its
// output.
type IParsingService interface {
	ParseUserInput(ctx context.Context, userInput string) (ingredients []string, preferences []string, err error)
}
