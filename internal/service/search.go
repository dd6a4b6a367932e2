package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/pageza/recipefinder/internal/ingredient"
	"github.com/pageza/recipefinder/internal/model"
)

// Weights controls how the semantic and keyword scores are fused. The two
// components are weighted equally by default; alternate weightings are
// injected rather than hard-wired so they stay testable.
type Weights struct {
	Semantic float64
	Keyword  float64
}

// DefaultWeights returns the standard 50/50 split.
func DefaultWeights() Weights {
	return Weights{Semantic: 0.5, Keyword: 0.5}
}

// MatchResult is a single ranked recommendation. It is constructed once per
// search call and never mutated afterwards.
type MatchResult struct {
	Recipe             model.Recipe `json:"recipe"`
	MatchScore         float64      `json:"match_score"`
	MatchedIngredients []string     `json:"matched_ingredients"`
	MissingIngredients []string     `json:"missing_ingredients"`
}

// SearchService ranks catalog recipes against a list of available
// ingredients, fusing embedding similarity with keyword overlap.
type SearchService struct {
	catalog      CatalogProvider
	embedder     EmbedderInterface
	weights      Weights
	embedTimeout time.Duration
}

// NewSearchService creates a SearchService. The embedder may be nil, in
// which case every search runs keyword-only.
func NewSearchService(catalog CatalogProvider, embedder EmbedderInterface, weights Weights) *SearchService {
	return &SearchService{
		catalog:      catalog,
		embedder:     embedder,
		weights:      weights,
		embedTimeout: defaultEmbeddingTimeout,
	}
}

// Search returns up to topK recipes whose fused score clears threshold,
// ordered by score descending, plus the number of recipes that cleared the
// threshold before truncation. A topK <= 0 yields an empty result. When
// useHybrid is false, or the embedding provider fails, scoring falls back
// to keyword overlap for the whole call.
func (s *SearchService) Search(ctx context.Context, ingredients []string, topK int, threshold float64, useHybrid bool) ([]MatchResult, int, error) {
	queryIngredients := ingredient.NormalizeAll(ingredients)

	recipes, err := s.catalog.GetAllRecipes(ctx)
	if err != nil {
		return nil, 0, err
	}

	normalized := make([][]string, len(recipes))
	for i := range recipes {
		normalized[i] = ingredient.NormalizeAll(recipes[i].Ingredients)
	}

	// One embedding attempt covers the entire call. If it fails, every
	// recipe is scored keyword-only; there is no per-recipe retry.
	var vectors map[string][]float32
	if useHybrid && s.embedder != nil && len(queryIngredients) > 0 {
		vectors = s.embedIngredients(ctx, queryIngredients, normalized)
	}

	var results []MatchResult
	for i, recipe := range recipes {
		recipeIngredients := normalized[i]
		if len(recipeIngredients) == 0 {
			continue
		}

		matched, missing := partitionIngredients(recipeIngredients, queryIngredients)
		keywordScore := float64(len(matched)) / float64(len(recipeIngredients))

		score := keywordScore
		if vectors != nil {
			semanticScore := semanticScore(recipeIngredients, queryIngredients, vectors)
			score = s.weights.Semantic*semanticScore + s.weights.Keyword*keywordScore
		}

		if score < threshold {
			continue
		}

		results = append(results, MatchResult{
			Recipe:             recipe,
			MatchScore:         score,
			MatchedIngredients: matched,
			MissingIngredients: missing,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].Recipe.ID < results[j].Recipe.ID
	})

	total := len(results)
	if topK <= 0 {
		return []MatchResult{}, total, nil
	}
	if len(results) > topK {
		results = results[:topK]
	}
	return results, total, nil
}

// embedIngredients fetches vectors for every distinct normalized ingredient
// in the query and the catalog. A nil return means the provider failed and
// the call degrades to keyword-only scoring.
func (s *SearchService) embedIngredients(ctx context.Context, queryIngredients []string, recipeIngredients [][]string) map[string][]float32 {
	seen := make(map[string]bool)
	var texts []string
	for _, q := range queryIngredients {
		if !seen[q] {
			seen[q] = true
			texts = append(texts, q)
		}
	}
	for _, list := range recipeIngredients {
		for _, r := range list {
			if !seen[r] {
				seen[r] = true
				texts = append(texts, r)
			}
		}
	}

	embedCtx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()

	embedded, err := s.embedder.EmbedTexts(embedCtx, texts)
	if err != nil {
		log.Printf("embedding provider failed, falling back to keyword search: %v", err)
		return nil
	}
	if len(embedded) != len(texts) {
		log.Printf("embedding provider returned %d vectors for %d inputs, falling back to keyword search", len(embedded), len(texts))
		return nil
	}

	vectors := make(map[string][]float32, len(texts))
	for i, t := range texts {
		vectors[t] = embedded[i]
	}
	return vectors
}

// semanticScore averages, across all recipe ingredients, the best cosine
// similarity each one achieves against any query ingredient. Recipes where
// every ingredient has some good match in the query score higher than
// recipes carried by a single well-matched ingredient.
func semanticScore(recipeIngredients, queryIngredients []string, vectors map[string][]float32) float64 {
	if len(recipeIngredients) == 0 || len(queryIngredients) == 0 {
		return 0
	}

	var sum float64
	for _, r := range recipeIngredients {
		rv, ok := vectors[r]
		if !ok {
			continue
		}
		var best float64
		for _, q := range queryIngredients {
			qv, ok := vectors[q]
			if !ok {
				continue
			}
			if sim := CosineSimilarity(rv, qv); sim > best {
				best = sim
			}
		}
		sum += best
	}
	return sum / float64(len(recipeIngredients))
}

// partitionIngredients splits a recipe's ingredients into those covered by
// the query and those the user is missing, using containment-tolerant
// comparison.
func partitionIngredients(recipeIngredients, queryIngredients []string) (matched, missing []string) {
	matched = make([]string, 0, len(recipeIngredients))
	missing = make([]string, 0, len(recipeIngredients))
	for _, r := range recipeIngredients {
		found := false
		for _, q := range queryIngredients {
			if ingredient.Matches(r, q) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, r)
		} else {
			missing = append(missing, r)
		}
	}
	return matched, missing
}
