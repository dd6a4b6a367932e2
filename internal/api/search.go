package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipefinder/internal/service"
)

const (
	defaultTopK      = 5
	defaultThreshold = 0.3
)

// SearchHandler exposes the ingredient-matching engine over HTTP.
type SearchHandler struct {
	search  service.ISearchService
	parsing service.IParsingService
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(search service.ISearchService, parsing service.IParsingService) *SearchHandler {
	return &SearchHandler{
		search:  search,
		parsing: parsing,
	}
}

// RegisterRoutes attaches the search endpoints to the router group.
func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/search", h.SearchByIngredients)
		recipes.POST("/search/natural", h.SearchNatural)
	}
}

// SearchByIngredients handles POST /recipes/search.
func (h *SearchHandler) SearchByIngredients(c *gin.Context) {
	var req IngredientSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients list is required"})
		return
	}

	start := time.Now()
	results, total, err := h.search.Search(
		c.Request.Context(),
		req.Ingredients,
		intOrDefault(req.TopK, defaultTopK),
		floatOrDefault(req.Threshold, defaultThreshold),
		boolOrDefault(req.UseHybrid, true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recipe search failed"})
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Recommendations: toRecommendations(results),
		TotalMatches:    total,
		ProcessingTime:  time.Since(start).Seconds(),
	})
}

// SearchNatural handles POST /recipes/search/natural. The parsing service
// extracts the ingredient list; ranking itself only ever sees that list.
func (h *SearchHandler) SearchNatural(c *gin.Context) {
	var req NaturalSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_input is required"})
		return
	}

	start := time.Now()
	ingredients, _, err := h.parsing.ParseUserInput(c.Request.Context(), req.UserInput)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse input"})
		return
	}
	if len(ingredients) == 0 {
		c.JSON(http.StatusOK, SearchResponse{
			Recommendations: []RecipeRecommendation{},
			ProcessingTime:  time.Since(start).Seconds(),
		})
		return
	}

	results, total, err := h.search.Search(
		c.Request.Context(),
		ingredients,
		intOrDefault(req.TopK, defaultTopK),
		floatOrDefault(req.Threshold, defaultThreshold),
		boolOrDefault(req.UseHybrid, true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recipe search failed"})
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Recommendations:   toRecommendations(results),
		TotalMatches:      total,
		ProcessingTime:    time.Since(start).Seconds(),
		ParsedIngredients: ingredients,
	})
}

func toRecommendations(results []service.MatchResult) []RecipeRecommendation {
	recommendations := make([]RecipeRecommendation, len(results))
	for i, r := range results {
		recommendations[i] = RecipeRecommendation{
			RecipeID:           r.Recipe.ID,
			Title:              r.Recipe.Title,
			Ingredients:        r.Recipe.Ingredients,
			Steps:              r.Recipe.Steps,
			MatchScore:         r.MatchScore,
			MatchedIngredients: r.MatchedIngredients,
			MissingIngredients: r.MissingIngredients,
		}
	}
	return recommendations
}

func intOrDefault(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOrDefault(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
