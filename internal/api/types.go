package api

// IngredientSearchRequest is the payload for searching by an explicit
// ingredient list.
type IngredientSearchRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	TopK        *int     `json:"top_k"`
	Threshold   *float64 `json:"threshold"`
	UseHybrid   *bool    `json:"use_hybrid"`
}

// NaturalSearchRequest is the payload for free-text search; the ingredient
// list is extracted by the parsing service before ranking.
type NaturalSearchRequest struct {
	UserInput string   `json:"user_input" binding:"required"`
	TopK      *int     `json:"top_k"`
	Threshold *float64 `json:"threshold"`
	UseHybrid *bool    `json:"use_hybrid"`
}

// RecipeRecommendation is one ranked result in a search response.
type RecipeRecommendation struct {
	RecipeID           string   `json:"recipe_id"`
	Title              string   `json:"title"`
	Ingredients        []string `json:"ingredients"`
	Steps              []string `json:"steps"`
	MatchScore         float64  `json:"match_score"`
	MatchedIngredients []string `json:"matched_ingredients"`
	MissingIngredients []string `json:"missing_ingredients"`
}

// SearchResponse is the body returned by both search endpoints.
type SearchResponse struct {
	Recommendations   []RecipeRecommendation `json:"recommendations"`
	TotalMatches      int                    `json:"total_matches"`
	ProcessingTime    float64                `json:"processing_time"`
	ParsedIngredients []string               `json:"parsed_ingredients,omitempty"`
}

// ImportResponse reports the outcome of a CSV import.
type ImportResponse struct {
	Status           string `json:"status"`
	RecipesProcessed int    `json:"recipes_processed"`
	TotalRecipes     int64  `json:"total_recipes"`
}
