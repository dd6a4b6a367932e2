package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipefinder/internal/model"
	"github.com/pageza/recipefinder/internal/service"
)

// MockSearchService is a mock implementation of the search service
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, ingredients []string, topK int, threshold float64, useHybrid bool) ([]service.MatchResult, int, error) {
	args := m.Called(ctx, ingredients, topK, threshold, useHybrid)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]service.MatchResult), args.Int(1), args.Error(2)
}

// MockParsingService is a mock implementation of the parsing service
type MockParsingService struct {
	mock.Mock
}

func (m *MockParsingService) ParseUserInput(ctx context.Context, userInput string) ([]string, []string, error) {
	args := m.Called(ctx, userInput)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]string), args.Get(1).([]string), args.Error(2)
}

func setupSearchRouter(search service.ISearchService, parsing service.IParsingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewSearchHandler(search, parsing)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func sampleResults() []service.MatchResult {
	return []service.MatchResult{
		{
			Recipe: model.Recipe{
				ID:          "r1",
				Title:       "Chicken and Rice",
				Ingredients: model.StringArray{"chicken", "rice", "broccoli"},
				Steps:       model.StringArray{"Cook everything."},
			},
			MatchScore:         0.67,
			MatchedIngredients: []string{"chicken", "rice"},
			MissingIngredients: []string{"broccoli"},
		},
	}
}

func TestSearchByIngredients(t *testing.T) {
	searchSvc := new(MockSearchService)
	searchSvc.On("Search", mock.Anything, []string{"chicken", "rice"}, 5, 0.3, true).
		Return(sampleResults(), 1, nil)

	router := setupSearchRouter(searchSvc, new(MockParsingService))

	body, _ := json.Marshal(map[string]interface{}{
		"ingredients": []string{"chicken", "rice"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/search", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalMatches)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "r1", resp.Recommendations[0].RecipeID)
	assert.Equal(t, []string{"broccoli"}, resp.Recommendations[0].MissingIngredients)

	searchSvc.AssertExpectations(t)
}

func TestSearchByIngredientsOverridesDefaults(t *testing.T) {
	searchSvc := new(MockSearchService)
	searchSvc.On("Search", mock.Anything, []string{"tofu"}, 2, 0.7, false).
		Return([]service.MatchResult{}, 0, nil)

	router := setupSearchRouter(searchSvc, new(MockParsingService))

	body, _ := json.Marshal(map[string]interface{}{
		"ingredients": []string{"tofu"},
		"top_k":       2,
		"threshold":   0.7,
		"use_hybrid":  false,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/search", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	searchSvc.AssertExpectations(t)
}

func TestSearchByIngredientsMissingBody(t *testing.T) {
	router := setupSearchRouter(new(MockSearchService), new(MockParsingService))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/search", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchNatural(t *testing.T) {
	parsingSvc := new(MockParsingService)
	parsingSvc.On("ParseUserInput", mock.Anything, "I have chicken and rice").
		Return([]string{"chicken", "rice"}, []string{"quick"}, nil)

	searchSvc := new(MockSearchService)
	searchSvc.On("Search", mock.Anything, []string{"chicken", "rice"}, 5, 0.3, true).
		Return(sampleResults(), 1, nil)

	router := setupSearchRouter(searchSvc, parsingSvc)

	body, _ := json.Marshal(map[string]interface{}{
		"user_input": "I have chicken and rice",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/search/natural", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"chicken", "rice"}, resp.ParsedIngredients)
	assert.Equal(t, 1, resp.TotalMatches)

	parsingSvc.AssertExpectations(t)
	searchSvc.AssertExpectations(t)
}

func TestSearchNaturalNoIngredientsParsed(t *testing.T) {
	parsingSvc := new(MockParsingService)
	parsingSvc.On("ParseUserInput", mock.Anything, "hello there").
		Return([]string{}, []string{}, nil)

	searchSvc := new(MockSearchService)
	router := setupSearchRouter(searchSvc, parsingSvc)

	body, _ := json.Marshal(map[string]interface{}{"user_input": "hello there"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/search/natural", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recommendations)
	searchSvc.AssertNotCalled(t, "Search")
}
