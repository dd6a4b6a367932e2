package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipefinder/internal/catalog"
)

// RecipeHandler serves catalog reads and CSV imports.
type RecipeHandler struct {
	store *catalog.GormCatalog
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(store *catalog.GormCatalog) *RecipeHandler {
	return &RecipeHandler{store: store}
}

// RegisterRoutes attaches the catalog endpoints to the router group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/import", h.ImportRecipes)
	}
}

// ListRecipes handles GET /recipes.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.store.GetAllRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe handles GET /recipes/:id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.store.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// ImportRecipes handles POST /recipes/import with a multipart CSV upload.
func (h *RecipeHandler) ImportRecipes(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "csv file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	recipes, err := catalog.ParseCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse CSV"})
		return
	}

	processed, err := h.store.ImportRecipes(c.Request.Context(), recipes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import recipes"})
		return
	}

	total, err := h.store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count recipes"})
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Status:           "success",
		RecipesProcessed: processed,
		TotalRecipes:     total,
	})
}
