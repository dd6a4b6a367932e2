package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipefinder/internal/api"
	"github.com/pageza/recipefinder/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	searchHandler *api.SearchHandler,
	recipeHandler *api.RecipeHandler,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     60,
			KeyPrefix: "ratelimit:search",
		})
		v1.Use(limiter.RateLimitMiddleware())
	}

	searchHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)

	return router
}
