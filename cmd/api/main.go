package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/recipefinder/config"
	"github.com/pageza/recipefinder/internal/api"
	"github.com/pageza/recipefinder/internal/catalog"
	"github.com/pageza/recipefinder/internal/database"
	"github.com/pageza/recipefinder/internal/router"
	"github.com/pageza/recipefinder/internal/server"
	"github.com/pageza/recipefinder/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store := catalog.NewGormCatalog(db)
	if err := catalog.SeedEmbedded(context.Background(), store); err != nil {
		log.Fatalf("Failed to seed embedded recipes: %v", err)
	}

	// Redis backs the embedding cache and the rate limiter. The API still
	// works without it, just with per-process caching only.
	var embeddingCache service.EmbeddingCache
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, using in-memory embedding cache: %v", err)
		redisClient = nil
		embeddingCache = service.NewMemoryEmbeddingCache()
	} else {
		embeddingCache = service.NewRedisEmbeddingCache(redisClient)
	}

	// Without embedding credentials every search runs keyword-only.
	var embedder service.EmbedderInterface
	if embeddingService, err := service.NewEmbeddingService(); err != nil {
		log.Printf("Embedding provider not configured, searches will be keyword-only: %v", err)
	} else {
		embedder = service.NewCachedEmbedder(embeddingService, embeddingCache)
	}

	weights := service.Weights{
		Semantic: cfg.SemanticWeight,
		Keyword:  cfg.KeywordWeight,
	}
	searchService := service.NewSearchService(store, embedder, weights)
	parsingService := service.NewParsingService()

	searchHandler := api.NewSearchHandler(searchService, parsingService)
	recipeHandler := api.NewRecipeHandler(store)

	r := router.SetupRouter(searchHandler, recipeHandler, redisClient)
	srv := server.New(cfg, r)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
