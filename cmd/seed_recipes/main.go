package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/pageza/recipefinder/config"
	"github.com/pageza/recipefinder/internal/catalog"
	"github.com/pageza/recipefinder/internal/database"
	"github.com/pageza/recipefinder/internal/model"
	"github.com/pageza/recipefinder/internal/service"
)

func main() {
	csvPath := flag.String("csv", "", "path to a recipe CSV file")
	withEmbeddings := flag.Bool("embeddings", false, "precompute recipe embeddings after seeding")
	flag.Parse()

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
	ctx := context.Background()

	recipes, err := loadRecipes(ctx, cfg, *csvPath)
	if err != nil {
		log.Fatalf("Failed to load recipes: %v", err)
	}

	n, err := store.ImportRecipes(ctx, recipes)
	if err != nil {
		log.Fatalf("Failed to import recipes: %v", err)
	}
	log.Printf("Imported %d recipes", n)

	if *withEmbeddings {
		if err := precomputeEmbeddings(ctx, store, recipes); err != nil {
			log.Fatalf("Failed to precompute embeddings: %v", err)
		}
	}
}

// loadRecipes picks the seed source: an explicit CSV path, then the
// configured S3 object, then the embedded starter set.
func loadRecipes(ctx context.Context, cfg *config.Config, csvPath string) ([]model.Recipe, error) {
	if csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return catalog.ParseCSV(f)
	}

	if cfg.SeedCSVBucket != "" && cfg.SeedCSVKey != "" {
		s3cfg, err := config.NewS3Config(ctx)
		if err != nil {
			return nil, err
		}
		data, err := s3cfg.FetchObject(ctx, cfg.SeedCSVKey)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded seed CSV from s3://%s/%s", cfg.SeedCSVBucket, cfg.SeedCSVKey)
		return catalog.ParseCSV(bytes.NewReader(data))
	}

	log.Println("No CSV source configured, seeding embedded recipes")
	return catalog.EmbeddedRecipes, nil
}

// precomputeEmbeddings caches a whole-recipe embedding on each row so the
// catalog is warm before the first search.
func precomputeEmbeddings(ctx context.Context, store *catalog.GormCatalog, recipes []model.Recipe) error {
	embedder, err := service.NewEmbeddingService()
	if err != nil {
		return err
	}

	texts := make([]string, len(recipes))
	for i, r := range recipes {
		texts[i] = strings.Join(r.Ingredients, ", ")
	}

	vectors, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}

	for i, r := range recipes {
		if err := store.SaveEmbedding(ctx, r.ID, vectors[i]); err != nil {
			return err
		}
	}
	log.Printf("Precomputed embeddings for %d recipes", len(recipes))
	return nil
}
