package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/pageza/recipefinder/internal/model"
)

// EmbeddedRecipes is the curated starter set loaded into an empty catalog so
// the application is usable without uploading a CSV first.
var EmbeddedRecipes = []model.Recipe{
	{
		ID:          "recipe_001",
		Title:       "Classic Spaghetti Carbonara",
		Ingredients: model.StringArray{"spaghetti", "eggs", "parmesan cheese", "pancetta", "black pepper", "salt", "olive oil"},
		Steps: model.StringArray{
			"Cook spaghetti according to package directions.",
			"In a bowl, whisk eggs with parmesan and black pepper.",
			"Cook pancetta in olive oil until crispy.",
			"Toss hot pasta with pancetta, then with egg mixture.",
			"Serve immediately with extra parmesan.",
		},
	},
	{
		ID:          "recipe_002",
		Title:       "Chicken Stir Fry",
		Ingredients: model.StringArray{"chicken breast", "bell peppers", "broccoli", "soy sauce", "garlic", "ginger", "vegetable oil", "rice"},
		Steps: model.StringArray{
			"Cut chicken into strips and marinate in soy sauce.",
			"Heat oil in wok and cook chicken until done.",
			"Add garlic and ginger, then vegetables.",
			"Stir fry until vegetables are tender-crisp.",
			"Serve over rice.",
		},
	},
	{
		ID:          "recipe_003",
		Title:       "Vegetarian Pasta Primavera",
		Ingredients: model.StringArray{"pasta", "zucchini", "bell peppers", "cherry tomatoes", "garlic", "olive oil", "parmesan cheese", "basil"},
		Steps: model.StringArray{
			"Cook pasta according to package directions.",
			"Sauté garlic in olive oil.",
			"Add vegetables and cook until tender.",
			"Toss with pasta and parmesan.",
			"Garnish with fresh basil.",
		},
	},
	{
		ID:          "recipe_004",
		Title:       "Beef Tacos",
		Ingredients: model.StringArray{"ground beef", "taco shells", "lettuce", "tomatoes", "cheese", "sour cream", "taco seasoning", "onions"},
		Steps: model.StringArray{
			"Brown ground beef with onions.",
			"Add taco seasoning and water, simmer.",
			"Warm taco shells.",
			"Fill shells with beef mixture.",
			"Top with lettuce, tomatoes, cheese, and sour cream.",
		},
	},
	{
		ID:          "recipe_005",
		Title:       "Salmon with Roasted Vegetables",
		Ingredients: model.StringArray{"salmon fillets", "sweet potatoes", "broccoli", "olive oil", "lemon", "herbs", "salt", "pepper"},
		Steps: model.StringArray{
			"Preheat oven to 400°F.",
			"Toss vegetables with olive oil and seasonings.",
			"Roast vegetables for 20 minutes.",
			"Add salmon to pan and roast 12-15 minutes.",
			"Serve with lemon wedges.",
		},
	},
	{
		ID:          "recipe_006",
		Title:       "Chicken Noodle Soup",
		Ingredients: model.StringArray{"chicken breast", "egg noodles", "carrots", "celery", "onions", "chicken broth", "herbs", "salt", "pepper"},
		Steps: model.StringArray{
			"Sauté onions, carrots, and celery until soft.",
			"Add chicken broth and bring to boil.",
			"Add chicken and simmer until cooked.",
			"Add noodles and cook until tender.",
			"Season with herbs, salt, and pepper.",
		},
	},
	{
		ID:          "recipe_007",
		Title:       "Vegetarian Chili",
		Ingredients: model.StringArray{"black beans", "kidney beans", "tomatoes", "onions", "bell peppers", "chili powder", "cumin", "garlic", "vegetable broth"},
		Steps: model.StringArray{
			"Sauté onions and peppers until soft.",
			"Add garlic and spices, cook 1 minute.",
			"Add beans, tomatoes, and broth.",
			"Simmer for 30 minutes.",
			"Season to taste and serve.",
		},
	},
	{
		ID:          "recipe_008",
		Title:       "Grilled Cheese Sandwich",
		Ingredients: model.StringArray{"bread", "cheddar cheese", "butter", "tomatoes"},
		Steps: model.StringArray{
			"Butter one side of each bread slice.",
			"Add cheese and tomato slices between bread.",
			"Cook in pan over medium heat until golden.",
			"Flip and cook other side.",
			"Serve hot.",
		},
	},
	{
		ID:          "recipe_009",
		Title:       "Caesar Salad",
		Ingredients: model.StringArray{"romaine lettuce", "parmesan cheese", "croutons", "caesar dressing", "lemon", "anchovies"},
		Steps: model.StringArray{
			"Wash and chop romaine lettuce.",
			"Make caesar dressing with lemon and anchovies.",
			"Toss lettuce with dressing.",
			"Add croutons and parmesan.",
			"Serve immediately.",
		},
	},
	{
		ID:          "recipe_010",
		Title:       "Chocolate Chip Cookies",
		Ingredients: model.StringArray{"flour", "butter", "sugar", "brown sugar", "eggs", "vanilla", "chocolate chips", "baking soda", "salt"},
		Steps: model.StringArray{
			"Cream butter and sugars.",
			"Add eggs and vanilla.",
			"Mix in dry ingredients.",
			"Fold in chocolate chips.",
			"Bake at 375°F for 9-11 minutes.",
		},
	},
	{
		ID:          "recipe_011",
		Title:       "Beef and Broccoli",
		Ingredients: model.StringArray{"beef strips", "broccoli", "soy sauce", "garlic", "ginger", "cornstarch", "vegetable oil", "rice"},
		Steps: model.StringArray{
			"Marinate beef in soy sauce and cornstarch.",
			"Stir fry beef until browned.",
			"Add garlic and ginger.",
			"Add broccoli and stir fry until tender.",
			"Serve over rice.",
		},
	},
	{
		ID:          "recipe_012",
		Title:       "Caprese Salad",
		Ingredients: model.StringArray{"fresh mozzarella", "tomatoes", "basil", "olive oil", "balsamic vinegar", "salt", "pepper"},
		Steps: model.StringArray{
			"Slice tomatoes and mozzarella.",
			"Arrange on plate alternating slices.",
			"Add fresh basil leaves.",
			"Drizzle with olive oil and balsamic.",
			"Season with salt and pepper.",
		},
	},
}

// SeedEmbedded loads the embedded starter recipes into an empty catalog.
// A catalog that already has recipes is left untouched.
func SeedEmbedded(ctx context.Context, store *GormCatalog) error {
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}
	if count > 0 {
		return nil
	}

	n, err := store.ImportRecipes(ctx, EmbeddedRecipes)
	if err != nil {
		return err
	}
	log.Printf("seeded %d embedded recipes", n)
	return nil
}
