package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  Chicken Breast ", "chicken"},
		{"singularizes trailing s", "carrots", "carrot"},
		{"singularizes oes plural", "tomatoes", "tomato"},
		{"singularizes ies plural", "berries", "berry"},
		{"singularizes ses plural", "glasses", "glass"},
		{"keeps double s", "swiss", "swiss"},
		{"compound plural", "cherry tomatoes", "cherry tomato"},
		{"synonym after singularizing", "bell peppers", "pepper"},
		{"strips leading quantity", "2 eggs", "egg"},
		{"strips trailing quantity", "onion 3", "onion"},
		{"strips stacked leading quantities", "1 2 pepper", "pepper"},
		{"strips stacked trailing quantities", "pepper 2 3", "pepper"},
		{"strips fractional quantity", "1/2 cup flour", "cup flour"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
		{"quantity only", "42", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Cherry Tomatoes", "bell peppers", "2 eggs", "olive oil",
		"spaghetti", "chicken broth", "", "  ", "ground beef", "berries",
		// stacked quantities shed one token per stripping pass, so the
		// raw strings below are the adversarial cases
		"1 2 pepper", "pepper 2 3", "1 2 3", "1/2 1 cup sugar",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", in)
	}
}

func TestNormalizeStripsAllQuantityTokens(t *testing.T) {
	inputs := []string{"1 2 pepper", "pepper 2 3", "2 1 pepper 3 4"}
	for _, in := range inputs {
		assert.Equal(t, "pepper", Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	assert.Equal(t, Normalize("Bell Peppers"), Normalize("Bell Peppers"))
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"Chicken", "  ", "chickens", "Rice", ""})
	assert.Equal(t, []string{"chicken", "rice"}, got)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"tomato", "tomato", true},
		{"tomato", "cherry tomato", true},
		{"cherry tomato", "tomato", true},
		{"chicken broth", "chicken", true},
		{"chicken", "beef", false},
		{"", "tomato", false},
		{"tomato", "", false},
		// word overlap without substring containment
		{"green bean", "bean sprout", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.a, tt.b), "Matches(%q, %q)", tt.a, tt.b)
	}
}
