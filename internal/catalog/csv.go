package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/pageza/recipefinder/internal/model"
)

// splitIngredientText breaks a free-form ingredient cell into individual
// entries, trying the common separators in order.
func splitIngredientText(text string) []string {
	for _, sep := range []string{",", ";", "\n", "|"} {
		if strings.Contains(text, sep) {
			var parts []string
			for _, p := range strings.Split(text, sep) {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
			return parts
		}
	}
	if text = strings.TrimSpace(text); text != "" {
		return []string{text}
	}
	return nil
}

// splitStepText breaks an instruction cell into steps. Unlike ingredients,
// instructions routinely contain commas, so only line breaks and pipes are
// treated as separators.
func splitStepText(text string) []string {
	for _, sep := range []string{"\n", "|"} {
		if strings.Contains(text, sep) {
			var parts []string
			for _, p := range strings.Split(text, sep) {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
			return parts
		}
	}
	if text = strings.TrimSpace(text); text != "" {
		return []string{text}
	}
	return nil
}

// detectDelimiter guesses the CSV delimiter from the first chunk of input.
func detectDelimiter(sample string) rune {
	for _, d := range []rune{',', ';', '\t', '|'} {
		if strings.ContainsRune(sample, d) {
			return d
		}
	}
	return ','
}

// ParseCSV reads recipes from CSV data. Headers are matched
// case-insensitively and both singular and plural spellings of
// ingredient/step columns are accepted. Rows missing a title or
// ingredients are skipped with a log line rather than failing the import.
func ParseCSV(r io.Reader) ([]model.Recipe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	sample := string(data)
	if len(sample) > 1024 {
		sample = sample[:1024]
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = detectDelimiter(sample)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, names ...string) string {
		for _, name := range names {
			if idx, ok := columns[name]; ok && idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
		}
		return ""
	}

	var recipes []model.Recipe
	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("skipping row %d: %v", rowNum, err)
			continue
		}

		title := field(row, "title")
		ingredients := splitIngredientText(field(row, "ingredient", "ingredients"))
		if title == "" || len(ingredients) == 0 {
			log.Printf("skipping row %d: missing title or ingredients", rowNum)
			continue
		}

		id := field(row, "id")
		if id == "" {
			id = fmt.Sprintf("recipe_%s", uuid.NewString())
		}

		recipes = append(recipes, model.Recipe{
			ID:          id,
			Title:       title,
			Ingredients: ingredients,
			Steps:       splitStepText(field(row, "step", "steps")),
		})
	}

	return recipes, nil
}
