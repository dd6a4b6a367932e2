// Package ingredient canonicalizes ingredient names so that the search
// engine can compare them across recipes and user queries.
package ingredient

import (
	"regexp"
	"strings"
)

var quantityPattern = regexp.MustCompile(`^\d+[\d/.]*\s*|\s+\d+[\d/.]*$`)

// Normalize returns the canonical form of a raw ingredient string: trimmed,
// lower-cased, leading/trailing quantities removed, singularized and mapped
// through the synonym table. An empty or whitespace-only input normalizes to
// the empty string; callers are expected to filter those out.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	// Strip quantities to a fixpoint; "1 2 pepper" sheds one token per
	// pass because the pattern is anchored.
	for {
		stripped := strings.TrimSpace(quantityPattern.ReplaceAllString(s, ""))
		if stripped == s {
			break
		}
		s = stripped
	}
	if s == "" {
		return ""
	}

	// Singularize the last word only; "cherry tomatoes" -> "cherry tomato".
	words := strings.Fields(s)
	words[len(words)-1] = singularize(words[len(words)-1])
	s = strings.Join(words, " ")

	if canonical, ok := synonyms[s]; ok {
		return canonical
	}
	return s
}

// NormalizeAll normalizes every entry, drops empties and deduplicates while
// preserving first-seen order.
func NormalizeAll(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	result := make([]string, 0, len(raw))
	for _, r := range raw {
		n := Normalize(r)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	return result
}

// singularize applies a small suffix-stripping heuristic. It is not a full
// morphological analyzer; it only needs to collapse the plural spellings
// that show up in ingredient lists.
func singularize(word string) string {
	switch {
	case len(word) > 3 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 3 && strings.HasSuffix(word, "oes"):
		return word[:len(word)-2]
	case len(word) > 3 && strings.HasSuffix(word, "ses"):
		return word[:len(word)-2]
	case len(word) > 2 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	}
	return word
}

// Matches reports whether two normalized ingredients should be treated as
// the same for scoring purposes. Equality is loosened to substring
// containment in either direction plus word-level overlap, so "tomato"
// matches "cherry tomato" and "chicken broth" matches "chicken".
func Matches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	bWords := make(map[string]bool)
	for _, w := range strings.Fields(b) {
		bWords[w] = true
	}
	for _, w := range strings.Fields(a) {
		if bWords[w] {
			return true
		}
	}
	return false
}
