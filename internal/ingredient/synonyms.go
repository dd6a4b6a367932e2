package ingredient

// synonyms maps raw ingredient spellings to their canonical form. The table
// is consulted after lower-casing and singularization, so entries only need
// to cover the singular lower-case spelling. Extend the table rather than
// adding special cases to Normalize.
var synonyms = map[string]string{
	"bell pepper":      "pepper",
	"red pepper":       "pepper",
	"green pepper":     "pepper",
	"yellow pepper":    "pepper",
	"capsicum":         "pepper",
	"scallion":         "green onion",
	"spring onion":     "green onion",
	"cilantro":         "coriander",
	"garbanzo bean":    "chickpea",
	"courgette":        "zucchini",
	"aubergine":        "eggplant",
	"chicken breast":   "chicken",
	"chicken thigh":    "chicken",
	"ground beef":      "beef",
	"beef strip":       "beef",
	"roma tomato":      "tomato",
	"plum tomato":      "tomato",
	"spaghetti":        "pasta",
	"penne":            "pasta",
	"linguine":         "pasta",
	"egg noodle":       "noodle",
	"parmesan cheese":  "parmesan",
	"cheddar cheese":   "cheddar",
	"powdered sugar":   "sugar",
	"caster sugar":     "sugar",
	"vegetable oil":    "oil",
	"canola oil":       "oil",
	"sunflower oil":    "oil",
	"extra virgin olive oil": "olive oil",
}
