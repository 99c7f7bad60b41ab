package category

// #region category

// Category is the emotional-state bucket used to select supportive content.
type Category uint8

const (
	Default Category = iota
	Anxiety
	Sadness
	Stress
	Anger

	numCategories
)

var names = [numCategories]string{
	Default: "default",
	Anxiety: "anxiety",
	Sadness: "sadness",
	Stress:  "stress",
	Anger:   "anger",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if c >= numCategories {
		return names[Default]
	}
	return names[c]
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c < numCategories
}

// #endregion category

// #region helpers

// All returns every category in precedence order, Default last.
func All() []Category {
	return []Category{Anxiety, Sadness, Stress, Anger, Default}
}

// Parse maps a category name back to its value.
func Parse(name string) (Category, bool) {
	for i, n := range names {
		if n == name {
			return Category(i), true
		}
	}
	return Default, false
}

// #endregion helpers
