package category

// #region imports
import (
	"strings"

	"github.com/danielpatrickdp/therapy-assistant/internal/keywords"
)

// #endregion imports

// #region keywords

// groups lists the keyword groups in precedence order. First match wins.
var groups = []struct {
	category Category
	terms    []string
}{
	{Anxiety, []string{"anxious", "anxiety", "worried", "nervous"}},
	{Sadness, []string{"sad", "sadness", "depressed", "down", "lonely"}},
	{Stress, []string{"stress", "stressed", "overwhelmed", "pressure"}},
	{Anger, []string{"angry", "anger", "frustrated", "mad", "irritated"}},
}

var (
	dictionary = buildDictionary()
	termGroup  = buildTermIndex()
)

func buildDictionary() *keywords.Set {
	var all []string
	for _, g := range groups {
		all = append(all, g.terms...)
	}
	return keywords.MustNew(all...)
}

func buildTermIndex() map[string]int {
	idx := make(map[string]int)
	for rank, g := range groups {
		for _, t := range g.terms {
			if _, seen := idx[t]; !seen {
				idx[t] = rank
			}
		}
	}
	return idx
}

// #endregion keywords

// #region classify

// Classify maps free text describing an emotional state to a Category.
// Case-insensitive substring match; the earliest group with any hit wins,
// Default when nothing matches. Total and pure.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	best := len(groups)
	for _, term := range dictionary.Matches(lower) {
		if rank, ok := termGroup[term]; ok && rank < best {
			best = rank
		}
	}
	if best == len(groups) {
		return Default
	}
	return groups[best].category
}

// Terms returns the keyword set for c, nil for Default.
func Terms(c Category) []string {
	for _, g := range groups {
		if g.category == c {
			return append([]string(nil), g.terms...)
		}
	}
	return nil
}

// #endregion classify
