package keywords

// #region imports
import (
	"fmt"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// #endregion imports

// #region set

// Set is an immutable keyword dictionary matched by plain substring containment.
// Matching is read-only and safe for concurrent use.
type Set struct {
	matcher *goahocorasick.Machine
	terms   []string
}

// New builds an Aho-Corasick automaton over the lowercased, de-duplicated terms.
func New(terms []string) (*Set, error) {
	clean := lo.Uniq(lo.FilterMap(terms, func(t string, _ int) (string, bool) {
		t = strings.ToLower(t)
		return t, t != ""
	}))
	if len(clean) == 0 {
		return nil, fmt.Errorf("keywords: empty term list")
	}
	sort.Strings(clean)

	patterns := make([][]rune, len(clean))
	for i, t := range clean {
		patterns[i] = []rune(t)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("keywords: build automaton: %w", err)
	}
	return &Set{matcher: m, terms: clean}, nil
}

// MustNew is New for static dictionaries; it panics on a build failure.
func MustNew(terms ...string) *Set {
	s, err := New(terms)
	if err != nil {
		panic(err)
	}
	return s
}

// #endregion set

// #region match

// Contains reports whether any term occurs in lower.
// Callers lowercase the text once and reuse it across sets.
func (s *Set) Contains(lower string) bool {
	if lower == "" {
		return false
	}
	return len(s.matcher.MultiPatternSearch([]rune(lower), true)) > 0
}

// Matches returns every distinct term found in lower, in order of first occurrence.
func (s *Set) Matches(lower string) []string {
	if lower == "" {
		return nil
	}
	hits := s.matcher.MultiPatternSearch([]rune(lower), false)
	if len(hits) == 0 {
		return nil
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Pos < hits[j].Pos })
	return lo.Uniq(lo.Map(hits, func(h *goahocorasick.Term, _ int) string {
		return string(h.Word)
	}))
}

// Terms returns the normalized dictionary, sorted.
func (s *Set) Terms() []string {
	return append([]string(nil), s.terms...)
}

// #endregion match
