package category

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		// Anxiety
		{"anxiety-anxious", "I'm so anxious about tomorrow", Anxiety},
		{"anxiety-nervous", "Feeling NERVOUS before the interview", Anxiety},
		{"anxiety-worried", "worried sick", Anxiety},

		// Sadness
		{"sadness-lonely", "I feel lonely tonight", Sadness},
		{"sadness-depressed", "Depressed again", Sadness},
		{"sadness-down", "a bit down today", Sadness},

		// Stress
		{"stress-overwhelmed", "completely overwhelmed at work", Stress},
		{"stress-pressure", "So much pressure lately", Stress},

		// Anger
		{"anger-frustrated", "I'm frustrated with my brother", Anger},
		{"anger-irritated", "everything irritated me", Anger},

		// Default
		{"default-happy", "I had a wonderful day", Default},
		{"default-empty", "", Default},
		{"default-whitespace", "   ", Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{"anxiety-before-sadness", "I'm anxious and sad", Anxiety},
		{"sadness-first-in-text-still-anxiety", "sad, lonely and nervous", Anxiety},
		{"sadness-before-stress", "stressed and depressed", Sadness},
		{"stress-before-anger", "angry because of the pressure", Stress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_SubstringMatching(t *testing.T) {
	// Substring containment, not word boundaries.
	require.Equal(t, Sadness, Classify("I need to download a file"))
	require.Equal(t, Anger, Classify("I made dinner"))
	require.Equal(t, Sadness, Classify("Primary emotions: sadness and grief"))
}

func TestCategory_StringAndParse(t *testing.T) {
	req := require.New(t)
	for _, c := range All() {
		req.True(c.Valid())
		parsed, ok := Parse(c.String())
		req.True(ok)
		req.Equal(c, parsed)
	}

	_, ok := Parse("joy")
	req.False(ok)
	req.Equal("default", Category(200).String())
	req.False(Category(200).Valid())
}

func TestTerms(t *testing.T) {
	require.Contains(t, Terms(Anxiety), "nervous")
	require.Nil(t, Terms(Default))
}

func TestProperty_ClassifyTotalAndIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("classify always returns a declared category", prop.ForAll(
		func(text string) bool {
			return Classify(text).Valid()
		},
		gen.AnyString(),
	))

	properties.Property("classify is stable across calls", prop.ForAll(
		func(text string) bool {
			return Classify(text) == Classify(text)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
