package scope

// #region imports
import (
	"regexp"
	"strings"

	"github.com/danielpatrickdp/therapy-assistant/internal/keywords"
)

// #endregion imports

// #region patterns

var (
	// two digit groups joined by an operator: "3 + 4", "2×5"
	arithmeticPattern = regexp.MustCompile(`\d+\s*[\+\-\*/=×÷]\s*\d+`)
	// single lowercase letter assigned a number: "x = 5"
	variablePattern = regexp.MustCompile(`[a-z]\s*=\s*\d+`)
	// a percentage followed later by another number
	percentagePattern = regexp.MustCompile(`\d+%.*\d+`)
)

// #endregion patterns

// #region keywords

var academicKeywords = []string{
	// math
	"calculate", "solve", "equation", "formula", "mathematics", "math",
	"algebra", "geometry", "calculus", "statistics", "probability",
	"derivative", "integral", "theorem", "proof", "variable",
	"plus", "minus", "times", "divided by", "equals",
	"what is", "how much is", "find x", "find y", "solve for",

	// school subjects
	"physics", "chemistry", "biology", "history", "geography",
	"literature", "homework", "assignment", "test", "exam",
	"school work", "study", "lesson", "chapter", "textbook",

	// factual questions
	"how to", "explain", "definition", "meaning of", "what does",
	"when did", "where is", "who is", "which is",
}

// emotionalOverride cancels academic keyword hits when present anywhere in the text.
var emotionalOverride = []string{
	"feel", "emotion", "mood", "stress", "anxiety",
	"sad", "happy", "worried", "heart", "mind",
}

var (
	academicSet = keywords.MustNew(academicKeywords...)
	overrideSet = keywords.MustNew(emotionalOverride...)
)

// #endregion keywords

// #region classify

// Classify decides whether text is emotional support material or academic/factual content.
// Rules are applied in order and the first that fires wins. Pure and total.
func Classify(text string) Decision {
	if arithmeticPattern.MatchString(text) {
		return Decision{OutOfScope: true, Rule: RuleArithmetic}
	}
	if variablePattern.MatchString(text) {
		return Decision{OutOfScope: true, Rule: RuleVariable}
	}
	if percentagePattern.MatchString(text) {
		return Decision{OutOfScope: true, Rule: RulePercentage}
	}

	lower := strings.ToLower(text)
	hits := academicSet.Matches(lower)
	if len(hits) == 0 {
		return Decision{Rule: RuleNone}
	}

	// The override cancels each keyword hit individually; since it only checks for
	// presence anywhere in the text, either every hit is cancelled or none is.
	if overrideSet.Contains(lower) {
		return Decision{Rule: RuleNone}
	}
	return Decision{OutOfScope: true, Rule: RuleKeyword, Keyword: firstInListOrder(hits)}
}

// IsOutOfScope reports whether text should be deflected instead of answered.
func IsOutOfScope(text string) bool {
	return Classify(text).OutOfScope
}

// ClassifyWithRedirect classifies text and, when out of scope, attaches a deflection from r.
func ClassifyWithRedirect(text string, r *Redirector) Decision {
	d := Classify(text)
	if d.OutOfScope && r != nil {
		d.Redirect = r.Redirect()
	}
	return d
}

// #endregion classify

// #region helpers

// firstInListOrder returns the hit that appears earliest in academicKeywords,
// which is the keyword a sequential scan would have reported.
func firstInListOrder(hits []string) string {
	found := make(map[string]bool, len(hits))
	for _, h := range hits {
		found[h] = true
	}
	for _, kw := range academicKeywords {
		if found[kw] {
			return kw
		}
	}
	return hits[0]
}

// #endregion helpers
