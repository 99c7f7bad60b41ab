package scope

// #region rule

// Rule names the heuristic that decided a message's scope.
type Rule string

const (
	RuleNone       Rule = "none"
	RuleArithmetic Rule = "arithmetic"
	RuleVariable   Rule = "variable"
	RulePercentage Rule = "percentage"
	RuleKeyword    Rule = "keyword"
)

// #endregion rule

// #region decision

// Decision is the scope verdict for one utterance.
type Decision struct {
	OutOfScope bool
	Rule       Rule
	Keyword    string // academic keyword that survived the override, RuleKeyword only
	Redirect   string // deflection message, set only by ClassifyWithRedirect when OutOfScope
}

// InScope is the negation of OutOfScope.
func (d Decision) InScope() bool {
	return !d.OutOfScope
}

// String returns "in_scope" or "out_of_scope".
func (d Decision) String() string {
	if d.OutOfScope {
		return "out_of_scope"
	}
	return "in_scope"
}

// #endregion decision
