package scoring

import (
	"github.com/dotcommander/thinkcheck/internal/types"
)

// Finding is a triggered rule: the points it costs and the issue it raises.
type Finding struct {
	Penalty int
	Issue   types.Issue
}

// Rule inspects a document and reports a finding when it applies.
type Rule func(doc string) (Finding, bool)

// Flag builds a rule with a fixed penalty that fires when the predicate holds.
func Flag(when func(doc string) bool, penalty int, severity, message string) Rule {
	return func(doc string) (Finding, bool) {
		if !when(doc) {
			return Finding{}, false
		}
		return Finding{
			Penalty: penalty,
			Issue:   types.Issue{Severity: severity, Message: message},
		}, true
	}
}

// Evaluate folds rules over the document, starting at MaxScore. Issues keep
// rule order and the score never drops below zero.
func Evaluate(doc string, rules []Rule) SubScore {
	score := MaxScore
	var issues []types.Issue

	for _, rule := range rules {
		finding, ok := rule(doc)
		if !ok {
			continue
		}
		score -= finding.Penalty
		issues = append(issues, finding.Issue)
	}

	return SubScore{Score: clamp(score), Issues: issues}
}

// RuleSet is a named, ordered list of rules.
type RuleSet struct {
	name  string
	rules []Rule
}

// NewRuleSet creates a RuleSet for the named analyzer.
func NewRuleSet(name string, rules ...Rule) *RuleSet {
	return &RuleSet{name: name, rules: rules}
}

// Name returns the analyzer name.
func (r *RuleSet) Name() string {
	return r.name
}

// Analyze evaluates every rule and tags the issues with the analyzer name.
func (r *RuleSet) Analyze(doc string) SubScore {
	result := Evaluate(doc, r.rules)
	for i := range result.Issues {
		result.Issues[i].Analyzer = r.name
	}
	return result
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
