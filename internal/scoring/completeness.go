package scoring

import (
	"fmt"

	"github.com/dotcommander/thinkcheck/internal/rubric"
	"github.com/dotcommander/thinkcheck/internal/types"
)

// Completeness penalties.
const (
	PenaltyThinSection  = 15
	PenaltyNoUsageGuide = 10
)

// NewCompletenessAnalyzer checks that present sections carry enough text.
func NewCompletenessAnalyzer(r *rubric.Rubric, d Detector) *RuleSet {
	var rules []Rule
	for _, sm := range r.SectionMinimums {
		rules = append(rules, thinSection(sm, d))
	}
	rules = append(rules, Flag(
		func(doc string) bool { return !d.HasUsageGuide(doc) },
		PenaltyNoUsageGuide,
		types.SeveritySuggestion,
		"consider adding a usage guide or start function",
	))
	return NewRuleSet(types.AnalyzerCompleteness, rules...)
}

// thinSection fires when the excerpt after a present marker is too short.
// Absent markers are the structure analyzer's concern.
func thinSection(sm rubric.SectionMinimum, d Detector) Rule {
	return func(doc string) (Finding, bool) {
		excerpt, ok := d.SectionExcerpt(doc, sm.Section)
		if !ok || d.Length(excerpt) >= sm.MinLength {
			return Finding{}, false
		}
		return Finding{
			Penalty: PenaltyThinSection,
			Issue: types.Issue{
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("section '%s' is too thin", sm.Section),
			},
		}, true
	}
}
