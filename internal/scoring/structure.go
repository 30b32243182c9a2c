package scoring

import (
	"fmt"

	"github.com/dotcommander/thinkcheck/internal/rubric"
	"github.com/dotcommander/thinkcheck/internal/types"
)

// Structure penalties.
const (
	PenaltyMissingRequired    = 30
	PenaltyMissingRecommended = 5
)

// NewStructureAnalyzer checks that the rubric's section markers are present.
func NewStructureAnalyzer(r *rubric.Rubric, d Detector) *RuleSet {
	var rules []Rule
	for _, section := range r.RequiredSections {
		rules = append(rules, Flag(
			func(doc string) bool { return !d.HasMarker(doc, section) },
			PenaltyMissingRequired,
			types.SeverityError,
			"missing required section: "+section,
		))
	}
	rules = append(rules, missingRecommended(r.RecommendedSections, d))
	return NewRuleSet(types.AnalyzerStructure, rules...)
}

// missingRecommended charges per absent marker but raises a single issue.
func missingRecommended(sections []string, d Detector) Rule {
	return func(doc string) (Finding, bool) {
		missing := 0
		for _, section := range sections {
			if !d.HasMarker(doc, section) {
				missing++
			}
		}
		if missing == 0 {
			return Finding{}, false
		}
		return Finding{
			Penalty: missing * PenaltyMissingRecommended,
			Issue: types.Issue{
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("missing %d recommended sections", missing),
			},
		}, true
	}
}
