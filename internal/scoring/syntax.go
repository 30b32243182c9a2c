package scoring

import (
	"fmt"

	"github.com/dotcommander/thinkcheck/internal/types"
)

// Syntax penalties.
const (
	PenaltyPerUnbalanced   = 5
	MaxUnbalancedPenalty   = 50
	PenaltyNoDefinition    = 20
	PenaltyNoLocalComments = 10
)

// NewSyntaxAnalyzer checks delimiter balance, the defun header and comments.
func NewSyntaxAnalyzer(d Detector) *RuleSet {
	return NewRuleSet(types.AnalyzerSyntax,
		unbalancedDelimiters(d),
		Flag(
			func(doc string) bool { return !d.HasEmptyParamDefinition(doc) },
			PenaltyNoDefinition,
			types.SeverityWarning,
			"defun definition format may be incorrect",
		),
		Flag(
			func(doc string) bool { return !d.HasLocalizedComment(doc) },
			PenaltyNoLocalComments,
			types.SeverityWarning,
			"missing Chinese comments",
		),
	)
}

func unbalancedDelimiters(d Detector) Rule {
	return func(doc string) (Finding, bool) {
		opens, closes := d.CountDelimiters(doc)
		if opens == closes {
			return Finding{}, false
		}
		diff := opens - closes
		if diff < 0 {
			diff = -diff
		}
		return Finding{
			Penalty: min(MaxUnbalancedPenalty, diff*PenaltyPerUnbalanced),
			Issue: types.Issue{
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("unbalanced parentheses: %d open, %d close", opens, closes),
			},
		}, true
	}
}
