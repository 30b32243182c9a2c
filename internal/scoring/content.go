package scoring

import (
	"github.com/dotcommander/thinkcheck/internal/types"
)

// Content thresholds and penalties.
const (
	MinLength         = 500
	RecommendedLength = 1000
	MinModelPhrases   = 2
	MinStepMarkers    = 3

	PenaltyTooShort    = 40
	PenaltyShort       = 20
	PenaltyPlaceholder = 15
	PenaltyFewModels   = 20
	PenaltyFewSteps    = 15
	PenaltyNoExamples  = 10
)

// NewContentAnalyzer judges the substance of the document.
func NewContentAnalyzer(d Detector) *RuleSet {
	return NewRuleSet(types.AnalyzerContent,
		lengthBand(d),
		Flag(
			d.HasPlaceholder,
			PenaltyPlaceholder,
			types.SeverityWarning,
			"contains placeholders or unfinished content",
		),
		Flag(
			func(doc string) bool { return d.CountModelPhrases(doc) < MinModelPhrases },
			PenaltyFewModels,
			types.SeverityWarning,
			"too few thinking models (recommend 3-5)",
		),
		Flag(
			func(doc string) bool { return d.CountStepMarkers(doc) < MinStepMarkers },
			PenaltyFewSteps,
			types.SeverityWarning,
			"too few execution steps (recommend 3-7)",
		),
		Flag(
			func(doc string) bool { return !d.HasExample(doc) },
			PenaltyNoExamples,
			types.SeveritySuggestion,
			"consider adding examples or case studies",
		),
	)
}

// lengthBand applies at most one of the two length penalties.
func lengthBand(d Detector) Rule {
	return func(doc string) (Finding, bool) {
		n := d.Length(doc)
		switch {
		case n < MinLength:
			return Finding{
				Penalty: PenaltyTooShort,
				Issue: types.Issue{
					Severity: types.SeverityError,
					Message:  "content too short, extraction may be incomplete",
				},
			}, true
		case n < RecommendedLength:
			return Finding{
				Penalty: PenaltyShort,
				Issue: types.Issue{
					Severity: types.SeverityWarning,
					Message:  "content is short, consider adding more detail",
				},
			}, true
		default:
			return Finding{}, false
		}
	}
}
