package scoring

import (
	"github.com/dotcommander/thinkcheck/internal/types"
)

// Analyzer weights in percent. They sum to 100.
const (
	WeightStructure    = 25
	WeightSyntax       = 25
	WeightContent      = 30
	WeightCompleteness = 20
)

// MaxScore is the starting value of every sub-score.
const MaxScore = 100

// Metric names, in display order.
const (
	MetricStructure    = "structure"
	MetricSyntax       = "syntax"
	MetricContent      = "content"
	MetricCompleteness = "completeness"
	MetricSize         = "size"
	MetricLines        = "lines"
)

// MetricOrder lists metric names in the order renderers show them.
var MetricOrder = []string{
	MetricStructure,
	MetricSyntax,
	MetricContent,
	MetricCompleteness,
	MetricSize,
	MetricLines,
}

// Grades lists every grade from best to worst.
var Grades = []string{"A", "B", "C", "D", "F"}

// SubScore is the result of a single analyzer.
type SubScore struct {
	Score  int           `json:"score"`
	Issues []types.Issue `json:"issues"`
}

// QualityReport is the graded result for one document.
type QualityReport struct {
	Score       int            `json:"score"`       // 0-100 weighted total
	Grade       string         `json:"grade"`       // A, B, C, D, F
	Metrics     map[string]any `json:"metrics"`     // name -> display value, lines is an int
	Issues      []types.Issue  `json:"issues"`      // structure, syntax, content, completeness
	Suggestions []string       `json:"suggestions"` // ordered remediation hints

	Structure    int `json:"-"`
	Syntax       int `json:"-"`
	Content      int `json:"-"`
	Completeness int `json:"-"`
}

// GradeFromScore returns the letter grade for a total score.
func GradeFromScore(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// WeightedTotal combines the four sub-scores. Integer arithmetic keeps the
// truncation exact where float weights would drift below whole numbers.
func WeightedTotal(structure, syntax, content, completeness int) int {
	sum := structure*WeightStructure +
		syntax*WeightSyntax +
		content*WeightContent +
		completeness*WeightCompleteness
	return sum / 100
}

// NewQualityReport aggregates analyzer results into a report.
func NewQualityReport(structure, syntax, content, completeness SubScore, metrics map[string]any) QualityReport {
	total := WeightedTotal(structure.Score, syntax.Score, content.Score, completeness.Score)

	issues := make([]types.Issue, 0,
		len(structure.Issues)+len(syntax.Issues)+len(content.Issues)+len(completeness.Issues))
	issues = append(issues, structure.Issues...)
	issues = append(issues, syntax.Issues...)
	issues = append(issues, content.Issues...)
	issues = append(issues, completeness.Issues...)

	return QualityReport{
		Score:        total,
		Grade:        GradeFromScore(total),
		Metrics:      metrics,
		Issues:       issues,
		Suggestions:  Suggest(total, structure.Score, syntax.Score, content.Score, completeness.Score),
		Structure:    structure.Score,
		Syntax:       syntax.Score,
		Content:      content.Score,
		Completeness: completeness.Score,
	}
}

// Failed builds the report for a document that could not be read.
func Failed(err error) QualityReport {
	return QualityReport{
		Score:   0,
		Grade:   "F",
		Metrics: map[string]any{},
		Issues: []types.Issue{{
			Analyzer: types.AnalyzerInput,
			Severity: types.SeverityError,
			Message:  "failed to read file: " + err.Error(),
		}},
		Suggestions: []string{
			SuggestCheckPath,
			SuggestCheckFormat,
		},
	}
}

// IssueStrings renders the issues the way reports print them.
func (r QualityReport) IssueStrings() []string {
	out := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		out[i] = issue.String()
	}
	return out
}
