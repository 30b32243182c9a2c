// Package types provides shared types used across the thinkcheck codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Severity level constants.
const (
	SeverityError      = "error"
	SeverityWarning    = "warning"
	SeveritySuggestion = "suggestion"
)

// Analyzer name constants. Issues are reported in this order.
const (
	AnalyzerStructure    = "structure"
	AnalyzerSyntax       = "syntax"
	AnalyzerContent      = "content"
	AnalyzerCompleteness = "completeness"
	AnalyzerInput        = "input"
)

// Issue is a single finding raised by an analyzer.
type Issue struct {
	Analyzer string
	Severity string
	Message  string
}

// Glyph returns the display prefix for the issue severity.
func (i Issue) Glyph() string {
	switch i.Severity {
	case SeverityError:
		return "❌"
	case SeverityWarning:
		return "⚠️ "
	case SeveritySuggestion:
		return "💡"
	default:
		return "•"
	}
}

// String renders the issue the way reports show it.
func (i Issue) String() string {
	return i.Glyph() + " " + i.Message
}

// MarshalText lets issues serialize as plain strings in JSON and YAML.
func (i Issue) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
