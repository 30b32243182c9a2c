package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/thinkcheck/internal/batch"
	"github.com/dotcommander/thinkcheck/internal/scoring"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	w       io.Writer
	version string
	indent  bool
	now     func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer, version string, indent bool) *JSONFormatter {
	return &JSONFormatter{
		w:       w,
		version: version,
		indent:  indent,
		now:     time.Now,
	}
}

// Format writes every result and, for more than one file, the batch summary.
func (f *JSONFormatter) Format(results []batch.Result) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "thinkcheck",
			Version:   f.version,
			Timestamp: f.now().Format(time.RFC3339),
		},
		Results: make([]JSONResult, len(results)),
	}

	for i, res := range results {
		report.Results[i] = JSONResult{
			File:        res.File,
			Score:       res.Report.Score,
			Grade:       res.Report.Grade,
			Metrics:     res.Report.Metrics,
			Issues:      res.Report.IssueStrings(),
			Suggestions: res.Report.Suggestions,
		}
		if report.Results[i].Suggestions == nil {
			report.Results[i].Suggestions = []string{}
		}
	}

	if len(results) > 1 {
		summary := batch.Summarize(results)
		report.Summary = &summary
	}

	enc := json.NewEncoder(f.w)
	enc.SetEscapeHTML(false)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	return nil
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader       `json:"header"`
	Results []JSONResult     `json:"results"`
	Summary *scoring.Summary `json:"summary,omitempty"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONResult represents a single file's quality report
type JSONResult struct {
	File        string         `json:"file"`
	Score       int            `json:"score"`
	Grade       string         `json:"grade"`
	Metrics     map[string]any `json:"metrics"`
	Issues      []string       `json:"issues"`
	Suggestions []string       `json:"suggestions"`
}
