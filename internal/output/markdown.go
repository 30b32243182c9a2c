package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dotcommander/thinkcheck/internal/batch"
	"github.com/dotcommander/thinkcheck/internal/scoring"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	w        io.Writer
	minScore int
	now      func() time.Time
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(w io.Writer, minScore int) *MarkdownFormatter {
	return &MarkdownFormatter{
		w:        w,
		minScore: minScore,
		now:      time.Now,
	}
}

// Format writes a summary table followed by one section per file.
func (f *MarkdownFormatter) Format(results []batch.Result) error {
	var b strings.Builder

	b.WriteString("# Thinkcheck Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", f.now().Format("2006-01-02 15:04:05"))

	if len(results) > 1 {
		writeMarkdownSummary(&b, batch.Summarize(results))
	}

	b.WriteString("## Results\n\n")
	if len(results) == 0 {
		b.WriteString("*No files found to check.*\n")
	}

	if len(results) > 1 {
		for _, res := range results {
			name := strings.TrimPrefix(res.File, "./")
			fmt.Fprintf(&b, "- [%s](#%s)\n", name, createAnchor(name))
		}
		b.WriteString("\n")
	}

	for _, res := range results {
		f.writeResult(&b, res)
	}

	if _, err := io.WriteString(f.w, b.String()); err != nil {
		return fmt.Errorf("error writing markdown: %w", err)
	}
	return nil
}

func writeMarkdownSummary(b *strings.Builder, s scoring.Summary) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Files | %d |\n", s.Count)
	fmt.Fprintf(b, "| Mean score | %.1f |\n", s.Mean)
	fmt.Fprintf(b, "| Max score | %d |\n", s.Max)
	fmt.Fprintf(b, "| Min score | %d |\n", s.Min)
	b.WriteString("\n")

	b.WriteString("| Grade | Files |\n")
	b.WriteString("|-------|-------|\n")
	for _, g := range scoring.Grades {
		if n := s.Grades[g]; n > 0 {
			fmt.Fprintf(b, "| %s | %s (%d) |\n", g, strings.Repeat("█", n), n)
		}
	}
	b.WriteString("\n")
}

func (f *MarkdownFormatter) writeResult(b *strings.Builder, res batch.Result) {
	report := res.Report
	name := strings.TrimPrefix(res.File, "./")

	fmt.Fprintf(b, "### %s\n\n", name)
	fmt.Fprintf(b, "%s **Score:** %d/100 | **Grade:** %s\n\n", getStatusEmoji(report.Grade), report.Score, report.Grade)
	if report.Score < f.minScore {
		fmt.Fprintf(b, "> ⚠️ Score %d is below threshold %d\n\n", report.Score, f.minScore)
	}

	if len(report.Metrics) > 0 {
		b.WriteString("| Metric | Value |\n")
		b.WriteString("|--------|-------|\n")
		for _, m := range scoring.MetricOrder {
			if v, ok := report.Metrics[m]; ok {
				fmt.Fprintf(b, "| %s | %v |\n", m, v)
			}
		}
		b.WriteString("\n")
	}

	if len(report.Issues) > 0 {
		b.WriteString("#### Issues\n\n")
		for _, issue := range report.Issues {
			fmt.Fprintf(b, "- %s\n", issue)
		}
		b.WriteString("\n")
	}

	if len(report.Suggestions) > 0 {
		b.WriteString("#### Suggestions\n\n")
		for i, s := range report.Suggestions {
			fmt.Fprintf(b, "%d. %s\n", i+1, s)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
}

// getStatusEmoji returns an emoji for the grade
func getStatusEmoji(grade string) string {
	switch grade {
	case "A", "B":
		return "✅"
	case "C", "D":
		return "⚠️"
	default:
		return "❌"
	}
}

// createAnchor creates a markdown-safe anchor
func createAnchor(text string) string {
	anchor := strings.ToLower(text)
	anchor = strings.ReplaceAll(anchor, " ", "-")
	anchor = strings.ReplaceAll(anchor, ".", "")
	anchor = strings.ReplaceAll(anchor, "/", "-")
	return anchor
}
