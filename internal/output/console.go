package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dotcommander/thinkcheck/internal/batch"
	"github.com/dotcommander/thinkcheck/internal/scoring"
	"github.com/dotcommander/thinkcheck/internal/types"
)

const (
	ruleWidth   = 60
	metricWidth = 30
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	verbose  bool
	minScore int
	styles   printStyles
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(w io.Writer, quiet, verbose, colorize bool, minScore int) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:        w,
		quiet:    quiet,
		verbose:  verbose,
		minScore: minScore,
		styles:   newPrintStyles(w, colorize),
	}
}

// Format prints one report per file followed by a summary when more than one
// file was checked. Quiet mode prints a single line per file.
func (f *ConsoleFormatter) Format(results []batch.Result) error {
	if f.quiet {
		for _, res := range results {
			f.printCompactLine(res)
		}
		return nil
	}

	for _, res := range results {
		f.printReport(res)
		f.printThresholdWarning(res.Report)
	}

	if len(results) > 1 {
		f.printSummary(batch.Summarize(results))
	}
	return nil
}

func (f *ConsoleFormatter) printCompactLine(res batch.Result) {
	mark := "✓"
	if res.Report.Score < f.minScore {
		mark = f.styles.err.Render("✗")
	}
	fmt.Fprintf(f.w, "%s %3d %s %s\n",
		mark, res.Report.Score, f.styles.grade(res.Report.Grade).Render(res.Report.Grade), res.File)
}

func (f *ConsoleFormatter) printReport(res batch.Result) {
	report := res.Report
	heavy := strings.Repeat("=", ruleWidth)
	light := f.styles.dim.Render(strings.Repeat("-", ruleWidth))

	fmt.Fprintln(f.w, f.styles.header.Render(heavy))
	fmt.Fprintln(f.w, f.styles.header.Render("📊 Quality report: "+filepath.Base(res.File)))
	fmt.Fprintln(f.w, f.styles.header.Render(heavy))
	fmt.Fprintln(f.w)

	fmt.Fprintf(f.w, "🎯 Score: %d/100  Grade: %s\n\n",
		report.Score, f.styles.grade(report.Grade).Render(report.Grade))

	fmt.Fprintln(f.w, "📈 Metrics:")
	fmt.Fprintln(f.w, light)
	for _, name := range scoring.MetricOrder {
		value, ok := report.Metrics[name]
		if !ok {
			continue
		}
		fmt.Fprintf(f.w, "  %s %v\n", padDots(name, metricWidth), value)
	}
	fmt.Fprintln(f.w)

	if len(report.Issues) > 0 {
		fmt.Fprintln(f.w, "⚠️  Issues:")
		fmt.Fprintln(f.w, light)
		for _, issue := range report.Issues {
			f.printIssue(issue)
		}
		fmt.Fprintln(f.w)
	} else {
		fmt.Fprintln(f.w, "✅ No obvious issues found")
		fmt.Fprintln(f.w)
	}

	if len(report.Suggestions) > 0 {
		fmt.Fprintln(f.w, "💡 Suggestions:")
		fmt.Fprintln(f.w, light)
		for i, s := range report.Suggestions {
			fmt.Fprintf(f.w, "  %d. %s\n", i+1, s)
		}
		fmt.Fprintln(f.w)
	}

	fmt.Fprintln(f.w, f.styles.header.Render(heavy))
}

// printIssue prints an issue with severity styling. Verbose mode adds the
// analyzer that raised it.
func (f *ConsoleFormatter) printIssue(issue types.Issue) {
	text := issue.String()
	switch issue.Severity {
	case types.SeverityError:
		text = f.styles.err.Render(text)
	case types.SeverityWarning:
		text = f.styles.warn.Render(text)
	}
	if f.verbose && issue.Analyzer != "" {
		text += " " + f.styles.dim.Render("["+issue.Analyzer+"]")
	}
	fmt.Fprintf(f.w, "  %s\n", text)
}

func (f *ConsoleFormatter) printThresholdWarning(report scoring.QualityReport) {
	if report.Score >= f.minScore {
		return
	}
	fmt.Fprintln(f.w, f.styles.warn.Render(
		fmt.Sprintf("⚠️  Warning: score %d is below threshold %d", report.Score, f.minScore)))
	fmt.Fprintln(f.w)
}

func (f *ConsoleFormatter) printSummary(s scoring.Summary) {
	heavy := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(f.w, f.styles.header.Render(heavy))
	fmt.Fprintln(f.w, f.styles.header.Render("📊 Batch summary"))
	fmt.Fprintln(f.w, f.styles.header.Render(heavy))
	fmt.Fprintf(f.w, "Files: %d\n", s.Count)
	fmt.Fprintf(f.w, "Mean score: %.1f/100\n", s.Mean)
	fmt.Fprintf(f.w, "Max score: %d/100\n", s.Max)
	fmt.Fprintf(f.w, "Min score: %d/100\n", s.Min)
	fmt.Fprintln(f.w)

	fmt.Fprintln(f.w, "Grade distribution:")
	for _, g := range scoring.Grades {
		n := s.Grades[g]
		if n == 0 {
			continue
		}
		fmt.Fprintf(f.w, "  %s: %s (%d)\n", f.styles.grade(g).Render(g), f.renderBar(n), n)
	}
	fmt.Fprintln(f.w)
}

// renderBar draws one block per document.
func (f *ConsoleFormatter) renderBar(count int) string {
	return f.styles.bar.Render(strings.Repeat("█", count))
}

// padDots left-aligns name and fills the rest of width with dots.
func padDots(name string, width int) string {
	n := utf8.RuneCountInString(name)
	if n >= width {
		return name
	}
	return name + strings.Repeat(".", width-n)
}
