package scoring

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/dotcommander/thinkcheck/internal/rubric"
)

// ErrInvalidEncoding is returned for documents that are not UTF-8 text.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// Scorer grades documents against a rubric. It holds no mutable state and
// is safe for concurrent use.
type Scorer struct {
	detector     Detector
	structure    *RuleSet
	syntax       *RuleSet
	content      *RuleSet
	completeness *RuleSet
	log          zerolog.Logger
}

// Option configures a Scorer.
type Option func(*scorerOptions)

type scorerOptions struct {
	detector Detector
	log      zerolog.Logger
}

// WithDetector replaces the default LispDetector.
func WithDetector(d Detector) Option {
	return func(o *scorerOptions) {
		o.detector = d
	}
}

// WithLogger sets the logger used for per-document debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(o *scorerOptions) {
		o.log = log
	}
}

// NewScorer builds the four analyzers for the rubric.
func NewScorer(r *rubric.Rubric, opts ...Option) *Scorer {
	o := scorerOptions{
		detector: NewLispDetector(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	d := o.detector
	return &Scorer{
		detector:     d,
		structure:    NewStructureAnalyzer(r, d),
		syntax:       NewSyntaxAnalyzer(d),
		content:      NewContentAnalyzer(d),
		completeness: NewCompletenessAnalyzer(r, d),
		log:          o.log.With().Str("component", "scoring").Logger(),
	}
}

// Score grades an in-memory document.
func (s *Scorer) Score(doc string) QualityReport {
	structure := s.structure.Analyze(doc)
	syntax := s.syntax.Analyze(doc)
	content := s.content.Analyze(doc)
	completeness := s.completeness.Analyze(doc)

	metrics := map[string]any{
		MetricStructure:    formatOutOf100(structure.Score),
		MetricSyntax:       formatOutOf100(syntax.Score),
		MetricContent:      formatOutOf100(content.Score),
		MetricCompleteness: formatOutOf100(completeness.Score),
		MetricSize:         fmt.Sprintf("%d chars", s.detector.Length(doc)),
		MetricLines:        strings.Count(doc, "\n") + 1,
	}

	report := NewQualityReport(structure, syntax, content, completeness, metrics)
	s.log.Debug().
		Int("structure", structure.Score).
		Int("syntax", syntax.Score).
		Int("content", content.Score).
		Int("completeness", completeness.Score).
		Int("score", report.Score).
		Str("grade", report.Grade).
		Msg("scored document")
	return report
}

// ScoreFile reads and grades a file. A read failure is folded into a
// zero-score report instead of being returned.
func (s *Scorer) ScoreFile(path string) QualityReport {
	doc, err := ReadDocument(path)
	if err != nil {
		s.log.Warn().Err(err).Str("file", path).Msg("document unavailable")
		return Failed(err)
	}
	return s.Score(doc)
}

// ReadDocument loads a UTF-8 text file with line endings normalized.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file does not exist: %s", path)
		}
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return NormalizeNewlines(string(data)), nil
}

// NormalizeNewlines rewrites "\r\n" and lone "\r" as "\n".
func NormalizeNewlines(doc string) string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	return strings.ReplaceAll(doc, "\r", "\n")
}

func formatOutOf100(score int) string {
	return strconv.Itoa(score) + "/100"
}
