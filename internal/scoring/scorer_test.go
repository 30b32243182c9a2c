package scoring

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dotcommander/thinkcheck/internal/rubric"
)

var errTest = errors.New("boom")

func newTestScorer() *Scorer {
	return NewScorer(rubric.Default())
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return string(data)
}

func TestScorer_EmptyDocument(t *testing.T) {
	report := newTestScorer().Score("")

	if report.Structure != 0 || report.Syntax != 70 || report.Content != 15 || report.Completeness != 90 {
		t.Errorf("sub-scores = %d/%d/%d/%d, want 0/70/15/90",
			report.Structure, report.Syntax, report.Content, report.Completeness)
	}
	if report.Score != 40 {
		t.Errorf("Score = %d, want 40", report.Score)
	}
	if report.Grade != "F" {
		t.Errorf("Grade = %q, want F", report.Grade)
	}
	if len(report.Issues) != 11 {
		t.Errorf("len(Issues) = %d, want 11: %v", len(report.Issues), report.IssueStrings())
	}

	wantMetrics := map[string]any{
		MetricStructure:    "0/100",
		MetricSyntax:       "70/100",
		MetricContent:      "15/100",
		MetricCompleteness: "90/100",
		MetricSize:         "0 chars",
		MetricLines:        1,
	}
	if !reflect.DeepEqual(report.Metrics, wantMetrics) {
		t.Errorf("Metrics = %v, want %v", report.Metrics, wantMetrics)
	}
}

func TestScorer_ExcellentDocument(t *testing.T) {
	report := newTestScorer().Score(readFixture(t, "excellent.lisp"))

	if report.Score < 90 {
		t.Errorf("Score = %d, want >= 90; issues: %v", report.Score, report.IssueStrings())
	}
	if report.Grade != "A" {
		t.Errorf("Grade = %q, want A", report.Grade)
	}
	if len(report.Issues) != 0 {
		t.Errorf("Issues = %v, want none", report.IssueStrings())
	}
	if !reflect.DeepEqual(report.Suggestions, []string{SuggestReady}) {
		t.Errorf("Suggestions = %v", report.Suggestions)
	}
	if got := report.Metrics[MetricSize]; got != "1249 chars" {
		t.Errorf("size metric = %v, want 1249 chars", got)
	}
	if got := report.Metrics[MetricLines]; got != 51 {
		t.Errorf("lines metric = %v, want 51", got)
	}
}

func TestScorer_ThinSections(t *testing.T) {
	report := newTestScorer().Score(readFixture(t, "empty-sections.lisp"))

	if report.Structure != 75 || report.Syntax != 100 || report.Content != 15 || report.Completeness != 45 {
		t.Errorf("sub-scores = %d/%d/%d/%d, want 75/100/15/45",
			report.Structure, report.Syntax, report.Content, report.Completeness)
	}
	if report.Score != 57 || report.Grade != "F" {
		t.Errorf("report = %d/%s, want 57/F", report.Score, report.Grade)
	}
	want := []string{
		SuggestImprove,
		SuggestStructure,
		SuggestContent,
		SuggestExamples,
		SuggestCompleteness,
		SuggestReExtract,
	}
	if !reflect.DeepEqual(report.Suggestions, want) {
		t.Errorf("Suggestions = %q, want %q", report.Suggestions, want)
	}
}

func TestScorer_SingleUnmatchedDelimiter(t *testing.T) {
	s := newTestScorer()
	doc := readFixture(t, "excellent.lisp")

	balanced := s.Score(doc)
	unbalanced := s.Score(doc + "(")

	if balanced.Syntax-unbalanced.Syntax != 5 {
		t.Errorf("syntax penalty = %d, want 5", balanced.Syntax-unbalanced.Syntax)
	}
}

func TestScorer_Idempotent(t *testing.T) {
	s := newTestScorer()
	for _, doc := range []string{"", readFixture(t, "excellent.lisp"), readFixture(t, "empty-sections.lisp")} {
		first := s.Score(doc)
		second := s.Score(doc)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("reports differ for same document:\n%+v\n%+v", first, second)
		}
	}
}

func TestScorer_Invariants(t *testing.T) {
	tokens := []string{
		"(", ")", "(defun ", "助手 ", "()", ";; 中文\n", "目标", "思维模型", "核心信念",
		"人格特质", "(逆向思考法", "(系统思维", "第一步", "第二步", "...", "TODO", "示例",
		"start", "使用指南", "\n", " ", strings.Repeat("内容", 120),
	}
	s := newTestScorer()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		var b strings.Builder
		for n := rng.Intn(60); n > 0; n-- {
			b.WriteString(tokens[rng.Intn(len(tokens))])
		}
		doc := b.String()
		r := s.Score(doc)

		for name, sub := range map[string]int{
			"structure":    r.Structure,
			"syntax":       r.Syntax,
			"content":      r.Content,
			"completeness": r.Completeness,
		} {
			if sub < 0 || sub > 100 {
				t.Fatalf("%s sub-score %d out of range for %q", name, sub, doc)
			}
		}
		if r.Score < 0 || r.Score > 100 {
			t.Fatalf("total %d out of range for %q", r.Score, doc)
		}
		if want := WeightedTotal(r.Structure, r.Syntax, r.Content, r.Completeness); r.Score != want {
			t.Fatalf("total %d, want weighted %d for %q", r.Score, want, doc)
		}
		if r.Grade != GradeFromScore(r.Score) {
			t.Fatalf("grade %q does not match score %d", r.Grade, r.Score)
		}
		if len(r.Suggestions) == 0 {
			t.Fatalf("no suggestions for %q", doc)
		}
	}
}

type stubDetector struct {
	LispDetector
}

// Every marker counts as present.
func (stubDetector) HasMarker(string, string) bool { return true }

func TestScorer_WithDetector(t *testing.T) {
	report := NewScorer(rubric.Default(), WithDetector(stubDetector{})).Score("")
	if report.Structure != 100 {
		t.Errorf("Structure = %d, want 100 with permissive detector", report.Structure)
	}
}

func TestScorer_ScoreFile(t *testing.T) {
	s := newTestScorer()

	t.Run("existing file", func(t *testing.T) {
		report := s.ScoreFile(filepath.Join("testdata", "excellent.lisp"))
		if report.Grade != "A" {
			t.Errorf("Grade = %q, want A", report.Grade)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.lisp")
		report := s.ScoreFile(path)
		if report.Score != 0 || report.Grade != "F" {
			t.Errorf("report = %d/%s, want 0/F", report.Score, report.Grade)
		}
		if len(report.Issues) != 1 || !strings.Contains(report.Issues[0].Message, "file does not exist") {
			t.Errorf("Issues = %v", report.IssueStrings())
		}
		if len(report.Suggestions) != 2 {
			t.Errorf("Suggestions = %v, want two", report.Suggestions)
		}
	})

	t.Run("crlf line endings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "crlf.lisp")
		doc := strings.Repeat(strings.Repeat("a", 18)+"\r\n", 51)
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}
		report := s.ScoreFile(path)
		// 969 characters once "\r" is dropped, which keeps the short penalty.
		if got := report.Metrics[MetricSize]; got != "969 chars" {
			t.Errorf("size = %v, want 969 chars", got)
		}
		if got := report.Metrics[MetricLines]; got != 52 {
			t.Errorf("lines = %v, want 52", got)
		}
		if report.Content != 35 {
			t.Errorf("Content = %d, want 35", report.Content)
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "binary.lisp")
		if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0644); err != nil {
			t.Fatal(err)
		}
		report := s.ScoreFile(path)
		if report.Score != 0 || len(report.Metrics) != 0 {
			t.Errorf("report = %+v, want failure report", report)
		}
	})
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a\nb", "a\nb"},
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\r\r\nb", "a\n\nb"},
		{"a\n\rb", "a\n\nb"},
	}
	for _, tt := range tests {
		if got := NormalizeNewlines(tt.in); got != tt.want {
			t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.lisp")
	if err := os.WriteFile(path, []byte("(defun 助手 ())"), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument() error = %v", err)
	}
	if doc != "(defun 助手 ())" {
		t.Errorf("ReadDocument() = %q", doc)
	}

	crlf := filepath.Join(t.TempDir(), "crlf.lisp")
	if err := os.WriteFile(crlf, []byte("(defun 助手 ())\r\n;; 注释\r(目标 x)\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err = ReadDocument(crlf)
	if err != nil {
		t.Fatalf("ReadDocument(crlf) error = %v", err)
	}
	if doc != "(defun 助手 ())\n;; 注释\n(目标 x)\n" {
		t.Errorf("ReadDocument(crlf) = %q", doc)
	}

	bad := filepath.Join(t.TempDir(), "bad.lisp")
	if err := os.WriteFile(bad, []byte{0xc3, 0x28}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadDocument(bad); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("ReadDocument(bad) error = %v, want ErrInvalidEncoding", err)
	}
}
