// Package rubric defines the marker sets and section minimums that documents
// are graded against, and loads them from YAML or JSON files.
package rubric

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotcommander/thinkcheck/internal/cue"
	"gopkg.in/yaml.v3"
)

// SectionMinimum is the shortest acceptable excerpt for a section marker.
type SectionMinimum struct {
	Section   string `yaml:"section" json:"section"`
	MinLength int    `yaml:"min_length" json:"min_length"`
}

// Rubric is the immutable grading configuration. Callers must not modify the
// slices after construction.
type Rubric struct {
	// Missing any required section is a severe defect.
	RequiredSections []string `yaml:"required_sections" json:"required_sections"`
	// Missing a recommended section is a minor defect.
	RecommendedSections []string `yaml:"recommended_sections" json:"recommended_sections"`
	// Checked in order by the completeness analyzer.
	SectionMinimums []SectionMinimum `yaml:"section_minimums" json:"section_minimums"`
}

// Default returns the compiled-in rubric.
func Default() *Rubric {
	return &Rubric{
		RequiredSections: []string{
			"defun",
			"目标",
			"思维模型",
		},
		RecommendedSections: []string{
			"人格特质",
			"核心信念",
			"语言武器库",
			"执行流程",
			"质量检验标准",
			"禁忌清单",
		},
		SectionMinimums: []SectionMinimum{
			{Section: "目标", MinLength: 20},
			{Section: "核心信念", MinLength: 30},
			{Section: "思维模型", MinLength: 50},
		},
	}
}

// MalformedError reports a rubric that failed schema validation.
type MalformedError struct {
	Source   string
	Problems []cue.ValidationError
}

func (e *MalformedError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return fmt.Sprintf("malformed rubric %s: %s", e.Source, strings.Join(msgs, "; "))
}

// Loader reads rubric files and validates them against the embedded schema.
type Loader struct {
	validator *cue.Validator
}

// NewLoader compiles the embedded schemas.
func NewLoader() (*Loader, error) {
	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("loading rubric schema: %w", err)
	}
	return &Loader{validator: v}, nil
}

// Load reads a rubric file. An empty path yields the default rubric.
func (l *Loader) Load(path string) (*Rubric, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rubric file: %w", err)
	}
	return l.Parse(path, data)
}

// Parse decodes YAML (or JSON, which is a YAML subset) rubric data.
func (l *Loader) Parse(source string, data []byte) (*Rubric, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing rubric %s: %w", source, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	problems, err := l.validator.ValidateRubric(raw)
	if err != nil {
		return nil, fmt.Errorf("validating rubric %s: %w", source, err)
	}
	if len(problems) > 0 {
		return nil, &MalformedError{Source: source, Problems: problems}
	}

	var r Rubric
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding rubric %s: %w", source, err)
	}
	return &r, nil
}

// Marshal renders the rubric as YAML.
func (r *Rubric) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}
