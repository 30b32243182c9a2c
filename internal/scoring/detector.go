package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Detector holds the match predicates the analyzers are built from. Swapping
// the detector changes what counts as a marker, comment or step without
// touching rule order, penalties or aggregation.
type Detector interface {
	HasMarker(doc, marker string) bool
	CountDelimiters(doc string) (opens, closes int)
	HasEmptyParamDefinition(doc string) bool
	HasLocalizedComment(doc string) bool
	HasPlaceholder(doc string) bool
	CountModelPhrases(doc string) int
	CountStepMarkers(doc string) int
	HasExample(doc string) bool
	SectionExcerpt(doc, marker string) (string, bool)
	HasUsageGuide(doc string) bool
	Length(s string) int
}

// unicodeSpace is the body of a character class matching Unicode whitespace.
// Go's \s only covers ASCII.
const unicodeSpace = `\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}`

var (
	// (defun name ()
	defunRe = regexp.MustCompile(`\(defun[` + unicodeSpace + `]+[^` + unicodeSpace + `]+[` + unicodeSpace + `]+\(\)`)
	// ; comment carrying at least one CJK unified ideograph
	localizedCommentRe = regexp.MustCompile(`;.*[\x{4e00}-\x{9fa5}]`)
	// (xxx法 / (xxx思维 / (xxx模型
	modelPhraseRe = regexp.MustCompile(`\([^)]+法|\([^)]+思维|\([^)]+模型`)
	// 第一步 .. 第十步
	stepMarkerRe = regexp.MustCompile(`第[一二三四五六七八九十]+步`)
)

var (
	placeholderMarkers = []string{"...", "待补充", "TODO"}
	exampleMarkers     = []string{"示例", "例如", "案例"}
	usageGuideMarkers  = []string{"使用指南", "start"}
)

// LispDetector recognizes the parenthesized defun layout of generated agent
// functions with Chinese section markers.
type LispDetector struct{}

// NewLispDetector creates the default detector.
func NewLispDetector() *LispDetector {
	return &LispDetector{}
}

// HasMarker reports a case-sensitive substring match.
func (LispDetector) HasMarker(doc, marker string) bool {
	return strings.Contains(doc, marker)
}

// CountDelimiters counts every opening and closing parenthesis.
func (LispDetector) CountDelimiters(doc string) (opens, closes int) {
	return strings.Count(doc, "("), strings.Count(doc, ")")
}

func (LispDetector) HasEmptyParamDefinition(doc string) bool {
	return defunRe.MatchString(doc)
}

func (LispDetector) HasLocalizedComment(doc string) bool {
	return localizedCommentRe.MatchString(doc)
}

func (LispDetector) HasPlaceholder(doc string) bool {
	return containsAny(doc, placeholderMarkers)
}

func (LispDetector) CountModelPhrases(doc string) int {
	return len(modelPhraseRe.FindAllStringIndex(doc, -1))
}

func (LispDetector) CountStepMarkers(doc string) int {
	return len(stepMarkerRe.FindAllStringIndex(doc, -1))
}

func (LispDetector) HasExample(doc string) bool {
	return containsAny(doc, exampleMarkers)
}

// SectionExcerpt returns the text from the first occurrence of marker up to
// and including the next ')'. Nesting is not tracked: an inner form closes
// the excerpt early.
func (LispDetector) SectionExcerpt(doc, marker string) (string, bool) {
	start := strings.Index(doc, marker)
	if start < 0 {
		return "", false
	}
	rest := doc[start+len(marker):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return "", false
	}
	return doc[start : start+len(marker)+end+1], true
}

func (LispDetector) HasUsageGuide(doc string) bool {
	return containsAny(doc, usageGuideMarkers)
}

// Length counts characters, not bytes.
func (LispDetector) Length(s string) int {
	return utf8.RuneCountInString(s)
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
