package scoring

// Suggestion texts.
const (
	SuggestReady         = "✨ Excellent quality, ready to use"
	SuggestPolish        = "👍 Good quality, polish it toward 90+"
	SuggestImprove       = "⚠️  Quality needs improvement"
	SuggestStructure     = "📝 Fill in the missing structural sections (personality traits, core beliefs, ...)"
	SuggestSyntax        = "🔧 Fix the Lisp syntax and make sure parentheses are balanced"
	SuggestContent       = "📚 Enrich the content with more thinking models and steps"
	SuggestExamples      = "💡 Add concrete examples and case studies"
	SuggestCompleteness  = "✏️  Expand the sections that are too thin"
	SuggestReExtract     = "🔄 Refine the source text and re-run the extraction"
	SuggestCheckPath     = "Check that the file path is correct"
	SuggestCheckFormat   = "Make sure the file format is correct"
	suggestionPassMark   = 80
	suggestionRerunBelow = 70
)

// Suggest derives remediation hints from the total and the four sub-scores.
// Only the opening band is exclusive; every other hint is additive.
func Suggest(total, structure, syntax, content, completeness int) []string {
	var out []string

	switch {
	case total >= 90:
		out = append(out, SuggestReady)
	case total >= 80:
		out = append(out, SuggestPolish)
	default:
		out = append(out, SuggestImprove)
	}

	if structure < suggestionPassMark {
		out = append(out, SuggestStructure)
	}
	if syntax < suggestionPassMark {
		out = append(out, SuggestSyntax)
	}
	if content < suggestionPassMark {
		out = append(out, SuggestContent, SuggestExamples)
	}
	if completeness < suggestionPassMark {
		out = append(out, SuggestCompleteness)
	}
	if total < suggestionRerunBelow {
		out = append(out, SuggestReExtract)
	}

	return out
}
