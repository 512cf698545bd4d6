// Package textutil provides the shared text plumbing for the analysis
// pipeline: markup stripping, tokenization, and sentence splitting.
package textutil

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	specialPattern    = regexp.MustCompile(`[^\w\s\-.]`)
	sentencePattern   = regexp.MustCompile(`[.!?]+`)
)

// StripTags removes markup tags, replacing each with a space so adjacent
// blocks don't merge into one token.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, " ")
}

// CollapseWhitespace folds runs of whitespace into single spaces and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// CleanText strips markup, collapses whitespace, and drops punctuation
// except word characters, hyphens, and dots.
func CleanText(s string) string {
	s = StripTags(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = specialPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits text on whitespace and trims surrounding punctuation from
// each token. Empty tokens are dropped.
func Tokenize(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `.,!?;:"'()[]{}`)
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// WordCount counts whitespace-separated words in markup-stripped text.
func WordCount(s string) int {
	return len(strings.Fields(StripTags(s)))
}

// Sentences splits markup-stripped content on sentence punctuation and keeps
// sentences between 16 and 499 characters. Shorter fragments are noise,
// longer ones are usually broken markup.
func Sentences(s string) []string {
	clean := CollapseWhitespace(StripTags(s))
	parts := sentencePattern.Split(clean, -1)

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > 15 && len(p) < 500 {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
