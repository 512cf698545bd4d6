// Package models defines data structures for configuration and analysis results.
package models

import "time"

// KeywordSuggestion is a single extracted keyword with a heuristic confidence.
type KeywordSuggestion struct {
	Name       string `json:"name" yaml:"name"`
	Confidence int    `json:"confidence" yaml:"confidence"` // 0-100
	Reason     string `json:"reason" yaml:"reason"`
}

// TagSuggestion is a proposed tag for a post. Exists reflects a point-in-time
// lookup against the tag store, not a transactional guarantee.
type TagSuggestion struct {
	Name       string `json:"name" yaml:"name"`
	Confidence int    `json:"confidence" yaml:"confidence"` // 0-100
	Reason     string `json:"reason" yaml:"reason"`
	Exists     bool   `json:"exists" yaml:"exists"`
}

// TopicSuggestion is a coarse subject label, distinct from a keyword.
type TopicSuggestion struct {
	Name       string `json:"name" yaml:"name"`
	Confidence int    `json:"confidence" yaml:"confidence"` // 0-100
	Reason     string `json:"reason" yaml:"reason"`
}

// FAQ candidate sources.
const (
	FAQSourceExplicitQA       = "explicit_qa"
	FAQSourceExplicitQuestion = "explicit_question"
	FAQSourceHeadingQuestion  = "heading_question"
	FAQSourceBoldQuestion     = "bold_question"
	FAQSourceGeneratedPrefix  = "generated_" // followed by the template category
)

// FAQCandidate is a detected or generated question/answer pair.
type FAQCandidate struct {
	ID         string `json:"id" yaml:"id"`
	Question   string `json:"question" yaml:"question"`
	Answer     string `json:"answer" yaml:"answer"`
	Confidence int    `json:"confidence" yaml:"confidence"` // 0-100
	Source     string `json:"source" yaml:"source"`
}

// Suggestions groups everything the analyzer proposes for a post.
type Suggestions struct {
	Tags        []TagSuggestion     `json:"tags" yaml:"tags"`
	Keywords    []KeywordSuggestion `json:"keywords" yaml:"keywords"`
	Topics      []TopicSuggestion   `json:"topics" yaml:"topics"`
	FAQs        []FAQCandidate      `json:"faqs" yaml:"faqs"`
	ContentType string              `json:"content_type" yaml:"content_type"`
	ReadingTime int                 `json:"reading_time" yaml:"reading_time"` // minutes
}

// AnalysisMetadata describes the analyzed input, not the suggestions.
type AnalysisMetadata struct {
	WordCount          int       `json:"word_count" yaml:"word_count"`
	Language           string    `json:"language,omitempty" yaml:"language,omitempty"` // ISO-639-1 if detected
	LanguageConfidence float64   `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	AnalyzedAt         time.Time `json:"analyzed_at" yaml:"analyzed_at"`
}

// AnalysisReport is the aggregate result of one analysis pass.
// Built once per call and immutable after construction.
type AnalysisReport struct {
	Confidence  int              `json:"confidence" yaml:"confidence"` // 0-100
	Suggestions Suggestions      `json:"suggestions" yaml:"suggestions"`
	Metadata    AnalysisMetadata `json:"metadata" yaml:"metadata"`
}
