// Package analyzer runs the full analysis pass over a post: keywords, tags,
// topics, FAQs, content type, reading time, and language.
package analyzer

import (
	"math"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/classifier"
	"github.com/travissutphin/content-analyzer/pkg/faq"
	"github.com/travissutphin/content-analyzer/pkg/keywords"
	"github.com/travissutphin/content-analyzer/pkg/language"
	"github.com/travissutphin/content-analyzer/pkg/tags"
	"github.com/travissutphin/content-analyzer/pkg/tagstore"
	"github.com/travissutphin/content-analyzer/pkg/textutil"
)

const maxTopics = 5

// Per-suggestion confidence bands. Keyword confidence scales with extraction
// score inside its band; topic confidence steps down by list position.
const (
	keywordConfidenceFloor = 60
	keywordConfidenceCeil  = 90
	topicConfidenceFloor   = 65
	topicConfidenceCeil    = 85
)

// Analyzer wires the individual analysis components together.
type Analyzer struct {
	cfg        *models.Config
	extractor  *keywords.Extractor
	tagEngine  *tags.Engine
	detector   *faq.Detector
	classifier *classifier.Classifier
}

// NewAnalyzer builds an analyzer backed by the given tag store.
func NewAnalyzer(store tagstore.Store, cfg *models.Config) *Analyzer {
	return &Analyzer{
		cfg:        cfg,
		extractor:  keywords.NewExtractor(cfg),
		tagEngine:  tags.NewEngine(store, cfg),
		detector:   faq.NewDetector(),
		classifier: classifier.NewClassifier(),
	}
}

// Analyze produces the aggregate report for a post. It never fails; missing
// signals just lower the confidence score.
func (a *Analyzer) Analyze(title, content string) *models.AnalysisReport {
	scored := a.extractor.ExtractScored(title, content)
	terms := make([]string, len(scored))
	for i, kw := range scored {
		terms[i] = kw.Term
	}

	keywordSuggestions := a.keywordSuggestions(scored)
	tagSuggestions := a.tagEngine.SuggestTags(title, content, terms)
	topicSuggestions := a.topicSuggestions(title, content, terms)
	faqs := a.detector.DetectFAQs(content)

	wordCount := textutil.WordCount(content)
	langCode, langConfidence := language.Detect(textutil.StripTags(title + " " + content))

	report := &models.AnalysisReport{
		Suggestions: models.Suggestions{
			Tags:        tagSuggestions,
			Keywords:    keywordSuggestions,
			Topics:      topicSuggestions,
			FAQs:        faqs,
			ContentType: a.classifier.Classify(title, content),
			ReadingTime: ReadingTime(wordCount, a.cfg.ReadingWordsPerMinute),
		},
		Metadata: models.AnalysisMetadata{
			WordCount:          wordCount,
			Language:           langCode,
			LanguageConfidence: langConfidence,
			AnalyzedAt:         time.Now().UTC(),
		},
	}
	report.Confidence = aggregateConfidence(report)
	return report
}

// ReadingTime estimates minutes to read, never below one minute.
func ReadingTime(wordCount, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}
	minutes := int(math.Ceil(float64(wordCount) / float64(wordsPerMinute)))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// keywordSuggestions maps extraction scores into the keyword confidence
// band. The strongest keyword gets the ceiling, the rest scale with their
// score relative to it.
func (a *Analyzer) keywordSuggestions(scored []keywords.ScoredKeyword) []models.KeywordSuggestion {
	if len(scored) == 0 {
		return nil
	}

	maxScore := scored[0].Score
	span := float64(keywordConfidenceCeil - keywordConfidenceFloor)

	suggestions := make([]models.KeywordSuggestion, len(scored))
	for i, kw := range scored {
		confidence := keywordConfidenceFloor
		if maxScore > 0 {
			confidence += int(math.Round(span * kw.Score / maxScore))
		}
		suggestions[i] = models.KeywordSuggestion{
			Name:       kw.Term,
			Confidence: confidence,
			Reason:     a.keywordReason(kw.Term),
		}
	}
	return suggestions
}

func (a *Analyzer) keywordReason(term string) string {
	termLower := strings.ToLower(term)
	for _, tech := range a.cfg.TechTerms {
		if strings.ToLower(tech) == termLower {
			return "Technical term found in content"
		}
	}
	return "Frequent term in title and content"
}

// topicSuggestions derives coarse subject labels from three sources:
// configured tech terms present in the text, business themes fuzzy-matched
// from extracted keywords, and mid-length headings. Confidence steps down by
// position inside the topic band.
func (a *Analyzer) topicSuggestions(title, content string, extractedKeywords []string) []models.TopicSuggestion {
	type topicCandidate struct {
		name   string
		reason string
	}

	seen := make(map[string]struct{})
	var candidates []topicCandidate
	push := func(name, reason string) {
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, topicCandidate{name: name, reason: reason})
	}

	combined := strings.ToLower(title + " " + content)
	for _, term := range a.cfg.TechTerms {
		if strings.Contains(combined, strings.ToLower(term)) {
			push(term, "Technology discussed in content")
		}
	}

	for _, keyword := range extractedKeywords {
		kwLower := strings.ToLower(keyword)
		for _, business := range a.cfg.BusinessKeywords {
			if strings.Contains(kwLower, business) || strings.Contains(business, kwLower) {
				push(capitalize(business), "Business theme detected")
			}
		}
	}

	for _, heading := range headingTopics(content) {
		push(heading, "Section heading")
	}

	if len(candidates) > maxTopics {
		candidates = candidates[:maxTopics]
	}

	suggestions := make([]models.TopicSuggestion, len(candidates))
	for i, c := range candidates {
		confidence := topicConfidenceCeil - i*5
		if confidence < topicConfidenceFloor {
			confidence = topicConfidenceFloor
		}
		suggestions[i] = models.TopicSuggestion{
			Name:       c.name,
			Confidence: confidence,
			Reason:     c.reason,
		}
	}
	return suggestions
}

// headingTopics pulls heading text of plausible topic length from markup.
func headingTopics(content string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var topics []string
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		text := textutil.CollapseWhitespace(sel.Text())
		if len(text) > 5 && len(text) < 50 {
			topics = append(topics, text)
		}
	})
	return topics
}

// aggregateConfidence combines the per-signal contributions into a 0-100
// score for the whole report.
func aggregateConfidence(report *models.AnalysisReport) int {
	confidence := 0

	if n := len(report.Suggestions.Keywords) * 5; n > 30 {
		confidence += 30
	} else {
		confidence += n
	}
	if n := len(report.Suggestions.Tags) * 5; n > 25 {
		confidence += 25
	} else {
		confidence += n
	}
	if n := len(report.Suggestions.Topics) * 4; n > 20 {
		confidence += 20
	} else {
		confidence += n
	}

	switch {
	case report.Metadata.WordCount > 300:
		confidence += 15
	case report.Metadata.WordCount > 100:
		confidence += 10
	}

	if len(report.Suggestions.FAQs) > 0 {
		confidence += 10
	}

	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
