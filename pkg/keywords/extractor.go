// Package keywords extracts scored keywords from post titles and content
// using term-frequency weighting with technical-term boosts.
package keywords

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/textutil"
)

const (
	titleWeight   = 3.0
	contentWeight = 1.0
	techTermBoost = 2.0

	minTermLen = 3  // inclusive
	maxTermLen = 29 // inclusive

	maxKeywords = 10
)

var (
	camelCasePattern  = regexp.MustCompile(`\b[a-z]+[A-Z][a-zA-Z]*\b`)
	properNounPattern = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)
)

// ScoredKeyword pairs a term with its extraction score.
type ScoredKeyword struct {
	Term  string
	Score float64
}

// WordCount pairs a word with its raw frequency.
type WordCount struct {
	Word  string
	Count int
}

// Extractor scores terms from title and content text.
type Extractor struct {
	techTerms []string
}

// NewExtractor builds an extractor using the config's technical-term list.
func NewExtractor(cfg *models.Config) *Extractor {
	return &Extractor{techTerms: cfg.TechTerms}
}

// Extract returns the top keyword terms, highest scoring first.
// At most 10 terms; ties keep insertion order.
func (e *Extractor) Extract(title, content string) []string {
	scored := e.ExtractScored(title, content)
	terms := make([]string, len(scored))
	for i, kw := range scored {
		terms[i] = kw.Term
	}
	return terms
}

// ExtractScored is Extract with scores preserved, so callers can derive
// per-keyword confidence from extraction strength.
func (e *Extractor) ExtractScored(title, content string) []ScoredKeyword {
	scores := newScoreSet()

	for _, kw := range extractFromText(title, titleWeight) {
		scores.add(kw.Term, kw.Score)
	}
	for _, kw := range extractFromText(content, contentWeight) {
		scores.add(kw.Term, kw.Score)
	}

	// Technical terms get a flat boost; unseen terms enter at the boost value.
	for _, term := range e.technicalTerms(title + " " + content) {
		scores.add(term, techTermBoost)
	}

	ranked := scores.ranked()
	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}
	return ranked
}

// extractFromText tokenizes cleaned text and scores each distinct term by
// frequency, weight, length, and capitalization.
func extractFromText(text string, weight float64) []ScoredKeyword {
	tokens := textutil.Tokenize(textutil.CleanText(text))
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	total := float64(len(tokens))
	var scored []ScoredKeyword
	for _, term := range order {
		if !isCandidate(term) {
			continue
		}

		tf := float64(counts[term]) / total
		lengthBoost := float64(len(term)) / 5
		if lengthBoost > 2.0 {
			lengthBoost = 2.0
		}
		capBoost := 1.0
		if startsUpper(term) {
			capBoost = 1.2
		}

		scored = append(scored, ScoredKeyword{
			Term:  term,
			Score: tf * weight * lengthBoost * capBoost,
		})
	}
	return scored
}

// technicalTerms detects configured tech terms, camelCase identifiers, and
// capitalized proper nouns in the combined text.
func (e *Extractor) technicalTerms(text string) []string {
	seen := make(map[string]struct{})
	var terms []string
	push := func(term string) {
		if len(term) < minTermLen || len(term) > maxTermLen {
			return
		}
		if _, dup := seen[term]; dup {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	lower := strings.ToLower(text)
	for _, term := range e.techTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			push(term)
		}
	}

	for _, match := range camelCasePattern.FindAllString(text, -1) {
		if len(match) > 3 {
			push(match)
		}
	}

	for _, match := range properNounPattern.FindAllString(text, -1) {
		if !IsStopWord(match) {
			push(match)
		}
	}

	return terms
}

// TopFrequent returns the most frequent stopword-filtered words in the
// text, lowercased, highest count first. Used as the AI-unavailable
// fallback for keyword generation.
func TopFrequent(text string, n int) []WordCount {
	words := strings.Fields(strings.ToLower(textutil.StripTags(text)))

	counts := make(map[string]int)
	var order []string
	for _, word := range words {
		word = strings.Trim(word, `.,!?;:"'()[]{}`)
		if len(word) <= 3 || IsStopWord(word) {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	ranked := make([]WordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, WordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// isCandidate filters stop words, too-short/too-long terms, and numbers.
func isCandidate(term string) bool {
	if len(term) < minTermLen || len(term) > maxTermLen {
		return false
	}
	if IsStopWord(term) {
		return false
	}
	if _, err := strconv.ParseFloat(term, 64); err == nil {
		return false
	}
	return true
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// scoreSet accumulates term scores while remembering insertion order so the
// final sort is stable and reproducible.
type scoreSet struct {
	order  []string
	scores map[string]float64
}

func newScoreSet() *scoreSet {
	return &scoreSet{scores: make(map[string]float64)}
}

func (s *scoreSet) add(term string, delta float64) {
	if _, seen := s.scores[term]; !seen {
		s.order = append(s.order, term)
	}
	s.scores[term] += delta
}

func (s *scoreSet) ranked() []ScoredKeyword {
	ranked := make([]ScoredKeyword, 0, len(s.order))
	for _, term := range s.order {
		ranked = append(ranked, ScoredKeyword{Term: term, Score: s.scores[term]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
