// Package faq detects question/answer pairs in post content using explicit
// markers, question-shaped headings and bold text, and templated generation
// from keyword co-occurrence.
package faq

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/textutil"
)

const maxFAQs = 5

// questionStarters match text that opens like a question even without a
// trailing question mark.
var questionStarters = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(what is|what are|what does|what do|what can|what should|what will)\b`),
	regexp.MustCompile(`(?i)\b(how to|how do|how does|how can|how should|how will|how long|how much)\b`),
	regexp.MustCompile(`(?i)\b(why do|why does|why should|why would|why is|why are)\b`),
	regexp.MustCompile(`(?i)\b(when to|when do|when does|when should|when would|when is)\b`),
	regexp.MustCompile(`(?i)\b(where to|where do|where does|where should|where can|where is)\b`),
	regexp.MustCompile(`(?i)\b(which is|which are|which do|which does|which should|which can)\b`),
	regexp.MustCompile(`(?i)\b(can you|can i|can we|can it)\b`),
	regexp.MustCompile(`(?i)\b(is it|is there|is this)\b`),
	regexp.MustCompile(`(?i)\b(are there|are these|are they)\b`),
}

var (
	qaMarkerPattern       = regexp.MustCompile(`(?i)Q:`)
	answerMarkerPattern   = regexp.MustCompile(`(?i)A:`)
	questionMarkerPattern = regexp.MustCompile(`(?i)Question:`)
	fullAnswerPattern     = regexp.MustCompile(`(?i)Answer:`)
	headingPattern        = regexp.MustCompile(`(?is)<h[1-6][^>]*>(.*?)</h[1-6]>`)
	headingOpenPattern    = regexp.MustCompile(`(?i)<h[1-6]`)
	boldPattern           = regexp.MustCompile(`(?is)<(?:b|strong)[^>]*>(.*?)</(?:b|strong)>`)
	afterBoldPattern      = regexp.MustCompile(`^\s*([^<.]*)`)
)

// Detector finds FAQ candidates in markup content.
type Detector struct{}

// NewDetector returns a ready Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFAQs returns up to 5 FAQ candidates with unique questions. Results
// from the four strategies are unioned in strategy order, so higher
// confidence sources win duplicate questions.
func (d *Detector) DetectFAQs(content string) []models.FAQCandidate {
	var faqs []models.FAQCandidate
	faqs = append(faqs, extractExplicitFAQs(content)...)
	faqs = append(faqs, extractQuestionHeadings(content)...)
	faqs = append(faqs, extractBoldQuestions(content)...)
	faqs = append(faqs, generateCommonQuestions(content)...)

	return dedupeByQuestion(faqs, maxFAQs)
}

// extractExplicitFAQs handles "Q: ... A: ..." and "Question: ... Answer: ..."
// marker pairs.
func extractExplicitFAQs(content string) []models.FAQCandidate {
	var faqs []models.FAQCandidate

	for _, segment := range splitAfterMarkers(qaMarkerPattern, content) {
		question, answer, ok := splitOnce(answerMarkerPattern, segment)
		if !ok {
			continue
		}
		question = textutil.CollapseWhitespace(textutil.StripTags(question))
		answer = textutil.CollapseWhitespace(textutil.StripTags(answer))
		if question == "" || answer == "" {
			continue
		}
		faqs = append(faqs, candidate(question, answer, 95, models.FAQSourceExplicitQA))
	}

	for _, segment := range splitAfterMarkers(questionMarkerPattern, content) {
		question, answer, ok := splitOnce(fullAnswerPattern, segment)
		if !ok {
			continue
		}
		question = textutil.CollapseWhitespace(textutil.StripTags(question))
		answer = textutil.CollapseWhitespace(textutil.StripTags(answer))
		if question == "" || answer == "" {
			continue
		}
		faqs = append(faqs, candidate(question, answer, 90, models.FAQSourceExplicitQuestion))
	}

	return faqs
}

// extractQuestionHeadings treats question-shaped headings as FAQ questions
// and captures the text up to the next heading as the answer.
func extractQuestionHeadings(content string) []models.FAQCandidate {
	matches := headingPattern.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return nil
	}

	var faqs []models.FAQCandidate
	for _, m := range matches {
		headingText := textutil.CollapseWhitespace(textutil.StripTags(content[m[2]:m[3]]))
		if !IsQuestion(headingText) {
			continue
		}

		after := content[m[1]:]
		if next := headingOpenPattern.FindStringIndex(after); next != nil {
			after = after[:next[0]]
		}
		answer := textutil.CollapseWhitespace(textutil.StripTags(after))
		if len(answer) <= 20 || len(answer) >= 500 {
			continue
		}

		faqs = append(faqs, candidate(headingText, answer, 80, models.FAQSourceHeadingQuestion))
	}
	return faqs
}

// extractBoldQuestions treats question-shaped bold text as a question and
// the immediately following text, up to the next tag or period, as the
// answer.
func extractBoldQuestions(content string) []models.FAQCandidate {
	matches := boldPattern.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return nil
	}

	var faqs []models.FAQCandidate
	for _, m := range matches {
		boldText := textutil.CollapseWhitespace(textutil.StripTags(content[m[2]:m[3]]))
		if len(boldText) <= 10 || !IsQuestion(boldText) {
			continue
		}

		after := content[m[1]:]
		answerMatch := afterBoldPattern.FindStringSubmatch(after)
		if answerMatch == nil {
			continue
		}
		answer := strings.TrimSpace(answerMatch[1])
		if len(answer) <= 15 || len(answer) >= 300 {
			continue
		}

		faqs = append(faqs, candidate(boldText, answer, 70, models.FAQSourceBoldQuestion))
	}
	return faqs
}

// generateCommonQuestions synthesizes FAQs for fixed categories whose
// keywords co-occur in the content. The answer is assembled from the two
// sentences with the most keyword hits.
func generateCommonQuestions(content string) []models.FAQCandidate {
	contentLower := strings.ToLower(textutil.StripTags(content))

	var faqs []models.FAQCandidate
	for _, tmpl := range questionTemplates {
		hits := 0
		for _, keyword := range tmpl.keywords {
			if strings.Contains(contentLower, keyword) {
				hits++
			}
		}
		if hits < 2 {
			continue
		}

		answer := synthesizeAnswer(content, tmpl.keywords)
		if answer == "" {
			continue
		}

		faqs = append(faqs, candidate(
			tmpl.question,
			answer,
			50+hits*10,
			models.FAQSourceGeneratedPrefix+tmpl.category,
		))
	}
	return faqs
}

// synthesizeAnswer scores sentences by keyword hits and joins the top two.
func synthesizeAnswer(content string, keywords []string) string {
	type scoredSentence struct {
		text  string
		score int
	}

	var relevant []scoredSentence
	for _, sentence := range textutil.Sentences(content) {
		sentenceLower := strings.ToLower(sentence)
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(sentenceLower, keyword) {
				score++
			}
		}
		if score >= 1 {
			relevant = append(relevant, scoredSentence{text: sentence, score: score})
		}
	}
	if len(relevant) == 0 {
		return ""
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].score > relevant[j].score
	})
	if len(relevant) > 2 {
		relevant = relevant[:2]
	}

	parts := make([]string, len(relevant))
	for i, s := range relevant {
		parts[i] = s.text
	}
	answer := strings.Join(parts, " ")
	if len(answer) <= 20 {
		return ""
	}
	return answer
}

// IsQuestion reports whether text ends with a question mark or opens with a
// question phrase.
func IsQuestion(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if strings.HasSuffix(text, "?") {
		return true
	}
	for _, pattern := range questionStarters {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func candidate(question, answer string, confidence int, source string) models.FAQCandidate {
	if confidence > 100 {
		confidence = 100
	}
	return models.FAQCandidate{
		ID:         uuid.NewString(),
		Question:   question,
		Answer:     answer,
		Confidence: confidence,
		Source:     source,
	}
}

func dedupeByQuestion(faqs []models.FAQCandidate, limit int) []models.FAQCandidate {
	seen := make(map[string]struct{}, len(faqs))
	out := make([]models.FAQCandidate, 0, limit)
	for _, faq := range faqs {
		if _, dup := seen[faq.Question]; dup {
			continue
		}
		seen[faq.Question] = struct{}{}
		out = append(out, faq)
		if len(out) == limit {
			break
		}
	}
	return out
}

// splitAfterMarkers returns the text segments following each marker match.
func splitAfterMarkers(marker *regexp.Regexp, content string) []string {
	locs := marker.FindAllStringIndex(content, -1)
	if locs == nil {
		return nil
	}

	segments := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segments = append(segments, content[loc[1]:end])
	}
	return segments
}

// splitOnce splits a segment at the first marker match.
func splitOnce(marker *regexp.Regexp, segment string) (before, after string, ok bool) {
	loc := marker.FindStringIndex(segment)
	if loc == nil {
		return "", "", false
	}
	return segment[:loc[0]], segment[loc[1]:], true
}
