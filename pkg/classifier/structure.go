package classifier

import "regexp"

// Structure indicators run against the raw markup, not a lowercased copy,
// since several of them look for HTML tags.
var (
	numberedListPattern = regexp.MustCompile(`\b\d+\.\s+`)
	stepSequencePattern = regexp.MustCompile(`(?i)\b(step \d+|first,|second,|third,|next,|then,|finally)`)
	tablePattern        = regexp.MustCompile(`<table|<th|<td`)
	ratingPattern       = regexp.MustCompile(`(?i)\b\d+/\d+|\b\d+\.\d+/\d+|★|\bstars?\b|\brating`)
	datePattern         = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|\d{4})\b`)
	citationPattern     = regexp.MustCompile(`(?i)\b(source|according to|via|citation|reference)`)
	tocPattern          = regexp.MustCompile(`(?i)table of contents|contents:`)
	sectionHeaderPatt   = regexp.MustCompile(`(?i)<h[2-6]`)
	dataPointPattern    = regexp.MustCompile(`(?i)\d+%|\$\d+|\b\d+ users?\b|\b\d+ times?\b`)
	conclusionPattern   = regexp.MustCompile(`(?i)\b(conclusion|summary|results?|findings?|takeaways?)\b`)
	pronounPattern      = regexp.MustCompile(`(?i)\b(i|my|me|our|we|us)\b`)
	anecdotePattern     = regexp.MustCompile(`(?i)\b(story|experience|happened|remember|once)\b`)
)

// structureScore adds the bonus for each requested indicator present in the
// content.
func structureScore(content string, indicators []string) float64 {
	var score float64
	for _, indicator := range indicators {
		score += indicatorBonus(content, indicator)
	}
	return score
}

func indicatorBonus(content, indicator string) float64 {
	switch indicator {
	case "numbered_lists":
		if numberedListPattern.MatchString(content) {
			return 1
		}
	case "step_sequence":
		if len(stepSequencePattern.FindAllString(content, -1)) >= 3 {
			return 1.5
		}
	case "comparison_table":
		if tablePattern.MatchString(content) {
			return 1
		}
	case "rating_system":
		if ratingPattern.MatchString(content) {
			return 1
		}
	case "date_references":
		if datePattern.MatchString(content) {
			return 0.5
		}
	case "source_citations":
		if citationPattern.MatchString(content) {
			return 0.5
		}
	case "table_of_contents":
		if tocPattern.MatchString(content) {
			return 1
		}
	case "section_headers":
		if len(sectionHeaderPatt.FindAllString(content, -1)) >= 3 {
			return 1
		}
	case "data_points":
		if len(dataPointPattern.FindAllString(content, -1)) >= 2 {
			return 1
		}
	case "conclusions":
		if conclusionPattern.MatchString(content) {
			return 0.5
		}
	case "personal_pronouns":
		if len(pronounPattern.FindAllString(content, -1)) >= 5 {
			return 0.5
		}
	case "anecdotes":
		if anecdotePattern.MatchString(content) {
			return 0.5
		}
	}
	return 0
}
