package keywords

import "strings"

// stopWords is the set of common words excluded from keyword scoring.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "from": {}, "up": {},
	"about": {}, "into": {}, "through": {}, "during": {}, "before": {},
	"after": {}, "above": {}, "below": {}, "between": {}, "among": {},
	"against": {},

	"a": {}, "an": {}, "as": {}, "are": {}, "was": {}, "were": {}, "been": {},
	"be": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "must": {}, "can": {},

	"this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},

	"what": {}, "which": {}, "who": {}, "when": {}, "where": {}, "why": {},
	"how": {},

	"all": {}, "any": {}, "both": {}, "each": {}, "few": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "such": {}, "no": {}, "nor": {},
	"not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {},
	"too": {}, "very": {}, "just": {}, "now": {},
}

// IsStopWord reports whether a word is filtered from keyword analysis.
func IsStopWord(word string) bool {
	_, exists := stopWords[strings.ToLower(word)]
	return exists
}
