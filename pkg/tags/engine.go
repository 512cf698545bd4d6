// Package tags suggests tags for a post by matching keywords and content
// against the existing tag vocabulary and fixed trigger tables.
package tags

import (
	"regexp"
	"sort"
	"strings"

	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/tagstore"
)

const maxSuggestions = 8

// tagMapping associates a tag name with the substrings that trigger it.
type tagMapping struct {
	tag      string
	triggers []string
}

// technologyMappings covers technical and business/soft-skill vocabulary.
// A tag fires when at least one trigger appears in title+content.
var technologyMappings = []tagMapping{
	{"Laravel", []string{"laravel", "artisan", "eloquent", "blade", "composer"}},
	{"PHP", []string{"php", "<?php", "namespace", "class", "function"}},
	{"JavaScript", []string{"javascript", "js", "jquery", "dom", "ajax"}},
	{"Vue.js", []string{"vue", "vuejs", "vue.js", "component", "directive"}},
	{"React", []string{"react", "jsx", "component", "props", "state"}},
	{"API", []string{"api", "endpoint", "rest", "json", "http"}},
	{"Database", []string{"database", "mysql", "sql", "query", "migration"}},
	{"Authentication", []string{"auth", "login", "password", "token", "session"}},
	{"Testing", []string{"test", "testing", "phpunit", "assertion", "mock"}},
	{"Performance", []string{"performance", "optimization", "cache", "speed", "memory"}},
	{"Security", []string{"security", "csrf", "xss", "encryption", "hash"}},
	{"Docker", []string{"docker", "container", "dockerfile", "compose"}},
	{"Git", []string{"git", "github", "commit", "branch", "merge"}},

	{"Coaching", []string{"coaching", "coach", "mentor", "mentoring", "guidance"}},
	{"Leadership", []string{"leadership", "leader", "leading", "management", "manager"}},
	{"Communication", []string{"communication", "conversation", "dialogue", "questions", "listening"}},
	{"Professional Development", []string{"professional development", "career growth", "skills development", "self-improvement"}},
	{"Business", []string{"business", "strategy", "entrepreneurship", "corporate", "workplace"}},
	{"Productivity", []string{"productivity", "efficiency", "time management", "habits", "workflow"}},
	{"Team Building", []string{"team building", "teamwork", "collaboration", "relationships"}},
	{"Psychology", []string{"psychology", "behavior", "mindset", "thinking", "mental"}},
	{"Self-Improvement", []string{"self-improvement", "personal growth", "development", "improvement"}},
	{"Book Summary", []string{"summary", "book review", "key insights", "takeaways"}},
	{"Education", []string{"education", "learning", "teaching", "training", "instruction"}},
	{"Sales", []string{"sales", "selling", "negotiation", "customer", "client"}},
}

// contentTypeMapping fires on either a title or a content trigger.
type contentTypeMapping struct {
	tag             string
	titleTriggers   []string
	contentTriggers []string
}

var contentTypeMappings = []contentTypeMapping{
	{"Tutorial",
		[]string{"how to", "tutorial", "guide", "step by step", "learn"},
		[]string{"step 1", "first,", "next,", "finally,", "installation"}},
	{"Review",
		[]string{"review", "comparison", "vs", "versus", "compare"},
		[]string{"pros", "cons", "advantages", "disadvantages", "rating"}},
	{"News",
		[]string{"news", "announced", "released", "update", "2024", "2025"},
		[]string{"recently", "announced", "new version", "update"}},
	{"Beginner Guide",
		[]string{"beginner", "introduction", "getting started", "basics"},
		[]string{"beginner", "basic", "simple", "easy", "introduction"}},
	{"Advanced",
		[]string{"advanced", "expert", "deep dive", "mastering"},
		[]string{"complex", "advanced", "sophisticated", "expert"}},
	{"Best Practices",
		[]string{"best practices", "tips", "recommendations", "should"},
		[]string{"best practice", "recommend", "should", "avoid", "tip"}},
}

var (
	beginnerPattern     = regexp.MustCompile(`\b(beginner|basic|introduction|getting started|simple|easy|first time)\b`)
	intermediatePattern = regexp.MustCompile(`\b(intermediate|moderate|practical|implementation|building)\b`)
	advancedPattern     = regexp.MustCompile(`\b(advanced|expert|complex|optimization|architecture|deep dive|mastering)\b`)
)

// Engine suggests tags using the tag store and configuration.
type Engine struct {
	store tagstore.Store
	cfg   *models.Config
}

// NewEngine builds a suggestion engine.
func NewEngine(store tagstore.Store, cfg *models.Config) *Engine {
	return &Engine{store: store, cfg: cfg}
}

// SuggestTags returns up to 8 tag suggestions, descending by confidence.
// Tag-store reads are best-effort: a store failure degrades to suggestions
// computed without existing-tag knowledge rather than an error.
func (e *Engine) SuggestTags(title, content string, keywords []string) []models.TagSuggestion {
	existing, _ := e.store.ListTags()

	candidates := newCandidateSet()
	candidates.addAll(matchKeywordsToExistingTags(keywords, existing))
	candidates.addAll(e.technologyTags(title, content))
	candidates.addAll(e.contentTypeTags(title, content))
	candidates.addAll(skillLevelTags(title, content))
	candidates.addAll(e.popularSimilarTags(keywords))

	suggestions := make([]models.TagSuggestion, 0, len(candidates.order))
	for _, name := range candidates.order {
		exists, _ := e.store.TagExists(name)
		suggestions = append(suggestions, models.TagSuggestion{
			Name:       name,
			Confidence: e.confidence(name, exists),
			Reason:     e.reason(name, exists),
			Exists:     exists,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// matchKeywordsToExistingTags matches extracted keywords against the stored
// vocabulary: exact match, or substring containment either way guarded by a
// minimum tag length to avoid noise.
func matchKeywordsToExistingTags(keywords []string, existing []tagstore.Tag) []string {
	var matches []string
	for _, keyword := range keywords {
		kwLower := strings.ToLower(keyword)
		for _, tag := range existing {
			tagLower := strings.ToLower(tag.Name)
			if kwLower == tagLower {
				matches = append(matches, tag.Name)
				continue
			}
			if len(tag.Name) > 2 &&
				(strings.Contains(kwLower, tagLower) || strings.Contains(tagLower, kwLower)) {
				matches = append(matches, tag.Name)
			}
		}
	}
	return matches
}

func (e *Engine) technologyTags(title, content string) []string {
	combined := strings.ToLower(title + " " + content)

	var tags []string
	for _, mapping := range technologyMappings {
		for _, trigger := range mapping.triggers {
			if strings.Contains(combined, trigger) {
				tags = append(tags, mapping.tag)
				break
			}
		}
	}
	return tags
}

func (e *Engine) contentTypeTags(title, content string) []string {
	titleLower := strings.ToLower(title)
	contentLower := strings.ToLower(content)

	var tags []string
	for _, mapping := range contentTypeMappings {
		if containsAny(titleLower, mapping.titleTriggers) || containsAny(contentLower, mapping.contentTriggers) {
			tags = append(tags, mapping.tag)
		}
	}
	return tags
}

func skillLevelTags(title, content string) []string {
	combined := strings.ToLower(title + " " + content)

	var tags []string
	if beginnerPattern.MatchString(combined) {
		tags = append(tags, "Beginner")
	}
	if intermediatePattern.MatchString(combined) {
		tags = append(tags, "Intermediate")
	}
	if advancedPattern.MatchString(combined) {
		tags = append(tags, "Advanced")
	}
	return tags
}

// popularSimilarTags compares keywords against the most-used stored tags
// with a fuzzy similarity metric.
func (e *Engine) popularSimilarTags(keywords []string) []string {
	popular, err := e.store.PopularTags(e.cfg.PopularTagLimit)
	if err != nil {
		return nil
	}

	var suggestions []string
	for _, keyword := range keywords {
		for _, tag := range popular {
			if Similarity(keyword, tag.Name) > e.cfg.SimilarityThreshold {
				suggestions = append(suggestions, tag.Name)
			}
		}
	}
	return suggestions
}

func (e *Engine) confidence(tag string, exists bool) int {
	confidence := 50
	if exists {
		confidence += 20
	}
	if containsString(e.cfg.TechTerms, tag) {
		confidence += 15
	}
	if containsString(e.cfg.ContentTypeLabels, tag) {
		confidence += 10
	}
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

func (e *Engine) reason(tag string, exists bool) string {
	if exists {
		return "Matches existing tag"
	}
	if containsString(e.cfg.TechTerms, tag) {
		return "Technology mentioned in content"
	}
	return "Extracted from content analysis"
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// candidateSet deduplicates tag names while preserving first-seen order.
type candidateSet struct {
	order []string
	seen  map[string]struct{}
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]struct{})}
}

func (c *candidateSet) addAll(names []string) {
	for _, name := range names {
		if _, dup := c.seen[name]; dup {
			continue
		}
		c.seen[name] = struct{}{}
		c.order = append(c.order, name)
	}
}
