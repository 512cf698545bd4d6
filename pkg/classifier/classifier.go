// Package classifier assigns one of a closed set of content types to a post
// using pattern tables and structural signals.
package classifier

import (
	"regexp"
	"strings"
)

// Content type labels. DefaultType is returned when no type scores strongly
// enough.
const (
	TypeTutorial = "tutorial"
	TypeReview   = "review"
	TypeNews     = "news"
	TypeGuide    = "guide"
	TypeAnalysis = "analysis"
	TypeBlogPost = "blog_post"

	DefaultType = TypeBlogPost

	// minScore is the floor below which classification falls back to
	// DefaultType.
	minScore = 3.0
)

// typeDescriptor holds the signals for one content type.
type typeDescriptor struct {
	label           string
	titlePatterns   []*regexp.Regexp
	contentPatterns []*regexp.Regexp
	indicators      []string
	weight          float64
}

// descriptors is ordered; ties between equal top scores resolve to the
// earlier entry.
var descriptors = []typeDescriptor{
	{
		label: TypeTutorial,
		titlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(how to|tutorial|guide|step by step|learn|build|create|setup|install)\b`),
			regexp.MustCompile(`\b(building|creating|making|developing|implementing)\b`),
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(step \d+|first,|second,|third,|next,|then,|finally,|installation)\b`),
			regexp.MustCompile(`\b(let's|we'll|you'll|we will|you will)\b`),
		},
		indicators: []string{"numbered_lists", "step_sequence"},
		weight:     3,
	},
	{
		label: TypeReview,
		titlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(review|comparison|vs|versus|compare|analysis|evaluation)\b`),
			regexp.MustCompile(`\b(best|top \d+|rating|benchmark)\b`),
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(pros|cons|advantages|disadvantages|rating|score|performance)\b`),
			regexp.MustCompile(`\b(recommend|not recommend|better|worse|superior|inferior)\b`),
		},
		indicators: []string{"comparison_table", "rating_system"},
		weight:     3,
	},
	{
		label: TypeNews,
		titlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(news|announced|released|update|launch|breaking|latest)\b`),
			regexp.MustCompile(`\b(2024|2025|just|recently|today|yesterday)\b`),
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(announced|released|launched|unveiled|introduced|yesterday|today)\b`),
			regexp.MustCompile(`\b(according to|sources|reports|official|statement)\b`),
		},
		indicators: []string{"date_references", "source_citations"},
		weight:     2,
	},
	{
		label: TypeGuide,
		titlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(guide|handbook|manual|reference|complete|comprehensive|ultimate)\b`),
			regexp.MustCompile(`\b(introduction|getting started|beginner|basics)\b`),
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(overview|introduction|chapter|section|fundamentals|concepts)\b`),
			regexp.MustCompile(`\b(understand|learn|know|important|essential|key)\b`),
		},
		indicators: []string{"table_of_contents", "section_headers"},
		weight:     2,
	},
	{
		label: TypeAnalysis,
		titlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(analysis|deep dive|exploration|investigation|study|research)\b`),
			regexp.MustCompile(`\b(why|understanding|behind|theory|concept)\b`),
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(analyze|examine|investigate|research|study|conclusion)\b`),
			regexp.MustCompile(`\b(hypothesis|theory|evidence|findings|results|data)\b`),
		},
		indicators: []string{"data_points", "conclusions"},
		weight:     2,
	},
	{
		label: TypeBlogPost,
		titlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(thoughts|opinion|experience|story|journey|reflection)\b`),
			regexp.MustCompile(`\b(my|our|personal|sharing|lessons learned)\b`),
		},
		contentPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(i think|in my opinion|personally|i believe|experience|learned)\b`),
			regexp.MustCompile(`\b(recently|last week|yesterday|today|when i)\b`),
		},
		indicators: []string{"personal_pronouns", "anecdotes"},
		weight:     1,
	},
}

// TypeInfo describes a content type for presentation.
type TypeInfo struct {
	Label       string `json:"label" yaml:"label"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// AvailableTypes returns the closed set of content types in declaration
// order.
func AvailableTypes() []TypeInfo {
	return []TypeInfo{
		{TypeTutorial, "Tutorial", "Step-by-step instructional content"},
		{TypeReview, "Review", "Product or service evaluation"},
		{TypeNews, "News", "Latest updates and announcements"},
		{TypeGuide, "Guide", "Comprehensive reference material"},
		{TypeAnalysis, "Analysis", "In-depth examination and research"},
		{TypeBlogPost, "Blog Post", "General blog content and opinions"},
	}
}

// Classifier scores content against the fixed type descriptors.
type Classifier struct{}

// NewClassifier returns a ready Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the winning content type, or DefaultType when nothing
// scores at least the minimum.
func (c *Classifier) Classify(title, content string) string {
	best := DefaultType
	bestScore := -1.0

	for _, desc := range descriptors {
		score := typeScore(title, content, desc)
		if score > bestScore {
			best = desc.label
			bestScore = score
		}
	}

	if bestScore < minScore {
		return DefaultType
	}
	return best
}

// Scores returns the per-type raw scores keyed by label, mostly for
// explain-style output.
func (c *Classifier) Scores(title, content string) map[string]float64 {
	scores := make(map[string]float64, len(descriptors))
	for _, desc := range descriptors {
		scores[desc.label] = typeScore(title, content, desc)
	}
	return scores
}

func typeScore(title, content string, desc typeDescriptor) float64 {
	titleLower := strings.ToLower(title)
	contentLower := strings.ToLower(content)

	var score float64
	for _, pattern := range desc.titlePatterns {
		if pattern.MatchString(titleLower) {
			score += desc.weight
		}
	}

	for _, pattern := range desc.contentPatterns {
		count := len(pattern.FindAllString(contentLower, -1))
		if count > 0 {
			if count > 3 {
				count = 3
			}
			score += float64(count) * desc.weight * 0.5
		}
	}

	score += structureScore(content, desc.indicators)
	return score
}
