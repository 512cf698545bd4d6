package models

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SchemaConfig describes how a structured-data schema type shapes
// optimization: which content type it implies, how keywords are focused,
// and which structured-data fields it requires.
type SchemaConfig struct {
	ContentType  string   `yaml:"content_type" json:"content_type"`
	KeywordFocus string   `yaml:"keyword_focus" json:"keyword_focus"` // broad, authoritative, timely, product, instructional, question-based
	Requirements []string `yaml:"requirements" json:"requirements"`
	OptionalFAQs bool     `yaml:"optional_faqs" json:"optional_faqs"`
}

// Config holds all tunables for the analysis pipeline. Zero-value fields are
// filled in by applyDefaults, so a partial YAML file is fine.
type Config struct {
	// TechTerms is the allow-list of known technical terms. Matching is
	// case-insensitive substring.
	TechTerms []string `yaml:"tech_terms"`

	// BusinessKeywords feed topic extraction via fuzzy keyword matching.
	BusinessKeywords []string `yaml:"business_keywords"`

	// ContentTypeLabels are tag names that get the content-type confidence
	// boost in tag suggestion.
	ContentTypeLabels []string `yaml:"content_type_labels"`

	// ReadingWordsPerMinute drives reading-time estimates.
	ReadingWordsPerMinute int `yaml:"reading_words_per_minute"`

	// PopularTagLimit bounds the popular-tag similarity pass.
	PopularTagLimit int `yaml:"popular_tag_limit"`

	// SimilarityThreshold is the fuzzy-match cutoff in [0,1] for suggesting
	// a popular tag from a keyword.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// DefaultSchemaType is used when a request carries no schema type.
	DefaultSchemaType string `yaml:"default_schema_type"`

	// SchemaMapping maps schema types to their optimization behavior.
	SchemaMapping map[string]SchemaConfig `yaml:"schema_mapping"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML config file and fills unset fields with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// SchemaConfigFor resolves the schema configuration for a schema type,
// falling back to a broad blog_post configuration for unknown types.
func (c *Config) SchemaConfigFor(schemaType string) SchemaConfig {
	if schemaType == "" {
		schemaType = c.DefaultSchemaType
	}
	if sc, ok := c.SchemaMapping[schemaType]; ok {
		return sc
	}
	return SchemaConfig{
		ContentType:  "blog_post",
		KeywordFocus: "broad",
	}
}

func (c *Config) applyDefaults() {
	if len(c.TechTerms) == 0 {
		c.TechTerms = defaultTechTerms()
	}
	if len(c.BusinessKeywords) == 0 {
		c.BusinessKeywords = []string{
			"coaching", "leadership", "management", "communication",
			"business", "questions", "habits", "development",
		}
	}
	if len(c.ContentTypeLabels) == 0 {
		c.ContentTypeLabels = []string{"Tutorial", "Review", "Guide", "News", "Tips"}
	}
	if c.ReadingWordsPerMinute <= 0 {
		c.ReadingWordsPerMinute = 200
	}
	if c.PopularTagLimit <= 0 {
		c.PopularTagLimit = 20
	}
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = 0.6
	}
	if c.DefaultSchemaType == "" {
		c.DefaultSchemaType = "BlogPosting"
	}
	if len(c.SchemaMapping) == 0 {
		c.SchemaMapping = defaultSchemaMapping()
	}
}

func defaultTechTerms() []string {
	return []string{
		"Laravel", "PHP", "JavaScript", "TypeScript", "Vue.js", "React", "Angular",
		"Node.js", "Express", "Docker", "Kubernetes", "AWS", "Azure", "GCP",
		"MySQL", "PostgreSQL", "Redis", "MongoDB", "Elasticsearch",
		"API", "REST", "GraphQL", "JSON", "XML", "YAML",
		"Authentication", "Authorization", "JWT", "OAuth", "SAML",
		"Security", "HTTPS", "SSL", "TLS", "CSRF", "XSS",
		"Performance", "Optimization", "Caching", "CDN",
		"Testing", "Unit Testing", "Integration Testing", "E2E",
		"CI/CD", "Git", "GitHub", "GitLab", "Bitbucket",
		"Webpack", "Vite", "npm", "Composer", "Packagist",

		// Business and soft-skill vocabulary
		"Coaching", "Leadership", "Management", "Communication", "Business",
		"Productivity", "Professional Development", "Team Building", "Psychology",
		"Self-Improvement", "Education", "Sales", "Marketing", "Strategy",
	}
}

func defaultSchemaMapping() map[string]SchemaConfig {
	return map[string]SchemaConfig{
		"BlogPosting": {
			ContentType:  "blog_post",
			KeywordFocus: "broad",
			Requirements: []string{"author", "datePublished"},
		},
		"Article": {
			ContentType:  "article",
			KeywordFocus: "authoritative",
			Requirements: []string{"author", "datePublished", "publisher"},
		},
		"NewsArticle": {
			ContentType:  "news",
			KeywordFocus: "timely",
			Requirements: []string{"author", "datePublished", "publisher", "location"},
		},
		"Review": {
			ContentType:  "review",
			KeywordFocus: "product",
			Requirements: []string{"author", "reviewBody", "reviewRating"},
			OptionalFAQs: true,
		},
		"HowTo": {
			ContentType:  "tutorial",
			KeywordFocus: "instructional",
			Requirements: []string{"name", "step", "totalTime"},
			OptionalFAQs: true,
		},
		"FAQPage": {
			ContentType:  "faq",
			KeywordFocus: "question-based",
			Requirements: []string{"mainEntity"},
			OptionalFAQs: true,
		},
	}
}
