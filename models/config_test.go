package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.TechTerms) == 0 {
		t.Error("default tech terms empty")
	}
	if len(cfg.BusinessKeywords) == 0 {
		t.Error("default business keywords empty")
	}
	if cfg.ReadingWordsPerMinute != 200 {
		t.Errorf("reading rate = %d, want 200", cfg.ReadingWordsPerMinute)
	}
	if cfg.SimilarityThreshold != 0.6 {
		t.Errorf("similarity threshold = %v, want 0.6", cfg.SimilarityThreshold)
	}
	if cfg.DefaultSchemaType != "BlogPosting" {
		t.Errorf("default schema type = %q, want BlogPosting", cfg.DefaultSchemaType)
	}
	if len(cfg.SchemaMapping) != 6 {
		t.Errorf("schema mapping has %d entries, want 6", len(cfg.SchemaMapping))
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "reading_words_per_minute: 250\ntech_terms:\n  - Golang\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ReadingWordsPerMinute != 250 {
		t.Errorf("reading rate = %d, want 250 from file", cfg.ReadingWordsPerMinute)
	}
	if len(cfg.TechTerms) != 1 || cfg.TechTerms[0] != "Golang" {
		t.Errorf("tech terms = %v, want just Golang from file", cfg.TechTerms)
	}
	// Unset fields still get defaults.
	if cfg.PopularTagLimit != 20 {
		t.Errorf("popular tag limit = %d, want default 20", cfg.PopularTagLimit)
	}
	if len(cfg.SchemaMapping) == 0 {
		t.Error("schema mapping default not applied")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadConfig() on missing file should error")
	}
}

func TestSchemaConfigFor(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name            string
		schemaType      string
		wantContentType string
		wantFocus       string
	}{
		{name: "how-to", schemaType: "HowTo", wantContentType: "tutorial", wantFocus: "instructional"},
		{name: "faq page", schemaType: "FAQPage", wantContentType: "faq", wantFocus: "question-based"},
		{name: "empty uses default", schemaType: "", wantContentType: "blog_post", wantFocus: "broad"},
		{name: "unknown falls back", schemaType: "Recipe", wantContentType: "blog_post", wantFocus: "broad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := cfg.SchemaConfigFor(tt.schemaType)
			if sc.ContentType != tt.wantContentType {
				t.Errorf("content type = %q, want %q", sc.ContentType, tt.wantContentType)
			}
			if sc.KeywordFocus != tt.wantFocus {
				t.Errorf("keyword focus = %q, want %q", sc.KeywordFocus, tt.wantFocus)
			}
		})
	}
}
