package models

import "time"

// Optimization methods recorded in OptimizationData.Method.
const (
	MethodAIGenerated          = "ai_generated"
	MethodFallback             = "fallback"
	MethodManualOnly           = "manual_only"
	MethodAIWithManualOverride = "ai_with_manual_override"
)

// Keyword/tag provenance.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
	SourceManual   = "manual"
)

// SEOKeyword is the unified keyword shape produced by optimization.
type SEOKeyword struct {
	Term         string `json:"term" yaml:"term"`
	Type         string `json:"type" yaml:"type"` // primary, topic, basic, instructional_primary
	Confidence   int    `json:"confidence" yaml:"confidence"`
	SearchIntent string `json:"search_intent" yaml:"search_intent"` // informational, question
	Source       string `json:"source" yaml:"source"`
	Reason       string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// EnhancedTag is a tag with SEO weighting and provenance.
type EnhancedTag struct {
	TagID            int64   `json:"tag_id,omitempty" yaml:"tag_id,omitempty"` // 0 when the tag does not exist yet
	Name             string  `json:"name" yaml:"name"`
	SEOWeight        float64 `json:"seo_weight" yaml:"seo_weight"`
	AISuggested      bool    `json:"ai_suggested" yaml:"ai_suggested"`
	Confidence       int     `json:"confidence" yaml:"confidence"`
	Source           string  `json:"source" yaml:"source"`
	Reason           string  `json:"reason,omitempty" yaml:"reason,omitempty"`
	RequiresCreation bool    `json:"requires_creation,omitempty" yaml:"requires_creation,omitempty"`
}

// OptimizationData carries method and schema context for an optimization run.
type OptimizationData struct {
	SchemaType         string    `json:"schema_type" yaml:"schema_type"`
	ContentType        string    `json:"content_type" yaml:"content_type"`
	AIConfidence       int       `json:"ai_confidence,omitempty" yaml:"ai_confidence,omitempty"`
	Method             string    `json:"method" yaml:"method"`
	Note               string    `json:"note,omitempty" yaml:"note,omitempty"`
	SchemaRequirements []string  `json:"schema_requirements,omitempty" yaml:"schema_requirements,omitempty"`
	Timestamp          time.Time `json:"optimization_timestamp" yaml:"optimization_timestamp"`
}

// OptimizationResult is the unified output of the optimization service.
type OptimizationResult struct {
	SEOKeywords      []SEOKeyword     `json:"seo_keywords" yaml:"seo_keywords"`
	EnhancedTags     []EnhancedTag    `json:"enhanced_tags" yaml:"enhanced_tags"`
	OptimizationData OptimizationData `json:"optimization_data" yaml:"optimization_data"`
	AIOptimizedAt    *time.Time       `json:"ai_optimized_at,omitempty" yaml:"ai_optimized_at,omitempty"`
	AIModelUsed      string           `json:"ai_model_used,omitempty" yaml:"ai_model_used,omitempty"`
}

// OptimizeRequest is the content handed to the optimization service.
type OptimizeRequest struct {
	Title      string  `json:"title" yaml:"title"`
	Content    string  `json:"content" yaml:"content"`
	SchemaType string  `json:"schema_type,omitempty" yaml:"schema_type,omitempty"`
	TagIDs     []int64 `json:"tags,omitempty" yaml:"tags,omitempty"` // manually selected existing tags
}

// ManualOverrides are caller-supplied keyword/tag lists that take precedence
// over anything generated.
type ManualOverrides struct {
	SEOKeywords  []SEOKeyword  `json:"seo_keywords,omitempty" yaml:"seo_keywords,omitempty"`
	EnhancedTags []EnhancedTag `json:"enhanced_tags,omitempty" yaml:"enhanced_tags,omitempty"`
}

// OptimizeOptions controls the optimization mode.
type OptimizeOptions struct {
	UseAI           bool             `json:"use_ai" yaml:"use_ai"`
	ManualOverrides *ManualOverrides `json:"manual_overrides,omitempty" yaml:"manual_overrides,omitempty"`
}

// DefaultOptimizeOptions enables AI with no overrides.
func DefaultOptimizeOptions() OptimizeOptions {
	return OptimizeOptions{UseAI: true}
}
