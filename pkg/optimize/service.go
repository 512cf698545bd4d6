// Package optimize unifies AI, fallback, and manual SEO optimization of a
// post into one keyword/tag result shape.
package optimize

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/ai"
	"github.com/travissutphin/content-analyzer/pkg/keywords"
	"github.com/travissutphin/content-analyzer/pkg/tagstore"
)

const (
	maxSEOKeywords     = 15
	maxEnhancedTags    = 10
	fallbackKeywordCap = 10

	manualTagWeight  = 0.7
	existingTagCap   = 0.9
	newTagWeightCap  = 0.8
	instructionBoost = 15
	questionBoost    = 10
)

var (
	instructionalPattern = regexp.MustCompile(`(?i)\b(how\s+to|tutorial|guide|steps?|learn)\b`)
	questionWordPattern  = regexp.MustCompile(`(?i)\b(what|how|why|when|where|which|who)\b`)
)

// Service produces OptimizationResults from post content.
type Service struct {
	ai    ai.ContentAnalyzer
	store tagstore.Store
	cfg   *models.Config
}

// NewService builds the optimization service. The AI collaborator may be nil,
// in which case AI-mode requests degrade to manual-only.
func NewService(collaborator ai.ContentAnalyzer, store tagstore.Store, cfg *models.Config) *Service {
	return &Service{ai: collaborator, store: store, cfg: cfg}
}

// OptimizeContent runs one optimization pass. AI failures degrade to the
// frequency fallback rather than erroring; manual overrides are merged last
// and always win.
func (s *Service) OptimizeContent(ctx context.Context, req models.OptimizeRequest, opts models.OptimizeOptions) (*models.OptimizationResult, error) {
	schemaType := req.SchemaType
	if schemaType == "" {
		schemaType = s.cfg.DefaultSchemaType
	}
	schemaCfg := s.cfg.SchemaConfigFor(schemaType)

	var result *models.OptimizationResult
	if opts.UseAI && s.ai != nil && s.ai.IsAvailable() {
		generated, err := s.generateWithAI(ctx, req, schemaType, schemaCfg)
		if err != nil {
			result = s.fallbackOptimization(req, schemaType, schemaCfg)
		} else {
			result = generated
		}
	} else {
		result = s.manualOnlyOptimization(req, schemaType, schemaCfg)
	}

	if opts.ManualOverrides != nil {
		applyManualOverrides(result, opts.ManualOverrides)
	}

	cleanupResult(result)
	return result, nil
}

// generateWithAI transforms the AI report into the unified result shape and
// applies the schema's keyword focus.
func (s *Service) generateWithAI(ctx context.Context, req models.OptimizeRequest, schemaType string, schemaCfg models.SchemaConfig) (*models.OptimizationResult, error) {
	report, err := s.ai.AnalyzeContent(ctx, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("ai analysis failed: %w", err)
	}

	var seoKeywords []models.SEOKeyword
	for _, kw := range report.Suggestions.Keywords {
		seoKeywords = append(seoKeywords, models.SEOKeyword{
			Term:         kw.Name,
			Type:         "primary",
			Confidence:   kw.Confidence,
			SearchIntent: "informational",
			Source:       models.SourceAI,
			Reason:       kw.Reason,
		})
	}
	for _, topic := range report.Suggestions.Topics {
		seoKeywords = append(seoKeywords, models.SEOKeyword{
			Term:         topic.Name,
			Type:         "topic",
			Confidence:   75,
			SearchIntent: "informational",
			Source:       models.SourceAI,
			Reason:       topic.Reason,
		})
	}
	applyKeywordFocus(seoKeywords, schemaCfg.KeywordFocus)

	enhancedTags := s.manualTags(req.TagIDs)
	enhancedTags = append(enhancedTags, s.matchAITags(report.Suggestions.Tags, enhancedTags)...)

	now := time.Now().UTC()
	return &models.OptimizationResult{
		SEOKeywords:  seoKeywords,
		EnhancedTags: enhancedTags,
		OptimizationData: models.OptimizationData{
			SchemaType:         schemaType,
			ContentType:        schemaCfg.ContentType,
			AIConfidence:       report.Confidence,
			Method:             models.MethodAIGenerated,
			SchemaRequirements: schemaCfg.Requirements,
			Timestamp:          now,
		},
		AIOptimizedAt: &now,
		AIModelUsed:   s.ai.Name(),
	}, nil
}

// applyKeywordFocus boosts keywords matching the schema's search profile.
func applyKeywordFocus(seoKeywords []models.SEOKeyword, focus string) {
	switch focus {
	case "instructional":
		for i := range seoKeywords {
			if instructionalPattern.MatchString(seoKeywords[i].Term) {
				seoKeywords[i].Confidence = clamp(seoKeywords[i].Confidence + instructionBoost)
				seoKeywords[i].Type = "instructional_primary"
			}
		}
	case "question-based":
		for i := range seoKeywords {
			if questionWordPattern.MatchString(seoKeywords[i].Term) {
				seoKeywords[i].Confidence = clamp(seoKeywords[i].Confidence + questionBoost)
				seoKeywords[i].SearchIntent = "question"
			}
		}
	}
}

// matchAITags resolves AI tag suggestions against the stored vocabulary.
// Matches become existing tags, the rest are flagged for creation. Tags
// already selected manually are skipped.
func (s *Service) matchAITags(suggestions []models.TagSuggestion, selected []models.EnhancedTag) []models.EnhancedTag {
	selectedIDs := make(map[int64]struct{}, len(selected))
	for _, tag := range selected {
		selectedIDs[tag.TagID] = struct{}{}
	}

	stored, _ := s.store.ListTags()
	byName := make(map[string]tagstore.Tag, len(stored))
	for _, tag := range stored {
		byName[strings.ToLower(tag.Name)] = tag
	}

	var tags []models.EnhancedTag
	for _, suggestion := range suggestions {
		weight := float64(suggestion.Confidence) / 100

		if existing, ok := byName[strings.ToLower(suggestion.Name)]; ok {
			if _, dup := selectedIDs[existing.ID]; dup {
				continue
			}
			tags = append(tags, models.EnhancedTag{
				TagID:       existing.ID,
				Name:        existing.Name,
				SEOWeight:   minFloat(existingTagCap, weight),
				AISuggested: true,
				Confidence:  suggestion.Confidence,
				Source:      models.SourceAI,
				Reason:      suggestion.Reason,
			})
			continue
		}

		tags = append(tags, models.EnhancedTag{
			Name:             suggestion.Name,
			SEOWeight:        minFloat(newTagWeightCap, weight),
			AISuggested:      true,
			Confidence:       suggestion.Confidence,
			Source:           models.SourceAI,
			Reason:           suggestion.Reason,
			RequiresCreation: true,
		})
	}
	return tags
}

// fallbackOptimization derives keywords from raw word frequency when the AI
// path fails mid-request.
func (s *Service) fallbackOptimization(req models.OptimizeRequest, schemaType string, schemaCfg models.SchemaConfig) *models.OptimizationResult {
	var seoKeywords []models.SEOKeyword
	for _, wc := range keywords.TopFrequent(req.Title+" "+req.Content, fallbackKeywordCap) {
		seoKeywords = append(seoKeywords, models.SEOKeyword{
			Term:         wc.Word,
			Type:         "basic",
			Confidence:   clamp(wc.Count * 10),
			SearchIntent: "informational",
			Source:       models.SourceFallback,
			Reason:       fmt.Sprintf("Appears %d times in content", wc.Count),
		})
	}

	return &models.OptimizationResult{
		SEOKeywords:  seoKeywords,
		EnhancedTags: s.manualTags(req.TagIDs),
		OptimizationData: models.OptimizationData{
			SchemaType:         schemaType,
			ContentType:        schemaCfg.ContentType,
			Method:             models.MethodFallback,
			Note:               "AI unavailable, using basic keyword extraction",
			SchemaRequirements: schemaCfg.Requirements,
			Timestamp:          time.Now().UTC(),
		},
	}
}

// manualOnlyOptimization is the placeholder result when AI is disabled or
// not configured. Keywords come only from overrides merged afterwards.
func (s *Service) manualOnlyOptimization(req models.OptimizeRequest, schemaType string, schemaCfg models.SchemaConfig) *models.OptimizationResult {
	return &models.OptimizationResult{
		EnhancedTags: s.manualTags(req.TagIDs),
		OptimizationData: models.OptimizationData{
			SchemaType:         schemaType,
			ContentType:        schemaCfg.ContentType,
			Method:             models.MethodManualOnly,
			SchemaRequirements: schemaCfg.Requirements,
			Timestamp:          time.Now().UTC(),
		},
	}
}

// manualTags resolves caller-selected tag ids against the store. Unknown ids
// are dropped; a store failure degrades to no manual tags.
func (s *Service) manualTags(tagIDs []int64) []models.EnhancedTag {
	if len(tagIDs) == 0 {
		return nil
	}

	stored, err := s.store.ListTags()
	if err != nil {
		return nil
	}
	byID := make(map[int64]tagstore.Tag, len(stored))
	for _, tag := range stored {
		byID[tag.ID] = tag
	}

	var tags []models.EnhancedTag
	for _, id := range tagIDs {
		tag, ok := byID[id]
		if !ok {
			continue
		}
		tags = append(tags, models.EnhancedTag{
			TagID:      tag.ID,
			Name:       tag.Name,
			SEOWeight:  manualTagWeight,
			Confidence: 100,
			Source:     models.SourceManual,
		})
	}
	return tags
}

// applyManualOverrides merges caller-supplied keywords ahead of generated
// ones and replaces tags wholesale when provided.
func applyManualOverrides(result *models.OptimizationResult, overrides *models.ManualOverrides) {
	if len(overrides.SEOKeywords) > 0 {
		manual := make([]models.SEOKeyword, 0, len(overrides.SEOKeywords))
		for _, kw := range overrides.SEOKeywords {
			kw.Source = models.SourceManual
			manual = append(manual, kw)
		}
		result.SEOKeywords = append(manual, result.SEOKeywords...)
		result.OptimizationData.Method = models.MethodAIWithManualOverride
	}

	if len(overrides.EnhancedTags) > 0 {
		tags := make([]models.EnhancedTag, 0, len(overrides.EnhancedTags))
		for _, tag := range overrides.EnhancedTags {
			tag.Source = models.SourceManual
			tags = append(tags, tag)
		}
		result.EnhancedTags = tags
		result.OptimizationData.Method = models.MethodAIWithManualOverride
	}
}

// cleanupResult sorts keywords by confidence, deduplicates terms, and
// enforces the output caps.
func cleanupResult(result *models.OptimizationResult) {
	sort.SliceStable(result.SEOKeywords, func(i, j int) bool {
		return result.SEOKeywords[i].Confidence > result.SEOKeywords[j].Confidence
	})

	seen := make(map[string]struct{}, len(result.SEOKeywords))
	deduped := result.SEOKeywords[:0]
	for _, kw := range result.SEOKeywords {
		key := strings.ToLower(kw.Term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, kw)
	}
	result.SEOKeywords = deduped

	if len(result.SEOKeywords) > maxSEOKeywords {
		result.SEOKeywords = result.SEOKeywords[:maxSEOKeywords]
	}
	if len(result.EnhancedTags) > maxEnhancedTags {
		result.EnhancedTags = result.EnhancedTags[:maxEnhancedTags]
	}
}

func clamp(c int) int {
	if c > 100 {
		return 100
	}
	if c < 0 {
		return 0
	}
	return c
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
