package optimize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/tagstore"
)

type fakeAI struct {
	report    *models.AnalysisReport
	err       error
	available bool
	name      string
}

func (f *fakeAI) AnalyzeContent(_ context.Context, _, _ string) (*models.AnalysisReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func (f *fakeAI) IsAvailable() bool      { return f.available }
func (f *fakeAI) Name() string           { return f.name }
func (f *fakeAI) EstimatedCost() float64 { return 0 }
func (f *fakeAI) EstimatedTime() int     { return 1 }
func (f *fakeAI) QualityRating() int     { return 3 }

func testReport() *models.AnalysisReport {
	return &models.AnalysisReport{
		Confidence: 82,
		Suggestions: models.Suggestions{
			Keywords: []models.KeywordSuggestion{
				{Name: "laravel deployment", Confidence: 88, Reason: "central theme"},
				{Name: "how to deploy", Confidence: 80, Reason: "title phrase"},
			},
			Topics: []models.TopicSuggestion{
				{Name: "DevOps", Confidence: 70, Reason: "subject area"},
			},
			Tags: []models.TagSuggestion{
				{Name: "Laravel", Confidence: 90, Reason: "framework"},
				{Name: "Deployment", Confidence: 75, Reason: "activity"},
			},
		},
	}
}

func newTestService(collaborator *fakeAI, stored []tagstore.Tag) *Service {
	return NewService(collaborator, tagstore.NewStaticStore(stored), models.DefaultConfig())
}

func TestOptimizeContentAIGenerated(t *testing.T) {
	collaborator := &fakeAI{report: testReport(), available: true, name: "test-model"}
	svc := newTestService(collaborator, []tagstore.Tag{{ID: 7, Name: "Laravel", UsageCount: 3}})

	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{Title: "Deploying Laravel", Content: "<p>body</p>"},
		models.DefaultOptimizeOptions())
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}

	if result.OptimizationData.Method != models.MethodAIGenerated {
		t.Errorf("method = %q, want %q", result.OptimizationData.Method, models.MethodAIGenerated)
	}
	if result.OptimizationData.AIConfidence != 82 {
		t.Errorf("ai confidence = %d, want 82", result.OptimizationData.AIConfidence)
	}
	if result.AIModelUsed != "test-model" {
		t.Errorf("ai model = %q, want test-model", result.AIModelUsed)
	}
	if result.AIOptimizedAt == nil {
		t.Error("AIOptimizedAt not set")
	}

	var topicCount int
	for _, kw := range result.SEOKeywords {
		if kw.Source != models.SourceAI {
			t.Errorf("keyword %q source = %q, want ai", kw.Term, kw.Source)
		}
		if kw.Type == "topic" {
			topicCount++
			if kw.Confidence != 75 {
				t.Errorf("topic keyword confidence = %d, want 75", kw.Confidence)
			}
		}
	}
	if topicCount != 1 {
		t.Errorf("topic keywords = %d, want 1", topicCount)
	}

	// Laravel exists in the store, Deployment does not.
	var existing, created int
	for _, tag := range result.EnhancedTags {
		if tag.RequiresCreation {
			created++
			if tag.TagID != 0 {
				t.Errorf("new tag %q has id %d", tag.Name, tag.TagID)
			}
			if tag.SEOWeight > 0.8 {
				t.Errorf("new tag weight = %v, want <= 0.8", tag.SEOWeight)
			}
		} else {
			existing++
			if tag.TagID != 7 {
				t.Errorf("existing tag id = %d, want 7", tag.TagID)
			}
			if tag.SEOWeight > 0.9 {
				t.Errorf("existing tag weight = %v, want <= 0.9", tag.SEOWeight)
			}
		}
		if !tag.AISuggested {
			t.Errorf("tag %q not marked ai suggested", tag.Name)
		}
	}
	if existing != 1 || created != 1 {
		t.Errorf("existing = %d, created = %d, want 1 and 1", existing, created)
	}
}

func TestOptimizeContentInstructionalFocus(t *testing.T) {
	collaborator := &fakeAI{report: testReport(), available: true, name: "test-model"}
	svc := newTestService(collaborator, nil)

	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{Title: "t", Content: "c", SchemaType: "HowTo"},
		models.DefaultOptimizeOptions())
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}

	for _, kw := range result.SEOKeywords {
		if kw.Term == "how to deploy" {
			if kw.Type != "instructional_primary" {
				t.Errorf("type = %q, want instructional_primary", kw.Type)
			}
			if kw.Confidence != 95 { // 80 + 15
				t.Errorf("confidence = %d, want 95", kw.Confidence)
			}
			return
		}
	}
	t.Fatal("instructional keyword missing from result")
}

func TestOptimizeContentQuestionFocus(t *testing.T) {
	report := testReport()
	report.Suggestions.Keywords = append(report.Suggestions.Keywords,
		models.KeywordSuggestion{Name: "what is zero downtime", Confidence: 60})
	collaborator := &fakeAI{report: report, available: true, name: "test-model"}
	svc := newTestService(collaborator, nil)

	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{Title: "t", Content: "c", SchemaType: "FAQPage"},
		models.DefaultOptimizeOptions())
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}

	for _, kw := range result.SEOKeywords {
		if kw.Term == "what is zero downtime" {
			if kw.SearchIntent != "question" {
				t.Errorf("search intent = %q, want question", kw.SearchIntent)
			}
			if kw.Confidence != 70 { // 60 + 10
				t.Errorf("confidence = %d, want 70", kw.Confidence)
			}
			return
		}
	}
	t.Fatal("question keyword missing from result")
}

func TestOptimizeContentFallbackOnAIError(t *testing.T) {
	collaborator := &fakeAI{err: errors.New("rate limited"), available: true, name: "test-model"}
	svc := newTestService(collaborator, nil)

	content := "<p>caching caching caching performance performance</p>"
	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{Title: "t", Content: content},
		models.DefaultOptimizeOptions())
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}

	if result.OptimizationData.Method != models.MethodFallback {
		t.Errorf("method = %q, want %q", result.OptimizationData.Method, models.MethodFallback)
	}
	if result.OptimizationData.Note == "" {
		t.Error("fallback note missing")
	}
	if result.AIOptimizedAt != nil {
		t.Error("AIOptimizedAt should be nil on fallback")
	}
	if len(result.SEOKeywords) == 0 {
		t.Fatal("fallback produced no keywords")
	}

	top := result.SEOKeywords[0]
	if top.Term != "caching" || top.Confidence != 30 {
		t.Errorf("top fallback keyword = %+v, want caching at 30", top)
	}
	if top.Source != models.SourceFallback || top.Type != "basic" {
		t.Errorf("fallback keyword provenance = %q/%q", top.Source, top.Type)
	}
	if !strings.Contains(top.Reason, "3 times") {
		t.Errorf("fallback reason = %q, want occurrence count", top.Reason)
	}
}

func TestOptimizeContentManualOnly(t *testing.T) {
	collaborator := &fakeAI{report: testReport(), available: true, name: "test-model"}
	svc := newTestService(collaborator, []tagstore.Tag{{ID: 3, Name: "Testing", UsageCount: 1}})

	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{Title: "t", Content: "c", TagIDs: []int64{3, 99}},
		models.OptimizeOptions{UseAI: false})
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}

	if result.OptimizationData.Method != models.MethodManualOnly {
		t.Errorf("method = %q, want %q", result.OptimizationData.Method, models.MethodManualOnly)
	}
	if len(result.SEOKeywords) != 0 {
		t.Errorf("manual-only keywords = %+v, want none", result.SEOKeywords)
	}
	if len(result.EnhancedTags) != 1 {
		t.Fatalf("tags = %+v, want only the known id", result.EnhancedTags)
	}
	tag := result.EnhancedTags[0]
	if tag.TagID != 3 || tag.Source != models.SourceManual || tag.SEOWeight != 0.7 || tag.Confidence != 100 {
		t.Errorf("manual tag = %+v", tag)
	}
}

func TestOptimizeContentUnavailableAI(t *testing.T) {
	collaborator := &fakeAI{report: testReport(), available: false, name: "test-model"}
	svc := newTestService(collaborator, nil)

	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{Title: "t", Content: "c"},
		models.DefaultOptimizeOptions())
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}
	if result.OptimizationData.Method != models.MethodManualOnly {
		t.Errorf("method = %q, want %q", result.OptimizationData.Method, models.MethodManualOnly)
	}
}

func TestOptimizeContentManualOverrides(t *testing.T) {
	collaborator := &fakeAI{report: testReport(), available: true, name: "test-model"}
	svc := newTestService(collaborator, nil)

	opts := models.DefaultOptimizeOptions()
	opts.ManualOverrides = &models.ManualOverrides{
		SEOKeywords: []models.SEOKeyword{
			{Term: "hand picked", Type: "primary", Confidence: 100, SearchIntent: "informational"},
		},
		EnhancedTags: []models.EnhancedTag{
			{Name: "Curated", SEOWeight: 1.0, Confidence: 100},
		},
	}

	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{Title: "t", Content: "c"}, opts)
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}

	if result.OptimizationData.Method != models.MethodAIWithManualOverride {
		t.Errorf("method = %q, want %q", result.OptimizationData.Method, models.MethodAIWithManualOverride)
	}
	if result.SEOKeywords[0].Term != "hand picked" || result.SEOKeywords[0].Source != models.SourceManual {
		t.Errorf("first keyword = %+v, want the manual override", result.SEOKeywords[0])
	}
	if len(result.EnhancedTags) != 1 || result.EnhancedTags[0].Name != "Curated" {
		t.Errorf("tags = %+v, want replaced by overrides", result.EnhancedTags)
	}
	if result.EnhancedTags[0].Source != models.SourceManual {
		t.Errorf("override tag source = %q, want manual", result.EnhancedTags[0].Source)
	}
}

func TestOptimizeContentTagsOnlyOverride(t *testing.T) {
	collaborator := &fakeAI{report: testReport(), available: true, name: "test-model"}
	svc := newTestService(collaborator, nil)

	opts := models.DefaultOptimizeOptions()
	opts.ManualOverrides = &models.ManualOverrides{
		EnhancedTags: []models.EnhancedTag{
			{Name: "Curated", SEOWeight: 1.0, Confidence: 100},
		},
	}

	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{Title: "t", Content: "c"}, opts)
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}

	if result.OptimizationData.Method != models.MethodAIWithManualOverride {
		t.Errorf("method = %q, want %q", result.OptimizationData.Method, models.MethodAIWithManualOverride)
	}
	if len(result.EnhancedTags) != 1 || result.EnhancedTags[0].Name != "Curated" {
		t.Errorf("tags = %+v, want replaced by overrides", result.EnhancedTags)
	}
	if len(result.SEOKeywords) == 0 {
		t.Error("generated keywords should survive a tags-only override")
	}
}

func TestOptimizeContentFallbackScansTitle(t *testing.T) {
	collaborator := &fakeAI{err: errors.New("rate limited"), available: true, name: "test-model"}
	svc := newTestService(collaborator, nil)

	result, err := svc.OptimizeContent(context.Background(),
		models.OptimizeRequest{
			Title:   "kubernetes kubernetes kubernetes",
			Content: "<p>cluster cluster</p>",
		},
		models.DefaultOptimizeOptions())
	if err != nil {
		t.Fatalf("OptimizeContent() error = %v", err)
	}

	if len(result.SEOKeywords) == 0 {
		t.Fatal("fallback produced no keywords")
	}
	top := result.SEOKeywords[0]
	if top.Term != "kubernetes" || top.Confidence != 30 {
		t.Errorf("top fallback keyword = %+v, want kubernetes at 30", top)
	}
}

func TestCleanupResultDedupesAndCaps(t *testing.T) {
	result := &models.OptimizationResult{}
	for i := 0; i < 20; i++ {
		result.SEOKeywords = append(result.SEOKeywords, models.SEOKeyword{
			Term:       "term" + string(rune('a'+i)),
			Confidence: i,
		})
	}
	result.SEOKeywords = append(result.SEOKeywords,
		models.SEOKeyword{Term: "Docker", Confidence: 90},
		models.SEOKeyword{Term: "docker", Confidence: 50},
	)

	cleanupResult(result)

	if len(result.SEOKeywords) != 15 {
		t.Errorf("keywords = %d, want cap of 15", len(result.SEOKeywords))
	}
	if result.SEOKeywords[0].Term != "Docker" || result.SEOKeywords[0].Confidence != 90 {
		t.Errorf("top keyword = %+v, want Docker at 90", result.SEOKeywords[0])
	}
	for _, kw := range result.SEOKeywords {
		if kw.Term == "docker" {
			t.Error("case-insensitive duplicate survived cleanup")
		}
	}
}
