package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/textutil"
)

const (
	defaultModel     = "gpt-4o-mini"
	maxPromptContent = 6000 // bytes of stripped content sent per request
)

const systemPrompt = `You are a blog content analysis expert. Analyze the post and respond with JSON only, no prose, using this shape:
{
  "keywords": [{"name": "...", "confidence": 0-100, "reason": "..."}],
  "tags": [{"name": "...", "confidence": 0-100, "reason": "..."}],
  "topics": [{"name": "...", "confidence": 0-100, "reason": "..."}],
  "faqs": [{"question": "...", "answer": "..."}],
  "content_type": "tutorial|review|news|guide|analysis|blog_post",
  "confidence": 0-100
}`

// OpenAIAnalyzer calls a hosted chat model for content analysis.
type OpenAIAnalyzer struct {
	client openai.Client
	apiKey string
	model  string
}

// NewOpenAIAnalyzer builds the client. An empty API key yields an analyzer
// that reports itself unavailable rather than an error.
func NewOpenAIAnalyzer(apiKey string) *OpenAIAnalyzer {
	return &OpenAIAnalyzer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		apiKey: apiKey,
		model:  defaultModel,
	}
}

// aiResponse is the JSON shape the model is instructed to return.
type aiResponse struct {
	Keywords []struct {
		Name       string `json:"name"`
		Confidence int    `json:"confidence"`
		Reason     string `json:"reason"`
	} `json:"keywords"`
	Tags []struct {
		Name       string `json:"name"`
		Confidence int    `json:"confidence"`
		Reason     string `json:"reason"`
	} `json:"tags"`
	Topics []struct {
		Name       string `json:"name"`
		Confidence int    `json:"confidence"`
		Reason     string `json:"reason"`
	} `json:"topics"`
	FAQs []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"faqs"`
	ContentType string `json:"content_type"`
	Confidence  int    `json:"confidence"`
}

func (o *OpenAIAnalyzer) AnalyzeContent(ctx context.Context, title, content string) (*models.AnalysisReport, error) {
	if !o.IsAvailable() {
		return nil, fmt.Errorf("openai analyzer unavailable: no api key configured")
	}

	stripped := truncateToRuneBoundary(textutil.CollapseWhitespace(textutil.StripTags(content)), maxPromptContent)
	prompt := fmt.Sprintf("Title: %s\n\nContent:\n%s", title, stripped)

	response, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(2000),
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	raw := extractJSON(response.Choices[0].Message.Content)
	var parsed aiResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse openai response: %w", err)
	}

	return o.buildReport(&parsed, content), nil
}

// buildReport maps the model's JSON into the standard report shape.
func (o *OpenAIAnalyzer) buildReport(parsed *aiResponse, content string) *models.AnalysisReport {
	report := &models.AnalysisReport{
		Confidence: clampConfidence(parsed.Confidence),
		Metadata: models.AnalysisMetadata{
			WordCount:  textutil.WordCount(content),
			AnalyzedAt: time.Now().UTC(),
		},
	}

	for _, kw := range parsed.Keywords {
		report.Suggestions.Keywords = append(report.Suggestions.Keywords, models.KeywordSuggestion{
			Name:       kw.Name,
			Confidence: clampConfidence(kw.Confidence),
			Reason:     kw.Reason,
		})
	}
	for _, tag := range parsed.Tags {
		report.Suggestions.Tags = append(report.Suggestions.Tags, models.TagSuggestion{
			Name:       tag.Name,
			Confidence: clampConfidence(tag.Confidence),
			Reason:     tag.Reason,
		})
	}
	for _, topic := range parsed.Topics {
		report.Suggestions.Topics = append(report.Suggestions.Topics, models.TopicSuggestion{
			Name:       topic.Name,
			Confidence: clampConfidence(topic.Confidence),
			Reason:     topic.Reason,
		})
	}
	for _, faq := range parsed.FAQs {
		if faq.Question == "" || faq.Answer == "" {
			continue
		}
		report.Suggestions.FAQs = append(report.Suggestions.FAQs, models.FAQCandidate{
			ID:         uuid.NewString(),
			Question:   faq.Question,
			Answer:     faq.Answer,
			Confidence: report.Confidence,
			Source:     "ai",
		})
	}

	report.Suggestions.ContentType = parsed.ContentType
	return report
}

func (o *OpenAIAnalyzer) IsAvailable() bool      { return o.apiKey != "" }
func (o *OpenAIAnalyzer) Name() string           { return o.model }
func (o *OpenAIAnalyzer) EstimatedCost() float64 { return 0.002 }
func (o *OpenAIAnalyzer) EstimatedTime() int     { return 5 }
func (o *OpenAIAnalyzer) QualityRating() int     { return 4 }

// extractJSON tolerates models that wrap the JSON in a markdown code fence.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}

// truncateToRuneBoundary cuts s to at most max bytes without splitting a
// multi-byte rune.
func truncateToRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
