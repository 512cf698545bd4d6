// Package ai defines the content analysis collaborator abstraction and its
// implementations: a hosted model client and a local heuristic fallback.
package ai

import (
	"context"

	"github.com/travissutphin/content-analyzer/models"
)

// ContentAnalyzer is a pluggable analysis backend. Implementations report
// their own availability and rough cost/quality characteristics so callers
// can pick or fall back between them.
type ContentAnalyzer interface {
	// AnalyzeContent produces a full analysis report for the post.
	AnalyzeContent(ctx context.Context, title, content string) (*models.AnalysisReport, error)

	// IsAvailable reports whether the backend can serve requests right now.
	IsAvailable() bool

	// Name identifies the backend, e.g. the model id.
	Name() string

	// EstimatedCost is the approximate cost per analysis in USD.
	EstimatedCost() float64

	// EstimatedTime is the approximate seconds per analysis.
	EstimatedTime() int

	// QualityRating is a 1-5 self-assessment of suggestion quality.
	QualityRating() int
}
