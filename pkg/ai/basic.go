package ai

import (
	"context"

	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/analyzer"
)

// BasicAnalyzer runs the local heuristic pipeline. It is always available
// and free, at the bottom of the quality scale.
type BasicAnalyzer struct {
	local *analyzer.Analyzer
}

// NewBasicAnalyzer wraps the local analyzer as a ContentAnalyzer.
func NewBasicAnalyzer(local *analyzer.Analyzer) *BasicAnalyzer {
	return &BasicAnalyzer{local: local}
}

func (b *BasicAnalyzer) AnalyzeContent(_ context.Context, title, content string) (*models.AnalysisReport, error) {
	return b.local.Analyze(title, content), nil
}

func (b *BasicAnalyzer) IsAvailable() bool      { return true }
func (b *BasicAnalyzer) Name() string           { return "Basic Analysis" }
func (b *BasicAnalyzer) EstimatedCost() float64 { return 0 }
func (b *BasicAnalyzer) EstimatedTime() int     { return 1 }
func (b *BasicAnalyzer) QualityRating() int     { return 2 }
