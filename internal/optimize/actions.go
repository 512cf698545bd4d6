package optimize

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/travissutphin/content-analyzer/internal/common"
	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/ai"
	"github.com/travissutphin/content-analyzer/pkg/analyzer"
	"github.com/travissutphin/content-analyzer/pkg/caching"
	"github.com/travissutphin/content-analyzer/pkg/fetcher"
	"github.com/travissutphin/content-analyzer/pkg/optimize"
	"github.com/travissutphin/content-analyzer/pkg/tagstore"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// OptimizeAction runs SEO optimization for one post and prints the unified
// keyword/tag result.
func OptimizeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	store, err := common.OpenStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	f, err := newFetcher(c)
	if err != nil {
		return err
	}

	input, err := common.ResolveContent(c, f)
	if err != nil {
		return err
	}

	collaborator := selectCollaborator(c, store, cfg)
	logger.Info("optimizing content",
		"title", input.Title,
		"analyzer", collaborator.Name(),
		"estimated_cost_usd", collaborator.EstimatedCost())

	opts := models.DefaultOptimizeOptions()
	opts.UseAI = !c.Bool("no-ai")
	if path := c.String("overrides"); path != "" {
		overrides, err := loadOverrides(path)
		if err != nil {
			return err
		}
		opts.ManualOverrides = overrides
	}

	req := models.OptimizeRequest{
		Title:      input.Title,
		Content:    input.Content,
		SchemaType: c.String("schema"),
		TagIDs:     c.Int64Slice("tags"),
	}

	service := optimize.NewService(collaborator, store, cfg)
	result, err := service.OptimizeContent(c.Context, req, opts)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	logger.Info("optimization complete",
		"method", result.OptimizationData.Method,
		"keywords", len(result.SEOKeywords),
		"tags", len(result.EnhancedTags))

	return common.WriteOutput(c, result)
}

// selectCollaborator prefers the hosted model when an API key is configured
// and falls back to the always-available local analyzer.
func selectCollaborator(c *cli.Context, store tagstore.Store, cfg *models.Config) ai.ContentAnalyzer {
	apiKey := c.String("api-key")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey != "" {
		return ai.NewOpenAIAnalyzer(apiKey)
	}
	return ai.NewBasicAnalyzer(analyzer.NewAnalyzer(store, cfg))
}

// loadOverrides reads a YAML or JSON manual-overrides file.
func loadOverrides(path string) (*models.ManualOverrides, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}

	var overrides models.ManualOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file: %w", err)
	}
	return &overrides, nil
}

func newFetcher(c *cli.Context) (*fetcher.Fetcher, error) {
	dir := c.String("cache-dir")
	if dir == "" {
		return fetcher.NewFetcher(nil), nil
	}

	maxAge, err := time.ParseDuration(c.String("max-age"))
	if err != nil {
		return nil, fmt.Errorf("invalid max-age duration: %w", err)
	}
	cache, err := caching.NewCache(dir, maxAge)
	if err != nil {
		return nil, err
	}
	return fetcher.NewFetcher(cache), nil
}
