package analyze

import (
	"fmt"
	"time"

	"github.com/travissutphin/content-analyzer/internal/common"
	"github.com/travissutphin/content-analyzer/pkg/analyzer"
	"github.com/travissutphin/content-analyzer/pkg/caching"
	"github.com/travissutphin/content-analyzer/pkg/classifier"
	"github.com/travissutphin/content-analyzer/pkg/faq"
	"github.com/travissutphin/content-analyzer/pkg/fetcher"
	"github.com/travissutphin/content-analyzer/pkg/keywords"
	"github.com/travissutphin/content-analyzer/pkg/tags"
	"github.com/urfave/cli/v2"
)

// AnalyzeAction runs the full analysis pipeline over one post and prints the
// report.
func AnalyzeAction(c *cli.Context) error {
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

	logger.Info("analyzing content",
		"title", input.Title,
		"source_url", input.SourceURL,
		"content_bytes", len(input.Content))

	report := analyzer.NewAnalyzer(store, cfg).Analyze(input.Title, input.Content)

	logger.Info("analysis complete",
		"confidence", report.Confidence,
		"content_type", report.Suggestions.ContentType,
		"keywords", len(report.Suggestions.Keywords),
		"tags", len(report.Suggestions.Tags),
		"faqs", len(report.Suggestions.FAQs))

	return common.WriteOutput(c, report)
}

// ClassifyAction prints the detected content type with per-type scores.
func ClassifyAction(c *cli.Context) error {
	f, err := newFetcher(c)
	if err != nil {
		return err
	}

	input, err := common.ResolveContent(c, f)
	if err != nil {
		return err
	}

	cls := classifier.NewClassifier()
	output := struct {
		ContentType string             `json:"content_type" yaml:"content_type"`
		Scores      map[string]float64 `json:"scores" yaml:"scores"`
	}{
		ContentType: cls.Classify(input.Title, input.Content),
		Scores:      cls.Scores(input.Title, input.Content),
	}

	return common.WriteOutput(c, output)
}

// FAQsAction prints detected FAQ candidates for one post.
func FAQsAction(c *cli.Context) error {
	f, err := newFetcher(c)
	if err != nil {
		return err
	}

	input, err := common.ResolveContent(c, f)
	if err != nil {
		return err
	}

	faqs := faq.NewDetector().DetectFAQs(input.Content)
	return common.WriteOutput(c, faqs)
}

// TagsAction prints tag suggestions computed against the tag database.
func TagsAction(c *cli.Context) error {
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

	terms := keywords.NewExtractor(cfg).Extract(input.Title, input.Content)
	suggestions := tags.NewEngine(store, cfg).SuggestTags(input.Title, input.Content, terms)
	return common.WriteOutput(c, suggestions)
}

// TypesAction lists the supported content types.
func TypesAction(c *cli.Context) error {
	return common.WriteOutput(c, classifier.AvailableTypes())
}

// newFetcher builds the URL fetcher, with a markup cache when --cache-dir is
// set.
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
