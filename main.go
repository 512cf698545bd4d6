package main

import (
	"fmt"
	"os"

	"github.com/travissutphin/content-analyzer/internal/analyze"
	"github.com/travissutphin/content-analyzer/internal/optimize"
	"github.com/travissutphin/content-analyzer/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "content-analyzer",
		Usage: "Analyze blog posts for keywords, tags, topics, FAQs, and SEO optimization",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Run the full analysis pipeline over a post",
				Flags:  append(contentFlags(), append(storeFlags(), outputFlags()...)...),
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "optimize",
				Usage: "Generate SEO keywords and enhanced tags for a post",
				Flags: append(contentFlags(), append(storeFlags(), append(outputFlags(),
					&cli.StringFlag{
						Name:  "schema",
						Usage: "Structured-data schema type (BlogPosting, Article, NewsArticle, Review, HowTo, FAQPage)",
					},
					&cli.Int64SliceFlag{
						Name:  "tags",
						Usage: "Manually selected existing tag ids",
					},
					&cli.BoolFlag{
						Name:  "no-ai",
						Usage: "Skip AI analysis and produce a manual-only result",
					},
					&cli.StringFlag{
						Name:  "overrides",
						Usage: "Path to a YAML/JSON manual-overrides file",
					},
					&cli.StringFlag{
						Name:  "api-key",
						Usage: "OpenAI API key (defaults to OPENAI_API_KEY)",
					},
				)...)...),
				Action: optimize.OptimizeAction,
			},
			{
				Name:   "classify",
				Usage:  "Detect the content type of a post",
				Flags:  append(contentFlags(), outputFlags()...),
				Action: analyze.ClassifyAction,
			},
			{
				Name:   "faqs",
				Usage:  "Detect FAQ candidates in a post",
				Flags:  append(contentFlags(), outputFlags()...),
				Action: analyze.FAQsAction,
			},
			{
				Name:   "tags",
				Usage:  "Suggest tags for a post against the tag database",
				Flags:  append(contentFlags(), append(storeFlags(), outputFlags()...)...),
				Action: analyze.TagsAction,
			},
			{
				Name:   "types",
				Usage:  "List supported content types",
				Flags:  outputFlags(),
				Action: analyze.TypesAction,
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// contentFlags select the post to analyze.
func contentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: "Post title",
		},
		&cli.StringFlag{
			Name:  "content",
			Usage: "Post content as an inline string",
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "Path to a file containing the post content",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "URL to fetch and distill into post content",
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "Directory for cached page markup (disabled when empty)",
		},
		&cli.StringFlag{
			Name:  "max-age",
			Value: "24h",
			Usage: "Maximum age before cached markup is refetched",
		},
	}
}

// storeFlags configure the tag database and pipeline config.
func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "db",
			Value: "content-analyzer.db",
			Usage: "Path to the tag SQLite database (use :memory: for none)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML config file",
		},
	}
}

// outputFlags control result encoding and log verbosity.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "Output format: json or yaml",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "Also save the encoded result to this file",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Only log errors",
		},
	}
}
