package common

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/travissutphin/content-analyzer/models"
	"github.com/travissutphin/content-analyzer/pkg/fetcher"
	"github.com/travissutphin/content-analyzer/pkg/storage"
	"github.com/travissutphin/content-analyzer/pkg/tagstore"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// NewLogger builds the shared JSON logger. Quiet mode only surfaces errors.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig resolves the --config flag, falling back to built-in defaults.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	path := c.String("config")
	if path == "" {
		return models.DefaultConfig(), nil
	}
	cfg, err := models.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return cfg, nil
}

// OpenStore opens the tag database named by the --db flag.
func OpenStore(c *cli.Context) (*tagstore.SQLiteStore, error) {
	store, err := tagstore.Open(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open tag database: %w", err)
	}
	return store, nil
}

// ContentInput is the resolved post handed to an action.
type ContentInput struct {
	Title     string
	Content   string
	SourceURL string
}

// ResolveContent reads the post from --content, --file, or --url, in that
// precedence order. URL mode distills the page to its readable article.
func ResolveContent(c *cli.Context, f *fetcher.Fetcher) (ContentInput, error) {
	title := c.String("title")

	if content := c.String("content"); content != "" {
		return ContentInput{Title: title, Content: content}, nil
	}

	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return ContentInput{}, fmt.Errorf("failed to read content file: %w", err)
		}
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return ContentInput{Title: title, Content: string(data)}, nil
	}

	if rawURL := c.String("url"); rawURL != "" {
		cleaned := SanitizeURL(rawURL)
		post, err := f.FetchPost(cleaned)
		if err != nil {
			return ContentInput{}, err
		}
		if title == "" {
			title = post.Title
		}
		return ContentInput{Title: title, Content: post.Content, SourceURL: cleaned}, nil
	}

	return ContentInput{}, fmt.Errorf("no content provided: use --content, --file, or --url")
}

// EncodeResult marshals a result as JSON (default) or YAML.
func EncodeResult(v any, format string) ([]byte, error) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal output: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal output: %w", err)
		}
		return append(data, '\n'), nil
	}
}

// WriteOutput prints the encoded result to stdout and, when --output is
// set, also saves it to that file.
func WriteOutput(c *cli.Context, v any) error {
	data, err := EncodeResult(v, c.String("format"))
	if err != nil {
		return err
	}
	fmt.Print(string(data))

	if path := c.String("output"); path != "" {
		s := &storage.Storage{}
		if err := s.SaveResult(path, data); err != nil {
			return err
		}
	}
	return nil
}

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL cleans common copy-paste artifacts: surrounding whitespace,
// markdown link syntax, and stray punctuation.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ".", ")", "}", "]", `"`, "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", `"`, "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}
