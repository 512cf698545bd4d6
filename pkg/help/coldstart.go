package help

const ColdstartYAML = `# content-analyzer Quick Start

commands:
  analyze_inline: |
    content-analyzer analyze --title "How to Install Laravel" --content "<p>Step 1 ...</p>"

  analyze_file: |
    content-analyzer analyze --title "My Post" --file post.html

  analyze_url: |
    content-analyzer analyze --url "https://example.com/post" --cache-dir .cache

  classify: |
    content-analyzer classify --title "Postgres vs MySQL" --file post.html

  detect_faqs: |
    content-analyzer faqs --file post.html --format yaml

  suggest_tags: |
    content-analyzer tags --title "My Post" --file post.html --db tags.db

  optimize: |
    content-analyzer optimize --title "My Post" --file post.html --schema HowTo

  optimize_without_ai: |
    content-analyzer optimize --title "My Post" --file post.html --no-ai --tags 1 --tags 2

  list_types: |
    content-analyzer types

output:
  - "Results go to stdout as JSON (default) or YAML (--format yaml)"
  - "Logs go to stderr as JSON; --quiet keeps only errors"
  - "--output saves the encoded result to a file as well"

tag_database:
  - "Tags live in SQLite (--db, default content-analyzer.db)"
  - "Existing tags boost suggestion confidence and carry ids into optimization"

ai:
  - "optimize uses OPENAI_API_KEY (or --api-key) when set"
  - "without a key the local heuristic analyzer is used"
  - "AI request failures fall back to frequency-based keywords"
`
