package keywords

import (
	"strings"
	"testing"

	"github.com/travissutphin/content-analyzer/models"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(models.DefaultConfig())
}

func TestExtractRecognizesTechTerms(t *testing.T) {
	e := newTestExtractor(t)

	terms := e.Extract(
		"Getting Started with Laravel",
		"<p>Install the framework with composer and configure the database connection.</p>",
	)

	if !containsTerm(terms, "Laravel") {
		t.Errorf("Extract() = %v, want it to contain %q", terms, "Laravel")
	}
	if !containsTerm(terms, "Composer") {
		t.Errorf("Extract() = %v, want it to contain %q", terms, "Composer")
	}
}

func TestExtractCapsAtTen(t *testing.T) {
	e := newTestExtractor(t)

	content := "alpha bravo charlie delta echofox golfing hotelier indiana juliet kilogram lima mike november"
	terms := e.Extract("many distinct terms", content)

	if len(terms) > 10 {
		t.Errorf("Extract() returned %d terms, want at most 10", len(terms))
	}
}

func TestExtractFiltersNoise(t *testing.T) {
	e := newTestExtractor(t)

	terms := e.Extract("", "the and 42 3.14 a it of performance")

	for _, term := range terms {
		switch term {
		case "the", "and", "42", "3.14", "a", "it", "of":
			t.Errorf("Extract() kept noise term %q", term)
		}
	}
	if !containsTerm(terms, "Performance") && !containsTerm(terms, "performance") {
		t.Errorf("Extract() = %v, want performance kept", terms)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	e := newTestExtractor(t)

	title := "How to Build a REST API"
	content := "<p>Designing endpoints takes planning. Authentication and caching both matter for performance.</p>"

	first := e.Extract(title, content)
	for i := 0; i < 5; i++ {
		again := e.Extract(title, content)
		if strings.Join(first, "|") != strings.Join(again, "|") {
			t.Fatalf("Extract() not deterministic: %v vs %v", first, again)
		}
	}
}

func TestExtractScoredTitleOutranksContent(t *testing.T) {
	e := NewExtractor(&models.Config{TechTerms: []string{}})

	scored := e.ExtractScored("zebras", "giraffe giraffe")
	if len(scored) < 2 {
		t.Fatalf("ExtractScored() returned %d terms, want 2", len(scored))
	}

	var zebraScore, giraffeScore float64
	for _, kw := range scored {
		switch kw.Term {
		case "zebras":
			zebraScore = kw.Score
		case "giraffe":
			giraffeScore = kw.Score
		}
	}
	if zebraScore <= giraffeScore {
		t.Errorf("title term scored %.3f, content term %.3f; want title higher", zebraScore, giraffeScore)
	}
}

func TestTopFrequent(t *testing.T) {
	text := "<p>caching caching caching performance performance the the the a</p>"

	got := TopFrequent(text, 5)
	if len(got) != 2 {
		t.Fatalf("TopFrequent() = %v, want 2 entries", got)
	}
	if got[0].Word != "caching" || got[0].Count != 3 {
		t.Errorf("TopFrequent()[0] = %+v, want caching x3", got[0])
	}
	if got[1].Word != "performance" || got[1].Count != 2 {
		t.Errorf("TopFrequent()[1] = %+v, want performance x2", got[1])
	}
}

func TestTopFrequentRespectsLimit(t *testing.T) {
	got := TopFrequent("alpha bravo charlie delta echoes", 2)
	if len(got) != 2 {
		t.Errorf("TopFrequent() returned %d entries, want 2", len(got))
	}
}

func containsTerm(terms []string, want string) bool {
	for _, term := range terms {
		if term == want {
			return true
		}
	}
	return false
}
