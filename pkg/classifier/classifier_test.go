package classifier

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    string
	}{
		{
			name:    "tutorial from title and steps",
			title:   "How to Install Laravel",
			content: "<p>Step 1 download the installer. First, check your version. Then, run composer. Finally, serve the app.</p>",
			want:    TypeTutorial,
		},
		{
			name:    "review from comparison language",
			title:   "Postgres vs MySQL Comparison Review",
			content: "<p>The pros outweigh the cons. Performance rating 9/10. We recommend Postgres.</p>",
			want:    TypeReview,
		},
		{
			name:    "news from announcement language",
			title:   "Laravel 12 Released",
			content: "<p>The framework was released today. According to the official statement, the update launched in January 2025.</p>",
			want:    TypeNews,
		},
		{
			name:    "weak signals fall back to blog post",
			title:   "Some words",
			content: "<p>Nothing that resembles any category signal at all.</p>",
			want:    TypeBlogPost,
		},
		{
			name:    "empty input falls back to blog post",
			title:   "",
			content: "",
			want:    TypeBlogPost,
		},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.title, tt.content); got != tt.want {
				t.Errorf("Classify() = %q, want %q\nscores: %v", got, tt.want, c.Scores(tt.title, tt.content))
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier()
	title := "Understanding Query Planners: An Analysis"
	content := "<p>We analyze the evidence and research the findings. Conclusion: data wins. 40% faster, $10 cheaper.</p>"

	first := c.Classify(title, content)
	for i := 0; i < 10; i++ {
		if got := c.Classify(title, content); got != first {
			t.Fatalf("Classify() flapped between %q and %q", first, got)
		}
	}
}

func TestScoresCoverAllTypes(t *testing.T) {
	c := NewClassifier()
	scores := c.Scores("title", "content")

	for _, info := range AvailableTypes() {
		if _, ok := scores[info.Label]; !ok {
			t.Errorf("Scores() missing type %q", info.Label)
		}
	}
	if len(scores) != len(AvailableTypes()) {
		t.Errorf("Scores() has %d entries, want %d", len(scores), len(AvailableTypes()))
	}
}

func TestAvailableTypesOrder(t *testing.T) {
	types := AvailableTypes()
	if len(types) != 6 {
		t.Fatalf("AvailableTypes() = %d entries, want 6", len(types))
	}
	if types[0].Label != TypeTutorial || types[5].Label != TypeBlogPost {
		t.Errorf("unexpected type order: first %q, last %q", types[0].Label, types[5].Label)
	}
}

func TestStructureScore(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		indicator string
		want      float64
	}{
		{
			name:      "numbered list present",
			content:   "1. first item 2. second item",
			indicator: "numbered_lists",
			want:      1,
		},
		{
			name:      "step sequence needs three hits",
			content:   "Step 1 then, finally",
			indicator: "step_sequence",
			want:      1.5,
		},
		{
			name:      "step sequence below threshold",
			content:   "Step 1 only",
			indicator: "step_sequence",
			want:      0,
		},
		{
			name:      "comparison table markup",
			content:   "<table><th>a</th></table>",
			indicator: "comparison_table",
			want:      1,
		},
		{
			name:      "section headers need three",
			content:   "<h2>a</h2><h3>b</h3><h2>c</h2>",
			indicator: "section_headers",
			want:      1,
		},
		{
			name:      "data points need two",
			content:   "adoption grew 40% and revenue hit $100",
			indicator: "data_points",
			want:      1,
		},
		{
			name:      "personal pronouns need five",
			content:   "I think my team and our process helped me and us",
			indicator: "personal_pronouns",
			want:      0.5,
		},
		{
			name:      "unknown indicator ignored",
			content:   "anything",
			indicator: "nonexistent",
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := structureScore(tt.content, []string{tt.indicator}); got != tt.want {
				t.Errorf("structureScore(%q) = %v, want %v", tt.indicator, got, tt.want)
			}
		})
	}
}
