package textutil

import (
	"reflect"
	"testing"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "tags replaced with spaces",
			input: "<p>hello</p><p>world</p>",
			want:  " hello  world ",
		},
		{
			name:  "tag attributes removed",
			input: `<a href="https://example.com">link</a>`,
			want:  " link ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.input); got != tt.want {
				t.Errorf("StripTags() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripTagsKeepsWordsSeparate(t *testing.T) {
	// Adjacent blocks must not merge into one token.
	got := WordCount("<h2>First</h2><p>Second</p>")
	if got != 2 {
		t.Errorf("WordCount() = %d, want 2", got)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize(`Hello, world! "quoted" (parens)`)
	want := []string{"Hello", "world", "quoted", "parens"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "plain words", input: "one two three", want: 3},
		{name: "markup stripped", input: "<p>one two</p> three", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.input); got != tt.want {
				t.Errorf("WordCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	content := "This is a reasonable first sentence about testing. Too short. " +
		"Here is another sentence that should also be kept in the result!"

	got := Sentences(content)
	if len(got) != 2 {
		t.Fatalf("Sentences() returned %d sentences, want 2: %v", len(got), got)
	}
	if got[0] != "This is a reasonable first sentence about testing" {
		t.Errorf("unexpected first sentence: %q", got[0])
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  a \n\t b   c ")
	if got != "a b c" {
		t.Errorf("CollapseWhitespace() = %q, want %q", got, "a b c")
	}
}
