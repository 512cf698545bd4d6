package common

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "clean URL unchanged",
			in:   "https://example.com/post",
			want: "https://example.com/post",
		},
		{
			name: "surrounding whitespace",
			in:   "  https://example.com  ",
			want: "https://example.com",
		},
		{
			name: "markdown link",
			in:   "[read this](https://example.com/post)",
			want: "https://example.com/post",
		},
		{
			name: "trailing comma",
			in:   "https://example.com/post,",
			want: "https://example.com/post",
		},
		{
			name: "wrapped in parens",
			in:   "(https://example.com/post)",
			want: "https://example.com/post",
		},
		{
			name: "trailing quote",
			in:   `https://example.com/post"`,
			want: "https://example.com/post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
