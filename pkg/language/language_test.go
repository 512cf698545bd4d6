package language

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "This article explains how to configure the application for production deployments.",
			want: "en",
		},
		{
			name: "spanish",
			text: "Este artículo explica cómo configurar la aplicación para entornos de producción.",
			want: "es",
		},
		{
			name: "german",
			text: "Dieser Artikel erklärt, wie man die Anwendung für den Produktionsbetrieb konfiguriert.",
			want: "de",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, confidence := Detect(tt.text)
			if code != tt.want {
				t.Errorf("Detect() code = %q, want %q", code, tt.want)
			}
			if confidence <= 0 || confidence > 1 {
				t.Errorf("Detect() confidence = %v, want in (0,1]", confidence)
			}
		})
	}
}

func TestDetectEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, confidence := Detect(tt.text)
			if code != "" || confidence != 0 {
				t.Errorf("Detect(%q) = (%q, %v), want empty result", tt.text, code, confidence)
			}
		})
	}
}
