// Package language detects the dominant language of post text for report
// metadata.
package language

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// candidateLanguages keeps the detector small. Restricting the set improves
// accuracy on short blog text.
var candidateLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func sharedDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidateLanguages...).
			Build()
	})
	return detector
}

// Detect returns the ISO 639-1 code of the most likely language and a [0,1]
// confidence. Empty or undecidable text yields ("", 0).
func Detect(text string) (code string, confidence float64) {
	if strings.TrimSpace(text) == "" {
		return "", 0
	}

	lang, ok := sharedDetector().DetectLanguageOf(text)
	if !ok {
		return "", 0
	}

	confidence = sharedDetector().ComputeLanguageConfidence(text, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), confidence
}
