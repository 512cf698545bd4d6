package tags

import "strings"

// Similarity returns a [0,1] similarity between two strings using the Dice
// coefficient over character bigrams. Case-insensitive.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if len(a) < 2 || len(b) < 2 {
		return 0.0
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)

	var shared int
	for bg, count := range bigramsA {
		if other, ok := bigramsB[bg]; ok {
			if other < count {
				count = other
			}
			shared += count
		}
	}

	totalA := len(a) - 1
	totalB := len(b) - 1
	return 2.0 * float64(shared) / float64(totalA+totalB)
}

func bigrams(s string) map[string]int {
	grams := make(map[string]int, len(s))
	for i := 0; i+2 <= len(s); i++ {
		grams[s[i:i+2]]++
	}
	return grams
}
