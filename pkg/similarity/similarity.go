// Package similarity scores how alike two strings are using character-bigram
// overlap (the Sørensen–Dice coefficient). It tolerates minor renames,
// transpositions, and punctuation drift, which is what independently
// provisioned controller tenants produce: "Lobby WLAN" vs "Lobby-WLAN".
package similarity

// Dice returns a similarity score in [0,1] for two strings.
//
// Equal strings score 1. Strings too short to yield a bigram score 0.
// Otherwise the score is 2*|intersection| / (|bigrams(a)| + |bigrams(b)|),
// where the intersection counts each shared bigram at most min(occurrences)
// times, keeping the metric symmetric and bounded.
//
// Callers are expected to normalize case themselves if they want a
// case-insensitive comparison.
func Dice(a, b string) float64 {
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	counts := bigramCounts(ra)
	total := len(ra) - 1 + len(rb) - 1

	shared := 0
	for i := 0; i < len(rb)-1; i++ {
		bg := string(rb[i : i+2])
		if counts[bg] > 0 {
			counts[bg]--
			shared++
		}
	}

	return 2 * float64(shared) / float64(total)
}

func bigramCounts(runes []rune) map[string]int {
	counts := make(map[string]int, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		counts[string(runes[i:i+2])]++
	}
	return counts
}
