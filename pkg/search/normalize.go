package search

import "strings"

// minTokenLength: tokens at or below this length are excluded from the
// token-level pass. They still count through whole-phrase matching.
const minTokenLength = 3

// Normalize lowercases and trims the query and returns the phrase plus the
// tokens eligible for token-level boosting.
func Normalize(query string) (string, []string) {
	phrase := strings.ToLower(strings.TrimSpace(query))
	if phrase == "" {
		return "", nil
	}

	var tokens []string
	for _, tok := range strings.Fields(phrase) {
		if len(tok) > minTokenLength {
			tokens = append(tokens, tok)
		}
	}
	return phrase, tokens
}
