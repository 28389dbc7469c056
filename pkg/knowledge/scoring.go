package knowledge

import (
	"regexp"
	"sort"
	"strings"

	"hr-knowledge-be/internal/entity"
)

var (
	tokenPattern    = regexp.MustCompile(`[a-z0-9]+`)
	numberedPattern = regexp.MustCompile(`(?m)^\s*(\d+[\.\)]|[-*])\s+`)
)

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// confidenceScore is a deterministic heuristic in [0,1] combining chunk
// length, structural cues, and content-word density.
func confidenceScore(chunk string) float64 {
	tokens := tokenize(chunk)
	if len(tokens) == 0 {
		return 0
	}

	// Length: saturates at 150 words, worth up to 0.4.
	lengthScore := float64(len(tokens)) / 150.0
	if lengthScore > 1 {
		lengthScore = 1
	}
	score := 0.4 * lengthScore

	// Structural cues, worth up to 0.3.
	if strings.Contains(chunk, "?") {
		score += 0.1
	}
	if firstLineLooksLikeHeading(chunk) {
		score += 0.1
	}
	if numberedPattern.MatchString(chunk) {
		score += 0.1
	}

	// Content-word density, worth up to 0.3.
	content := 0
	for _, tok := range tokens {
		if len(tok) > 3 && !isStopword(tok) {
			content++
		}
	}
	score += 0.3 * float64(content) / float64(len(tokens))

	if score > 1 {
		score = 1
	}
	return score
}

func firstLineLooksLikeHeading(chunk string) bool {
	line := chunk
	if idx := strings.IndexByte(chunk, '\n'); idx >= 0 {
		line = chunk[:idx]
	} else {
		// Single-line chunks have no separate heading.
		return false
	}
	line = strings.TrimSpace(line)
	if line == "" || len(line) > 60 {
		return false
	}
	return !strings.HasSuffix(line, ".")
}

var entryTypeCues = []struct {
	entryType string
	cues      []string
}{
	{entity.EntryTypeFAQ, []string{"?", "apa ", "bagaimana ", "kapan ", "mengapa ", "what ", "how ", "when ", "why ", "faq", "q:", "tanya"}},
	{entity.EntryTypeProcedure, []string{"langkah", "prosedur", "cara ", "step", "procedure", "how to", "tahapan", "first,", "kemudian"}},
	{entity.EntryTypePolicy, []string{"kebijakan", "peraturan", "policy", "regulation", "wajib", "dilarang", "must ", "shall ", "rule"}},
	{entity.EntryTypeTraining, []string{"pelatihan", "training", "course", "modul", "learning", "workshop"}},
}

// detectEntryType picks the entry category from textual cues, most specific
// first; anything uncategorized is general.
func detectEntryType(chunk string) string {
	lowered := strings.ToLower(chunk)
	for _, rule := range entryTypeCues {
		for _, cue := range rule.cues {
			if strings.Contains(lowered, cue) {
				return rule.entryType
			}
		}
	}
	return entity.EntryTypeGeneral
}

// extractKeywords returns the most frequent content words of the chunk,
// ordered by frequency then alphabetically so repeated runs agree.
func extractKeywords(chunk string, max int) []string {
	counts := map[string]int{}
	for _, tok := range tokenize(chunk) {
		if len(tok) <= 3 || isStopword(tok) {
			continue
		}
		counts[tok]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > max {
		words = words[:max]
	}
	return words
}
