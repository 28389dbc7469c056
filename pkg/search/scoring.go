package search

import (
	"strings"

	"hr-knowledge-be/internal/entity"
)

// Phrase-match weights. Documents rank title over description over body;
// entries rank title over keywords over content.
const (
	docTitleWeight       = 0.5
	docDescriptionWeight = 0.3
	docBodyWeight        = 0.2

	entryTitleWeight   = 0.5
	entryKeywordWeight = 0.3
	entryContentWeight = 0.2

	// Token hits recover partial matches at a fraction of the phrase weight.
	tokenBoostFactor = 0.2
)

func scoreDocument(doc *entity.Document, phrase string, tokens []string) float64 {
	title := strings.ToLower(doc.Title)
	description := strings.ToLower(doc.Description)
	body := strings.ToLower(doc.ExtractedText)

	score := 0.0
	if strings.Contains(title, phrase) {
		score += docTitleWeight
	}
	if strings.Contains(description, phrase) {
		score += docDescriptionWeight
	}
	if strings.Contains(body, phrase) {
		score += docBodyWeight
	}

	for _, tok := range tokens {
		if strings.Contains(title, tok) {
			score += docTitleWeight * tokenBoostFactor
		}
		if strings.Contains(description, tok) {
			score += docDescriptionWeight * tokenBoostFactor
		}
		if strings.Contains(body, tok) {
			score += docBodyWeight * tokenBoostFactor
		}
	}
	return score
}

func scoreEntry(e *entity.KnowledgeEntry, phrase string, tokens []string) float64 {
	title := strings.ToLower(e.Title)
	content := strings.ToLower(e.Content)
	keywords := strings.ToLower(strings.Join(e.Keywords, " "))

	score := 0.0
	if strings.Contains(title, phrase) {
		score += entryTitleWeight
	}
	if strings.Contains(keywords, phrase) {
		score += entryKeywordWeight
	}
	if strings.Contains(content, phrase) {
		score += entryContentWeight
	}

	for _, tok := range tokens {
		if strings.Contains(title, tok) {
			score += entryTitleWeight * tokenBoostFactor
		}
		if strings.Contains(keywords, tok) {
			score += entryKeywordWeight * tokenBoostFactor
		}
		if strings.Contains(content, tok) {
			score += entryContentWeight * tokenBoostFactor
		}
	}

	// Curated confidence scales the whole entry.
	return score * e.ConfidenceScore
}
