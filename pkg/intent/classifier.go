package intent

import (
	"context"
	"strings"

	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/pkg/llm"
)

// Classifier maps free text to a catalog intent with ordered keyword rules.
// First matching intent wins. An optional model adapter re-classifies
// unknowns; its answer is advisory and must stay inside the catalog.
type Classifier struct {
	catalog []Intent
	adapter llm.ModelAdapter
	log     logger.ILogger
}

func NewClassifier(log logger.ILogger) *Classifier {
	return &Classifier{
		catalog: Catalog(),
		log:     log,
	}
}

// WithAdapter attaches the escalation backend. Chainable for wiring.
func (c *Classifier) WithAdapter(adapter llm.ModelAdapter) *Classifier {
	c.adapter = adapter
	return c
}

func (c *Classifier) Classify(ctx context.Context, message string) string {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return Unknown
	}
	words := strings.Fields(lowered)

	for _, it := range c.catalog {
		for _, keyword := range it.Keywords {
			if matchKeyword(lowered, words, keyword) {
				return it.Name
			}
		}
	}

	return c.escalate(ctx, message)
}

// escalate asks the adapter to pick from the same closed catalog. Any
// answer outside it collapses back to Unknown.
func (c *Classifier) escalate(ctx context.Context, message string) string {
	if c.adapter == nil || !c.adapter.Available(ctx) {
		return Unknown
	}

	candidates := Names()
	answer, err := c.adapter.ClassifyIntent(ctx, message, candidates)
	if err != nil {
		c.log.Warn("intent", "adapter escalation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return Unknown
	}
	for _, name := range candidates {
		if answer == name {
			return name
		}
	}
	return Unknown
}

// matchKeyword is substring containment, except very short keywords match
// whole words only so "thr" does not fire inside "three".
func matchKeyword(lowered string, words []string, keyword string) bool {
	if len(keyword) <= 3 {
		for _, w := range words {
			if w == keyword {
				return true
			}
		}
		return false
	}
	return strings.Contains(lowered, keyword)
}
