package llm

import "context"

// DisabledAdapter always reports unavailable. Used when no model backend is
// configured and as the test stand-in for forced-unavailable scenarios.
type DisabledAdapter struct{}

var _ ModelAdapter = &DisabledAdapter{}

func NewDisabledAdapter() *DisabledAdapter {
	return &DisabledAdapter{}
}

func (d *DisabledAdapter) Available(ctx context.Context) bool {
	return false
}

func (d *DisabledAdapter) GenerateText(ctx context.Context, prompt, systemContext string) (string, error) {
	return "", ErrUnavailable
}

func (d *DisabledAdapter) AnalyzeSentiment(ctx context.Context, text string) (*Sentiment, error) {
	return nil, ErrUnavailable
}

func (d *DisabledAdapter) ClassifyIntent(ctx context.Context, text string, candidates []string) (string, error) {
	return "", ErrUnavailable
}

func (d *DisabledAdapter) ExtractEntities(ctx context.Context, text string) ([]Entity, error) {
	return nil, ErrUnavailable
}

func (d *DisabledAdapter) EnhanceResponse(ctx context.Context, text, conversationContext string) (string, error) {
	return "", ErrUnavailable
}
