package llm

import (
	"context"
	"errors"
)

// ErrUnavailable means the backing service could not serve the call. It is
// a degradation signal, never surfaced to chat users.
var ErrUnavailable = errors.New("model adapter unavailable")

// ErrTimeout means the bounded call deadline elapsed.
var ErrTimeout = errors.New("model adapter timeout")

type Sentiment struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type Entity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ModelAdapter is the capability-gated boundary around an optional
// generative-text service. Callers check Available before relying on it and
// treat every error as "use the non-enhanced path".
type ModelAdapter interface {
	// Available reports backend health. Implementations cache the probe for
	// a short interval so the chat path does not pay a round trip per turn.
	Available(ctx context.Context) bool

	GenerateText(ctx context.Context, prompt, systemContext string) (string, error)
	AnalyzeSentiment(ctx context.Context, text string) (*Sentiment, error)
	ClassifyIntent(ctx context.Context, text string, candidates []string) (string, error)
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
	EnhanceResponse(ctx context.Context, text, conversationContext string) (string, error)
}
