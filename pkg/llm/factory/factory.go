package factory

import (
	"time"

	"hr-knowledge-be/pkg/llm"
	"hr-knowledge-be/pkg/llm/ollama"
)

// NewModelAdapter wires the configured backend. Anything other than a known
// provider yields the disabled stub so the chat path degrades instead of
// failing at startup.
func NewModelAdapter(provider, baseURL, model string, timeout, healthTTL time.Duration) llm.ModelAdapter {
	switch provider {
	case "ollama":
		return ollama.NewOllamaAdapter(ollama.Config{
			BaseURL:   baseURL,
			Model:     model,
			Timeout:   timeout,
			HealthTTL: healthTTL,
		})
	default:
		return llm.NewDisabledAdapter()
	}
}
