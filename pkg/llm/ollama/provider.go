package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hr-knowledge-be/pkg/llm"

	gocache "github.com/patrickmn/go-cache"
)

const healthCacheKey = "ollama_available"

type Config struct {
	BaseURL   string
	Model     string
	Timeout   time.Duration
	HealthTTL time.Duration
}

type OllamaAdapter struct {
	cfg    Config
	client *http.Client
	health *gocache.Cache
}

var _ llm.ModelAdapter = &OllamaAdapter{}

func NewOllamaAdapter(cfg Config) *OllamaAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.HealthTTL <= 0 {
		cfg.HealthTTL = 30 * time.Second
	}
	return &OllamaAdapter{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		health: gocache.New(cfg.HealthTTL, 2*cfg.HealthTTL),
	}
}

// --- Request/Response structs (internal to this package) ---

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// --- Interface Implementation ---

// Available probes /api/tags, caching the answer so chat turns do not pay a
// round trip each. A failed generate call invalidates the cached health.
func (o *OllamaAdapter) Available(ctx context.Context) bool {
	if cached, found := o.health.Get(healthCacheKey); found {
		return cached.(bool)
	}

	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, "GET", o.cfg.BaseURL+"/api/tags", nil)
	if err != nil {
		o.health.SetDefault(healthCacheKey, false)
		return false
	}

	resp, err := o.client.Do(req)
	available := err == nil && resp.StatusCode == http.StatusOK
	if resp != nil {
		resp.Body.Close()
	}

	o.health.SetDefault(healthCacheKey, available)
	return available
}

func (o *OllamaAdapter) GenerateText(ctx context.Context, prompt, systemContext string) (string, error) {
	return o.generate(ctx, prompt, systemContext)
}

func (o *OllamaAdapter) AnalyzeSentiment(ctx context.Context, text string) (*llm.Sentiment, error) {
	system := `You analyze sentiment. Respond with JSON only: {"label": "positive"|"neutral"|"negative", "confidence": 0.0-1.0}`
	raw, err := o.generate(ctx, text, system)
	if err != nil {
		return nil, err
	}

	var sentiment llm.Sentiment
	if jsonBlob := extractJSONObject(raw); jsonBlob != "" {
		if err := json.Unmarshal([]byte(jsonBlob), &sentiment); err == nil && sentiment.Label != "" {
			return &sentiment, nil
		}
	}

	// Fallback: scan the free-text answer for a label.
	lowered := strings.ToLower(raw)
	switch {
	case strings.Contains(lowered, "positive"):
		return &llm.Sentiment{Label: "positive", Confidence: 0.5}, nil
	case strings.Contains(lowered, "negative"):
		return &llm.Sentiment{Label: "negative", Confidence: 0.5}, nil
	default:
		return &llm.Sentiment{Label: "neutral", Confidence: 0.5}, nil
	}
}

func (o *OllamaAdapter) ClassifyIntent(ctx context.Context, text string, candidates []string) (string, error) {
	system := fmt.Sprintf(
		"You classify HR chatbot messages. Pick exactly one label from this list and answer with the label only: %s. If none fit, answer: unknown.",
		strings.Join(candidates, ", "))
	raw, err := o.generate(ctx, text, system)
	if err != nil {
		return "", err
	}

	answer := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range candidates {
		if strings.Contains(answer, strings.ToLower(candidate)) {
			return candidate, nil
		}
	}
	return "unknown", nil
}

func (o *OllamaAdapter) ExtractEntities(ctx context.Context, text string) ([]llm.Entity, error) {
	system := `Extract named entities (person, date, department, leave_type, amount). Respond with a JSON array only: [{"type": "...", "value": "..."}]`
	raw, err := o.generate(ctx, text, system)
	if err != nil {
		return nil, err
	}

	var entities []llm.Entity
	if jsonBlob := extractJSONArray(raw); jsonBlob != "" {
		if err := json.Unmarshal([]byte(jsonBlob), &entities); err == nil {
			return entities, nil
		}
	}
	return []llm.Entity{}, nil
}

func (o *OllamaAdapter) EnhanceResponse(ctx context.Context, text, conversationContext string) (string, error) {
	system := "You polish HR chatbot answers. Rewrite the given answer to be friendly and clear, keep the language of the original, keep every fact, and do not add new information."
	prompt := text
	if conversationContext != "" {
		prompt = fmt.Sprintf("Context: %s\n\nAnswer to rewrite: %s", conversationContext, text)
	}

	enhanced, err := o.generate(ctx, prompt, system)
	if err != nil {
		return "", err
	}
	enhanced = strings.TrimSpace(enhanced)
	if enhanced == "" {
		return "", llm.ErrUnavailable
	}
	return enhanced, nil
}

// generate runs a single bounded /api/generate call. Failures flip the
// cached health flag so subsequent turns skip the backend until the next
// probe window.
func (o *OllamaAdapter) generate(ctx context.Context, prompt, system string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(generateRequest{
		Model:  o.cfg.Model,
		Prompt: prompt,
		System: system,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(callCtx, "POST", o.cfg.BaseURL+"/api/generate", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		o.health.SetDefault(healthCacheKey, false)
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() != nil {
			return "", fmt.Errorf("ollama generate: %w", llm.ErrTimeout)
		}
		return "", fmt.Errorf("ollama generate: %w", llm.ErrUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		o.health.SetDefault(healthCacheKey, false)
		return "", fmt.Errorf("ollama status %d: %w", resp.StatusCode, llm.ErrUnavailable)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	return parsed.Response, nil
}

func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}

func extractJSONArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
