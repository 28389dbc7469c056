package dto

import "hr-knowledge-be/pkg/search"

// ChatMessageRequest deliberately has no required tag: empty messages get a
// clarification reply, not a validation error. The length cap guards the
// search and adapter calls downstream.
type ChatMessageRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

type SearchRequest struct {
	Query string `json:"q" validate:"max=200"`
	Limit int    `json:"limit" validate:"min=0,max=50"`
}

type ChatMessageResponse struct {
	Success        bool                   `json:"success"`
	Intent         string                 `json:"intent"`
	Message        string                 `json:"message"`
	Suggestions    []string               `json:"suggestions"`
	FollowUp       string                 `json:"follow_up,omitempty"`
	ContextualHelp string                 `json:"contextual_help,omitempty"`
	EnhancedByAI   bool                   `json:"enhanced_by_ai"`
	Data           map[string]interface{} `json:"data,omitempty"`
}

type SearchResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []search.Result `json:"results"`
}
