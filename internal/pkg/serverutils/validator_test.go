package serverutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-knowledge-be/internal/dto"
)

func TestValidateChatMessageRequest(t *testing.T) {
	t.Run("empty message is valid", func(t *testing.T) {
		err := ValidateRequest(dto.ChatMessageRequest{Message: ""})
		assert.NoError(t, err)
	})

	t.Run("normal message is valid", func(t *testing.T) {
		err := ValidateRequest(dto.ChatMessageRequest{Message: "berapa sisa cuti saya"})
		assert.NoError(t, err)
	})

	t.Run("oversized message is rejected", func(t *testing.T) {
		err := ValidateRequest(dto.ChatMessageRequest{Message: strings.Repeat("a", 2001)})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Message failed on 'max'")
	})
}

func TestValidateSearchRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.SearchRequest
		wantErr bool
	}{
		{"empty query", dto.SearchRequest{}, false},
		{"normal query", dto.SearchRequest{Query: "kebijakan cuti", Limit: 10}, false},
		{"query too long", dto.SearchRequest{Query: strings.Repeat("q", 201)}, true},
		{"negative limit", dto.SearchRequest{Query: "cuti", Limit: -1}, true},
		{"limit above cap", dto.SearchRequest{Query: "cuti", Limit: 51}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
