package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPhrase string
		wantTokens []string
	}{
		{
			name:       "empty query",
			query:      "",
			wantPhrase: "",
			wantTokens: nil,
		},
		{
			name:       "whitespace only",
			query:      "   \t ",
			wantPhrase: "",
			wantTokens: nil,
		},
		{
			name:       "lowercased and trimmed",
			query:      "  Kebijakan CUTI  ",
			wantPhrase: "kebijakan cuti",
			wantTokens: []string{"kebijakan", "cuti"},
		},
		{
			name:       "short tokens dropped from token pass",
			query:      "apa itu THR di sini",
			wantPhrase: "apa itu thr di sini",
			wantTokens: []string{"sini"},
		},
		{
			name:       "all tokens short",
			query:      "di ke hr",
			wantPhrase: "di ke hr",
			wantTokens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase, tokens := Normalize(tt.query)
			assert.Equal(t, tt.wantPhrase, phrase)
			assert.Equal(t, tt.wantTokens, tokens)
		})
	}
}
