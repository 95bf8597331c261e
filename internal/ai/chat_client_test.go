package ai

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		notFound     bool
		unauthorized bool
	}{
		{"api 404", genai.APIError{Code: 404, Message: "model not found"}, true, false},
		{"api 401", genai.APIError{Code: 401, Message: "bad key"}, false, true},
		{"api 403", genai.APIError{Code: 403, Message: "forbidden"}, false, true},
		{"api 500", genai.APIError{Code: 500, Message: "boom"}, false, false},
		{"wrapped api 404", fmt.Errorf("call failed: %w", genai.APIError{Code: 404}), true, false},
		{"plain not found text", errors.New("models/gemini-pro is not found for API version v1"), true, false},
		{"plain api key text", errors.New("API key not valid"), false, true},
		{"unrelated", errors.New("connection reset"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isModelNotFound(tt.err); got != tt.notFound {
				t.Fatalf("isModelNotFound=%v want=%v", got, tt.notFound)
			}
			if got := isUnauthorized(tt.err); got != tt.unauthorized {
				t.Fatalf("isUnauthorized=%v want=%v", got, tt.unauthorized)
			}
		})
	}
}

func TestNewChatClientModelOverride(t *testing.T) {
	c := NewChatClient("")
	if len(c.models) != len(defaultModelCandidates) {
		t.Fatalf("models=%v", c.models)
	}
	c = NewChatClient("  gemini-custom  ")
	if len(c.models) != 1 || c.models[0] != "gemini-custom" {
		t.Fatalf("models=%v", c.models)
	}
}
