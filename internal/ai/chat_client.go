package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/basquehq/basque-backend/internal/reqctx"
	"google.golang.org/genai"
)

// defaultModelCandidates are tried in order until one answers. Newer
// models first; older ones cover keys without access to the new ones.
var defaultModelCandidates = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
}

var (
	// ErrUnauthorized means the API key is invalid; retrying another
	// model cannot help.
	ErrUnauthorized = errors.New("gemini: invalid or unauthorized API key")
	// ErrNoModelAvailable means every candidate failed or came back empty.
	ErrNoModelAvailable = errors.New("gemini: all model candidates failed")
)

type ChatClient struct {
	models []string
}

// NewChatClient builds the Basque chat client. A non-empty configured
// model replaces the fallback chain entirely.
func NewChatClient(configuredModel string) *ChatClient {
	models := defaultModelCandidates
	if m := strings.TrimSpace(configuredModel); m != "" {
		models = []string{m}
	}
	return &ChatClient{models: models}
}

// Reply sends the conversation to Gemini and returns the reply text and
// the model that produced it. Model-not-found failures move on to the
// next candidate; auth failures abort immediately.
func (c *ChatClient) Reply(ctx context.Context, userPrompt string) (string, string, error) {
	rid := reqctx.RID(ctx)
	start := time.Now()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Printf("[chat] rid=%s stage=client_init err=%v", rid, err)
		return "", "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fmt.Sprintf("System:\n%s\n\nUser:\n%s", SystemPrompt, userPrompt)),
		}, genai.RoleUser),
	}
	temp := float32(0.5)
	config := &genai.GenerateContentConfig{Temperature: &temp}

	var lastErr error
	for _, model := range c.models {
		genStart := time.Now()
		log.Printf("[chat] rid=%s stage=gemini_start model=%s", rid, model)
		res, err := client.Models.GenerateContent(ctx, model, contents, config)
		if err != nil {
			if isUnauthorized(err) {
				log.Printf("[chat] rid=%s stage=gemini_unauthorized model=%s err=%v", rid, model, err)
				return "", "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
			}
			if isModelNotFound(err) {
				log.Printf("[chat] rid=%s stage=gemini_model_missing model=%s err=%v", rid, model, err)
				lastErr = err
				continue
			}
			log.Printf("[chat] rid=%s stage=gemini_fail model=%s err=%v", rid, model, err)
			return "", "", fmt.Errorf("gemini generate: %w", err)
		}
		text := strings.TrimSpace(res.Text())
		if text == "" {
			log.Printf("[chat] rid=%s stage=gemini_empty model=%s", rid, model)
			lastErr = fmt.Errorf("empty response from model %s", model)
			continue
		}
		log.Printf("[chat] rid=%s stage=gemini_done model=%s genMs=%d totalMs=%d",
			rid, model, time.Since(genStart).Milliseconds(), time.Since(start).Milliseconds())
		return text, model, nil
	}

	if lastErr != nil {
		return "", "", fmt.Errorf("%w: %v", ErrNoModelAvailable, lastErr)
	}
	return "", "", ErrNoModelAvailable
}

// isModelNotFound reports whether the failure means "this model name is
// unavailable for this key", which is retryable with the next candidate.
func isModelNotFound(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}

func isUnauthorized(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unauthorized") || strings.Contains(msg, "api key") ||
		strings.Contains(msg, "permission denied")
}
