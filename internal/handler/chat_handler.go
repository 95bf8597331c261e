package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/basquehq/basque-backend/internal/ai"
	"github.com/basquehq/basque-backend/internal/reqctx"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ChatReplier is what the handler needs from the Gemini client.
type ChatReplier interface {
	Reply(ctx context.Context, userPrompt string) (text, model string, err error)
}

type ChatHandler struct {
	client    ChatReplier
	hasAPIKey bool
	mockMode  bool
}

func NewChatHandler(client ChatReplier, hasAPIKey, mockMode bool) *ChatHandler {
	return &ChatHandler{client: client, hasAPIKey: hasAPIKey, mockMode: mockMode}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Prompt   string        `json:"prompt"`
	Messages []chatMessage `json:"messages"`
}

type ChatResponse struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

func (h *ChatHandler) Post(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	prompt := req.Prompt
	if prompt == "" && len(req.Messages) > 0 {
		lines := make([]string, 0, len(req.Messages))
		for _, m := range req.Messages {
			lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
		}
		prompt = strings.Join(lines, "\n")
	}
	if strings.TrimSpace(prompt) == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "provide either prompt or messages"))
	}

	if !h.hasAPIKey {
		if h.mockMode {
			snippet := prompt
			if len(snippet) > 300 {
				snippet = snippet[:300]
			}
			return c.JSON(http.StatusOK, ChatResponse{
				Text:  fmt.Sprintf("Developer mode: set GEMINI_API_KEY to enable live AI responses.\n\nHere is a placeholder response to your prompt:\n\n%q", snippet),
				Model: "mock",
			})
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "GEMINI_API_KEY is not set"))
	}

	ctx := reqctx.WithRID(c.Request().Context(), uuid.NewString())
	text, model, err := h.client.Reply(ctx, prompt)
	if err != nil {
		if errors.Is(err, ai.ErrUnauthorized) {
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "invalid or unauthorized API key"))
		}
		return c.JSON(http.StatusBadGateway, NewErrorResponse("upstream_error", "failed to generate response"))
	}
	return c.JSON(http.StatusOK, ChatResponse{Text: text, Model: model})
}
