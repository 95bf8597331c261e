package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/basquehq/basque-backend/internal/ai"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReplier struct {
	text  string
	model string
	err   error
}

func (f *fakeReplier) Reply(context.Context, string) (string, string, error) {
	return f.text, f.model, f.err
}

func doChatRequest(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Post(e.NewContext(req, rec)))
	return rec
}

func TestChatJoinsMessages(t *testing.T) {
	h := NewChatHandler(&fakeReplier{text: "Try LED bulbs!", model: "gemini-2.5-flash"}, true, false)
	rec := doChatRequest(t, h, `{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Try LED bulbs!", resp.Text)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
}

func TestChatRequiresPromptOrMessages(t *testing.T) {
	h := NewChatHandler(&fakeReplier{}, true, false)
	rec := doChatRequest(t, h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatMockModeWithoutKey(t *testing.T) {
	h := NewChatHandler(&fakeReplier{}, false, true)
	rec := doChatRequest(t, h, `{"prompt":"any green events this weekend?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "mock", resp.Model)
	assert.Contains(t, resp.Text, "green events")
}

func TestChatMissingKeyWithoutMock(t *testing.T) {
	h := NewChatHandler(&fakeReplier{}, false, false)
	rec := doChatRequest(t, h, `{"prompt":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestChatErrorMapping(t *testing.T) {
	h := NewChatHandler(&fakeReplier{err: ai.ErrUnauthorized}, true, false)
	rec := doChatRequest(t, h, `{"prompt":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	h = NewChatHandler(&fakeReplier{err: errors.New("boom")}, true, false)
	rec = doChatRequest(t, h, `{"prompt":"hi"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
