package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/akiyanavi/concierge/pkg/chat"
	"github.com/akiyanavi/concierge/pkg/prompt"
)

type fakeChatUC struct {
	answer  string
	err     error
	history []chat.Message
	intent  prompt.Intent
}

func (f *fakeChatUC) Reply(ctx context.Context, history []chat.Message, intent prompt.Intent) (string, error) {
	f.history = history
	f.intent = intent
	return f.answer, f.err
}

func newChatApp(uc chat.UseCase, t *testing.T) *fiber.App {
	app := fiber.New()
	h := NewChatHandler(uc, zaptest.NewLogger(t))
	app.Post("/api/v1/chat", h.Turn)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestChatHandler_Turn(t *testing.T) {
	uc := &fakeChatUC{answer: "800万円の古民家Aがおすすめです。"}
	app := newChatApp(uc, t)

	resp := postChat(t, app, `{
		"messages": [{"role": "user", "content": "1000万円以下の物件は?"}],
		"intent": "investment"
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "800万円の古民家Aがおすすめです。", out["message"])

	require.Len(t, uc.history, 1)
	assert.Equal(t, chat.RoleUser, uc.history[0].Role)
	assert.Equal(t, prompt.IntentInvestment, uc.intent)
}

func TestChatHandler_Turn_UnknownIntentDegradesToNone(t *testing.T) {
	uc := &fakeChatUC{answer: "ok"}
	app := newChatApp(uc, t)

	resp := postChat(t, app, `{
		"messages": [{"role": "user", "content": "q"}],
		"intent": "time-travel"
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, prompt.IntentNone, uc.intent)
}

func TestChatHandler_Turn_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing messages", `{}`},
		{"empty messages", `{"messages": []}`},
		{"unknown role", `{"messages": [{"role": "system", "content": "x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newChatApp(&fakeChatUC{answer: "ok"}, t)
			resp := postChat(t, app, tt.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestChatHandler_Turn_UpstreamFailureCollapses(t *testing.T) {
	uc := &fakeChatUC{err: assert.AnError}
	app := newChatApp(uc, t)

	resp := postChat(t, app, `{"messages": [{"role": "user", "content": "q"}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// One fixed localized message; no provider detail, no partial catalog.
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "エラーが発生しました。もう一度お試しください。", out["error"])
	assert.NotContains(t, string(body), "assert.AnError")
	assert.NotContains(t, string(body), "物件")
}

func TestSuggestHandler_List(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/suggestions", NewSuggestHandler().List)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggestions", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, starterQuestions, out.Suggestions)
}
