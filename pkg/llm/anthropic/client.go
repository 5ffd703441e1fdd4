package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/akiyanavi/concierge/pkg/llm"
)

const apiVersion = "2023-06-01"

// Client is a minimal Anthropic Messages API client.
type Client struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	httpDo    *http.Client
}

func New(apiKey, baseURL, model string, maxTokens int) *Client {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &Client{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Model:     model,
		MaxTokens: maxTokens,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type messagesResponse struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Content []contentBlock `json:"content"`
}

// Complete sends the system prompt and the full message history and returns
// the first text block of the reply. A reply with content but no text block
// yields an empty string, not an error.
func (c *Client) Complete(ctx context.Context, systemPrompt string, history []llm.Message) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("anthropic api key is empty")
	}
	model := c.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	msgs := make([]message, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, message{Role: m.Role, Content: m.Content})
	}
	reqBody := messagesRequest{
		Model:     model,
		MaxTokens: c.MaxTokens,
		System:    systemPrompt,
		Messages:  msgs,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1/messages", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.APIKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("anthropic http %d: %v", resp.StatusCode, errMap)
	}
	var out messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Content) == 0 {
		return "", errors.New("no content returned by model")
	}
	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	// Non-text reply (e.g. a tool call); surface nothing rather than fail.
	return "", nil
}
