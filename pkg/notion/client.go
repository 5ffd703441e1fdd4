package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const apiVersion = "2022-06-28"

// Client is a minimal Notion database query client.
type Client struct {
	Token      string
	DatabaseID string
	BaseURL    string
	httpDo     *http.Client
}

func New(token, databaseID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.notion.com"
	}
	return &Client{
		Token:      token,
		DatabaseID: databaseID,
		BaseURL:    baseURL,
		httpDo: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// Query fetches every page of the configured database in provider order.
// The request body is empty on purpose: no filter, no sort.
func (c *Client) Query(ctx context.Context) ([]Page, error) {
	if c.Token == "" {
		return nil, errors.New("notion token is empty")
	}
	endpoint := fmt.Sprintf("%s/v1/databases/%s/query", c.BaseURL, c.DatabaseID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	httpReq.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return nil, fmt.Errorf("notion http %d: %v", resp.StatusCode, errMap)
	}
	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Ping checks the database is reachable with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/v1/databases/%s", c.BaseURL, c.DatabaseID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	httpReq.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notion http %d", resp.StatusCode)
	}
	return nil
}
