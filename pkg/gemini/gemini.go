// Package gemini calls the Gemini generateContent endpoint as an opaque
// prompt-in, text-out service.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 60 * time.Second
)

// Client implements report.Model against the Gemini REST API.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client with the default model and a 60s request timeout.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      defaultModel,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) endpoint() string {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	return fmt.Sprintf("%s/%s:generateContent", base, model)
}

// Generate performs the single round trip: one prompt in, the first
// candidate's text out. No retries happen at this layer.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("gemini: no api key configured")
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var r struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return "", err
	}
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: no candidates in response")
	}
	return strings.TrimSpace(r.Candidates[0].Content.Parts[0].Text), nil
}
