package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dataset-scout/backend/internal/recommend/domain"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4.1"
	defaultTimeout = 60 * time.Second
)

// Client calls the OpenAI Responses API with web search enabled and a
// strict output schema, so the reply always parses into the domain types.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
}

// NewClient builds a Responses API client. Empty model, baseURL, or
// timeout fall back to defaults; the API key must be non-empty.
func NewClient(apiKey, model, baseURL string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is empty")
	}
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		HTTP:    &http.Client{Timeout: timeout},
	}, nil
}

type toolSpec struct {
	Type string `json:"type"`
}

type textFormat struct {
	Type   string         `json:"type"`
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
	Strict bool           `json:"strict"`
}

type textSpec struct {
	Format textFormat `json:"format"`
}

type responsesRequest struct {
	Model string     `json:"model"`
	Input string     `json:"input"`
	Tools []toolSpec `json:"tools"`
	Text  textSpec   `json:"text"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outputItem struct {
	Type    string        `json:"type"`
	Content []contentItem `json:"content"`
}

type responsesResponse struct {
	Output []outputItem `json:"output"`
}

// Recommend runs one schema-constrained completion and returns the
// candidate list as the provider ordered it. No retries; any failure
// surfaces to the caller.
func (c *Client) Recommend(ctx context.Context, query string, maxResults int) ([]domain.DatasetRecommendation, error) {
	payload := responsesRequest{
		Model: c.Model,
		Input: BuildPrompt(query, maxResults),
		Tools: []toolSpec{{Type: "web_search_preview"}},
		Text: textSpec{
			Format: textFormat{
				Type:   "json_schema",
				Name:   schemaName,
				Schema: recommendationSchema(),
				Strict: true,
			},
		},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/responses", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var out responsesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	text := outputText(out)
	if text == "" {
		return nil, errors.New("openai response contains no output text")
	}

	var parsed domain.RecommendationResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("parse structured output: %w", err)
	}
	if len(parsed.Results) == 0 {
		return nil, errors.New("structured output contains no results")
	}
	return parsed.Results, nil
}

// outputText extracts the first output_text chunk from a Responses API
// reply. Tool-call items (web_search_call etc.) precede the message item
// and carry no text.
func outputText(r responsesResponse) string {
	for _, item := range r.Output {
		if item.Type != "message" {
			continue
		}
		for _, c := range item.Content {
			if c.Type == "output_text" && c.Text != "" {
				return c.Text
			}
		}
	}
	return ""
}
