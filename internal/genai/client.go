package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/racuca/AIHistoryLine/internal/timeline"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	jsonMIMEType  = "application/json"
)

// Client calls the Gemini generateContent API. Each Generate call is a
// single attempt: failures are returned to the caller, never retried.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Options overrides Client defaults. Zero values keep the defaults.
type Options struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewClient creates a Gemini client. The API key comes from the process
// environment (GEMINI_API_KEY); an empty key is not an error here — the
// request itself fails when one is made.
func NewClient(apiKey string, opts Options) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		model:   "gemini-2.0-flash",
		client:  &http.Client{Timeout: 60 * time.Second},
	}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	if opts.Model != "" {
		c.model = opts.Model
	}
	if opts.Timeout > 0 {
		c.client.Timeout = opts.Timeout
	}
	return c
}

// Model returns the model identifier requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Generate asks the model for a timeline of historical events about topic
// and decodes the JSON response into a validated event list. Transport
// failures, service errors and undecodable responses all surface as plain
// errors; the caller maps them to a single failure state.
func (c *Client) Generate(ctx context.Context, topic string) ([]timeline.Event, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: BuildPrompt(topic)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMIMEType: jsonMIMEType,
			ResponseSchema:   TimelineSchema(),
			MaxOutputTokens:  8192,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", jsonMIMEType)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response content")
	}

	text := apiResp.Candidates[0].Content.Parts[0].Text
	events, err := timeline.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}

	return events, nil
}
