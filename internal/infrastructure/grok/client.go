package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	Endpoint string
	Key      string
}

// Client calls the conversational endpoint used as the chat fallback. When the
// endpoint or key is unconfigured it answers with a deterministic mock so the
// gateway runs without any external LLM.
type Client struct {
	endpoint string
	key      string
	client   *http.Client
}

type request struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type response struct {
	Text     string `json:"text"`
	Response string `json:"response"`
}

func NewClient(cfg Config) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		key:      cfg.Key,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Generate returns a conversational reply for prompt. Failures are folded into
// the reply string; callers always get text back.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	if c.endpoint == "" || c.key == "" {
		return fmt.Sprintf("[grok-mock] I received: %s", prompt)
	}

	body, _ := json.Marshal(&request{Prompt: prompt, MaxTokens: 512})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Sprintf("[grok-error] %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Sprintf("[grok-error] %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Sprintf("[grok-error] unexpected status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return fmt.Sprintf("[grok-error] %v", err)
	}

	var out response
	if err := json.Unmarshal(raw, &out); err == nil {
		if out.Text != "" {
			return out.Text
		}
		if out.Response != "" {
			return out.Response
		}
	}
	// Unknown response shape, hand back the JSON as text.
	return string(raw)
}
