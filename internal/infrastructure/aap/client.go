package aap

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// UpstreamError reports a non-success response from the automation platform.
// It carries the upstream status code and raw body so nothing is lost before
// the handler stringifies it.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("automation platform returned status %d: %s", e.StatusCode, e.Body)
}

type Config struct {
	BaseURL   string
	Token     string
	VerifySSL bool
}

// Client wraps the automation platform's job templates/jobs HTTP API.
// Safe for concurrent use; all state is set at construction.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(cfg Config) *Client {
	transport := http.DefaultTransport
	if !cfg.VerifySSL {
		// Explicit opt-out for platforms running self-signed certs.
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
		}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// ListJobTemplates fetches the platform's job template list.
func (c *Client) ListJobTemplates(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/job_templates/", nil, nil)
}

// GetJobTemplate fetches a single job template by id.
func (c *Client) GetJobTemplate(ctx context.Context, templateID int) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/job_templates/%d/", templateID), nil, nil)
}

// launch is acknowledged with 200, 201 or 202 depending on the platform version.
var launchStatuses = map[int]bool{
	http.StatusOK:       true,
	http.StatusCreated:  true,
	http.StatusAccepted: true,
}

// LaunchJob starts a job from a template. When extraVars is empty the body is
// an empty object; the platform rejects a null-valued extra_vars key.
func (c *Client) LaunchJob(ctx context.Context, templateID int, extraVars map[string]any) (any, error) {
	payload := map[string]any{}
	if len(extraVars) > 0 {
		payload["extra_vars"] = extraVars
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/job_templates/%d/launch/", templateID), payload, launchStatuses)
}

// GetJob fetches the current state of a job.
func (c *Client) GetJob(ctx context.Context, jobID int) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d/", jobID), nil, nil)
}

// CancelJob asks the platform to cancel a running job.
func (c *Client) CancelJob(ctx context.Context, jobID int) (any, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/jobs/%d/cancel/", jobID), nil, nil)
}

// do issues one request and decodes the JSON response. accepted lists the
// success statuses; nil means any 2xx.
func (c *Client) do(ctx context.Context, method, path string, payload any, accepted map[int]bool) (any, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if !statusAccepted(resp.StatusCode, accepted) {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}

func statusAccepted(status int, accepted map[int]bool) bool {
	if accepted != nil {
		return accepted[status]
	}
	return status >= 200 && status < 300
}
