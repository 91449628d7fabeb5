// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
	defaultAPIBase = "http://localhost:3000/api"
	apiSuffix      = "/api"
)

// HTTPClient struct to hold base URL and HTTP client configuration.
// Timeout bounds calls whose context carries no deadline of its own.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Response is a raw HTTP response: status code and the whole body.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Timeout:    DefaultTimeout,
	}
}

// NormalizeAPIBase resolves the backend base URL: trailing slashes are
// dropped and "/api" is appended unless already present. An empty value
// falls back to the local development backend.
func NormalizeAPIBase(raw string) string {
	resolved := strings.TrimSpace(raw)
	if resolved == "" {
		return defaultAPIBase
	}
	trimmed := strings.TrimRight(resolved, "/")
	if strings.HasSuffix(trimmed, apiSuffix) {
		return trimmed
	}
	return trimmed + apiSuffix
}

// Do sends a JSON request and returns the response whatever its status.
// Only transport failures are returned as errors.
func (c *HTTPClient) Do(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}) (*Response, error) {
	if _, ok := ctx.Deadline(); !ok && c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: res.StatusCode, Body: resBody}, nil
}

// Request makes an HTTP request to the API and decodes the response.
// Non-2xx statuses come back as *APIError.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	res, err := c.Do(ctx, method, endpoint, headers, body)
	if err != nil {
		return err
	}

	if !res.OK() {
		return NewAPIError(res.StatusCode, ErrorMessage(res.Body))
	}

	if response != nil && len(res.Body) > 0 {
		if err := json.Unmarshal(res.Body, response); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
