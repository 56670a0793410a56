package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses the configured default
	MaxTokens    *int     // nil uses the configured default
	JSON         bool     // ask the server for JSON-only output
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the Ollama server is reachable.
	Available(ctx context.Context) bool
}

// ollamaClient implements LLMClient using the Ollama HTTP API.
type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates an LLMClient that talks to a local Ollama instance.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate. Format "json"
// constrains the model to emit a single JSON value.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Format  string        `json:"format,omitempty"`
	Stream  bool          `json:"stream"` // always false
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	body := c.buildRequest(req)
	event := LLMCallEvent{Task: req.Task, Model: c.cfg.Model}

	var lastErr error
	for event.Attempts < 1+max(c.cfg.MaxRetries, 0) {
		if event.Attempts > 0 {
			if err := sleepCtx(ctx, retryDelay*time.Duration(event.Attempts)); err != nil {
				break
			}
		}
		event.Attempts++

		resp, err := c.attempt(ctx, body)
		if err == nil {
			event.LatencyMs = time.Since(start).Milliseconds()
			event.Success = true
			c.observer.OnCallComplete(event)
			return &GenerateResponse{Text: resp.Response, Model: resp.Model, LatencyMs: event.LatencyMs}, nil
		}
		lastErr = err

		// Neither a cancelled caller nor a rejected request gets better on retry.
		var se *statusError
		if ctx.Err() != nil || (errors.As(err, &se) && !se.retryable()) {
			break
		}
	}
	lastErr = classify(lastErr)
	event.LatencyMs = time.Since(start).Milliseconds()
	event.ErrorCode = ErrorCode(lastErr)
	c.observer.OnCallComplete(event)
	return nil, lastErr
}

// retryDelay grows linearly with each retry.
const retryDelay = 200 * time.Millisecond

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

func (c *ollamaClient) buildRequest(req GenerateRequest) ollamaRequest {
	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Options: ollamaOptions{
			Temperature: c.cfg.Temperature,
			NumPredict:  c.cfg.MaxTokens,
		},
	}
	if req.Temperature != nil {
		body.Options.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		body.Options.NumPredict = *req.MaxTokens
	}
	if req.JSON {
		body.Format = "json"
	}
	return body
}

// classify maps the last attempt's failure onto the package sentinels.
func classify(err error) error {
	var se *statusError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case isConnectionError(err):
		return ErrOllamaUnavailable
	case errors.As(err, &se) && !se.retryable():
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

// statusError is a non-200 answer from Ollama.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("ollama returned status %d: %s", e.code, e.body)
}

// retryable is true for server-side failures. A 4xx, such as a model that
// has not been pulled, fails the same way every time.
func (e *statusError) retryable() bool {
	return e.code >= 500 || e.code == http.StatusTooManyRequests
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// attempt runs one request under the per-attempt timeout.
func (c *ollamaClient) attempt(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, &statusError{code: httpResp.StatusCode, body: string(bytes.TrimSpace(respBody))}
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.Endpoint + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	return false
}
