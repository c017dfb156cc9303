// Package client is the consumer side of the study-buddy API. It keeps a
// chat conversation in memory while assistant replies stream in, and calls
// the buffered artifact actions.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"study-buddy/backend/internal/artifact"
	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/sse"
)

const (
	// ChatPath is the router endpoint serving every action.
	ChatPath = "/api/v1/study-buddy-chat"
	// TranscribePath is the speech-to-text endpoint.
	TranscribePath = "/api/v1/transcribe-audio"

	// DefaultIdleTimeout bounds the wait between two reads of a stream body.
	DefaultIdleTimeout = 60 * time.Second

	// FallbackMessage replaces a reply that could not be streamed.
	FallbackMessage = "Sorry, I encountered an error. Please try again."

	// maxBodySize caps buffered (non-streamed) responses.
	maxBodySize = 8 << 20
)

// Client talks to a study-buddy router.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	token       string
	language    string
	idleTimeout time.Duration
	maxLine     int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. It should not set an
// overall Timeout, since that would cut long streams short.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBearerToken sends token in the Authorization header.
func WithBearerToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithLanguage asks the tutor to answer in the given language code.
func WithLanguage(code string) Option {
	return func(c *Client) { c.language = code }
}

// WithIdleTimeout sets how long a stream may stay silent.
func WithIdleTimeout(d time.Duration) Option {
	return func(c *Client) { c.idleTimeout = d }
}

// WithMaxLineSize bounds the bytes buffered for one stream line.
func WithMaxLineSize(n int) Option {
	return func(c *Client) { c.maxLine = n }
}

// New creates a Client for the router at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{},
		idleTimeout: DefaultIdleTimeout,
		maxLine:     sse.DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Language returns the configured response language, if any.
func (c *Client) Language() string {
	return c.language
}

// post sends payload as JSON to path. On success the caller owns the
// response body. A non-2xx answer is drained, closed and returned as a typed
// error.
func (c *Client) post(ctx context.Context, path string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}
	return resp, nil
}

// statusError maps a non-2xx router answer to a sentinel error.
func statusError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}

	var kind error
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		kind = app_errors.ErrRateLimited
	case http.StatusPaymentRequired:
		kind = app_errors.ErrQuotaExceeded
	case http.StatusGatewayTimeout:
		kind = app_errors.ErrTimeout
	case http.StatusUnauthorized:
		kind = app_errors.ErrUnauthorized
	case http.StatusBadRequest:
		kind = app_errors.ErrValidation
	default:
		kind = app_errors.ErrUpstream
	}
	return fmt.Errorf("%w: status %d: %s", kind, resp.StatusCode, message)
}

// complete runs a buffered action and returns the assistant text.
func (c *Client) complete(ctx context.Context, action model.Action, topic, prompt string) (string, error) {
	request := model.ActionRequest{
		Messages: []model.Message{{Role: model.RoleUser, Content: prompt}},
		Action:   action,
		Topic:    topic,
		Language: c.language,
	}

	resp, err := c.post(ctx, ChatPath, request)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", app_errors.ErrUpstream, err)
	}
	return artifact.ExtractContent(body)
}

// Transcribe sends base64-encoded audio and returns the recognised text.
func (c *Client) Transcribe(ctx context.Context, encodedAudio string) (string, error) {
	resp, err := c.post(ctx, TranscribePath, map[string]string{"audio": encodedAudio})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode transcription: %v", app_errors.ErrUpstream, err)
	}
	return result.Text, nil
}

func logger() *slog.Logger {
	return slog.Default().With("component", "stream_consumer")
}
