package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	app_errors "study-buddy/backend/internal/errors"
)

const (
	// maxErrorBody caps how much of an upstream error body is read for logging.
	maxErrorBody = 64 * 1024
	// maxCompletionBody caps a buffered completion document.
	maxCompletionBody = 8 << 20
)

// Provider defines the interface for interacting with the chat-completion gateway.
type Provider interface {
	// Complete waits for the full answer and returns the upstream JSON document
	// exactly as it was received.
	Complete(ctx context.Context, req *ChatRequest) ([]byte, error)
	// Stream opens a streamed completion and returns the raw event-stream body.
	// The caller must close it.
	Stream(ctx context.Context, req *ChatRequest) (io.ReadCloser, error)
}

// ChatMessage is a message in the upstream request format.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of an OpenAI-compatible /chat/completions call.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type gatewayProvider struct {
	client  *http.Client
	url     string
	apiKey  string
	timeout time.Duration
}

// NewGatewayProvider returns a Provider for an OpenAI-compatible gateway.
// timeout bounds the buffered wait in Complete and the wait for response
// headers in Stream.
func NewGatewayProvider(url, apiKey string, timeout time.Duration) Provider {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout
	return &gatewayProvider{
		client:  &http.Client{Transport: transport},
		url:     strings.TrimSuffix(url, "/"),
		apiKey:  apiKey,
		timeout: timeout,
	}
}

func (p *gatewayProvider) Complete(ctx context.Context, req *ChatRequest) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req.Stream = false
	resp, err := p.post(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCompletionBody+1))
	if err != nil {
		return nil, transportError("could not read response body", err)
	}
	if len(body) > maxCompletionBody {
		slog.Error("Gateway completion exceeds size limit", "limit_bytes", maxCompletionBody)
		return nil, fmt.Errorf("%w: completion larger than %d bytes", app_errors.ErrUpstream, maxCompletionBody)
	}
	return body, nil
}

func (p *gatewayProvider) Stream(ctx context.Context, req *ChatRequest) (io.ReadCloser, error) {
	req.Stream = true
	resp, err := p.post(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (p *gatewayProvider) post(ctx context.Context, req *ChatRequest) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if req.Stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, transportError("http request failed", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		return nil, statusError(resp)
	}
	return resp, nil
}

// statusError turns a non-success gateway answer into one of the upstream
// sentinel errors. Rate-limit and payment statuses are kept distinct; every
// other status is logged with its body and reported as a generic failure.
func statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: gateway returned status %d", app_errors.ErrRateLimited, resp.StatusCode)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: gateway returned status %d", app_errors.ErrQuotaExceeded, resp.StatusCode)
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	slog.Error("AI gateway error", "status", resp.StatusCode, "body", string(body))
	return fmt.Errorf("%w: gateway returned status %d", app_errors.ErrUpstream, resp.StatusCode)
}

// transportError classifies a failure to talk to the upstream at all.
func transportError(msg string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", app_errors.ErrTimeout, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", app_errors.ErrUpstream, msg, err)
}
