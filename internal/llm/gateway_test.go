package llm

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "study-buddy/backend/internal/errors"
)

// TestGatewayProvider exercises the gateway client against an httptest server
// standing in for the upstream chat-completion API.
func TestGatewayProvider(t *testing.T) {
	const upstreamJSON = `{"id":"cmpl-1","choices":[{"message":{"role":"assistant","content":"{\"title\":\"Q\"}"}}]}`
	const upstreamStream = "data: {\"choices\":[{\"delta\":{\"content\":\"Hi\"}}]}\n\n: keep-alive\n\ndata: [DONE]\n\n"

	var captured ChatRequest
	var capturedAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		if captured.Stream {
			w.Header().Set("Content-Type", "text/event-stream")
			_, _ = io.WriteString(w, upstreamStream)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, upstreamJSON)
	}))
	defer server.Close()

	provider := NewGatewayProvider(server.URL+"/v1/", "secret-key", time.Second)
	ctx := context.Background()
	messages := []ChatMessage{{Role: "system", Content: "instr"}, {Role: "user", Content: "topic"}}

	t.Run("Complete returns the upstream body unmodified", func(t *testing.T) {
		body, err := provider.Complete(ctx, &ChatRequest{Model: "m", Messages: messages, Stream: true})
		require.NoError(t, err)
		assert.Equal(t, upstreamJSON, string(body))
		assert.False(t, captured.Stream)
		assert.Equal(t, messages, captured.Messages)
		assert.Equal(t, "Bearer secret-key", capturedAuth)
	})

	t.Run("Stream passes the event stream through", func(t *testing.T) {
		rc, err := provider.Stream(ctx, &ChatRequest{Model: "m", Messages: messages})
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()

		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, upstreamStream, string(raw))
		assert.True(t, captured.Stream)
	})
}

func TestGatewayProvider_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "Rate limited", status: http.StatusTooManyRequests, wantErr: app_errors.ErrRateLimited},
		{name: "Payment required", status: http.StatusPaymentRequired, wantErr: app_errors.ErrQuotaExceeded},
		{name: "Server error", status: http.StatusInternalServerError, wantErr: app_errors.ErrUpstream},
		{name: "Bad request", status: http.StatusBadRequest, wantErr: app_errors.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, `{"error":"internal upstream detail"}`)
			}))
			defer server.Close()

			provider := NewGatewayProvider(server.URL, "k", time.Second)

			_, err := provider.Complete(context.Background(), &ChatRequest{Model: "m"})
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = provider.Stream(context.Background(), &ChatRequest{Model: "m"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotContains(t, err.Error(), "internal upstream detail")
		})
	}
}

func TestGatewayProvider_Complete_OversizedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"`)
		_, _ = io.WriteString(w, strings.Repeat("a", maxCompletionBody))
		_, _ = io.WriteString(w, `"}}]}`)
	}))
	defer server.Close()

	provider := NewGatewayProvider(server.URL, "k", 5*time.Second)

	body, err := provider.Complete(context.Background(), &ChatRequest{Model: "m"})
	assert.ErrorIs(t, err, app_errors.ErrUpstream)
	assert.Nil(t, body)
}

func TestGatewayProvider_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	provider := NewGatewayProvider(server.URL, "k", 50*time.Millisecond)

	_, err := provider.Complete(context.Background(), &ChatRequest{Model: "m"})
	assert.ErrorIs(t, err, app_errors.ErrTimeout)
	assert.NotErrorIs(t, err, app_errors.ErrUpstream)

	_, err = provider.Stream(context.Background(), &ChatRequest{Model: "m"})
	assert.ErrorIs(t, err, app_errors.ErrTimeout)
}

func TestWhisperTranscriber(t *testing.T) {
	audio := []byte{0x1a, 0x45, 0xdf, 0xa3, 0x00, 0x01}

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/audio/transcriptions", r.URL.Path)
			assert.Equal(t, "Bearer whisper-key", r.Header.Get("Authorization"))

			if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			assert.Equal(t, "whisper-1", r.FormValue("model"))

			file, header, err := r.FormFile("file")
			if !assert.NoError(t, err) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer func(f multipart.File) { _ = f.Close() }(file)
			assert.Equal(t, AudioFileName, header.Filename)
			got, err := io.ReadAll(file)
			assert.NoError(t, err)
			assert.Equal(t, audio, got)

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"text":"what is backpropagation"}`)
		}))
		defer server.Close()

		tr := NewWhisperTranscriber(server.URL, "whisper-key", time.Second)
		text, err := tr.Transcribe(context.Background(), audio)
		require.NoError(t, err)
		assert.Equal(t, "what is backpropagation", text)
	})

	t.Run("Rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"error":{"message":"slow down","type":"rate_limit_error"}}`)
		}))
		defer server.Close()

		_, err := NewWhisperTranscriber(server.URL, "k", time.Second).Transcribe(context.Background(), audio)
		assert.ErrorIs(t, err, app_errors.ErrRateLimited)
	})

	t.Run("Non-JSON failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "bad gateway")
		}))
		defer server.Close()

		_, err := NewWhisperTranscriber(server.URL, "k", time.Second).Transcribe(context.Background(), audio)
		assert.ErrorIs(t, err, app_errors.ErrUpstream)
	})
}
