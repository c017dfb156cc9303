package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	app_errors "study-buddy/backend/internal/errors"
)

// AudioFileName is the name under which recorded audio is uploaded. The
// extension tells the transcription service the container format.
const AudioFileName = "audio.webm"

// Transcriber converts recorded speech to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type whisperTranscriber struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewWhisperTranscriber returns a Transcriber backed by an OpenAI-compatible
// /audio/transcriptions endpoint.
func NewWhisperTranscriber(url, apiKey string, timeout time.Duration) Transcriber {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(url, "/")
	return &whisperTranscriber{
		client:  openai.NewClientWithConfig(cfg),
		model:   openai.Whisper1,
		timeout: timeout,
	}
}

func (t *whisperTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: AudioFileName,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", transcriptionError(err)
	}
	return resp.Text, nil
}

func transcriptionError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	default:
		return transportError("transcription request failed", err)
	}

	switch status {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: transcription service returned status %d", app_errors.ErrRateLimited, status)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: transcription service returned status %d", app_errors.ErrQuotaExceeded, status)
	}
	return fmt.Errorf("%w: transcription service returned status %d: %v", app_errors.ErrUpstream, status, err)
}
