package service

import (
	"context"
	"log/slog"

	"study-buddy/backend/internal/audio"
	"study-buddy/backend/internal/llm"
)

// TranscriptionService turns uploaded base64 audio into text.
type TranscriptionService struct {
	transcriber llm.Transcriber
}

func NewTranscriptionService(transcriber llm.Transcriber) *TranscriptionService {
	return &TranscriptionService{transcriber: transcriber}
}

// Transcribe decodes encodedAudio and forwards it to the transcription
// service.
func (s *TranscriptionService) Transcribe(ctx context.Context, encodedAudio string) (string, error) {
	data, err := audio.DecodeBase64(encodedAudio)
	if err != nil {
		return "", err
	}
	slog.Info("Transcribing audio", "bytes", len(data))
	return s.transcriber.Transcribe(ctx, data)
}
