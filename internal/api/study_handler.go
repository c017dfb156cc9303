package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/interfaces"
	"study-buddy/backend/internal/model"
)

const streamCopyBufferSize = 32 * 1024

// StudyHandler serves the action router endpoint.
type StudyHandler struct {
	service interfaces.ActionService
}

func NewStudyHandler(svc interfaces.ActionService) *StudyHandler {
	return &StudyHandler{service: svc}
}

// HandleAction godoc
// @Summary      Run a study action
// @Description  Chat streams the upstream text/event-stream through unchanged. Every other action returns the upstream chat-completion JSON unchanged.
// @Tags         Study
// @Accept       json
// @Produce      json,text/event-stream
// @Param        request  body      model.ActionRequest  true  "Conversation and action"
// @Success      200      {object}  map[string]interface{}  "Upstream completion document or event stream"
// @Failure      400      {object}  ErrorResponse
// @Failure      402      {object}  ErrorResponse
// @Failure      429      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Failure      504      {object}  ErrorResponse
// @Router       /v1/study-buddy-chat [post]
func (h *StudyHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req model.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.service.Execute(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	if result.Stream != nil {
		h.streamThrough(w, r, result.Stream)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Body); err != nil {
		slog.Warn("Failed to write completion, client might have disconnected", "error", err)
	}
}

// streamThrough copies the upstream event stream to the client byte for
// byte, flushing after every read.
func (h *StudyHandler) streamThrough(w http.ResponseWriter, r *http.Request, stream io.ReadCloser) {
	defer func() { _ = stream.Close() }()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, streamCopyBufferSize)
	var written int64

	for {
		n, readErr := stream.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				slog.Info("Client disconnected during stream.", "bytes", written, "error", err)
				return
			}
			written += int64(n)
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr == nil {
			continue
		}
		if errors.Is(readErr, io.EOF) {
			slog.Info("Finished streaming response.", "bytes", written)
			return
		}
		if r.Context().Err() != nil {
			slog.Info("Client disconnected during stream.", "bytes", written)
			return
		}
		slog.Error("Upstream stream failed", "bytes", written, "error", readErr)
		sendStreamError(w, MessageGatewayError)
		return
	}
}
