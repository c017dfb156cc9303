package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/interfaces"
)

// TranscriptionHandler serves speech-to-text.
type TranscriptionHandler struct {
	service interfaces.TranscriptionService
}

func NewTranscriptionHandler(svc interfaces.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{service: svc}
}

// HandleTranscribe godoc
// @Summary      Transcribe recorded audio
// @Description  Decodes base64 webm audio and returns the recognised text.
// @Tags         Audio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      TranscribeRequest  true  "Base64 audio"
// @Success      200      {object}  TranscribeResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      429      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /v1/transcribe-audio [post]
func (h *TranscriptionHandler) HandleTranscribe(w http.ResponseWriter, r *http.Request) {
	var req TranscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	text, err := h.service.Transcribe(r.Context(), req.Audio)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TranscribeResponse{Text: text})
}
