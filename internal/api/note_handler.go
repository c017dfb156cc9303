package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"study-buddy/backend/internal/auth"
	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/interfaces"
	"study-buddy/backend/internal/service"
)

// NoteHandler serves the authenticated learner's saved notes.
type NoteHandler struct {
	service interfaces.NoteService
}

func NewNoteHandler(svc interfaces.NoteService) *NoteHandler {
	return &NoteHandler{service: svc}
}

// HandleListNotes godoc
// @Summary      List notes
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Note
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/notes [get]
func (h *NoteHandler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondWithError(w, app_errors.ErrUnauthorized)
		return
	}
	notes, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, notes)
}

// HandleCreateNote godoc
// @Summary      Save a note
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      service.CreateNoteRequest  true  "Note"
// @Success      201      {object}  model.Note
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /v1/notes [post]
func (h *NoteHandler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondWithError(w, app_errors.ErrUnauthorized)
		return
	}

	var req service.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	note, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, note)
}

// HandleGetNote godoc
// @Summary      Get a note
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Param        noteID  path      string  true  "Note ID"
// @Success      200     {object}  model.Note
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/notes/{noteID} [get]
func (h *NoteHandler) HandleGetNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondWithError(w, app_errors.ErrUnauthorized)
		return
	}
	note, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "noteID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, note)
}

// HandleDeleteNote godoc
// @Summary      Delete a note
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Param        noteID  path      string  true  "Note ID"
// @Success      200     {object}  StatusResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/notes/{noteID} [delete]
func (h *NoteHandler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondWithError(w, app_errors.ErrUnauthorized)
		return
	}
	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "noteID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
