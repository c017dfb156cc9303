package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"study-buddy/backend/internal/api"
	"study-buddy/backend/internal/auth"
	"study-buddy/backend/internal/interfaces/mocks"
	"study-buddy/backend/internal/service"
)

func setupRouter(t *testing.T) (http.Handler, *auth.Verifier, *mocks.MockTranscriptionService) {
	verifier := auth.NewVerifier("router-secret")
	transcription := mocks.NewMockTranscriptionService(t)
	handlers := api.Handlers{
		Study:         api.NewStudyHandler(mocks.NewMockActionService(t)),
		Transcription: api.NewTranscriptionHandler(transcription),
		Notes:         api.NewNoteHandler(mocks.NewMockNoteService(t)),
		Settings:      api.NewSettingsHandler(mocks.NewMockSettingsService(t), service.NewCatalogService()),
	}
	return api.NewRouter(handlers, verifier, []string{"*"}), verifier, transcription
}

func TestRouter_Healthz(t *testing.T) {
	router, _, _ := setupRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRouter_TranscribeRequiresBearer(t *testing.T) {
	router, verifier, transcription := setupRouter(t)

	t.Run("No token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transcribe-audio", strings.NewReader(`{"audio":"AAAA"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})

	t.Run("Valid token", func(t *testing.T) {
		token, err := verifier.Issue("u1", time.Minute)
		require.NoError(t, err)
		transcription.On("Transcribe", mock.Anything, "AAAA").Return("hello", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/transcribe-audio", strings.NewReader(`{"audio":"AAAA"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"text":"hello"}`, rr.Body.String())
	})
}

func TestRouter_NotesRequireBearer(t *testing.T) {
	router, _, _ := setupRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/study-buddy-chat", nil)
	req.Header.Set("Origin", "https://studybuddy.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}
