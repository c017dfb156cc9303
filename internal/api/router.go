package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "study-buddy/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"study-buddy/backend/internal/auth"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Study         *StudyHandler
	Transcription *TranscriptionHandler
	Notes         *NoteHandler
	Settings      *SettingsHandler
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers, verifier *auth.Verifier, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		MaxAge:         300,
	}))

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness and readiness probe.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes get a request timeout.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/settings", h.Settings.GetSettings)
			r.Post("/settings", h.Settings.UpdateSettings)
			r.Get("/catalog", h.Settings.GetCatalog)

			r.Group(func(r chi.Router) {
				r.Use(verifier.Middleware)

				r.Get("/notes", h.Notes.HandleListNotes)
				r.Post("/notes", h.Notes.HandleCreateNote)
				r.Get("/notes/{noteID}", h.Notes.HandleGetNote)
				r.Delete("/notes/{noteID}", h.Notes.HandleDeleteNote)
			})
		})

		// Routes that wait on the upstream services. They must NOT have a
		// router timeout; the upstream clients bound their own waits.
		r.Group(func(r chi.Router) {
			r.Post("/study-buddy-chat", h.Study.HandleAction)

			r.With(verifier.Middleware).Post("/transcribe-audio", h.Transcription.HandleTranscribe)
		})
	})

	return r
}
