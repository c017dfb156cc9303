package interfaces

import (
	"context"

	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, decouples
// the API layer from the service layer and allows mocking in handler tests.

// ActionService defines the contract of the action router.
type ActionService interface {
	Execute(ctx context.Context, req *model.ActionRequest) (*service.ActionResult, error)
}

// TranscriptionService defines the contract for speech-to-text.
type TranscriptionService interface {
	Transcribe(ctx context.Context, encodedAudio string) (string, error)
}

// NoteService defines the contract for per-user study notes.
type NoteService interface {
	Create(ctx context.Context, userID string, req *service.CreateNoteRequest) (*model.Note, error)
	List(ctx context.Context, userID string) ([]*model.Note, error)
	Get(ctx context.Context, userID, noteID string) (*model.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}

// SettingsService defines the contract for managing application settings.
type SettingsService interface {
	InitAndGet(ctx context.Context) (*service.Settings, error)
	Get(ctx context.Context) (*service.Settings, error)
	Save(ctx context.Context, settings *service.Settings) error
}

// CatalogService defines the contract for listing actions and languages.
type CatalogService interface {
	Get() *service.Catalog
}
