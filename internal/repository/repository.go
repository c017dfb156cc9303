package repository

import (
	"context"

	"study-buddy/backend/internal/model"
)

// NoteRepository defines the storage operations for saved study notes.
// Every read and delete is scoped to the owning user.
type NoteRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetNote(ctx context.Context, userID, noteID string) (*model.Note, error)
	ListNotes(ctx context.Context, userID string) ([]*model.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}
