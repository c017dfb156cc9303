package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/repository"
)

// CreateNoteRequest is the body for saving a note.
type CreateNoteRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=200" example:"Photosynthesis"`
	Content    string `json:"content" validate:"required"`
	Topic      string `json:"topic,omitempty" validate:"max=500"`
	IsUploaded bool   `json:"is_uploaded"`
}

type NoteService struct {
	repo repository.NoteRepository
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Create saves a new note owned by userID.
func (s *NoteService) Create(ctx context.Context, userID string, req *CreateNoteRequest) (*model.Note, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	note := &model.Note{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		Topic:      req.Topic,
		IsUploaded: req.IsUploaded,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("could not save note: %w", err)
	}
	slog.Info("Saved note", "note_id", note.ID, "user_id", userID)
	return note, nil
}

// List returns the notes of userID, newest first.
func (s *NoteService) List(ctx context.Context, userID string) ([]*model.Note, error) {
	return s.repo.ListNotes(ctx, userID)
}

func (s *NoteService) Get(ctx context.Context, userID, noteID string) (*model.Note, error) {
	note, err := s.repo.GetNote(ctx, userID, noteID)
	if err != nil {
		return nil, translateRepoError(err, noteID)
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	if err := s.repo.DeleteNote(ctx, userID, noteID); err != nil {
		return translateRepoError(err, noteID)
	}
	slog.Info("Deleted note", "note_id", noteID, "user_id", userID)
	return nil
}

func translateRepoError(err error, noteID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: note %s", app_errors.ErrNotFound, noteID)
	}
	return err
}
