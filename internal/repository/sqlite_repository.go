package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"study-buddy/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) NoteRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateNote(ctx context.Context, note *model.Note) error {
	query := "INSERT INTO notes (id, user_id, title, content, topic, is_uploaded, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
	var topic sql.NullString
	if note.Topic != "" {
		topic = sql.NullString{String: note.Topic, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query, note.ID, note.UserID, note.Title, note.Content, topic, note.IsUploaded, note.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert note: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetNote(ctx context.Context, userID, noteID string) (*model.Note, error) {
	query := "SELECT id, user_id, title, content, topic, is_uploaded, created_at FROM notes WHERE id = ? AND user_id = ?"
	note, err := scanNote(r.db.QueryRowContext(ctx, query, noteID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return note, nil
}

func (r *sqliteRepository) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	query := "SELECT id, user_id, title, content, topic, is_uploaded, created_at FROM notes WHERE user_id = ? ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	notes := make([]*model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *sqliteRepository) DeleteNote(ctx context.Context, userID, noteID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ? AND user_id = ?", noteID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*model.Note, error) {
	var note model.Note
	var topic sql.NullString
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &topic, &note.IsUploaded, &note.CreatedAt); err != nil {
		return nil, err
	}
	if topic.Valid {
		note.Topic = topic.String
	}
	return &note, nil
}
