package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/prompt"
)

const (
	keyModel           = "model"
	keyDefaultLanguage = "default_language"
)

// Settings holds the runtime settings stored in the settings table.
type Settings struct {
	Model           string `json:"model" validate:"required,max=200" example:"google/gemini-3-flash-preview"`
	DefaultLanguage string `json:"default_language" validate:"max=10" example:"zu"`
}

type SettingsService struct {
	db       *sql.DB
	defaults Settings
}

// NewSettingsService creates a SettingsService. defaults fill in any value
// missing from the database.
func NewSettingsService(db *sql.DB, defaults Settings) *SettingsService {
	return &SettingsService{db: db, defaults: defaults}
}

// InitAndGet stores the defaults on first start and returns the current
// settings.
func (s *SettingsService) InitAndGet(ctx context.Context) (*Settings, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if stored.Model != "" {
		slog.Info("Found existing settings in the database.", "model", stored.Model)
		return stored, nil
	}

	slog.Info("No settings found, storing defaults.", "model", s.defaults.Model)
	initial := s.defaults
	if err := s.save(ctx, &initial); err != nil {
		return nil, fmt.Errorf("failed to save initial settings: %w", err)
	}
	return &initial, nil
}

// Get returns the current settings. A missing model is healed from the
// defaults and written back.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if settings.Model == "" {
		slog.Warn("Model setting is empty, restoring default.", "model", s.defaults.Model)
		settings.Model = s.defaults.Model
		if err := s.save(ctx, settings); err != nil {
			return nil, fmt.Errorf("failed to save healed settings: %w", err)
		}
	}
	return settings, nil
}

// Save validates and stores settings.
func (s *SettingsService) Save(ctx context.Context, settings *Settings) error {
	if settings.Model == "" {
		return fmt.Errorf("%w: model cannot be empty", app_errors.ErrValidation)
	}
	if settings.DefaultLanguage != "" {
		if _, ok := prompt.FindLanguage(settings.DefaultLanguage); !ok {
			return fmt.Errorf("%w: language '%s' is not supported", app_errors.ErrValidation, settings.DefaultLanguage)
		}
	}
	return s.save(ctx, settings)
}

func (s *SettingsService) load(ctx context.Context) (*Settings, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	settings := &Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case keyModel:
			settings.Model = value
		case keyDefaultLanguage:
			settings.DefaultLanguage = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) save(ctx context.Context, settings *Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return fmt.Errorf("could not prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, kv := range [][2]string{
		{keyModel, settings.Model},
		{keyDefaultLanguage, settings.DefaultLanguage},
	} {
		if _, err := stmt.ExecContext(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("could not save setting %s: %w", kv[0], err)
		}
	}
	return tx.Commit()
}
