package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/llm"
	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/prompt"
)

// ActionResult carries the upstream answer for one action. Exactly one of
// the fields is set: Stream for streamed actions, Body for buffered ones.
type ActionResult struct {
	Stream io.ReadCloser
	Body   []byte
}

// settingsSource is satisfied by *SettingsService.
type settingsSource interface {
	Get(ctx context.Context) (*Settings, error)
}

// ActionService routes a tagged request to the upstream gateway with the
// instruction template of its action.
type ActionService struct {
	llm          llm.Provider
	prompts      *prompt.Catalog
	settings     settingsSource
	defaultModel string
}

// NewActionService creates an ActionService. settings may be nil, in which
// case defaultModel is always used and no default language applies.
func NewActionService(provider llm.Provider, prompts *prompt.Catalog, settings settingsSource, defaultModel string) *ActionService {
	return &ActionService{
		llm:          provider,
		prompts:      prompts,
		settings:     settings,
		defaultModel: defaultModel,
	}
}

// Execute prepends the action's system instruction to the conversation and
// forwards it upstream. The chat action returns the live event stream, which
// the caller must close. Every other action returns the upstream JSON
// document unmodified.
func (s *ActionService) Execute(ctx context.Context, req *model.ActionRequest) (*ActionResult, error) {
	if !req.Action.Valid() {
		return nil, fmt.Errorf("%w: unknown action %q", app_errors.ErrValidation, req.Action)
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: at least one message is required", app_errors.ErrValidation)
	}

	modelName, language := s.resolve(ctx, req.Language)

	instruction, err := s.prompts.Instruction(req.Action, language)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.ChatMessage, 0, len(req.Messages)+1)
	messages = append(messages, llm.ChatMessage{Role: string(model.RoleSystem), Content: instruction})
	for _, m := range req.Messages {
		messages = append(messages, llm.ChatMessage{Role: string(m.Role), Content: m.Content})
	}

	chatReq := &llm.ChatRequest{
		Model:    modelName,
		Messages: messages,
		Stream:   req.Action.Streamed(),
	}

	slog.Info("Forwarding action to gateway",
		"action", req.Action,
		"model", modelName,
		"language", language,
		"topic", req.Topic,
		"messages", len(messages),
	)

	if req.Action.Streamed() {
		stream, err := s.llm.Stream(ctx, chatReq)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Stream: stream}, nil
	}

	body, err := s.llm.Complete(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	return &ActionResult{Body: body}, nil
}

// resolve picks the model and the response language. A language set on the
// request wins over the stored default.
func (s *ActionService) resolve(ctx context.Context, language string) (string, string) {
	modelName := s.defaultModel
	if s.settings == nil {
		return modelName, language
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		slog.Warn("Could not load settings, using defaults", "error", err)
		return modelName, language
	}
	if settings.Model != "" {
		modelName = settings.Model
	}
	if language == "" {
		language = settings.DefaultLanguage
	}
	return modelName, language
}
