package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/llm"
	"study-buddy/backend/internal/llm/mocks"
	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/prompt"
	"study-buddy/backend/internal/service"
)

type fakeSettings struct {
	settings *service.Settings
	err      error
}

func (f *fakeSettings) Get(context.Context) (*service.Settings, error) {
	return f.settings, f.err
}

func setupActionService(t *testing.T, settings *fakeSettings) (*service.ActionService, *mocks.MockProvider, *prompt.Catalog) {
	catalog, err := prompt.LoadCatalog("")
	require.NoError(t, err)

	mockLLM := mocks.NewMockProvider(t)
	if settings == nil {
		return service.NewActionService(mockLLM, catalog, nil, "default-model"), mockLLM, catalog
	}
	return service.NewActionService(mockLLM, catalog, settings, "default-model"), mockLLM, catalog
}

func TestActionService_Execute_GenerateQuiz(t *testing.T) {
	ctx := context.Background()
	actionService, mockLLM, catalog := setupActionService(t, nil)

	instruction, err := catalog.Instruction(model.ActionGenerateQuiz, "")
	require.NoError(t, err)

	upstream := []byte(`{"id":"x","choices":[{"message":{"role":"assistant","content":"{\"title\":\"Q\"}"}}],"usage":{"total_tokens":9}}`)

	mockLLM.On("Complete", ctx, mock.MatchedBy(func(req *llm.ChatRequest) bool {
		return req.Model == "default-model" &&
			!req.Stream &&
			len(req.Messages) == 2 &&
			req.Messages[0] == llm.ChatMessage{Role: "system", Content: instruction} &&
			req.Messages[1] == llm.ChatMessage{Role: "user", Content: "Generate a quiz about: Photosynthesis"}
	})).Return(upstream, nil).Once()

	result, err := actionService.Execute(ctx, &model.ActionRequest{
		Action:   model.ActionGenerateQuiz,
		Topic:    "Photosynthesis",
		Messages: []model.Message{{Role: model.RoleUser, Content: "Generate a quiz about: Photosynthesis"}},
	})
	require.NoError(t, err)
	assert.Nil(t, result.Stream)
	assert.Equal(t, upstream, result.Body)
}

func TestActionService_Execute_ChatStreams(t *testing.T) {
	ctx := context.Background()
	actionService, mockLLM, _ := setupActionService(t, nil)

	body := io.NopCloser(strings.NewReader("data: [DONE]\n\n"))
	mockLLM.On("Stream", ctx, mock.MatchedBy(func(req *llm.ChatRequest) bool {
		return req.Stream && len(req.Messages) == 3 &&
			req.Messages[0].Role == "system" &&
			req.Messages[1].Role == "user" &&
			req.Messages[2].Role == "assistant"
	})).Return(body, nil).Once()

	result, err := actionService.Execute(ctx, &model.ActionRequest{
		Action: model.ActionChat,
		Messages: []model.Message{
			{Role: model.RoleUser, Content: "What is an epoch?"},
			{Role: model.RoleAssistant, Content: "One full pass over the data."},
		},
	})
	require.NoError(t, err)
	assert.Same(t, body, result.Stream)
	assert.Nil(t, result.Body)
}

func TestActionService_Execute_Language(t *testing.T) {
	ctx := context.Background()

	t.Run("Request language is appended to the system instruction", func(t *testing.T) {
		actionService, mockLLM, _ := setupActionService(t, nil)

		mockLLM.On("Complete", ctx, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			return strings.Contains(req.Messages[0].Content, "Please respond in isiXhosa") &&
				len(req.Messages) == 2
		})).Return([]byte(`{}`), nil).Once()

		_, err := actionService.Execute(ctx, &model.ActionRequest{
			Action:   model.ActionSummarize,
			Language: "xh",
			Messages: []model.Message{{Role: model.RoleUser, Content: "Summarize: cells"}},
		})
		require.NoError(t, err)
	})

	t.Run("Stored settings supply model and default language", func(t *testing.T) {
		settings := &fakeSettings{settings: &service.Settings{Model: "stored-model", DefaultLanguage: "af"}}
		actionService, mockLLM, _ := setupActionService(t, settings)

		mockLLM.On("Complete", ctx, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			return req.Model == "stored-model" && strings.Contains(req.Messages[0].Content, "Afrikaans")
		})).Return([]byte(`{}`), nil).Once()

		_, err := actionService.Execute(ctx, &model.ActionRequest{
			Action:   model.ActionGenerateNotes,
			Messages: []model.Message{{Role: model.RoleUser, Content: "Generate notes about: cells"}},
		})
		require.NoError(t, err)
	})

	t.Run("Settings failure falls back to defaults", func(t *testing.T) {
		settings := &fakeSettings{err: errors.New("db locked")}
		actionService, mockLLM, _ := setupActionService(t, settings)

		mockLLM.On("Complete", ctx, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			return req.Model == "default-model"
		})).Return([]byte(`{}`), nil).Once()

		_, err := actionService.Execute(ctx, &model.ActionRequest{
			Action:   model.ActionGenerateNotes,
			Messages: []model.Message{{Role: model.RoleUser, Content: "x"}},
		})
		require.NoError(t, err)
	})
}

func TestActionService_Execute_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown action", func(t *testing.T) {
		actionService, _, _ := setupActionService(t, nil)
		_, err := actionService.Execute(ctx, &model.ActionRequest{
			Action:   "translate",
			Messages: []model.Message{{Role: model.RoleUser, Content: "x"}},
		})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("No messages", func(t *testing.T) {
		actionService, _, _ := setupActionService(t, nil)
		_, err := actionService.Execute(ctx, &model.ActionRequest{Action: model.ActionChat})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	for _, upstreamErr := range []error{app_errors.ErrRateLimited, app_errors.ErrQuotaExceeded, app_errors.ErrUpstream} {
		t.Run("Upstream "+upstreamErr.Error(), func(t *testing.T) {
			actionService, mockLLM, _ := setupActionService(t, nil)
			mockLLM.On("Stream", ctx, mock.Anything).Return(nil, upstreamErr).Once()

			result, err := actionService.Execute(ctx, &model.ActionRequest{
				Action:   model.ActionChat,
				Messages: []model.Message{{Role: model.RoleUser, Content: "hi"}},
			})
			assert.Nil(t, result)
			assert.ErrorIs(t, err, upstreamErr)
		})
	}
}
