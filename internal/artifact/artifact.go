// Package artifact turns the text returned by generation actions into typed
// study artifacts.
package artifact

import (
	"encoding/json"
	"fmt"
	"strings"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/model"
)

// DefaultPodcastDuration is used when a podcast answer is not valid JSON.
const DefaultPodcastDuration = "5 min"

// DefaultWritingHints are used when a writing-prompt answer is not valid JSON.
var DefaultWritingHints = []string{
	"Think about the key concepts",
	"Use examples to illustrate",
	"Summarize your understanding",
}

// Result is a generated artifact. Either Value was decoded from Raw, or
// Fallback is set and Value was built around Raw.
type Result[T any] struct {
	Value    T
	Raw      string
	Fallback bool
}

type completion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractContent returns choices[0].message.content of a buffered
// chat-completion document.
func ExtractContent(body []byte) (string, error) {
	var c completion
	if err := json.Unmarshal(body, &c); err != nil {
		return "", fmt.Errorf("%w: completion is not valid JSON: %v", app_errors.ErrParse, err)
	}
	if len(c.Choices) == 0 || strings.TrimSpace(c.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: completion has no content", app_errors.ErrParse)
	}
	return c.Choices[0].Message.Content, nil
}

// StripFences removes a surrounding markdown code fence, which models add
// now and then even when told to output bare JSON.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the info string ("json", "JSON", ...).
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Decode parses raw as JSON into T after removing code fences.
func Decode[T any](raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(StripFences(raw)), &v); err != nil {
		return v, fmt.Errorf("%w: %v", app_errors.ErrParse, err)
	}
	return v, nil
}

// ParseQuiz decodes a generate_quiz answer. There is no fallback.
func ParseQuiz(raw string) (Result[model.Quiz], error) {
	quiz, err := Decode[model.Quiz](raw)
	if err != nil {
		return Result[model.Quiz]{Raw: raw}, err
	}
	if len(quiz.Questions) == 0 {
		return Result[model.Quiz]{Raw: raw}, fmt.Errorf("%w: quiz has no questions", app_errors.ErrParse)
	}
	return Result[model.Quiz]{Value: quiz, Raw: raw}, nil
}

// ParseFlashcards decodes a generate_flashcards answer. There is no fallback.
func ParseFlashcards(raw string) (Result[[]model.Flashcard], error) {
	cards, err := Decode[[]model.Flashcard](raw)
	if err != nil {
		return Result[[]model.Flashcard]{Raw: raw}, err
	}
	if len(cards) == 0 {
		return Result[[]model.Flashcard]{Raw: raw}, fmt.Errorf("%w: no flashcards", app_errors.ErrParse)
	}
	return Result[[]model.Flashcard]{Value: cards, Raw: raw}, nil
}

// ParseMindMap decodes a generate_mindmap answer. There is no fallback.
func ParseMindMap(raw string) (Result[model.MindMap], error) {
	mm, err := Decode[model.MindMap](raw)
	if err != nil {
		return Result[model.MindMap]{Raw: raw}, err
	}
	if len(mm.Nodes) == 0 {
		return Result[model.MindMap]{Raw: raw}, fmt.Errorf("%w: mind map has no nodes", app_errors.ErrParse)
	}
	return Result[model.MindMap]{Value: mm, Raw: raw}, nil
}

// ParsePodcast decodes a generate_podcast answer, falling back to a lesson
// that carries the raw text under the topic as title.
func ParsePodcast(raw, topic string) Result[model.PodcastLesson] {
	lesson, err := Decode[model.PodcastLesson](raw)
	if err != nil {
		return Result[model.PodcastLesson]{
			Value:    model.PodcastLesson{Title: topic, Content: raw, Duration: DefaultPodcastDuration},
			Raw:      raw,
			Fallback: true,
		}
	}
	return Result[model.PodcastLesson]{Value: lesson, Raw: raw}
}

// ParseWritingPrompt decodes a generate_writing_prompt answer, falling back
// to the raw text as the prompt with generic hints.
func ParseWritingPrompt(raw, topic string) Result[model.WritingPrompt] {
	wp, err := Decode[model.WritingPrompt](raw)
	if err != nil {
		hints := make([]string, len(DefaultWritingHints))
		copy(hints, DefaultWritingHints)
		return Result[model.WritingPrompt]{
			Value:    model.WritingPrompt{Topic: topic, Prompt: raw, Hints: hints},
			Raw:      raw,
			Fallback: true,
		}
	}
	return Result[model.WritingPrompt]{Value: wp, Raw: raw}
}

// Text wraps a free-text answer (notes, summary, infographic, feedback).
func Text(raw string) Result[string] {
	return Result[string]{Value: raw, Raw: raw}
}
