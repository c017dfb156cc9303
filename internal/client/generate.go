package client

import (
	"context"
	"fmt"

	"study-buddy/backend/internal/artifact"
	"study-buddy/backend/internal/model"
)

// GenerateQuiz asks for a multiple-choice quiz about topic. A reply that is
// not a usable quiz is reported as ErrParse.
func (c *Client) GenerateQuiz(ctx context.Context, topic string) (artifact.Result[model.Quiz], error) {
	raw, err := c.complete(ctx, model.ActionGenerateQuiz, topic, fmt.Sprintf("Generate a quiz about: %s", topic))
	if err != nil {
		return artifact.Result[model.Quiz]{}, err
	}
	return artifact.ParseQuiz(raw)
}

// GenerateFlashcards asks for a flashcard deck about topic.
func (c *Client) GenerateFlashcards(ctx context.Context, topic string) (artifact.Result[[]model.Flashcard], error) {
	raw, err := c.complete(ctx, model.ActionGenerateFlashcards, topic, fmt.Sprintf("Generate flashcards about: %s", topic))
	if err != nil {
		return artifact.Result[[]model.Flashcard]{}, err
	}
	return artifact.ParseFlashcards(raw)
}

// GenerateMindMap asks for a mind map tree about topic.
func (c *Client) GenerateMindMap(ctx context.Context, topic string) (artifact.Result[model.MindMap], error) {
	raw, err := c.complete(ctx, model.ActionGenerateMindMap, topic, fmt.Sprintf("Generate a mind map about: %s", topic))
	if err != nil {
		return artifact.Result[model.MindMap]{}, err
	}
	return artifact.ParseMindMap(raw)
}

// GenerateNotes returns markdown study notes.
func (c *Client) GenerateNotes(ctx context.Context, topic string) (artifact.Result[string], error) {
	raw, err := c.complete(ctx, model.ActionGenerateNotes, topic, fmt.Sprintf("Generate comprehensive study notes about: %s", topic))
	if err != nil {
		return artifact.Result[string]{}, err
	}
	return artifact.Text(raw), nil
}

// GenerateInfographic returns a markdown infographic summary.
func (c *Client) GenerateInfographic(ctx context.Context, topic string) (artifact.Result[string], error) {
	raw, err := c.complete(ctx, model.ActionGenerateInfographic, topic, fmt.Sprintf("Create an infographic summary about: %s", topic))
	if err != nil {
		return artifact.Result[string]{}, err
	}
	return artifact.Text(raw), nil
}

// GeneratePodcast returns a podcast-style lesson. When the reply is not the
// expected JSON the raw text becomes the lesson content and Fallback is set.
func (c *Client) GeneratePodcast(ctx context.Context, topic string) (artifact.Result[model.PodcastLesson], error) {
	raw, err := c.complete(ctx, model.ActionGeneratePodcast, topic, fmt.Sprintf("Create a podcast-style lesson about: %s", topic))
	if err != nil {
		return artifact.Result[model.PodcastLesson]{}, err
	}
	return artifact.ParsePodcast(raw, topic), nil
}

// Summarize condenses text.
func (c *Client) Summarize(ctx context.Context, text string) (artifact.Result[string], error) {
	raw, err := c.complete(ctx, model.ActionSummarize, "", fmt.Sprintf("Summarize the following text concisely:\n\n%s", text))
	if err != nil {
		return artifact.Result[string]{}, err
	}
	return artifact.Text(raw), nil
}

// GenerateWritingPrompt returns a writing exercise with hints.
func (c *Client) GenerateWritingPrompt(ctx context.Context, topic string) (artifact.Result[model.WritingPrompt], error) {
	raw, err := c.complete(ctx, model.ActionGenerateWritingPrompt, topic, fmt.Sprintf("Create a writing prompt about: %s", topic))
	if err != nil {
		return artifact.Result[model.WritingPrompt]{}, err
	}
	return artifact.ParseWritingPrompt(raw, topic), nil
}

// EvaluateWriting returns feedback on a learner's answer to prompt.
func (c *Client) EvaluateWriting(ctx context.Context, prompt, response string) (artifact.Result[string], error) {
	message := fmt.Sprintf("Evaluate this response to the writing prompt.\n\nPrompt: %s\n\nResponse: %s", prompt, response)
	raw, err := c.complete(ctx, model.ActionEvaluateWriting, "", message)
	if err != nil {
		return artifact.Result[string]{}, err
	}
	return artifact.Text(raw), nil
}
