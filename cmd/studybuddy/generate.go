package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"study-buddy/backend/internal/artifact"
	"study-buddy/backend/internal/client"
)

var (
	rawOutput     bool
	writingPrompt string
)

// generateCmd groups the study material generators.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate study material about a topic",
	Long: `Generate study material about a topic.

Structured material (quiz, flashcards, mindmap, podcast, writing-prompt) is
printed as indented JSON; notes and infographics are printed as markdown.
Use --raw to print the model output unchanged.`,
}

// artifactCommand builds a "generate <kind> <topic>" subcommand.
func artifactCommand[T any](use, short string, run func(*client.Client, context.Context, string) (artifact.Result[T], error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <topic>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := run(newClient(), cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result)
		},
	}
}

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize [text]",
	Short: "Summarize text (read from stdin when no argument is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := argsOrStdin(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		result, err := newClient().Summarize(cmd.Context(), text)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [response]",
	Short: "Get feedback on a response to a writing prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		if writingPrompt == "" {
			return fmt.Errorf("--prompt is required")
		}
		response, err := argsOrStdin(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		result, err := newClient().EvaluateWriting(cmd.Context(), writingPrompt, response)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

func init() {
	generateCmd.PersistentFlags().BoolVar(&rawOutput, "raw", false, "print the model output unchanged")
	generateCmd.AddCommand(
		artifactCommand("quiz", "Generate a multiple-choice quiz", (*client.Client).GenerateQuiz),
		artifactCommand("flashcards", "Generate flashcards", (*client.Client).GenerateFlashcards),
		artifactCommand("mindmap", "Generate a mind map", (*client.Client).GenerateMindMap),
		artifactCommand("notes", "Generate study notes", (*client.Client).GenerateNotes),
		artifactCommand("infographic", "Generate an infographic summary", (*client.Client).GenerateInfographic),
		artifactCommand("podcast", "Generate a podcast-style lesson", (*client.Client).GeneratePodcast),
		artifactCommand("writing-prompt", "Generate a writing exercise", (*client.Client).GenerateWritingPrompt),
	)

	evaluateCmd.Flags().StringVarP(&writingPrompt, "prompt", "p", "", "the writing prompt that was answered")

	rootCmd.AddCommand(generateCmd, summarizeCmd, evaluateCmd)
}

func printResult[T any](out io.Writer, result artifact.Result[T]) error {
	if rawOutput {
		_, err := fmt.Fprintln(out, result.Raw)
		return err
	}
	if result.Fallback {
		fmt.Fprintln(os.Stderr, "note: the reply was not in the expected format; showing it as is")
	}
	if text, ok := any(result.Value).(string); ok {
		_, err := fmt.Fprintln(out, text)
		return err
	}
	encoded, err := json.MarshalIndent(result.Value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}

func argsOrStdin(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	input, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading from stdin: %w", err)
	}
	text := strings.TrimSpace(string(input))
	if text == "" {
		return "", fmt.Errorf("no text given")
	}
	return text, nil
}
