package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// transcribeCmd represents the transcribe command
var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a recorded question (webm audio)",
	Long: `Upload an audio recording and print the recognised text.
The server requires a bearer token; pass it with --token or STUDYBUDDY_TOKEN.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		audio, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading audio file: %w", err)
		}
		text, err := newClient().Transcribe(cmd.Context(), base64.StdEncoding.EncodeToString(audio))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
}
