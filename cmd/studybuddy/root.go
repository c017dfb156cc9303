package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"study-buddy/backend/internal/client"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "studybuddy",
	Short: "Terminal client for the Study Buddy API",
	Long: `studybuddy talks to a Study Buddy server.
Chat with the AI tutor, generate quizzes, flashcards, mind maps and other
study material, or transcribe a recorded question.

Settings come from flags, STUDYBUDDY_* environment variables or a TOML
config file, in that order of precedence.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/studybuddy/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("url", "http://localhost:8000", "base URL of the Study Buddy server")
	rootCmd.PersistentFlags().String("token", "", "bearer token for protected endpoints")
	rootCmd.PersistentFlags().StringP("language", "l", "", "response language code (e.g. zu, af, sasl)")
	rootCmd.PersistentFlags().Duration("idle-timeout", client.DefaultIdleTimeout, "give up on a stream after this long without data")

	cobra.CheckErr(viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url")))
	cobra.CheckErr(viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token")))
	cobra.CheckErr(viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language")))
	cobra.CheckErr(viper.BindPFlag("idle_timeout", rootCmd.PersistentFlags().Lookup("idle-timeout")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("STUDYBUDDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(fmt.Sprintf("%s/.config/studybuddy", home))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	} else if verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newClient builds an API client from the resolved settings.
func newClient() *client.Client {
	opts := []client.Option{
		client.WithIdleTimeout(viper.GetDuration("idle_timeout")),
	}
	if token := viper.GetString("token"); token != "" {
		opts = append(opts, client.WithBearerToken(token))
	}
	if lang := viper.GetString("language"); lang != "" {
		opts = append(opts, client.WithLanguage(lang))
	}
	return client.New(viper.GetString("url"), opts...)
}
