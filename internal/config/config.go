package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	app_errors "study-buddy/backend/internal/errors"
)

type Config struct {
	AppPort             int           `mapstructure:"APP_PORT"`
	DatabasePath        string        `mapstructure:"DATABASE_PATH"`
	GatewayURL          string        `mapstructure:"GATEWAY_URL"`
	GatewayAPIKey       string        `mapstructure:"GATEWAY_API_KEY"`
	GatewayModel        string        `mapstructure:"GATEWAY_MODEL"`
	TranscriptionURL    string        `mapstructure:"TRANSCRIPTION_URL"`
	TranscriptionAPIKey string        `mapstructure:"TRANSCRIPTION_API_KEY"`
	AuthJWTSecret       string        `mapstructure:"AUTH_JWT_SECRET"`
	PromptsFile         string        `mapstructure:"PROMPTS_FILE"`
	UpstreamTimeout     time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	CORSAllowedOrigins  []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	v := viper.GetViper()

	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("DATABASE_PATH", "/data/studybuddy.db")
	v.SetDefault("GATEWAY_URL", "https://ai.gateway.lovable.dev/v1")
	v.SetDefault("GATEWAY_API_KEY", "")
	v.SetDefault("GATEWAY_MODEL", "google/gemini-3-flash-preview")
	v.SetDefault("TRANSCRIPTION_URL", "https://api.openai.com/v1")
	v.SetDefault("TRANSCRIPTION_API_KEY", "")
	v.SetDefault("AUTH_JWT_SECRET", "")
	v.SetDefault("PROMPTS_FILE", "")
	v.SetDefault("UPSTREAM_TIMEOUT", "60s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("LOG_LEVEL", "INFO")

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.TranscriptionAPIKey == "" {
		cfg.TranscriptionAPIKey = cfg.GatewayAPIKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every required secret is present. A missing secret is
// reported as ErrConfigurationMissing and must stop the process.
func (c *Config) Validate() error {
	var missing []string
	if c.GatewayAPIKey == "" {
		missing = append(missing, "GATEWAY_API_KEY")
	}
	if c.AuthJWTSecret == "" {
		missing = append(missing, "AUTH_JWT_SECRET")
	}
	if c.GatewayURL == "" {
		missing = append(missing, "GATEWAY_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", app_errors.ErrConfigurationMissing, strings.Join(missing, ", "))
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("%w: UPSTREAM_TIMEOUT must be positive", app_errors.ErrValidation)
	}
	return nil
}
