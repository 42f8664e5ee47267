package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the analyzer reads from the environment.
type Config struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY,required,notEmpty"`
	Model        string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-pro"`

	// UploadPollInterval is the wait between status checks while the Files
	// API processes a large upload.
	UploadPollInterval time.Duration `env:"UPLOAD_POLL_INTERVAL" envDefault:"5s"`
	// UploadMaxPollAttempts bounds the processing poll loop. 0 disables the
	// bound.
	UploadMaxPollAttempts int `env:"UPLOAD_MAX_POLL_ATTEMPTS" envDefault:"120"`

	DBPath string `env:"INSIGHTS_DB_PATH" envDefault:"insights.db"`

	// ReportWebhookURL, when set, enables publishing completed results to
	// the reporting-ingest endpoint.
	ReportWebhookURL  string `env:"REPORT_WEBHOOK_URL"`
	ReportWebhookAuth string `env:"REPORT_WEBHOOK_AUTH"`
}

// Load reads a local .env file if present, then parses the environment.
func Load() (Config, error) {
	// The .env file is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
