package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 5*time.Second, cfg.UploadPollInterval)
	assert.Equal(t, 120, cfg.UploadMaxPollAttempts)
	assert.Equal(t, "insights.db", cfg.DBPath)
	assert.Empty(t, cfg.ReportWebhookURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("UPLOAD_POLL_INTERVAL", "1s")
	t.Setenv("UPLOAD_MAX_POLL_ATTEMPTS", "0")
	t.Setenv("REPORT_WEBHOOK_URL", "https://reports.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, time.Second, cfg.UploadPollInterval)
	assert.Zero(t, cfg.UploadMaxPollAttempts)
	assert.Equal(t, "https://reports.example", cfg.ReportWebhookURL)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
}
