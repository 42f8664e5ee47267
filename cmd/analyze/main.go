package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/nattapol/interview-insights/analysis"
	"github.com/nattapol/interview-insights/config"
	"github.com/nattapol/interview-insights/gemini"
	"github.com/nattapol/interview-insights/report"
	"github.com/nattapol/interview-insights/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// maxConcurrent bounds how many interviews are analyzed at once. Invocations
// are independent; the limit only protects the API quota.
const maxConcurrent = 2

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	force := flag.Bool("force", false, "re-analyze files already in the archive")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: analyze [-force] <interview file>...")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open analysis archive")
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := gemini.New(ctx, gemini.Config{
		APIKey:          cfg.GeminiAPIKey,
		Model:           cfg.Model,
		PollInterval:    cfg.UploadPollInterval,
		MaxPollAttempts: cfg.UploadMaxPollAttempts,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}

	var webhook *report.WebhookClient
	if cfg.ReportWebhookURL != "" {
		webhook = report.NewWebhookClient(report.WebhookOpts{
			BaseURL: cfg.ReportWebhookURL,
			Auth:    cfg.ReportWebhookAuth,
		})
		log.Info().Str("url", cfg.ReportWebhookURL).Msg("reporting webhook enabled")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for _, path := range files {
		g.Go(func() error {
			return analyzeFile(ctx, client, store, webhook, path, cfg.Model, *force)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("analysis run failed")
	}
	log.Info().Int("files", len(files)).Msg("analysis run complete")
}

func analyzeFile(ctx context.Context, client *gemini.Client, store storage.ResultStore, webhook *report.WebhookClient, path, model string, force bool) error {
	fileID := fileIDFor(path)

	if !force {
		if stored, err := store.Get(fileID); err != nil {
			log.Warn().Err(err).Str("fileId", fileID).Msg("failed to check archive")
		} else if stored != nil && stored.Result.Status == analysis.StatusCompleted {
			log.Info().Str("fileId", fileID).Str("path", path).Msg("already analyzed, skipping (use -force to redo)")
			return nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	media := gemini.Media{
		Reader:      f,
		Size:        info.Size(),
		MIMEType:    mimeTypeFor(path),
		DisplayName: filepath.Base(path),
	}

	log.Info().Str("fileId", fileID).Str("path", path).Int64("size", info.Size()).Msg("analyzing interview")
	result := client.AnalyzeInterview(ctx, media, fileID, model)

	if err := store.Save(&storage.StoredAnalysis{FileID: fileID, Model: model, Result: *result}); err != nil {
		log.Warn().Err(err).Str("fileId", fileID).Msg("failed to archive result")
	}

	if result.Status != analysis.StatusCompleted {
		return fmt.Errorf("analysis of %s failed: %s", path, result.ErrorMessage)
	}

	workbookPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx"
	if err := report.WriteWorkbook(workbookPath, fileID, result); err != nil {
		return fmt.Errorf("failed to export workbook: %w", err)
	}
	log.Info().Str("workbook", workbookPath).Msg("workbook exported")

	if webhook != nil {
		if err := webhook.Publish(ctx, fileID, result); err != nil {
			return fmt.Errorf("failed to publish result: %w", err)
		}
		log.Info().Str("fileId", fileID).Msg("result published")
	}

	return nil
}

// fileIDFor derives a stable ID from the file name so re-runs hit the
// archive. Unnamed input (stdin pipes etc.) gets a random ID.
func fileIDFor(path string) string {
	base := filepath.Base(path)
	if base == "" || base == "." {
		return uuid.NewString()
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	default:
		// Content preparation falls back to video/mp4 for inline parts.
		return ""
	}
}
