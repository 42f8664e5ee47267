package gemini

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nattapol/interview-insights/analysis"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const (
	// DefaultModel is used when the caller does not name a model.
	DefaultModel = "gemini-2.5-pro"

	// inlineSizeLimit is the strict upper bound for embedding media bytes
	// directly in the request. Anything larger goes through the Files API.
	inlineSizeLimit = 20 << 20 // 20 MiB

	defaultPollInterval    = 5 * time.Second
	defaultMaxPollAttempts = 120

	samplingTemperature float32 = 0.2
)

// Media is one recorded interview file handed in for analysis.
type Media struct {
	Reader      io.Reader
	Size        int64
	MIMEType    string
	DisplayName string
}

// fileStore is the slice of the Files API the client needs. Narrowed to an
// interface so content preparation can be tested against a fake backend.
type fileStore interface {
	Upload(ctx context.Context, r io.Reader, config *genai.UploadFileConfig) (*genai.File, error)
	Get(ctx context.Context, name string) (*genai.File, error)
}

// generator is the slice of the Models API used for analysis calls.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type genaiFileStore struct {
	client *genai.Client
}

func (s genaiFileStore) Upload(ctx context.Context, r io.Reader, config *genai.UploadFileConfig) (*genai.File, error) {
	return s.client.Files.Upload(ctx, r, config)
}

func (s genaiFileStore) Get(ctx context.Context, name string) (*genai.File, error) {
	return s.client.Files.Get(ctx, name, nil)
}

type genaiGenerator struct {
	client *genai.Client
}

func (g genaiGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.client.Models.GenerateContent(ctx, model, contents, config)
}

// Config carries the tunable parts of the client. Zero values fall back to
// the defaults above.
type Config struct {
	APIKey string
	Model  string
	// PollInterval is the wait between upload-processing status checks.
	PollInterval time.Duration
	// MaxPollAttempts bounds the upload-processing poll loop. 0 means
	// unbounded.
	MaxPollAttempts int
}

// Client analyzes interview recordings with Gemini.
type Client struct {
	files           fileStore
	models          generator
	model           string
	pollInterval    time.Duration
	maxPollAttempts int

	// timer overrides the backoff timer between retries. Nil uses real time.
	timer backoff.Timer
}

// New creates a Gemini-backed interview analyzer.
func New(ctx context.Context, cfg Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		files:           genaiFileStore{client: client},
		models:          genaiGenerator{client: client},
		model:           cfg.Model,
		pollInterval:    cfg.PollInterval,
		maxPollAttempts: cfg.MaxPollAttempts,
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.pollInterval == 0 {
		c.pollInterval = defaultPollInterval
	}
	if c.maxPollAttempts == 0 {
		c.maxPollAttempts = defaultMaxPollAttempts
	}
	return c, nil
}

// AnalyzeInterview runs the full pipeline for one interview recording:
// content preparation, prompt/schema assembly, the retried model call, and
// result reconciliation. It never returns an error; any fault is folded into
// an error record so callers always get a Result. An empty model falls back
// to the configured default.
func (c *Client) AnalyzeInterview(ctx context.Context, media Media, fileID string, model string) *analysis.Result {
	result, err := c.analyze(ctx, media, model)
	if err != nil {
		log.Error().Err(err).Str("fileId", fileID).Msg("interview analysis failed")
		return analysis.ErrorResult(err)
	}
	log.Info().Str("fileId", fileID).Msg("interview analysis completed")
	return result
}

func (c *Client) analyze(ctx context.Context, media Media, model string) (*analysis.Result, error) {
	if model == "" {
		model = c.model
	}

	mediaPart, err := c.prepareContent(ctx, media)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			mediaPart,
			genai.NewPartFromText(buildInstruction()),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(samplingTemperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	}

	resp, err := c.generateWithRetry(ctx, model, contents, config)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini")
	}

	return analysis.Reconcile(resp.Text())
}
