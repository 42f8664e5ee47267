package report

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nattapol/interview-insights/analysis"
)

// webhookPayload is the envelope posted to the reporting-ingest endpoint.
type webhookPayload struct {
	FileID string           `json:"fileId"`
	Result *analysis.Result `json:"result"`
}

type WebhookOpts struct {
	BaseURL string
	Auth    string
}

// WebhookClient publishes completed analyses to the downstream reporting
// service.
type WebhookClient struct {
	httpClient *resty.Client
	auth       string
}

func NewWebhookClient(opts WebhookOpts) *WebhookClient {
	c := WebhookClient{auth: opts.Auth}
	c.httpClient = resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &c
}

// Publish posts one analysis result keyed by file ID.
func (c *WebhookClient) Publish(ctx context.Context, fileID string, result *analysis.Result) error {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetBody(webhookPayload{FileID: fileID, Result: result})
	if c.auth != "" {
		request.SetHeader("Authorization", c.auth)
	}

	_, err := handleError(request.Post("/v1/analyses"))
	return err
}

// handleError is a generic error handler for failing responses (>399 status
// code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}
