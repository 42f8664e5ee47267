package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const (
	maxRetries     = 4 // 5 attempts total
	initialBackoff = 3 * time.Second
	backoffFactor  = 2.5
)

// retryableSignals mark transient rate-limit and overload faults. Anything
// else fails the invocation immediately.
var retryableSignals = []string{"429", "503", "overloaded", "resource", "quota", "exhausted"}

func isRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, signal := range retryableSignals {
		if strings.Contains(msg, signal) {
			return true
		}
	}
	return false
}

func newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialBackoff
	b.Multiplier = backoffFactor
	b.RandomizationFactor = 0 // fixed delays, no jitter
	b.MaxInterval = time.Minute
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, maxRetries)
}

// generateWithRetry calls the model, retrying transient faults with
// exponential backoff (3000 ms, factor 2.5, 4 retries). Non-transient
// faults and retry-budget exhaustion abort the invocation.
func (c *Client) generateWithRetry(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	var resp *genai.GenerateContentResponse
	attempt := 0

	operation := func() error {
		attempt++
		var err error
		resp, err = c.models.GenerateContent(ctx, model, contents, config)
		if err != nil {
			if !isRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	notify := func(err error, delay time.Duration) {
		log.Warn().
			Err(err).
			Str("model", model).
			Int("attemptsLeft", maxRetries+1-attempt).
			Dur("delay", delay).
			Msg("transient error from Gemini, retrying")
	}

	if err := backoff.RetryNotifyWithTimer(operation, backoff.WithContext(newBackOff(), ctx), notify, c.timer); err != nil {
		return nil, err
	}
	return resp, nil
}
