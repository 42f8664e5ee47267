package gemini

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nattapol/interview-insights/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func textResponse(body string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: body}}}},
		},
	}
}

func smallMedia() Media {
	return Media{
		Reader:      bytes.NewReader([]byte("interview recording")),
		Size:        1024,
		MIMEType:    "video/mp4",
		DisplayName: "interview-001.mp4",
	}
}

func TestAnalyzeInterviewCompletes(t *testing.T) {
	gen := &fakeGenerator{response: textResponse(`{
		"summary": "ช่างพอใจโดยรวม",
		"satisfactionAnalysis": [
			{"feature": "adhesion", "functional": "Like", "dysfunctional": "Dislike", "note": "ยึดเกาะดีมาก"}
		],
		"technicianClassification": {"type": "glass_aluminum", "confidence": 90}
	}`)}
	c := &Client{
		files:           &fakeFileStore{},
		models:          gen,
		model:           "default-model",
		pollInterval:    time.Millisecond,
		maxPollAttempts: 10,
		timer:           newFakeTimer(),
	}

	result := c.AnalyzeInterview(context.Background(), smallMedia(), "file-001", "")
	require.Equal(t, analysis.StatusCompleted, result.Status)
	assert.Empty(t, result.ErrorMessage)

	assert.Equal(t, "default-model", gen.lastModel)
	require.NotNil(t, gen.lastConfig)
	require.NotNil(t, gen.lastConfig.Temperature)
	assert.InDelta(t, 0.2, float64(*gen.lastConfig.Temperature), 0.0001)
	assert.Equal(t, "application/json", gen.lastConfig.ResponseMIMEType)
	assert.NotNil(t, gen.lastConfig.ResponseSchema)

	assert.Len(t, result.SatisfactionAnalysis, len(analysis.Checklist))
	assert.Equal(t, analysis.KanoOneDimensional, result.SatisfactionAnalysis[0].Category)
	require.NotNil(t, result.TechnicianClassification)
	assert.Equal(t, "glass_aluminum", result.TechnicianClassification.Type)
}

func TestAnalyzeInterviewHonorsModelOverride(t *testing.T) {
	gen := &fakeGenerator{response: textResponse(`{}`)}
	c := &Client{
		files:  &fakeFileStore{},
		models: gen,
		model:  "default-model",
		timer:  newFakeTimer(),
	}

	result := c.AnalyzeInterview(context.Background(), smallMedia(), "file-002", "pinned-model")
	require.Equal(t, analysis.StatusCompleted, result.Status)
	assert.Equal(t, "pinned-model", gen.lastModel)
}

func TestAnalyzeInterviewErrorBoundary(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("googleapi: Error 400: invalid argument")}}
	c := &Client{
		files:  &fakeFileStore{},
		models: gen,
		model:  "default-model",
		timer:  newFakeTimer(),
	}

	result := c.AnalyzeInterview(context.Background(), smallMedia(), "file-003", "")
	assert.Equal(t, analysis.StatusError, result.Status)
	assert.Contains(t, result.ErrorMessage, "invalid argument")
	assert.Nil(t, result.SatisfactionAnalysis)
	assert.Nil(t, result.SecondarySession)
}

func TestAnalyzeInterviewMalformedResponse(t *testing.T) {
	gen := &fakeGenerator{response: textResponse("sorry, I cannot do that")}
	c := &Client{
		files:  &fakeFileStore{},
		models: gen,
		model:  "default-model",
		timer:  newFakeTimer(),
	}

	result := c.AnalyzeInterview(context.Background(), smallMedia(), "file-004", "")
	assert.Equal(t, analysis.StatusError, result.Status)
	assert.Contains(t, result.ErrorMessage, "failed to parse")
	// A malformed response is not a transient fault; no retry happens.
	assert.Equal(t, 1, gen.calls)
}

func TestAnalyzeInterviewEmptyCandidates(t *testing.T) {
	gen := &fakeGenerator{response: &genai.GenerateContentResponse{}}
	c := &Client{
		files:  &fakeFileStore{},
		models: gen,
		model:  "default-model",
		timer:  newFakeTimer(),
	}

	result := c.AnalyzeInterview(context.Background(), smallMedia(), "file-005", "")
	assert.Equal(t, analysis.StatusError, result.Status)
	assert.Contains(t, result.ErrorMessage, "no response")
}
