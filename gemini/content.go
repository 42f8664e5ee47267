package gemini

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const defaultMIMEType = "video/mp4"

// UploadProcessingError reports an uploaded file settling in a terminal
// state other than ACTIVE.
type UploadProcessingError struct {
	State genai.FileState
}

func (e *UploadProcessingError) Error() string {
	return fmt.Sprintf("file processing ended in state %s", e.State)
}

// prepareContent turns the interview media into exactly one content part.
// Files above the inline limit go through the Files API and are not used
// until remote processing reaches ACTIVE; smaller files are embedded
// directly.
func (c *Client) prepareContent(ctx context.Context, media Media) (*genai.Part, error) {
	if media.Size > inlineSizeLimit {
		return c.uploadAndWait(ctx, media)
	}

	data, err := io.ReadAll(media.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read media: %w", err)
	}

	mimeType := media.MIMEType
	if mimeType == "" {
		mimeType = defaultMIMEType
	}

	return &genai.Part{InlineData: &genai.Blob{Data: data, MIMEType: mimeType}}, nil
}

// uploadAndWait submits the file to the remote store and polls its status
// until it leaves PROCESSING. The loop is bounded by maxPollAttempts (0
// disables the bound) and cancellable through ctx.
func (c *Client) uploadAndWait(ctx context.Context, media Media) (*genai.Part, error) {
	file, err := c.files.Upload(ctx, media.Reader, &genai.UploadFileConfig{
		DisplayName: media.DisplayName,
		MIMEType:    media.MIMEType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	log.Debug().Str("file", file.Name).Str("displayName", media.DisplayName).Msg("media uploaded, waiting for processing")

	attempts := 0
	for file.State == genai.FileStateProcessing {
		attempts++
		if c.maxPollAttempts > 0 && attempts > c.maxPollAttempts {
			return nil, fmt.Errorf("file %s still processing after %d status checks", file.Name, c.maxPollAttempts)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		file, err = c.files.Get(ctx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check file status: %w", err)
		}
	}

	if file.State != genai.FileStateActive {
		return nil, &UploadProcessingError{State: file.State}
	}

	return genai.NewPartFromURI(file.URI, file.MIMEType), nil
}
