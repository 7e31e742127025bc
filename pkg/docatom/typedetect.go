package docatom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/docatom/docatom-go/pkg/apierr"
	"github.com/docatom/docatom-go/pkg/fileinput"
	"github.com/docatom/docatom-go/pkg/models"
	"github.com/docatom/docatom-go/pkg/transport"
)

// detectPath is the type detection endpoint.
const detectPath = "/detect-type"

// TypeDetectionService asks the server to classify a document's format from
// its content.
type TypeDetectionService struct {
	client *Client
}

// Detect uploads the input and returns the detected type. The declared
// content type of the upload is derived from the filename extension.
func (s *TypeDetectionService) Detect(ctx context.Context, in fileinput.Input) (*models.TypeDetectionResult, error) {
	payload, filename, err := in.Resolve(s.client.fs)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.transport.Do(ctx, &transport.Request{
		Method: http.MethodPost,
		Path:   detectPath,
		Upload: &transport.Upload{
			Payload:     payload,
			Filename:    filename,
			ContentType: fileinput.ContentTypeForFilename(filename),
		},
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierr.FromStatus(resp.StatusCode, resp.Body)
	}

	var result models.TypeDetectionResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, apierr.Wrap(apierr.KindAPI, err,
			fmt.Sprintf("decoding type detection response: %v", err))
	}

	s.client.logger.Debug("detected file type",
		"filename", filename,
		"file_type", result.FileType,
		"confidence", result.Confidence,
	)

	return &result, nil
}
