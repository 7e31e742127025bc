// Package transport executes single HTTP round trips against the
// DocumentAtom server. It encodes multipart uploads, applies the configured
// timeout, and returns the raw status and body; translating non-2xx statuses
// into typed errors is the resource layer's job. No retries, no caching.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/docatom/docatom-go/internal/version"
	"github.com/docatom/docatom-go/pkg/apierr"
)

// Upload is a file payload attached to a request as the single multipart
// "file" part.
type Upload struct {
	Payload     []byte
	Filename    string
	ContentType string
}

// Request describes one HTTP call. Path is relative to the configured base
// endpoint.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Upload *Upload
}

// Response carries the raw outcome of a request.
type Response struct {
	StatusCode int
	Body       []byte
}

// Executor is the interface the resource layer calls. Tests substitute a
// recording fake.
type Executor interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTP is the production Executor. Safe for concurrent use; the only shared
// state is the pooled http.Transport inside the client.
type HTTP struct {
	baseURL string
	client  *http.Client
	logger  hclog.Logger
}

// Options configures an HTTP transport.
type Options struct {
	// BaseURL is the normalized base endpoint, e.g. "http://localhost:8000".
	BaseURL string

	// Timeout applies per call as a wall-clock limit.
	Timeout time.Duration

	// Client overrides the underlying http.Client. When set, Timeout is
	// ignored and the supplied client's settings apply.
	Client *http.Client

	// Logger is optional; defaults to a null logger.
	Logger hclog.Logger
}

// New creates an HTTP transport.
func New(opts Options) *HTTP {
	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &HTTP{
		baseURL: opts.BaseURL,
		client:  client,
		logger:  logger.Named("transport"),
	}
}

// Do executes one request. Network-level failures come back as connection or
// timeout errors; any HTTP response, whatever its status, is returned as-is.
func (t *HTTP) Do(ctx context.Context, req *Request) (*Response, error) {
	endpoint := t.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	if req.Upload != nil {
		encoded, ct, err := encodeMultipart(req.Upload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
		contentType = ct
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, apierr.Wrap(apierr.KindValidation, err,
			fmt.Sprintf("building request: %v", err))
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "docatom-go/"+version.Version)
	httpReq.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	t.logger.Debug("sending request",
		"method", req.Method,
		"url", endpoint,
		"request_id", requestID,
	)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}

	t.logger.Debug("received response",
		"status", resp.StatusCode,
		"bytes", len(respBody),
		"request_id", requestID,
	)

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// encodeMultipart writes the upload as a single "file" part with an explicit
// content-disposition filename and declared content type.
func encodeMultipart(up *Upload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(up.Filename)))
	ct := up.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	header.Set("Content-Type", ct)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("creating multipart body: %w", err)
	}
	if _, err := part.Write(up.Payload); err != nil {
		return nil, "", fmt.Errorf("writing multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func escapeQuotes(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		if r == '\\' || r == '"' {
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// classify splits transport failures into the timeout and connection kinds.
func classify(err error) *apierr.Error {
	if isTimeout(err) {
		return apierr.Wrap(apierr.KindTimeout, err,
			fmt.Sprintf("request timed out: %v", err))
	}
	return apierr.Wrap(apierr.KindConnection, err,
		fmt.Sprintf("could not reach server: %v", err))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
