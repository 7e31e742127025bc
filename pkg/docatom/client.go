// Package docatom is the client for the DocumentAtom document-processing
// API. A Client aggregates the resolved configuration, the HTTP transport,
// and three resource services: Connectivity, TypeDetection, and
// AtomExtraction.
//
// Construction resolves configuration with the precedence explicit option >
// supplied config value > DOCATOM_* environment variables > built-in
// defaults, and the result is immutable for the client's lifetime. Every
// method performs exactly one request/response round trip; concurrent use of
// one client is safe.
package docatom

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/docatom/docatom-go/pkg/config"
	"github.com/docatom/docatom-go/pkg/transport"
)

// Client is the entry point for all DocumentAtom operations.
type Client struct {
	cfg       *config.Config
	transport transport.Executor
	fs        afero.Fs
	logger    hclog.Logger

	// Connectivity checks server reachability.
	Connectivity *ConnectivityService

	// TypeDetection classifies documents by content.
	TypeDetection *TypeDetectionService

	// AtomExtraction decomposes documents into atoms.
	AtomExtraction *AtomExtractionService
}

type clientOptions struct {
	cfg      *config.Config
	explicit config.Config

	transport  transport.Executor
	httpClient *http.Client
	fs         afero.Fs
	logger     hclog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

// WithConfig supplies a configuration value. Explicit options such as
// WithBaseURL still take precedence over it.
func WithConfig(cfg *config.Config) Option {
	return func(o *clientOptions) { o.cfg = cfg }
}

// WithBaseURL sets the full base URL, overriding protocol/hostname/port.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.explicit.BaseURL = baseURL }
}

// WithEndpoint sets the endpoint from its component parts.
func WithEndpoint(protocol, hostname string, port int) Option {
	return func(o *clientOptions) {
		o.explicit.Protocol = protocol
		o.explicit.Hostname = hostname
		o.explicit.Port = port
	}
}

// WithTimeout sets the per-call wall-clock timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) { o.explicit.Timeout = timeout }
}

// WithTransport substitutes the transport executor. Intended for tests.
func WithTransport(executor transport.Executor) Option {
	return func(o *clientOptions) { o.transport = executor }
}

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = client }
}

// WithFs substitutes the filesystem used to resolve path inputs. Intended
// for tests.
func WithFs(fs afero.Fs) Option {
	return func(o *clientOptions) { o.fs = fs }
}

// WithLogger sets the logger. Defaults to a null logger.
func WithLogger(logger hclog.Logger) Option {
	return func(o *clientOptions) { o.logger = logger }
}

// New creates a Client. It fails with a configuration error when the
// resolved endpoint is invalid.
func New(opts ...Option) (*Client, error) {
	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := config.Resolve(o.cfg, &o.explicit)
	if err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	fs := o.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	executor := o.transport
	if executor == nil {
		executor = transport.New(transport.Options{
			BaseURL: cfg.Endpoint(),
			Timeout: cfg.Timeout,
			Client:  o.httpClient,
			Logger:  logger,
		})
	}

	c := &Client{
		cfg:       cfg,
		transport: executor,
		fs:        fs,
		logger:    logger.Named("docatom"),
	}
	c.Connectivity = &ConnectivityService{client: c}
	c.TypeDetection = &TypeDetectionService{client: c}
	c.AtomExtraction = &AtomExtractionService{client: c}

	return c, nil
}

// Config returns a copy of the client's resolved configuration.
func (c *Client) Config() config.Config {
	return *c.cfg
}

// Endpoint returns the normalized base endpoint the client talks to.
func (c *Client) Endpoint() string {
	return c.cfg.Endpoint()
}
