package base

import (
	"time"

	"github.com/docatom/docatom-go/pkg/config"
	"github.com/docatom/docatom-go/pkg/docatom"
)

// ClientFlags are the connection flags shared by every command that talks to
// the server. Values left unset fall through to the config file, then the
// DOCATOM_* environment variables, then the built-in defaults.
type ClientFlags struct {
	Endpoint   string
	Timeout    time.Duration
	ConfigPath string
}

// Register adds the shared connection flags to f.
func (cf *ClientFlags) Register(f *FlagSet) {
	f.StringVar(
		&cf.Endpoint, "endpoint", "",
		"Base URL of the DocumentAtom server (overrides config file and environment)",
	)
	f.DurationVar(
		&cf.Timeout, "timeout", 0,
		"Per-request timeout, e.g. 30s (default 10s)",
	)
	f.StringVar(
		&cf.ConfigPath, "config", "",
		"Path to a YAML config file with endpoint settings",
	)
}

// NewClient builds a docatom client from the parsed flags.
func (c *Command) NewClient(cf *ClientFlags) (*docatom.Client, error) {
	opts := []docatom.Option{docatom.WithLogger(c.Log)}

	if cf.ConfigPath != "" {
		fileCfg, err := config.FromFile(cf.ConfigPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, docatom.WithConfig(fileCfg))
	}
	if cf.Endpoint != "" {
		opts = append(opts, docatom.WithBaseURL(cf.Endpoint))
	}
	if cf.Timeout != 0 {
		opts = append(opts, docatom.WithTimeout(cf.Timeout))
	}

	return docatom.New(opts...)
}
