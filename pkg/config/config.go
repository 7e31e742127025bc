// Package config resolves the DocumentAtom endpoint configuration from
// explicit values, environment variables, and built-in defaults, in that
// precedence order.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/docatom/docatom-go/pkg/apierr"
)

// Environment variables consulted when no explicit value is given.
const (
	EnvProtocol = "DOCATOM_PROTOCOL"
	EnvHostname = "DOCATOM_HOSTNAME"
	EnvPort     = "DOCATOM_PORT"
)

// Built-in defaults, used when neither explicit values nor environment
// variables provide a setting.
const (
	DefaultProtocol = "http"
	DefaultHostname = "localhost"
	DefaultPort     = 8000
	DefaultTimeout  = 10 * time.Second
)

// Config describes how to reach the DocumentAtom server. A zero field means
// "unset" and is filled from the next layer during Merge. When BaseURL is
// set it wins and the component parts are ignored.
type Config struct {
	BaseURL  string        `yaml:"base_url"`
	Protocol string        `yaml:"protocol"`
	Hostname string        `yaml:"hostname"`
	Port     int           `yaml:"port"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Protocol: DefaultProtocol,
		Hostname: DefaultHostname,
		Port:     DefaultPort,
		Timeout:  DefaultTimeout,
	}
}

// FromEnv reads the DOCATOM_* environment variables. Unset variables leave
// the corresponding field zero so lower-precedence layers apply.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Protocol: os.Getenv(EnvProtocol),
		Hostname: os.Getenv(EnvHostname),
	}

	if raw := os.Getenv(EnvPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apierr.Newf(apierr.KindConfiguration,
				"%s must be an integer, got %q", EnvPort, raw)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Merge layers configs with later arguments taking precedence: each set field
// of a later layer overrides the earlier layers. Nil layers are skipped.
func Merge(layers ...*Config) *Config {
	merged := &Config{}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if layer.BaseURL != "" {
			merged.BaseURL = layer.BaseURL
		}
		if layer.Protocol != "" {
			merged.Protocol = layer.Protocol
		}
		if layer.Hostname != "" {
			merged.Hostname = layer.Hostname
		}
		if layer.Port != 0 {
			merged.Port = layer.Port
		}
		if layer.Timeout != 0 {
			merged.Timeout = layer.Timeout
		}
	}
	return merged
}

// Resolve merges the given layers on top of environment variables and the
// built-in defaults, then validates the result. This is the single entry
// point the client uses; precedence is explicit > environment > defaults.
func Resolve(layers ...*Config) (*Config, error) {
	env, err := FromEnv()
	if err != nil {
		return nil, err
	}

	all := append([]*Config{Default(), env}, layers...)
	cfg := Merge(all...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a fully-resolved config. Violations surface as
// configuration errors.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.By(validBaseURL)),
		validation.Field(&c.Protocol, validation.Required, validation.In("http", "https")),
		validation.Field(&c.Hostname, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(1))),
	)
	if err != nil {
		return apierr.Wrap(apierr.KindConfiguration, err,
			fmt.Sprintf("invalid configuration: %v", err))
	}
	return nil
}

// Endpoint returns the normalized base endpoint without a trailing slash.
func (c *Config) Endpoint() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return fmt.Sprintf("%s://%s:%d", c.Protocol, c.Hostname, c.Port)
}

// validBaseURL accepts an empty value; a non-empty value must parse as an
// absolute http(s) URL.
func validBaseURL(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a valid URL: %v", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}
