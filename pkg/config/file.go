package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/docatom/docatom-go/pkg/apierr"
)

// fileConfig mirrors Config for YAML decoding; timeout is a duration string
// ("10s", "1m30s") rather than nanoseconds.
type fileConfig struct {
	BaseURL  string `yaml:"base_url"`
	Protocol string `yaml:"protocol"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Timeout  string `yaml:"timeout"`
}

// FromFile loads a YAML config file. Used by the CLI; the library itself
// never reads files implicitly. Unset keys leave fields zero so the usual
// precedence layering applies.
func FromFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apierr.Wrap(apierr.KindConfiguration, err,
			fmt.Sprintf("reading config file %s: %v", path, err))
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, apierr.Wrap(apierr.KindConfiguration, err,
			fmt.Sprintf("parsing config file %s: %v", path, err))
	}

	cfg := &Config{
		BaseURL:  fc.BaseURL,
		Protocol: fc.Protocol,
		Hostname: fc.Hostname,
		Port:     fc.Port,
	}

	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, apierr.Newf(apierr.KindConfiguration,
				"invalid timeout %q in %s: %v", fc.Timeout, path, err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}
