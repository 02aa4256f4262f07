// Package config loads the routing context configuration from YAML.
package config

import (
	"os"

	"dario.cat/mergo"
	"github.com/dhananjayvscot/camel/consumer"
	"github.com/dhananjayvscot/camel/rest"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

type Config struct {
	Name       string     `json:"name"`
	Log        Log        `json:"log"`
	Registry   Registry   `json:"registry"`
	Management Management `json:"management"`
	Consul     Consul     `json:"consul"`
	// Services are declared statically and served by the registry
	// from the moment it starts
	Services []Service `json:"services"`
}

type Log struct {
	Level    string `json:"level"`
	Encoding string `json:"encoding"`
}

type Registry struct {
	Strict bool `json:"strict"`
}

type Management struct {
	Address     string `json:"address"`
	Path        string `json:"path"`
	MetricsPath string `json:"metricsPath"`
}

type Consul struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address"`
	Prefix  string `json:"prefix"`
}

type Service struct {
	Id          string `json:"id"`
	Url         string `json:"url"`
	Method      string `json:"method"`
	UriTemplate string `json:"uriTemplate"`
	Consumes    string `json:"consumes"`
	Produces    string `json:"produces"`
	// State reported by the static consumer, started when empty
	State string `json:"state"`
}

// Defaults returns the configuration used for unset values.
func Defaults() Config {
	return Config{
		Name: "camel",
		Log: Log{
			Level:    "info",
			Encoding: "console",
		},
		Management: Management{
			Address:     ":8080",
			Path:        "/rest/services",
			MetricsPath: "/metrics",
		},
		Consul: Consul{
			Address: "127.0.0.1:8500",
			Prefix:  "camel-rest-",
		},
	}
}

// Load reads and parses the file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		c := Defaults()
		return &c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	return c, nil
}

// Parse decodes YAML and fills unset values from Defaults.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}

	if err := mergo.Merge(&c, Defaults()); err != nil {
		return nil, errors.Wrap(err, "merge defaults")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the declared services.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Services))
	for i, s := range c.Services {
		if s.Id == "" {
			return errors.Errorf("services[%d]: missing id", i)
		}
		if seen[s.Id] {
			return errors.Errorf("services[%d]: duplicate id %s", i, s.Id)
		}
		seen[s.Id] = true

		if s.Url == "" {
			return errors.Errorf("services[%d]: missing url", i)
		}
		if s.Method == "" {
			return errors.Errorf("services[%d]: missing method", i)
		}
		if s.State != "" {
			if _, err := consumer.ParseStatus(s.State); err != nil {
				return errors.Wrapf(err, "services[%d]", i)
			}
		}
	}
	return nil
}

// Definitions turns the declared services into registry definitions backed
// by static consumers.
func (c *Config) Definitions() []rest.Definition {
	defs := make([]rest.Definition, 0, len(c.Services))
	for _, s := range c.Services {
		status := consumer.Started
		if s.State != "" {
			status, _ = consumer.ParseStatus(s.State)
		}

		defs = append(defs, rest.Definition{
			Consumer:    consumer.NewStatic(s.Id, status),
			Url:         s.Url,
			Method:      s.Method,
			UriTemplate: s.UriTemplate,
			Consumes:    s.Consumes,
			Produces:    s.Produces,
		})
	}
	return defs
}
