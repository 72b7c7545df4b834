// Package config loads the YAML configuration of the vecstat CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source types.
const (
	SourceLocal    = "local"
	SourceS3       = "s3"
	SourceMinIO    = "minio"
	SourcePostgres = "postgres"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Source describes where the dataset is read from.
type Source struct {
	Type           string `yaml:"type"`
	Path           string `yaml:"path,omitempty"`
	Root           string `yaml:"root,omitempty"`
	Bucket         string `yaml:"bucket,omitempty"`
	Prefix         string `yaml:"prefix,omitempty"`
	Endpoint       string `yaml:"endpoint,omitempty"`
	Secure         bool   `yaml:"secure,omitempty"`
	Region         string `yaml:"region,omitempty"`
	DSN            string `yaml:"dsn,omitempty"`
	Table          string `yaml:"table,omitempty"`
	ReadLimitBytes int    `yaml:"read_limit_bytes,omitempty"`
}

// Parser configures the text parser.
type Parser struct {
	Separator       string `yaml:"separator,omitempty"`
	ClassLabelIndex int    `yaml:"class_label_index"`
}

// Report configures summaries.
type Report struct {
	Workers int  `yaml:"workers"`
	ByClass bool `yaml:"by_class"`
}

// Config is the in-memory representation of a vecstat.yaml file.
type Config struct {
	Source   Source `yaml:"source"`
	Parser   Parser `yaml:"parser"`
	Report   Report `yaml:"report"`
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Source: Source{
			Type:  SourceLocal,
			Root:  ".",
			Table: "embeddings",
		},
		Parser: Parser{
			ClassLabelIndex: -1,
		},
		Report: Report{
			Workers: 4,
		},
		LogLevel: "info",
		Format:   FormatYAML,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the source type, format and log level.
func (c *Config) Validate() error {
	switch c.Source.Type {
	case SourceLocal, SourceS3, SourceMinIO:
		if c.Source.Type != SourceLocal && c.Source.Bucket == "" {
			return fmt.Errorf("%w: source %s needs a bucket", ErrInvalidConfig, c.Source.Type)
		}
	case SourcePostgres:
		if c.Source.DSN == "" {
			return fmt.Errorf("%w: source postgres needs a dsn", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source type %q", ErrInvalidConfig, c.Source.Type)
	}

	switch c.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Report.Workers < 1 {
		return fmt.Errorf("%w: report.workers must be positive", ErrInvalidConfig)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return l, nil
}
