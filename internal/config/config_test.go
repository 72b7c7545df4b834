package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vecstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
source:
  type: s3
  path: points.csv.zst
  bucket: datasets
  prefix: vectors/
  region: eu-central-1
  read_limit_bytes: 1048576
parser:
  separator: ","
  class_label_index: 2
report:
  workers: 8
  by_class: true
log_level: debug
format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SourceS3, cfg.Source.Type)
	assert.Equal(t, "datasets", cfg.Source.Bucket)
	assert.Equal(t, 1048576, cfg.Source.ReadLimitBytes)
	assert.Equal(t, ",", cfg.Parser.Separator)
	assert.Equal(t, 2, cfg.Parser.ClassLabelIndex)
	assert.Equal(t, 8, cfg.Report.Workers)
	assert.True(t, cfg.Report.ByClass)
	assert.Equal(t, FormatJSON, cfg.Format)
	// untouched keys keep their defaults
	assert.Equal(t, "embeddings", cfg.Source.Table)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown source", "source:\n  type: ftp\n"},
		{"s3 without bucket", "source:\n  type: s3\n"},
		{"postgres without dsn", "source:\n  type: postgres\n"},
		{"bad format", "format: xml\n"},
		{"bad level", "log_level: loud\n"},
		{"no workers", "report:\n  workers: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "source: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid YAML")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
