package main

import (
	"encoding/json"
	"io"

	"github.com/hupe1980/vecstat/internal/config"
	"gopkg.in/yaml.v3"
)

func write(w io.Writer, format string, v any) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
