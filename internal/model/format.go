package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for output formats other than yaml, json and table.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how resolved configurations are rendered.
type Format string

const (
	// FormatYAML renders YAML documents.
	FormatYAML Format = "yaml"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatTable renders a human-readable table.
	FormatTable Format = "table"
)

// ParseFormat validates s. An empty string selects YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatYAML, nil
	case FormatYAML, FormatJSON, FormatTable:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode renders v as YAML or JSON.
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		return buf.Bytes(), nil
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}

		return append(out, '\n'), nil
	case FormatTable:
		return nil, fmt.Errorf("%w: table output is rendered by the UI", ErrUnknownFormat)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}
