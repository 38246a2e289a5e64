package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	m "flatconf.dev/pkg/flatconf/internal/model"
)

// ErrUnsupportedFormat is returned for config files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ConfigFileNames are the names searched for when no config file is given, in
// order of preference.
var ConfigFileNames = []string{
	"lint.config.yaml",
	"lint.config.yml",
	"lint.config.toml",
	"lint.config.hcl",
}

// ConfigLoader reads a flat configuration file into a ConfigList.
type ConfigLoader interface {
	Load(ctx context.Context, path m.Path) (m.ConfigList, error)
}

// LocalConfigLoader loads config files through a SourceFSAdapter.
type LocalConfigLoader struct {
	fs SourceFSAdapter
}

// NewLocalConfigLoader constructs a LocalConfigLoader reading through fs.
func NewLocalConfigLoader(fs SourceFSAdapter) *LocalConfigLoader {
	return &LocalConfigLoader{fs: fs}
}

// Load reads path and decodes it with the decoder its extension selects.
func (l *LocalConfigLoader) Load(ctx context.Context, path m.Path) (m.ConfigList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	list, err := DecodeConfig(filepath.Base(string(path)), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Loaded config", "path", path, "fragments", len(list))

	return list, nil
}

// DecodeConfig decodes data, choosing the format from filename's extension.
func DecodeConfig(filename string, data []byte) (m.ConfigList, error) {
	var (
		docs []m.FragmentDocument
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		docs, err = decodeYAML(data)
	case ".toml":
		docs, err = decodeTOML(data)
	case ".hcl":
		docs, err = decodeHCL(filename, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, err
	}

	return fragmentsFromDocuments(docs)
}

func fragmentsFromDocuments(docs []m.FragmentDocument) (m.ConfigList, error) {
	list := make(m.ConfigList, 0, len(docs))

	for i, doc := range docs {
		f, err := doc.Fragment()
		if err != nil {
			return nil, fmt.Errorf("fragment #%d: %w", i, err)
		}

		list = append(list, f)
	}

	return list, nil
}

// decodeYAML expects a top-level sequence of fragments.
func decodeYAML(data []byte) ([]m.FragmentDocument, error) {
	var docs []m.FragmentDocument

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	return docs, nil
}

type tomlConfigFile struct {
	Fragments []m.FragmentDocument `toml:"fragment"`
}

// decodeTOML expects an array of [[fragment]] tables.
func decodeTOML(data []byte) ([]m.FragmentDocument, error) {
	var file tomlConfigFile

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	return file.Fragments, nil
}
