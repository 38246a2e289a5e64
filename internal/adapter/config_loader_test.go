package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "flatconf.dev/pkg/flatconf/internal/model"
)

const yamlConfig = `
- ignores: ["dist/*"]
- name: ts
  files: ["**/*.ts"]
  languageOptions:
    ecmaVersion: 2022
    sourceType: module
    parser: typescript-eslint/parser
    parserOptions:
      project: tsconfig.json
    globals:
      SELECT: true
      cds: readonly
    globalSets: [node]
  linterOptions:
    noInlineConfig: true
    reportUnusedDisableDirectives: error
  rules:
    no-console: "off"
    eqeqeq: [error, smart]
  settings:
    react:
      version: detect
  plugins: ["@typescript-eslint"]
- preset: eslint/recommended
`

const tomlConfig = `
[[fragment]]
ignores = ["dist/*"]

[[fragment]]
name = "ts"
files = ["**/*.ts"]
rules = { "no-console" = "off", eqeqeq = ["error", "smart"] }
plugins = ["@typescript-eslint"]

[fragment.languageOptions]
ecmaVersion = 2022
sourceType = "module"
parser = "typescript-eslint/parser"
parserOptions = { project = "tsconfig.json" }
globals = { SELECT = true, cds = "readonly" }
globalSets = ["node"]

[fragment.linterOptions]
noInlineConfig = true
reportUnusedDisableDirectives = "error"

[fragment.settings.react]
version = "detect"

[[fragment]]
preset = "eslint/recommended"
`

const hclConfig = `
fragment {
  ignores = ["dist/*"]
}

fragment {
  name  = "ts"
  files = ["**/*.ts"]

  language_options {
    ecma_version   = 2022
    source_type    = "module"
    parser         = "typescript-eslint/parser"
    parser_options = { project = "tsconfig.json" }
    globals        = { SELECT = true, cds = "readonly" }
    global_sets    = ["node"]
  }

  linter_options {
    no_inline_config                 = true
    report_unused_disable_directives = "error"
  }

  rules = {
    "no-console" = "off"
    eqeqeq       = ["error", "smart"]
  }

  settings = {
    react = { version = "detect" }
  }

  plugins = ["@typescript-eslint"]
}

fragment {
  preset = "eslint/recommended"
}
`

func TestDecodeConfig_FormatParity(t *testing.T) {
	fromYAML, err := DecodeConfig("lint.config.yaml", []byte(yamlConfig))
	require.NoError(t, err)
	require.Len(t, fromYAML, 3)

	ts := fromYAML[1]
	assert.Equal(t, "ts", ts.Name)
	assert.Equal(t, m.EcmaVersion(2022), *ts.LanguageOptions.EcmaVersion)
	assert.Equal(t, m.GlobalWritable, ts.LanguageOptions.Globals["SELECT"])
	assert.Equal(t, m.SeverityError, *ts.LinterOptions.ReportUnusedDisableDirectives)
	assert.Equal(t, []any{"smart"}, ts.Rules["eqeqeq"].Options)
	assert.Equal(t, "eslint/recommended", fromYAML[2].Preset)

	fromTOML, err := DecodeConfig("lint.config.toml", []byte(tomlConfig))
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromTOML)

	fromHCL, err := DecodeConfig("lint.config.hcl", []byte(hclConfig))
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromHCL)
}

func TestDecodeConfig_NumericOptions(t *testing.T) {
	fromYAML, err := DecodeConfig("a.yml", []byte("- rules:\n    max-len: [warn, {code: 100}]\n"))
	require.NoError(t, err)

	fromTOML, err := DecodeConfig("a.toml", []byte("[[fragment]]\nrules = { max-len = [\"warn\", { code = 100 }] }\n"))
	require.NoError(t, err)

	fromHCL, err := DecodeConfig("a.hcl", []byte("fragment {\n  rules = { \"max-len\" = [\"warn\", { code = 100 }] }\n}\n"))
	require.NoError(t, err)

	want, err := m.Encode(fromYAML[0].Rules, m.FormatJSON)
	require.NoError(t, err)

	for name, list := range map[string]m.ConfigList{"toml": fromTOML, "hcl": fromHCL} {
		got, err := m.Encode(list[0].Rules, m.FormatJSON)
		require.NoError(t, err, name)
		assert.JSONEq(t, string(want), string(got), name)
	}

	assert.Equal(t, m.SeverityWarn, fromHCL[0].Rules["max-len"].Severity)
}

func TestDecodeConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     string
		want     string
	}{
		{"unknown yaml key", "c.yaml", "- filez: [a]\n", "filez"},
		{"yaml mapping at top level", "c.yaml", "files: [a]\n", "decode yaml"},
		{"bad yaml severity", "c.yaml", "- {}\n- rules: {semi: loud}\n", "fragment #1"},
		{"bad ecmaVersion", "c.yaml", "- languageOptions: {ecmaVersion: 4}\n", "ecmaVersion"},
		{"bad sourceType", "c.yml", "- languageOptions: {sourceType: esm}\n", "sourceType"},
		{"unknown toml key", "c.toml", "[[fragment]]\nfilez = [\"a\"]\n", "decode toml"},
		{"bad toml global", "c.toml", "[[fragment]]\n[fragment.languageOptions]\nglobals = { x = 3 }\n", `globals["x"]`},
		{"hcl syntax", "c.hcl", "fragment {\n", "parse hcl"},
		{"unknown hcl attribute", "c.hcl", "fragment {\n  filez = [\"a\"]\n}\n", "decode hcl"},
		{"hcl rules not an object", "c.hcl", "fragment {\n  rules = [\"a\"]\n}\n", "expected an object"},
		{"hcl bad severity", "c.hcl", "fragment {}\nfragment {\n  rules = { semi = \"loud\" }\n}\n", "fragment #1"},
		{"preset with body", "c.yaml", "- preset: eslint/recommended\n  files: [a]\n", "cannot be combined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(tt.filename, []byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeConfig_Empty(t *testing.T) {
	list, err := DecodeConfig("lint.config.yaml", nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = DecodeConfig("lint.config.toml", nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = DecodeConfig("lint.config.hcl", nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDecodeConfig_UnsupportedFormat(t *testing.T) {
	_, err := DecodeConfig("eslint.config.js", []byte("export default []"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLocalConfigLoader_Load(t *testing.T) {
	loader := NewLocalConfigLoader(NewLocalSourceFSAdapter())
	dir := t.TempDir()

	path := filepath.Join(dir, "lint.config.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o644))

	list, err := loader.Load(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = loader.Load(context.Background(), m.Path(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- rules: {semi: loud}\n"), 0o644))

	_, err = loader.Load(context.Background(), m.Path(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = loader.Load(ctx, m.Path(path))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFSNotifyConfigWatcher_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lint.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := NewFSNotifyConfigWatcher(20 * time.Millisecond)

	changes, errs, err := watcher.Watch(ctx, m.Path(path))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("- ignores: [dist/]\n"), 0o644))

	select {
	case got := <-changes:
		assert.Equal(t, m.Path(path), got)
	case err := <-errs:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()

	deadline := time.After(5 * time.Second)

	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("changes channel not closed after cancel")
		}
	}
}

func TestFSNotifyConfigWatcher_MissingDir(t *testing.T) {
	watcher := NewFSNotifyConfigWatcher(0)

	_, _, err := watcher.Watch(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope", "lint.config.yaml")))
	require.Error(t, err)
}
