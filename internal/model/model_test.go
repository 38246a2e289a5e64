package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Severity
		wantErr bool
	}{
		{"off string", "off", SeverityOff, false},
		{"warn string", "warn", SeverityWarn, false},
		{"warn any case", "Warn", SeverityWarn, false},
		{"warning is not a severity", "warning", SeverityOff, true},
		{"error string", "ERROR", SeverityError, false},
		{"numeric string", "2", SeverityError, false},
		{"int", 1, SeverityWarn, false},
		{"int64 from toml", int64(0), SeverityOff, false},
		{"float64 from json", float64(2), SeverityError, false},
		{"fractional float", 1.5, SeverityOff, true},
		{"out of range", 3, SeverityOff, true},
		{"unknown word", "fatal", SeverityOff, true},
		{"bool", true, SeverityOff, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSeverity))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "off", SeverityOff.String())
	assert.Equal(t, "warn", SeverityWarn.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "severity(7)", Severity(7).String())
}

func TestParseRuleEntry(t *testing.T) {
	t.Run("bare severity", func(t *testing.T) {
		entry, err := ParseRuleEntry("warn")
		require.NoError(t, err)
		assert.Equal(t, RuleEntry{Severity: SeverityWarn}, entry)
		assert.True(t, entry.Enabled())
	})

	t.Run("severity with options", func(t *testing.T) {
		opts := map[string]any{"max": 80}
		entry, err := ParseRuleEntry([]any{"error", opts, "always"})
		require.NoError(t, err)
		assert.Equal(t, SeverityError, entry.Severity)
		assert.Equal(t, []any{map[string]any{"max": 80}, "always"}, entry.Options)

		opts["max"] = 120
		assert.Equal(t, 80, entry.Options[0].(map[string]any)["max"], "options must be copied")
	})

	t.Run("string list", func(t *testing.T) {
		entry, err := ParseRuleEntry([]string{"warn", "never"})
		require.NoError(t, err)
		assert.Equal(t, []any{"never"}, entry.Options)
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := ParseRuleEntry([]any{})
		require.Error(t, err)
	})

	t.Run("bad severity in list", func(t *testing.T) {
		_, err := ParseRuleEntry([]any{"loud"})
		require.Error(t, err)
	})
}

func TestRuleEntryEncoding(t *testing.T) {
	rules := map[string]RuleEntry{
		"no-console": {Severity: SeverityOff},
		"max-len":    {Severity: SeverityError, Options: []any{map[string]any{"code": 100}}},
	}

	out, err := Encode(rules, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "no-console: \"off\"")
	assert.Contains(t, string(out), "- error")
	assert.Contains(t, string(out), "code: 100")

	out, err = Encode(rules, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"no-console": "off"`)
	assert.Contains(t, string(out), `"error"`)
}

func TestParseEcmaVersion(t *testing.T) {
	tests := []struct {
		in      any
		want    EcmaVersion
		wantErr bool
	}{
		{"latest", EcmaVersionLatest, false},
		{3, 3, false},
		{5, 5, false},
		{6, 2015, false},
		{13, 2022, false},
		{2022, 2022, false},
		{int64(2020), 2020, false},
		{"2021", 2021, false},
		{4, 0, true},
		{2014, 0, true},
		{2099, 0, true},
		{"next", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseEcmaVersion(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %v", tt.in)
			assert.True(t, errors.Is(err, ErrInvalidEcmaVersion))

			continue
		}

		require.NoError(t, err, "input %v", tt.in)
		assert.Equal(t, tt.want, got, "input %v", tt.in)
	}

	assert.Equal(t, "latest", EcmaVersionLatest.String())
	assert.Equal(t, "2022", EcmaVersion(2022).String())
}

func TestParseSourceType(t *testing.T) {
	for _, s := range []string{"script", "module", "CommonJS"} {
		_, err := ParseSourceType(s)
		require.NoError(t, err, s)
	}

	_, err := ParseSourceType("esm")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSourceType))
}

func TestParseGlobalAccess(t *testing.T) {
	tests := []struct {
		in   any
		want GlobalAccess
	}{
		{true, GlobalWritable},
		{false, GlobalReadonly},
		{"readonly", GlobalReadonly},
		{"readable", GlobalReadonly},
		{"writable", GlobalWritable},
		{"writeable", GlobalWritable},
		{"off", GlobalOff},
	}

	for _, tt := range tests {
		got, err := ParseGlobalAccess(tt.in)
		require.NoError(t, err, "input %v", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseGlobalAccess(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidGlobalAccess))

	assert.True(t, GlobalReadonly.Defined())
	assert.False(t, GlobalOff.Defined())
}

func TestFragmentDocument_Fragment(t *testing.T) {
	t.Run("converts every section", func(t *testing.T) {
		noInline := true
		doc := FragmentDocument{
			Name:  "js",
			Files: []string{"**/*.js"},
			LanguageOptions: &LanguageOptionsDocument{
				EcmaVersion:   2022,
				SourceType:    "module",
				Parser:        "espree",
				ParserOptions: map[string]any{"ecmaFeatures": map[string]any{"jsx": true}},
				Globals:       map[string]any{"SELECT": true, "cds": "readonly"},
				GlobalSets:    []string{"node"},
			},
			LinterOptions: &LinterOptionsDocument{
				NoInlineConfig:                &noInline,
				ReportUnusedDisableDirectives: true,
			},
			Rules:    map[string]any{"no-console": "off", "eqeqeq": []any{"error", "smart"}},
			Settings: map[string]any{"react": map[string]any{"version": "18"}},
			Plugins:  []string{"import"},
		}

		f, err := doc.Fragment()
		require.NoError(t, err)

		assert.Equal(t, "js", f.Label(3))
		require.NotNil(t, f.LanguageOptions.EcmaVersion)
		assert.Equal(t, EcmaVersion(2022), *f.LanguageOptions.EcmaVersion)
		assert.Equal(t, SourceTypeModule, *f.LanguageOptions.SourceType)
		assert.Equal(t, "espree", *f.LanguageOptions.Parser)
		assert.Equal(t, GlobalWritable, f.LanguageOptions.Globals["SELECT"])
		assert.Equal(t, GlobalReadonly, f.LanguageOptions.Globals["cds"])
		assert.Equal(t, []string{"node"}, f.LanguageOptions.GlobalSets)
		assert.True(t, *f.LinterOptions.NoInlineConfig)
		assert.Equal(t, SeverityWarn, *f.LinterOptions.ReportUnusedDisableDirectives)
		assert.Equal(t, SeverityOff, f.Rules["no-console"].Severity)
		assert.Equal(t, []any{"smart"}, f.Rules["eqeqeq"].Options)
		assert.Equal(t, []string{"import"}, f.Plugins)
		assert.False(t, f.IgnoresOnly())
	})

	t.Run("ignores only", func(t *testing.T) {
		f, err := FragmentDocument{Ignores: []string{"dist/"}}.Fragment()
		require.NoError(t, err)
		assert.True(t, f.IgnoresOnly())
		assert.Equal(t, "#0", f.Label(0))
	})

	t.Run("preset with body is rejected", func(t *testing.T) {
		_, err := FragmentDocument{Preset: "eslint/recommended", Files: []string{"*.js"}}.Fragment()
		require.Error(t, err)
	})

	t.Run("errors name the offending key", func(t *testing.T) {
		_, err := FragmentDocument{Rules: map[string]any{"semi": "loud"}}.Fragment()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `rules["semi"]`)

		_, err = FragmentDocument{LanguageOptions: &LanguageOptionsDocument{Globals: map[string]any{"x": 3}}}.Fragment()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `globals["x"]`)
	})
}

func TestConfigList_IgnorePatterns(t *testing.T) {
	list := ConfigList{
		{Ignores: []string{"dist/*"}},
		{Files: []string{"**/*.ts"}},
		{Ignores: []string{"gen/**/*", "**/*.cjs"}},
	}

	assert.Equal(t, []string{"dist/*", "gen/**/*", "**/*.cjs"}, list.IgnorePatterns())
}

func TestNewFileStatus(t *testing.T) {
	excluded := NewFileStatus(ExcludedConfig("dist/a.js", "dist/*"))
	assert.Equal(t, FileIgnored, excluded.State)
	assert.Equal(t, "dist/*", excluded.IgnoredBy)

	cfg := EffectiveConfig{
		Path:    "src/a.js",
		Matched: true,
		Rules: map[string]RuleEntry{
			"a": {Severity: SeverityError},
			"b": {Severity: SeverityWarn},
			"c": {Severity: SeverityOff},
		},
		LanguageOptions: ResolvedLanguageOptions{
			Globals: map[string]GlobalAccess{"x": GlobalReadonly, "y": GlobalOff},
		},
	}

	status := NewFileStatus(cfg)
	assert.Equal(t, FileLinted, status.State)
	assert.Equal(t, 1, status.Errors)
	assert.Equal(t, 1, status.Warnings)
	assert.Equal(t, 1, status.Off)
	assert.Equal(t, 1, status.Globals)

	cfg.Matched = false
	assert.Equal(t, FileUnmatched, NewFileStatus(cfg).State)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Encode(map[string]int{}, FormatTable)
	require.Error(t, err)
}

func TestEncodeExcludedConfig(t *testing.T) {
	out, err := Encode(ExcludedConfig("dist/x.ts", "dist/*"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "path: dist/x.ts\nexcluded: true\nexcludedBy: dist/*\n", string(out))
}
