package domain_test

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatconf.dev/pkg/flatconf/internal/domain"
	m "flatconf.dev/pkg/flatconf/internal/model"
	"flatconf.dev/pkg/flatconf/internal/preset"
)

func ptr[T any](v T) *T {
	return &v
}

func scenarioList() m.ConfigList {
	return m.ConfigList{
		{Ignores: []string{"dist/*"}},
		{
			Files: []string{"**/*.ts"},
			Rules: map[string]m.RuleEntry{"no-console": {Severity: m.SeverityOff}},
		},
	}
}

func TestResolve_Scenarios(t *testing.T) {
	t.Run("ignored path is excluded", func(t *testing.T) {
		cfg, err := domain.Resolve("dist/x.ts", scenarioList())
		require.NoError(t, err)

		assert.Equal(t, m.ExcludedConfig("dist/x.ts", "dist/*"), cfg)
	})

	t.Run("selected path gets the rule", func(t *testing.T) {
		cfg, err := domain.Resolve("src/a.ts", scenarioList())
		require.NoError(t, err)

		assert.False(t, cfg.Excluded)
		assert.True(t, cfg.Matched)
		assert.Equal(t, map[string]m.RuleEntry{"no-console": {Severity: m.SeverityOff}}, cfg.Rules)
		assert.Equal(t, []string{"#1"}, cfg.Applied)
	})

	t.Run("other extension gets nothing", func(t *testing.T) {
		cfg, err := domain.Resolve("src/a.js", scenarioList())
		require.NoError(t, err)

		assert.False(t, cfg.Excluded)
		assert.False(t, cfg.Matched)
		assert.Empty(t, cfg.Rules)
		assert.Empty(t, cfg.Applied)
	})

	t.Run("parent-relative path without base dir", func(t *testing.T) {
		cfg, err := domain.Resolve("../src/a.ts", scenarioList())
		require.NoError(t, err)

		assert.False(t, cfg.Excluded)
		assert.Empty(t, cfg.ExcludedBy)
		assert.Equal(t, m.Path("../src/a.ts"), cfg.Path)
		assert.Equal(t, map[string]m.RuleEntry{"no-console": {Severity: m.SeverityOff}}, cfg.Rules)
	})
}

func TestResolver_Defaults(t *testing.T) {
	r, err := domain.NewResolver(nil)
	require.NoError(t, err)

	cfg := r.Resolve("lib/a.js")
	assert.Equal(t, m.EcmaVersionLatest, cfg.LanguageOptions.EcmaVersion)
	assert.Equal(t, m.SourceTypeModule, cfg.LanguageOptions.SourceType)
	assert.Equal(t, m.SeverityWarn, cfg.LinterOptions.ReportUnusedDisableDirectives)
	assert.NotNil(t, cfg.Rules)
	assert.NotNil(t, cfg.LanguageOptions.Globals)

	assert.Equal(t, m.SourceTypeCommonJS, r.Resolve("lib/a.cjs").LanguageOptions.SourceType)
}

func TestResolver_Fold(t *testing.T) {
	list := m.ConfigList{
		{
			Name: "base",
			LanguageOptions: m.LanguageOptions{
				EcmaVersion:   ptr(m.EcmaVersion(2020)),
				ParserOptions: map[string]any{"jsx": true, "project": "a"},
				Globals:       map[string]m.GlobalAccess{"window": m.GlobalReadonly},
			},
			Rules: map[string]m.RuleEntry{
				"semi":   {Severity: m.SeverityError, Options: []any{"always"}},
				"eqeqeq": {Severity: m.SeverityWarn},
			},
			Settings: map[string]any{"react": map[string]any{"version": "17"}},
			Plugins:  []string{"import"},
		},
		{
			Name:  "ts",
			Files: []string{"**/*.ts"},
			LanguageOptions: m.LanguageOptions{
				SourceType:    ptr(m.SourceTypeScript),
				Parser:        ptr("typescript-eslint/parser"),
				ParserOptions: map[string]any{"project": "b"},
				Globals:       map[string]m.GlobalAccess{"SELECT": m.GlobalWritable},
			},
			LinterOptions: m.LinterOptions{
				NoInlineConfig:                ptr(true),
				ReportUnusedDisableDirectives: ptr(m.SeverityError),
			},
			Rules:   map[string]m.RuleEntry{"semi": {Severity: m.SeverityOff}},
			Plugins: []string{"@typescript-eslint", "import"},
		},
		{
			Name:     "late",
			Settings: map[string]any{"react": map[string]any{"version": "18"}},
			LanguageOptions: m.LanguageOptions{
				Globals: map[string]m.GlobalAccess{"window": m.GlobalOff},
			},
		},
	}

	r, err := domain.NewResolver(list)
	require.NoError(t, err)

	cfg := r.Resolve("src/app.ts")

	assert.Equal(t, []string{"base", "ts", "late"}, cfg.Applied)
	assert.True(t, cfg.Matched)

	t.Run("later rules overwrite wholesale", func(t *testing.T) {
		assert.Equal(t, m.RuleEntry{Severity: m.SeverityOff}, cfg.Rules["semi"])
		assert.Equal(t, m.SeverityWarn, cfg.Rules["eqeqeq"].Severity)
	})

	t.Run("globals accumulate by key", func(t *testing.T) {
		assert.Equal(t, map[string]m.GlobalAccess{
			"window": m.GlobalOff,
			"SELECT": m.GlobalWritable,
		}, cfg.LanguageOptions.Globals)
		assert.Equal(t, 1, cfg.DefinedGlobals())
	})

	t.Run("scalars overwrite", func(t *testing.T) {
		assert.Equal(t, m.EcmaVersion(2020), cfg.LanguageOptions.EcmaVersion)
		assert.Equal(t, m.SourceTypeScript, cfg.LanguageOptions.SourceType)
		assert.Equal(t, "typescript-eslint/parser", cfg.LanguageOptions.Parser)
		assert.True(t, cfg.LinterOptions.NoInlineConfig)
		assert.Equal(t, m.SeverityError, cfg.LinterOptions.ReportUnusedDisableDirectives)
	})

	t.Run("maps merge by key", func(t *testing.T) {
		assert.Equal(t, map[string]any{"jsx": true, "project": "b"}, cfg.LanguageOptions.ParserOptions)
		assert.Equal(t, map[string]any{"react": map[string]any{"version": "18"}}, cfg.Settings)
	})

	t.Run("plugins union in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"import", "@typescript-eslint"}, cfg.Plugins)
	})

	t.Run("unselected fragment is skipped", func(t *testing.T) {
		js := r.Resolve("src/app.js")
		assert.Equal(t, []string{"base", "late"}, js.Applied)
		assert.False(t, js.Matched)
		assert.Equal(t, m.SeverityError, js.Rules["semi"].Severity)
		assert.Equal(t, []any{"always"}, js.Rules["semi"].Options)
	})

	t.Run("results do not alias the list", func(t *testing.T) {
		js := r.Resolve("src/app.js")
		js.Rules["semi"].Options[0] = "never"
		js.Settings["react"].(map[string]any)["version"] = "0"
		js.LanguageOptions.Globals["window"] = m.GlobalWritable

		again := r.Resolve("src/app.js")
		assert.Equal(t, []any{"always"}, again.Rules["semi"].Options)
		assert.Equal(t, "18", again.Settings["react"].(map[string]any)["version"])
		assert.Equal(t, m.GlobalOff, again.LanguageOptions.Globals["window"])
		assert.Equal(t, []any{"always"}, list[0].Rules["semi"].Options)
	})
}

func TestResolver_Ignores(t *testing.T) {
	list := m.ConfigList{
		{Ignores: []string{"gen/**/*", "build/", "*.min.js", "!keep.min.js"}},
		{Files: []string{"**/*.js"}, Ignores: []string{"**/*.cjs"}, Rules: map[string]m.RuleEntry{"semi": {Severity: m.SeverityError}}},
	}

	r, err := domain.NewResolver(list)
	require.NoError(t, err)

	tests := []struct {
		path    m.Path
		ignored bool
		by      string
	}{
		{"gen/a/b.js", true, "gen/**/*"},
		{"build/out.js", true, "build/"},
		{"build/deep/out.js", true, "build/"},
		{"app.min.js", true, "*.min.js"},
		{"keep.min.js", false, ""},
		{"src/config.cjs", true, "**/*.cjs"},
		{"src/index.js", false, ""},
		{"./src/index.js", false, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			ignored, by := r.IsExcluded(tt.path)
			assert.Equal(t, tt.ignored, ignored)
			assert.Equal(t, tt.by, by)

			cfg := r.Resolve(tt.path)
			assert.Equal(t, tt.ignored, cfg.Excluded)

			if tt.ignored {
				assert.Equal(t, tt.by, cfg.ExcludedBy)
				assert.Nil(t, cfg.Rules, "exclusion short-circuits")
			}
		})
	}

	dirIgnored, by := r.IsDirExcluded("build")
	assert.True(t, dirIgnored)
	assert.Equal(t, "build/", by)

	dirIgnored, _ = r.IsDirExcluded("src")
	assert.False(t, dirIgnored)
}

func TestResolver_BaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "project")

	r, err := domain.NewResolver(scenarioList(), domain.WithBaseDir(base), domain.WithDefaultIgnores())
	require.NoError(t, err)

	assert.Equal(t, base, r.BaseDir())

	cfg := r.Resolve(m.Path(filepath.Join(base, "src", "a.ts")))
	assert.False(t, cfg.Excluded)
	assert.Equal(t, m.Path("src/a.ts"), cfg.Path)
	assert.Contains(t, cfg.Rules, "no-console")

	cfg = r.Resolve(m.Path(filepath.Join(base, "dist", "x.ts")))
	assert.True(t, cfg.Excluded)

	outside := m.Path(filepath.Join(filepath.Dir(base), "other", "a.ts"))
	cfg = r.Resolve(outside)
	assert.True(t, cfg.Excluded)
	assert.Equal(t, domain.OutsideBasePath, cfg.ExcludedBy)
	assert.Equal(t, outside, cfg.Path)

	ignored, by := r.IsExcluded("../a.ts")
	assert.True(t, ignored)
	assert.Equal(t, domain.OutsideBasePath, by)

	ignored, by = r.IsExcluded("web/node_modules/pkg/index.ts")
	assert.True(t, ignored)
	assert.Equal(t, "**/node_modules/", by)

	ignored, _ = r.IsDirExcluded(".git")
	assert.True(t, ignored)
}

func TestNewResolver_Errors(t *testing.T) {
	tests := []struct {
		name string
		list m.ConfigList
		want string
	}{
		{"bad files glob", m.ConfigList{{Files: []string{"src/[a"}}}, "fragment #0 files"},
		{"empty ignore", m.ConfigList{{}, {Ignores: []string{"  "}}}, "fragment #1 ignores"},
		{"unexpanded preset", m.ConfigList{{Preset: "eslint/recommended"}}, "not expanded"},
		{"unexpanded global set", m.ConfigList{{LanguageOptions: m.LanguageOptions{GlobalSets: []string{"node"}}}}, "not expanded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewResolver(tt.list)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResolver_Idempotent(t *testing.T) {
	r, err := domain.NewResolver(scenarioList())
	require.NoError(t, err)

	for _, p := range []m.Path{"dist/x.ts", "src/a.ts", "src/a.js"} {
		assert.Equal(t, r.Resolve(p), r.Resolve(p), p)
	}
}

func TestResolver_Concurrent(t *testing.T) {
	catalog, err := preset.Default()
	require.NoError(t, err)

	list, err := catalog.Expand(m.ConfigList{
		{Preset: "eslint/recommended"},
		{Preset: "typescript-eslint/eslint-recommended"},
		{Files: []string{"**/*.js"}, LanguageOptions: m.LanguageOptions{GlobalSets: []string{"node"}}},
	})
	require.NoError(t, err)

	r, err := domain.NewResolver(list)
	require.NoError(t, err)

	want := r.Resolve("src/a.ts")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			cfg := r.Resolve("src/a.ts")
			cfg.Rules[fmt.Sprintf("mutated-%d", i)] = m.RuleEntry{}

			assert.Equal(t, m.SeverityOff, cfg.Rules["no-undef"].Severity)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, want, r.Resolve("src/a.ts"))
	assert.Equal(t, m.SeverityError, r.Resolve("src/a.js").Rules["no-undef"].Severity)
	assert.Contains(t, r.Resolve("src/a.js").LanguageOptions.Globals, "require")
}
