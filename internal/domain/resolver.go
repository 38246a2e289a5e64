package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	m "flatconf.dev/pkg/flatconf/internal/model"
	"flatconf.dev/pkg/flatconf/pkg/globset"
)

// OutsideBasePath is the ExcludedBy reason for paths that escape the base
// directory.
const OutsideBasePath = "outside base path"

// DefaultIgnorePatterns are prepended to the list's ignores by WithDefaultIgnores.
var DefaultIgnorePatterns = []string{"**/node_modules/", ".git/"}

// Resolver answers which configuration applies to a path. Implementations are
// immutable and safe for concurrent use.
type Resolver interface {
	// Resolve folds every fragment that applies to path. Paths matched by an
	// ignore pattern yield the excluded sentinel.
	Resolve(path m.Path) m.EffectiveConfig
	IsExcluded(path m.Path) (bool, string)
	// IsDirExcluded reports whether every file under dir is ignored, so
	// directory walks can skip it.
	IsDirExcluded(dir m.Path) (bool, string)
	BaseDir() string
}

// ResolverOption configures NewResolver.
type ResolverOption func(*resolverOptions)

type resolverOptions struct {
	baseDir        string
	defaultIgnores bool
}

// WithBaseDir makes absolute paths relative to dir before matching.
func WithBaseDir(dir string) ResolverOption {
	return func(o *resolverOptions) {
		o.baseDir = filepath.Clean(dir)
	}
}

// WithDefaultIgnores excludes node_modules and .git trees.
func WithDefaultIgnores() ResolverOption {
	return func(o *resolverOptions) {
		o.defaultIgnores = true
	}
}

type compiledFragment struct {
	label    string
	fragment m.Fragment
	// files is nil when the fragment applies to every path.
	files *globset.Set
}

type resolver struct {
	baseDir   string
	ignores   *globset.Set
	fragments []compiledFragment
}

// NewResolver compiles every pattern in list. Presets and global sets must
// already be expanded.
func NewResolver(list m.ConfigList, opts ...ResolverOption) (Resolver, error) {
	var o resolverOptions
	for _, opt := range opts {
		opt(&o)
	}

	var ignorePatterns []string
	if o.defaultIgnores {
		ignorePatterns = append(ignorePatterns, DefaultIgnorePatterns...)
	}

	r := &resolver{
		baseDir:   o.baseDir,
		fragments: make([]compiledFragment, 0, len(list)),
	}

	for i, f := range list {
		if f.Preset != "" {
			return nil, fmt.Errorf("fragment #%d: preset %q was not expanded", i, f.Preset)
		}

		if len(f.LanguageOptions.GlobalSets) > 0 {
			return nil, fmt.Errorf("fragment #%d: global sets %v were not expanded", i, f.LanguageOptions.GlobalSets)
		}

		// Ignores are validated one fragment at a time so errors can name it.
		if _, err := globset.New(f.Ignores...); err != nil {
			return nil, fmt.Errorf("fragment #%d ignores: %w", i, err)
		}

		ignorePatterns = append(ignorePatterns, f.Ignores...)

		cf := compiledFragment{label: f.Label(i), fragment: f}

		if len(f.Files) > 0 {
			files, err := globset.New(f.Files...)
			if err != nil {
				return nil, fmt.Errorf("fragment #%d files: %w", i, err)
			}

			cf.files = files
		}

		r.fragments = append(r.fragments, cf)
	}

	ignores, err := globset.New(ignorePatterns...)
	if err != nil {
		return nil, fmt.Errorf("ignores: %w", err)
	}

	r.ignores = ignores

	return r, nil
}

// Resolve compiles list and resolves a single path.
func Resolve(p m.Path, list m.ConfigList) (m.EffectiveConfig, error) {
	r, err := NewResolver(list)
	if err != nil {
		return m.EffectiveConfig{}, err
	}

	return r.Resolve(p), nil
}

func (r *resolver) BaseDir() string {
	return r.baseDir
}

func (r *resolver) Resolve(p m.Path) m.EffectiveConfig {
	rel, inside := r.relative(string(p))
	if !inside {
		return m.ExcludedConfig(p, OutsideBasePath)
	}

	if ignored, by := r.ignores.Ignores(rel); ignored {
		return m.ExcludedConfig(m.Path(rel), by)
	}

	cfg := defaultConfig(rel)

	for _, cf := range r.fragments {
		if cf.fragment.IgnoresOnly() {
			continue
		}

		if cf.files != nil {
			if !cf.files.Selects(rel) {
				continue
			}

			cfg.Matched = true
		}

		merge(&cfg, cf.fragment)
		cfg.Applied = append(cfg.Applied, cf.label)
	}

	return cfg
}

func (r *resolver) IsExcluded(p m.Path) (bool, string) {
	rel, inside := r.relative(string(p))
	if !inside {
		return true, OutsideBasePath
	}

	return r.ignores.Ignores(rel)
}

func (r *resolver) IsDirExcluded(dir m.Path) (bool, string) {
	rel, inside := r.relative(string(dir))
	if !inside {
		return true, OutsideBasePath
	}

	return r.ignores.IgnoresDir(rel)
}

// relative turns p into the slash-separated form patterns match against and
// reports whether it stays inside the base directory. Without a base
// directory every path is inside.
func (r *resolver) relative(p string) (string, bool) {
	if filepath.IsAbs(p) {
		if r.baseDir == "" {
			p = strings.TrimLeft(filepath.ToSlash(p), "/")
		} else {
			rel, err := filepath.Rel(r.baseDir, p)
			if err != nil {
				return "", false
			}

			p = rel
		}
	}

	rel := globset.Normalize(p)
	if r.baseDir != "" && (rel == ".." || strings.HasPrefix(rel, "../")) {
		return rel, false
	}

	return rel, true
}

func defaultConfig(rel string) m.EffectiveConfig {
	sourceType := m.SourceTypeModule
	if path.Ext(rel) == ".cjs" {
		sourceType = m.SourceTypeCommonJS
	}

	return m.EffectiveConfig{
		Path: m.Path(rel),
		LanguageOptions: m.ResolvedLanguageOptions{
			EcmaVersion: m.EcmaVersionLatest,
			SourceType:  sourceType,
			Globals:     map[string]m.GlobalAccess{},
		},
		LinterOptions: m.ResolvedLinterOptions{
			ReportUnusedDisableDirectives: m.SeverityWarn,
		},
		Rules: map[string]m.RuleEntry{},
	}
}

// merge folds f into cfg. Maps are merged key by key, scalars are replaced,
// and every value is copied so results never alias the fragment list.
func merge(cfg *m.EffectiveConfig, f m.Fragment) {
	lo := f.LanguageOptions
	if lo.EcmaVersion != nil {
		cfg.LanguageOptions.EcmaVersion = *lo.EcmaVersion
	}

	if lo.SourceType != nil {
		cfg.LanguageOptions.SourceType = *lo.SourceType
	}

	if lo.Parser != nil {
		cfg.LanguageOptions.Parser = *lo.Parser
	}

	if len(lo.ParserOptions) > 0 {
		if cfg.LanguageOptions.ParserOptions == nil {
			cfg.LanguageOptions.ParserOptions = make(map[string]any, len(lo.ParserOptions))
		}

		for k, v := range lo.ParserOptions {
			cfg.LanguageOptions.ParserOptions[k] = m.CloneValue(v)
		}
	}

	for name, access := range lo.Globals {
		cfg.LanguageOptions.Globals[name] = access
	}

	if f.LinterOptions.NoInlineConfig != nil {
		cfg.LinterOptions.NoInlineConfig = *f.LinterOptions.NoInlineConfig
	}

	if f.LinterOptions.ReportUnusedDisableDirectives != nil {
		cfg.LinterOptions.ReportUnusedDisableDirectives = *f.LinterOptions.ReportUnusedDisableDirectives
	}

	for name, entry := range f.Rules {
		cfg.Rules[name] = entry.Clone()
	}

	if len(f.Settings) > 0 {
		if cfg.Settings == nil {
			cfg.Settings = make(map[string]any, len(f.Settings))
		}

		for k, v := range f.Settings {
			cfg.Settings[k] = m.CloneValue(v)
		}
	}

	for _, plugin := range f.Plugins {
		if !slices.Contains(cfg.Plugins, plugin) {
			cfg.Plugins = append(cfg.Plugins, plugin)
		}
	}
}
