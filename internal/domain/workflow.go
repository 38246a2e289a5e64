package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"flatconf.dev/pkg/flatconf/internal/adapter"
	"flatconf.dev/pkg/flatconf/internal/controller"
	m "flatconf.dev/pkg/flatconf/internal/model"
	"flatconf.dev/pkg/flatconf/internal/preset"
)

// ErrConfigNotFound is returned when no config file exists at the given path
// or in any parent of the working directory.
var ErrConfigNotFound = errors.New("config file not found")

// ErrConfigExists is returned by Init when the target file is already there.
var ErrConfigExists = errors.New("config file already exists")

// ErrNoPaths is returned when a command that resolves files gets none.
var ErrNoPaths = errors.New("no paths given")

// SourceArgs selects the config file shared by every workflow operation.
type SourceArgs struct {
	// Config is a path to a config file. A bare file name that does not exist
	// in the working directory is searched for in parent directories.
	Config m.Path
	// ExtraIgnores are appended to the list as a final ignores-only fragment.
	ExtraIgnores []string
}

// ResolveArgs contains the arguments for printing resolved configs.
type ResolveArgs struct {
	SourceArgs
	Paths  []m.Path
	Format m.Format
}

// ListArgs contains the arguments for listing files under directories.
type ListArgs struct {
	SourceArgs
	Roots   []m.Path
	Threads uint
	Format  m.Format
}

// DiffArgs contains the arguments for comparing two paths' configs.
type DiffArgs struct {
	SourceArgs
	Left  m.Path
	Right m.Path
}

// ValidateArgs contains the arguments for checking a config file.
type ValidateArgs struct {
	SourceArgs
	Format m.Format
}

// WatchArgs contains the arguments for re-resolving on config changes.
type WatchArgs struct {
	SourceArgs
	Paths  []m.Path
	Format m.Format
}

// InitArgs contains the arguments for writing a starter config.
type InitArgs struct {
	Target m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Resolve(ctx context.Context, args ResolveArgs) error
	List(ctx context.Context, args ListArgs) error
	Diff(ctx context.Context, args DiffArgs) error
	Validate(ctx context.Context, args ValidateArgs) error
	Watch(ctx context.Context, args WatchArgs) error
	Init(ctx context.Context, args InitArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ConfigLoader
	watcher adapter.ConfigWatcher
	preset.Catalog
	controller.UI

	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	loader adapter.ConfigLoader,
	watcher adapter.ConfigWatcher,
	catalog preset.Catalog,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ConfigLoader:    loader,
		watcher:         watcher,
		Catalog:         catalog,
		UI:              ui,
		now:             time.Now,
	}
}

// compiled is a loaded, expanded and compiled config file.
type compiled struct {
	path     m.Path
	list     m.ConfigList
	resolver Resolver
}

func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	if len(args.Paths) == 0 {
		return ErrNoPaths
	}

	c, err := w.compile(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	configs, err := w.resolvePaths(c.resolver, args.Paths)
	if err != nil {
		return err
	}

	return w.DisplayResolution(ctx, configs, args.Format)
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	c, err := w.compile(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	roots := args.Roots
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	files, err := w.collectFiles(ctx, c.resolver, roots)
	if err != nil {
		return err
	}

	cwd, err := w.Abs(".")
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	slog.Info("Resolving files", "count", len(files), "threads", args.Threads)

	statuses := make([]m.FileStatus, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(int(args.Threads))
	}

	for i, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			statuses[i] = m.NewFileStatus(w.displayPath(cwd, file, c.resolver.Resolve(file)))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Path < statuses[j].Path
	})

	return w.DisplayListing(ctx, statuses, args.Format)
}

// collectFiles walks roots and returns every file not under an excluded
// directory, each absolute and listed once.
func (w *workflow) collectFiles(ctx context.Context, r Resolver, roots []m.Path) ([]m.Path, error) {
	seen := make(map[m.Path]struct{})

	var files []m.Path

	for _, root := range roots {
		absRoot, err := w.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", root, err)
		}

		err = w.Walk(absRoot, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if info.IsDir() {
				if m.Path(path) == absRoot {
					return nil
				}

				if excluded, by := r.IsDirExcluded(m.Path(path)); excluded {
					slog.Debug("Skipping directory", "path", path, "pattern", by)
					return filepath.SkipDir
				}

				return nil
			}

			if _, ok := seen[m.Path(path)]; ok {
				return nil
			}

			seen[m.Path(path)] = struct{}{}
			files = append(files, m.Path(path))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return files, nil
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	c, err := w.compile(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	configs, err := w.resolvePaths(c.resolver, []m.Path{args.Left, args.Right})
	if err != nil {
		return err
	}

	diff, err := unifiedDiff(args.Left, args.Right, configs[0], configs[1])
	if err != nil {
		return err
	}

	return w.DisplayDiff(ctx, args.Left, args.Right, diff)
}

// unifiedDiff compares the YAML forms of two configs, ignoring their paths.
// It returns an empty string when they are equal.
func unifiedDiff(left, right m.Path, a, b m.EffectiveConfig) (string, error) {
	a.Path, b.Path = "", ""

	aText, err := m.Encode(a, m.FormatYAML)
	if err != nil {
		return "", err
	}

	bText, err := m.Encode(b, m.FormatYAML)
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(aText)),
		B:        difflib.SplitLines(string(bText)),
		FromFile: string(left),
		ToFile:   string(right),
		Context:  3,
	})
}

func (w *workflow) Validate(ctx context.Context, args ValidateArgs) error {
	c, err := w.compile(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	return w.DisplayValidation(ctx, m.NewValidationReport(c.path, c.list), args.Format)
}

// Watch resolves args.Paths, then again after every change to the config
// file until ctx is cancelled. A config that fails to load is reported and
// the command keeps waiting for the next change.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if len(args.Paths) == 0 {
		return ErrNoPaths
	}

	configPath, err := w.locateConfig(args.Config)
	if err != nil {
		return err
	}

	changes, errs, err := w.watcher.Watch(ctx, configPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", configPath, err)
	}

	src := args.SourceArgs
	src.Config = configPath

	var (
		lastHash string
		reloads  int
	)

	refresh := func() error {
		hash, err := w.HashFile(configPath)
		if err == nil && hash == lastHash {
			slog.Debug("Config content unchanged", "path", configPath)
			return nil
		}

		lastHash = hash

		event := m.WatchEvent{Config: configPath, Reload: reloads, At: w.now()}

		configs, fragments, err := w.resolveSource(ctx, src, args.Paths)
		if err != nil {
			slog.Warn("Config reload failed", "path", configPath, "error", err)
			event.Err = err

			return w.DisplayWatchEvent(ctx, event)
		}

		reloads++
		event.Fragments = fragments

		if err := w.DisplayWatchEvent(ctx, event); err != nil {
			return err
		}

		return w.DisplayResolution(ctx, configs, args.Format)
	}

	if err := refresh(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case _, ok := <-changes:
			if !ok {
				return nil
			}

			if err := refresh(); err != nil {
				return err
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			slog.Warn("Watcher error", "path", configPath, "error", err)
		}
	}
}

func (w *workflow) resolveSource(ctx context.Context, src SourceArgs, paths []m.Path) ([]m.EffectiveConfig, int, error) {
	c, err := w.compile(ctx, src)
	if err != nil {
		return nil, 0, err
	}

	configs, err := w.resolvePaths(c.resolver, paths)
	if err != nil {
		return nil, 0, err
	}

	return configs, len(c.list), nil
}

func (w *workflow) Init(ctx context.Context, args InitArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := args.Target
	if target == "" {
		target = m.Path(adapter.ConfigFileNames[0])
	}

	if _, err := w.FileInfo(target); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, target)
	}

	if ext := filepath.Ext(string(target)); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("%w: starter config is YAML, got %s", adapter.ErrUnsupportedFormat, target)
	}

	if err := w.WriteFile(target, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	slog.Info("Wrote starter config", "path", target)

	return w.DisplayCreated(ctx, target)
}

// starterConfig is written by Init.
const starterConfig = `# Flat lint configuration. Fragments apply in order; later ones win.
- ignores:
    - dist/
    - coverage/

- preset: eslint/recommended

- name: project
  files: ["**/*.js", "**/*.mjs", "**/*.cjs"]
  languageOptions:
    ecmaVersion: latest
    sourceType: module
    globalSets: [browser]
  rules:
    no-unused-vars: warn

- files: ["**/*.cjs"]
  languageOptions:
    sourceType: commonjs
    globalSets: [node]
`

// compile loads the config named by src, expands presets and global sets and
// builds a resolver rooted at the config's directory.
func (w *workflow) compile(ctx context.Context, src SourceArgs) (compiled, error) {
	configPath, err := w.locateConfig(src.Config)
	if err != nil {
		return compiled{}, err
	}

	list, err := w.Load(ctx, configPath)
	if err != nil {
		return compiled{}, fmt.Errorf("load config: %w", err)
	}

	expanded, err := w.Expand(list)
	if err != nil {
		return compiled{}, fmt.Errorf("%s: %w", configPath, err)
	}

	if len(src.ExtraIgnores) > 0 {
		expanded = append(expanded, m.Fragment{
			Name:    "command line",
			Ignores: slices.Clone(src.ExtraIgnores),
		})
	}

	r, err := NewResolver(expanded,
		WithBaseDir(filepath.Dir(string(configPath))),
		WithDefaultIgnores(),
	)
	if err != nil {
		return compiled{}, fmt.Errorf("%s: %w", configPath, err)
	}

	slog.Debug("Compiled config", "path", configPath, "fragments", len(expanded), "base", r.BaseDir())

	return compiled{path: configPath, list: expanded, resolver: r}, nil
}

// locateConfig returns the absolute path of the config file to use.
func (w *workflow) locateConfig(config m.Path) (m.Path, error) {
	if config != "" {
		if info, err := w.FileInfo(config); err == nil && !info.IsDir() {
			return w.Abs(config)
		}

		if filepath.Base(string(config)) != string(config) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, config)
		}
	}

	names := adapter.ConfigFileNames
	if config != "" && !slices.Contains(names, string(config)) {
		names = append([]string{string(config)}, names...)
	}

	found, err := w.FindUp(".", names...)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}

		return "", err
	}

	slog.Debug("Discovered config", "path", found)

	return w.Abs(found)
}

// resolvePaths resolves each path against r after making it absolute, so
// relative arguments are taken from the working directory. Results carry
// paths relative to the working directory.
func (w *workflow) resolvePaths(r Resolver, paths []m.Path) ([]m.EffectiveConfig, error) {
	cwd, err := w.Abs(".")
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	configs := make([]m.EffectiveConfig, 0, len(paths))

	for _, p := range paths {
		abs, err := w.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}

		configs = append(configs, w.displayPath(cwd, abs, r.Resolve(abs)))
	}

	return configs, nil
}

// displayPath replaces cfg.Path with abs relative to cwd. The resolver's
// base-relative path is kept when no relative form exists.
func (w *workflow) displayPath(cwd, abs m.Path, cfg m.EffectiveConfig) m.EffectiveConfig {
	rel, err := w.RelPath(cwd, abs)
	if err != nil {
		slog.Debug("Keeping config-relative path", "path", abs, "error", err)
		return cfg
	}

	cfg.Path = m.Path(filepath.ToSlash(string(rel)))

	return cfg
}
