// Package preset holds the built-in configuration fragments and global-symbol
// tables that configuration files reference by name.
package preset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	m "flatconf.dev/pkg/flatconf/internal/model"
)

var (
	// ErrUnknownPreset is returned when a fragment names a preset the catalog lacks.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrUnknownGlobalSet is returned when globalSets names a table the catalog lacks.
	ErrUnknownGlobalSet = errors.New("unknown global set")
	// ErrGlobalSetCycle is returned when global sets extend each other in a loop.
	ErrGlobalSetCycle = errors.New("global set cycle")
)

//go:embed data/presets.yaml
var presetData []byte

//go:embed data/globals.yaml
var globalData []byte

// Catalog resolves preset and global set names.
type Catalog interface {
	Presets() []string
	GlobalSets() []string
	Fragment(name string) (m.Fragment, error)
	Globals(names ...string) (map[string]m.GlobalAccess, error)
	// Expand replaces preset entries with their fragments and folds
	// globalSets into globals. Explicit globals win over set members.
	Expand(list m.ConfigList) (m.ConfigList, error)
}

type globalSetDocument struct {
	Extends []string       `yaml:"extends,omitempty"`
	Globals map[string]any `yaml:"globals,omitempty"`
}

type catalog struct {
	presets map[string]m.FragmentDocument
	globals map[string]map[string]m.GlobalAccess
}

var (
	defaultCatalog    Catalog
	defaultCatalogErr error
	defaultOnce       sync.Once
)

// Default returns the catalog built from the embedded data.
func Default() (Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = NewCatalog(presetData, globalData)
	})

	return defaultCatalog, defaultCatalogErr
}

// NewCatalog parses preset and global set documents.
func NewCatalog(presets, globals []byte) (Catalog, error) {
	c := &catalog{
		presets: map[string]m.FragmentDocument{},
		globals: map[string]map[string]m.GlobalAccess{},
	}

	if err := decodeStrict(presets, &c.presets); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	for name, doc := range c.presets {
		if doc.Preset != "" {
			return nil, fmt.Errorf("preset %q: presets cannot reference other presets", name)
		}

		if _, err := doc.Fragment(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}

	sets := map[string]globalSetDocument{}
	if err := decodeStrict(globals, &sets); err != nil {
		return nil, fmt.Errorf("decode global sets: %w", err)
	}

	for name := range sets {
		if _, err := c.flatten(name, sets, nil); err != nil {
			return nil, err
		}
	}

	for _, doc := range c.presets {
		if doc.LanguageOptions == nil {
			continue
		}

		for _, set := range doc.LanguageOptions.GlobalSets {
			if _, ok := c.globals[set]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownGlobalSet, set)
			}
		}
	}

	return c, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(out)
}

// flatten resolves a set and its extends chain, memoising the result.
func (c *catalog) flatten(name string, sets map[string]globalSetDocument, stack []string) (map[string]m.GlobalAccess, error) {
	if done, ok := c.globals[name]; ok {
		return done, nil
	}

	for _, seen := range stack {
		if seen == name {
			return nil, fmt.Errorf("%w: %s", ErrGlobalSetCycle, strings.Join(append(stack, name), " -> "))
		}
	}

	doc, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGlobalSet, name)
	}

	table := map[string]m.GlobalAccess{}

	for _, parent := range doc.Extends {
		inherited, err := c.flatten(parent, sets, append(stack, name))
		if err != nil {
			return nil, err
		}

		for k, v := range inherited {
			table[k] = v
		}
	}

	for k, raw := range doc.Globals {
		access, err := m.ParseGlobalAccess(raw)
		if err != nil {
			return nil, fmt.Errorf("global set %q: globals[%q]: %w", name, k, err)
		}

		table[k] = access
	}

	c.globals[name] = table

	return table, nil
}

func (c *catalog) Presets() []string {
	return sortedKeys(c.presets)
}

func (c *catalog) GlobalSets() []string {
	return sortedKeys(c.globals)
}

// Fragment returns a fresh copy of the named preset. The fragment is labelled
// with the preset name unless the data names it.
func (c *catalog) Fragment(name string) (m.Fragment, error) {
	doc, ok := c.presets[name]
	if !ok {
		return m.Fragment{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	f, err := doc.Fragment()
	if err != nil {
		return m.Fragment{}, fmt.Errorf("preset %q: %w", name, err)
	}

	if f.Name == "" {
		f.Name = name
	}

	return f, nil
}

// Globals merges the named sets in order; later sets win.
func (c *catalog) Globals(names ...string) (map[string]m.GlobalAccess, error) {
	out := map[string]m.GlobalAccess{}

	for _, name := range names {
		table, ok := c.globals[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGlobalSet, name)
		}

		for k, v := range table {
			out[k] = v
		}
	}

	return out, nil
}

func (c *catalog) Expand(list m.ConfigList) (m.ConfigList, error) {
	out := make(m.ConfigList, 0, len(list))

	for i, f := range list {
		if f.Preset != "" {
			expanded, err := c.Fragment(f.Preset)
			if err != nil {
				return nil, fmt.Errorf("fragment #%d: %w", i, err)
			}

			if f.Name != "" {
				expanded.Name = f.Name
			}

			f = expanded
		}

		if len(f.LanguageOptions.GlobalSets) > 0 {
			globals, err := c.Globals(f.LanguageOptions.GlobalSets...)
			if err != nil {
				return nil, fmt.Errorf("fragment #%d: %w", i, err)
			}

			for k, v := range f.LanguageOptions.Globals {
				globals[k] = v
			}

			f.LanguageOptions.Globals = globals
			f.LanguageOptions.GlobalSets = nil
		}

		out = append(out, f)
	}

	return out, nil
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
