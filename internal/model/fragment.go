package model

import (
	"fmt"
	"strconv"
)

// Fragment is one entry of a flat configuration list.
type Fragment struct {
	Name string
	// Preset names a catalog fragment this entry stands for. It is expanded
	// before resolution and never reaches the resolver.
	Preset          string
	Files           []string
	Ignores         []string
	LanguageOptions LanguageOptions
	LinterOptions   LinterOptions
	Rules           map[string]RuleEntry
	Settings        map[string]any
	Plugins         []string
}

// LanguageOptions holds the parsing-related part of a fragment. Nil pointers
// mean "not set by this fragment".
type LanguageOptions struct {
	EcmaVersion   *EcmaVersion
	SourceType    *SourceType
	Parser        *string
	ParserOptions map[string]any
	Globals       map[string]GlobalAccess
	// GlobalSets names catalog global tables folded into Globals on expansion.
	GlobalSets []string
}

// LinterOptions holds directive handling switches.
type LinterOptions struct {
	NoInlineConfig                *bool
	ReportUnusedDisableDirectives *Severity
}

// Label identifies the fragment in explanations: its name or "#index".
func (f Fragment) Label(index int) string {
	if f.Name != "" {
		return f.Name
	}

	if f.Preset != "" {
		return f.Preset
	}

	return "#" + strconv.Itoa(index)
}

// IgnoresOnly reports whether the fragment carries nothing but ignores.
func (f Fragment) IgnoresOnly() bool {
	return len(f.Ignores) > 0 &&
		f.Preset == "" &&
		len(f.Files) == 0 &&
		f.LanguageOptions.isZero() &&
		f.LinterOptions.isZero() &&
		len(f.Rules) == 0 &&
		len(f.Settings) == 0 &&
		len(f.Plugins) == 0
}

func (o LanguageOptions) isZero() bool {
	return o.EcmaVersion == nil &&
		o.SourceType == nil &&
		o.Parser == nil &&
		len(o.ParserOptions) == 0 &&
		len(o.Globals) == 0 &&
		len(o.GlobalSets) == 0
}

func (o LinterOptions) isZero() bool {
	return o.NoInlineConfig == nil && o.ReportUnusedDisableDirectives == nil
}

// ConfigList is the ordered sequence of fragments. Order is significant:
// later fragments win key conflicts.
type ConfigList []Fragment

// IgnorePatterns returns the union of every fragment's ignores, in list order.
func (l ConfigList) IgnorePatterns() []string {
	var out []string
	for _, f := range l {
		out = append(out, f.Ignores...)
	}

	return out
}

// FragmentDocument is the on-disk shape of a fragment shared by the YAML,
// TOML and HCL decoders. Values typed as any are validated by Fragment.
type FragmentDocument struct {
	Name            string                   `yaml:"name,omitempty" toml:"name,omitempty"`
	Preset          string                   `yaml:"preset,omitempty" toml:"preset,omitempty"`
	Files           []string                 `yaml:"files,omitempty" toml:"files,omitempty"`
	Ignores         []string                 `yaml:"ignores,omitempty" toml:"ignores,omitempty"`
	LanguageOptions *LanguageOptionsDocument `yaml:"languageOptions,omitempty" toml:"languageOptions,omitempty"`
	LinterOptions   *LinterOptionsDocument   `yaml:"linterOptions,omitempty" toml:"linterOptions,omitempty"`
	Rules           map[string]any           `yaml:"rules,omitempty" toml:"rules,omitempty"`
	Settings        map[string]any           `yaml:"settings,omitempty" toml:"settings,omitempty"`
	Plugins         []string                 `yaml:"plugins,omitempty" toml:"plugins,omitempty"`
}

// LanguageOptionsDocument is the on-disk shape of languageOptions.
type LanguageOptionsDocument struct {
	EcmaVersion   any            `yaml:"ecmaVersion,omitempty" toml:"ecmaVersion,omitempty"`
	SourceType    string         `yaml:"sourceType,omitempty" toml:"sourceType,omitempty"`
	Parser        string         `yaml:"parser,omitempty" toml:"parser,omitempty"`
	ParserOptions map[string]any `yaml:"parserOptions,omitempty" toml:"parserOptions,omitempty"`
	Globals       map[string]any `yaml:"globals,omitempty" toml:"globals,omitempty"`
	GlobalSets    []string       `yaml:"globalSets,omitempty" toml:"globalSets,omitempty"`
}

// LinterOptionsDocument is the on-disk shape of linterOptions.
type LinterOptionsDocument struct {
	NoInlineConfig                *bool `yaml:"noInlineConfig,omitempty" toml:"noInlineConfig,omitempty"`
	ReportUnusedDisableDirectives any   `yaml:"reportUnusedDisableDirectives,omitempty" toml:"reportUnusedDisableDirectives,omitempty"`
}

// Fragment validates the document and converts it into a Fragment.
func (d FragmentDocument) Fragment() (Fragment, error) {
	f := Fragment{
		Name:    d.Name,
		Preset:  d.Preset,
		Files:   append([]string(nil), d.Files...),
		Ignores: append([]string(nil), d.Ignores...),
		Plugins: append([]string(nil), d.Plugins...),
	}

	if d.Preset != "" && d.hasBody() {
		return Fragment{}, fmt.Errorf("preset %q cannot be combined with other keys", d.Preset)
	}

	if d.LanguageOptions != nil {
		lo, err := d.LanguageOptions.languageOptions()
		if err != nil {
			return Fragment{}, fmt.Errorf("languageOptions: %w", err)
		}

		f.LanguageOptions = lo
	}

	if d.LinterOptions != nil {
		f.LinterOptions.NoInlineConfig = d.LinterOptions.NoInlineConfig

		if d.LinterOptions.ReportUnusedDisableDirectives != nil {
			sev, err := parseDirectiveSeverity(d.LinterOptions.ReportUnusedDisableDirectives)
			if err != nil {
				return Fragment{}, fmt.Errorf("linterOptions.reportUnusedDisableDirectives: %w", err)
			}

			f.LinterOptions.ReportUnusedDisableDirectives = &sev
		}
	}

	if len(d.Rules) > 0 {
		f.Rules = make(map[string]RuleEntry, len(d.Rules))
		for name, raw := range d.Rules {
			entry, err := ParseRuleEntry(raw)
			if err != nil {
				return Fragment{}, fmt.Errorf("rules[%q]: %w", name, err)
			}

			f.Rules[name] = entry
		}
	}

	f.Settings = CloneMap(d.Settings)

	return f, nil
}

func (d FragmentDocument) hasBody() bool {
	return len(d.Files) > 0 ||
		len(d.Ignores) > 0 ||
		d.LanguageOptions != nil ||
		d.LinterOptions != nil ||
		len(d.Rules) > 0 ||
		len(d.Settings) > 0 ||
		len(d.Plugins) > 0
}

func (d LanguageOptionsDocument) languageOptions() (LanguageOptions, error) {
	var lo LanguageOptions

	if d.EcmaVersion != nil {
		v, err := ParseEcmaVersion(d.EcmaVersion)
		if err != nil {
			return lo, err
		}

		lo.EcmaVersion = &v
	}

	if d.SourceType != "" {
		st, err := ParseSourceType(d.SourceType)
		if err != nil {
			return lo, err
		}

		lo.SourceType = &st
	}

	if d.Parser != "" {
		parser := d.Parser
		lo.Parser = &parser
	}

	lo.ParserOptions = CloneMap(d.ParserOptions)

	if len(d.Globals) > 0 {
		lo.Globals = make(map[string]GlobalAccess, len(d.Globals))
		for name, raw := range d.Globals {
			access, err := ParseGlobalAccess(raw)
			if err != nil {
				return lo, fmt.Errorf("globals[%q]: %w", name, err)
			}

			lo.Globals[name] = access
		}
	}

	lo.GlobalSets = append([]string(nil), d.GlobalSets...)

	return lo, nil
}

// parseDirectiveSeverity also accepts booleans, which ESLint maps to
// warn (true) and off (false).
func parseDirectiveSeverity(v any) (Severity, error) {
	if b, ok := v.(bool); ok {
		if b {
			return SeverityWarn, nil
		}

		return SeverityOff, nil
	}

	return ParseSeverity(v)
}
