package model

// EffectiveConfig is the configuration a linting engine should apply to one
// path. When Excluded is set every other field except Path and ExcludedBy is
// zero.
type EffectiveConfig struct {
	Path       Path   `yaml:"path" json:"path"`
	Excluded   bool   `yaml:"excluded,omitempty" json:"excluded,omitempty"`
	ExcludedBy string `yaml:"excludedBy,omitempty" json:"excludedBy,omitempty"`
	// Matched is set when at least one fragment with an explicit files
	// selector applied to the path.
	Matched         bool                    `yaml:"matched,omitempty" json:"matched,omitempty"`
	LanguageOptions ResolvedLanguageOptions `yaml:"languageOptions,omitempty" json:"languageOptions"`
	LinterOptions   ResolvedLinterOptions   `yaml:"linterOptions,omitempty" json:"linterOptions"`
	Rules           map[string]RuleEntry    `yaml:"rules,omitempty" json:"rules,omitempty"`
	Settings        map[string]any          `yaml:"settings,omitempty" json:"settings,omitempty"`
	Plugins         []string                `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	// Applied lists the labels of the fragments folded into this result.
	Applied []string `yaml:"applied,omitempty" json:"applied,omitempty"`
}

// ResolvedLanguageOptions is the folded languageOptions of a path.
type ResolvedLanguageOptions struct {
	EcmaVersion   EcmaVersion             `yaml:"ecmaVersion" json:"ecmaVersion"`
	SourceType    SourceType              `yaml:"sourceType,omitempty" json:"sourceType,omitempty"`
	Parser        string                  `yaml:"parser,omitempty" json:"parser,omitempty"`
	ParserOptions map[string]any          `yaml:"parserOptions,omitempty" json:"parserOptions,omitempty"`
	Globals       map[string]GlobalAccess `yaml:"globals,omitempty" json:"globals,omitempty"`
}

// ResolvedLinterOptions is the folded linterOptions of a path.
type ResolvedLinterOptions struct {
	NoInlineConfig                bool     `yaml:"noInlineConfig,omitempty" json:"noInlineConfig,omitempty"`
	ReportUnusedDisableDirectives Severity `yaml:"reportUnusedDisableDirectives" json:"reportUnusedDisableDirectives"`
}

// ExcludedConfig is the sentinel result for a path removed by an ignore
// pattern.
func ExcludedConfig(path Path, by string) EffectiveConfig {
	return EffectiveConfig{Path: path, Excluded: true, ExcludedBy: by}
}

// DefinedGlobals returns how many globals count as declared.
func (c EffectiveConfig) DefinedGlobals() int {
	n := 0
	for _, access := range c.LanguageOptions.Globals {
		if access.Defined() {
			n++
		}
	}

	return n
}

// RuleCounts returns how many rules are at error, warn and off.
func (c EffectiveConfig) RuleCounts() (errors, warnings, off int) {
	for _, r := range c.Rules {
		switch r.Severity {
		case SeverityError:
			errors++
		case SeverityWarn:
			warnings++
		default:
			off++
		}
	}

	return errors, warnings, off
}
