package model

import "time"

// FileState is the outcome of resolving a file found by a directory walk.
type FileState string

const (
	// FileLinted means a fragment with a files selector matched the file.
	FileLinted FileState = "linted"
	// FileIgnored means an ignore pattern excluded the file.
	FileIgnored FileState = "ignored"
	// FileUnmatched means no fragment selected the file explicitly.
	FileUnmatched FileState = "unmatched"
)

// FileStatus summarises one file's resolution for listings.
type FileStatus struct {
	Path      Path      `yaml:"path" json:"path"`
	State     FileState `yaml:"state" json:"state"`
	IgnoredBy string    `yaml:"ignoredBy,omitempty" json:"ignoredBy,omitempty"`
	Errors    int       `yaml:"errors" json:"errors"`
	Warnings  int       `yaml:"warnings" json:"warnings"`
	Off       int       `yaml:"off" json:"off"`
	Globals   int       `yaml:"globals" json:"globals"`
}

// NewFileStatus summarises cfg.
func NewFileStatus(cfg EffectiveConfig) FileStatus {
	status := FileStatus{Path: cfg.Path}

	switch {
	case cfg.Excluded:
		status.State = FileIgnored
		status.IgnoredBy = cfg.ExcludedBy

		return status
	case cfg.Matched:
		status.State = FileLinted
	default:
		status.State = FileUnmatched
	}

	status.Errors, status.Warnings, status.Off = cfg.RuleCounts()
	status.Globals = cfg.DefinedGlobals()

	return status
}

// FragmentSummary describes one fragment for validation output.
type FragmentSummary struct {
	Index   int      `yaml:"index" json:"index"`
	Label   string   `yaml:"label" json:"label"`
	Files   []string `yaml:"files,omitempty" json:"files,omitempty"`
	Ignores []string `yaml:"ignores,omitempty" json:"ignores,omitempty"`
	Rules   int      `yaml:"rules" json:"rules"`
	Globals int      `yaml:"globals" json:"globals"`
}

// ValidationReport is the result of loading and compiling a config file.
type ValidationReport struct {
	Config         Path              `yaml:"config" json:"config"`
	Fragments      []FragmentSummary `yaml:"fragments" json:"fragments"`
	IgnorePatterns []string          `yaml:"ignorePatterns,omitempty" json:"ignorePatterns,omitempty"`
}

// NewValidationReport summarises an expanded list.
func NewValidationReport(config Path, list ConfigList) ValidationReport {
	report := ValidationReport{
		Config:         config,
		Fragments:      make([]FragmentSummary, 0, len(list)),
		IgnorePatterns: list.IgnorePatterns(),
	}

	for i, f := range list {
		report.Fragments = append(report.Fragments, FragmentSummary{
			Index:   i,
			Label:   f.Label(i),
			Files:   f.Files,
			Ignores: f.Ignores,
			Rules:   len(f.Rules),
			Globals: len(f.LanguageOptions.Globals),
		})
	}

	return report
}

// WatchEvent reports one (re)load of the config in watch mode. Err is set
// when the load failed and the previous resolution is still in effect.
type WatchEvent struct {
	Config    Path
	Reload    int
	Fragments int
	At        time.Time
	Err       error
}
