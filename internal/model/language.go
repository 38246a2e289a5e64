package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidEcmaVersion is returned for unsupported ecmaVersion values.
	ErrInvalidEcmaVersion = errors.New("invalid ecmaVersion")
	// ErrInvalidSourceType is returned for unknown sourceType values.
	ErrInvalidSourceType = errors.New("invalid sourceType")
	// ErrInvalidGlobalAccess is returned for unknown global flags.
	ErrInvalidGlobalAccess = errors.New("invalid global flag")
)

// EcmaVersion is a language version in year form (2015, 2022, ...), 3, 5, or
// EcmaVersionLatest.
type EcmaVersion int

const (
	// EcmaVersionLatest selects the newest version the engine supports.
	EcmaVersionLatest EcmaVersion = 0
	// MaxEcmaVersion is the newest year accepted.
	MaxEcmaVersion EcmaVersion = 2026

	firstYearVersion = 2015
	yearOffset       = 2009
)

func (v EcmaVersion) String() string {
	if v == EcmaVersionLatest {
		return "latest"
	}

	return strconv.Itoa(int(v))
}

// MarshalYAML renders "latest" or the year.
func (v EcmaVersion) MarshalYAML() (interface{}, error) {
	if v == EcmaVersionLatest {
		return "latest", nil
	}

	return int(v), nil
}

// MarshalJSON renders "latest" or the year.
func (v EcmaVersion) MarshalJSON() ([]byte, error) {
	if v == EcmaVersionLatest {
		return json.Marshal("latest")
	}

	return json.Marshal(int(v))
}

// ParseEcmaVersion accepts "latest", 3, 5, edition numbers 6 and up (mapped
// to years, 6 -> 2015) and years from 2015.
func ParseEcmaVersion(v any) (EcmaVersion, error) {
	if s, ok := v.(string); ok {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "latest" {
			return EcmaVersionLatest, nil
		}

		n, err := strconv.Atoi(s)
		if err != nil {
			return EcmaVersionLatest, fmt.Errorf("%w: %q", ErrInvalidEcmaVersion, s)
		}

		v = n
	}

	n, ok := asInt(v)
	if !ok {
		return EcmaVersionLatest, fmt.Errorf("%w: %v", ErrInvalidEcmaVersion, v)
	}

	switch {
	case n == 3 || n == 5:
		return EcmaVersion(n), nil
	case n >= 6 && n+yearOffset <= int(MaxEcmaVersion):
		return EcmaVersion(n + yearOffset), nil
	case n >= firstYearVersion && n <= int(MaxEcmaVersion):
		return EcmaVersion(n), nil
	}

	return EcmaVersionLatest, fmt.Errorf("%w: %d", ErrInvalidEcmaVersion, n)
}

// SourceType is the module mode files are parsed in.
type SourceType string

const (
	// SourceTypeScript parses files as classic scripts.
	SourceTypeScript SourceType = "script"
	// SourceTypeModule parses files as ES modules.
	SourceTypeModule SourceType = "module"
	// SourceTypeCommonJS parses files as CommonJS modules.
	SourceTypeCommonJS SourceType = "commonjs"
)

// ParseSourceType validates s.
func ParseSourceType(s string) (SourceType, error) {
	switch st := SourceType(strings.ToLower(strings.TrimSpace(s))); st {
	case SourceTypeScript, SourceTypeModule, SourceTypeCommonJS:
		return st, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidSourceType, s)
}

// GlobalAccess says whether a predeclared identifier may be reassigned.
type GlobalAccess string

const (
	// GlobalReadonly declares the identifier, reassignment is reported.
	GlobalReadonly GlobalAccess = "readonly"
	// GlobalWritable declares the identifier and allows reassignment.
	GlobalWritable GlobalAccess = "writable"
	// GlobalOff removes the identifier so uses are reported as undefined.
	GlobalOff GlobalAccess = "off"
)

// Defined reports whether the identifier counts as declared.
func (g GlobalAccess) Defined() bool {
	return g == GlobalReadonly || g == GlobalWritable
}

// ParseGlobalAccess accepts true/false and the string flags "readonly",
// "readable", "writable", "writeable", "off", "true" and "false".
func ParseGlobalAccess(v any) (GlobalAccess, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return GlobalWritable, nil
		}

		return GlobalReadonly, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "readonly", "readable", "false":
			return GlobalReadonly, nil
		case "writable", "writeable", "true":
			return GlobalWritable, nil
		case "off":
			return GlobalOff, nil
		}
	}

	return "", fmt.Errorf("%w: %v", ErrInvalidGlobalAccess, v)
}
