package model

import (
	"encoding/json"
	"fmt"
)

// RuleEntry is a rule's severity plus optional rule-specific options.
type RuleEntry struct {
	Severity Severity
	Options  []any
}

// Enabled reports whether the rule reports anything.
func (r RuleEntry) Enabled() bool {
	return r.Severity != SeverityOff
}

// Clone returns a deep copy of the entry.
func (r RuleEntry) Clone() RuleEntry {
	out := RuleEntry{Severity: r.Severity}
	if len(r.Options) > 0 {
		out.Options = make([]any, len(r.Options))
		for i, o := range r.Options {
			out.Options[i] = CloneValue(o)
		}
	}

	return out
}

func (r RuleEntry) document() any {
	if len(r.Options) == 0 {
		return r.Severity.String()
	}

	out := make([]any, 0, len(r.Options)+1)
	out = append(out, r.Severity.String())
	out = append(out, r.Options...)

	return out
}

// MarshalYAML renders "severity" or [severity, options...].
func (r RuleEntry) MarshalYAML() (interface{}, error) {
	return r.document(), nil
}

// MarshalJSON renders "severity" or [severity, options...].
func (r RuleEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.document())
}

// ParseRuleEntry accepts a bare severity or a list whose first element is the
// severity and whose remaining elements are options.
func ParseRuleEntry(v any) (RuleEntry, error) {
	switch list := v.(type) {
	case []any:
		if len(list) == 0 {
			return RuleEntry{}, fmt.Errorf("%w: empty rule entry", ErrInvalidSeverity)
		}

		severity, err := ParseSeverity(list[0])
		if err != nil {
			return RuleEntry{}, err
		}

		entry := RuleEntry{Severity: severity}
		for _, opt := range list[1:] {
			entry.Options = append(entry.Options, CloneValue(opt))
		}

		return entry, nil
	case []string:
		generic := make([]any, len(list))
		for i, s := range list {
			generic[i] = s
		}

		return ParseRuleEntry(generic)
	default:
		severity, err := ParseSeverity(v)
		if err != nil {
			return RuleEntry{}, err
		}

		return RuleEntry{Severity: severity}, nil
	}
}
