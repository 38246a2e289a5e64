package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidSeverity is returned when a rule severity cannot be parsed.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity is the level a rule reports at.
type Severity int

const (
	// SeverityOff disables the rule.
	SeverityOff Severity = iota
	// SeverityWarn reports violations as warnings.
	SeverityWarn
	// SeverityError reports violations as errors.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalYAML renders the severity by name.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// MarshalJSON renders the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseSeverity accepts "off", "warn", "error" (any case) or 0, 1, 2.
func ParseSeverity(v any) (Severity, error) {
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "off", "0":
			return SeverityOff, nil
		case "warn", "1":
			return SeverityWarn, nil
		case "error", "2":
			return SeverityError, nil
		}

		return SeverityOff, fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
	}

	n, ok := asInt(v)
	if !ok || n < int(SeverityOff) || n > int(SeverityError) {
		return SeverityOff, fmt.Errorf("%w: %v", ErrInvalidSeverity, v)
	}

	return Severity(n), nil
}

// asInt converts the numeric shapes produced by the YAML, TOML, JSON and
// HCL decoders into an int. Floats must be integral.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}

		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}
