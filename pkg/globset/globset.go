// Package globset provides ordered glob pattern sets with gitignore-style
// semantics on top of doublestar patterns.
//
// Paths are slash separated and relative to whatever base directory the
// caller uses. A pattern may be prefixed with "!" to negate it and suffixed
// with "/" to restrict it to directories. Leading "./" and "/" are stripped,
// so every pattern is anchored at the base directory.
package globset

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrBadPattern is returned for patterns doublestar cannot parse.
	ErrBadPattern = errors.New("bad glob pattern")
	// ErrEmptyPattern is returned for patterns that are empty after trimming.
	ErrEmptyPattern = errors.New("empty glob pattern")
)

// Pattern is a single compiled glob.
type Pattern struct {
	raw     string
	glob    string
	negated bool
	dirOnly bool
}

// Compile parses raw into a Pattern.
func Compile(raw string) (Pattern, error) {
	p := Pattern{raw: raw}

	glob := strings.TrimSpace(raw)
	if strings.HasPrefix(glob, "!") {
		p.negated = true
		glob = glob[1:]
	}

	if strings.HasSuffix(glob, "/") {
		p.dirOnly = true
		glob = strings.TrimRight(glob, "/")
	}

	glob = strings.TrimPrefix(glob, "./")
	glob = strings.TrimPrefix(glob, "/")

	if glob == "" {
		return Pattern{}, fmt.Errorf("%w: %q", ErrEmptyPattern, raw)
	}

	if !doublestar.ValidatePattern(glob) {
		return Pattern{}, fmt.Errorf("%w: %q", ErrBadPattern, raw)
	}

	p.glob = glob

	return p, nil
}

// String returns the pattern as written.
func (p Pattern) String() string {
	return p.raw
}

// Negated reports whether the pattern starts with "!".
func (p Pattern) Negated() bool {
	return p.negated
}

// DirOnly reports whether the pattern ends with "/".
func (p Pattern) DirOnly() bool {
	return p.dirOnly
}

// Match reports whether the glob (ignoring negation) matches target exactly.
func (p Pattern) Match(target string) bool {
	matched, err := doublestar.Match(p.glob, target)
	return err == nil && matched
}

// Set is an ordered list of patterns. The zero value is an empty set.
// A Set is immutable after construction and safe for concurrent use.
type Set struct {
	patterns []Pattern
}

// New compiles every raw pattern, in order.
func New(raw ...string) (*Set, error) {
	s := &Set{patterns: make([]Pattern, 0, len(raw))}

	for _, r := range raw {
		p, err := Compile(r)
		if err != nil {
			return nil, err
		}

		s.patterns = append(s.patterns, p)
	}

	return s, nil
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.patterns)
}

// Patterns returns the patterns as written.
func (s *Set) Patterns() []string {
	if s == nil {
		return nil
	}

	out := make([]string, 0, len(s.patterns))
	for _, p := range s.patterns {
		out = append(out, p.raw)
	}

	return out
}

// Selects reports whether file is selected by the set: the last pattern that
// matches it must not be negated. Directory-only patterns select every file
// beneath a matching directory.
func (s *Set) Selects(file string) bool {
	if s == nil {
		return false
	}

	file = Normalize(file)
	selected := false

	for _, p := range s.patterns {
		if !p.matchesFile(file) {
			continue
		}

		selected = !p.negated
	}

	return selected
}

// Ignores reports whether file is ignored and, if so, the pattern responsible.
// An ignored ancestor directory ignores the file unconditionally; otherwise
// the last matching pattern decides.
func (s *Set) Ignores(file string) (bool, string) {
	if s == nil || len(s.patterns) == 0 {
		return false, ""
	}

	file = Normalize(file)

	for _, dir := range Ancestors(file) {
		if ignored, by := s.decide(dir, true); ignored {
			return true, by
		}
	}

	return s.decide(file, false)
}

// IgnoresDir is like Ignores but treats dir itself as a directory.
func (s *Set) IgnoresDir(dir string) (bool, string) {
	if s == nil || len(s.patterns) == 0 {
		return false, ""
	}

	dir = Normalize(dir)
	if dir == "" {
		return false, ""
	}

	for _, ancestor := range append(Ancestors(dir), dir) {
		if ignored, by := s.decide(ancestor, true); ignored {
			return true, by
		}
	}

	return false, ""
}

func (s *Set) decide(target string, isDir bool) (bool, string) {
	ignored, by := false, ""

	for _, p := range s.patterns {
		if p.dirOnly && !isDir {
			continue
		}

		if !p.Match(target) {
			continue
		}

		ignored = !p.negated
		if ignored {
			by = p.raw
		} else {
			by = ""
		}
	}

	return ignored, by
}

func (p Pattern) matchesFile(file string) bool {
	if !p.dirOnly {
		return p.Match(file)
	}

	for _, dir := range Ancestors(file) {
		if p.Match(dir) {
			return true
		}
	}

	return false
}

// Normalize converts p to the slash-separated, cleaned, relative form the
// set matches against. "." and "" normalise to "".
func Normalize(p string) string {
	p = filepath.ToSlash(strings.TrimSpace(p))
	if p == "" {
		return ""
	}

	p = path.Clean(p)
	p = strings.TrimPrefix(p, "./")

	if p == "." {
		return ""
	}

	return p
}

// Ancestors returns the proper ancestor directories of p, outermost first.
// Ancestors("a/b/c.js") is ["a", "a/b"].
func Ancestors(p string) []string {
	parts := strings.Split(p, "/")
	if len(parts) <= 1 {
		return nil
	}

	out := make([]string, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		out = append(out, strings.Join(parts[:i], "/"))
	}

	return out
}
