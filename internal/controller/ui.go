// Package controller provides output adapters for displaying resolved
// configurations, listings, diffs and validation results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "flatconf.dev/pkg/flatconf/internal/model"
)

// UI defines the interface for displaying workflow results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResolution(ctx context.Context, configs []m.EffectiveConfig, format m.Format) error
	DisplayListing(ctx context.Context, statuses []m.FileStatus, format m.Format) error
	DisplayDiff(ctx context.Context, left, right m.Path, diff string) error
	DisplayValidation(ctx context.Context, report m.ValidationReport, format m.Format) error
	DisplayWatchEvent(ctx context.Context, event m.WatchEvent) error
	DisplayCreated(ctx context.Context, path m.Path) error
}

// NewUI picks the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
