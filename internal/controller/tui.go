package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "flatconf.dev/pkg/flatconf/internal/model"
)

// Lines taken by the pager title and footer.
const pagerChrome = 4

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// TUI implements UI for terminals. Table output that does not fit the screen
// is shown in a scrollable pager; everything else goes through SimpleUI.
// Once a watch event has been shown, resolutions stream inline so reloads
// are never held up by an open pager.
type TUI struct {
	*SimpleUI
	output    io.Writer
	streaming bool
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// DisplayResolution pages table output and defers to SimpleUI otherwise.
func (t *TUI) DisplayResolution(ctx context.Context, configs []m.EffectiveConfig, format m.Format) error {
	if format != m.FormatTable || t.streaming {
		return t.SimpleUI.DisplayResolution(ctx, configs, format)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := renderResolution(configs, format)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("flatconf: %d resolved path(s)", len(configs))

	return t.page(ctx, title, content)
}

// DisplayListing pages the listing table and defers to SimpleUI otherwise.
func (t *TUI) DisplayListing(ctx context.Context, statuses []m.FileStatus, format m.Format) error {
	if format != m.FormatTable {
		return t.SimpleUI.DisplayListing(ctx, statuses, format)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(statuses) == 0 {
		_, err := fmt.Fprintln(t.output, helpStyle.Render("no files found"))
		return err
	}

	title := fmt.Sprintf("flatconf: %d file(s)", len(statuses))

	return t.page(ctx, title, renderListingTable(statuses))
}

// DisplayWatchEvent colours the reload line.
func (t *TUI) DisplayWatchEvent(ctx context.Context, event m.WatchEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.streaming = true

	stamp := helpStyle.Render(event.At.Format(timeLayout))

	if event.Err != nil {
		_, err := fmt.Fprintf(t.output, "%s %s %s: %v\n",
			stamp, errorStyle.Render("reload failed"), event.Config, event.Err)

		return err
	}

	verb := "reloaded"
	if event.Reload == 0 {
		verb = "loaded"
	}

	_, err := fmt.Fprintf(t.output, "%s %s %s (%d fragments)\n",
		stamp, okStyle.Render(verb), event.Config, event.Fragments)

	return err
}

func (t *TUI) page(ctx context.Context, title, content string) error {
	width, height := t.size()

	model := newPagerModel(title, content, width, height)
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return pagerExit(err)
}

// pagerExit treats a pager stopped by an interrupt or context cancellation
// as closed by the user. Panics are still reported.
func pagerExit(err error) error {
	if errors.Is(err, tea.ErrProgramPanic) {
		return err
	}

	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}

	return err
}

func (t *TUI) size() (int, int) {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return 0, 0
}

// pagerModel is a Bubble Tea model that scrolls pre-rendered text.
type pagerModel struct {
	title    string
	content  string
	lines    int
	height   int
	viewport viewport.Model
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		content:  content,
		lines:    strings.Count(content, "\n") + 1,
		height:   height,
		viewport: vp,
	}
}

// needsPagination reports whether content overflows a known terminal height.
func (pm pagerModel) needsPagination() bool {
	if pm.height == 0 {
		return false
	}

	return pm.lines > pm.height-pagerChrome
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%3.0f%%  j/k scroll  g/G top/bottom  q quit", pm.viewport.ScrollPercent()*100)))

	return b.String()
}

func (pm pagerModel) staticView() string {
	return titleStyle.Render(pm.title) + "\n\n" + pm.content
}
