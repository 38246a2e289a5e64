package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "flatconf.dev/pkg/flatconf/internal/model"
)

const timeLayout = "15:04:05"

// SimpleUI implements UI by writing to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResolution prints resolved configs as YAML documents, a JSON value
// (an array when there is more than one) or tables.
func (s *SimpleUI) DisplayResolution(ctx context.Context, configs []m.EffectiveConfig, format m.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderResolution(configs, format)
	if err != nil {
		return err
	}

	s.print(out)

	return nil
}

func renderResolution(configs []m.EffectiveConfig, format m.Format) (string, error) {
	switch format {
	case m.FormatTable:
		var b strings.Builder

		for i, cfg := range configs {
			if i > 0 {
				b.WriteString("\n")
			}

			b.WriteString(renderConfigTable(cfg))
		}

		return b.String(), nil
	case m.FormatJSON:
		var v any = configs
		if len(configs) == 1 {
			v = configs[0]
		}

		out, err := m.Encode(v, format)

		return string(out), err
	}

	docs := make([]string, 0, len(configs))

	for _, cfg := range configs {
		out, err := m.Encode(cfg, format)
		if err != nil {
			return "", err
		}

		docs = append(docs, string(out))
	}

	return strings.Join(docs, "---\n"), nil
}

func renderConfigTable(cfg m.EffectiveConfig) string {
	var b strings.Builder

	if cfg.Excluded {
		fmt.Fprintf(&b, "%s: ignored by %q\n", cfg.Path, cfg.ExcludedBy)
		return b.String()
	}

	state := m.FileUnmatched
	if cfg.Matched {
		state = m.FileLinted
	}

	fmt.Fprintf(&b, "%s (%s)\n", cfg.Path, state)

	if len(cfg.Applied) > 0 {
		fmt.Fprintf(&b, "  fragments: %s\n", strings.Join(cfg.Applied, ", "))
	}

	lo := cfg.LanguageOptions
	fmt.Fprintf(&b, "  ecmaVersion: %s, sourceType: %s", lo.EcmaVersion, lo.SourceType)

	if lo.Parser != "" {
		fmt.Fprintf(&b, ", parser: %s", lo.Parser)
	}

	b.WriteString("\n")

	if len(cfg.Plugins) > 0 {
		fmt.Fprintf(&b, "  plugins: %s\n", strings.Join(cfg.Plugins, ", "))
	}

	fmt.Fprintf(&b, "  globals: %d defined\n", cfg.DefinedGlobals())

	if len(cfg.Rules) == 0 {
		b.WriteString("  rules: none\n")
		return b.String()
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Severity", "Options"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, name := range sortedRuleNames(cfg.Rules) {
		entry := cfg.Rules[name]
		table.Append([]string{name, entry.Severity.String(), formatOptions(entry.Options)})
	}

	errors, warnings, off := cfg.RuleCounts()
	table.SetFooter([]string{
		fmt.Sprintf("%d rules", len(cfg.Rules)),
		fmt.Sprintf("%d error %d warn %d off", errors, warnings, off),
		"",
	})

	table.Render()
	b.WriteString(tableBuffer.String())

	return b.String()
}

func sortedRuleNames(rules map[string]m.RuleEntry) []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func formatOptions(options []any) string {
	if len(options) == 0 {
		return ""
	}

	out, err := json.Marshal(options)
	if err != nil {
		return fmt.Sprint(options)
	}

	return string(out)
}

// DisplayListing prints the per-file states of a directory walk.
func (s *SimpleUI) DisplayListing(ctx context.Context, statuses []m.FileStatus, format m.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format != m.FormatTable {
		out, err := m.Encode(statuses, format)
		if err != nil {
			return err
		}

		s.print(string(out))

		return nil
	}

	s.printf("\n%s", renderListingTable(statuses))

	return nil
}

func renderListingTable(statuses []m.FileStatus) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "State", "Errors", "Warnings", "Off", "Globals"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	counts := map[m.FileState]int{}

	for _, st := range statuses {
		counts[st.State]++

		if st.State == m.FileIgnored {
			table.Append([]string{string(st.Path), fmt.Sprintf("ignored (%s)", st.IgnoredBy), "", "", "", ""})
			continue
		}

		table.Append([]string{
			string(st.Path),
			string(st.State),
			fmt.Sprintf("%d", st.Errors),
			fmt.Sprintf("%d", st.Warnings),
			fmt.Sprintf("%d", st.Off),
			fmt.Sprintf("%d", st.Globals),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d files", len(statuses)),
		fmt.Sprintf("%d linted %d ignored %d unmatched", counts[m.FileLinted], counts[m.FileIgnored], counts[m.FileUnmatched]),
		"", "", "", "",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayDiff prints a unified diff between two paths' configs.
func (s *SimpleUI) DisplayDiff(ctx context.Context, left, right m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("%s and %s resolve to the same configuration\n", left, right)
		return nil
	}

	s.print(diff)

	return nil
}

// DisplayValidation prints a summary of every fragment in the config.
func (s *SimpleUI) DisplayValidation(ctx context.Context, report m.ValidationReport, format m.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format != m.FormatTable {
		out, err := m.Encode(report, format)
		if err != nil {
			return err
		}

		s.print(string(out))

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Fragment", "Files", "Ignores", "Rules", "Globals"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, f := range report.Fragments {
		table.Append([]string{
			fmt.Sprintf("%d", f.Index),
			f.Label,
			orAll(f.Files),
			strings.Join(f.Ignores, " "),
			fmt.Sprintf("%d", f.Rules),
			fmt.Sprintf("%d", f.Globals),
		})
	}

	table.Render()

	s.printf("%s: %d fragment(s) OK\n\n%s", report.Config, len(report.Fragments), tableBuffer.String())

	if len(report.IgnorePatterns) > 0 {
		s.printf("\nglobal ignores: %s\n", strings.Join(report.IgnorePatterns, " "))
	}

	return nil
}

func orAll(files []string) string {
	if len(files) == 0 {
		return "(all)"
	}

	return strings.Join(files, " ")
}

// DisplayWatchEvent prints a one-line reload notice.
func (s *SimpleUI) DisplayWatchEvent(ctx context.Context, event m.WatchEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stamp := event.At.Format(timeLayout)

	if event.Err != nil {
		s.printf("[%s] %s: reload failed, keeping previous config: %v\n", stamp, event.Config, event.Err)
		return nil
	}

	verb := "reloaded"
	if event.Reload == 0 {
		verb = "loaded"
	}

	s.printf("[%s] %s %s (%d fragments)\n", stamp, verb, event.Config, event.Fragments)

	return nil
}

// DisplayCreated reports a file written by init.
func (s *SimpleUI) DisplayCreated(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("created %s\n", path)

	return nil
}

func (s *SimpleUI) print(text string) {
	_, _ = fmt.Fprint(s.cmd.OutOrStdout(), text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
