package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"flatconf.dev/pkg/flatconf/internal/domain"
)

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <paths...>",
		Aliases: []string{"print-config"},
		Short:   "Print the effective configuration for files",
		Long: `Print the configuration that applies to each path after every matching
fragment has been folded in. Ignored paths are reported with the pattern
that excluded them.

` + pathsHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			return workflow.Resolve(context.Background(), domain.ResolveArgs{
				SourceArgs: sourceArgs(),
				Paths:      parsePaths(args),
				Format:     format,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
