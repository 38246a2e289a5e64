package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"flatconf.dev/pkg/flatconf/internal/domain"
	m "flatconf.dev/pkg/flatconf/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "Show how the configurations of two files differ",
		Long: `Resolve two paths and print a unified diff of their effective
configurations.

` + pathsHelp,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Diff(context.Background(), domain.DiffArgs{
				SourceArgs: sourceArgs(),
				Left:       m.Path(args[0]),
				Right:      m.Path(args[1]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
