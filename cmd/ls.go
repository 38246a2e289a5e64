package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flatconf.dev/pkg/flatconf/internal/domain"
)

var parallelFlag int

// lsCmd represents the ls command.
var lsCmd = newLsCmd()

func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls [dirs...]",
		Aliases: []string{"list"},
		Short:   "List files and whether they are linted, ignored or unmatched",
		Long: `Walk the given directories (default: the working directory) and show, for
every file, whether a fragment selects it, an ignore pattern excludes it, or
nothing targets it explicitly. Ignored directories are not descended into.

` + pathsHelp,
		RunE: func(_ *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			threads := viper.GetInt(runParallelKey)
			if threads < 0 {
				threads = 0
			}

			return workflow.List(context.Background(), domain.ListArgs{
				SourceArgs: sourceArgs(),
				Roots:      parsePaths(args),
				Threads:    uint(threads),
				Format:     format,
			})
		},
	}

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(runParallelKey), "number of files resolved in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), runParallelKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
