package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"flatconf.dev/pkg/flatconf/internal/domain"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <paths...>",
		Short: "Re-resolve files whenever the config file changes",
		Long: `Resolve the given paths, then again every time the config file is saved,
until interrupted. A config that fails to load is reported and the previous
output stays valid.

` + pathsHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{
				SourceArgs: sourceArgs(),
				Paths:      parsePaths(args),
				Format:     format,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
