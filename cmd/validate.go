package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"flatconf.dev/pkg/flatconf/internal/domain"
)

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the config file and summarise its fragments",
		Long: `Load the config file, expand presets and global sets, compile every glob
pattern and print one line per fragment. Any error names the offending
fragment by index.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			return workflow.Validate(context.Background(), domain.ValidateArgs{
				SourceArgs: sourceArgs(),
				Format:     format,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
