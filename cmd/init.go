package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flatconf.dev/pkg/flatconf/internal/domain"
	m "flatconf.dev/pkg/flatconf/internal/model"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate flatconf.yaml and a starter lint.config.yaml",
		Long: `Create a flatconf.yaml in the current working directory populated with the
current CLI defaults, and a starter lint config at the --config path. Existing
files are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return workflow.Init(context.Background(), domain.InitArgs{
				Target: m.Path(viper.GetString(configKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
