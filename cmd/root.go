// Package cmd provides the root command and CLI setup for flatconf.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"flatconf.dev/pkg/flatconf/internal/adapter"
	"flatconf.dev/pkg/flatconf/internal/controller"
	"flatconf.dev/pkg/flatconf/internal/domain"
	m "flatconf.dev/pkg/flatconf/internal/model"
	"flatconf.dev/pkg/flatconf/internal/preset"
)

var fsAdapter adapter.SourceFSAdapter
var configLoader adapter.ConfigLoader
var configWatcher adapter.ConfigWatcher
var catalog preset.Catalog
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by every subcommand.
var (
	configFlag         string
	ignorePatternsFlag []string
	formatFlag         string
	verboseFlag        bool
	logFileFlag        string
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	configLoader = adapter.NewLocalConfigLoader(fsAdapter)
	configWatcher = adapter.NewFSNotifyConfigWatcher(adapter.DefaultDebounce)

	var err error

	catalog, err = preset.Default()
	cobra.CheckErr(err)

	workflow = domain.NewWorkflow(
		fsAdapter,
		configLoader,
		configWatcher,
		catalog,
		ui,
	)
}

const pathsHelp = `Paths are taken relative to the working directory. Patterns in the config
file are matched against paths relative to the directory holding it.`

const rootLongDescription = `flatconf resolves flat lint configuration lists: an ordered list of
fragments, each optionally scoped by "files" globs, with global "ignores".
For any file it computes the single effective configuration a linter would
apply, and explains which fragments contributed.

The config file is lint.config.yaml, .yml, .toml or .hcl, searched for in
the working directory and its parents unless --config names one.

` + pathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "flatconf",
		Short:        "Flat lint config resolver",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFlag, configFlagName, "c", viper.GetString(configKey), "lint config file (searched upwards when it is a bare name)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(configFlagName), configKey)

	cmd.PersistentFlags().StringArrayVarP(&ignorePatternsFlag, ignorePatternFlagName, "x", viper.GetStringSlice(ignoreConfigKey), "extra ignore pattern applied after the config (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(ignorePatternFlagName), ignoreConfigKey)

	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(outputFormatKey), "output format: yaml, json or table")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), outputFormatKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// sourceArgs collects the config selection shared by all commands.
func sourceArgs() domain.SourceArgs {
	return domain.SourceArgs{
		Config:       m.Path(viper.GetString(configKey)),
		ExtraIgnores: viper.GetStringSlice(ignoreConfigKey),
	}
}

func outputFormat() (m.Format, error) {
	return m.ParseFormat(viper.GetString(outputFormatKey))
}
