// Package cmd provides the root command and CLI setup for playground.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"playground.dev/pkg/playground/internal/adapter"
	"playground.dev/pkg/playground/internal/controller"
)

var sourceFS adapter.SourceFSAdapter
var compilerLoader adapter.CompilerLoader
var openSessionStore func() (adapter.SessionStore, error)
var newUI func(cmd *cobra.Command) controller.UI

var sessionDirFlag string
var sessionIDFlag string
var verboseFlag bool
var logFileFlag string
var noColorFlag bool

func init() {
	// Initialize shared dependencies.
	sourceFS = adapter.NewLocalSourceFSAdapter()
	compilerLoader = adapter.LoadLocalSchemaCompiler
	openSessionStore = openBadgerSessionStore
	newUI = func(cmd *cobra.Command) controller.UI {
		color := !viper.GetBool(noColorConfigKey) && controller.IsTTY(cmd.OutOrStdout())
		return controller.NewSimpleUI(cmd, controller.WithColor(color))
	}
}

const rootLongDescription = `Playground keeps the live state of one or more schema projects: it applies
file edits, recompiles each project against the current environment and
serves the latest good build with the newest diagnostics.

Projects are directories of .yaml, .yml or .toml schema files. The selected
project, function, test case and the environment entries are stored in a
session that survives between invocations.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "playground",
		Short: "Multi-project schema playground",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&sessionDirFlag, sessionDirFlagName, viper.GetString(sessionDirConfigKey), "directory of the session database")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sessionDirFlagName), sessionDirConfigKey)

	cmd.PersistentFlags().StringVar(&sessionIDFlag, sessionIDFlagName, viper.GetString(sessionIDConfigKey), "session id the stored selection and environment belong to")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sessionIDFlagName), sessionIDConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVar(&noColorFlag, noColorFlagName, viper.GetBool(noColorConfigKey), "disable coloured output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noColorFlagName), noColorConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func openBadgerSessionStore() (adapter.SessionStore, error) {
	return adapter.OpenBadgerSessionStore(adapter.BadgerSessionConfig{
		Dir:       viper.GetString(sessionDirConfigKey),
		SessionID: viper.GetString(sessionIDConfigKey),
		Logger:    globalLogger,
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
