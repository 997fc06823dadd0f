// Package cmd provides the root command and CLI setup for fsfsfixer.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fsfsfixer.dev/pkg/fsfsfixer/internal/adapter"
	"fsfsfixer.dev/pkg/fsfsfixer/internal/controller"
	"fsfsfixer.dev/pkg/fsfsfixer/internal/domain"
)

var revisionFS adapter.RevisionFSAdapter
var ledgerStore adapter.LedgerStore

// buildRepairer wires a Repairer from the current configuration. Tests replace it.
var buildRepairer = newConfiguredRepairer

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides log.filename.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	revisionFS = adapter.NewLocalRevisionFSAdapter()
	ledgerStore = adapter.NewLedgerStore()
}

const rootLongDescription = `fsfsfixer repairs corrupt revision files in a Subversion FSFS repository.

It verifies a revision with svnadmin, recognizes the corruption from the
diagnostic, derives the correct value from the repository itself and patches
the revision file in place. The loop repeats until the revision verifies or an
error is found that cannot be fixed. svnlook is consulted when svnadmin's
diagnostic cannot be acted on.

Back up the repository before running it.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return baseRootCmd()
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fsfsfixer",
		Short: "Repair corrupt FSFS revision files",
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			reportConfigReadError(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
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

func reportConfigReadError(cmd *cobra.Command) {
	if configReadErr == nil {
		return
	}

	slog.Warn("Ignoring unreadable config file", "error", configReadErr)
	cmd.PrintErrln("warning: ignoring config file:", configReadErr)
}

// newConfiguredRepairer builds the repair pipeline from viper settings and
// returns it together with the UI it reports to.
func newConfiguredRepairer(cmd *cobra.Command) (domain.Repairer, controller.UI, error) {
	exceptions, err := exceptionTable(viper.GetStringSlice(exceptionsConfigKey))
	if err != nil {
		return nil, nil, err
	}

	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))
	runner := adapter.NewLocalCommandRunnerAdapter(verifyTimeout(), viper.GetInt(retriesConfigKey))
	verifier := domain.NewVerifier(runner, toolsFromConfig())
	resolver := domain.NewResolver(domain.NewHistory(revisionFS), exceptions)
	patcher := domain.NewPatcher(revisionFS)

	repairer := domain.NewRepairer(
		revisionFS,
		ui,
		verifier,
		resolver,
		patcher,
		domain.WithMaxFixes(viper.GetInt(maxFixesConfigKey)),
	)

	return repairer, ui, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
