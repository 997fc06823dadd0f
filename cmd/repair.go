package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fsfsfixer.dev/pkg/fsfsfixer/internal/controller"
	"fsfsfixer.dev/pkg/fsfsfixer/internal/domain"
	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

const repairLongDescription = `Repair one or more revisions of the FSFS repository at REPO-DIR.

Revisions are repaired in the order given. The command stops at the first
revision that cannot be repaired and exits with status 1.`

var (
	ledgerFlag     string
	timeoutFlag    string
	retriesFlag    int
	maxFixesFlag   int
	svnadminFlag   string
	svnlookFlag    string
	exceptionFlags []string
)

// repairCmd represents the repair command.
var repairCmd = newRepairCmd()

func newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "repair REPO-DIR REVISION [REVISION...]",
		Short:        "Repair corrupt revision files",
		Long:         repairLongDescription,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			revisions, err := parseRevisions(args[0], args[1:])
			if err != nil {
				return err
			}

			repairer, ui, err := buildRepairer(cmd)
			if err != nil {
				return err
			}

			return repairRevisions(cmd.Context(), repairer, ui, revisions, m.Path(viper.GetString(ledgerConfigKey)))
		},
	}

	configureRepairFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(repairCmd)
}

func configureRepairFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ledgerFlag, ledgerFlagName, "", "append the ledger of every run to this YAML file")
	bindFlagToConfig(cmd.Flags().Lookup(ledgerFlagName), ledgerConfigKey)

	cmd.Flags().StringVar(&timeoutFlag, timeoutFlagName, defaultVerifyTimeout.String(), "timeout for each svnadmin/svnlook invocation")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutConfigKey)

	cmd.Flags().IntVar(&retriesFlag, retriesFlagName, defaultVerifyRetries, "retries after a timed out svnadmin/svnlook invocation")
	bindFlagToConfig(cmd.Flags().Lookup(retriesFlagName), retriesConfigKey)

	cmd.Flags().IntVar(&maxFixesFlag, maxFixesFlagName, defaultMaxFixes, "give up on a revision after this many fixes (0 for no limit)")
	bindFlagToConfig(cmd.Flags().Lookup(maxFixesFlagName), maxFixesConfigKey)

	cmd.Flags().StringVar(&svnadminFlag, svnadminFlagName, domain.DefaultTools.SvnAdmin, "svnadmin binary")
	bindFlagToConfig(cmd.Flags().Lookup(svnadminFlagName), svnadminConfigKey)

	cmd.Flags().StringVar(&svnlookFlag, svnlookFlagName, domain.DefaultTools.SvnLook, "svnlook binary")
	bindFlagToConfig(cmd.Flags().Lookup(svnlookFlagName), svnlookConfigKey)

	cmd.Flags().StringArrayVar(&exceptionFlags, exceptionFlagName, nil, "known replacement for a node-revision ID as BAD=GOOD (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(exceptionFlagName), exceptionsConfigKey)
}

// parseRevisions validates the revision arguments.
func parseRevisions(repo string, args []string) ([]m.Revision, error) {
	revisions := make([]m.Revision, 0, len(args))

	for _, arg := range args {
		if _, err := strconv.ParseUint(arg, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid revision %q: want a non-negative integer", arg)
		}

		revisions = append(revisions, m.Revision{Repo: m.Path(repo), Number: arg})
	}

	return revisions, nil
}

// repairRevisions repairs each revision in order and stops at the first
// failure. Ledgers of all attempted revisions are appended to ledgerPath when
// it is set.
func repairRevisions(
	ctx context.Context,
	repairer domain.Repairer,
	ui controller.UI,
	revisions []m.Revision,
	ledgerPath m.Path,
) error {
	reports := make([]m.LedgerReport, 0, len(revisions))

	var repairErr error

	for _, rev := range revisions {
		report, err := repairer.Repair(ctx, rev)
		reports = append(reports, report)

		ui.DisplayLedger(ctx, report)

		if err != nil {
			repairErr = fmt.Errorf("r%s: %w", rev.Number, err)
			break
		}
	}

	if ledgerPath == "" {
		return repairErr
	}

	if err := appendLedgers(ledgerPath, reports); err != nil {
		slog.Error("Failed to save ledger", "path", ledgerPath, "error", err)
		return errors.Join(repairErr, err)
	}

	return repairErr
}

// appendLedgers adds reports after the runs already stored at path.
func appendLedgers(path m.Path, reports []m.LedgerReport) error {
	previous, err := ledgerStore.LoadLedgers(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := ledgerStore.SaveLedgers(path, append(previous, reports...)); err != nil {
		return err
	}

	slog.Info("Saved ledger", "path", path, "runs", len(reports), "total", len(previous)+len(reports))

	return nil
}
