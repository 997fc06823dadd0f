package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDiagnostic echoes the diagnostic being acted on.
func (s *SimpleUI) DisplayDiagnostic(ctx context.Context, diagnostic m.Diagnostic) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, line := range diagnosticHead(diagnostic) {
		s.printf("%s\n", line)
	}
}

// DisplayFix prints one applied substitution.
func (s *SimpleUI) DisplayFix(ctx context.Context, action m.FixAction, entry m.LedgerEntry) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", fixLine(action, entry))
}

// DisplayWarning prints a non-fatal problem.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("warning: %s\n", message)
}

// DisplayVerified confirms that the revision verifies cleanly.
func (s *SimpleUI) DisplayVerified(ctx context.Context, rev m.Revision) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Revision %s verifies OK.\n", rev.Number)
}

// DisplayLedger prints the substitutions made for one revision as a table.
func (s *SimpleUI) DisplayLedger(ctx context.Context, report m.LedgerReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(report.Entries) == 0 {
		s.printf("No fixes applied to r%s\n", report.Revision)
		return
	}

	s.printf("\n%s", renderLedgerTable(report))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// diagnosticHead returns the lines the classifier looked at.
func diagnosticHead(diagnostic m.Diagnostic) []string {
	if len(diagnostic.Lines) > 3 {
		return diagnostic.Lines[:3]
	}

	return diagnostic.Lines
}

func fixLine(action m.FixAction, entry m.LedgerEntry) string {
	var label string

	switch action.Kind {
	case m.FixID:
		label = "Fixing id"
	case m.FixChecksum:
		label = "Fixing checksum"
	case m.FixDeltaRef:
		label = "Fixing delta ref"
	default:
		label = "Fixing " + string(action.Kind)
	}

	return fmt.Sprintf("%s: %s -> %s (%d occurrence(s))", label, entry.Bad, entry.Good, entry.Replaced)
}

func renderLedgerTable(report m.LedgerReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Bad", "Good", "Replaced"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	replaced := 0

	for _, entry := range report.Entries {
		table.Append([]string{string(entry.Kind), entry.Bad, entry.Good, strconv.Itoa(entry.Replaced)})
		replaced += entry.Replaced
	}

	table.SetFooter([]string{
		"r" + report.Revision,
		fmt.Sprintf("Fixes %d", len(report.Entries)),
		"",
		strconv.Itoa(replaced),
	})

	table.Render()

	return tableBuffer.String()
}
