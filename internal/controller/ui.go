// Package controller provides output adapters for reporting repair progress.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// UI reports every step of a repair run. Repairs rewrite revision files in
// place, so each substitution is shown as it happens.
type UI interface {
	DisplayDiagnostic(ctx context.Context, diagnostic m.Diagnostic)
	DisplayFix(ctx context.Context, action m.FixAction, entry m.LedgerEntry)
	DisplayWarning(ctx context.Context, message string)
	DisplayVerified(ctx context.Context, rev m.Revision)
	DisplayLedger(ctx context.Context, report m.LedgerReport)
}

// NewUI picks the styled UI for terminals and plain text otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
