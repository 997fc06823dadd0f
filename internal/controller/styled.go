package controller

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

var (
	diagnosticStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fixStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// StyledUI decorates SimpleUI output with terminal colours.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayDiagnostic echoes the diagnostic in a muted colour.
func (s *StyledUI) DisplayDiagnostic(ctx context.Context, diagnostic m.Diagnostic) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, line := range diagnosticHead(diagnostic) {
		s.printf("%s\n", diagnosticStyle.Render(line))
	}
}

// DisplayFix highlights an applied substitution.
func (s *StyledUI) DisplayFix(ctx context.Context, action m.FixAction, entry m.LedgerEntry) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", fixStyle.Render(fixLine(action, entry)))
}

// DisplayWarning highlights a non-fatal problem.
func (s *StyledUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", warningStyle.Render("warning: "+message))
}

// DisplayVerified confirms a clean verification.
func (s *StyledUI) DisplayVerified(ctx context.Context, rev m.Revision) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", successStyle.Render("Revision "+rev.Number+" verifies OK."))
}
