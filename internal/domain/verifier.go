package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fsfsfixer.dev/pkg/fsfsfixer/internal/adapter"
	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// aprErrMarker tags debug-build lines carrying internal library error codes.
const aprErrMarker = "(apr_err="

// Tools names the external binaries the verifier drives.
type Tools struct {
	SvnAdmin string
	SvnLook  string
}

// DefaultTools resolves both binaries from PATH.
var DefaultTools = Tools{SvnAdmin: "svnadmin", SvnLook: "svnlook"}

// Verifier collects diagnostics about one revision from the repository tools.
type Verifier interface {
	// Verify runs the strict verifier; an empty diagnostic means the revision is valid.
	Verify(ctx context.Context, rev m.Revision) (m.Diagnostic, error)
	// TreeWalk runs the tree walker, used as a fallback diagnostic source.
	TreeWalk(ctx context.Context, rev m.Revision) (m.Diagnostic, error)
}

type verifier struct {
	runner adapter.CommandRunnerAdapter
	tools  Tools
}

// NewVerifier constructs a Verifier running tools through runner.
func NewVerifier(runner adapter.CommandRunnerAdapter, tools Tools) Verifier {
	if tools.SvnAdmin == "" {
		tools.SvnAdmin = DefaultTools.SvnAdmin
	}

	if tools.SvnLook == "" {
		tools.SvnLook = DefaultTools.SvnLook
	}

	return &verifier{runner: runner, tools: tools}
}

func (v *verifier) Verify(ctx context.Context, rev m.Revision) (m.Diagnostic, error) {
	return v.collect(ctx, m.SourceVerify, v.tools.SvnAdmin, "verify", "-q", "-r"+rev.Number, string(rev.Repo))
}

func (v *verifier) TreeWalk(ctx context.Context, rev m.Revision) (m.Diagnostic, error) {
	return v.collect(ctx, m.SourceTreeWalk, v.tools.SvnLook, "tree", "-r"+rev.Number, string(rev.Repo))
}

func (v *verifier) collect(ctx context.Context, source m.DiagnosticSource, name string, args ...string) (m.Diagnostic, error) {
	result, err := v.runner.Run(ctx, name, args...)
	if err != nil {
		slog.Error("Failed to run diagnostic tool", "tool", name, "error", err)
		return m.Diagnostic{}, fmt.Errorf("%s %s: %w", name, args[0], err)
	}

	diagnostic := m.Diagnostic{Source: source, Lines: FilterDiagnostic(result.Stderr)}
	slog.Debug("Collected diagnostic", "tool", name, "exitCode", result.ExitCode, "lines", len(diagnostic.Lines))

	return diagnostic, nil
}

// FilterDiagnostic splits stderr into lines, dropping internal error-code
// annotations and trailing blank lines.
func FilterDiagnostic(stderr string) []string {
	var lines []string

	for _, line := range strings.Split(strings.ReplaceAll(stderr, "\r\n", "\n"), "\n") {
		if strings.Contains(line, aprErrMarker) {
			continue
		}

		lines = append(lines, line)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
