package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	controllermocks "fsfsfixer.dev/pkg/fsfsfixer/internal/controller/mocks"
	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// newTestRepo lays out a sharded FSFS repository holding the given revision
// files and returns its root.
func newTestRepo(t *testing.T, revs map[string]string) m.Path {
	t.Helper()

	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, "db", "format"), "4\nlayout sharded 1000\n")

	for rev, content := range revs {
		writeFile(t, revPath(repo, rev), content)
	}

	return m.Path(repo)
}

func revPath(repo, rev string) string {
	return filepath.Join(repo, "db", "revs", "0", rev)
}

func readRev(t *testing.T, repo m.Path, rev string) string {
	t.Helper()

	data, err := os.ReadFile(revPath(string(repo), rev))
	require.NoError(t, err)

	return string(data)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func diagnostic(source m.DiagnosticSource, lines ...string) m.Diagnostic {
	return m.Diagnostic{Source: source, Lines: lines}
}

// quietUI accepts any progress output.
func quietUI(t *testing.T) *controllermocks.MockUI {
	ui := controllermocks.NewMockUI(t)
	ui.On("DisplayDiagnostic", mock.Anything, mock.Anything).Maybe()
	ui.On("DisplayFix", mock.Anything, mock.Anything, mock.Anything).Maybe()
	ui.On("DisplayWarning", mock.Anything, mock.Anything).Maybe()
	ui.On("DisplayVerified", mock.Anything, mock.Anything).Maybe()

	return ui
}
