package domain

import (
	"errors"
	"fmt"
	"strings"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

var (
	// ErrFix marks every recoverable failure raised while fixing one diagnostic.
	ErrFix = errors.New("fix error")
	// ErrStructuralMismatch is a proposed fix failing a structural precondition.
	ErrStructuralMismatch = fmt.Errorf("%w: structural mismatch", ErrFix)
	// ErrNoOpSubstitution is a substitution that left the file byte-identical.
	ErrNoOpSubstitution = fmt.Errorf("%w: file unchanged after substitution", ErrFix)
	// ErrRepeatedFix is a fix touching a value an earlier fix already replaced.
	ErrRepeatedFix = fmt.Errorf("%w: repeated fix", ErrStructuralMismatch)
	// ErrOracle is a history lookup that could not derive a replacement value.
	ErrOracle = fmt.Errorf("%w: lookup failed", ErrFix)
	// ErrUnrecognizedDiagnostic is a diagnostic matching no known corruption.
	ErrUnrecognizedDiagnostic = errors.New("unrecognized diagnostic")
)

// IsFixError reports whether err may be recovered by trying the fallback
// diagnostic source.
func IsFixError(err error) bool {
	return errors.Is(err, ErrFix)
}

// UnfixableError is returned when a revision still fails verification and
// neither diagnostic source yields a fix that can be applied. Error indents each
// diagnostic line; the verbatim text is Diagnostic.Text().
type UnfixableError struct {
	Revision   m.Revision
	Diagnostic m.Diagnostic
	Cause      error
}

func (e *UnfixableError) Error() string {
	var b strings.Builder

	b.WriteString("unfixable error")

	if e.Cause != nil {
		b.WriteString(" (")
		b.WriteString(e.Cause.Error())
		b.WriteString(")")
	}

	b.WriteString(":\n  ")
	b.WriteString(strings.Join(e.Diagnostic.Lines, "\n  "))

	return b.String()
}

// Unwrap returns the failed fix, or ErrUnrecognizedDiagnostic when no
// diagnostic could be classified.
func (e *UnfixableError) Unwrap() error {
	if e.Cause == nil {
		return ErrUnrecognizedDiagnostic
	}

	return e.Cause
}

func fixErrorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
