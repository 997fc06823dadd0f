package model

import "strings"

// DiagnosticSource names the tool that produced a diagnostic record.
type DiagnosticSource string

const (
	// SourceVerify is the strict verifier (svnadmin verify).
	SourceVerify DiagnosticSource = "verify"
	// SourceTreeWalk is the fallback tree walker (svnlook tree).
	SourceTreeWalk DiagnosticSource = "tree"
)

// Diagnostic is the filtered stderr of one verifier invocation.
type Diagnostic struct {
	Source DiagnosticSource
	Lines  []string
}

// Empty reports whether the tool found nothing wrong.
func (d Diagnostic) Empty() bool {
	return len(d.Lines) == 0
}

// Text joins the diagnostic lines back into their original form.
func (d Diagnostic) Text() string {
	return strings.Join(d.Lines, "\n")
}
