package domain

import (
	"regexp"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

var (
	corruptNodeRevPattern = regexp.MustCompile(`^svn.*: Corrupt node-revision '(.*)'`)
	checksumHeaderPattern = regexp.MustCompile(`^svn.*: Checksum mismatch while reading representation:`)
	checksumExpected      = regexp.MustCompile(`^ *expected: *([^ ]*)`)
	checksumActual        = regexp.MustCompile(`^ *actual: *([^ ]*)`)
	corruptRepPattern     = regexp.MustCompile(`^svn.*: Corrupt representation '([0-9]+) ([0-9]+) ([0-9]+) (.*)'`)
)

// Classify matches a diagnostic against the known corruption signatures, in
// order, and returns the fix it calls for. The second result is false when
// the diagnostic is not one this tool knows how to repair.
func Classify(d m.Diagnostic) (m.FixAction, bool) {
	if d.Empty() {
		return m.FixAction{}, false
	}

	first := d.Lines[0]

	if match := corruptNodeRevPattern.FindStringSubmatch(first); match != nil {
		return m.FixAction{Kind: m.FixID, BadID: match[1]}, true
	}

	if checksumHeaderPattern.MatchString(first) {
		if len(d.Lines) < 3 {
			return m.FixAction{}, false
		}

		expected := checksumExpected.FindStringSubmatch(d.Lines[1])
		actual := checksumActual.FindStringSubmatch(d.Lines[2])

		if expected == nil || actual == nil {
			return m.FixAction{}, false
		}

		return m.FixAction{Kind: m.FixChecksum, Expected: expected[1], Actual: actual[1]}, true
	}

	if match := corruptRepPattern.FindStringSubmatch(first); match != nil {
		return m.FixAction{
			Kind:    m.FixDeltaRef,
			Delta:   m.DeltaRef{Rev: match[1], Offset: match[2], Size: match[3]},
			Trailer: match[4],
		}, true
	}

	return m.FixAction{}, false
}
