package model

import "fmt"

// FixKind represents the category of a recognized corruption.
type FixKind string

const (
	// FixID replaces a corrupt node-revision ID.
	FixID FixKind = "id"
	// FixChecksum replaces a stored checksum with the one actually computed.
	FixChecksum FixKind = "checksum"
	// FixDeltaRef corrects the offset of a DELTA representation header.
	FixDeltaRef FixKind = "delta"
)

// FixAction is a classified diagnostic, carrying the values extracted from it.
type FixAction struct {
	Kind     FixKind
	BadID    string   // FixID
	Expected string   // FixChecksum
	Actual   string   // FixChecksum
	Delta    DeltaRef // FixDeltaRef
	Trailer  string   // FixDeltaRef: the rest of the quoted representation
}

// Matched re-serializes the extracted parameters into the exact text the
// classifier matched on the first diagnostic line. Checksum values live on the
// following lines, whose column alignment varies between releases, so only the
// header is reproduced for them.
func (a FixAction) Matched() string {
	switch a.Kind {
	case FixID:
		return fmt.Sprintf("Corrupt node-revision '%s'", a.BadID)
	case FixChecksum:
		return "Checksum mismatch while reading representation:"
	case FixDeltaRef:
		return fmt.Sprintf("Corrupt representation '%s %s %s %s'", a.Delta.Rev, a.Delta.Offset, a.Delta.Size, a.Trailer)
	}

	return ""
}

func (a FixAction) String() string {
	switch a.Kind {
	case FixID:
		return "bad id " + a.BadID
	case FixChecksum:
		return "checksum " + a.Expected + " -> " + a.Actual
	case FixDeltaRef:
		return "delta ref " + a.Delta.String()
	}

	return string(a.Kind)
}

// LedgerEntry records one bad->good substitution.
type LedgerEntry struct {
	Kind FixKind `yaml:"kind"`
	Bad  string  `yaml:"bad"`
	Good string  `yaml:"good"`
	// Replaced is the number of occurrences the substitution touched.
	Replaced int `yaml:"replaced"`
}

// Ledger is the append-only audit trail of one repair run.
type Ledger struct {
	entries []LedgerEntry
	bad     map[string]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{bad: map[string]int{}}
}

// Record appends an entry.
func (l *Ledger) Record(entry LedgerEntry) {
	if l.bad == nil {
		l.bad = map[string]int{}
	}

	l.bad[entry.Bad] = len(l.entries)
	l.entries = append(l.entries, entry)
}

// Lookup returns the good value previously substituted for bad.
func (l *Ledger) Lookup(bad string) (string, bool) {
	if l == nil {
		return "", false
	}

	i, ok := l.bad[bad]
	if !ok {
		return "", false
	}

	return l.entries[i].Good, true
}

// Entries returns a copy of the recorded entries in order.
func (l *Ledger) Entries() []LedgerEntry {
	if l == nil {
		return nil
	}

	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

// Len returns the number of recorded substitutions.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}

	return len(l.entries)
}

// LedgerReport is the persisted form of a repair run's ledger.
type LedgerReport struct {
	RunID    string        `yaml:"run"`
	Repo     Path          `yaml:"repo"`
	Revision string        `yaml:"revision"`
	Verified bool          `yaml:"verified"`
	Error    string        `yaml:"error,omitempty"`
	Entries  []LedgerEntry `yaml:"entries"`
}
