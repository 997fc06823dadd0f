package domain

import (
	"context"
	"log/slog"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// KnownBadIDs holds node-revision IDs whose correct value was established by
// hand and cannot be re-derived from history.
var KnownBadIDs = map[string]string{
	"6-12953.0.r12953/30623": "0-12953.0.r12953/30403",
}

// Resolver computes the replacement values for classified corruptions.
type Resolver interface {
	ResolveID(ctx context.Context, repo m.Path, badID string) (string, error)
	ResolveDeltaOffset(ctx context.Context, repo m.Path, rev, size string) (string, error)
}

type resolver struct {
	history    History
	exceptions map[string]string
}

// NewResolver constructs a Resolver consulting exceptions before history.
func NewResolver(history History, exceptions map[string]string) Resolver {
	table := make(map[string]string, len(exceptions))
	for bad, good := range exceptions {
		table[bad] = good
	}

	return &resolver{history: history, exceptions: table}
}

func (r *resolver) ResolveID(ctx context.Context, repo m.Path, badID string) (string, error) {
	if good, ok := r.exceptions[badID]; ok {
		slog.Debug("Using exception table entry", "bad", badID, "good", good)
		return good, nil
	}

	return r.history.FindGoodID(ctx, repo, badID)
}

func (r *resolver) ResolveDeltaOffset(ctx context.Context, repo m.Path, rev, size string) (string, error) {
	return r.history.FindGoodRepHeader(ctx, repo, rev, size)
}

// ValidateID checks that good can replace bad without moving any byte offset.
func ValidateID(bad, good string) error {
	if len(good) != len(bad) {
		return fixErrorf(ErrStructuralMismatch,
			"can't handle a replacement ID with a different length: bad id '%s', good id '%s'", bad, good)
	}

	if good == bad {
		return fixErrorf(ErrStructuralMismatch, "the ID supplied is already correct: good id '%s'", good)
	}

	return nil
}

// ValidateChecksum checks a checksum pair extracted from a mismatch report.
func ValidateChecksum(expected, actual string) error {
	if expected == "" || actual == "" {
		return fixErrorf(ErrStructuralMismatch, "empty checksum in mismatch report (expected '%s', actual '%s')", expected, actual)
	}

	if expected == actual {
		return fixErrorf(ErrStructuralMismatch, "checksums are equal: '%s'", expected)
	}

	return nil
}

// ValidateDelta checks a corrected delta reference before it is applied.
func ValidateDelta(bad, good m.DeltaRef) error {
	if good.Offset == bad.Offset {
		return fixErrorf(ErrStructuralMismatch, "the offset supplied is already correct: '%s'", bad.String())
	}

	return nil
}
