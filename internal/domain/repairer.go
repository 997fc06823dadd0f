package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"fsfsfixer.dev/pkg/fsfsfixer/internal/adapter"
	"fsfsfixer.dev/pkg/fsfsfixer/internal/controller"
	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// ErrFixLimit is returned when a revision still fails verification after the
// configured maximum number of fixes.
var ErrFixLimit = errors.New("fix limit reached")

// Repairer drives the verify, classify, fix loop for one revision at a time.
type Repairer interface {
	// Repair fixes rev until it verifies cleanly or an unfixable error is hit.
	// The returned report lists every substitution made, also on failure.
	Repair(ctx context.Context, rev m.Revision) (m.LedgerReport, error)
}

// RepairerOption configures a Repairer.
type RepairerOption func(*repairer)

// WithMaxFixes stops a repair after n substitutions; 0 leaves it unbounded.
func WithMaxFixes(n int) RepairerOption {
	return func(r *repairer) {
		r.maxFixes = n
	}
}

type repairer struct {
	controller.UI
	Verifier
	Resolver
	Patcher
	fs       adapter.RevisionFSAdapter
	maxFixes int
}

// NewRepairer creates a Repairer with the provided dependencies.
func NewRepairer(
	fs adapter.RevisionFSAdapter,
	ui controller.UI,
	verifier Verifier,
	resolver Resolver,
	patcher Patcher,
	options ...RepairerOption,
) Repairer {
	r := &repairer{
		UI:       ui,
		Verifier: verifier,
		Resolver: resolver,
		Patcher:  patcher,
		fs:       fs,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// repairRun is the state of one Repair call.
type repairRun struct {
	rev    m.Revision
	path   m.Path
	ledger *m.Ledger
	logger *slog.Logger
}

func (r *repairer) Repair(ctx context.Context, rev m.Revision) (m.LedgerReport, error) {
	run := &repairRun{
		rev:    rev,
		ledger: m.NewLedger(),
	}

	report := m.LedgerReport{
		RunID:    uuid.NewString(),
		Repo:     rev.Repo,
		Revision: rev.Number,
	}

	run.logger = slog.With("run", report.RunID, "repo", rev.Repo, "rev", rev.Number)

	err := r.repair(ctx, run)

	report.Entries = run.ledger.Entries()
	report.Verified = err == nil

	if err != nil {
		report.Error = err.Error()
		run.logger.Error("Repair failed", "fixes", run.ledger.Len(), "error", err)

		return report, err
	}

	run.logger.Info("Revision verifies", "fixes", run.ledger.Len())
	r.DisplayVerified(ctx, rev)

	return report, nil
}

func (r *repairer) repair(ctx context.Context, run *repairRun) error {
	path, err := r.fs.RevFilePath(ctx, run.rev.Repo, run.rev.Number)
	if err != nil {
		return fmt.Errorf("locate revision file: %w", err)
	}

	run.path = path

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		diagnostic, err := r.Verify(ctx, run.rev)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}

		if diagnostic.Empty() {
			return nil
		}

		if r.maxFixes > 0 && run.ledger.Len() >= r.maxFixes {
			return fmt.Errorf("%w: %d fixes applied, still failing:\n  %s", ErrFixLimit, run.ledger.Len(), diagnostic.Text())
		}

		if err := r.fixOneError(ctx, run, diagnostic); err != nil {
			return err
		}
	}
}

// fixOneError fixes the error described by the primary diagnostic. When that
// diagnostic is unrecognized or its fix fails, the tree walker gets exactly
// one chance to describe the corruption in a form that can be fixed.
func (r *repairer) fixOneError(ctx context.Context, run *repairRun, primary m.Diagnostic) error {
	var primaryErr error

	if action, ok := Classify(primary); ok {
		r.DisplayDiagnostic(ctx, primary)

		primaryErr = r.applyFix(ctx, run, action)
		if primaryErr == nil {
			return nil
		}

		if !IsFixError(primaryErr) {
			return primaryErr
		}

		run.logger.Warn("Fix from verifier diagnostic failed", "action", action.String(), "error", primaryErr)
		r.DisplayWarning(ctx, primaryErr.Error())
	} else {
		run.logger.Warn("Unrecognized verifier diagnostic", "diagnostic", primary.Text())
	}

	r.DisplayWarning(ctx, "trying the tree walker instead")

	fallback, err := r.TreeWalk(ctx, run.rev)
	if err != nil {
		return fmt.Errorf("tree walk: %w", err)
	}

	if fallback.Empty() {
		r.DisplayWarning(ctx, "the tree walker did not find an error")
		return &UnfixableError{Revision: run.rev, Diagnostic: primary, Cause: primaryErr}
	}

	action, ok := Classify(fallback)
	if !ok {
		run.logger.Warn("Unrecognized tree walk diagnostic", "diagnostic", fallback.Text())
		return &UnfixableError{Revision: run.rev, Diagnostic: primary, Cause: primaryErr}
	}

	r.DisplayDiagnostic(ctx, fallback)

	if err := r.applyFix(ctx, run, action); err != nil {
		if IsFixError(err) {
			return &UnfixableError{Revision: run.rev, Diagnostic: primary, Cause: err}
		}

		return err
	}

	return nil
}

func (r *repairer) applyFix(ctx context.Context, run *repairRun, action m.FixAction) error {
	bad, good, err := r.resolve(ctx, run, action)
	if err != nil {
		return err
	}

	if err := checkRepeat(run.ledger, bad, good); err != nil {
		return err
	}

	replaced, err := r.Substitute(ctx, run.path, bad, good)
	if err != nil {
		return err
	}

	entry := m.LedgerEntry{Kind: action.Kind, Bad: bad, Good: good, Replaced: replaced}
	run.ledger.Record(entry)

	run.logger.Info("Applied fix", "kind", action.Kind, "bad", bad, "good", good, "replaced", replaced)
	r.DisplayFix(ctx, action, entry)

	return nil
}

// resolve returns the text to replace and its replacement.
func (r *repairer) resolve(ctx context.Context, run *repairRun, action m.FixAction) (string, string, error) {
	switch action.Kind {
	case m.FixID:
		good, err := r.ResolveID(ctx, run.rev.Repo, action.BadID)
		if err != nil {
			return "", "", err
		}

		if err := ValidateID(action.BadID, good); err != nil {
			return "", "", err
		}

		return action.BadID, good, nil

	case m.FixChecksum:
		if err := ValidateChecksum(action.Expected, action.Actual); err != nil {
			return "", "", err
		}

		return action.Expected, action.Actual, nil

	case m.FixDeltaRef:
		offset, err := r.ResolveDeltaOffset(ctx, run.rev.Repo, action.Delta.Rev, action.Delta.Size)
		if err != nil {
			return "", "", err
		}

		good := action.Delta
		good.Offset = offset

		if err := ValidateDelta(action.Delta, good); err != nil {
			return "", "", err
		}

		return action.Delta.String(), good.String(), nil
	}

	return "", "", fixErrorf(ErrStructuralMismatch, "unknown fix kind %q", action.Kind)
}

// checkRepeat rejects a fix that would touch a value an earlier fix in this
// run already replaced, or bring one back. This is what bounds the loop when
// a lookup keeps proposing the same value.
func checkRepeat(ledger *m.Ledger, bad, good string) error {
	if prev, ok := ledger.Lookup(bad); ok {
		return fixErrorf(ErrRepeatedFix, "'%s' was already replaced with '%s' in this run", bad, prev)
	}

	if _, ok := ledger.Lookup(good); ok {
		return fixErrorf(ErrRepeatedFix, "replacement '%s' was itself replaced earlier in this run", good)
	}

	return nil
}
