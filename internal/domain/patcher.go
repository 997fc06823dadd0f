package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	"fsfsfixer.dev/pkg/fsfsfixer/internal/adapter"
	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// Patcher performs exact text substitutions inside revision files.
type Patcher interface {
	// Substitute replaces every whole-token occurrence of oldText with newText
	// in path and returns how many occurrences were replaced.
	Substitute(ctx context.Context, path m.Path, oldText, newText string) (int, error)
}

type patcher struct {
	fs adapter.RevisionFSAdapter
}

// NewPatcher constructs a Patcher writing through fs.
func NewPatcher(fs adapter.RevisionFSAdapter) Patcher {
	return &patcher{fs: fs}
}

func (p *patcher) Substitute(ctx context.Context, path m.Path, oldText, newText string) (int, error) {
	if oldText == "" {
		return 0, fixErrorf(ErrStructuralMismatch, "empty substitution pattern for '%s'", path)
	}

	if len(oldText) != len(newText) {
		slog.Warn("Substitution changes file length", "path", path, "old", oldText, "new", newText)
	}

	replaced := 0

	err := p.fs.UpdateFile(ctx, path, func(content []byte) ([]byte, error) {
		var updated []byte

		updated, replaced = replaceTokens(content, []byte(oldText), []byte(newText))
		if replaced == 0 || bytes.Equal(content, updated) {
			return nil, fixErrorf(ErrNoOpSubstitution, "'%s' is unchanged after substituting '%s'", path, oldText)
		}

		if slog.Default().Enabled(ctx, slog.LevelDebug) {
			slog.Debug("Substitution diff", "path", path, "diff", lineDiff(content, oldText, newText, string(path)))
		}

		return updated, nil
	})
	if err != nil {
		if !IsFixError(err) {
			slog.Error("Failed to substitute in revision file", "path", path, "error", err)
			return 0, fmt.Errorf("substitute in %s: %w", path, err)
		}

		return 0, err
	}

	return replaced, nil
}

// lineDiff renders a unified diff restricted to the lines containing
// oldText. Revision files mix text headers with binary delta data, so the
// whole file is never diffed.
func lineDiff(before []byte, oldText, newText, name string) string {
	var a, b []string

	forEachLine(before, func(offset int, line []byte) {
		replacedLine, n := replaceTokens(line, []byte(oldText), []byte(newText))
		if n == 0 {
			return
		}

		a = append(a, fmt.Sprintf("@%d %s\n", offset, line))
		b = append(b, fmt.Sprintf("@%d %s\n", offset, replacedLine))
	})

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: name,
		ToFile:   name,
		Context:  0,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}

// replaceTokens replaces the occurrences of old that are not part of a longer
// token. An edge of old that is itself a token byte must border a non-token
// byte or the start or end of content, so "DELTA 4 100 20" leaves
// "DELTA 4 100 200" alone and "2-5.0.r5/99" leaves "12-5.0.r5/991" alone.
func replaceTokens(content, old, repl []byte) ([]byte, int) {
	if len(old) == 0 {
		return content, 0
	}

	checkStart := isTokenByte(old[0])
	checkEnd := isTokenByte(old[len(old)-1])

	var out bytes.Buffer

	replaced, last := 0, 0

	for i := 0; i+len(old) <= len(content); {
		j := bytes.Index(content[i:], old)
		if j < 0 {
			break
		}

		start := i + j
		end := start + len(old)

		if (checkStart && start > 0 && isTokenByte(content[start-1])) ||
			(checkEnd && end < len(content) && isTokenByte(content[end])) {
			i = start + 1
			continue
		}

		out.Write(content[last:start])
		out.Write(repl)

		replaced++
		last, i = end, end
	}

	if replaced == 0 {
		return content, 0
	}

	out.Write(content[last:])

	return out.Bytes(), replaced
}

// isTokenByte reports whether c may appear inside a node-revision ID, a
// checksum or a decimal field.
func isTokenByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	}

	return c == '-' || c == '.' || c == '_' || c == '/'
}
