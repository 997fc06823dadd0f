// Package adapter contains the infrastructure adapters used by the repair domain.
package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

// ErrPackedRevision is returned for revisions stored in a packed shard.
var ErrPackedRevision = errors.New("revision is stored in a packed shard")

// UpdateFunc maps the current file content to its replacement. Returning an
// error aborts the update and leaves the file untouched.
type UpdateFunc func(content []byte) ([]byte, error)

// RevisionFSAdapter abstracts access to the revision files of an FSFS
// repository so the domain can be tested without a real repository layout.
type RevisionFSAdapter interface {
	// RevFilePath resolves the on-disk path of revision rev in repo.
	RevFilePath(ctx context.Context, repo m.Path, rev string) (m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// UpdateFile holds an exclusive lock on path while fn transforms its
	// content, then atomically replaces the file with the result.
	UpdateFile(ctx context.Context, path m.Path, fn UpdateFunc) error
}

// LocalRevisionFSAdapter is the os-backed RevisionFSAdapter.
type LocalRevisionFSAdapter struct{}

// NewLocalRevisionFSAdapter constructs a LocalRevisionFSAdapter.
func NewLocalRevisionFSAdapter() *LocalRevisionFSAdapter {
	return &LocalRevisionFSAdapter{}
}

// RevFilePath honours the "layout" line of db/format: sharded repositories keep
// revision N in db/revs/<N/shardSize>/N, linear ones in db/revs/N.
func (a *LocalRevisionFSAdapter) RevFilePath(ctx context.Context, repo m.Path, rev string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	revNum, err := strconv.ParseUint(rev, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid revision number %q: %w", rev, err)
	}

	shardSize, err := readShardSize(filepath.Join(string(repo), "db", "format"))
	if err != nil {
		return "", err
	}

	revsDir := filepath.Join(string(repo), "db", "revs")
	path := filepath.Join(revsDir, rev)

	if shardSize > 0 {
		shard := strconv.FormatUint(revNum/shardSize, 10)
		path = filepath.Join(revsDir, shard, rev)

		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			if _, packErr := os.Stat(filepath.Join(revsDir, shard+".pack")); packErr == nil {
				return "", fmt.Errorf("r%s: %w", rev, ErrPackedRevision)
			}
		}
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("revision file for r%s: %w", rev, err)
	}

	return m.Path(path), nil
}

// readShardSize returns the shard size declared in db/format, or 0 for a
// linear layout (including format files predating the layout line).
func readShardSize(formatPath string) (uint64, error) {
	// #nosec G304 - the format file lives inside the repository being repaired
	f, err := os.Open(formatPath)
	if err != nil {
		return 0, fmt.Errorf("open repository format: %w", err)
	}

	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "layout" {
			continue
		}

		if fields[1] != "sharded" {
			return 0, nil
		}

		if len(fields) != 3 {
			return 0, fmt.Errorf("malformed layout line in %s", formatPath)
		}

		size, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil || size == 0 {
			return 0, fmt.Errorf("malformed shard size in %s", formatPath)
		}

		return size, nil
	}

	return 0, scanner.Err()
}

// ReadFile loads file contents from disk.
func (a *LocalRevisionFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// UpdateFile writes the new content to a temporary sibling and renames it over
// path. Revision files are normally read-only, so the file is never opened for
// writing; the original mode is carried over to the replacement.
func (a *LocalRevisionFSAdapter) UpdateFile(ctx context.Context, path m.Path, fn UpdateFunc) error {
	target := string(path)

	f, err := lockCurrentFile(ctx, target)
	if err != nil {
		return err
	}

	defer func() {
		if err := unlockFile(f); err != nil {
			slog.Error("Failed to unlock file", "path", target, "error", err)
		}

		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	updated, err := fn(content)
	if err != nil {
		return err
	}

	return replaceFile(target, updated, info.Mode().Perm())
}

// lockCurrentFile opens target and locks it. The lock belongs to the inode,
// and a concurrent UpdateFile may have renamed a new file over target while
// this one waited, so the lock is retaken until it is held on the file target
// currently names.
func lockCurrentFile(ctx context.Context, target string) (*os.File, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// #nosec G304 - path is the resolved revision file
		f, err := os.Open(target)
		if err != nil {
			return nil, err
		}

		if err := lockFile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("lock %s: %w", target, err)
		}

		held, err := f.Stat()
		if err == nil {
			var current os.FileInfo

			current, err = os.Stat(target)
			if err == nil && os.SameFile(held, current) {
				return f, nil
			}
		}

		if unlockErr := unlockFile(f); unlockErr != nil {
			slog.Error("Failed to unlock file", "path", target, "error", unlockErr)
		}

		_ = f.Close()

		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}

		slog.Debug("File replaced while waiting for lock, retrying", "path", target)
	}
}

func replaceFile(target string, content []byte, mode os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".fsfsfixer-*")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	if err = os.Chmod(tmpPath, mode); err != nil {
		return err
	}

	if err = os.Rename(tmpPath, target); err != nil {
		slog.Error("Failed to replace file", "path", target, "error", err)
		return err
	}

	return nil
}
