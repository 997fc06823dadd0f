package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

func TestLocalRevisionFSAdapter_RevFilePath(t *testing.T) {
	t.Run("sharded layout", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		repo := t.TempDir()
		writeTestFile(t, filepath.Join(repo, "db", "format"), "4\nlayout sharded 1000\n")
		want := filepath.Join(repo, "db", "revs", "12", "12953")
		writeTestFile(t, want, "PLAIN\n")

		got, err := adapter.RevFilePath(context.Background(), m.Path(repo), "12953")
		if err != nil {
			t.Fatalf("RevFilePath() error = %v", err)
		}

		if string(got) != want {
			t.Fatalf("RevFilePath() = %s, want %s", got, want)
		}
	})

	t.Run("linear layout", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		repo := t.TempDir()
		writeTestFile(t, filepath.Join(repo, "db", "format"), "3\nlayout linear\n")
		want := filepath.Join(repo, "db", "revs", "7")
		writeTestFile(t, want, "PLAIN\n")

		got, err := adapter.RevFilePath(context.Background(), m.Path(repo), "7")
		if err != nil {
			t.Fatalf("RevFilePath() error = %v", err)
		}

		if string(got) != want {
			t.Fatalf("RevFilePath() = %s, want %s", got, want)
		}
	})

	t.Run("format without layout line is linear", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		repo := t.TempDir()
		writeTestFile(t, filepath.Join(repo, "db", "format"), "2\n")
		want := filepath.Join(repo, "db", "revs", "3")
		writeTestFile(t, want, "PLAIN\n")

		got, err := adapter.RevFilePath(context.Background(), m.Path(repo), "3")
		if err != nil {
			t.Fatalf("RevFilePath() error = %v", err)
		}

		if string(got) != want {
			t.Fatalf("RevFilePath() = %s, want %s", got, want)
		}
	})

	t.Run("packed shard is rejected", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		repo := t.TempDir()
		writeTestFile(t, filepath.Join(repo, "db", "format"), "6\nlayout sharded 1000\n")
		writeTestFile(t, filepath.Join(repo, "db", "revs", "0.pack", "pack"), "")

		_, err := adapter.RevFilePath(context.Background(), m.Path(repo), "5")
		if !errors.Is(err, ErrPackedRevision) {
			t.Fatalf("RevFilePath() error = %v, want ErrPackedRevision", err)
		}
	})

	t.Run("invalid revision number", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		_, err := adapter.RevFilePath(context.Background(), m.Path(t.TempDir()), "HEAD")
		if err == nil {
			t.Fatalf("RevFilePath() expected error for non-numeric revision")
		}
	})

	t.Run("missing repository format", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		_, err := adapter.RevFilePath(context.Background(), m.Path(t.TempDir()), "1")
		if err == nil {
			t.Fatalf("RevFilePath() expected error without db/format")
		}
	})

	t.Run("missing revision file", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		repo := t.TempDir()
		writeTestFile(t, filepath.Join(repo, "db", "format"), "4\nlayout sharded 1000\n")

		_, err := adapter.RevFilePath(context.Background(), m.Path(repo), "42")
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("RevFilePath() error = %v, want not-exist", err)
		}
	})
}

func TestLocalRevisionFSAdapter_UpdateFile(t *testing.T) {
	t.Run("replaces content and keeps mode", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		dir := t.TempDir()
		path := filepath.Join(dir, "5")
		writeTestFile(t, path, "id: 0.0.r5/100\n")

		if err := os.Chmod(path, 0o444); err != nil {
			t.Fatalf("chmod: %v", err)
		}

		err := adapter.UpdateFile(context.Background(), m.Path(path), func(content []byte) ([]byte, error) {
			return []byte(strings.ReplaceAll(string(content), "100", "080")), nil
		})
		if err != nil {
			t.Fatalf("UpdateFile() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}

		if string(got) != "id: 0.0.r5/080\n" {
			t.Fatalf("UpdateFile() content = %q", got)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}

		if info.Mode().Perm() != 0o444 {
			t.Fatalf("UpdateFile() mode = %v, want 0444", info.Mode().Perm())
		}

		assertOnlyEntries(t, dir, "5")
	})

	t.Run("callback error leaves file untouched", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		dir := t.TempDir()
		path := filepath.Join(dir, "5")
		writeTestFile(t, path, "original\n")

		boom := errors.New("boom")
		err := adapter.UpdateFile(context.Background(), m.Path(path), func([]byte) ([]byte, error) {
			return nil, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("UpdateFile() error = %v, want boom", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "original\n" {
			t.Fatalf("UpdateFile() modified file on error: %q", got)
		}

		assertOnlyEntries(t, dir, "5")
	})

	t.Run("missing file", func(t *testing.T) {
		adapter := NewLocalRevisionFSAdapter()

		err := adapter.UpdateFile(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope")), func(c []byte) ([]byte, error) {
			return c, nil
		})
		if err == nil {
			t.Fatalf("UpdateFile() expected error for missing file")
		}
	})
}

func TestLocalRevisionFSAdapter_UpdateFile_ConcurrentWriters(t *testing.T) {
	const writers = 64

	adapter := NewLocalRevisionFSAdapter()

	dir := t.TempDir()
	path := filepath.Join(dir, "5")
	writeTestFile(t, path, "PLAIN\n")

	if err := os.Chmod(path, 0o444); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	var wg sync.WaitGroup

	errs := make(chan error, writers)

	for range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			errs <- adapter.UpdateFile(context.Background(), m.Path(path), func(content []byte) ([]byte, error) {
				return append(content, 'x'), nil
			})
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("UpdateFile() error = %v", err)
		}
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if want := "PLAIN\n" + strings.Repeat("x", writers); string(got) != want {
		t.Fatalf("UpdateFile() lost updates: got %d bytes, want %d", len(got), len(want))
	}

	assertOnlyEntries(t, dir, "5")
}

func TestLocalRevisionFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalRevisionFSAdapter()

	path := filepath.Join(t.TempDir(), "1")
	writeTestFile(t, path, "DELTA\nSVN\x00ENDREP\n")

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "DELTA\nSVN\x00ENDREP\n" {
		t.Fatalf("ReadFile() = %q", got)
	}
}

func assertOnlyEntries(t *testing.T, dir string, names ...string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	if len(entries) != len(names) {
		var got []string
		for _, e := range entries {
			got = append(got, e.Name())
		}

		t.Fatalf("directory contains %v, want only %v", got, names)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	mustMkdir(t, filepath.Dir(path))

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}
