package domain

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"strconv"

	"fsfsfixer.dev/pkg/fsfsfixer/internal/adapter"
	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

var (
	nodeRevHeaderPrefix = []byte("id: ")
	repTerminator       = []byte("ENDREP\n")
)

// History re-derives correct values from the revision files a bad value points into.
type History interface {
	// FindGoodID returns the ID of the node-revision that badID was meant to name.
	FindGoodID(ctx context.Context, repo m.Path, badID string) (string, error)
	// FindGoodRepHeader returns the offset of the representation in revision
	// rev whose payload is exactly size bytes long.
	FindGoodRepHeader(ctx context.Context, repo m.Path, rev, size string) (string, error)
}

type revFileHistory struct {
	fs adapter.RevisionFSAdapter
}

// NewHistory constructs a History that scans revision files through fs.
func NewHistory(fs adapter.RevisionFSAdapter) History {
	return &revFileHistory{fs: fs}
}

// FindGoodID keeps the node, copy and revision parts of badID and takes the
// offset from the "id:" header of that node-revision in its own revision file.
func (h *revFileHistory) FindGoodID(ctx context.Context, repo m.Path, badID string) (string, error) {
	bad, err := m.ParseNodeRevisionID(badID)
	if err != nil {
		return "", fixErrorf(ErrOracle, "%v", err)
	}

	content, err := h.readRevision(ctx, repo, bad.Rev)
	if err != nil {
		return "", err
	}

	candidates := map[string]struct{}{}

	forEachLine(content, func(offset int, line []byte) {
		if !bytes.HasPrefix(line, nodeRevHeaderPrefix) {
			return
		}

		id, err := m.ParseNodeRevisionID(string(bytes.TrimSpace(line[len(nodeRevHeaderPrefix):])))
		if err != nil || !id.SameNode(bad) {
			return
		}

		candidates[id.WithOffset(int64(offset)).String()] = struct{}{}
	})

	switch len(candidates) {
	case 0:
		return "", fixErrorf(ErrOracle, "no node-revision %s.%s in r%s", bad.NodeID, bad.CopyID, bad.Rev)
	case 1:
		for good := range candidates {
			slog.Debug("Derived node-revision id", "bad", badID, "good", good)
			return good, nil
		}
	}

	return "", fixErrorf(ErrOracle, "ambiguous node-revision %s.%s in r%s: %v", bad.NodeID, bad.CopyID, bad.Rev, sortedKeys(candidates))
}

// FindGoodRepHeader looks for a PLAIN or DELTA header line followed by size
// payload bytes and the ENDREP terminator.
func (h *revFileHistory) FindGoodRepHeader(ctx context.Context, repo m.Path, rev, size string) (string, error) {
	payload, err := strconv.Atoi(size)
	if err != nil || payload < 0 {
		return "", fixErrorf(ErrOracle, "invalid representation size %q", size)
	}

	content, err := h.readRevision(ctx, repo, rev)
	if err != nil {
		return "", err
	}

	var offsets []int

	forEachLine(content, func(offset int, line []byte) {
		if !isRepHeader(line) {
			return
		}

		end := offset + len(line) + 1 + payload
		if end <= len(content) && bytes.HasPrefix(content[end:], repTerminator) {
			offsets = append(offsets, offset)
		}
	})

	switch len(offsets) {
	case 0:
		return "", fixErrorf(ErrOracle, "no representation of size %s in r%s", size, rev)
	case 1:
		slog.Debug("Derived representation offset", "rev", rev, "size", size, "offset", offsets[0])
		return strconv.Itoa(offsets[0]), nil
	}

	return "", fixErrorf(ErrOracle, "ambiguous representation of size %s in r%s at offsets %v", size, rev, offsets)
}

func (h *revFileHistory) readRevision(ctx context.Context, repo m.Path, rev string) ([]byte, error) {
	path, err := h.fs.RevFilePath(ctx, repo, rev)
	if err != nil {
		return nil, err
	}

	return h.fs.ReadFile(ctx, path)
}

func isRepHeader(line []byte) bool {
	if string(line) == "PLAIN" || string(line) == "DELTA" {
		return true
	}

	fields := bytes.Fields(line)
	if len(fields) != 4 || string(fields[0]) != "DELTA" || !bytes.HasPrefix(line, []byte("DELTA ")) {
		return false
	}

	for _, f := range fields[1:] {
		if _, err := strconv.ParseUint(string(f), 10, 64); err != nil {
			return false
		}
	}

	return true
}

// forEachLine calls fn with the byte offset and content of every
// newline-terminated line.
func forEachLine(content []byte, fn func(offset int, line []byte)) {
	for pos := 0; pos < len(content); {
		nl := bytes.IndexByte(content[pos:], '\n')
		if nl < 0 {
			return
		}

		fn(pos, content[pos:pos+nl])
		pos += nl + 1
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
